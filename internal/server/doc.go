// Package server implements the MCP (Model Context Protocol) server that
// exposes the saturation kernel as tools.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Basic Image Information:
//   - image_load: Load image and get metadata, including default surface depth
//   - image_dimensions: Get width and height
//
// Color Operations:
//   - image_sample_color: Get color at pixel, with HSL
//
// Mask Operations:
//   - image_build_mask: Derive a weight mask and render it as a grayscale PNG
//
// Saturation:
//   - image_saturate: Scale HSL saturation, optionally weighted by a mask
//
// # Image Caching
//
// The server maintains an in-memory cache of decoded images keyed by path.
// Cached images are never handed to the kernel; every transform works on a
// private surface copy, so in_place only avoids the second allocation.
// Writing to output_path evicts that path from the cache.
//
// # Configuration
//
// LoadConfig reads SATURATION_MCP_LOG_LEVEL (debug enables per-call timing
// logs on stderr) and SATURATION_MCP_MAX_PIXELS (pixel limit for source and
// mask images, 0 disables it).
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string, e.g. a saturation factor out of range
//
// # Usage
//
//	cfg, err := server.LoadConfig(os.Getenv)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := server.New(cfg).Run(); err != nil {
//	    log.Fatal(err)
//	}
package server

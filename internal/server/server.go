package server

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/ironsheep/saturation-mcp/internal/imaging"
)

// Environment variables read by LoadConfig.
const (
	EnvLogLevel  = "SATURATION_MCP_LOG_LEVEL"
	EnvMaxPixels = "SATURATION_MCP_MAX_PIXELS"
)

// DefaultMaxPixels is the pixel limit applied when EnvMaxPixels is unset.
const DefaultMaxPixels int64 = 64 << 20

// Config holds the runtime knobs of the server.
type Config struct {
	// Debug enables per-call logging to stderr.
	Debug bool

	// MaxPixels rejects source and mask images above this many pixels.
	// Zero or less disables the limit.
	MaxPixels int64

	// Version is reported in the initialize handshake.
	Version string
}

// DefaultConfig returns the configuration used when no environment is set.
func DefaultConfig() Config {
	return Config{
		MaxPixels: DefaultMaxPixels,
		Version:   "dev",
	}
}

// LoadConfig builds a Config from environment lookups. Pass os.Getenv in
// production and a map lookup in tests.
func LoadConfig(getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()

	cfg.Debug = strings.EqualFold(getenv(EnvLogLevel), "debug")

	if v := strings.TrimSpace(getenv(EnvMaxPixels)); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", EnvMaxPixels, v, err)
		}
		cfg.MaxPixels = n
	}

	return cfg, nil
}

// Server handles MCP protocol communication
type Server struct {
	cfg   Config
	cache *imaging.ImageCache
}

// MCPRequest represents an incoming JSON-RPC request
type MCPRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// MCPResponse represents an outgoing JSON-RPC response
type MCPResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *MCPError   `json:"error,omitempty"`
}

// MCPError represents a JSON-RPC error
type MCPError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// MCPNotification represents an outgoing notification (no ID)
type MCPNotification struct {
	JSONRPC string      `json:"jsonrpc"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params,omitempty"`
}

// New creates a new MCP server instance
func New(cfg Config) *Server {
	return &Server{
		cfg:   cfg,
		cache: imaging.NewImageCache(),
	}
}

// Run starts the MCP server, reading from stdin and writing to stdout
func (s *Server) Run() error {
	return s.Serve(os.Stdin, os.Stdout)
}

// Serve reads newline-delimited JSON-RPC requests from r and writes
// responses to w until r is exhausted.
func (s *Server) Serve(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	// Increase buffer size for large requests
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	encoder := json.NewEncoder(w)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req MCPRequest
		if err := json.Unmarshal(line, &req); err != nil {
			log.Printf("Failed to parse request: %v", err)
			if err := encoder.Encode(s.errorResponse(nil, -32700, "Parse error", err.Error())); err != nil {
				log.Printf("Failed to encode response: %v", err)
			}
			continue
		}

		resp := s.handleRequest(&req)
		if resp != nil {
			if err := encoder.Encode(resp); err != nil {
				log.Printf("Failed to encode response: %v", err)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}

	return nil
}

// handleRequest routes requests to appropriate handlers
func (s *Server) handleRequest(req *MCPRequest) *MCPResponse {
	switch req.Method {
	case "initialize":
		return s.handleInitialize(req)
	case "notifications/initialized":
		// Client acknowledgment, no response needed
		return nil
	case "tools/list":
		return s.handleToolsList(req)
	case "tools/call":
		return s.handleToolsCall(req)
	case "ping":
		return &MCPResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Result:  map[string]interface{}{},
		}
	default:
		return &MCPResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error: &MCPError{
				Code:    -32601,
				Message: fmt.Sprintf("Method not found: %s", req.Method),
			},
		}
	}
}

// handleInitialize responds to the initialize request
func (s *Server) handleInitialize(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"protocolVersion": "2024-11-05",
			"capabilities": map[string]interface{}{
				"tools": map[string]interface{}{},
			},
			"serverInfo": map[string]interface{}{
				"name":    "saturation-mcp",
				"version": s.cfg.Version,
			},
		},
	}
}

package server

import (
	"encoding/json"
	"fmt"
	"image"
	"log"
	"time"

	"github.com/ironsheep/saturation-mcp/internal/imaging"
	"github.com/ironsheep/saturation-mcp/internal/mask"
	"github.com/ironsheep/saturation-mcp/internal/saturation"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_saturate").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	start := time.Now()
	result, err := s.executeTool(params.Name, params.Arguments)
	if s.cfg.Debug {
		log.Printf("tools/call %s took %v (err=%v)", params.Name, time.Since(start), err)
	}
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_build_mask":
		return s.handleImageBuildMask(args)
	case "image_saturate":
		return s.handleImageSaturate(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// loadLimited loads path through the cache and enforces the pixel limit.
func (s *Server) loadLimited(path string) (image.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("path is required")
	}
	img, err := s.cache.Load(path)
	if err != nil {
		return nil, err
	}
	if err := imaging.CheckPixelLimit(img, s.cfg.MaxPixels); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Color Handlers ===

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

// === Mask Handlers ===

type imageBuildMaskArgs struct {
	Path   string `json:"path"`
	Kind   string `json:"kind"`
	Invert bool   `json:"invert"`
}

type buildMaskResult struct {
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Kind        string  `json:"kind"`
	Inverted    bool    `json:"inverted"`
	MeanWeight  float64 `json:"mean_weight"`
	ImageBase64 string  `json:"image_base64"`
}

func (s *Server) handleImageBuildMask(args json.RawMessage) (interface{}, error) {
	var a imageBuildMaskArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Kind == "" {
		a.Kind = string(imaging.MaskGrayscale)
	}

	img, err := s.loadLimited(a.Path)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	m, err := imaging.BuildMask(img, imaging.MaskKind(a.Kind), b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}
	if a.Invert {
		m = m.Invert()
	}

	encoded, err := imaging.EncodePNG(imaging.MaskImage(m))
	if err != nil {
		return nil, err
	}
	return &buildMaskResult{
		Width:       m.Width(),
		Height:      m.Height(),
		Kind:        a.Kind,
		Inverted:    a.Invert,
		MeanWeight:  m.Mean(),
		ImageBase64: encoded,
	}, nil
}

// === Saturation Handlers ===

type imageSaturateArgs struct {
	Path       string   `json:"path"`
	Factor     *float64 `json:"factor"`
	MaskPath   string   `json:"mask_path"`
	MaskKind   string   `json:"mask_kind"`
	InvertMask bool     `json:"invert_mask"`
	Depth      int      `json:"depth"`
	InPlace    bool     `json:"in_place"`
	OutputPath string   `json:"output_path"`
}

type saturateResult struct {
	Width       int      `json:"width"`
	Height      int      `json:"height"`
	Depth       int      `json:"depth"`
	Factor      float64  `json:"factor"`
	InPlace     bool     `json:"in_place"`
	MaskMean    *float64 `json:"mask_mean,omitempty"`
	OutputPath  string   `json:"output_path,omitempty"`
	ImageBase64 string   `json:"image_base64,omitempty"`
}

func (s *Server) handleImageSaturate(args json.RawMessage) (interface{}, error) {
	var a imageSaturateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Factor == nil {
		return nil, fmt.Errorf("factor is required")
	}

	img, err := s.loadLimited(a.Path)
	if err != nil {
		return nil, err
	}
	if a.Depth == 0 {
		a.Depth = imaging.DefaultDepth(img)
	}

	// Never hand the cached image to the kernel.
	surf, err := imaging.LoadSurface(img, a.Depth)
	if err != nil {
		return nil, err
	}
	b := surf.Bounds()

	var m *mask.Mask
	if a.MaskPath != "" {
		if a.MaskKind == "" {
			a.MaskKind = string(imaging.MaskGrayscale)
		}
		mimg, err := s.loadLimited(a.MaskPath)
		if err != nil {
			return nil, err
		}
		m, err = imaging.BuildMask(mimg, imaging.MaskKind(a.MaskKind), b.Dx(), b.Dy())
		if err != nil {
			return nil, fmt.Errorf("mask: %w", err)
		}
		if a.InvertMask {
			m = m.Invert()
		}
	}

	out, err := saturate(surf, a.Depth, *a.Factor, m, a.InPlace)
	if err != nil {
		return nil, err
	}

	result := &saturateResult{
		Width:   b.Dx(),
		Height:  b.Dy(),
		Depth:   a.Depth,
		Factor:  *a.Factor,
		InPlace: a.InPlace,
	}
	if m != nil {
		mean := m.Mean()
		result.MaskMean = &mean
	}

	if a.OutputPath != "" {
		if err := imaging.Save(out, a.OutputPath); err != nil {
			return nil, err
		}
		s.cache.Evict(a.OutputPath)
		result.OutputPath = a.OutputPath
		return result, nil
	}

	result.ImageBase64, err = imaging.EncodePNG(out)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// saturate runs the surface entry point matching depth and inPlace.
func saturate(surf image.Image, depth int, factor float64, m *mask.Mask, inPlace bool) (image.Image, error) {
	if inPlace {
		var err error
		if depth == imaging.Depth24 {
			err = saturation.SaturateSurface24MaskedInPlace(surf, factor, m)
		} else {
			err = saturation.SaturateSurface32MaskedInPlace(surf, factor, m)
		}
		if err != nil {
			return nil, err
		}
		return surf, nil
	}

	if depth == imaging.Depth24 {
		out, err := saturation.SaturateSurface24Masked(surf, factor, m)
		if err != nil {
			return nil, err
		}
		return out, nil
	}
	out, err := saturation.SaturateSurface32Masked(surf, factor, m)
	if err != nil {
		return nil, err
	}
	return out, nil
}

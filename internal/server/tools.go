package server

import "github.com/ironsheep/saturation-mcp/internal/imaging"

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// pathProperty is the schema shared by every tool's "path" argument.
func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

// maskKindProperty describes a mask builder selector.
func maskKindProperty(description string) map[string]interface{} {
	kinds := make([]string, len(imaging.MaskKinds))
	for i, k := range imaging.MaskKinds {
		kinds[i] = string(k)
	}
	return map[string]interface{}{
		"type":        "string",
		"enum":        kinds,
		"description": description,
		"default":     string(imaging.MaskGrayscale),
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format, whether it carries transparency, and the surface depth (24 or 32 bit) a saturation transform uses by default.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},

		// Color Operations
		{
			Name:        "image_sample_color",
			Description: "Get the exact color value at a specific pixel coordinate, including its HSL representation. Use before and after image_saturate to check how a pixel moved.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},

		// Mask Operations
		{
			Name:        "image_build_mask",
			Description: "Derive a per-pixel weight mask (0 to 1) from an image and return it as a base64-encoded grayscale PNG, white meaning full weight.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"kind": maskKindProperty("How pixel weights are derived: channel mean, BT.601 luminance, black/white threshold at 128, or alpha"),
					"invert": map[string]interface{}{
						"type":        "boolean",
						"description": "Use 1 - weight instead of weight",
						"default":     false,
					},
				},
				"required": []string{"path"},
			},
		},

		// Saturation
		{
			Name:        "image_saturate",
			Description: "Scale the HSL saturation of every pixel by (1 + factor), clamped to [0,1]. Factor -1 grays the image, 0 leaves it unchanged, 1 doubles saturation. Alpha is never modified. An optional mask image weights the factor per pixel and is scaled to the image size. Returns a base64-encoded PNG unless output_path is given.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"factor": map[string]interface{}{
						"type":        "number",
						"minimum":     -1,
						"maximum":     1,
						"description": "Saturation change in [-1, 1]",
					},
					"mask_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional image whose pixels weight the factor",
					},
					"mask_kind": maskKindProperty("How mask weights are derived from mask_path"),
					"invert_mask": map[string]interface{}{
						"type":        "boolean",
						"description": "Use 1 - weight for the mask",
						"default":     false,
					},
					"depth": map[string]interface{}{
						"type":        "integer",
						"enum":        []int{24, 32},
						"description": "Surface depth. Default 32 if the image has transparency, otherwise 24",
					},
					"in_place": map[string]interface{}{
						"type":        "boolean",
						"description": "Rewrite the working surface instead of allocating a new one. The source file is never modified",
						"default":     false,
					},
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional file to write the result to; format follows the extension",
					},
				},
				"required": []string{"path", "factor"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}

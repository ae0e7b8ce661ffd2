package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func outputProperties() map[string]interface{} {
	return map[string]interface{}{
		"output_path": map[string]interface{}{
			"type":        "string",
			"description": "Where to write the result. If omitted, SVG is returned inline and other formats as base64",
		},
		"file_format": map[string]interface{}{
			"type":        "string",
			"enum":        []string{"svg", "eps", "pdf", "dxf", "png"},
			"description": "Output file format (default svg)",
		},
		"svg_version": map[string]interface{}{
			"type": "string",
			"enum": []string{"svg_1_0", "svg_1_1", "svg_tiny_1_2"},
		},
		"draw_style": map[string]interface{}{
			"type": "string",
			"enum": []string{"fill_shapes", "stroke_shapes", "stroke_edges"},
		},
		"shape_stacking": map[string]interface{}{
			"type": "string",
			"enum": []string{"cutouts", "stacked"},
		},
		"group_by": map[string]interface{}{
			"type": "string",
			"enum": []string{"none", "color", "parent", "layer"},
		},
	}
}

func withProperties(base map[string]interface{}, extra map[string]interface{}) map[string]interface{} {
	for k, v := range extra {
		base[k] = v
	}
	return base
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "vectorize",
			Description: "Convert a raster image (local file, URL or retained image token) into a vector graphic. Exactly one of path, url or image_token is required. Use mode=test while experimenting; it costs no credits but watermarks the result.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withProperties(outputProperties(), map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to a local image file",
					},
					"url": map[string]interface{}{
						"type":        "string",
						"description": "Image URL fetched by the service",
					},
					"image_token": map[string]interface{}{
						"type":        "string",
						"description": "Token of an image retained by an earlier call",
					},
					"mode": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"production", "preview", "test", "test_preview"},
						"description": "Processing mode (default production)",
					},
					"max_colors": map[string]interface{}{
						"type":        "integer",
						"description": "Limit the number of colors (0-256, 0 = unlimited)",
					},
					"palette": map[string]interface{}{
						"type":        "string",
						"description": "Palette such as \"#000000; #FFFFFF ~ 0.1;\"",
					},
					"retention_days": map[string]interface{}{
						"type":        "integer",
						"description": "Keep the image for this many days (0-30) to allow vectorize_download",
					},
					"prepare_max_pixels": map[string]interface{}{
						"type":        "integer",
						"description": "Downscale a local file to at most this many pixels before upload",
					},
				}),
			},
		},
		{
			Name:        "vectorize_download",
			Description: "Render a retained image again, for example in another file format.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withProperties(outputProperties(), map[string]interface{}{
					"image_token": map[string]interface{}{
						"type":        "string",
						"description": "Token returned by vectorize with retention_days > 0",
					},
					"receipt": map[string]interface{}{
						"type":        "string",
						"description": "Receipt of a preview result, for the upgrade rate",
					},
				}),
				"required": []string{"image_token"},
			},
		},
		{
			Name:        "vectorize_delete",
			Description: "Delete a retained image before its retention period ends.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"image_token": map[string]interface{}{
						"type":        "string",
						"description": "Token of the retained image",
					},
				},
				"required": []string{"image_token"},
			},
		},
		{
			Name:        "vectorize_account",
			Description: "Get the subscription plan, state and remaining credits.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "image_info",
			Description: "Get the dimensions, pixel count and format of a local image file. Runs locally.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_suggest_palette",
			Description: "Propose a color palette for the vectorize palette parameter from the dominant colors of a local image. Runs locally.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum number of colors (default 8)",
						"default":     8,
					},
					"min_distance": map[string]interface{}{
						"type":        "number",
						"description": "Minimum perceptual (Lab) distance between colors (default 0.1)",
						"default":     0.1,
					},
				},
				"required": []string{"path"},
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

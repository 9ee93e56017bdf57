package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// bitmapProperties returns the schema properties shared by every tool: the
// raster given either as width/height/data or as rows of text.
func bitmapProperties() map[string]interface{} {
	return map[string]interface{}{
		"width": map[string]interface{}{
			"type":        "integer",
			"description": "Raster width in cells (used with data)",
		},
		"height": map[string]interface{}{
			"type":        "integer",
			"description": "Raster height in cells (used with data)",
		},
		"data": map[string]interface{}{
			"type":        "array",
			"items":       map[string]interface{}{"type": "integer", "enum": []int{0, 1}},
			"description": "Row-major cell values, 1 = foreground, 0 = background. Length must be width*height.",
		},
		"rows": map[string]interface{}{
			"type":        "array",
			"items":       map[string]interface{}{"type": "string"},
			"description": "Alternative to width/height/data: one string per row, '#' (or 1 X x *) = foreground, '.' (or 0 space _) = background",
		},
		"pixels": map[string]interface{}{
			"type": "array",
			"items": map[string]interface{}{
				"type":  "array",
				"items": map[string]interface{}{"type": "string"},
			},
			"description": "Alternative to rows and data: a two-colour picture, one array per pixel row, each pixel a hex colour (#rgb or #rrggbb). Pixels of the background colour are background, the other colour is foreground.",
		},
		"background": map[string]interface{}{
			"type":        "string",
			"description": "Background colour of pixels as hex. Default #ffffff",
			"default":     "#ffffff",
		},
	}
}

// withProperties adds extra properties to the shared bitmap properties.
func withProperties(extra map[string]interface{}) map[string]interface{} {
	props := bitmapProperties()
	for k, v := range extra {
		props[k] = v
	}
	return props
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Outline Extraction
		{
			Name:        "bitmap_outline",
			Description: "Trace the closed axis-aligned contours of every foreground region of a binary raster, holes included. Returns the segment list (move-to anchors and relative horizontal/vertical draws), SVG path data, a per-loop summary and the region/hole counts.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": bitmapProperties(),
			},
		},
		{
			Name:        "bitmap_outline_svg",
			Description: "Render the contours of a binary raster as a standalone SVG document filled with the even-odd rule, one unit per cell.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withProperties(map[string]interface{}{
					"fill": map[string]interface{}{
						"type":        "string",
						"description": "Fill colour as hex (#rgb or #rrggbb). Default #000000",
						"default":     "#000000",
					},
				}),
			},
		},
		{
			Name:        "bitmap_outline_polygons",
			Description: "Return the contours of a binary raster as absolute vertex lists, one polygon per loop, and optionally test points against the even-odd fill.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withProperties(map[string]interface{}{
					"test_points": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"x": map[string]interface{}{"type": "number"},
								"y": map[string]interface{}{"type": "number"},
							},
							"required": []string{"x", "y"},
						},
						"description": "Optional points to test for inclusion, in cell units (cell centres are at .5)",
					},
				}),
			},
		},

		// Debugging
		{
			Name:        "bitmap_outline_grid",
			Description: "Dump the internal boundary-arrow grid after tracing. Outer arrows are single, hole arrows double (or green/red with colour).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withProperties(map[string]interface{}{
					"colour": map[string]interface{}{
						"type":        "boolean",
						"description": "Use ANSI colours instead of double arrows. Default false",
						"default":     false,
					},
				}),
			},
		},

		// Analysis
		{
			Name:        "bitmap_components",
			Description: "Count the 4-connected foreground regions and the enclosed 8-connected background holes of a binary raster.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": bitmapProperties(),
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

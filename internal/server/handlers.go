package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ironsheep/bitmap-outline-mcp/internal/bitmap"
	"github.com/ironsheep/bitmap-outline-mcp/internal/outline"
	"github.com/ironsheep/bitmap-outline-mcp/internal/svg"
	"github.com/ironsheep/bitmap-outline-mcp/internal/vector"
)

// ErrTooLarge reports a raster with more cells than the server accepts.
var ErrTooLarge = errors.New("raster too large")

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "bitmap_outline").
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

	result, err := s.executeTool(params.Name, params.Arguments)
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
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Builds and size-checks the raster
//  3. Runs the extraction on the cached outliner for that size
//  4. Converts the segments with the svg/vector adapters as needed
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Outline Extraction
	case "bitmap_outline":
		return s.handleBitmapOutline(args)
	case "bitmap_outline_svg":
		return s.handleBitmapOutlineSVG(args)
	case "bitmap_outline_polygons":
		return s.handleBitmapOutlinePolygons(args)

	// Debugging
	case "bitmap_outline_grid":
		return s.handleBitmapOutlineGrid(args)

	// Analysis
	case "bitmap_components":
		return s.handleBitmapComponents(args)

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

// === Raster Arguments ===

type bitmapArgs struct {
	Width      int        `json:"width"`
	Height     int        `json:"height"`
	Data       []int      `json:"data"`
	Rows       []string   `json:"rows"`
	Pixels     [][]string `json:"pixels"`
	Background string     `json:"background"`
}

// raster builds the bitmap described by the arguments and checks it
// against the cell limit.
func (s *Server) raster(a *bitmapArgs) (*bitmap.Bitmap, error) {
	forms := 0
	for _, given := range []bool{len(a.Rows) > 0, len(a.Data) > 0, len(a.Pixels) > 0} {
		if given {
			forms++
		}
	}
	if forms > 1 {
		return nil, errors.New("give only one of rows, data or pixels")
	}

	var (
		b   *bitmap.Bitmap
		err error
	)
	switch {
	case len(a.Rows) > 0:
		b, err = bitmap.Parse(a.Rows)
	case len(a.Pixels) > 0:
		if w, h := len(a.Pixels[0]), len(a.Pixels); w > s.cfg.MaxCells/h {
			return nil, fmt.Errorf("%w: %d×%d exceeds %d cells", ErrTooLarge, w, h, s.cfg.MaxCells)
		}
		b, err = bitmap.FromPixels(a.Pixels, a.Background)
	default:
		if a.Width > 0 && a.Height > 0 && a.Width > s.cfg.MaxCells/a.Height {
			return nil, fmt.Errorf("%w: %d×%d exceeds %d cells", ErrTooLarge, a.Width, a.Height, s.cfg.MaxCells)
		}
		b, err = bitmap.FromValues(a.Width, a.Height, a.Data)
	}
	if err != nil {
		return nil, err
	}
	if b.Width*b.Height > s.cfg.MaxCells {
		return nil, fmt.Errorf("%w: %d×%d exceeds %d cells", ErrTooLarge, b.Width, b.Height, s.cfg.MaxCells)
	}
	return b, nil
}

// extract runs the outliner cached for the bitmap size. The segments alias
// the outliner's buffer and are valid until the next extraction of that size.
func (s *Server) extract(b *bitmap.Bitmap) (*outline.Outliner, []outline.Segment, error) {
	o, err := s.cache.Get(b.Width, b.Height)
	if err != nil {
		return nil, nil, err
	}
	segs, err := o.FindPaths(b.Data)
	if err != nil {
		s.cache.Evict(b.Width, b.Height)
		return nil, nil, fmt.Errorf("failed to outline %d×%d raster: %w", b.Width, b.Height, err)
	}
	return o, segs, nil
}

// === Outline Extraction Handlers ===

// LoopSummary describes one closed contour.
type LoopSummary struct {
	Anchor    outline.Point `json:"anchor"`
	Segments  int           `json:"segments"`
	Perimeter int           `json:"perimeter"`
	Area      int           `json:"area"`
	Hole      bool          `json:"hole"`
	Bounds    Bounds        `json:"bounds"`
}

// Bounds is a rectangle in vertex coordinates: (X1,Y1) inclusive top-left,
// (X2,Y2) exclusive bottom-right.
type Bounds struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// OutlineResult is returned by bitmap_outline.
type OutlineResult struct {
	Width    int               `json:"width"`
	Height   int               `json:"height"`
	Segments []outline.Segment `json:"segments"`
	PathData string            `json:"path_data"`
	Loops    []LoopSummary     `json:"loops"`
	// Foreground is the number of foreground cells, which equals the sum
	// of the loop areas.
	Foreground int `json:"foreground"`
	Regions    int `json:"regions"`
	Holes      int `json:"holes"`
}

func (s *Server) handleBitmapOutline(args json.RawMessage) (interface{}, error) {
	var a bitmapArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	b, err := s.raster(&a)
	if err != nil {
		return nil, err
	}
	_, segs, err := s.extract(b)
	if err != nil {
		return nil, err
	}

	res := &OutlineResult{
		Width:      b.Width,
		Height:     b.Height,
		Segments:   append([]outline.Segment{}, segs...),
		PathData:   svg.PathData(segs),
		Loops:      []LoopSummary{},
		Foreground: b.Count(),
	}
	for _, l := range outline.Loops(res.Segments) {
		r := l.Bounds()
		res.Loops = append(res.Loops, LoopSummary{
			Anchor:    l.Anchor,
			Segments:  len(l.Segments),
			Perimeter: l.Perimeter(),
			Area:      l.SignedArea(),
			Hole:      l.Hole(),
			Bounds:    Bounds{X1: r.Min.X, Y1: r.Min.Y, X2: r.Max.X, Y2: r.Max.Y},
		})
		if l.Hole() {
			res.Holes++
		} else {
			res.Regions++
		}
	}
	return res, nil
}

type bitmapOutlineSVGArgs struct {
	bitmapArgs
	Fill string `json:"fill"`
}

// SVGResult is returned by bitmap_outline_svg.
type SVGResult struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	SVG    string `json:"svg"`
}

func (s *Server) handleBitmapOutlineSVG(args json.RawMessage) (interface{}, error) {
	var a bitmapOutlineSVGArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	b, err := s.raster(&a.bitmapArgs)
	if err != nil {
		return nil, err
	}
	_, segs, err := s.extract(b)
	if err != nil {
		return nil, err
	}
	doc, err := svg.Document(segs, b.Width, b.Height, svg.Style{Fill: a.Fill})
	if err != nil {
		return nil, err
	}
	return &SVGResult{Width: b.Width, Height: b.Height, SVG: doc}, nil
}

type bitmapOutlinePolygonsArgs struct {
	bitmapArgs
	TestPoints []struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	} `json:"test_points"`
}

// Polygon is one closed contour as absolute vertices.
type Polygon struct {
	Hole   bool            `json:"hole"`
	Points []outline.Point `json:"points"`
}

// PointTest reports whether a point lies inside the even-odd fill.
type PointTest struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Inside bool    `json:"inside"`
}

// PolygonsResult is returned by bitmap_outline_polygons.
type PolygonsResult struct {
	Width    int         `json:"width"`
	Height   int         `json:"height"`
	Polygons []Polygon   `json:"polygons"`
	Tests    []PointTest `json:"tests,omitempty"`
}

func (s *Server) handleBitmapOutlinePolygons(args json.RawMessage) (interface{}, error) {
	var a bitmapOutlinePolygonsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	b, err := s.raster(&a.bitmapArgs)
	if err != nil {
		return nil, err
	}
	_, segs, err := s.extract(b)
	if err != nil {
		return nil, err
	}

	p := vector.Path(segs)
	loops := outline.Loops(segs)
	res := &PolygonsResult{Width: b.Width, Height: b.Height, Polygons: []Polygon{}}
	for i, poly := range vector.Polygons(p) {
		pg := Polygon{Points: make([]outline.Point, len(poly))}
		if i < len(loops) {
			pg.Hole = loops[i].Hole()
		}
		for j, v := range poly {
			pg.Points[j] = outline.Point{X: int(v.X), Y: int(v.Y)}
		}
		res.Polygons = append(res.Polygons, pg)
	}
	for _, tp := range a.TestPoints {
		res.Tests = append(res.Tests, PointTest{X: tp.X, Y: tp.Y, Inside: vector.Contains(p, tp.X, tp.Y)})
	}
	return res, nil
}

// === Debugging Handlers ===

type bitmapOutlineGridArgs struct {
	bitmapArgs
	Colour bool `json:"colour"`
}

// GridResult is returned by bitmap_outline_grid.
type GridResult struct {
	Columns int    `json:"columns"`
	Rows    int    `json:"rows"`
	Grid    string `json:"grid"`
}

func (s *Server) handleBitmapOutlineGrid(args json.RawMessage) (interface{}, error) {
	var a bitmapOutlineGridArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	b, err := s.raster(&a.bitmapArgs)
	if err != nil {
		return nil, err
	}
	o, _, err := s.extract(b)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := o.Dump(&buf, a.Colour); err != nil {
		return nil, fmt.Errorf("failed to dump grid: %w", err)
	}
	cols, rows := o.Grid().Size()
	return &GridResult{Columns: cols, Rows: rows, Grid: buf.String()}, nil
}

// === Analysis Handlers ===

func (s *Server) handleBitmapComponents(args json.RawMessage) (interface{}, error) {
	var a bitmapArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	b, err := s.raster(&a)
	if err != nil {
		return nil, err
	}
	c := b.Components()
	return &c, nil
}

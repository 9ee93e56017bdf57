// Package server implements the MCP (Model Context Protocol) server for the
// bitmap outliner.
//
// This package provides a JSON-RPC 2.0 server that exposes contour extraction
// through the MCP protocol, so MCP clients can turn binary rasters into
// closed vector outlines.
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
// Every tool takes the raster in one of three forms: width, height and a flat
// 0/1 data array; rows of text ('#' foreground, '.' background); or a
// two-colour picture of hex pixels with its background colour.
//
// Outline Extraction:
//   - bitmap_outline: Segments, SVG path data and per-loop summary
//   - bitmap_outline_svg: Standalone SVG document
//   - bitmap_outline_polygons: Absolute vertex lists and point tests
//
// Debugging:
//   - bitmap_outline_grid: Dump of the boundary-arrow grid
//
// Analysis:
//   - bitmap_components: Foreground region and hole counts
//
// # Outliner Caching
//
// Outliners are cached per raster size and reused across tool calls, so a
// client outlining many rasters of one size allocates the arrow grid once.
// The cache is a least-recently-used list bounded by Config.CacheCells grid
// cells; an outliner whose extraction fails is evicted. Every extraction
// starts from a cleared grid. Requests are handled one at a time, which keeps
// each cached outliner single-threaded.
//
// # Limits
//
// Rasters with more than Config.MaxCells cells are rejected before any grid
// is allocated.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
//	srv := server.New(server.Config{Version: version})
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server

// Package bitmap builds the binary rasters consumed by the outliner.
//
// A Bitmap is a rectangular grid of cells stored row by row, one byte per
// cell. A zero byte is background and any other value is foreground. The
// package offers three ways to obtain one:
//
//   - Parse reads rows of text such as "#.#", the form used by tests and by
//     the MCP tools.
//   - FromValues takes a flat list of 0/1 integers, the form JSON clients
//     send.
//   - FromImage maps an in-memory two-colour image onto a raster.
//
// # Coordinate System
//
// Cell (0,0) is the top-left cell, X increases rightward and Y increases
// downward, matching the vertex coordinates of the outline package.
//
// # Connectivity
//
// Components counts the foreground regions and background holes of a raster
// using the same connectivity as the outliner: foreground cells connect
// through shared edges only (4-connected), background cells also through
// shared corners (8-connected). The counts therefore match the number of
// outer and hole loops the outliner produces.
//
// # Input Restrictions
//
// Rasters are strictly binary. There is no thresholding of grey levels and
// no decoding of image files; FromImage rejects an image with more than two
// colours.
package bitmap

// Package outline traces the boundaries of a binary raster into closed,
// axis-aligned vector contours.
//
// Every foreground region produces one outer loop and every background hole
// inside a region produces one inner loop. The output is a flat sequence of
// segments: a move-to anchor (Direction None, absolute coordinates) opens each
// loop and relative horizontal or vertical draws follow it.
//
// # Coordinate System
//
// One raster cell is one unit. Loop coordinates lie on cell corners:
//   - (0, 0) is the top-left corner of the top-left cell
//   - X increases rightward, Y increases downward
//   - (width, height) is the bottom-right corner of the raster
//
// # Algorithm Overview
//
// Extraction runs three passes over an arrow grid, strictly in order:
//
//  1. Build: every edge between a foreground cell and a background cell (or
//     the raster border) becomes one arrow, oriented so that the foreground
//     is always on the right-hand side of travel. Top edges point Right,
//     bottom edges Left, left edges Up and right edges Down.
//  2. Classify: each arrow loop is walked once and tagged as inner (hole) or
//     outer (region). A loop found from a Left arrow is a hole, since the first
//     horizontal arrow of a hole in scan order is the bottom edge of the
//     foreground above it.
//  3. Trace: each loop is walked again, runs of equal arrows are merged into a
//     single draw and the segments are emitted.
//
// At a checkerboard vertex, where two foreground cells touch only at a corner,
// the walk turns toward the foreground first. Foreground regions are therefore
// 4-connected and holes 8-connected: diagonal neighbours become separate
// loops that share a vertex.
//
// # Closing Edges
//
// The draw that returns to the anchor is never emitted. Consumers must close
// each loop back to its move-to anchor, as the "z" command of an SVG path does.
// Loop.Closing reports the omitted displacement.
//
// # Fill Rule
//
// Outer loops run clockwise on screen and holes counter-clockwise, but the
// output is meant to be filled with the even-odd rule, which needs no winding
// bookkeeping.
//
// # Thread Safety
//
// Outline is safe to call concurrently. An Outliner or a Grid must not be used
// from more than one goroutine at a time.
package outline

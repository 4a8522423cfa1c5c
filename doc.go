// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gridparse discovers spatial structure in sparsely populated 2-D
// cell grids. Given a grid of text values it finds, without any annotation:
//
//   - Blocks: regions of filled cells clustered by spatial proximity,
//     each with a border ring (distance 1) and a frame ring (distance 2).
//   - Cell clusters and subclusters: tighter groupings inside each block,
//     down to 4-connected components.
//   - Block joins, block subclusters, and block clusters: higher-order
//     groupings derived from how neighboring blocks' outlines overlap.
//   - A construct classification for each cell cluster into one of
//     table, matrix, key-value, or tree, with an orientation.
//
// The entry point is Parse, a pure function from a Grid snapshot to a
// Result holding the structural graph and a StyleMap assigning semantic
// labels to grid coordinates. The parse is single-threaded; ParseBatch
// runs independent parses of many grids concurrently.
//
// All coordinates are 1-indexed: row 1 is the top row, column 1 the
// leftmost column. External keys use the form "R{row}C{col}".
package gridparse

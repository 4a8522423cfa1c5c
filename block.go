// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gridparse

// Block is a proximity cluster of filled cells together with its two
// surrounding outline rings. The rings are conceptual outlines: they may
// extend past the grid's far edges (the style emitter clips them) but
// never below row 1 or column 1.
type Block struct {
	Bounds Rect

	// Canvas holds the block's filled cells, row-major.
	Canvas []Point

	// Border is the ring at Chebyshev distance 1 around Bounds.
	Border []Point

	// Frame is the ring at distance 2: the box expanded by 2 minus the
	// box expanded by 1.
	Frame []Point

	// Clusters are the cell clusters found inside the canvas.
	Clusters []*CellCluster
}

// newBlock lifts a container into a Block by enumerating its outline rings.
func newBlock(c Container) *Block {
	return &Block{
		Bounds: c.Bounds,
		Canvas: c.Points,
		Border: ringPoints(c.Bounds, 1),
		Frame:  ringPoints(c.Bounds, 2),
	}
}

// translate shifts the block's bounds, canvas, and rings by (dRow, dCol).
// The rings are re-enumerated so cells pushed below row/column 1 drop out
// and previously dropped cells reappear.
func (b *Block) translate(dRow, dCol int) {
	b.Bounds = Rect{
		Top:    b.Bounds.Top + dRow,
		Left:   b.Bounds.Left + dCol,
		Bottom: b.Bounds.Bottom + dRow,
		Right:  b.Bounds.Right + dCol,
	}
	for i := range b.Canvas {
		b.Canvas[i].Row += dRow
		b.Canvas[i].Col += dCol
	}
	b.Border = ringPoints(b.Bounds, 1)
	b.Frame = ringPoints(b.Bounds, 2)
	for _, cl := range b.Clusters {
		cl.translate(dRow, dCol)
	}
}

// EmptyKind partitions the unfilled cells of a block's bounding box.
type EmptyKind int

const (
	// EmptyCanvas marks an unfilled cell outside every cluster box.
	EmptyCanvas EmptyKind = iota
	// EmptyCluster marks an unfilled cell inside some cluster's box.
	EmptyCluster
)

// classifyEmptyCells partitions the complement of the block's canvas within
// its bounding box into cluster-empty and canvas-empty cells, row-major.
// A cell inside a cluster's box that is unfilled in the grid is
// cluster-empty; cluster-empty wins over canvas-empty.
func classifyEmptyCells(g Grid, b *Block) (clusterEmpty, canvasEmpty []Point) {
	canvas := pointSet(b.Canvas)
	for row := b.Bounds.Top; row <= b.Bounds.Bottom; row++ {
		for col := b.Bounds.Left; col <= b.Bounds.Right; col++ {
			p := Point{Row: row, Col: col}
			if _, ok := canvas[packPoint(p)]; ok {
				continue
			}
			kind := EmptyCanvas
			for _, cl := range b.Clusters {
				if cl.Bounds.Contains(p) && !cl.contains(p) && !cellFilled(g, row, col) {
					kind = EmptyCluster
					break
				}
			}
			if kind == EmptyCluster {
				clusterEmpty = append(clusterEmpty, p)
			} else {
				canvasEmpty = append(canvasEmpty, p)
			}
		}
	}
	return clusterEmpty, canvasEmpty
}

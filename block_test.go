// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gridparse

import "testing"

func TestBlockRingsDisjoint(t *testing.T) {
	b := newBlock(Container{
		Bounds: Rect{Top: 3, Left: 3, Bottom: 4, Right: 5},
		Points: rectPoints(Rect{Top: 3, Left: 3, Bottom: 4, Right: 5}),
	})

	canvas := pointSet(b.Canvas)
	border := pointSet(b.Border)
	frame := pointSet(b.Frame)
	for _, p := range b.Border {
		if _, ok := canvas[packPoint(p)]; ok {
			t.Errorf("border point %v inside canvas", p)
		}
	}
	for _, p := range b.Frame {
		if _, ok := canvas[packPoint(p)]; ok {
			t.Errorf("frame point %v inside canvas", p)
		}
		if _, ok := border[packPoint(p)]; ok {
			t.Errorf("frame point %v inside border", p)
		}
	}
	if len(border) != len(b.Border) || len(frame) != len(b.Frame) {
		t.Error("ring enumeration produced duplicate points")
	}
}

func TestBlockRingSizes(t *testing.T) {
	// An interior 2x3 box has a full border ring of 14 cells and a full
	// frame ring of 22.
	b := newBlock(Container{
		Bounds: Rect{Top: 4, Left: 4, Bottom: 5, Right: 6},
		Points: rectPoints(Rect{Top: 4, Left: 4, Bottom: 5, Right: 6}),
	})
	if len(b.Border) != 14 {
		t.Errorf("border has %d cells, want 14", len(b.Border))
	}
	if len(b.Frame) != 22 {
		t.Errorf("frame has %d cells, want 22", len(b.Frame))
	}
}

func TestBlockRingsDropNonPositiveCoordinates(t *testing.T) {
	// A block hugging the top-left corner loses the ring cells that would
	// fall at row/col 0 or below.
	b := newBlock(Container{
		Bounds: Rect{Top: 1, Left: 1, Bottom: 2, Right: 2},
		Points: rectPoints(Rect{Top: 1, Left: 1, Bottom: 2, Right: 2}),
	})
	for _, p := range append(append([]Point{}, b.Border...), b.Frame...) {
		if p.Row < 1 || p.Col < 1 {
			t.Errorf("ring cell %v has non-positive coordinate", p)
		}
	}
	// Border keeps only the right and bottom arms: cells in rows 1-3 and
	// cols 1-3 minus the box itself.
	if len(b.Border) != 5 {
		t.Errorf("corner border has %d cells, want 5", len(b.Border))
	}
	if len(b.Frame) != 7 {
		t.Errorf("corner frame has %d cells, want 7", len(b.Frame))
	}
}

func TestBlockRingsMayExceedGridEdge(t *testing.T) {
	// Rings are conceptual outlines: a block at the grid's far corner
	// keeps ring cells past the edge (the style emitter clips them).
	b := newBlock(Container{
		Bounds: Rect{Top: 9, Left: 9, Bottom: 10, Right: 10},
		Points: rectPoints(Rect{Top: 9, Left: 9, Bottom: 10, Right: 10}),
	})
	beyond := false
	for _, p := range b.Border {
		if p.Row > 10 || p.Col > 10 {
			beyond = true
		}
	}
	if !beyond {
		t.Error("expected border cells beyond the grid's far edge")
	}
}

func TestClassifyEmptyCells(t *testing.T) {
	// One block containing two clusters with a gap column between them.
	// (2,2) is empty inside the left cluster's box; (1,3) is inside the
	// block's box but outside both cluster boxes.
	g := mustGrid(t, 8, 8, map[string]string{
		"R1C1": "a", "R1C2": "b", "R2C1": "c",
		"R1C4": "d", "R2C4": "e",
	})
	res := Parse(g, nil)
	if len(res.Blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(res.Blocks))
	}
	b := res.Blocks[0]
	if len(b.Clusters) != 2 {
		t.Fatalf("expected 2 clusters, got %d", len(b.Clusters))
	}

	clusterEmpty, canvasEmpty := classifyEmptyCells(g, b)
	clusterSet := pointSet(clusterEmpty)
	canvasSet := pointSet(canvasEmpty)

	if _, ok := clusterSet[packPoint(Point{2, 2})]; !ok {
		t.Errorf("(2,2) should be cluster-empty; cluster-empty = %v", clusterEmpty)
	}
	if _, ok := canvasSet[packPoint(Point{1, 3})]; !ok {
		t.Errorf("(1,3) should be canvas-empty; canvas-empty = %v", canvasEmpty)
	}

	// The two label sets never overlap and never cover canvas cells.
	canvas := pointSet(b.Canvas)
	for _, p := range clusterEmpty {
		if _, ok := canvasSet[packPoint(p)]; ok {
			t.Errorf("%v is both cluster-empty and canvas-empty", p)
		}
		if _, ok := canvas[packPoint(p)]; ok {
			t.Errorf("cluster-empty %v is a filled canvas cell", p)
		}
	}
}

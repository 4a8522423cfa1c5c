// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gridparse

import "testing"

// singleConstruct parses the grid and returns the construct of its only
// cell cluster.
func singleConstruct(t *testing.T, g *CellGrid) Construct {
	t.Helper()
	res := Parse(g, nil)
	if len(res.Blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(res.Blocks))
	}
	if len(res.Blocks[0].Clusters) != 1 {
		t.Fatalf("expected 1 cluster, got %d", len(res.Blocks[0].Clusters))
	}
	return res.Blocks[0].Clusters[0].Construct
}

func TestDetectMatrix(t *testing.T) {
	// A 3x3 box with exactly one empty cell at its top-left corner.
	g := mustGrid(t, 5, 5, map[string]string{
		"R1C2": "A", "R1C3": "B",
		"R2C1": "1", "R2C2": "x", "R2C3": "y",
		"R3C1": "2", "R3C2": "u", "R3C3": "v",
	})
	res := Parse(g, nil)
	if len(res.Blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(res.Blocks))
	}
	b := res.Blocks[0]
	if b.Bounds != (Rect{Top: 1, Left: 1, Bottom: 3, Right: 3}) {
		t.Errorf("block bounds = %+v, want R1C1:R3C3", b.Bounds)
	}
	if len(b.Clusters) != 1 {
		t.Fatalf("expected 1 cluster, got %d", len(b.Clusters))
	}
	if b.Clusters[0].Bounds != b.Bounds {
		t.Errorf("cluster bounds %+v differ from block bounds %+v", b.Clusters[0].Bounds, b.Bounds)
	}
	if got := b.Clusters[0].Construct.Kind; got != ConstructMatrix {
		t.Errorf("construct = %v, want matrix", got)
	}
}

func TestDetectTable(t *testing.T) {
	g, _ := NewCellGrid(5, 5)
	fillRect(t, g, Rect{Top: 1, Left: 1, Bottom: 2, Right: 3})
	if got := singleConstruct(t, g); got.Kind != ConstructTable {
		t.Errorf("construct = %v, want table", got.Kind)
	}
}

func TestDetectKeyValueRegular(t *testing.T) {
	g := mustGrid(t, 5, 5, map[string]string{
		"R1C1": "Name",
		"R2C2": "first", "R2C3": "John",
		"R3C2": "last", "R3C3": "Doe",
	})
	got := singleConstruct(t, g)
	if got.Kind != ConstructKeyValue {
		t.Fatalf("construct = %v, want key-value", got.Kind)
	}
	if got.Orientation != OrientationRegular {
		t.Errorf("orientation = %v, want regular", got.Orientation)
	}
}

func TestDetectKeyValueTransposed(t *testing.T) {
	// Row 2 carries more filled cells than column 2, flipping orientation.
	g := mustGrid(t, 5, 6, map[string]string{
		"R1C1": "hdr",
		"R2C2": "k1", "R2C3": "k2", "R2C4": "k3",
		"R3C3": "v2",
	})
	got := singleConstruct(t, g)
	if got.Kind != ConstructKeyValue {
		t.Fatalf("construct = %v, want key-value", got.Kind)
	}
	if got.Orientation != OrientationTransposed {
		t.Errorf("orientation = %v, want transposed", got.Orientation)
	}
}

func TestDetectTreeRegular(t *testing.T) {
	g := mustGrid(t, 5, 5, map[string]string{
		"R1C1": "root", "R2C1": "child1", "R3C1": "child2",
	})
	got := singleConstruct(t, g)
	if got.Kind != ConstructTree {
		t.Fatalf("construct = %v, want tree", got.Kind)
	}
	if got.Orientation != OrientationRegular {
		t.Errorf("orientation = %v, want regular", got.Orientation)
	}
}

func TestDetectTreeTransposed(t *testing.T) {
	g := mustGrid(t, 5, 5, map[string]string{
		"R1C1": "root", "R1C2": "a", "R1C3": "b",
	})
	got := singleConstruct(t, g)
	if got.Kind != ConstructTree {
		t.Fatalf("construct = %v, want tree", got.Kind)
	}
	if got.Orientation != OrientationTransposed {
		t.Errorf("orientation = %v, want transposed", got.Orientation)
	}
}

func TestDetectIndentedTree(t *testing.T) {
	// A ragged indent pattern: no table, matrix, or key-value rule fires.
	g := mustGrid(t, 6, 6, map[string]string{
		"R1C1": "root",
		"R2C1": "a", "R2C2": "leaf",
		"R3C2": "b", "R3C3": "leaf2",
	})
	got := singleConstruct(t, g)
	if got.Kind != ConstructTree {
		t.Errorf("construct = %v, want tree", got.Kind)
	}
	if got.Orientation != OrientationRegular {
		t.Errorf("orientation = %v, want regular", got.Orientation)
	}
}

func TestSizeGateSingleCell(t *testing.T) {
	g := mustGrid(t, 5, 5, map[string]string{"R3C3": "only"})
	got := singleConstruct(t, g)
	if got.Kind != ConstructNone {
		t.Errorf("construct = %v, want none for a 1x1 cluster", got.Kind)
	}
}

func TestMatrixRequiresCornerGap(t *testing.T) {
	// One empty cell that is not the top-left corner: no matrix; the
	// key-value corner pattern fails too, so the tree rule catches it.
	g := mustGrid(t, 5, 5, map[string]string{
		"R1C1": "a", "R1C2": "b",
		"R2C1": "c",
	})
	got := singleConstruct(t, g)
	if got.Kind == ConstructMatrix || got.Kind == ConstructTable {
		t.Errorf("construct = %v, want neither table nor matrix", got.Kind)
	}
}

func TestKeyValueNeedsValueTail(t *testing.T) {
	// The checkerboard corner without any fill in column 3 or beyond
	// falls through to tree.
	g := mustGrid(t, 5, 5, map[string]string{
		"R1C1": "k", "R2C2": "v", "R3C2": "v2",
	})
	got := singleConstruct(t, g)
	if got.Kind != ConstructTree {
		t.Errorf("construct = %v, want tree without a value tail", got.Kind)
	}
}

// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gridparse

import (
	"errors"
	"testing"
)

// mustGrid builds a grid from external "R{r}C{c}" keys; shared by the
// package tests.
func mustGrid(t *testing.T, rows, cols int, cells map[string]string) *CellGrid {
	t.Helper()
	g, err := NewCellGrid(rows, cols)
	if err != nil {
		t.Fatalf("NewCellGrid(%d, %d): %v", rows, cols, err)
	}
	for key, text := range cells {
		p, err := ParseRef(key)
		if err != nil {
			t.Fatalf("bad cell key %q: %v", key, err)
		}
		if err := g.Set(p.Row, p.Col, text); err != nil {
			t.Fatalf("Set(%s): %v", key, err)
		}
	}
	return g
}

func TestNewCellGridRejectsBadDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, -1}} {
		if _, err := NewCellGrid(dims[0], dims[1]); !errors.Is(err, ErrBadDimensions) {
			t.Errorf("NewCellGrid(%d, %d): expected ErrBadDimensions, got %v", dims[0], dims[1], err)
		}
	}
}

func TestSetTrimsTrailingWhitespace(t *testing.T) {
	g := mustGrid(t, 3, 3, nil)
	if err := g.Set(2, 2, "value  \t\n"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := g.Raw(2, 2); got != "value" {
		t.Errorf("Raw(2,2) = %q, want %q", got, "value")
	}
}

func TestSetEmptyClearsCell(t *testing.T) {
	g := mustGrid(t, 3, 3, map[string]string{"R2C2": "x"})
	if err := g.Set(2, 2, "   "); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if len(g.FilledCells()) != 0 {
		t.Errorf("expected no filled cells after clearing, got %v", g.FilledCells())
	}
}

func TestSetOutOfRange(t *testing.T) {
	g := mustGrid(t, 2, 2, nil)
	for _, p := range []Point{{0, 1}, {1, 0}, {3, 1}, {1, 3}} {
		if err := g.Set(p.Row, p.Col, "x"); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Set(%d, %d): expected ErrOutOfRange, got %v", p.Row, p.Col, err)
		}
	}
}

func TestFilledCellsRowMajorOrder(t *testing.T) {
	g := mustGrid(t, 4, 4, map[string]string{
		"R3C1": "c", "R1C2": "a", "R2C4": "b", "R1C4": "a2",
	})
	want := []Point{{1, 2}, {1, 4}, {2, 4}, {3, 1}}
	got := g.FilledCells()
	if len(got) != len(want) {
		t.Fatalf("FilledCells returned %d cells, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("FilledCells[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDisabledSentinelExcludedFromFilledCells(t *testing.T) {
	g := mustGrid(t, 3, 3, map[string]string{"R1C1": "^off", "R2C2": "x"})
	if !gridDisabled(g) {
		t.Fatal("expected grid to be disabled")
	}
	got := g.FilledCells()
	if len(got) != 1 || got[0] != (Point{2, 2}) {
		t.Errorf("FilledCells = %v, want [{2 2}]", got)
	}
}

func TestSentinelOnlyAppliesAtRoot(t *testing.T) {
	g := mustGrid(t, 3, 3, map[string]string{"R2C2": "^caret"})
	if gridDisabled(g) {
		t.Error("^ outside (1,1) must not disable the grid")
	}
	if !cellFilled(g, 2, 2) {
		t.Error("^ outside (1,1) is ordinary text and counts as filled")
	}
}

func TestWriteToDisabledRootDiscarded(t *testing.T) {
	g := mustGrid(t, 3, 3, map[string]string{"R1C1": "^off"})
	if err := g.Set(1, 1, "replacement"); err != nil {
		t.Fatalf("Set on disabled root returned error: %v", err)
	}
	if got := g.Raw(1, 1); got != "^off" {
		t.Errorf("disabled root overwritten: Raw(1,1) = %q, want %q", got, "^off")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := mustGrid(t, 3, 3, map[string]string{"R1C2": "a"})
	clone := g.Clone()
	if err := clone.Set(3, 3, "b"); err != nil {
		t.Fatalf("Set on clone: %v", err)
	}
	if g.Raw(3, 3) != "" {
		t.Error("mutating the clone changed the original")
	}
	if clone.Raw(1, 2) != "a" {
		t.Error("clone lost original content")
	}
}

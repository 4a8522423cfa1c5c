// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gridparse

// ConstructKind represents the semantic shape detected in a cell cluster
type ConstructKind int

const (
	ConstructNone     ConstructKind = iota
	ConstructTable                  // Fully filled rectangle
	ConstructMatrix                 // One empty cell, at the top-left corner
	ConstructKeyValue               // Key column/row with offset values
	ConstructTree                   // Indented hierarchy (fallback)
)

// String returns the string representation of ConstructKind
func (k ConstructKind) String() string {
	switch k {
	case ConstructTable:
		return "table"
	case ConstructMatrix:
		return "matrix"
	case ConstructKeyValue:
		return "key-value"
	case ConstructTree:
		return "tree"
	default:
		return "none"
	}
}

// Orientation tags how a key-value or tree construct is laid out. Tables
// and matrices carry the zero value; it is not meaningful for them.
type Orientation int

const (
	OrientationRegular Orientation = iota
	OrientationTransposed
)

// String returns the string representation of Orientation
func (o Orientation) String() string {
	if o == OrientationTransposed {
		return "transposed"
	}
	return "regular"
}

// Construct is the classification assigned to one cell cluster.
type Construct struct {
	Kind        ConstructKind
	Orientation Orientation
}

// detectConstruct applies the four ordered construct rules to a cluster.
// The first matching rule wins. Cells are addressed relative to the
// cluster's top-left corner, and "filled" is the grid's own filled
// predicate, not membership in the cluster's point set.
func detectConstruct(g Grid, cl *CellCluster) Construct {
	bounds := cl.Bounds
	w, h := bounds.Width(), bounds.Height()

	// Rule 0: clusters smaller than 2 in both directions carry no shape.
	if w < 2 && h < 2 {
		return Construct{Kind: ConstructNone}
	}

	// at reads the filled predicate at the 1-indexed cluster-relative cell.
	at := func(relRow, relCol int) bool {
		return cellFilled(g, bounds.Top+relRow-1, bounds.Left+relCol-1)
	}

	empties := 0
	emptyAtCorner := false
	for row := 1; row <= h; row++ {
		for col := 1; col <= w; col++ {
			if !at(row, col) {
				empties++
				if row == 1 && col == 1 {
					emptyAtCorner = true
				}
			}
		}
	}

	// Rules 1 and 2 need a genuinely two-dimensional box: a single row or
	// column of fills is a list shape and falls through to the tree rule.
	if w >= 2 && h >= 2 {
		// Rule 1: a fully filled box is a table.
		if empties == 0 {
			return Construct{Kind: ConstructTable}
		}

		// Rule 2: exactly one empty cell, at the top-left corner, is a
		// matrix.
		if empties == 1 && emptyAtCorner {
			return Construct{Kind: ConstructMatrix}
		}
	}

	// Rule 3: key-value needs the checkerboard corner and at least one
	// fill in the third column or beyond.
	if at(1, 1) && !at(1, 2) && !at(2, 1) && at(2, 2) {
		valueTail := false
		for row := 1; row <= h && !valueTail; row++ {
			for col := 3; col <= w; col++ {
				if at(row, col) {
					valueTail = true
					break
				}
			}
		}
		if valueTail {
			kRow, kCol := 0, 0
			for col := 1; col <= w; col++ {
				if at(2, col) {
					kRow++
				}
			}
			for row := 1; row <= h; row++ {
				if at(row, 2) {
					kCol++
				}
			}
			orient := OrientationRegular
			if kRow > kCol {
				orient = OrientationTransposed
			}
			return Construct{Kind: ConstructKeyValue, Orientation: orient}
		}
	}

	// Rule 4: everything else is a tree; the two corner probes pick the
	// growth direction.
	orient := OrientationRegular
	switch {
	case at(1, 1) && at(2, 1) && !at(1, 2):
		orient = OrientationRegular
	case at(1, 1) && at(1, 2) && !at(2, 1):
		orient = OrientationTransposed
	}
	return Construct{Kind: ConstructTree, Orientation: orient}
}

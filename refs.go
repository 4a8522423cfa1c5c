// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gridparse

import "regexp"

// Move describes a translation of a source cell range by a fixed delta.
// A single-cell move uses a degenerate 1x1 From rectangle.
type Move struct {
	From Rect
	DRow int
	DCol int
}

// refPattern matches embedded cell references and ranges inside formula
// text. Malformed substrings simply fail to match and are left untouched.
var refPattern = regexp.MustCompile(`R(\d+)C(\d+)(?::R(\d+)C(\d+))?`)

// UpdateReferences rewrites R{r}C{c} references in every formula cell
// (raw text beginning with "=") to track the given moves.
//
// A range reference exactly matching a move's source rectangle is
// substituted as a whole; otherwise each endpoint falling inside a source
// rectangle shifts by that move's delta. Endpoints that would land outside
// the grid keep their original text. All substitutions are computed before
// any cell is overwritten.
func UpdateReferences(g *CellGrid, moves []Move) {
	if len(moves) == 0 {
		return
	}

	type pendingWrite struct {
		cell Point
		text string
	}
	var writes []pendingWrite

	for _, cell := range g.FilledCells() {
		text := g.Raw(cell.Row, cell.Col)
		if len(text) == 0 || text[0] != '=' {
			continue
		}
		updated := refPattern.ReplaceAllStringFunc(text, func(match string) string {
			return rewriteRef(g, match, moves)
		})
		if updated != text {
			writes = append(writes, pendingWrite{cell: cell, text: updated})
		}
	}

	for _, w := range writes {
		g.Set(w.cell.Row, w.cell.Col, w.text)
	}
}

// rewriteRef rewrites one matched reference or range against the moves.
func rewriteRef(g *CellGrid, match string, moves []Move) string {
	if r, err := ParseRange(match); err == nil {
		for _, mv := range moves {
			if r == mv.From {
				shifted := Rect{
					Top:    r.Top + mv.DRow,
					Left:   r.Left + mv.DCol,
					Bottom: r.Bottom + mv.DRow,
					Right:  r.Right + mv.DCol,
				}
				if !rectInGrid(g, shifted) {
					return match
				}
				return FormatRange(shifted)
			}
		}
		top := shiftPoint(g, Point{Row: r.Top, Col: r.Left}, moves)
		bottom := shiftPoint(g, Point{Row: r.Bottom, Col: r.Right}, moves)
		return FormatRef(top) + ":" + FormatRef(bottom)
	}

	p, err := ParseRef(match)
	if err != nil {
		return match
	}
	return FormatRef(shiftPoint(g, p, moves))
}

// shiftPoint applies the first move whose source rectangle contains p.
// Out-of-grid results leave p unchanged.
func shiftPoint(g *CellGrid, p Point, moves []Move) Point {
	for _, mv := range moves {
		if !mv.From.Contains(p) {
			continue
		}
		moved := Point{Row: p.Row + mv.DRow, Col: p.Col + mv.DCol}
		rows, cols := g.Dimensions()
		if moved.Row < 1 || moved.Col < 1 || moved.Row > rows || moved.Col > cols {
			return p
		}
		return moved
	}
	return p
}

func rectInGrid(g *CellGrid, r Rect) bool {
	rows, cols := g.Dimensions()
	return r.Top >= 1 && r.Left >= 1 && r.Bottom <= rows && r.Right <= cols
}

// TranslateBlock moves a block by (dRow, dCol): the raw cells of its
// canvas move with the block's bounds and outline rings in lock-step, and
// formula references across the grid are rewritten to follow. The
// destination must lie inside the grid.
func TranslateBlock(g *CellGrid, b *Block, dRow, dCol int) error {
	moved := Rect{
		Top:    b.Bounds.Top + dRow,
		Left:   b.Bounds.Left + dCol,
		Bottom: b.Bounds.Bottom + dRow,
		Right:  b.Bounds.Right + dCol,
	}
	if !rectInGrid(g, moved) {
		return wrapError("translate block", ErrOutOfRange)
	}
	if dRow == 0 && dCol == 0 {
		return nil
	}

	// Stage the canvas texts, then clear sources and write destinations.
	texts := make([]string, len(b.Canvas))
	for i, p := range b.Canvas {
		texts[i] = g.Raw(p.Row, p.Col)
	}
	for _, p := range b.Canvas {
		g.Set(p.Row, p.Col, "")
	}
	for i, p := range b.Canvas {
		g.Set(p.Row+dRow, p.Col+dCol, texts[i])
	}

	from := b.Bounds
	b.translate(dRow, dCol)
	UpdateReferences(g, []Move{{From: from, DRow: dRow, DCol: dCol}})
	return nil
}

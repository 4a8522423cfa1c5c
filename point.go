// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gridparse

import "sort"

// Point identifies a single grid cell. Rows and columns are 1-indexed;
// row 1 is the top row, column 1 the leftmost column.
type Point struct {
	Row, Col int
}

// packPoint packs a point into a single int64 key for set membership tests.
// Upper 32 bits hold the row, lower 32 bits the column.
func packPoint(p Point) int64 {
	return int64(p.Row)<<32 | int64(uint32(p.Col))
}

// Rect is an inclusive axis-aligned cell rectangle. A valid Rect has
// Top <= Bottom and Left <= Right.
type Rect struct {
	Top, Left, Bottom, Right int
}

// RectOf returns the degenerate rectangle covering the single point p.
func RectOf(p Point) Rect {
	return Rect{Top: p.Row, Left: p.Col, Bottom: p.Row, Right: p.Col}
}

// Width returns the number of columns spanned by r.
func (r Rect) Width() int { return r.Right - r.Left + 1 }

// Height returns the number of rows spanned by r.
func (r Rect) Height() int { return r.Bottom - r.Top + 1 }

// Area returns the number of cells covered by r.
func (r Rect) Area() int { return r.Width() * r.Height() }

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.Row >= r.Top && p.Row <= r.Bottom && p.Col >= r.Left && p.Col <= r.Right
}

// Intersects reports whether r and o share at least one cell. The test is
// closed on both ends: rectangles touching on an edge or corner intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.Left <= o.Right && o.Left <= r.Right && r.Top <= o.Bottom && o.Top <= r.Bottom
}

// Union returns the smallest rectangle covering both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		Top:    min(r.Top, o.Top),
		Left:   min(r.Left, o.Left),
		Bottom: max(r.Bottom, o.Bottom),
		Right:  max(r.Right, o.Right),
	}
}

// Expand grows r by n cells on every side and clamps the result to the
// grid [1..rows] x [1..cols].
func (r Rect) Expand(n, rows, cols int) Rect {
	return Rect{
		Top:    max(1, r.Top-n),
		Left:   max(1, r.Left-n),
		Bottom: min(rows, r.Bottom+n),
		Right:  min(cols, r.Right+n),
	}
}

// expandUnclamped grows r by n cells on every side with no grid clamping.
// Used for outline rings, which conceptually extend past the grid edge.
func (r Rect) expandUnclamped(n int) Rect {
	return Rect{Top: r.Top - n, Left: r.Left - n, Bottom: r.Bottom + n, Right: r.Right + n}
}

// boundsOf computes the bounding rectangle of a non-empty point set.
func boundsOf(points []Point) Rect {
	b := RectOf(points[0])
	for _, p := range points[1:] {
		if p.Row < b.Top {
			b.Top = p.Row
		}
		if p.Row > b.Bottom {
			b.Bottom = p.Row
		}
		if p.Col < b.Left {
			b.Left = p.Col
		}
		if p.Col > b.Right {
			b.Right = p.Col
		}
	}
	return b
}

// ringPoints enumerates the ring of cells at Chebyshev distance dist around
// r, in row-major order. Cells with row < 1 or col < 1 are dropped; cells
// beyond the grid's far edges are kept (callers clip them when styling).
func ringPoints(r Rect, dist int) []Point {
	outer := r.expandUnclamped(dist)
	inner := r.expandUnclamped(dist - 1)
	ring := make([]Point, 0, 2*(outer.Width()+outer.Height()))
	for row := outer.Top; row <= outer.Bottom; row++ {
		for col := outer.Left; col <= outer.Right; col++ {
			if row < 1 || col < 1 {
				continue
			}
			if inner.Contains(Point{Row: row, Col: col}) {
				continue
			}
			ring = append(ring, Point{Row: row, Col: col})
		}
	}
	return ring
}

// rectPoints enumerates every cell of r in row-major order.
func rectPoints(r Rect) []Point {
	pts := make([]Point, 0, r.Area())
	for row := r.Top; row <= r.Bottom; row++ {
		for col := r.Left; col <= r.Right; col++ {
			pts = append(pts, Point{Row: row, Col: col})
		}
	}
	return pts
}

// sortPoints orders points row-major in place.
func sortPoints(pts []Point) {
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].Row != pts[j].Row {
			return pts[i].Row < pts[j].Row
		}
		return pts[i].Col < pts[j].Col
	})
}

// dedupPoints removes duplicates while preserving first-occurrence order.
func dedupPoints(pts []Point) []Point {
	seen := make(map[int64]struct{}, len(pts))
	out := pts[:0]
	for _, p := range pts {
		k := packPoint(p)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, p)
	}
	return out
}

// pointSet builds a packed-key membership set over pts.
func pointSet(pts []Point) map[int64]struct{} {
	set := make(map[int64]struct{}, len(pts))
	for _, p := range pts {
		set[packPoint(p)] = struct{}{}
	}
	return set
}

// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gridparse

import "encoding/json"

// Label is a semantic role assigned to a grid cell.
type Label string

const (
	LabelDisabled         Label = "disabled"
	LabelCanvas           Label = "canvas"
	LabelCanvasEmpty      Label = "canvas-empty"
	LabelBorder           Label = "border"
	LabelFrame            Label = "frame"
	LabelClusterEmpty     Label = "cluster-empty"
	LabelLinked           Label = "linked"
	LabelLocked           Label = "locked"
	LabelClusterCanvas    Label = "cluster-canvas"
	LabelClusterPerimeter Label = "cluster-perimeter"
	LabelClusterBuffer    Label = "cluster-buffer"
)

// labelPriority ranks labels for Primary: a block's own canvas, border,
// and frame are highest; disabled is lowest.
var labelPriority = map[Label]int{
	LabelCanvas:           10,
	LabelBorder:           9,
	LabelFrame:            8,
	LabelClusterCanvas:    7,
	LabelClusterPerimeter: 6,
	LabelClusterBuffer:    5,
	LabelLocked:           4,
	LabelLinked:           3,
	LabelClusterEmpty:     2,
	LabelCanvasEmpty:      1,
	LabelDisabled:         0,
}

// StyleMap assigns each grid coordinate an ordered, deduplicated list of
// labels. Labels appear in emission order; all labels a cell receives are
// retained.
type StyleMap struct {
	rows, cols int
	labels     map[Point][]Label
}

func newStyleMap(rows, cols int) *StyleMap {
	return &StyleMap{rows: rows, cols: cols, labels: make(map[Point][]Label)}
}

// add appends a label to a cell, clipping out-of-grid cells and dropping
// duplicates for that cell.
func (m *StyleMap) add(p Point, l Label) {
	if p.Row < 1 || p.Col < 1 || p.Row > m.rows || p.Col > m.cols {
		return
	}
	for _, have := range m.labels[p] {
		if have == l {
			return
		}
	}
	m.labels[p] = append(m.labels[p], l)
}

func (m *StyleMap) addAll(pts []Point, l Label) {
	for _, p := range pts {
		m.add(p, l)
	}
}

// Labels returns the labels assigned to a cell in emission order. Cells
// with no labels return nil.
func (m *StyleMap) Labels(row, col int) []Label {
	return m.labels[Point{Row: row, Col: col}]
}

// Primary returns the highest-priority label assigned to a cell, or false
// if the cell has none.
func (m *StyleMap) Primary(row, col int) (Label, bool) {
	labels := m.labels[Point{Row: row, Col: col}]
	if len(labels) == 0 {
		return "", false
	}
	best := labels[0]
	for _, l := range labels[1:] {
		if labelPriority[l] > labelPriority[best] {
			best = l
		}
	}
	return best, true
}

// Len returns the number of cells carrying at least one label.
func (m *StyleMap) Len() int { return len(m.labels) }

// Cells returns every labeled cell in row-major order.
func (m *StyleMap) Cells() []Point {
	pts := make([]Point, 0, len(m.labels))
	for p := range m.labels {
		pts = append(pts, p)
	}
	sortPoints(pts)
	return pts
}

// MarshalJSON renders the style map as {"R{r}C{c}": [label, ...]}.
func (m *StyleMap) MarshalJSON() ([]byte, error) {
	out := make(map[string][]Label, len(m.labels))
	for p, labels := range m.labels {
		out[FormatRef(p)] = labels
	}
	return json.Marshal(out)
}

// emitStyles walks the parsed structures in their fixed order and layers
// labels onto the style map:
//
//  1. the disabled root marker,
//  2. each block's cluster-empty then canvas-empty cells,
//  3. each block subcluster's linked then locked points,
//  4. each block cluster's canvas, perimeter, and buffer regions,
//  5. each block's canvas, border, and frame.
func emitStyles(g Grid, res *Result) *StyleMap {
	rows, cols := g.Dimensions()
	m := newStyleMap(rows, cols)

	if gridDisabled(g) {
		m.add(Point{Row: 1, Col: 1}, LabelDisabled)
	}

	for _, b := range res.Blocks {
		clusterEmpty, canvasEmpty := classifyEmptyCells(g, b)
		m.addAll(clusterEmpty, LabelClusterEmpty)
		m.addAll(canvasEmpty, LabelCanvasEmpty)
	}

	for _, s := range res.Subclusters {
		m.addAll(s.LinkedPoints, LabelLinked)
		m.addAll(s.LockedPoints, LabelLocked)
	}

	for _, k := range res.BlockClusters {
		m.addAll(rectPoints(k.Canvas), LabelClusterCanvas)
		m.addAll(ringRegion(k.Perimeter, k.Canvas), LabelClusterPerimeter)
		m.addAll(ringRegion(k.Buffer, k.Perimeter), LabelClusterBuffer)
	}

	for _, b := range res.Blocks {
		m.addAll(b.Canvas, LabelCanvas)
		m.addAll(b.Border, LabelBorder)
		m.addAll(b.Frame, LabelFrame)
	}

	return m
}

// ringRegion enumerates the cells of outer not covered by inner, row-major.
func ringRegion(outer, inner Rect) []Point {
	var pts []Point
	for row := outer.Top; row <= outer.Bottom; row++ {
		for col := outer.Left; col <= outer.Right; col++ {
			p := Point{Row: row, Col: col}
			if !inner.Contains(p) {
				pts = append(pts, p)
			}
		}
	}
	return pts
}

// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gridparse

// CellCluster is a tight sub-grouping of filled cells inside one block,
// produced by re-running the container builder at expand 1 over the
// block's canvas. A cluster belongs to exactly one block.
type CellCluster struct {
	Bounds Rect

	// Filled holds the cluster's filled cells, row-major.
	Filled []Point

	// Subclusters are the 4-connected components of Filled.
	Subclusters []*CellSubcluster

	// Construct is the classification assigned by the construct detector.
	Construct Construct

	filledSet map[int64]struct{}
}

// contains reports whether p is one of the cluster's filled cells.
func (c *CellCluster) contains(p Point) bool {
	_, ok := c.filledSet[packPoint(p)]
	return ok
}

func (c *CellCluster) translate(dRow, dCol int) {
	c.Bounds = Rect{
		Top:    c.Bounds.Top + dRow,
		Left:   c.Bounds.Left + dCol,
		Bottom: c.Bounds.Bottom + dRow,
		Right:  c.Bounds.Right + dCol,
	}
	for i := range c.Filled {
		c.Filled[i].Row += dRow
		c.Filled[i].Col += dCol
	}
	c.filledSet = pointSet(c.Filled)
	for _, s := range c.Subclusters {
		s.translate(dRow, dCol)
	}
}

// CellSubcluster is a non-empty 4-connected component of a cell cluster's
// filled points. Diagonal neighbors do not connect.
type CellSubcluster struct {
	Points []Point
	Bounds Rect
}

func (s *CellSubcluster) translate(dRow, dCol int) {
	s.Bounds = Rect{
		Top:    s.Bounds.Top + dRow,
		Left:   s.Bounds.Left + dCol,
		Bottom: s.Bounds.Bottom + dRow,
		Right:  s.Bounds.Right + dCol,
	}
	for i := range s.Points {
		s.Points[i].Row += dRow
		s.Points[i].Col += dCol
	}
}

// CellCount returns the number of filled cells in the subcluster.
func (s *CellSubcluster) CellCount() int { return len(s.Points) }

// Width returns the bounding-box width.
func (s *CellSubcluster) Width() int { return s.Bounds.Width() }

// Height returns the bounding-box height.
func (s *CellSubcluster) Height() int { return s.Bounds.Height() }

// BoundingArea returns the bounding-box cell count.
func (s *CellSubcluster) BoundingArea() int { return s.Bounds.Area() }

// Density returns CellCount divided by BoundingArea.
func (s *CellSubcluster) Density() float64 {
	return float64(s.CellCount()) / float64(s.BoundingArea())
}

// Perimeter returns the number of cells having at least one absent
// 4-neighbor within the subcluster.
func (s *CellSubcluster) Perimeter() int {
	set := pointSet(s.Points)
	count := 0
	for _, p := range s.Points {
		for _, n := range neighbors4(p) {
			if _, ok := set[packPoint(n)]; !ok {
				count++
				break
			}
		}
	}
	return count
}

func neighbors4(p Point) [4]Point {
	return [4]Point{
		{Row: p.Row - 1, Col: p.Col},
		{Row: p.Row + 1, Col: p.Col},
		{Row: p.Row, Col: p.Col - 1},
		{Row: p.Row, Col: p.Col + 1},
	}
}

// extractClusters finds the block's cell clusters by re-running the
// container builder at the cluster expand radius over the canvas, then
// splits each cluster into its 4-connected subclusters.
func extractClusters(b *Block, expand, rows, cols int) []*CellCluster {
	containers := buildContainers(b.Canvas, expand, rows, cols)
	clusters := make([]*CellCluster, 0, len(containers))
	for _, c := range containers {
		cl := &CellCluster{
			Bounds:    c.Bounds,
			Filled:    c.Points,
			filledSet: pointSet(c.Points),
		}
		cl.Subclusters = findSubclusters(c.Points)
		clusters = append(clusters, cl)
	}
	return clusters
}

// findSubclusters flood-fills the 4-connected components of a point set.
// Components are emitted in the order their first cell appears in points
// (row-major when points is), and each component's points come out
// row-major.
func findSubclusters(points []Point) []*CellSubcluster {
	set := pointSet(points)
	visited := make(map[int64]bool, len(points))
	var subs []*CellSubcluster

	for _, start := range points {
		if visited[packPoint(start)] {
			continue
		}
		component := []Point{start}
		visited[packPoint(start)] = true
		for frontier := []Point{start}; len(frontier) > 0; {
			p := frontier[0]
			frontier = frontier[1:]
			for _, n := range neighbors4(p) {
				k := packPoint(n)
				if _, ok := set[k]; !ok || visited[k] {
					continue
				}
				visited[k] = true
				component = append(component, n)
				frontier = append(frontier, n)
			}
		}
		sortPoints(component)
		subs = append(subs, &CellSubcluster{Points: component, Bounds: boundsOf(component)})
	}
	return subs
}

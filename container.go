// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gridparse

import "sort"

// Container is a rectangle owning the filled points it was grown around.
// Containers produced by buildContainers partition their input points and
// have pairwise non-overlapping rectangles once expanded by the build's
// expand parameter.
type Container struct {
	Bounds Rect
	Points []Point
}

// buildContainers groups filled points into containers by iteratively
// expanding each seed's bounding box by expand cells and absorbing every
// point or previously emitted container the expansion touches. The
// returned list is sorted lexicographically on (top, left, bottom, right).
//
// Each iteration of the inner loops either absorbs a point or removes a
// container, so both loops reach a fixed point.
func buildContainers(points []Point, expand, rows, cols int) []Container {
	if len(points) == 0 {
		return nil
	}

	absorbed := make(map[int64]bool, len(points))
	var emitted []Container

	for _, seed := range points {
		if absorbed[packPoint(seed)] {
			continue
		}
		absorbed[packPoint(seed)] = true
		cur := Container{Bounds: RectOf(seed), Points: []Point{seed}}

		// Expand-absorb: sweep the remaining points until a full pass
		// adds nothing.
		for {
			grown := cur.Bounds.Expand(expand, rows, cols)
			changed := false
			for _, q := range points {
				if absorbed[packPoint(q)] {
					continue
				}
				if !grown.Contains(q) {
					continue
				}
				absorbed[packPoint(q)] = true
				cur.Points = append(cur.Points, q)
				cur.Bounds = boundsOf(cur.Points)
				grown = cur.Bounds.Expand(expand, rows, cols)
				changed = true
			}
			if !changed {
				break
			}
		}

		// Merge with any previously emitted container the expanded
		// rectangle now reaches. Merging can grow the bounds, so rescan
		// until no merge fires.
		for {
			grown := cur.Bounds.Expand(expand, rows, cols)
			merged := false
			for i := 0; i < len(emitted); i++ {
				if !grown.Intersects(emitted[i].Bounds) {
					continue
				}
				cur.Points = append(cur.Points, emitted[i].Points...)
				cur.Bounds = boundsOf(cur.Points)
				emitted = append(emitted[:i], emitted[i+1:]...)
				merged = true
				break
			}
			if !merged {
				break
			}
		}

		emitted = append(emitted, cur)
	}

	for i := range emitted {
		sortPoints(emitted[i].Points)
	}
	sort.Slice(emitted, func(i, j int) bool {
		a, b := emitted[i].Bounds, emitted[j].Bounds
		if a.Top != b.Top {
			return a.Top < b.Top
		}
		if a.Left != b.Left {
			return a.Left < b.Left
		}
		if a.Bottom != b.Bottom {
			return a.Bottom < b.Bottom
		}
		return a.Right < b.Right
	})
	return emitted
}

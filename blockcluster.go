// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gridparse

// BlockCluster groups block subclusters whose perimeter rectangles touch,
// taken to transitive closure. Subclusters are referenced by index into
// the parse result's list.
type BlockCluster struct {
	SubclusterIDs []int

	// Canvas is the union of the member subclusters' bounding rectangles;
	// Perimeter and Buffer inflate it by 2 and 4, clamped to the grid.
	Canvas    Rect
	Perimeter Rect
	Buffer    Rect
}

// buildBlockClusters emits one cluster per connected component of the
// subcluster graph under perimeter-rectangle overlap. The overlap test is
// strict rectangle intersection, not point-set intersection.
func buildBlockClusters(subs []*BlockSubcluster, rows, cols int) []*BlockCluster {
	visited := make([]bool, len(subs))
	var clusters []*BlockCluster
	for start := range subs {
		if visited[start] {
			continue
		}
		visited[start] = true
		members := []int{start}
		for frontier := []int{start}; len(frontier) > 0; {
			cur := frontier[0]
			frontier = frontier[1:]
			for other := range subs {
				if visited[other] {
					continue
				}
				if subs[cur].Perimeter.Intersects(subs[other].Perimeter) {
					visited[other] = true
					members = append(members, other)
					frontier = append(frontier, other)
				}
			}
		}

		canvas := subs[members[0]].Bounds
		for _, id := range members[1:] {
			canvas = canvas.Union(subs[id].Bounds)
		}
		clusters = append(clusters, &BlockCluster{
			SubclusterIDs: members,
			Canvas:        canvas,
			Perimeter:     canvas.Expand(2, rows, cols),
			Buffer:        canvas.Expand(4, rows, cols),
		})
	}
	return clusters
}

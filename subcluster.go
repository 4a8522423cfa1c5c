// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gridparse

// BlockSubcluster is a connected component of the undirected graph whose
// vertices are blocks and whose edges are joins. A block with no joins
// forms a singleton subcluster. Blocks and joins are referenced by index
// into the parse result's lists.
type BlockSubcluster struct {
	BlockIDs []int
	JoinIDs  []int

	// LinkedPoints and LockedPoints aggregate the component's join point
	// sets, deduplicated.
	LinkedPoints []Point
	LockedPoints []Point

	// Bounds is the union of the member blocks' canvas bounds; Perimeter
	// and Buffer are Bounds inflated by 2 and 4, clamped to the grid.
	Bounds    Rect
	Perimeter Rect
	Buffer    Rect
}

// buildBlockSubclusters emits one subcluster per connected component of
// the block/join graph, visiting blocks in index order so component order
// and membership order are deterministic.
func buildBlockSubclusters(blocks []*Block, joins []*BlockJoin, rows, cols int) []*BlockSubcluster {
	adj := make([][]int, len(blocks))
	for jid, j := range joins {
		adj[j.A] = append(adj[j.A], jid)
		adj[j.B] = append(adj[j.B], jid)
	}

	visited := make([]bool, len(blocks))
	var subs []*BlockSubcluster
	for start := range blocks {
		if visited[start] {
			continue
		}
		visited[start] = true
		members := []int{start}
		joinSeen := make(map[int]bool)
		var joinIDs []int
		for frontier := []int{start}; len(frontier) > 0; {
			b := frontier[0]
			frontier = frontier[1:]
			for _, jid := range adj[b] {
				if !joinSeen[jid] {
					joinSeen[jid] = true
					joinIDs = append(joinIDs, jid)
				}
				other := joins[jid].A
				if other == b {
					other = joins[jid].B
				}
				if !visited[other] {
					visited[other] = true
					members = append(members, other)
					frontier = append(frontier, other)
				}
			}
		}

		bounds := blocks[members[0]].Bounds
		for _, id := range members[1:] {
			bounds = bounds.Union(blocks[id].Bounds)
		}
		var linked, locked []Point
		for _, jid := range joinIDs {
			linked = append(linked, joins[jid].LinkedPoints...)
			locked = append(locked, joins[jid].LockedPoints...)
		}
		subs = append(subs, &BlockSubcluster{
			BlockIDs:     members,
			JoinIDs:      joinIDs,
			LinkedPoints: dedupPoints(linked),
			LockedPoints: dedupPoints(locked),
			Bounds:       bounds,
			Perimeter:    bounds.Expand(2, rows, cols),
			Buffer:       bounds.Expand(4, rows, cols),
		})
	}
	return subs
}

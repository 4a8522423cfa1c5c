// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gridparse

// JoinType classifies the adjacency between two blocks
type JoinType int

const (
	// JoinLinked is the weak adjacency: the blocks' frames overlap.
	JoinLinked JoinType = iota
	// JoinLocked is the strong adjacency: one block's border touches the
	// other's frame. Locked dominates linked.
	JoinLocked
)

// String returns the string representation of JoinType
func (t JoinType) String() string {
	if t == JoinLocked {
		return "locked"
	}
	return "linked"
}

// BlockJoin records how two distinct blocks' outlines overlap. Blocks are
// referenced by their index in the parse result's block list.
type BlockJoin struct {
	A, B int
	Type JoinType

	// LinkedPoints is the frame-on-frame intersection.
	LinkedPoints []Point

	// LockedPoints is the deduplicated union of border(A)∩frame(B) and
	// frame(A)∩border(B).
	LockedPoints []Point

	// AllPoints is the deduplicated union of locked and linked points.
	// A join exists iff AllPoints is non-empty.
	AllPoints []Point
}

// blockOutline caches a block's outline membership sets for overlap tests.
type blockOutline struct {
	border map[int64]struct{}
	frame  map[int64]struct{}
}

// buildJoins emits one join per unordered pair of blocks whose outlines
// overlap. Pairs are visited outer/inner over the sorted block list, so
// join order is deterministic. Border-on-border contact alone produces no
// join; only frame-on-frame and border-on-frame overlaps count.
func buildJoins(blocks []*Block) []*BlockJoin {
	outlines := make([]blockOutline, len(blocks))
	for i, b := range blocks {
		outlines[i] = blockOutline{border: pointSet(b.Border), frame: pointSet(b.Frame)}
	}

	var joins []*BlockJoin
	for i := 0; i < len(blocks); i++ {
		for j := i + 1; j < len(blocks); j++ {
			// The two rings sit within Chebyshev distance 2 of the
			// bounds, so distant pairs cannot overlap.
			if !blocks[i].Bounds.expandUnclamped(2).Intersects(blocks[j].Bounds.expandUnclamped(2)) {
				continue
			}
			ff := intersectPoints(blocks[i].Frame, outlines[j].frame)
			bf := intersectPoints(blocks[i].Border, outlines[j].frame)
			fb := intersectPoints(blocks[i].Frame, outlines[j].border)
			if len(ff) == 0 && len(bf) == 0 && len(fb) == 0 {
				continue
			}
			locked := dedupPoints(append(bf, fb...))
			linked := ff
			join := &BlockJoin{
				A:            i,
				B:            j,
				LinkedPoints: linked,
				LockedPoints: locked,
				AllPoints:    dedupPoints(append(append([]Point{}, locked...), linked...)),
			}
			if len(locked) > 0 {
				join.Type = JoinLocked
			} else {
				join.Type = JoinLinked
			}
			joins = append(joins, join)
		}
	}
	return joins
}

// intersectPoints returns the members of pts present in set, preserving
// pts order.
func intersectPoints(pts []Point, set map[int64]struct{}) []Point {
	var out []Point
	for _, p := range pts {
		if _, ok := set[packPoint(p)]; ok {
			out = append(out, p)
		}
	}
	return out
}

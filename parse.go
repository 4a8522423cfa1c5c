// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gridparse

import (
	"time"

	"github.com/rs/zerolog"
)

// Default expansion distances for the two container-builder passes.
const (
	// DefaultBlockExpand is the proximity radius used when clustering the
	// whole grid's filled cells into blocks.
	DefaultBlockExpand = 2

	// DefaultClusterExpand is the tighter radius used when re-clustering a
	// block's canvas into cell clusters.
	DefaultClusterExpand = 1
)

// Options configures a parse. The zero value is ready to use.
type Options struct {
	// BlockExpand overrides the block-pass proximity radius (default 2).
	BlockExpand int

	// ClusterExpand overrides the cluster-pass radius (default 1).
	ClusterExpand int

	// Logger receives one debug event per pipeline phase. Nil disables
	// phase logging.
	Logger *zerolog.Logger
}

func (o *Options) withDefaults() Options {
	var opts Options
	if o != nil {
		opts = *o
	}
	if opts.BlockExpand < 1 {
		opts.BlockExpand = DefaultBlockExpand
	}
	if opts.ClusterExpand < 1 {
		opts.ClusterExpand = DefaultClusterExpand
	}
	if opts.Logger == nil {
		nop := zerolog.Nop()
		opts.Logger = &nop
	}
	return opts
}

// Result is the full output of one parse: the structural graph plus the
// style map. Joins, subclusters, and block clusters refer to blocks and to
// each other by index into these slices.
type Result struct {
	Blocks        []*Block
	Joins         []*BlockJoin
	Subclusters   []*BlockSubcluster
	BlockClusters []*BlockCluster
	Styles        *StyleMap
}

// Parse runs the full geometric pipeline over a snapshot of g. It is a
// pure function: the grid is only read, and the returned structures are
// unshared. Parsing the same grid twice yields structurally identical
// results. The grid must be quiescent for the duration of the call.
func Parse(g Grid, opts *Options) *Result {
	o := opts.withDefaults()
	rows, cols := g.Dimensions()
	res := &Result{}

	start := time.Now()
	filled := g.FilledCells()
	containers := buildContainers(filled, o.BlockExpand, rows, cols)
	for _, c := range containers {
		res.Blocks = append(res.Blocks, newBlock(c))
	}
	o.Logger.Debug().
		Int("filled", len(filled)).
		Int("blocks", len(res.Blocks)).
		Dur("elapsed", time.Since(start)).
		Msg("block pass")

	start = time.Now()
	clusterCount := 0
	for _, b := range res.Blocks {
		b.Clusters = extractClusters(b, o.ClusterExpand, rows, cols)
		for _, cl := range b.Clusters {
			cl.Construct = detectConstruct(g, cl)
		}
		clusterCount += len(b.Clusters)
	}
	o.Logger.Debug().
		Int("clusters", clusterCount).
		Dur("elapsed", time.Since(start)).
		Msg("cluster pass")

	start = time.Now()
	res.Joins = buildJoins(res.Blocks)
	res.Subclusters = buildBlockSubclusters(res.Blocks, res.Joins, rows, cols)
	res.BlockClusters = buildBlockClusters(res.Subclusters, rows, cols)
	o.Logger.Debug().
		Int("joins", len(res.Joins)).
		Int("subclusters", len(res.Subclusters)).
		Int("block_clusters", len(res.BlockClusters)).
		Dur("elapsed", time.Since(start)).
		Msg("join pass")

	start = time.Now()
	res.Styles = emitStyles(g, res)
	o.Logger.Debug().
		Int("styled_cells", res.Styles.Len()).
		Dur("elapsed", time.Since(start)).
		Msg("style pass")

	return res
}

// Constructs returns every detected construct paired with its cluster, in
// block then cluster order. Clusters classified as none are skipped.
func (r *Result) Constructs() []ConstructMatch {
	var out []ConstructMatch
	for bi, b := range r.Blocks {
		for _, cl := range b.Clusters {
			if cl.Construct.Kind == ConstructNone {
				continue
			}
			out = append(out, ConstructMatch{Block: bi, Cluster: cl, Construct: cl.Construct})
		}
	}
	return out
}

// ConstructMatch pairs a detected construct with its cluster and owning
// block index.
type ConstructMatch struct {
	Block     int
	Cluster   *CellCluster
	Construct Construct
}

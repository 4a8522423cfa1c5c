// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gridparse

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// BatchOptions configures ParseBatch.
type BatchOptions struct {
	// Workers is the number of concurrent parses (0 = NumCPU).
	Workers int

	// Parse carries the per-grid parse options.
	Parse *Options
}

// ParseBatch parses many independent grids concurrently. Each parse is
// single-threaded and touches only its own grid, so callers must keep
// every grid quiescent until the call returns (clone grids that are still
// being edited). Results align positionally with grids; a canceled
// context abandons unstarted work and returns the context's error.
func ParseBatch(ctx context.Context, grids []Grid, opts *BatchOptions) ([]*Result, error) {
	if len(grids) == 0 {
		return nil, nil
	}
	workers := 0
	var parseOpts *Options
	if opts != nil {
		workers = opts.Workers
		parseOpts = opts.Parse
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]*Result, len(grids))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, g := range grids {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = Parse(g, parseOpts)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

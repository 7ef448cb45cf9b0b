// SPDX-License-Identifier: MIT

package matrix

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Parallel tuning parameters.
const (
	// ParallelMinOps is the minimum number of multiply-adds in Mul before the
	// result columns are split across workers.
	ParallelMinOps = 64 * 64 * 64

	// ParallelMinElems is the minimum element count before element-wise
	// kernels (Add, Sub, Scale, Neg, Abs) split their flat loop.
	ParallelMinElems = 1 << 16
)

// forStrips runs body over [0, n) split into contiguous strips.
// work is the total cost estimate; below minWork, or when only one worker is
// available, body runs once on the calling goroutine over the full range.
//
// Every strip is disjoint, so a body that writes only the output elements of
// its own [lo, hi) range never races with another strip. The call returns
// after every strip has finished.
//
// Complexity: O(1) scheduling overhead per strip.
func forStrips(n, work, minWork int, body func(lo, hi int)) {
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if work < minWork || workers < 2 {
		body(0, n)
		return
	}

	stripe := (n + workers - 1) / workers
	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += stripe {
		lo := lo // per-iteration copy (go 1.21 loop semantics)
		hi := min(lo+stripe, n)
		g.Go(func() error {
			body(lo, hi)
			return nil
		})
	}
	_ = g.Wait() // bodies never fail
}

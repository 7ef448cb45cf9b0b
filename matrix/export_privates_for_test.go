// SPDX-License-Identifier: MIT

package matrix

// Test bridge for unexported kernels.
//
// The file is package matrix, so it sees private symbols; the _test.go suffix
// keeps it out of production builds. matrix_test reaches the internals only
// through the names below.

var (
	// ExportedInner exposes the strided dot product used by Mul.
	ExportedInner = inner
	// ExportedForStrips exposes the strip scheduler.
	ExportedForStrips = forStrips
	// ExportedDeriveSeed exposes the SplitMix64 seed mixer.
	ExportedDeriveSeed = deriveSeed
	// ExportedNextSeed exposes the per-call seed source.
	ExportedNextSeed = nextSeed
)

// OptionsSnapshot is a read-only view of resolved Options.
type OptionsSnapshot struct {
	HasRand bool
	Lo, Hi  float64
}

// NewMatrixOptionsSnapshot resolves opts and returns their effective values.
func NewMatrixOptionsSnapshot(opts ...Option) OptionsSnapshot {
	o := NewMatrixOptions(opts...)

	return OptionsSnapshot{HasRand: o.rng != nil, Lo: o.lo, Hi: o.hi}
}

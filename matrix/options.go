// SPDX-License-Identifier: MIT

// Package matrix: options for Randmat and RandSquare.
//
// Option setters are applied in order over the Default* constants; the last
// setter for a field wins. WithSeed and WithRand pin the random stream;
// without them each call draws a fresh seed (rng.go). WithRand(nil) and a
// malformed WithRange panic at construction, before any matrix is built.
package matrix

import (
	"math"
	"math/rand"
)

const (
	// DefaultRandLow is the inclusive lower bound of Randmat values.
	DefaultRandLow = 0.0

	// DefaultRandHigh is the exclusive upper bound of Randmat values.
	DefaultRandHigh = 1.0
)

const (
	panicRandNil      = "matrix: WithRand(nil)"
	panicRangeInvalid = "matrix: WithRange: bounds must be finite with lo < hi"
)

// Option configures a random generator call.
type Option func(*Options)

// Options is the resolved generator configuration.
type Options struct {
	rng    *rand.Rand // nil until resolved; never shared implicitly across calls
	lo, hi float64    // value range [lo, hi)
}

// WithSeed pins the generator to a new *rand.Rand seeded with seed.
// The seed is used verbatim; two calls with equal seeds produce equal matrices.
// Complexity: O(1).
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. The caller owns it; *rand.Rand is not
// goroutine-safe, so do not share it across concurrent generator calls.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic(panicRandNil)
	}

	return func(o *Options) {
		o.rng = r
	}
}

// WithRange sets the value range [lo, hi) of generated elements.
// Panics unless both bounds are finite and lo < hi.
func WithRange(lo, hi float64) Option {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || !(lo < hi) {
		panic(panicRangeInvalid)
	}

	return func(o *Options) {
		o.lo, o.hi = lo, hi
	}
}

// NewMatrixOptions resolves option setters against documented defaults.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user setters over the defaults and attaches a freshly
// seeded RNG when none was supplied.
func gatherOptions(user ...Option) Options {
	o := Options{
		lo: DefaultRandLow,
		hi: DefaultRandHigh,
	}
	for _, set := range user {
		set(&o)
	}
	if o.rng == nil {
		o.rng = rngFromSeed(nextSeed())
	}

	return o
}

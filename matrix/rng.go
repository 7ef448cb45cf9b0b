// Package matrix - RNG utilities for random generators.
//
// Goals:
//   - No silent fixed seed: a call without WithSeed/WithRand gets a seed drawn
//     from a process-wide source that is itself seeded from the clock once.
//   - Independent streams: each drawn seed is mixed with a call counter so two
//     calls in the same nanosecond still diverge.
//   - Reproducibility on demand: WithSeed(s) bypasses this file entirely.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. The seed source is guarded by a
//     mutex; the per-call *rand.Rand it produces is never shared.
package matrix

import (
	"math/rand"
	"sync"
	"time"
)

// seedSource hands out per-call seeds.
var seedSource = struct {
	mu     sync.Mutex
	rng    *rand.Rand
	stream uint64
}{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}

// nextSeed returns a fresh seed for a call that supplied no RNG option.
// Complexity: O(1).
func nextSeed() int64 {
	seedSource.mu.Lock()
	defer seedSource.mu.Unlock()
	seedSource.stream++

	return deriveSeed(seedSource.rng.Int63(), seedSource.stream)
}

// rngFromSeed returns a deterministic *rand.Rand for seed.
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed.
//
// Notes:
//   - Constants are the canonical SplitMix64 multipliers/finalizer; small
//     changes in inputs produce large, well-distributed output changes.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

package aco

import "math/rand"

// Ants run in parallel, so sharing one math/rand source would make results
// depend on goroutine scheduling. Every ant instead gets its own stream,
// derived deterministically from the master seed and the ant's position in
// the run, which keeps a fixed seed reproducible under any worker count.

// deriveSeed mixes the master seed with a stream id using the SplitMix64
// finalizer. The constants are the canonical SplitMix64 multipliers; they
// give strong bit diffusion so consecutive stream ids produce uncorrelated
// seeds.
func deriveSeed(master int64, stream uint64) int64 {
	x := uint64(master) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// antRNG returns the independent random stream for one ant in one
// iteration.
func antRNG(master int64, ants, iteration, ant int) *rand.Rand {
	stream := uint64(iteration)*uint64(ants) + uint64(ant)
	return rand.New(rand.NewSource(deriveSeed(master, stream)))
}

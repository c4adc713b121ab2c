// Package aco implements the Ant Colony Optimization search for a
// minimal-length closed tour over the airport distance matrix.
//
// Each iteration, every ant independently constructs a complete tour
// guided by the pheromone field and edge distances; construction is
// read-only with respect to shared state and fans out across workers.
// Between iterations the field evaporates and every constructed tour
// deposits reinforcement proportional to its quality, with one extra
// elitist deposit along the best tour found so far. The search runs a
// fixed number of iterations; it does not detect convergence, so callers
// may re-run with a different seed when the result looks like a local
// optimum.
package aco

import (
	"context"
	"errors"
	"runtime"

	"github.com/maratik123/tsp/internal/distance"
	"golang.org/x/sync/errgroup"
)

// initialIntensityMultiplier scales the mean pairwise distance into the
// default uniform pheromone level.
const initialIntensityMultiplier = 10.0

// Configuration errors. All are fatal before the search starts; the
// search itself never fails on valid input.
var (
	ErrTooFewNodes   = errors.New("aco: need at least 2 nodes")
	ErrNoAnts        = errors.New("aco: ants must be positive")
	ErrNoIterations  = errors.New("aco: iterations must be positive")
	ErrEvaporation   = errors.New("aco: evaporation rate must be within [0,1]")
	ErrNegativeAlpha = errors.New("aco: alpha must be non-negative")
	ErrNegativeBeta  = errors.New("aco: beta must be non-negative")
)

// Params are the run parameters of one optimizer invocation.
type Params struct {
	// Ants is the number of tours constructed per iteration.
	Ants int
	// Iterations is the fixed iteration budget.
	Iterations int
	// Evaporation is the per-iteration pheromone decay rate in [0,1].
	Evaporation float64
	// Alpha is the pheromone exponent of the selection weight.
	Alpha float64
	// Beta is the distance exponent of the selection weight.
	Beta float64
	// Seed is the master random seed. Two runs with equal seed and
	// parameters produce identical results.
	Seed int64
	// Workers caps concurrent ant construction; 0 means GOMAXPROCS.
	Workers int
	// Q is the deposit constant: a tour deposits Q/length on each of its
	// admissible edges. Zero selects the mean pairwise distance.
	Q float64
	// Intensity is the initial uniform pheromone level. Zero selects
	// 10 times the mean pairwise distance.
	Intensity float64
}

// Validate checks the documented parameter domains.
func (p Params) Validate() error {
	switch {
	case p.Ants <= 0:
		return ErrNoAnts
	case p.Iterations <= 0:
		return ErrNoIterations
	case p.Evaporation < 0 || p.Evaporation > 1:
		return ErrEvaporation
	case p.Alpha < 0:
		return ErrNegativeAlpha
	case p.Beta < 0:
		return ErrNegativeBeta
	}
	return nil
}

// Result is the outcome of one optimizer run.
type Result struct {
	// Tour is the best node order found, one catalog index per node,
	// implicitly closed by returning to Tour[0].
	Tour []int
	// Length is the total closed-tour length in kilometers.
	Length float64
	// Fallbacks counts construction steps across the whole run where the
	// minimum-leg constraint left no admissible candidate and the nearest
	// unvisited node was taken instead. Zero on fully connected graphs.
	Fallbacks int
}

// Progress is invoked after every completed iteration with the number of
// iterations done and the best length so far. May be nil.
type Progress func(iteration int, best float64)

// Solve runs the colony to completion. The context is honored at
// iteration boundaries only: on cancellation the best result found so far
// is returned together with the context error.
func Solve(ctx context.Context, dist *distance.Matrix, p Params, progress Progress) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	n := dist.Size()
	if n < 2 {
		return Result{}, ErrTooFewNodes
	}

	mean := dist.Mean()
	q := p.Q
	if q <= 0 {
		q = mean
	}
	intensity := p.Intensity
	if intensity <= 0 {
		intensity = initialIntensityMultiplier * mean
	}
	workers := p.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	field := NewField(dist, intensity)
	weights := dist.Edges(0)
	tours := make([]tour, p.Ants)
	ants := make([]*ant, p.Ants)
	for i := range ants {
		ants[i] = newAnt(n)
	}

	var best Result
	bestSet := false

	for iteration := 0; iteration < p.Iterations; iteration++ {
		if err := ctx.Err(); err != nil {
			return best, err
		}

		// Snapshot the selection weights: construction reads this frozen
		// view while the field itself is only touched after the barrier.
		field.fillWeights(weights, p.Alpha, p.Beta)

		g := new(errgroup.Group)
		g.SetLimit(workers)
		for a := 0; a < p.Ants; a++ {
			g.Go(func() error {
				rng := antRNG(p.Seed, p.Ants, iteration, a)
				tours[a] = ants[a].construct(dist, weights, rng)
				return nil
			})
		}
		// Construction never returns an error; Wait is the barrier that
		// ends the read-only phase.
		_ = g.Wait()

		// Fold the batch in ant order so results do not depend on
		// goroutine scheduling. Strict improvement keeps the earliest
		// best on ties.
		for i := range tours {
			best.Fallbacks += tours[i].fallbacks
			if !bestSet || tours[i].length < best.Length {
				bestSet = true
				best.Length = tours[i].length
				best.Tour = append(best.Tour[:0], tours[i].nodes...)
			}
		}

		field.Evaporate(p.Evaporation)
		for i := range tours {
			field.DepositTour(tours[i].nodes, q/tours[i].length)
		}
		// Elitist reinforcement of the incumbent best.
		field.DepositTour(best.Tour, q/best.Length)

		if progress != nil {
			progress(iteration+1, best.Length)
		}
	}

	return best, nil
}

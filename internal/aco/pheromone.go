package aco

import (
	"math"

	"github.com/maratik123/tsp/internal/distance"
	"github.com/maratik123/tsp/internal/graph"
)

// MinIntensity is the floor every pheromone weight is clamped to after
// evaporation. Keeping weights strictly positive means no admissible edge
// can become permanently unreachable through numerical underflow.
const MinIntensity = 1e-5

// Field holds one reinforcement weight per admissible edge. It is created
// by the optimizer at the start of a run and mutated only between
// iterations: evaporation decays every weight, deposits reinforce edges
// used by constructed tours.
type Field struct {
	dist  *distance.Matrix
	dists *graph.Dense[float64]
	tau   *graph.Dense[float64]
}

// NewField initializes the field with a uniform intensity on every edge.
func NewField(dist *distance.Matrix, initial float64) *Field {
	if initial < MinIntensity {
		initial = MinIntensity
	}
	return &Field{
		dist:  dist,
		dists: dist.AdmissibleDistances(),
		tau:   dist.Edges(initial),
	}
}

// Intensity returns the weight on edge (i, j).
func (f *Field) Intensity(i, j int) float64 { return f.tau.At(i, j, 0) }

// Evaporate decays every weight by the factor (1 - rho), clamping to
// MinIntensity so weights stay strictly positive.
func (f *Field) Evaporate(rho float64) {
	keep := 1 - rho
	f.tau.Apply(func(v float64) float64 {
		v *= keep
		if v < MinIntensity {
			return MinIntensity
		}
		return v
	})
}

// Deposit adds delta to the weight of edge (i, j). Deposits on
// inadmissible edges are dropped: a fallback leg has no pheromone entry
// to reinforce. Reports whether the deposit landed.
func (f *Field) Deposit(i, j int, delta float64) bool {
	if !f.dist.Admissible(i, j) {
		return false
	}
	return f.tau.Update(i, j, func(v float64) float64 { return v + delta })
}

// DepositTour adds delta along every leg of a closed tour, including the
// leg from the last node back to the first.
func (f *Field) DepositTour(nodes []int, delta float64) {
	for i, node := range nodes {
		next := nodes[(i+1)%len(nodes)]
		f.Deposit(node, next, delta)
	}
}

// fillWeights computes the selection weight tau^alpha * (1/d)^beta for
// every admissible edge into target; inadmissible edges get zero. Called
// once per iteration so that tour construction reads a consistent
// snapshot while deposits from the previous iteration settle.
func (f *Field) fillWeights(target *graph.Dense[float64], alpha, beta float64) {
	graph.MergeInto(f.tau, f.dists, target, func(tau, d float64) float64 {
		if d <= 0 {
			return 0
		}
		if tau < MinIntensity {
			tau = MinIntensity
		}
		return math.Pow(tau, alpha) / math.Pow(d, beta)
	})
}

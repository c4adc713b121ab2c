package aco

import (
	"math/rand"

	"github.com/maratik123/tsp/internal/distance"
	"github.com/maratik123/tsp/internal/graph"
	"github.com/maratik123/tsp/internal/kahan"
)

// ant carries the reusable per-goroutine state of tour construction:
// the visited marker, the roulette wheel and the node buffer survive
// across iterations to keep the hot loop allocation-free.
type ant struct {
	visited []bool
	wheel   wheel
	nodes   []int
}

func newAnt(n int) *ant {
	return &ant{
		visited: make([]bool, n),
		nodes:   make([]int, 0, n),
	}
}

// tour is one constructed closed tour: n nodes, implicitly closed by the
// leg from the last node back to the first. fallbacks counts the steps
// where no admissible unvisited node was reachable and the nearest
// unvisited node was taken instead.
type tour struct {
	nodes     []int
	length    float64
	fallbacks int
}

// construct builds one complete tour. The ant starts at a node drawn from
// its own random stream, then repeatedly samples the next node among
// unvisited admissible neighbors with probability proportional to
// tau^alpha * (1/d)^beta (precomputed in weights). When the admissible
// candidate set is empty the ant falls back to the nearest unvisited node
// regardless of admissibility, so every ant always finishes a full
// permutation even on a sparsified graph.
func (a *ant) construct(dist *distance.Matrix, weights *graph.Dense[float64], rng *rand.Rand) tour {
	n := dist.Size()
	for i := range a.visited {
		a.visited[i] = false
	}
	a.nodes = a.nodes[:0]

	start := rng.Intn(n)
	a.visited[start] = true
	a.nodes = append(a.nodes, start)

	current := start
	remaining := n - 1
	fallbacks := 0
	var length kahan.Adder

	for remaining > 0 {
		chosen := -1
		if remaining == 1 {
			for j := 0; j < n; j++ {
				if !a.visited[j] {
					chosen = j
					break
				}
			}
			if !dist.Admissible(current, chosen) {
				fallbacks++
			}
		} else {
			a.wheel.reset()
			for j := 0; j < n; j++ {
				if !a.visited[j] {
					a.wheel.add(j, weights.At(current, j, 0))
				}
			}
			if a.wheel.empty() {
				chosen = a.nearestUnvisited(dist, current, n)
				fallbacks++
			} else {
				chosen = a.wheel.spin(rng)
			}
		}

		a.visited[chosen] = true
		a.nodes = append(a.nodes, chosen)
		length.Add(dist.Between(current, chosen))
		current = chosen
		remaining--
	}

	nodes := make([]int, n)
	copy(nodes, a.nodes)
	return tour{
		nodes:     nodes,
		length:    length.SumWith(dist.Between(current, start)),
		fallbacks: fallbacks,
	}
}

// nearestUnvisited ignores the admissibility constraint; it exists only
// as the fallback that keeps tours complete when the minimum-leg
// threshold disconnects the remaining candidates.
func (a *ant) nearestUnvisited(dist *distance.Matrix, current, n int) int {
	best := -1
	bestDist := 0.0
	for j := 0; j < n; j++ {
		if a.visited[j] {
			continue
		}
		d := dist.Between(current, j)
		if best < 0 || d < bestDist {
			best = j
			bestDist = d
		}
	}
	return best
}

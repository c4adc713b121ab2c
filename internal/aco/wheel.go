package aco

import (
	"math/rand"
	"sort"
)

// wheel is a reusable roulette-wheel sampler over cumulative weights.
// One wheel lives per ant goroutine and is refilled at every step of tour
// construction, so the backing slices are reused between spins.
type wheel struct {
	cum   []float64
	items []int
	total float64
}

func (w *wheel) reset() {
	w.cum = w.cum[:0]
	w.items = w.items[:0]
	w.total = 0
}

// add registers an item with the given weight. Zero or negative weights
// are skipped: they can never be selected.
func (w *wheel) add(item int, weight float64) {
	if weight <= 0 {
		return
	}
	w.total += weight
	w.cum = append(w.cum, w.total)
	w.items = append(w.items, item)
}

// empty reports whether no selectable item was registered.
func (w *wheel) empty() bool { return len(w.items) == 0 }

// spin samples one item with probability proportional to its weight.
// Callers must check empty() first.
func (w *wheel) spin(rng *rand.Rand) int {
	r := rng.Float64() * w.total
	i := sort.SearchFloat64s(w.cum, r)
	// Float64 returns values below 1, but r may still land exactly on the
	// last boundary through rounding.
	if i == len(w.items) {
		i = len(w.items) - 1
	}
	return w.items[i]
}

// Package graph provides a dense symmetric edge store for complete graphs
// indexed by 0..n-1. Only the strict lower triangle is kept, so a graph of
// n nodes stores n*(n-1)/2 values. The diagonal is not stored: every
// accessor treats (i, i) as absent and callers supply their own default.
package graph

// Dense is a symmetric matrix of edge values over nodes 0..n-1.
// Dense[float64] backs the distance matrix and the pheromone field,
// Dense[bool] backs the admissible-edge set.
type Dense[T any] struct {
	size  int
	edges []T
}

// NewDense returns a Dense of the given size with all edges set to init.
func NewDense[T any](size int, init T) *Dense[T] {
	edges := make([]T, triangleLen(size))
	for i := range edges {
		edges[i] = init
	}
	return &Dense[T]{size: size, edges: edges}
}

// Build constructs a Dense by calling f for every unordered pair (i, j)
// with i > j.
func Build[T any](size int, f func(i, j int) T) *Dense[T] {
	edges := make([]T, 0, triangleLen(size))
	for i := 1; i < size; i++ {
		for j := 0; j < i; j++ {
			edges = append(edges, f(i, j))
		}
	}
	return &Dense[T]{size: size, edges: edges}
}

func triangleLen(size int) int {
	if size < 2 {
		return 0
	}
	return size * (size - 1) / 2
}

// pos maps an unordered pair to its lower-triangle offset.
// Callers guarantee i != j and both in range.
func pos(i, j int) int {
	if i < j {
		i, j = j, i
	}
	return i*(i-1)/2 + j
}

// Size returns the number of nodes.
func (d *Dense[T]) Size() int { return d.size }

// At returns the value for edge (i, j), or def when i == j or either
// index is out of range.
func (d *Dense[T]) At(i, j int, def T) T {
	if i == j || i < 0 || j < 0 || i >= d.size || j >= d.size {
		return def
	}
	return d.edges[pos(i, j)]
}

// Update applies f to the value stored on edge (i, j). Touching the
// diagonal or an out-of-range pair is a no-op and reports false.
func (d *Dense[T]) Update(i, j int, f func(T) T) bool {
	if i == j || i < 0 || j < 0 || i >= d.size || j >= d.size {
		return false
	}
	p := pos(i, j)
	d.edges[p] = f(d.edges[p])
	return true
}

// Apply rewrites every stored edge value in place.
func (d *Dense[T]) Apply(f func(T) T) {
	for i, v := range d.edges {
		d.edges[i] = f(v)
	}
}

// Each visits every unordered pair (i, j) with i > j and its value.
func (d *Dense[T]) Each(f func(i, j int, v T)) {
	k := 0
	for i := 1; i < d.size; i++ {
		for j := 0; j < i; j++ {
			f(i, j, d.edges[k])
			k++
		}
	}
}

// Map builds a new Dense of the same shape by transforming every edge value.
func Map[T, U any](d *Dense[T], f func(T) U) *Dense[U] {
	edges := make([]U, len(d.edges))
	for i, v := range d.edges {
		edges[i] = f(v)
	}
	return &Dense[U]{size: d.size, edges: edges}
}

// Merge builds a new Dense by combining two stores of equal size pairwise.
// It returns nil when the sizes differ.
func Merge[A, B, C any](a *Dense[A], b *Dense[B], f func(A, B) C) *Dense[C] {
	if a.size != b.size {
		return nil
	}
	edges := make([]C, len(a.edges))
	for i := range a.edges {
		edges[i] = f(a.edges[i], b.edges[i])
	}
	return &Dense[C]{size: a.size, edges: edges}
}

// MergeInto is Merge into a preallocated target of the same size, avoiding
// per-iteration allocations in hot loops. It reports false on size mismatch.
func MergeInto[A, B, C any](a *Dense[A], b *Dense[B], target *Dense[C], f func(A, B) C) bool {
	if a.size != b.size || a.size != target.size {
		return false
	}
	for i := range a.edges {
		target.edges[i] = f(a.edges[i], b.edges[i])
	}
	return true
}

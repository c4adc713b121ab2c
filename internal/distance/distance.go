// Package distance builds the dense pairwise great-circle distance matrix
// for a catalog of airports and derives the admissible-edge set under an
// optional minimum-leg-distance constraint.
package distance

import (
	"fmt"
	"strings"

	"github.com/maratik123/tsp/internal/catalog"
	"github.com/maratik123/tsp/internal/geo"
	"github.com/maratik123/tsp/internal/graph"
	"github.com/maratik123/tsp/internal/kahan"
)

// ExceptPairs lists unordered airport pairs that remain admissible even
// when their distance is below the minimum-leg threshold.
type ExceptPairs map[string]map[string]struct{}

// ParseExcepts parses pair specs in the form "ICAO-ICAO".
func ParseExcepts(pairs []string) (ExceptPairs, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	ep := make(ExceptPairs)
	for _, pair := range pairs {
		a, b, ok := strings.Cut(strings.TrimSpace(pair), "-")
		if !ok {
			return nil, fmt.Errorf("invalid except pair %q, expected ICAO-ICAO", pair)
		}
		if ep[a] == nil {
			ep[a] = make(map[string]struct{})
		}
		ep[a][b] = struct{}{}
	}
	return ep, nil
}

// Allows reports whether the pair is excepted, in either order.
func (ep ExceptPairs) Allows(a, b string) bool {
	if s, ok := ep[a]; ok {
		if _, ok := s[b]; ok {
			return true
		}
	}
	if s, ok := ep[b]; ok {
		if _, ok := s[a]; ok {
			return true
		}
	}
	return false
}

// Matrix is the symmetric pairwise distance matrix over catalog indices
// together with the derived admissible-edge set. It is computed once and
// read-only afterwards, so tour construction gets O(1) edge lookups.
type Matrix struct {
	km  *graph.Dense[float64]
	adm *graph.Dense[bool]
}

// New computes all pairwise great-circle distances for the catalog. An
// edge is admissible when its distance is at least minDist km, or when the
// pair is listed in excepts; minDist 0 admits every edge.
func New(cat *catalog.Catalog, minDist float64, excepts ExceptPairs) *Matrix {
	airports := cat.Airports()
	km := graph.Build(len(airports), func(i, j int) float64 {
		return geo.GreatCircle(airports[i].Coord, airports[j].Coord)
	})
	adm := graph.Build(len(airports), func(i, j int) bool {
		return km.At(i, j, 0) >= minDist ||
			excepts.Allows(airports[i].ICAO, airports[j].ICAO)
	})
	return &Matrix{km: km, adm: adm}
}

// NewFromMatrix wraps precomputed distances, admitting every edge with a
// distance of at least minDist. Intended for synthetic instances in tests
// and benchmarks.
func NewFromMatrix(km *graph.Dense[float64], minDist float64) *Matrix {
	return &Matrix{
		km:  km,
		adm: graph.Map(km, func(d float64) bool { return d >= minDist }),
	}
}

// Size returns the node count.
func (m *Matrix) Size() int { return m.km.Size() }

// Between returns the distance between two nodes in kilometers;
// zero on the diagonal.
func (m *Matrix) Between(i, j int) float64 { return m.km.At(i, j, 0) }

// Admissible reports whether the edge may be used under the minimum-leg
// constraint. The diagonal is never admissible.
func (m *Matrix) Admissible(i, j int) bool { return m.adm.At(i, j, false) }

// Mean returns the mean pairwise distance. Used to derive the default
// pheromone intensity and deposit constant, scaling them to the instance.
func (m *Matrix) Mean() float64 {
	n := m.km.Size()
	if n < 2 {
		return 0
	}
	var sum kahan.Adder
	m.km.Each(func(_, _ int, d float64) { sum.Add(d) })
	return sum.Sum() / float64(n*(n-1)/2)
}

// Edges returns a Dense of the same shape initialized to init, used by the
// optimizer to allocate pheromone and weight stores matching this matrix.
func (m *Matrix) Edges(init float64) *graph.Dense[float64] {
	return graph.NewDense(m.km.Size(), init)
}

// AdmissibleDistances returns the distances with inadmissible edges zeroed,
// a read-only view the optimizer combines with pheromone intensities when
// deriving selection weights.
func (m *Matrix) AdmissibleDistances() *graph.Dense[float64] {
	return graph.Merge(m.km, m.adm, func(d float64, ok bool) float64 {
		if !ok {
			return 0
		}
		return d
	})
}

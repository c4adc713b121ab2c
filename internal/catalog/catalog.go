// Package catalog accumulates decoded airports into the ordered,
// deduplicated collection the optimization graph is built from.
package catalog

import (
	"bytes"
	"errors"

	"github.com/maratik123/tsp/internal/model"
)

// ErrTooFewAirports is returned when fewer than two airports survive
// filtering and deduplication. A cyclic tour needs at least two nodes.
var ErrTooFewAirports = errors.New("catalog: need at least 2 airports")

// FilterSet is a set of ICAO identifiers to retain. A nil FilterSet
// retains everything.
type FilterSet map[string]struct{}

// ParseFilterSet reads a filter file: one identifier per line, matched
// verbatim. Only four-character entries are honored; anything else on a
// line is ignored, which also skips blank lines and comments.
func ParseFilterSet(data []byte) FilterSet {
	fs := make(FilterSet)
	for _, line := range bytes.Split(data, []byte{'\n'}) {
		line = bytes.Trim(line, "\r")
		if len(line) == 4 {
			fs[string(line)] = struct{}{}
		}
	}
	return fs
}

// Contains reports whether the identifier passes the filter.
func (fs FilterSet) Contains(icao string) bool {
	if fs == nil {
		return true
	}
	_, ok := fs[icao]
	return ok
}

// Catalog is the ordered collection of retained airports. Index positions
// are stable: every downstream component addresses airports by the index
// assigned here.
type Catalog struct {
	airports []model.Airport
	rejected []model.Airport
	index    map[string]int
}

// Builder collects candidate airports one at a time. Duplicate
// identifiers keep the first occurrence; later ones are dropped so that a
// re-run over the same data yields the same indexing.
type Builder struct {
	filter       FilterSet
	keepRejected bool
	catalog      Catalog
	seenRejected map[string]struct{}
}

// NewBuilder returns a Builder applying the given filter. When
// keepRejected is set, airports failing the filter are retained in a side
// list for reporting; they never enter the optimization graph.
func NewBuilder(filter FilterSet, keepRejected bool) *Builder {
	return &Builder{
		filter:       filter,
		keepRejected: keepRejected,
		catalog:      Catalog{index: make(map[string]int)},
		seenRejected: make(map[string]struct{}),
	}
}

// Add offers one airport to the catalog.
func (b *Builder) Add(apt model.Airport) {
	if !b.filter.Contains(apt.ICAO) {
		if b.keepRejected {
			if _, dup := b.seenRejected[apt.ICAO]; !dup {
				b.seenRejected[apt.ICAO] = struct{}{}
				b.catalog.rejected = append(b.catalog.rejected, apt)
			}
		}
		return
	}
	if _, dup := b.catalog.index[apt.ICAO]; dup {
		return
	}
	b.catalog.index[apt.ICAO] = len(b.catalog.airports)
	b.catalog.airports = append(b.catalog.airports, apt)
}

// Catalog finalizes the builder. It fails when fewer than two airports
// were retained.
func (b *Builder) Catalog() (*Catalog, error) {
	if len(b.catalog.airports) < 2 {
		return nil, ErrTooFewAirports
	}
	return &b.catalog, nil
}

// Airports returns the retained airports in index order.
func (c *Catalog) Airports() []model.Airport { return c.airports }

// Rejected returns the airports dropped by the filter, in first-seen
// order. Empty unless the builder was asked to keep them.
func (c *Catalog) Rejected() []model.Airport { return c.rejected }

// Len returns the number of retained airports.
func (c *Catalog) Len() int { return len(c.airports) }

// At returns the airport at the given index.
func (c *Catalog) At(i int) model.Airport { return c.airports[i] }

// IndexOf resolves an identifier to its catalog index.
func (c *Catalog) IndexOf(icao string) (int, bool) {
	i, ok := c.index[icao]
	return i, ok
}

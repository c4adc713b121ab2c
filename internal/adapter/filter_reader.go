package adapter

import (
	"os"

	"github.com/maratik123/tsp/internal/catalog"
)

// FilterReader loads an identifier filter list.
type FilterReader interface {
	Read(path string) (catalog.FilterSet, error)
}

// LocalFilterReader reads filter lists from local files.
type LocalFilterReader struct{}

// NewLocalFilterReader constructs a LocalFilterReader.
func NewLocalFilterReader() *LocalFilterReader {
	return &LocalFilterReader{}
}

// Read parses the filter file at path. An empty path yields a nil set,
// which retains every airport.
func (a *LocalFilterReader) Read(path string) (catalog.FilterSet, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return catalog.ParseFilterSet(data), nil
}

// Package adapter contains the I/O adapters behind the workflow: CIFP
// record sources, filter lists and tour image output. The workflow only
// sees these interfaces, so its logic can be tested without touching the
// disk.
package adapter

import (
	"io"
	"os"
)

// StdinPath is the conventional path argument selecting standard input.
const StdinPath = "-"

// SourceReader opens a stream of raw CIFP records.
type SourceReader interface {
	Open(path string) (io.ReadCloser, error)
}

// LocalSourceReader reads CIFP data from a file, or from standard input
// when the path is "-".
type LocalSourceReader struct{}

// NewLocalSourceReader constructs a LocalSourceReader.
func NewLocalSourceReader() *LocalSourceReader {
	return &LocalSourceReader{}
}

// Open returns the byte stream for the given path. The stdin stream is
// wrapped so that Close does not close the process's standard input.
func (a *LocalSourceReader) Open(path string) (io.ReadCloser, error) {
	if path == StdinPath {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

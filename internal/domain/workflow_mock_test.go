package domain

import (
	"fmt"
	"io"
	"strings"

	"github.com/maratik123/tsp/internal/catalog"
	"github.com/maratik123/tsp/internal/model"
)

// stubSource serves an in-memory CIFP stream.
type stubSource struct {
	data    string
	openErr error
	opened  string
}

func (s *stubSource) Open(path string) (io.ReadCloser, error) {
	s.opened = path
	if s.openErr != nil {
		return nil, s.openErr
	}
	return io.NopCloser(strings.NewReader(s.data)), nil
}

// stubFilter serves a fixed filter set.
type stubFilter struct {
	set     catalog.FilterSet
	readErr error
	read    string
}

func (s *stubFilter) Read(path string) (catalog.FilterSet, error) {
	s.read = path
	if s.readErr != nil {
		return nil, s.readErr
	}
	return s.set, nil
}

// stubImages records render requests.
type stubImages struct {
	path     string
	airports []model.Airport
	tour     []int
	writeErr error
	calls    int
}

func (s *stubImages) WriteTour(path string, airports []model.Airport, tour []int) error {
	s.calls++
	s.path = path
	s.airports = airports
	s.tour = tour
	return s.writeErr
}

// recordingUI captures every UI interaction for assertions.
type recordingUI struct {
	warnings      []string
	retained      []model.Airport
	rejected      []model.Airport
	airportsCalls int
	startedWith   int
	progressCalls int
	lastBest      float64
	finished      bool
	tour          *model.Tour
}

func (u *recordingUI) Warnf(format string, args ...any) {
	u.warnings = append(u.warnings, fmt.Sprintf(format, args...))
}

func (u *recordingUI) ShowAirports(retained, rejected []model.Airport) {
	u.airportsCalls++
	u.retained = retained
	u.rejected = rejected
}

func (u *recordingUI) StartProgress(iterations int) { u.startedWith = iterations }

func (u *recordingUI) Progress(_ int, best float64) {
	u.progressCalls++
	u.lastBest = best
}

func (u *recordingUI) FinishProgress() { u.finished = true }

func (u *recordingUI) ShowTour(tour model.Tour) { u.tour = &tour }

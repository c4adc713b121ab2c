// Package domain orchestrates the pipeline: decode the CIFP stream into a
// catalog, build the distance matrix, run the colony optimizer and hand
// the results to the UI and output adapters.
package domain

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/maratik123/tsp/internal/aco"
	"github.com/maratik123/tsp/internal/adapter"
	"github.com/maratik123/tsp/internal/arinc"
	"github.com/maratik123/tsp/internal/catalog"
	"github.com/maratik123/tsp/internal/controller"
	"github.com/maratik123/tsp/internal/distance"
	"github.com/maratik123/tsp/internal/model"
)

// tourImageName is the file written into the images directory.
const tourImageName = "tour.png"

// ListArgs selects and filters the airport set.
type ListArgs struct {
	// Source is the CIFP file path, or "-" for stdin.
	Source string
	// Filter is the path of an identifier list; empty retains everything.
	Filter string
	// Unfiltered also displays the airports removed by the filter.
	Unfiltered bool
}

// OptimizeArgs configures a full optimization run.
type OptimizeArgs struct {
	ListArgs
	// PrintAirports shows the airport table before solving.
	PrintAirports bool
	// Output is a path to additionally write the tour report to; empty
	// writes nowhere.
	Output string
	// Images is a directory to render the tour image into; empty disables
	// rendering.
	Images string
	// MinDist is the minimum admissible leg length in kilometers.
	MinDist float64
	// Except lists "ICAO-ICAO" pairs exempt from the minimum leg length.
	Except []string
	// Params are the colony parameters.
	Params aco.Params
}

// Workflow is the use-case surface consumed by the CLI layer.
type Workflow interface {
	// List decodes and filters the source and displays the airport table.
	List(args ListArgs) error
	// Optimize runs the full pipeline and reports the best tour found.
	Optimize(ctx context.Context, args OptimizeArgs) error
}

type workflow struct {
	source  adapter.SourceReader
	filters adapter.FilterReader
	images  adapter.ImageWriter
	ui      controller.UI
}

// NewWorkflow creates a Workflow instance with the provided adapters.
func NewWorkflow(
	source adapter.SourceReader,
	filters adapter.FilterReader,
	images adapter.ImageWriter,
	ui controller.UI,
) Workflow {
	return &workflow{
		source:  source,
		filters: filters,
		images:  images,
		ui:      ui,
	}
}

// List decodes and filters the source and displays the airport table.
func (w *workflow) List(args ListArgs) error {
	cat, err := w.loadCatalog(args)
	if err != nil {
		return err
	}
	w.ui.ShowAirports(cat.Airports(), cat.Rejected())
	return nil
}

// Optimize runs the full pipeline and reports the best tour found.
func (w *workflow) Optimize(ctx context.Context, args OptimizeArgs) error {
	cat, err := w.loadCatalog(args.ListArgs)
	if err != nil {
		return err
	}
	if args.PrintAirports {
		w.ui.ShowAirports(cat.Airports(), cat.Rejected())
	}

	excepts, err := distance.ParseExcepts(args.Except)
	if err != nil {
		return err
	}
	dist := distance.New(cat, args.MinDist, excepts)

	w.ui.StartProgress(args.Params.Iterations)
	res, err := aco.Solve(ctx, dist, args.Params, w.ui.Progress)
	w.ui.FinishProgress()
	if err != nil {
		return err
	}

	tour := resolveTour(cat, dist, res)
	w.ui.ShowTour(tour)

	if args.Output != "" {
		if err := writeReport(args.Output, tour); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	if args.Images != "" {
		path := filepath.Join(args.Images, tourImageName)
		if err := w.images.WriteTour(path, cat.Airports(), res.Tour); err != nil {
			return fmt.Errorf("render tour image: %w", err)
		}
	}
	return nil
}

// loadCatalog decodes the source stream line by line. Malformed lines are
// reported as warnings and skipped; the stream itself is never aborted.
func (w *workflow) loadCatalog(args ListArgs) (*catalog.Catalog, error) {
	filter, err := w.filters.Read(args.Filter)
	if err != nil {
		return nil, fmt.Errorf("read filter: %w", err)
	}

	rc, err := w.source.Open(args.Source)
	if err != nil {
		return nil, fmt.Errorf("open source: %w", err)
	}
	defer func() { _ = rc.Close() }()

	builder := catalog.NewBuilder(filter, args.Unfiltered)
	scanner := bufio.NewScanner(rc)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		rec, err := arinc.DecodeLine(scanner.Bytes())
		if err != nil {
			w.ui.Warnf("line %d: %v", lineNo, err)
			continue
		}
		if rec == nil {
			continue
		}
		builder.Add(model.AirportFromRecord(rec))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}

	return builder.Catalog()
}

// resolveTour maps the optimizer's index tour back onto airports.
func resolveTour(cat *catalog.Catalog, dist *distance.Matrix, res aco.Result) model.Tour {
	legs := make([]model.TourLeg, 0, len(res.Tour))
	for i, node := range res.Tour {
		next := res.Tour[(i+1)%len(res.Tour)]
		legs = append(legs, model.TourLeg{
			From:     cat.At(node),
			To:       cat.At(next),
			Distance: dist.Between(node, next),
		})
	}
	return model.Tour{
		Legs:      legs,
		Length:    res.Length,
		Fallbacks: res.Fallbacks,
	}
}

// writeReport writes the plain-text tour report: one stop per line plus
// the total length.
func writeReport(path string, tour model.Tour) error {
	var b strings.Builder
	for _, leg := range tour.Legs {
		fmt.Fprintf(&b, "%s %s\n", leg.From.ICAO, leg.From.Name)
	}
	fmt.Fprintf(&b, "total: %.2f km\n", tour.Length)
	return os.WriteFile(path, []byte(b.String()), 0o600)
}

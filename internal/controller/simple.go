package controller

import (
	"bytes"
	"fmt"

	"github.com/maratik123/tsp/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI with plain text on the cobra command's streams.
// Suitable for pipes and CI; progress is reported as occasional lines
// instead of a live bar.
type SimpleUI struct {
	cmd        *cobra.Command
	iterations int
	step       int
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Warnf prints a warning line on the error stream.
func (s *SimpleUI) Warnf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), "warning: "+format+"\n", args...)
}

// ShowAirports prints the airport table, followed by the filtered-out
// airports when any were kept for display.
func (s *SimpleUI) ShowAirports(retained, rejected []model.Airport) {
	s.printf("%s", renderAirportTable(retained))
	if len(rejected) > 0 {
		s.printf("\nFiltered out:\n%s", renderAirportTable(rejected))
	}
}

// StartProgress remembers the iteration budget so Progress can print
// about ten evenly spaced report lines.
func (s *SimpleUI) StartProgress(iterations int) {
	s.iterations = iterations
	s.step = iterations / 10
	if s.step < 1 {
		s.step = 1
	}
}

// Progress prints a report line at each step boundary and on the final
// iteration.
func (s *SimpleUI) Progress(iteration int, best float64) {
	if iteration%s.step != 0 && iteration != s.iterations {
		return
	}
	s.printf("iteration %d/%d, best %.2f km\n", iteration, s.iterations, best)
}

// FinishProgress is a no-op: SimpleUI has no live state to tear down.
func (s *SimpleUI) FinishProgress() {}

// ShowTour prints one row per leg and the total length.
func (s *SimpleUI) ShowTour(tour model.Tour) {
	if tour.Fallbacks > 0 {
		s.Warnf("%d construction steps had no admissible leg and used the nearest airport", tour.Fallbacks)
	}
	s.printf("\n%s", renderTourTable(tour))
}

func (s *SimpleUI) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func renderAirportTable(airports []model.Airport) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Ident", "Name", "Latitude", "Longitude"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	for _, apt := range airports {
		table.Append([]string{
			apt.ICAO,
			apt.Name,
			formatLat(apt.Coord.Lat),
			formatLon(apt.Coord.Lon),
		})
	}

	table.SetFooter([]string{"", "", "Total", fmt.Sprintf("%d", len(airports))})
	table.Render()

	return buf.String()
}

func renderTourTable(tour model.Tour) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"From", "To", "Distance, km"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
	})

	for _, leg := range tour.Legs {
		table.Append([]string{
			fmt.Sprintf("%s %s", leg.From.ICAO, leg.From.Name),
			fmt.Sprintf("%s %s", leg.To.ICAO, leg.To.Name),
			fmt.Sprintf("%.2f", leg.Distance),
		})
	}

	table.SetFooter([]string{"", "Total", fmt.Sprintf("%.2f", tour.Length)})
	table.Render()

	return buf.String()
}

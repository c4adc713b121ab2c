// Package controller renders pipeline output for the user: airport
// listings, solver progress and the final tour report.
package controller

import (
	"fmt"
	"io"
	"os"

	"github.com/maratik123/tsp/internal/model"
	"github.com/spf13/cobra"
)

// UI is the reporting surface the workflow talks to. Implementations
// differ in presentation only; the workflow never formats output itself.
type UI interface {
	// Warnf reports a non-fatal condition, such as a malformed input line.
	Warnf(format string, args ...any)
	// ShowAirports prints the retained airports and, when non-empty, the
	// airports removed by the filter.
	ShowAirports(retained, rejected []model.Airport)
	// StartProgress begins solver progress reporting for the given
	// iteration budget.
	StartProgress(iterations int)
	// Progress reports one completed iteration and the best length so far.
	Progress(iteration int, best float64)
	// FinishProgress ends progress reporting.
	FinishProgress()
	// ShowTour prints the final tour report.
	ShowTour(tour model.Tour)
}

// NewUI picks the UI implementation: the interactive TUI on a terminal,
// plain output everywhere else.
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout(), cmd.ErrOrStderr())
	}
	return NewSimpleUI(cmd)
}

// IsTTY reports whether the writer is an interactive terminal.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// formatLat renders decimal latitude as degrees/minutes/seconds.
func formatLat(dec float64) string {
	return formatDMS(dec, 'N', 'S')
}

// formatLon renders decimal longitude as degrees/minutes/seconds.
func formatLon(dec float64) string {
	return formatDMS(dec, 'E', 'W')
}

func formatDMS(dec float64, pos, neg byte) string {
	hemi := pos
	if dec < 0 {
		hemi = neg
		dec = -dec
	}
	deg := int(dec)
	rem := (dec - float64(deg)) * 60
	minutes := int(rem)
	sec := (rem - float64(minutes)) * 60
	return fmt.Sprintf("%d°%d′%05.2f″%c", deg, minutes, sec, hemi)
}

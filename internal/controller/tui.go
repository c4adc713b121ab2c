package controller

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/maratik123/tsp/internal/model"
)

var (
	tuiTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
	tuiWarnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))
)

// TUI implements UI with a live Bubble Tea progress bar for the solver
// phase and styled tables for listings. Picked automatically when output
// goes to a terminal.
type TUI struct {
	output io.Writer
	errOut io.Writer
	prog   *tea.Program
	done   chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(output, errOut io.Writer) *TUI {
	return &TUI{output: output, errOut: errOut}
}

// Warnf prints a highlighted warning line on the error stream.
func (t *TUI) Warnf(format string, args ...any) {
	line := tuiWarnStyle.Render("warning: " + fmt.Sprintf(format, args...))
	_, _ = fmt.Fprintln(t.errOut, line)
}

// ShowAirports prints the airport tables with a styled title.
func (t *TUI) ShowAirports(retained, rejected []model.Airport) {
	_, _ = fmt.Fprintln(t.output, tuiTitleStyle.Render("Airports"))
	_, _ = fmt.Fprint(t.output, renderAirportTable(retained))
	if len(rejected) > 0 {
		_, _ = fmt.Fprintln(t.output, tuiTitleStyle.Render("Filtered out"))
		_, _ = fmt.Fprint(t.output, renderAirportTable(rejected))
	}
}

// StartProgress launches the Bubble Tea program showing the live bar.
func (t *TUI) StartProgress(iterations int) {
	t.prog = tea.NewProgram(
		newSolveModel(iterations),
		tea.WithOutput(t.output),
		tea.WithoutSignalHandler(),
	)
	t.done = make(chan struct{})
	go func() {
		defer close(t.done)
		_, _ = t.prog.Run()
	}()
}

// Progress feeds one iteration into the live bar.
func (t *TUI) Progress(iteration int, best float64) {
	if t.prog == nil {
		return
	}
	t.prog.Send(solveProgressMsg{iteration: iteration, best: best})
}

// FinishProgress stops the live bar and waits for the program to exit, so
// later output does not interleave with the final frame.
func (t *TUI) FinishProgress() {
	if t.prog == nil {
		return
	}
	t.prog.Send(solveDoneMsg{})
	<-t.done
	t.prog = nil
}

// ShowTour prints the tour report with a styled title.
func (t *TUI) ShowTour(tour model.Tour) {
	if tour.Fallbacks > 0 {
		t.Warnf("%d construction steps had no admissible leg and used the nearest airport", tour.Fallbacks)
	}
	_, _ = fmt.Fprintln(t.output, tuiTitleStyle.Render("Optimized tour"))
	_, _ = fmt.Fprint(t.output, renderTourTable(tour))
}

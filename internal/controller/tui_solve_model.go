package controller

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const maxBarWidth = 80

// solveProgressMsg carries one completed solver iteration.
type solveProgressMsg struct {
	iteration int
	best      float64
}

// solveDoneMsg tells the model to quit after the final frame.
type solveDoneMsg struct{}

// solveModel renders the solver phase: a progress bar over the iteration
// budget plus the best tour length found so far.
type solveModel struct {
	bar       progress.Model
	total     int
	iteration int
	best      float64
	quitting  bool
}

func newSolveModel(total int) solveModel {
	return solveModel{
		bar:   progress.New(progress.WithDefaultGradient()),
		total: total,
	}
}

func (m solveModel) Init() tea.Cmd {
	return nil
}

func (m solveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		width := msg.Width - 8
		if width > maxBarWidth {
			width = maxBarWidth
		}
		if width > 0 {
			m.bar.Width = width
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case solveProgressMsg:
		m.iteration = msg.iteration
		m.best = msg.best
		return m, m.bar.SetPercent(float64(m.iteration) / float64(m.total))

	case solveDoneMsg:
		m.quitting = true
		return m, tea.Quit

	case progress.FrameMsg:
		barModel, cmd := m.bar.Update(msg)
		m.bar = barModel.(progress.Model)
		return m, cmd
	}

	return m, nil
}

func (m solveModel) View() string {
	if m.quitting {
		return ""
	}

	title := tuiTitleStyle.Render("Optimizing tour")
	status := fmt.Sprintf("iteration %d/%d", m.iteration, m.total)
	if m.best > 0 {
		status += fmt.Sprintf("   best %.2f km", m.best)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		m.bar.View(),
		status,
	) + "\n"
}

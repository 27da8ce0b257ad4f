// Package tui implements a single-screen Bubble Tea program that loads a
// Xiangqi position from FEN and streams iterative-deepening evaluation
// progress live, mirroring the shape of the teacher's interactive
// terminal UI reduced to what the evaluation-engine contract needs.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/liyu-xiangqi/xiangqi/internal/board"
	"github.com/liyu-xiangqi/xiangqi/internal/config"
)

// iterationMsg carries one completed iterative-deepening depth's
// telemetry from the background search goroutine to the Model.
type iterationMsg struct {
	depth int
	nodes uint64
	nps   float64
	score board.Score
	pv    []board.PackedMove
}

// evalDoneMsg signals that EvalToDepth has returned.
type evalDoneMsg struct{}

// errMsg carries an error to be shown on the evaluation screen.
type errMsg struct {
	err error
}

// Model holds all state for the evaluation screen.
type Model struct {
	input      textinput.Model
	board      *board.Board
	depth      int
	iterations []iterationMsg
	evaluating bool
	err        error
	progressCh chan iterationMsg
	doneCh     chan struct{}
	termWidth  int
	termHeight int
}

// New builds a Model seeded with the starting position and the given
// configuration's default search depth.
func New(cfg config.Config) Model {
	ti := textinput.New()
	ti.Placeholder = "FEN, 'depth N', or 'eval'"
	ti.Focus()
	ti.CharLimit = 128
	ti.Width = 80

	return Model{
		input: ti,
		board: board.NewBoard(),
		depth: cfg.SearchDepth,
	}
}

// Init satisfies tea.Model. It starts the input cursor blinking; no
// search runs at startup.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) headerStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
}

func (m Model) errStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
}

func (m Model) dimStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
}

// View renders the board, the input line, and the accumulated iterations.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.headerStyle().Render("xiangqi evaluator"))
	b.WriteString("\n\n")
	b.WriteString(m.board.Display())
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(m.errStyle().Render("error: " + m.err.Error()))
		b.WriteString("\n")
	}

	if m.evaluating {
		b.WriteString(m.dimStyle().Render("evaluating..."))
		b.WriteString("\n")
	}

	for _, it := range m.iterations {
		pv := formatPV(it.pv)
		b.WriteString(fmt.Sprintf("depth=%d nodes=%d nps=%.0f score=%s pv=%s\n",
			it.depth, it.nodes, it.nps, it.score.String(), pv))
	}

	b.WriteString("\n")
	b.WriteString(m.dimStyle().Render("enter a FEN to load it, 'depth N' to set depth, 'eval' to search, ctrl+c to quit"))
	return b.String()
}

func formatPV(pv []board.PackedMove) string {
	if len(pv) == 0 {
		return "(none)"
	}
	parts := make([]string, len(pv))
	for i, m := range pv {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

func parseDepthCommand(input string) (int, bool) {
	fields := strings.Fields(input)
	if len(fields) != 2 || strings.ToLower(fields[0]) != "depth" {
		return 0, false
	}
	depth, err := strconv.Atoi(fields[1])
	if err != nil || depth <= 0 {
		return 0, false
	}
	return depth, true
}

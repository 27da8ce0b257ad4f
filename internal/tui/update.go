package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/liyu-xiangqi/xiangqi/internal/board"
	"github.com/liyu-xiangqi/xiangqi/internal/search"
)

// Update handles incoming messages and advances the model, in the Elm
// architecture the teacher's own Bubble Tea screens follow.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			return m.handleSubmit()
		}
	case iterationMsg:
		m.iterations = append(m.iterations, msg)
		return m, m.waitForProgress()
	case evalDoneMsg:
		m.evaluating = false
		return m, nil
	case errMsg:
		m.evaluating = false
		m.err = msg.err
		return m, nil
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleSubmit interprets the current input line: a bare "eval" runs the
// engine on the loaded position, "depth N" changes the configured depth,
// and anything else is attempted as a FEN to load.
func (m Model) handleSubmit() (tea.Model, tea.Cmd) {
	text := m.input.Value()
	m.input.SetValue("")
	m.err = nil

	switch {
	case text == "eval":
		if m.evaluating {
			return m, nil
		}
		m.evaluating = true
		m.iterations = nil
		m.progressCh = make(chan iterationMsg, 16)
		m.doneCh = make(chan struct{})
		return m, tea.Batch(m.runEval(), m.waitForProgress())

	case text != "":
		if depth, ok := parseDepthCommand(text); ok {
			m.depth = depth
			return m, nil
		}

		b, err := board.BoardFromFEN(text)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.board = b
		return m, nil
	}

	return m, nil
}

// runEval launches the search on a background goroutine and streams each
// completed depth as an iterationMsg over m.progressCh.
func (m Model) runEval() tea.Cmd {
	b := m.board
	depth := m.depth
	progressCh := m.progressCh
	doneCh := m.doneCh

	return func() tea.Msg {
		e := &search.Engine{
			OnDepth: func(d int, nodes uint64, elapsed time.Duration, score board.Score, pv []board.PackedMove) {
				nps := float64(nodes)
				if elapsed > 0 {
					nps = float64(nodes) / elapsed.Seconds()
				}
				progressCh <- iterationMsg{depth: d, nodes: nodes, nps: nps, score: score, pv: pv}
			},
		}
		e.EvalToDepth(b, depth)
		close(doneCh)
		return nil
	}
}

// waitForProgress blocks on the next progress message or completion
// signal, turning the background search's channel traffic into Bubble
// Tea messages.
func (m Model) waitForProgress() tea.Cmd {
	progressCh := m.progressCh
	doneCh := m.doneCh

	return func() tea.Msg {
		select {
		case it, ok := <-progressCh:
			if !ok {
				return evalDoneMsg{}
			}
			return it
		case <-doneCh:
			select {
			case it := <-progressCh:
				return it
			default:
				return evalDoneMsg{}
			}
		}
	}
}

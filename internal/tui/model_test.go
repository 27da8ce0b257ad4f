package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/liyu-xiangqi/xiangqi/internal/board"
	"github.com/liyu-xiangqi/xiangqi/internal/config"
)

func TestNewSeedsStartingPosition(t *testing.T) {
	m := New(config.DefaultConfig())
	assert.Equal(t, board.StartingPositionFEN, m.board.WriteFEN())
	assert.Equal(t, config.DefaultSearchDepth, m.depth)
}

func TestParseDepthCommand(t *testing.T) {
	depth, ok := parseDepthCommand("depth 8")
	assert.True(t, ok)
	assert.Equal(t, 8, depth)

	_, ok = parseDepthCommand("depth -1")
	assert.False(t, ok)

	_, ok = parseDepthCommand("depth abc")
	assert.False(t, ok)

	_, ok = parseDepthCommand("eval")
	assert.False(t, ok)
}

func TestFormatPVEmpty(t *testing.T) {
	assert.Equal(t, "(none)", formatPV(nil))
}

func TestHeaderStyleRendersAnsiColor(t *testing.T) {
	// Force color output, same as the teacher's board-rendering tests do,
	// since the test terminal otherwise reports no color profile.
	lipgloss.SetColorProfile(termenv.ANSI256)

	m := New(config.DefaultConfig())
	result := m.headerStyle().Render("xiangqi evaluator")

	assert.True(t, strings.Contains(result, "\x1b["), "expected ANSI escape codes, got: %q", result)
}

func TestFormatPVJoinsMoves(t *testing.T) {
	m1 := board.NewPackedMove(board.Coord{X: 0, Y: 3}, board.Coord{X: 0, Y: 4})
	m2 := board.NewPackedMove(board.Coord{X: 1, Y: 9}, board.Coord{X: 2, Y: 7})
	pv := []board.PackedMove{m1, m2}

	result := formatPV(pv)
	assert.Equal(t, m1.String()+" "+m2.String(), result)
}

package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Silas217209/tic-tac-toe/internal/game"
)

func humanVsHuman() Model {
	return New(Config{CrossName: "Kolia", CircleName: "Silas"})
}

func typeCell(t *testing.T, m Model, cell string) Model {
	t.Helper()
	var model tea.Model = m
	for _, r := range cell {
		model, _ = model.(Model).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	model, _ = model.(Model).Update(tea.KeyMsg{Type: tea.KeyEnter})
	return model.(Model)
}

func TestViewShowsBoardAndTurn(t *testing.T) {
	m := humanVsHuman()
	view := m.View()

	assert.Contains(t, view, "Kolia")
	assert.Contains(t, view, "───┼───┼───")
	assert.Contains(t, view, "Cell (0-8):")
	assert.Contains(t, view, "Kolia ("+game.CrossGlyph+")")
}

func TestEnteringMoveAdvancesTurn(t *testing.T) {
	m := typeCell(t, humanVsHuman(), "4")

	assert.Contains(t, m.View(), game.CrossGlyph, "cross's move should be on the board")
	assert.Contains(t, m.View(), "Silas ("+game.CircleGlyph+")", "turn passes to circle")
	assert.False(t, m.Finished())
}

func TestInvalidInputIsRejected(t *testing.T) {
	m := typeCell(t, humanVsHuman(), "x")
	assert.Contains(t, m.View(), "Invalid input. Please try again.")

	// Occupied cell is rejected too.
	m = typeCell(t, m, "4")
	m = typeCell(t, m, "4")
	assert.Contains(t, m.View(), "Invalid input. Please try again.")
}

func TestGameEndsWithBanner(t *testing.T) {
	m := humanVsHuman()
	// Cross takes the bottom row while circle wastes moves above.
	for _, cell := range []string{"0", "3", "1", "4", "2"} {
		m = typeCell(t, m, cell)
	}

	require.True(t, m.Finished())
	assert.Contains(t, m.View(), "======== Kolia WON ========")
	assert.NotContains(t, m.View(), "Cell (0-8):", "input hidden once the game is over")
}

func TestComputerMoveMsgIsApplied(t *testing.T) {
	m := humanVsHuman()
	model, _ := m.Update(moveMsg{mv: game.CellBit(8)})
	m = model.(Model)

	assert.Contains(t, m.View(), game.CrossGlyph)
	assert.Contains(t, m.View(), "Silas ("+game.CircleGlyph+")")
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []string{"q", "esc", "ctrl+c"} {
		m := humanVsHuman()
		var msg tea.KeyMsg
		switch key {
		case "q":
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "ctrl+c":
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		}
		_, cmd := m.Update(msg)
		require.NotNil(t, cmd, "key %s must quit", key)
	}
}

// Package tui renders an interactive game as a Bubble Tea program: the board
// in the main pane, a text input for the human's cell entry, and a status
// line carrying turn announcements and the bot's outcome predictions.
package tui

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/Silas217209/tic-tac-toe/internal/game"
	"github.com/Silas217209/tic-tac-toe/internal/player"
)

// Config wires the TUI to its players. A nil mover marks the side as human,
// driven by the text input; computer movers are called between input events.
// Notes, when set, is drained into the status line after every computer move
// so bot predictions end up on screen instead of interleaved with the
// renderer's output.
type Config struct {
	CrossName  string
	CircleName string

	CrossMover  player.Player // nil for human
	CircleMover player.Player // nil for human

	Notes  *bytes.Buffer
	Logger *log.Logger
}

// moveMsg carries a computer player's chosen move back into the update loop.
type moveMsg struct {
	mv  game.Bitboard
	err error
}

// Model is the Bubble Tea model for one game.
type Model struct {
	cfg   Config
	board game.Board
	input textinput.Model

	note      string // last bot prediction or rejection message
	noteIsErr bool
	finished  bool
	err       error
}

// New returns a model at the start of a fresh game.
func New(cfg Config) Model {
	ti := textinput.New()
	ti.Placeholder = "cell 0-8"
	ti.CharLimit = 1
	ti.Width = 10
	ti.Focus()

	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}

	return Model{
		cfg:   cfg,
		board: game.NewBoard(),
		input: ti,
	}
}

// Err reports the error that stopped the game, if any.
func (m Model) Err() error { return m.err }

// Finished reports whether the game reached a terminal status.
func (m Model) Finished() bool { return m.finished }

func (m Model) Init() tea.Cmd {
	if mover := m.activeMover(); mover != nil {
		return computerMove(mover, m.board)
	}
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			return m, tea.Quit
		case "enter":
			if m.finished || m.activeMover() != nil {
				return m, nil
			}
			return m.submitInput()
		}

	case moveMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		return m.applyMove(msg.mv)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submitInput() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	m.input.Reset()

	cell, err := strconv.Atoi(text)
	if err != nil || cell < 0 || cell > 8 || m.board.LegalMoves()&game.CellBit(cell) == 0 {
		m.note = "Invalid input. Please try again."
		m.noteIsErr = true
		return m, nil
	}

	m.note = ""
	m.noteIsErr = false
	return m.applyMove(game.CellBit(cell))
}

func (m Model) applyMove(mv game.Bitboard) (tea.Model, tea.Cmd) {
	m.cfg.Logger.Debug("move played", "player", m.activeName(), "cell", mv.Cell())
	m.board.MakeMove(mv)

	if m.cfg.Notes != nil {
		if note := strings.TrimSpace(m.cfg.Notes.String()); note != "" {
			m.note = note
			m.noteIsErr = false
		}
		m.cfg.Notes.Reset()
	}

	if m.board.Status() != game.InProgress {
		m.finished = true
		return m, nil
	}
	if mover := m.activeMover(); mover != nil {
		return m, computerMove(mover, m.board)
	}
	return m, nil
}

// computerMove asks the mover for its move off the update loop. The board is
// passed by value, so the mover works on its own copy.
func computerMove(p player.Player, b game.Board) tea.Cmd {
	return func() tea.Msg {
		mv, err := p.ChooseMove(&b)
		return moveMsg{mv: mv, err: err}
	}
}

func (m Model) activeMover() player.Player {
	if m.board.CrossToMove {
		return m.cfg.CrossMover
	}
	return m.cfg.CircleMover
}

func (m Model) activeName() string {
	if m.board.CrossToMove {
		return m.cfg.CrossName
	}
	return m.cfg.CircleName
}

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(headerStyle.Render(fmt.Sprintf(" %s %s vs %s %s ",
		game.CrossGlyph, m.cfg.CrossName, game.CircleGlyph, m.cfg.CircleName)))
	sb.WriteString("\n\n")
	sb.WriteString(m.board.Render())
	sb.WriteString("\n")

	if m.note != "" {
		style := noteStyle
		if m.noteIsErr {
			style = errorStyle
		}
		sb.WriteString(style.Render(m.note))
		sb.WriteString("\n")
	}

	if m.finished {
		switch m.board.Status() {
		case game.CrossWon:
			sb.WriteString(bannerStyle.Render(fmt.Sprintf("======== %s WON ========", m.cfg.CrossName)))
		case game.CircleWon:
			sb.WriteString(bannerStyle.Render(fmt.Sprintf("======== %s WON ========", m.cfg.CircleName)))
		default:
			sb.WriteString(bannerStyle.Render("======== DRAW ========"))
		}
		sb.WriteString("\n")
		sb.WriteString(noteStyle.Render("press q to quit"))
		sb.WriteString("\n")
		return sb.String()
	}

	glyph := game.CrossGlyph
	if !m.board.CrossToMove {
		glyph = game.CircleGlyph
	}
	sb.WriteString(statusStyle.Render(fmt.Sprintf("%s (%s)", m.activeName(), glyph)))
	sb.WriteString("\n")

	if m.activeMover() == nil {
		sb.WriteString("Cell (0-8): ")
		sb.WriteString(m.input.View())
		sb.WriteString("\n")
	} else {
		sb.WriteString(noteStyle.Render("thinking..."))
		sb.WriteString("\n")
	}

	return sb.String()
}

// Package match orchestrates one game between two players: it renders the
// board, asks the active player for a move, applies it and repeats until the
// game is decided.
package match

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/Silas217209/tic-tac-toe/internal/game"
	"github.com/Silas217209/tic-tac-toe/internal/player"
)

// Config wires a match together. Out receives the game transcript (board,
// announcements, result banner); Clock is mockable for tests and defaults to
// the real clock.
type Config struct {
	Cross  player.Player
	Circle player.Player
	Out    io.Writer
	Clock  quartz.Clock
	Logger *log.Logger

	// Quiet suppresses the transcript; headless games (simulator, tests)
	// only want the result.
	Quiet bool
}

// Result summarises a finished game.
type Result struct {
	Status    game.GameStatus
	Winner    string // empty on a draw
	Moves     int
	ThinkTime time.Duration // total time spent in ChooseMove, both sides
}

// Match holds the authoritative board for one game. The board handed to
// players is the same value; players must leave it unchanged.
type Match struct {
	board  game.Board
	cfg    Config
	out    io.Writer
	logger *log.Logger
}

// New creates a match between the two configured players.
func New(cfg Config) *Match {
	out := cfg.Out
	if out == nil || cfg.Quiet {
		out = io.Discard
	}
	if cfg.Clock == nil {
		cfg.Clock = quartz.NewReal()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Match{
		board:  game.NewBoard(),
		cfg:    cfg,
		out:    out,
		logger: logger,
	}
}

// Play runs the game loop to completion and returns the result. The context
// is checked between plies, so a cancelled signal context stops the game at
// the next turn boundary.
func (m *Match) Play(ctx context.Context) (Result, error) {
	fmt.Fprintf(m.out, "%s: %s\n", game.CrossGlyph, m.cfg.Cross.Name())
	fmt.Fprintf(m.out, "%s: %s\n\n", game.CircleGlyph, m.cfg.Circle.Name())

	var res Result
	for m.board.Status() == game.InProgress {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		fmt.Fprintf(m.out, "\n%s\n", m.board.Render())

		active, glyph := m.cfg.Cross, game.CrossGlyph
		if !m.board.CrossToMove {
			active, glyph = m.cfg.Circle, game.CircleGlyph
		}
		fmt.Fprintf(m.out, "%s (%s)\n", active.Name(), glyph)

		start := m.cfg.Clock.Now()
		mv, err := active.ChooseMove(&m.board)
		res.ThinkTime += m.cfg.Clock.Since(start)
		if err != nil {
			return res, fmt.Errorf("%s: choosing move: %w", active.Name(), err)
		}

		m.logger.Debug("move played",
			"player", active.Name(),
			"cell", mv.Cell(),
			"ply", res.Moves+1)

		m.board.MakeMove(mv)
		res.Moves++
	}

	fmt.Fprintf(m.out, "\n%s\n", m.board.Render())

	res.Status = m.board.Status()
	switch res.Status {
	case game.CrossWon:
		res.Winner = m.cfg.Cross.Name()
	case game.CircleWon:
		res.Winner = m.cfg.Circle.Name()
	}

	if res.Winner != "" {
		fmt.Fprintf(m.out, "\n======== %s WON ========\n\n", res.Winner)
	} else {
		fmt.Fprintf(m.out, "\n======== DRAW ========\n\n")
	}

	return res, nil
}

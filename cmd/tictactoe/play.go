package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/Silas217209/tic-tac-toe/cmd/tictactoe/shared"
	"github.com/Silas217209/tic-tac-toe/internal/config"
	"github.com/Silas217209/tic-tac-toe/internal/match"
	"github.com/Silas217209/tic-tac-toe/internal/player"
	"github.com/Silas217209/tic-tac-toe/internal/randutil"
	"github.com/Silas217209/tic-tac-toe/internal/tui"
)

type PlayCmd struct {
	Cross      string `default:"human" enum:"human,random,bot" help:"Cross player type (human, random, bot)"`
	Circle     string `default:"bot" enum:"human,random,bot" help:"Circle player type (human, random, bot)"`
	CrossName  string `default:"You" help:"Display name for the cross player"`
	CircleName string `default:"Bot" help:"Display name for the circle player"`
	Seed       int64  `default:"0" help:"RNG seed (0 for time-based)"`
	Config     string `help:"HCL game config file; overrides the player flags" type:"path"`
	TUI        bool   `help:"Play in the full-screen terminal UI"`
	Debug      bool   `short:"d" help:"Verbose logging"`
}

func (c *PlayCmd) Run() error {
	logger := shared.NewLogger(c.Debug)

	crossCfg := config.PlayerConfig{Side: "cross", Type: c.Cross, Name: c.CrossName}
	circleCfg := config.PlayerConfig{Side: "circle", Type: c.Circle, Name: c.CircleName}
	seed := c.Seed

	if c.Config != "" {
		cfg, err := config.Load(c.Config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		crossCfg, _ = cfg.Player("cross")
		circleCfg, _ = cfg.Player("circle")
		if cfg.Seed != 0 {
			seed = cfg.Seed
		}
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := randutil.New(seed)
	logger.Debug("rng seeded", "seed", seed)

	ctx := shared.SignalContext(logger)

	if c.TUI {
		return runTUI(ctx, crossCfg, circleCfg, rng, logger)
	}

	cross, err := newConsolePlayer(crossCfg, rng, logger)
	if err != nil {
		return err
	}
	circle, err := newConsolePlayer(circleCfg, rng, logger)
	if err != nil {
		return err
	}

	m := match.New(match.Config{
		Cross:  cross,
		Circle: circle,
		Out:    os.Stdout,
		Logger: logger,
	})
	if _, err := m.Play(ctx); err != nil {
		return fmt.Errorf("game aborted: %w", err)
	}
	return nil
}

func newConsolePlayer(cfg config.PlayerConfig, rng *rand.Rand, logger *log.Logger) (player.Player, error) {
	return newPlayer(cfg, rng, os.Stdin, os.Stdout, logger)
}

func newPlayer(cfg config.PlayerConfig, rng *rand.Rand, in io.Reader, out io.Writer, logger *log.Logger) (player.Player, error) {
	switch cfg.Type {
	case "human":
		return player.NewHuman(cfg.Name, in, out), nil
	case "random":
		return player.NewRandom(cfg.Name, rng), nil
	case "bot":
		return player.NewBot(cfg.Name, rng, out, logger), nil
	default:
		return nil, fmt.Errorf("unknown player type %q", cfg.Type)
	}
}

func runTUI(ctx context.Context, crossCfg, circleCfg config.PlayerConfig, rng *rand.Rand, logger *log.Logger) error {
	// Bot predictions are buffered and surfaced in the TUI status line
	// instead of being written straight to the terminal.
	notes := &bytes.Buffer{}

	var crossMover, circleMover player.Player
	if crossCfg.Type != "human" {
		p, err := newPlayer(crossCfg, rng, nil, notes, logger)
		if err != nil {
			return err
		}
		crossMover = p
	}
	if circleCfg.Type != "human" {
		p, err := newPlayer(circleCfg, rng, nil, notes, logger)
		if err != nil {
			return err
		}
		circleMover = p
	}

	model := tui.New(tui.Config{
		CrossName:   crossCfg.Name,
		CircleName:  circleCfg.Name,
		CrossMover:  crossMover,
		CircleMover: circleMover,
		Notes:       notes,
		Logger:      logger,
	})

	program := tea.NewProgram(model, tea.WithContext(ctx))
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	if m, ok := final.(tui.Model); ok && m.Err() != nil {
		return fmt.Errorf("game aborted: %w", m.Err())
	}
	return nil
}

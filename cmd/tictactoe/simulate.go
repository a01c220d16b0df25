package main

import (
	"fmt"
	"time"

	"github.com/Silas217209/tic-tac-toe/cmd/tictactoe/shared"
	"github.com/Silas217209/tic-tac-toe/internal/simulator"
)

type SimulateCmd struct {
	Games   int    `default:"1000" help:"Number of games to play"`
	Cross   string `default:"bot" enum:"bot,random" help:"Cross player kind (bot, random)"`
	Circle  string `default:"random" enum:"bot,random" help:"Circle player kind (bot, random)"`
	Seed    int64  `default:"0" help:"Master RNG seed (0 for time-based)"`
	Workers int    `default:"0" help:"Parallel game workers (0 for one per CPU)"`
	Debug   bool   `short:"d" help:"Verbose logging"`
}

func (c *SimulateCmd) Run() error {
	logger := shared.NewLogger(c.Debug)

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sim, err := simulator.New(simulator.Config{
		Games:   c.Games,
		Cross:   c.Cross,
		Circle:  c.Circle,
		Seed:    seed,
		Workers: c.Workers,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Simulating %d games: %s (cross) vs %s (circle), seed %d\n\n",
		c.Games, c.Cross, c.Circle, seed)

	ctx := shared.SignalContext(logger)
	stats, err := sim.Run(ctx)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	fmt.Printf("Games:       %d in %v (%.0f games/sec)\n",
		stats.Games, stats.Elapsed.Round(time.Millisecond), stats.GamesPerSecond())
	fmt.Printf("Cross wins:  %d (%.1f%%)\n", stats.CrossWins, percent(stats.CrossWins, stats.Games))
	fmt.Printf("Circle wins: %d (%.1f%%)\n", stats.CircleWins, percent(stats.CircleWins, stats.Games))
	fmt.Printf("Draws:       %d (%.1f%%)\n", stats.Draws, percent(stats.Draws, stats.Games))
	fmt.Printf("Mean length: %.1f moves\n", stats.MeanMoves())
	return nil
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}

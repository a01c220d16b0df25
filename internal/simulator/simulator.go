// Package simulator pits two computer players against each other for a
// batch of headless games and aggregates the outcomes. Games run in
// parallel; every game draws its players' randomness from an independent
// seed derived from the master seed, so a batch is reproducible regardless
// of worker count. The search inside each game stays single-threaded.
package simulator

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"runtime"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/Silas217209/tic-tac-toe/internal/match"
	"github.com/Silas217209/tic-tac-toe/internal/player"
	"github.com/Silas217209/tic-tac-toe/internal/randutil"
)

// Config holds the simulation parameters. Cross and Circle name player
// kinds: "bot" or "random" (humans cannot be simulated).
type Config struct {
	Games   int
	Cross   string
	Circle  string
	Seed    int64
	Workers int
	Clock   quartz.Clock
	Logger  *log.Logger
}

// Simulator runs batches of games per its config.
type Simulator struct {
	cfg Config
}

// New validates the configuration and returns a simulator.
func New(cfg Config) (*Simulator, error) {
	if cfg.Games <= 0 {
		return nil, fmt.Errorf("simulator: games must be positive, got %d", cfg.Games)
	}
	for _, kind := range []string{cfg.Cross, cfg.Circle} {
		if kind != "bot" && kind != "random" {
			return nil, fmt.Errorf("simulator: unsupported player kind %q", kind)
		}
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Clock == nil {
		cfg.Clock = quartz.NewReal()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	return &Simulator{cfg: cfg}, nil
}

// Run plays the configured number of games and returns the aggregate. A
// cancelled context aborts outstanding games and returns the context error.
func (s *Simulator) Run(ctx context.Context) (*Statistics, error) {
	// Derive one seed per game up front so results do not depend on the
	// order in which workers pick up games.
	master := randutil.New(s.cfg.Seed)
	seeds := make([]int64, s.cfg.Games)
	for i := range seeds {
		seeds[i] = master.Int63()
	}

	start := s.cfg.Clock.Now()

	var (
		mu    sync.Mutex
		stats Statistics
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Workers)

	for i := 0; i < s.cfg.Games; i++ {
		seed := seeds[i]
		gameNo := i + 1
		g.Go(func() error {
			res, err := s.playGame(ctx, seed)
			if err != nil {
				return fmt.Errorf("game %d: %w", gameNo, err)
			}

			s.cfg.Logger.Debug("game finished",
				"game", gameNo,
				"status", res.Status.String(),
				"moves", res.Moves)

			mu.Lock()
			stats.Add(res)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats.Elapsed = s.cfg.Clock.Since(start)
	return &stats, nil
}

func (s *Simulator) playGame(ctx context.Context, seed int64) (match.Result, error) {
	rng := randutil.New(seed)

	cross, err := s.newPlayer(s.cfg.Cross, "cross", rng)
	if err != nil {
		return match.Result{}, err
	}
	circle, err := s.newPlayer(s.cfg.Circle, "circle", rng)
	if err != nil {
		return match.Result{}, err
	}

	m := match.New(match.Config{
		Cross:  cross,
		Circle: circle,
		Clock:  s.cfg.Clock,
		Logger: s.cfg.Logger,
		Quiet:  true,
	})
	return m.Play(ctx)
}

func (s *Simulator) newPlayer(kind, name string, rng *rand.Rand) (player.Player, error) {
	switch kind {
	case "bot":
		return player.NewBot(name, rng, io.Discard, s.cfg.Logger), nil
	case "random":
		return player.NewRandom(name, rng), nil
	default:
		return nil, fmt.Errorf("unsupported player kind %q", kind)
	}
}

package simulator

import (
	"time"

	"github.com/Silas217209/tic-tac-toe/internal/game"
	"github.com/Silas217209/tic-tac-toe/internal/match"
)

// Statistics aggregates the outcomes of a batch of games.
type Statistics struct {
	Games       int
	CrossWins   int
	CircleWins  int
	Draws       int
	MovesPlayed int
	Elapsed     time.Duration
}

// Add folds one finished game into the aggregate.
func (s *Statistics) Add(res match.Result) {
	s.Games++
	s.MovesPlayed += res.Moves
	switch res.Status {
	case game.CrossWon:
		s.CrossWins++
	case game.CircleWon:
		s.CircleWins++
	case game.Draw:
		s.Draws++
	}
}

// GamesPerSecond reports throughput over the recorded elapsed time.
func (s *Statistics) GamesPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Games) / s.Elapsed.Seconds()
}

// MeanMoves is the average game length in plies.
func (s *Statistics) MeanMoves() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.MovesPlayed) / float64(s.Games)
}

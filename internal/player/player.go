// Package player defines the Player interface and its three implementations:
// a console-driven human, a uniformly random mover, and the perfect-play bot
// backed by exhaustive alpha-beta search.
//
// Players receive their random source and logger at construction so games
// can be replayed deterministically under test with fixed seeds.
package player

import (
	"errors"

	"github.com/Silas217209/tic-tac-toe/internal/game"
)

// ErrNoLegalMoves is returned when a player is asked to move on a full
// board. Callers are expected to check the board status first.
var ErrNoLegalMoves = errors.New("player: no legal moves")

// Player chooses moves for one side of a game. ChooseMove must return a
// singleton subset of the board's legal moves and must leave the board
// unchanged.
type Player interface {
	ChooseMove(b *game.Board) (game.Bitboard, error)
	Name() string
}

package player

import (
	"math/rand"

	"github.com/Silas217209/tic-tac-toe/internal/game"
)

// Random picks uniformly among the legal moves.
type Random struct {
	name string
	rng  *rand.Rand
}

// NewRandom returns a random player drawing from the given source.
func NewRandom(name string, rng *rand.Rand) *Random {
	return &Random{name: name, rng: rng}
}

func (r *Random) Name() string { return r.name }

func (r *Random) ChooseMove(b *game.Board) (game.Bitboard, error) {
	legal := b.LegalMoves()
	if legal == 0 {
		return 0, ErrNoLegalMoves
	}

	n := r.rng.Intn(legal.Count())
	for ; n > 0; n-- {
		legal &= legal - 1
	}
	return legal.LSB(), nil
}

package player

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/Silas217209/tic-tac-toe/internal/game"
	"github.com/Silas217209/tic-tac-toe/internal/search"
)

// Bot plays perfectly by searching every move to the end of the game. Moves
// tied for the best score are collected and one of them is picked at random,
// so the bot does not telegraph a fixed line.
type Bot struct {
	name string
	rng  *rand.Rand
	out  io.Writer
	log  *log.Logger
}

// NewBot returns a perfect-play bot. Predictions about the game outcome are
// written to out as part of the game transcript; per-move scores go to the
// logger at debug level.
func NewBot(name string, rng *rand.Rand, out io.Writer, logger *log.Logger) *Bot {
	return &Bot{name: name, rng: rng, out: out, log: logger}
}

func (p *Bot) Name() string { return p.name }

// ChooseMove searches all legal moves on a clone of the board, keeps the set
// of moves tied for the maximum score, announces the predicted outcome and
// returns a uniformly random member of the tie set.
func (p *Bot) ChooseMove(b *game.Board) (game.Bitboard, error) {
	clone := *b

	bestScore := search.MinScore
	var ties []game.Bitboard
	for moves := clone.LegalMoves(); moves != 0; moves &= moves - 1 {
		mv := moves.LSB()
		clone.MakeMove(mv)
		score := -search.Value(&clone, search.MinScore, search.MaxScore, 0)
		clone.UnmakeMove(mv)

		p.log.Debug("scored move", "player", p.name, "cell", mv.Cell(), "score", score)

		if score > bestScore {
			bestScore = score
			ties = ties[:0]
		}
		if score == bestScore {
			ties = append(ties, mv)
		}
	}

	if len(ties) == 0 {
		return 0, ErrNoLegalMoves
	}

	switch {
	case bestScore > 0:
		fmt.Fprintln(p.out, "bot will win")
	case bestScore == 0:
		fmt.Fprintln(p.out, "draw with best play")
	default:
		fmt.Fprintln(p.out, "bot will lose with best play")
	}

	return ties[p.rng.Intn(len(ties))], nil
}

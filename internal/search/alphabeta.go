// Package search implements the exhaustive alpha-beta game-tree search used
// by the perfect-play bot. With a branching factor of at most nine and a
// depth of at most nine plies, plain fixed-order search is fast enough that
// no transposition table, move ordering or iterative deepening is needed.
package search

import "github.com/Silas217209/tic-tac-toe/internal/game"

// Full-width window bounds for top-level calls. Terminal scores stay well
// inside [-1, 10], so anything beyond that works.
const (
	MinScore = -100
	MaxScore = 100
)

// Value returns the game-theoretic score of the position from the
// perspective of the side to move, searching every line to the end. The
// board is mutated during the search but restored exactly before returning.
//
// Terminal scoring: a draw is 0, and a completed line scores 10-depth when
// the winning side is still marked to move at the terminal node, -1
// otherwise. Wins prefer shorter lines while losses score flat.
func Value(b *game.Board, alpha, beta, depth int) int {
	switch b.Status() {
	case game.Draw:
		return 0
	case game.CircleWon:
		if b.CrossToMove {
			return -1
		}
		return 10 - depth
	case game.CrossWon:
		if b.CrossToMove {
			return 10 - depth
		}
		return -1
	}

	for moves := b.LegalMoves(); moves != 0; moves &= moves - 1 {
		mv := moves.LSB()
		b.MakeMove(mv)
		score := -Value(b, -beta, -alpha, depth+1)
		b.UnmakeMove(mv)

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

package game

// Board is the complete game state: both occupancy masks and the side to
// move. It is a plain value type, so a copy is an independent clone and
// equality is structural. Cross and Circle are always disjoint subsets of
// FullBoard.
type Board struct {
	Cross  Bitboard
	Circle Bitboard

	CrossToMove bool
}

// NewBoard returns an empty board with cross to move.
func NewBoard() Board {
	return Board{CrossToMove: true}
}

// LegalMoves returns every empty cell as a candidate move. May be empty when
// the board is full.
func (b *Board) LegalMoves() Bitboard {
	return ^(b.Cross | b.Circle) & FullBoard
}

// MakeMove places the side to move on the given cell and flips the turn.
// The cell must be empty; this is not checked in the hot search path, and a
// violation silently corrupts the occupancy invariant.
func (b *Board) MakeMove(move Bitboard) {
	if b.CrossToMove {
		b.Cross ^= move
	} else {
		b.Circle ^= move
	}
	b.CrossToMove = !b.CrossToMove
}

// UnmakeMove reverts the preceding MakeMove. It must be called with the
// exact move passed to MakeMove, in strict stack order: make/unmake pairs
// nest like parentheses.
func (b *Board) UnmakeMove(move Bitboard) {
	b.CrossToMove = !b.CrossToMove
	if b.CrossToMove {
		b.Cross ^= move
	} else {
		b.Circle ^= move
	}
}

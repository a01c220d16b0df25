// Package game implements the core tic-tac-toe game logic.
//
// The main type is Board, a small value type holding two 9-bit occupancy
// masks and the side to move. All state transitions go through MakeMove and
// UnmakeMove, which must be paired in strict stack order.
//
// # Basic Usage
//
// Create a board and play out a game:
//
//	b := game.NewBoard()
//	for b.Status() == game.InProgress {
//	    moves := b.LegalMoves()
//	    b.MakeMove(moves.LSB())
//	}
//
// # Cell Numbering
//
// Cells are numbered rank-major from the bottom-left corner:
//
//	 6 │ 7 │ 8
//	───┼───┼───
//	 3 │ 4 │ 5
//	───┼───┼───
//	 0 │ 1 │ 2
//
// A Bitboard has bit n set when cell n is part of the set, so the whole
// board fits in the low 9 bits of a uint16 and set operations are single
// bitwise instructions.
package game

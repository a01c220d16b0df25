package game

import "math/bits"

// Bitboard is a set of board cells, one bit per cell. Bit n corresponds to
// cell n where cell = rank*3 + file, rank 0 is the bottom row and file 0 the
// left column. A single move is a Bitboard with exactly one bit set.
type Bitboard uint16

// FullBoard masks the nine valid cells.
const FullBoard Bitboard = 0b111111111

// winningPatterns are the eight three-in-a-row masks: three rows, three
// columns and both diagonals. Fixed data, not configuration.
var winningPatterns = [8]Bitboard{
	0b111000000, // top row
	0b000111000, // middle row
	0b000000111, // bottom row
	0b001001001, // left column
	0b010010010, // middle column
	0b100100100, // right column
	0b100010001, // diagonal
	0b001010100, // antidiagonal
}

// CellBit returns the singleton Bitboard for a cell index in [0, 8].
func CellBit(cell int) Bitboard {
	return 1 << cell
}

// Cell returns the index of the lowest set cell, or -1 for the empty set.
func (bb Bitboard) Cell() int {
	if bb == 0 {
		return -1
	}
	return bits.TrailingZeros16(uint16(bb))
}

// Count returns the number of cells in the set.
func (bb Bitboard) Count() int {
	return bits.OnesCount16(uint16(bb))
}

// LSB returns the singleton set holding the lowest cell, or 0 for the empty
// set. Iterating moves in increasing cell order is the usual pattern:
//
//	for moves := b.LegalMoves(); moves != 0; moves &= moves - 1 {
//	    mv := moves.LSB()
//	}
func (bb Bitboard) LSB() Bitboard {
	return bb & -bb
}

// Contains reports whether every cell of other is in the set.
func (bb Bitboard) Contains(other Bitboard) bool {
	return bb&other == other
}

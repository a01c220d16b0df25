package game

// GameStatus is the terminal state of a board, derived entirely from the two
// occupancy masks. It is never stored, always recomputed.
type GameStatus int

const (
	InProgress GameStatus = iota
	Draw
	CrossWon
	CircleWon
)

func (s GameStatus) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Draw:
		return "draw"
	case CrossWon:
		return "cross won"
	case CircleWon:
		return "circle won"
	default:
		return "unknown"
	}
}

// Status evaluates the board against the eight winning patterns. Cross is
// checked first; with alternating moves both sides cannot complete a line in
// the same position, so the order only matters for determinism.
//
// When neither side has won, the board counts as a draw as soon as no line
// can be completed by either side anymore, even if empty cells remain. A
// line is still completable by a side when each of its cells is either owned
// by that side or empty.
func (b *Board) Status() GameStatus {
	for _, pattern := range winningPatterns {
		if b.Cross.Contains(pattern) {
			return CrossWon
		}
		if b.Circle.Contains(pattern) {
			return CircleWon
		}
	}

	for _, pattern := range winningPatterns {
		if (b.Cross | ^b.Circle).Contains(pattern) {
			return InProgress
		}
		if (b.Circle | ^b.Cross).Contains(pattern) {
			return InProgress
		}
	}

	return Draw
}

package player

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Silas217209/tic-tac-toe/internal/game"
)

// Human reads cell numbers from an input stream, re-prompting until the
// entered cell is a legal move.
type Human struct {
	name    string
	scanner *bufio.Scanner
	out     io.Writer
}

// NewHuman returns a human player reading from in (normally os.Stdin) and
// writing prompts to out.
func NewHuman(name string, in io.Reader, out io.Writer) *Human {
	return &Human{
		name:    name,
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (h *Human) Name() string { return h.name }

// ChooseMove prompts for a cell index until a legal one is entered.
// Non-numeric input, out-of-range values and occupied cells are rejected
// with a re-prompt; the rest of the offending line is discarded. An error is
// returned only when the input stream ends.
func (h *Human) ChooseMove(b *game.Board) (game.Bitboard, error) {
	legal := b.LegalMoves()
	if legal == 0 {
		return 0, ErrNoLegalMoves
	}

	for {
		fmt.Fprint(h.out, "Cell (0-8): ")
		if !h.scanner.Scan() {
			if err := h.scanner.Err(); err != nil {
				return 0, fmt.Errorf("reading move: %w", err)
			}
			return 0, io.EOF
		}

		cell, err := strconv.Atoi(strings.TrimSpace(h.scanner.Text()))
		if err != nil || cell < 0 || cell > 8 || legal&game.CellBit(cell) == 0 {
			fmt.Fprintln(h.out, "Invalid input. Please try again.")
			continue
		}
		return game.CellBit(cell), nil
	}
}

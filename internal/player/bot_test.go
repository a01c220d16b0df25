package player

import (
	"bytes"
	"errors"
	"io"
	"math/rand"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/Silas217209/tic-tac-toe/internal/game"
)

func newTestBot(seed int64, out io.Writer) *Bot {
	return NewBot("Silas", rand.New(rand.NewSource(seed)), out, log.New(io.Discard))
}

func boardFromCells(cross, circle []int, crossToMove bool) game.Board {
	var b game.Board
	for _, c := range cross {
		b.Cross |= game.CellBit(c)
	}
	for _, c := range circle {
		b.Circle |= game.CellBit(c)
	}
	b.CrossToMove = crossToMove
	return b
}

func TestBotBlocksImmediateThreat(t *testing.T) {
	// Cross threatens the bottom row at cell 2; every other circle move
	// loses. The bot must block, regardless of its tie-break seed.
	b := boardFromCells([]int{0, 1}, []int{4}, false)

	for seed := int64(0); seed < 20; seed++ {
		var out bytes.Buffer
		mv, err := newTestBot(seed, &out).ChooseMove(&b)
		if err != nil {
			t.Fatalf("ChooseMove() error: %v", err)
		}
		if mv != game.CellBit(2) {
			t.Fatalf("seed %d: ChooseMove() = cell %d, want the blocking cell 2", seed, mv.Cell())
		}
		if !strings.Contains(out.String(), "draw with best play") {
			t.Errorf("seed %d: prediction = %q, want draw announcement", seed, out.String())
		}
	}
}

func TestBotTakesImmediateWin(t *testing.T) {
	// Circle completes the middle row with cell 5.
	b := boardFromCells([]int{0, 1, 8}, []int{3, 4}, false)

	var out bytes.Buffer
	mv, err := newTestBot(1, &out).ChooseMove(&b)
	if err != nil {
		t.Fatalf("ChooseMove() error: %v", err)
	}
	if mv != game.CellBit(5) {
		t.Errorf("ChooseMove() = cell %d, want the winning cell 5", mv.Cell())
	}
	if !strings.Contains(out.String(), "bot will win") {
		t.Errorf("prediction = %q, want win announcement", out.String())
	}
}

func TestBotPredictsLossWhenLost(t *testing.T) {
	// Cross has threats on two lines; whatever circle does, cross wins.
	b := boardFromCells([]int{0, 2, 4}, []int{1, 7}, false)

	var out bytes.Buffer
	if _, err := newTestBot(1, &out).ChooseMove(&b); err != nil {
		t.Fatalf("ChooseMove() error: %v", err)
	}
	if !strings.Contains(out.String(), "bot will lose with best play") {
		t.Errorf("prediction = %q, want loss announcement", out.String())
	}
}

func TestBotTieBreakCoversAllBestMoves(t *testing.T) {
	// From the empty board every move draws, so the tie set is all nine
	// cells and repeated calls must reach each of them.
	b := game.NewBoard()
	bot := newTestBot(42, io.Discard)

	seen := make(map[int]bool)
	for i := 0; i < 300; i++ {
		mv, err := bot.ChooseMove(&b)
		if err != nil {
			t.Fatalf("ChooseMove() error: %v", err)
		}
		seen[mv.Cell()] = true
	}
	for cell := 0; cell < 9; cell++ {
		if !seen[cell] {
			t.Errorf("tied best move %d never chosen in 300 trials", cell)
		}
	}
}

func TestBotLeavesBoardUnchanged(t *testing.T) {
	b := boardFromCells([]int{0, 1}, []int{4}, false)
	before := b
	if _, err := newTestBot(9, io.Discard).ChooseMove(&b); err != nil {
		t.Fatalf("ChooseMove() error: %v", err)
	}
	if b != before {
		t.Errorf("ChooseMove mutated the caller's board: got %+v, want %+v", b, before)
	}
}

func TestBotFullBoard(t *testing.T) {
	b := game.Board{Cross: 0b101101010, Circle: 0b010010101, CrossToMove: true}
	if _, err := newTestBot(1, io.Discard).ChooseMove(&b); !errors.Is(err, ErrNoLegalMoves) {
		t.Errorf("ChooseMove() error = %v, want ErrNoLegalMoves", err)
	}
}

package game

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Glyphs used for the two sides everywhere the game is displayed.
const (
	CrossGlyph  = "✗"
	CircleGlyph = "◯"
)

var (
	crossStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
	circleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)

	// Empty cells show their index in a dim slate tone so they read as
	// hints rather than moves.
	indexStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#565F89"))
)

// Render draws the board as three ranks separated by box-drawing rules, top
// rank first. Occupied cells show the side's glyph, empty cells their
// numeric index.
//
//	 6 │ ✗ │ 8
//	───┼───┼───
//	 3 │ ◯ │ 5
//	───┼───┼───
//	 ✗ │ 1 │ 2
func (b *Board) Render() string {
	var sb strings.Builder
	for rank := 2; rank >= 0; rank-- {
		for file := 0; file < 3; file++ {
			cell := rank*3 + file
			bit := CellBit(cell)
			sb.WriteString(" ")
			switch {
			case b.Cross&bit != 0:
				sb.WriteString(crossStyle.Render(CrossGlyph))
			case b.Circle&bit != 0:
				sb.WriteString(circleStyle.Render(CircleGlyph))
			default:
				sb.WriteString(indexStyle.Render(strconv.Itoa(cell)))
			}
			sb.WriteString(" ")
			if file != 2 {
				sb.WriteString("│")
			}
		}
		sb.WriteString("\n")
		if rank != 0 {
			sb.WriteString("───┼───┼───\n")
		}
	}
	return sb.String()
}

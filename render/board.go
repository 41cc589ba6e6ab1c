// Package render draws boards for the terminal.
package render

import (
	"strconv"
	"strings"

	"nogo/game"

	"github.com/muesli/termenv"
)

const header = "   A B C D E F G H J"

// Board draws b with row 9 on top. Stones are colored when the output
// profile supports it and plain text otherwise.
func Board(out *termenv.Output, b game.Board) string {
	black := out.String("X").Foreground(out.Color("#e06c75")).Bold()
	white := out.String("O").Foreground(out.Color("#61afef")).Bold()
	empty := out.String(".").Faint()

	var sb strings.Builder
	sb.WriteString(header + "\n")
	for y := game.Size - 1; y >= 0; y-- {
		label := strconv.Itoa(y + 1)
		sb.WriteString(" " + label)
		for x := 0; x < game.Size; x++ {
			sb.WriteByte(' ')
			switch b.At(y*game.Size + x) {
			case game.Black:
				sb.WriteString(black.String())
			case game.White:
				sb.WriteString(white.String())
			case game.Hollow:
				sb.WriteString("#")
			default:
				sb.WriteString(empty.String())
			}
		}
		sb.WriteString("  " + label + "\n")
	}
	sb.WriteString(header + "\n")
	sb.WriteString(b.Turn().String() + " to move\n")
	return sb.String()
}

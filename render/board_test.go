package render

import (
	"bytes"
	"strings"
	"testing"

	"nogo/game"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func TestBoard(t *testing.T) {
	out := termenv.NewOutput(&bytes.Buffer{}, termenv.WithProfile(termenv.Ascii))

	t.Run("drawing stones in plain text", func(t *testing.T) {
		b := game.NewBoard()
		require.Equal(t, game.Legal, b.Place(0, game.Black))  // A1
		require.Equal(t, game.Legal, b.Place(80, game.White)) // J9
		b.Block(40)                                           // E5

		lines := strings.Split(Board(out, b), "\n")

		require.Equal(t, "   A B C D E F G H J", lines[0])
		require.Equal(t, " 9 . . . . . . . . O  9", lines[1])
		require.Equal(t, " 5 . . . . # . . . .  5", lines[5])
		require.Equal(t, " 1 X . . . . . . . .  1", lines[9])
		require.Equal(t, "   A B C D E F G H J", lines[10])
		require.Equal(t, "black to move", lines[11])
	})

	t.Run("coloring stones when the profile allows it", func(t *testing.T) {
		colored := termenv.NewOutput(&bytes.Buffer{}, termenv.WithProfile(termenv.TrueColor))
		b := game.NewBoard()
		require.Equal(t, game.Legal, b.Place(0, game.Black))

		require.Contains(t, Board(colored, b), "\x1b[")
	})
}

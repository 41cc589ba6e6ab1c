package game

import (
	"fmt"
	"strings"
)

var adjacency [Cells][]int

func init() {
	for pos := 0; pos < Cells; pos++ {
		x, y := pos%Size, pos/Size
		if x > 0 {
			adjacency[pos] = append(adjacency[pos], pos-1)
		}
		if x < Size-1 {
			adjacency[pos] = append(adjacency[pos], pos+1)
		}
		if y > 0 {
			adjacency[pos] = append(adjacency[pos], pos-Size)
		}
		if y < Size-1 {
			adjacency[pos] = append(adjacency[pos], pos+Size)
		}
	}
}

// Board is a NoGo position. It only holds arrays, so assignment is a full copy.
type Board struct {
	cells [Cells]Piece
	turn  Piece
	moves int
}

// NewBoard returns an empty board with black to move.
func NewBoard() Board {
	return Board{turn: Black}
}

// Turn returns the color to move.
func (b Board) Turn() Piece {
	return b.turn
}

// Moves returns the number of stones placed so far.
func (b Board) Moves() int {
	return b.moves
}

func (b Board) At(pos int) Piece {
	if pos < 0 || pos >= Cells {
		return Hollow
	}
	return b.cells[pos]
}

// Block turns an empty cell into a hollow one.
func (b *Board) Block(pos int) {
	if pos >= 0 && pos < Cells && b.cells[pos] == Empty {
		b.cells[pos] = Hollow
	}
}

// Place puts a stone of the given color at pos. The board is left unchanged
// unless the result is Legal, in which case the turn passes to the opponent.
func (b *Board) Place(pos int, who Piece) Result {
	if pos < 0 || pos >= Cells {
		return IllegalPosition
	}
	if who != b.turn {
		return IllegalTurn
	}
	if b.cells[pos] != Empty {
		return IllegalPiece
	}

	b.cells[pos] = who
	for _, adj := range adjacency[pos] {
		if b.cells[adj] == who.Opponent() && !b.hasLiberty(adj) {
			b.cells[pos] = Empty
			return IllegalTake
		}
	}
	if !b.hasLiberty(pos) {
		b.cells[pos] = Empty
		return IllegalSuicide
	}

	b.turn = who.Opponent()
	b.moves++
	return Legal
}

// hasLiberty flood fills the group containing pos and reports whether any
// stone of it touches an empty cell.
func (b *Board) hasLiberty(pos int) bool {
	color := b.cells[pos]
	var visited [Cells]bool
	var stack [Cells]int
	top := 0
	stack[top] = pos
	top++
	visited[pos] = true
	for top > 0 {
		top--
		cur := stack[top]
		for _, adj := range adjacency[cur] {
			switch b.cells[adj] {
			case Empty:
				return true
			case color:
				if !visited[adj] {
					visited[adj] = true
					stack[top] = adj
					top++
				}
			}
		}
	}
	return false
}

// MarshalText encodes the board as "<turn>:<cells>", where the turn and every
// cell use X for black, O for white, '.' for empty and '#' for hollow.
func (b Board) MarshalText() ([]byte, error) {
	var sb strings.Builder
	sb.Grow(Cells + 2)
	sb.WriteByte(pieceSymbol(b.turn))
	sb.WriteByte(':')
	for _, p := range b.cells {
		sb.WriteByte(pieceSymbol(p))
	}
	return []byte(sb.String()), nil
}

func (b *Board) UnmarshalText(text []byte) error {
	if len(text) != Cells+2 || text[1] != ':' {
		return fmt.Errorf("board text must be \"<turn>:<%d cells>\", got %d bytes", Cells, len(text))
	}
	turn, ok := symbolPiece(text[0])
	if !ok || (turn != Black && turn != White) {
		return fmt.Errorf("invalid turn symbol %q", text[0])
	}

	var parsed Board
	parsed.turn = turn
	for i, c := range text[2:] {
		p, ok := symbolPiece(c)
		if !ok {
			return fmt.Errorf("invalid cell symbol %q at %s", c, PositionName(i))
		}
		parsed.cells[i] = p
		if p == Black || p == White {
			parsed.moves++
		}
	}
	*b = parsed
	return nil
}

func (b Board) String() string {
	text, _ := b.MarshalText()
	return string(text)
}

func pieceSymbol(p Piece) byte {
	switch p {
	case Black:
		return 'X'
	case White:
		return 'O'
	case Hollow:
		return '#'
	default:
		return '.'
	}
}

func symbolPiece(c byte) (Piece, bool) {
	switch c {
	case 'X':
		return Black, true
	case 'O':
		return White, true
	case '#':
		return Hollow, true
	case '.':
		return Empty, true
	default:
		return Empty, false
	}
}

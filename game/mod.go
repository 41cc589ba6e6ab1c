package game

// Size is the side length of the board.
const Size = 9

// Cells is the number of positions on the board.
const Cells = Size * Size

// Piece is the content of a cell, and doubles as a player color.
type Piece int

const (
	Empty Piece = iota
	Black
	White
	Hollow // blocked cell, never playable
)

func (p Piece) Opponent() Piece {
	switch p {
	case Black:
		return White
	case White:
		return Black
	default:
		return p
	}
}

func (p Piece) String() string {
	switch p {
	case Black:
		return "black"
	case White:
		return "white"
	case Hollow:
		return "hollow"
	default:
		return "empty"
	}
}

// ParsePiece maps a role name to a player color. Only black and white are
// players, anything else reports false.
func ParsePiece(s string) (Piece, bool) {
	switch s {
	case "black":
		return Black, true
	case "white":
		return White, true
	default:
		return Empty, false
	}
}

// Result reports whether a placement was accepted.
type Result int

const (
	Legal           Result = 0
	IllegalTurn     Result = -1 // placing color is not the side to move
	IllegalPosition Result = -2 // off the board, or a pass
	IllegalPiece    Result = -3 // cell is occupied or hollow
	IllegalTake     Result = -4 // would remove the last liberty of an opponent group
	IllegalSuicide  Result = -5 // placed group would have no liberty
)

func (r Result) String() string {
	switch r {
	case Legal:
		return "legal"
	case IllegalTurn:
		return "illegal turn"
	case IllegalPosition:
		return "illegal position"
	case IllegalPiece:
		return "illegal piece"
	case IllegalTake:
		return "illegal take"
	case IllegalSuicide:
		return "illegal suicide"
	default:
		return "unknown"
	}
}

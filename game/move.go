package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Column labels skip I, as on a go board.
const columns = "ABCDEFGHJ"

type ActionKind int

const (
	PassAction ActionKind = iota
	PlaceAction
)

// Action is a placement or a pass. The zero value is a pass, which no board
// accepts.
type Action struct {
	Kind     ActionKind
	Position int
	Who      Piece
}

func Place(pos int, who Piece) Action {
	return Action{Kind: PlaceAction, Position: pos, Who: who}
}

func Pass() Action {
	return Action{}
}

func (a Action) IsPass() bool {
	return a.Kind == PassAction
}

// Apply plays the action on b.
func (a Action) Apply(b *Board) Result {
	if a.IsPass() {
		return IllegalPosition
	}
	return b.Place(a.Position, a.Who)
}

func (a Action) String() string {
	if a.IsPass() {
		return "pass"
	}
	return PositionName(a.Position)
}

// PositionName formats pos as column letter and row number, e.g. "C3".
func PositionName(pos int) string {
	if pos < 0 || pos >= Cells {
		return "??"
	}
	return string(columns[pos%Size]) + strconv.Itoa(pos/Size+1)
}

func ParsePosition(name string) (int, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if len(name) < 2 {
		return -1, fmt.Errorf("invalid position %q", name)
	}
	x := strings.IndexByte(columns, name[0])
	row, err := strconv.Atoi(name[1:])
	if x < 0 || err != nil || row < 1 || row > Size {
		return -1, fmt.Errorf("invalid position %q", name)
	}
	return (row-1)*Size + x, nil
}

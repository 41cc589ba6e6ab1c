package game

// Candidates returns a placement of who on every cell, legal or not.
func Candidates(who Piece) []Action {
	moves := make([]Action, Cells)
	for pos := range moves {
		moves[pos] = Place(pos, who)
	}
	return moves
}

// LegalMoves returns the candidates of who that b accepts.
func LegalMoves(b Board, who Piece) []Action {
	var moves []Action
	for _, move := range Candidates(who) {
		after := b
		if move.Apply(&after) == Legal {
			moves = append(moves, move)
		}
	}
	return moves
}

// Terminal reports whether the side to move has no legal move, which loses
// the game.
func (b Board) Terminal() bool {
	for pos := 0; pos < Cells; pos++ {
		after := b
		if after.Place(pos, b.turn) == Legal {
			return false
		}
	}
	return true
}

// Package searcher picks NoGo moves with Monte Carlo Tree Search over random
// playouts.
package searcher

import "nogo/game"

// Hyperparameters for MCTS

const CSquared = 2.0 // Exploration constant

// Policy picks an action for its color on a given state.
type Policy interface {
	Who() game.Piece
	TakeAction(state game.Board) game.Action
}

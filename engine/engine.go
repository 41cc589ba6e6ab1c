package engine

import (
	"nogo/experiments/metrics"
	"nogo/game"
)

// MaxMoves bounds a game: every legal move fills a cell.
const MaxMoves = game.Cells

type Engine interface {
	// Run plays a game till the side to move cannot play and returns the winner
	Run() (winner game.Piece, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}

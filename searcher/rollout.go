package searcher

import (
	"nogo/game"

	"golang.org/x/exp/rand"
)

// RandomPolicy places a stone of its color on a uniformly random legal cell.
type RandomPolicy struct {
	who   game.Piece
	space []game.Action
	rng   *rand.Rand
}

// NewRandomPolicy returns a policy drawing from rng. Policies sharing one rng
// stay reproducible as long as they are called in the same order.
func NewRandomPolicy(who game.Piece, rng *rand.Rand) *RandomPolicy {
	return &RandomPolicy{
		who:   who,
		space: game.Candidates(who),
		rng:   rng,
	}
}

func (p *RandomPolicy) Who() game.Piece {
	return p.who
}

// TakeAction shuffles every candidate and returns the first one state accepts,
// or a pass when none is legal.
func (p *RandomPolicy) TakeAction(state game.Board) game.Action {
	p.rng.Shuffle(len(p.space), func(i, j int) {
		p.space[i], p.space[j] = p.space[j], p.space[i]
	})
	for _, move := range p.space {
		after := state
		if move.Apply(&after) == game.Legal {
			return move
		}
	}
	return game.Pass()
}

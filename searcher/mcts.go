package searcher

import (
	"time"

	"nogo/experiments/metrics"
	"nogo/game"
	"nogo/meta"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(mcts *MCTS)

// MCTS searches for the best move of one color. It keeps no tree between
// searches and is not safe for concurrent use.
type MCTS struct {
	who         game.Piece
	simulations int
	turnAware   bool
	rng         *rand.Rand
	myself      Policy
	opponent    Policy
	metrics     metrics.Collector
}

func WithSimulations(simulations int) Option {
	return func(m *MCTS) {
		if simulations >= 0 {
			m.simulations = simulations
		}
	}
}

// WithRand threads rng through every rollout of the search.
func WithRand(rng *rand.Rand) Option {
	return func(m *MCTS) {
		if rng != nil {
			m.rng = rng
		}
	}
}

func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithTurnAwareRollout starts each rollout with the side actually on move.
// By default the opponent always moves first, whatever the depth of the
// simulated node.
func WithTurnAwareRollout() Option {
	return func(m *MCTS) {
		m.turnAware = true
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMCTS(who game.Piece, options ...Option) *MCTS {
	if who != game.Black && who != game.White {
		panic("searching color must be black or white")
	}
	m := &MCTS{ // Default values
		who:         who,
		simulations: meta.Simulations,
		metrics:     metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	m.myself = NewRandomPolicy(who, m.rng)
	m.opponent = NewRandomPolicy(who.Opponent(), m.rng)
	return m
}

func (m *MCTS) Who() game.Piece {
	return m.who
}

// TakeAction returns the move with the best win rate after the configured
// number of simulations, or a pass when the state has no legal move.
func (m *MCTS) TakeAction(state game.Board) game.Action {
	move, _ := m.Search(state)
	return move
}

// Search is TakeAction that also reports the search metrics.
func (m *MCTS) Search(state game.Board) (game.Action, metrics.SearchMetric) {
	m.metrics.Start()
	t := m.grow(state)
	move := t.bestMove()
	m.metrics.SetTreeSize(t.size())
	m.metrics.SetRootWinRate(t.rootWinRate())
	metric := m.metrics.Complete()

	log.Debug().Msgf("%s chose %s after %d simulations (tree %d nodes, root win rate %.3f)",
		m.who, move, t.nodes[root].visits, t.size(), t.rootWinRate())
	return move, metric
}

// grow builds a fresh tree for state and runs every simulation on it.
func (m *MCTS) grow(state game.Board) *tree {
	t := newTree(state)
	if state.Turn() != m.who { // Not our move, nothing to search
		return t
	}
	t.expand(root)
	if t.nodes[root].isLeaf() { // No move available
		return t
	}

	for i := 0; i < m.simulations; i++ {
		m.simulate(t)
		m.metrics.AddSimulation()
	}
	return t
}

func (m *MCTS) simulate(t *tree) {
	id := t.selectThenExpand()
	win := m.rollout(t.nodes[id].state)
	t.backup(id, win)
}

// rollout alternates the two random policies until one of them cannot move,
// and reports whether that was the opponent.
func (m *MCTS) rollout(state game.Board) bool {
	myTurn := false
	if m.turnAware {
		myTurn = state.Turn() == m.who
	}

	moves := 0
	for {
		policy := m.opponent
		if myTurn {
			policy = m.myself
		}
		if policy.TakeAction(state).Apply(&state) != game.Legal {
			break
		}
		myTurn = !myTurn
		moves++
	}
	m.metrics.AddRolloutMoves(moves)
	return !myTurn
}

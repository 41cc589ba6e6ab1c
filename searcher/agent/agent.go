package agent

import (
	"time"

	"nogo/communication/client"
	"nogo/experiments/metrics"
	"nogo/game"
	"nogo/searcher"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Agent interface {
	Name() string
	Role() game.Piece
	// Property returns the raw value of a configuration key
	Property(key string) (string, bool)
	// TakeAction returns a move for the agent's role, or a pass when it has none
	TakeAction(state game.Board) game.Action
}

// Searcher is an agent that also reports the metrics of its search.
type Searcher interface {
	Agent
	Search(state game.Board) (game.Action, metrics.SearchMetric)
}

// New creates an agent from a configuration string such as
// "name=mcts role=black search=MCTS seed=7 simulation=200".
func New(args string) (Agent, error) {
	cfg, err := ParseConfig(args)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to create agent")
	}
	return NewFromConfig(cfg)
}

func NewFromConfig(cfg Config) (Agent, error) {
	if err := cfg.validate(); err != nil {
		return nil, errors.WithMessage(err, "failed to create agent")
	}

	if cfg.Remote != "" {
		return &remotePlayer{
			player: player{config: cfg},
			client: client.NewClientCommunicator(cfg.Remote),
		}, nil
	}

	rng := newRand(cfg)
	switch cfg.Search {
	case MCTSSearch:
		options := []searcher.Option{
			searcher.WithSimulations(cfg.Simulations),
			searcher.WithRand(rng),
			searcher.WithMetrics(),
		}
		if cfg.TurnAware {
			options = append(options, searcher.WithTurnAwareRollout())
		}
		return &mctsPlayer{
			player: player{config: cfg},
			mcts:   searcher.NewMCTS(cfg.Role, options...),
		}, nil
	default:
		return &randomPlayer{
			player: player{config: cfg},
			policy: searcher.NewRandomPolicy(cfg.Role, rng),
		}, nil
	}
}

func newRand(cfg Config) *rand.Rand {
	if cfg.HasSeed {
		return rand.New(rand.NewSource(cfg.Seed))
	}
	return rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
}

// player holds what every agent variant shares.
type player struct {
	config Config
}

func (p *player) Name() string     { return p.config.Name }
func (p *player) Role() game.Piece { return p.config.Role }

func (p *player) Property(key string) (string, bool) {
	value, ok := p.config.Meta[key]
	return value, ok
}

type randomPlayer struct {
	player
	policy *searcher.RandomPolicy
}

func (p *randomPlayer) TakeAction(state game.Board) game.Action {
	return p.policy.TakeAction(state)
}

// mctsPlayer delegates to a search that holds its own rollout policies.
type mctsPlayer struct {
	player
	mcts *searcher.MCTS
}

func (p *mctsPlayer) TakeAction(state game.Board) game.Action {
	return p.mcts.TakeAction(state)
}

func (p *mctsPlayer) Search(state game.Board) (game.Action, metrics.SearchMetric) {
	return p.mcts.Search(state)
}

// remotePlayer forwards every request to an agent server. A failed request
// is logged and answered with a pass.
type remotePlayer struct {
	player
	client *client.ClientCommunicator
}

func (p *remotePlayer) TakeAction(state game.Board) game.Action {
	move, err := p.client.TakeAction(state)
	if err != nil {
		log.Warn().Err(err).Msgf("remote agent %s failed to answer", p.config.Name)
		return game.Pass()
	}
	return move
}

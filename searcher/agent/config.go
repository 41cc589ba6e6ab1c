package agent

import (
	"strconv"
	"strings"

	"nogo/game"
	"nogo/meta"

	"github.com/pkg/errors"
)

// Search selects how an agent picks its moves.
type Search string

const (
	RandomSearch Search = "random"
	MCTSSearch   Search = "MCTS"
)

// forbiddenNameChars may not appear in an agent name.
const forbiddenNameChars = "[]():; "

// Config holds every recognized agent option.
type Config struct {
	Name        string     // name=, defaults to "unknown"
	Role        game.Piece // role=black|white, required
	Search      Search     // search=MCTS, random when absent
	Seed        uint64     // seed=, only used when HasSeed
	HasSeed     bool
	Simulations int    // simulation=, MCTS budget per move
	TurnAware   bool   // rollout=turn, start rollouts with the side on move
	Remote      string // remote=, URL of an agent server that picks the moves

	// Meta keeps every key=value pair, recognized or not.
	Meta map[string]string
}

// ParseConfig reads space separated key=value tokens. Later tokens override
// earlier ones, and name and role default to "unknown".
func ParseConfig(args string) (Config, error) {
	params := splitConfigString("name=unknown role=unknown " + args)
	cfg := Config{
		Name:        params["name"],
		Search:      RandomSearch,
		Simulations: meta.Simulations,
		Meta:        params,
	}

	if strings.ContainsAny(cfg.Name, forbiddenNameChars) {
		return cfg, errors.Errorf("invalid name: %s", cfg.Name)
	}

	role, ok := game.ParsePiece(params["role"])
	if !ok {
		return cfg, errors.Errorf("invalid role: %s", params["role"])
	}
	cfg.Role = role

	if search, ok := params["search"]; ok {
		switch Search(search) {
		case MCTSSearch, RandomSearch:
			cfg.Search = Search(search)
		default:
			return cfg, errors.Errorf("unknown search %q", search)
		}
	}

	if value, ok := params["seed"]; ok {
		seed, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return cfg, errors.Wrapf(err, "failed to parse configuration seed=%q", value)
		}
		cfg.Seed, cfg.HasSeed = seed, true
	}

	if value, ok := params["simulation"]; ok {
		simulations, err := strconv.Atoi(value)
		if err != nil {
			return cfg, errors.Wrapf(err, "failed to parse configuration simulation=%q", value)
		}
		if simulations < 0 {
			return cfg, errors.Errorf("simulation must not be negative, got %d", simulations)
		}
		cfg.Simulations = simulations
	}

	cfg.TurnAware = params["rollout"] == "turn"
	cfg.Remote = params["remote"]

	return cfg, nil
}

func (c Config) validate() error {
	if strings.ContainsAny(c.Name, forbiddenNameChars) {
		return errors.Errorf("invalid name: %s", c.Name)
	}
	if c.Role != game.Black && c.Role != game.White {
		return errors.Errorf("invalid role: %s", c.Role)
	}
	if c.Search != RandomSearch && c.Search != MCTSSearch {
		return errors.Errorf("unknown search %q", c.Search)
	}
	if c.Simulations < 0 {
		return errors.Errorf("simulation must not be negative, got %d", c.Simulations)
	}
	return nil
}

// String formats the config back into key=value tokens.
func (c Config) String() string {
	tokens := []string{"name=" + c.Name, "role=" + c.Role.String(), "search=" + string(c.Search)}
	if c.HasSeed {
		tokens = append(tokens, "seed="+strconv.FormatUint(c.Seed, 10))
	}
	if c.Remote != "" {
		tokens = append(tokens, "remote="+c.Remote)
	}
	if c.Search == MCTSSearch {
		tokens = append(tokens, "simulation="+strconv.Itoa(c.Simulations))
		if c.TurnAware {
			tokens = append(tokens, "rollout=turn")
		}
	}
	return strings.Join(tokens, " ")
}

func splitConfigString(args string) map[string]string {
	params := make(map[string]string)
	for _, token := range strings.Fields(args) {
		key, value, _ := strings.Cut(token, "=")
		params[key] = value
	}
	return params
}

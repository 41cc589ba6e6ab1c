package experiments

import (
	"os"

	"nogo/meta"
	"nogo/searcher/agent"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Matchup pairs two agent configuration strings.
type Matchup struct {
	Black string `yaml:"black"`
	White string `yaml:"white"`
}

// Setup describes an experiment, usually loaded from YAML:
//
//	name: mcts-vs-random
//	games: 20
//	concurrency: 4
//	matchups:
//	  - black: "name=mcts role=black search=MCTS simulation=100 seed=1"
//	    white: "name=random role=white seed=2"
type Setup struct {
	Name        string    `yaml:"name"`
	Games       int       `yaml:"games"`       // per matchup
	Concurrency int       `yaml:"concurrency"` // games played at once
	Matchups    []Matchup `yaml:"matchups"`
}

func LoadSetup(path string) (Setup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Setup{}, errors.Wrap(err, "failed to read experiment setup")
	}
	return ParseSetup(data)
}

func ParseSetup(data []byte) (Setup, error) {
	var setup Setup
	if err := yaml.Unmarshal(data, &setup); err != nil {
		return Setup{}, errors.Wrap(err, "failed to parse experiment setup")
	}
	setup.applyDefaults()
	return setup, setup.validate()
}

func (s *Setup) applyDefaults() {
	if s.Name == "" {
		s.Name = "experiment"
	}
	if s.Games <= 0 {
		s.Games = meta.Games
	}
	if s.Concurrency <= 0 {
		s.Concurrency = meta.Concurrency
	}
}

func (s Setup) validate() error {
	if len(s.Matchups) == 0 {
		return errors.New("experiment setup has no matchups")
	}
	for i, matchup := range s.Matchups {
		if _, _, err := matchup.configs(); err != nil {
			return errors.WithMessagef(err, "matchup %d", i+1)
		}
	}
	return nil
}

func (m Matchup) configs() (black, white agent.Config, err error) {
	black, err = agent.ParseConfig(m.Black)
	if err != nil {
		return black, white, errors.WithMessage(err, "black")
	}
	white, err = agent.ParseConfig(m.White)
	if err != nil {
		return black, white, errors.WithMessage(err, "white")
	}
	return black, white, nil
}

// meta/meta.go
package meta

// Simulations defines the default number of MCTS simulations per move.
const Simulations = 100

// Games defines the default number of games per experiment matchup.
const Games = 10

// Concurrency defines the default number of experiment games played at once.
const Concurrency = 4

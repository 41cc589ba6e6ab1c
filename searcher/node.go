package searcher

import "nogo/game"

const (
	root     = 0
	noParent = -1
)

// node is one position reached during search. Links are indices into the
// owning tree's arena.
type node struct {
	state    game.Board
	move     game.Action // Pass for the root
	parent   int
	first    int // index of the first child
	count    int // number of children, contiguous from first
	expanded bool
	visits   int
	wins     int // simulations won by the searching player, never above visits
}

func (n *node) isLeaf() bool {
	return n.count == 0
}

// tree is an arena of nodes grown by a single search and discarded after it.
type tree struct {
	nodes []node
}

func newTree(state game.Board) *tree {
	return &tree{nodes: []node{{state: state, move: game.Pass(), parent: noParent}}}
}

func (t *tree) size() int {
	return len(t.nodes)
}

func (t *tree) children(id int) []node {
	n := &t.nodes[id]
	return t.nodes[n.first : n.first+n.count]
}

// expand adds one child per legal move of the side to move. It runs at most
// once per node; a node left without children is terminal.
func (t *tree) expand(id int) {
	if t.nodes[id].expanded {
		return
	}
	t.nodes[id].expanded = true

	state := t.nodes[id].state
	first := len(t.nodes)
	for _, move := range game.Candidates(state.Turn()) {
		after := state
		if move.Apply(&after) == game.Legal {
			t.nodes = append(t.nodes, node{state: after, move: move, parent: id})
		}
	}
	t.nodes[id].first = first
	t.nodes[id].count = len(t.nodes) - first
}

// selects descends from the root to a leaf. An unvisited child is taken as
// soon as it is seen; otherwise the child with the highest UCT score is
// followed, ties going to the earliest child.
func (t *tree) selects() int {
	id := root
	for {
		n := &t.nodes[id]
		if n.isLeaf() {
			return id
		}

		for c := n.first; c < n.first+n.count; c++ {
			if t.nodes[c].visits == 0 {
				return c
			}
		}

		policy := newUCT(n.visits)
		next := -1
		best := 0.0
		for c := n.first; c < n.first+n.count; c++ {
			child := &t.nodes[c]
			if score := policy.score(child.wins, child.visits); next == -1 || score > best {
				next = c
				best = score
			}
		}
		id = next
	}
}

// selectThenExpand picks the node to simulate from, expanding it the first
// time it is reached.
func (t *tree) selectThenExpand() int {
	id := t.selects()
	t.expand(id)
	return id
}

// backup records one simulation on every node from id up to the root.
func (t *tree) backup(id int, win bool) {
	for id != noParent {
		n := &t.nodes[id]
		n.visits++
		if win {
			n.wins++
		}
		id = n.parent
	}
}

// bestMove returns the move of the root child with the highest win rate among
// visited children, falling back to the first child when none was visited.
func (t *tree) bestMove() game.Action {
	if t.nodes[root].isLeaf() {
		return game.Pass()
	}

	children := t.children(root)
	best := -1
	bestRate := 0.0
	for i := range children {
		child := &children[i]
		if child.visits == 0 {
			continue
		}
		rate := float64(child.wins) / float64(child.visits)
		if best == -1 || rate > bestRate {
			best = i
			bestRate = rate
		}
	}
	if best == -1 {
		return children[0].move
	}
	return children[best].move
}

func (t *tree) rootWinRate() float64 {
	r := &t.nodes[root]
	if r.visits == 0 {
		return 0
	}
	return float64(r.wins) / float64(r.visits)
}

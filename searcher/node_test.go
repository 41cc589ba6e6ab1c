package searcher

import (
	"strings"
	"testing"

	"nogo/game"

	"github.com/stretchr/testify/require"
)

/**
Tests the search tree arena
- expansion: one child per legal move, once, terminal stays a leaf
- selection: leaf root, unvisited first, max UCT, earliest on ties, descends levels
- backup: every node from the selected one to the root
- decision: best win rate among visited root children, first child fallback
*/

func terminalBoard(t *testing.T) game.Board {
	t.Helper()
	var b game.Board
	require.NoError(t, b.UnmarshalText([]byte("X:"+strings.Repeat("#", game.Cells))))
	return b
}

func TestTreeExpand(t *testing.T) {
	t.Run("expanding an empty board", func(t *testing.T) {
		tr := newTree(game.NewBoard())

		tr.expand(root)

		require.True(t, tr.nodes[root].expanded)
		require.Equal(t, game.Cells, tr.nodes[root].count)
		for i, child := range tr.children(root) {
			require.Equal(t, root, child.parent)
			require.Equal(t, game.Place(i, game.Black), child.move)
			require.Equal(t, game.Black, child.state.At(i), "Child state should have the move applied")
			require.Equal(t, game.White, child.state.Turn())
			require.Zero(t, child.visits)
			require.Zero(t, child.wins)
			require.False(t, child.expanded)
		}
		require.Equal(t, game.NewBoard(), tr.nodes[root].state, "Root state should not change")
	})

	t.Run("expanding only once", func(t *testing.T) {
		tr := newTree(game.NewBoard())
		tr.expand(root)
		size := tr.size()

		tr.expand(root)

		require.Equal(t, size, tr.size(), "Second expansion should not add children")
	})

	t.Run("expanding a child appends its children after the siblings", func(t *testing.T) {
		tr := newTree(game.NewBoard())
		tr.expand(root)

		tr.expand(1)

		require.Equal(t, 1+game.Cells, tr.nodes[1].first)
		require.Equal(t, game.Cells-1, tr.nodes[1].count, "White cannot play on the occupied cell")
		for _, grandChild := range tr.children(1) {
			require.Equal(t, 1, grandChild.parent)
			require.Equal(t, game.White, grandChild.move.Who)
		}
	})

	t.Run("leaving a terminal node as a leaf", func(t *testing.T) {
		tr := newTree(terminalBoard(t))

		tr.expand(root)

		require.True(t, tr.nodes[root].expanded)
		require.True(t, tr.nodes[root].isLeaf())
		require.Equal(t, 1, tr.size())
	})
}

func TestTreeSelects(t *testing.T) {
	t.Run("selecting a leaf root", func(t *testing.T) {
		tr := newTree(game.NewBoard())

		require.Equal(t, root, tr.selects())
	})

	t.Run("selecting the first unvisited child before scoring", func(t *testing.T) {
		tr := &tree{nodes: []node{
			{parent: noParent, first: 1, count: 4, expanded: true, visits: 10, wins: 9},
			{parent: root, visits: 9, wins: 9},
			{parent: root, visits: 0},
			{parent: root, visits: 1, wins: 0},
			{parent: root, visits: 0},
		}}

		require.Equal(t, 2, tr.selects(), "Unvisited child should win over a perfect win rate")
	})

	t.Run("selecting the child with max UCT score", func(t *testing.T) {
		tr := &tree{nodes: []node{
			{parent: noParent, first: 1, count: 3, expanded: true, visits: 10, wins: 5},
			{parent: root, visits: 2, wins: 0},
			{parent: root, visits: 2, wins: 2},
			{parent: root, visits: 6, wins: 3},
		}}

		require.Equal(t, 2, tr.selects())
	})

	t.Run("breaking ties by the earliest child", func(t *testing.T) {
		tr := &tree{nodes: []node{
			{parent: noParent, first: 1, count: 3, expanded: true, visits: 6, wins: 3},
			{parent: root, visits: 2, wins: 1},
			{parent: root, visits: 2, wins: 1},
			{parent: root, visits: 2, wins: 1},
		}}

		require.Equal(t, 1, tr.selects())
	})

	t.Run("descending until a leaf", func(t *testing.T) {
		tr := &tree{nodes: []node{
			{parent: noParent, first: 1, count: 2, expanded: true, visits: 4, wins: 3},
			{parent: root, visits: 1, wins: 0, expanded: true},
			{parent: root, first: 3, count: 2, expanded: true, visits: 3, wins: 3},
			{parent: 2, visits: 2, wins: 2},
			{parent: 2, visits: 0},
		}}

		require.Equal(t, 4, tr.selects(), "Should descend into the best child and take its unvisited child")
	})

	t.Run("expanding the selected leaf", func(t *testing.T) {
		tr := newTree(game.NewBoard())
		tr.expand(root)

		id := tr.selectThenExpand()

		require.Equal(t, 1, id)
		require.True(t, tr.nodes[id].expanded)
		require.Equal(t, game.Cells-1, tr.nodes[id].count)
	})
}

func TestTreeBackup(t *testing.T) {
	tr := &tree{nodes: []node{
		{parent: noParent, first: 1, count: 1, expanded: true},
		{parent: root, first: 2, count: 1, expanded: true},
		{parent: 1},
	}}

	t.Run("recording a win up to the root", func(t *testing.T) {
		tr.backup(2, true)

		for _, n := range tr.nodes {
			require.Equal(t, 1, n.visits)
			require.Equal(t, 1, n.wins)
		}
	})

	t.Run("recording a loss up to the root", func(t *testing.T) {
		tr.backup(2, false)

		for _, n := range tr.nodes {
			require.Equal(t, 2, n.visits)
			require.Equal(t, 1, n.wins)
		}
	})

	t.Run("recording from an inner node leaves descendants alone", func(t *testing.T) {
		tr.backup(1, true)

		require.Equal(t, 3, tr.nodes[root].visits)
		require.Equal(t, 3, tr.nodes[1].visits)
		require.Equal(t, 2, tr.nodes[2].visits)
	})
}

func TestTreeBestMove(t *testing.T) {
	moves := []game.Action{
		game.Place(0, game.Black),
		game.Place(1, game.Black),
		game.Place(2, game.Black),
	}
	newRoot := func(children ...node) *tree {
		tr := &tree{nodes: []node{{parent: noParent, first: 1, count: len(children), expanded: true}}}
		for i, child := range children {
			child.parent = root
			child.move = moves[i]
			tr.nodes = append(tr.nodes, child)
		}
		return tr
	}

	t.Run("picking the best win rate among visited children", func(t *testing.T) {
		tr := newRoot(node{visits: 0}, node{visits: 4, wins: 1}, node{visits: 2, wins: 1})

		require.Equal(t, moves[2], tr.bestMove())
	})

	t.Run("breaking ties by the first child", func(t *testing.T) {
		tr := newRoot(node{visits: 3, wins: 0}, node{visits: 4, wins: 2}, node{visits: 2, wins: 1})

		require.Equal(t, moves[1], tr.bestMove())
	})

	t.Run("falling back to the first child without visits", func(t *testing.T) {
		tr := newRoot(node{}, node{}, node{})

		require.Equal(t, moves[0], tr.bestMove())
	})

	t.Run("passing without children", func(t *testing.T) {
		tr := newTree(terminalBoard(t))
		tr.expand(root)

		require.True(t, tr.bestMove().IsPass())
	})
}

// Package dfs_test validates pre-order visitation, equivalence with the
// recursive expansion order, deep-graph safety, and error policy.
package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graflab/graflab/core"
	"github.com/graflab/graflab/dfs"
)

func TestDFS_NilGraph(t *testing.T) {
	_, err := dfs.DFS(nil, 0)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_StartNotFound(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex(0, 0, "")
	_, err := dfs.DFS(g, 7)
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestDFS_EmptyGraphIsDefinedResult(t *testing.T) {
	res, err := dfs.DFS(core.NewGraph(), core.AutoStart)
	require.NoError(t, err)
	assert.Empty(t, res.Order)
	assert.Zero(t, res.Reached())
}

func TestDFS_PreOrder(t *testing.T) {
	// A—B, A—C, B—D: recursion visits A, B, D, C.
	g := core.NewGraph()
	a := g.AddVertex(0, 0, "")
	b := g.AddVertex(0, 0, "")
	c := g.AddVertex(0, 0, "")
	d := g.AddVertex(0, 0, "")
	g.AddEdge(a, b, 1)
	g.AddEdge(a, c, 1)
	g.AddEdge(b, d, 1)

	res, err := dfs.DFS(g, a)
	require.NoError(t, err)
	assert.Equal(t, []int{a, b, d, c}, res.Order)
	assert.Equal(t, 2, res.Depth[d])
	assert.Equal(t, b, res.Parent[d])
	assert.Equal(t, 4, res.Reached())
}

func TestDFS_NoDuplicatesOnCyclesAndParallelEdges(t *testing.T) {
	g := core.NewGraph()
	a := g.AddVertex(0, 0, "")
	b := g.AddVertex(0, 0, "")
	c := g.AddVertex(0, 0, "")
	g.AddEdge(a, b, 1)
	g.AddEdge(b, c, 1)
	g.AddEdge(c, a, 1)
	g.AddEdge(a, b, 1) // parallel
	g.AddEdge(a, a, 1) // self-loop

	res, err := dfs.DFS(g, a)
	require.NoError(t, err)

	seen := make(map[int]bool)
	for _, v := range res.Order {
		assert.False(t, seen[v], "vertex %d visited twice", v)
		seen[v] = true
	}
	assert.Equal(t, 3, res.Reached())
}

func TestDFS_DeepChainDoesNotOverflow(t *testing.T) {
	// A recursive implementation would blow the stack well before 200k.
	g := core.NewGraph()
	const n = 200_000
	prev := g.AddVertex(0, 0, "")
	first := prev
	for i := 1; i < n; i++ {
		next := g.AddVertex(0, 0, "")
		g.AddEdge(prev, next, 1)
		prev = next
	}

	res, err := dfs.DFS(g, first)
	require.NoError(t, err)
	assert.Equal(t, n, res.Reached())
	assert.Equal(t, n-1, res.Depth[prev])
}

func TestDFS_MaxDepth(t *testing.T) {
	g := core.NewGraph()
	a := g.AddVertex(0, 0, "")
	b := g.AddVertex(0, 0, "")
	c := g.AddVertex(0, 0, "")
	g.AddEdge(a, b, 1)
	g.AddEdge(b, c, 1)

	res, err := dfs.DFS(g, a, dfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []int{a, b}, res.Order)

	res, err = dfs.DFS(g, a, dfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, []int{a}, res.Order, "depth 0 visits only the start")
}

func TestDFS_HookAbort(t *testing.T) {
	g := core.NewGraph()
	a := g.AddVertex(0, 0, "")
	b := g.AddVertex(0, 0, "")
	g.AddEdge(a, b, 1)

	boom := errors.New("boom")
	_, err := dfs.DFS(g, a, dfs.WithOnVisit(func(id int) error {
		if id == b {
			return boom
		}

		return nil
	}))
	assert.ErrorIs(t, err, boom)
}

func TestDFS_ContextCancellation(t *testing.T) {
	g := core.NewGraph()
	a := g.AddVertex(0, 0, "")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.DFS(g, a, dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

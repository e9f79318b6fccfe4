package euler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graflab/graflab/core"
	"github.com/graflab/graflab/euler"
)

func ring(g *core.Graph, n int) []int {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = g.AddVertex(0, 0, "")
	}
	for i := range ids {
		g.AddEdge(ids[i], ids[(i+1)%n], 1)
	}
	return ids
}

// walkEdges flattens a walk into normalized undirected edge pairs so the
// crossed-once property can be checked.
func walkEdges(walk []int) map[[2]int]int {
	crossed := make(map[[2]int]int)
	for i := 1; i < len(walk); i++ {
		a, b := walk[i-1], walk[i]
		if b < a {
			a, b = b, a
		}
		crossed[[2]int{a, b}]++
	}
	return crossed
}

func TestAnalyze_RingIsCircuit(t *testing.T) {
	g := core.NewGraph()
	ring(g, 4)

	res := euler.Analyze(g)
	require.Equal(t, euler.StatusCircuit, res.Status)
	require.True(t, res.HasWalk())
	assert.Len(t, res.Walk, 5)
	assert.Equal(t, res.Start, res.End)
	assert.Equal(t, 0, res.Start)
	assert.Empty(t, res.Odd)

	for pair, n := range walkEdges(res.Walk) {
		assert.Equal(t, 1, n, "edge %v crossed more than once", pair)
	}
}

func TestAnalyze_PathGraphIsPath(t *testing.T) {
	g := core.NewGraph()
	a := g.AddVertex(0, 0, "")
	b := g.AddVertex(0, 0, "")
	c := g.AddVertex(0, 0, "")
	g.AddEdge(a, b, 1)
	g.AddEdge(b, c, 1)

	res := euler.Analyze(g)
	require.Equal(t, euler.StatusPath, res.Status)
	assert.Equal(t, []int{a, c}, res.Odd)
	assert.Equal(t, a, res.Start)
	assert.Equal(t, c, res.End)
	assert.Equal(t, []int{a, b, c}, res.Walk)
}

func TestAnalyze_KoenigsbergBridges(t *testing.T) {
	// Four land masses, seven bridges: the classic impossibility.
	g := core.NewGraph()
	a := g.AddVertex(0, 0, "")
	b := g.AddVertex(0, 0, "")
	c := g.AddVertex(0, 0, "")
	d := g.AddVertex(0, 0, "")
	g.AddEdge(a, b, 1)
	g.AddEdge(a, b, 1)
	g.AddEdge(a, c, 1)
	g.AddEdge(a, c, 1)
	g.AddEdge(a, d, 1)
	g.AddEdge(b, d, 1)
	g.AddEdge(c, d, 1)

	res := euler.Analyze(g)
	assert.Equal(t, euler.StatusNone, res.Status)
	assert.False(t, res.HasWalk())
	assert.Equal(t, []int{a, b, c, d}, res.Odd)
	assert.Equal(t, 5, res.Degree[a])
	assert.Equal(t, 3, res.Degree[b])
}

func TestAnalyze_NoEdges(t *testing.T) {
	t.Run("nil graph", func(t *testing.T) {
		assert.Equal(t, euler.StatusNoEdges, euler.Analyze(nil).Status)
	})
	t.Run("vertices only", func(t *testing.T) {
		g := core.NewGraph()
		g.AddVertex(0, 0, "")
		g.AddVertex(0, 0, "")

		res := euler.Analyze(g)
		assert.Equal(t, euler.StatusNoEdges, res.Status)
		assert.False(t, res.HasWalk())
	})
}

func TestAnalyze_DirectedCircuit(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	ring(g, 3)

	res := euler.Analyze(g)
	require.Equal(t, euler.StatusCircuit, res.Status)
	assert.Equal(t, []int{0, 1, 2, 0}, res.Walk)
	assert.Equal(t, 1, res.OutDegree[0])
	assert.Equal(t, 1, res.InDegree[0])
}

func TestAnalyze_DirectedPath(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	a := g.AddVertex(0, 0, "")
	b := g.AddVertex(0, 0, "")
	c := g.AddVertex(0, 0, "")
	g.AddEdge(a, b, 1)
	g.AddEdge(b, c, 1)

	res := euler.Analyze(g)
	require.Equal(t, euler.StatusPath, res.Status)
	assert.Equal(t, a, res.Start)
	assert.Equal(t, c, res.End)
	assert.Equal(t, []int{a, b, c}, res.Walk)
}

func TestAnalyze_DirectedImbalanceRejected(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	a := g.AddVertex(0, 0, "")
	b := g.AddVertex(0, 0, "")
	c := g.AddVertex(0, 0, "")
	g.AddEdge(a, b, 1)
	g.AddEdge(a, c, 1)

	res := euler.Analyze(g)
	assert.Equal(t, euler.StatusNone, res.Status)
	assert.False(t, res.HasWalk())
}

func TestAnalyze_DisconnectedEdgesDemoted(t *testing.T) {
	// Two separate triangles: every degree is even but no single walk
	// can cross all six edges.
	g := core.NewGraph()
	ring(g, 3)
	ring(g, 3)

	res := euler.Analyze(g)
	assert.Equal(t, euler.StatusNone, res.Status)
	assert.False(t, res.HasWalk())
}

func TestAnalyze_ParallelEdgesFormCircuit(t *testing.T) {
	g := core.NewGraph()
	a := g.AddVertex(0, 0, "")
	b := g.AddVertex(0, 0, "")
	g.AddEdge(a, b, 1)
	g.AddEdge(a, b, 1)

	res := euler.Analyze(g)
	require.Equal(t, euler.StatusCircuit, res.Status)
	assert.Equal(t, []int{a, b, a}, res.Walk)
	assert.Equal(t, 2, res.Degree[a])
}

func TestAnalyze_SelfLoopCircuit(t *testing.T) {
	g := core.NewGraph()
	a := g.AddVertex(0, 0, "")
	g.AddEdge(a, a, 1)

	res := euler.Analyze(g)
	require.Equal(t, euler.StatusCircuit, res.Status)
	assert.Equal(t, []int{a, a}, res.Walk)
	assert.Equal(t, 2, res.Degree[a])
}

func TestAnalyze_IsolatedVertexIgnored(t *testing.T) {
	g := core.NewGraph()
	ring(g, 3)
	g.AddVertex(0, 0, "") // hermit

	res := euler.Analyze(g)
	assert.Equal(t, euler.StatusCircuit, res.Status)
	assert.Len(t, res.Walk, 4)
}

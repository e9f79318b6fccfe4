package present_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graflab/graflab/bfs"
	"github.com/graflab/graflab/components"
	"github.com/graflab/graflab/core"
	"github.com/graflab/graflab/cycles"
	"github.com/graflab/graflab/dfs"
	"github.com/graflab/graflab/dijkstra"
	"github.com/graflab/graflab/euler"
	"github.com/graflab/graflab/present"
)

// fakeCanvas records every highlight call for inspection.
type fakeCanvas struct {
	vertices []int
	edges    [][2]int
	cleared  int
}

func (c *fakeCanvas) SetHighlightedVertices(ids []int) { c.vertices = ids }

func (c *fakeCanvas) SetHighlightedEdges(pairs [][2]int) { c.edges = pairs }
func (c *fakeCanvas) ClearHighlights() {
	c.cleared++
	c.vertices = nil
	c.edges = nil
}

// lineGraph builds A - B - C and returns the graph with the three ids.
func lineGraph() (*core.Graph, int, int, int) {
	g := core.NewGraph()
	a := g.AddVertex(0, 0, "")
	b := g.AddVertex(1, 0, "")
	c := g.AddVertex(2, 0, "")
	g.AddEdge(a, b, 2)
	g.AddEdge(b, c, 3)
	return g, a, b, c
}

func TestBFSReport(t *testing.T) {
	g, a, b, c := lineGraph()
	res, err := bfs.BFS(g, a)
	require.NoError(t, err)

	rep := present.BFSReport(g, res)
	assert.Contains(t, rep.Text, "Breadth-first traversal from A")
	assert.Contains(t, rep.Text, "A -> B -> C")
	assert.Contains(t, rep.Text, "Visited 3 of 3 vertices.")
	assert.Equal(t, []int{a, b, c}, rep.Highlights.Vertices)
	assert.Equal(t, [][2]int{{a, b}, {b, c}}, rep.Highlights.Edges)
}

func TestDFSReport(t *testing.T) {
	g, a, _, _ := lineGraph()
	res, err := dfs.DFS(g, a)
	require.NoError(t, err)

	rep := present.DFSReport(g, res)
	assert.Contains(t, rep.Text, "Depth-first traversal from A")
	assert.Contains(t, rep.Text, "A -> B -> C")
}

func TestTraversalReport_EmptyGraph(t *testing.T) {
	g := core.NewGraph()
	res, err := bfs.BFS(g, core.AutoStart)
	require.NoError(t, err)

	rep := present.BFSReport(g, res)
	assert.Equal(t, "Nothing to traverse: the graph has no vertices.", rep.Text)
	assert.True(t, rep.Highlights.Empty())
}

func TestComponentsReport(t *testing.T) {
	g := core.NewGraph()
	a := g.AddVertex(0, 0, "")
	b := g.AddVertex(0, 0, "")
	g.AddVertex(0, 0, "") // isolated C
	g.AddEdge(a, b, 1)

	rep := present.ComponentsReport(g, components.Find(g))
	assert.Contains(t, rep.Text, "2 connected components found.")
	assert.Contains(t, rep.Text, "Component 1 (red): A, B")
	assert.Contains(t, rep.Text, "Component 2 (turquoise): C")
	assert.Contains(t, rep.Text, "Largest: 2, smallest: 1")
	// The largest component is the highlighted one.
	assert.Equal(t, []int{a, b}, rep.Highlights.Vertices)
}

func TestComponentsReport_Connected(t *testing.T) {
	g, _, _, _ := lineGraph()
	rep := present.ComponentsReport(g, components.Find(g))
	assert.Contains(t, rep.Text, "The graph is connected")
}

func TestShortestPathReport(t *testing.T) {
	g, a, b, c := lineGraph()
	res, err := dijkstra.Dijkstra(g, a)
	require.NoError(t, err)

	t.Run("reachable target", func(t *testing.T) {
		rep := present.ShortestPathReport(g, res, c)
		assert.Contains(t, rep.Text, "Shortest path from A to C: A -> B -> C")
		assert.Contains(t, rep.Text, "Total distance: 5")
		assert.Equal(t, []int{a, b, c}, rep.Highlights.Vertices)
		assert.Equal(t, [][2]int{{a, b}, {b, c}}, rep.Highlights.Edges)
	})

	t.Run("unreachable target", func(t *testing.T) {
		lone := g.AddVertex(9, 9, "")
		res2, err := dijkstra.Dijkstra(g, a)
		require.NoError(t, err)

		rep := present.ShortestPathReport(g, res2, lone)
		assert.Contains(t, rep.Text, "No path from A to D: the target is unreachable.")
		assert.True(t, rep.Highlights.Empty())
	})
}

func TestAllDistancesReport(t *testing.T) {
	g, a, _, _ := lineGraph()
	lone := g.AddVertex(9, 9, "")
	res, err := dijkstra.Dijkstra(g, a)
	require.NoError(t, err)

	rep := present.AllDistancesReport(g, res)
	assert.Contains(t, rep.Text, "Shortest distances from A:")
	assert.Contains(t, rep.Text, "A: 0")
	assert.Contains(t, rep.Text, "C: 5")
	assert.Contains(t, rep.Text, "D: unreachable")
	assert.NotContains(t, rep.Highlights.Vertices, lone)
}

func TestCyclesReport(t *testing.T) {
	t.Run("cyclic", func(t *testing.T) {
		g := core.NewGraph()
		a := g.AddVertex(0, 0, "")
		b := g.AddVertex(0, 0, "")
		c := g.AddVertex(0, 0, "")
		g.AddEdge(a, b, 1)
		g.AddEdge(b, c, 1)
		g.AddEdge(c, a, 1)

		rep := present.CyclesReport(g, cycles.Detect(g))
		assert.Contains(t, rep.Text, "1 cycle found (size 3).")
		assert.Contains(t, rep.Text, "Cycle 1: A -> B -> C -> A")
		assert.Equal(t, []int{a, b, c}, rep.Highlights.Vertices)
		assert.Len(t, rep.Highlights.Edges, 3)
	})

	t.Run("dag", func(t *testing.T) {
		g := core.NewGraph(core.WithDirected(true))
		a := g.AddVertex(0, 0, "")
		b := g.AddVertex(0, 0, "")
		g.AddEdge(a, b, 1)

		rep := present.CyclesReport(g, cycles.Detect(g))
		assert.Contains(t, rep.Text, "No cycles: the graph is a DAG.")
		assert.Contains(t, rep.Text, "Topological order: A -> B")
	})

	t.Run("tree", func(t *testing.T) {
		g, _, _, _ := lineGraph()
		rep := present.CyclesReport(g, cycles.Detect(g))
		assert.Equal(t, "No cycles: the graph is a tree.", rep.Text)
	})
}

func TestEulerReport(t *testing.T) {
	t.Run("circuit", func(t *testing.T) {
		g := core.NewGraph()
		a := g.AddVertex(0, 0, "")
		b := g.AddVertex(0, 0, "")
		c := g.AddVertex(0, 0, "")
		g.AddEdge(a, b, 1)
		g.AddEdge(b, c, 1)
		g.AddEdge(c, a, 1)

		rep := present.EulerReport(g, euler.Analyze(g))
		assert.Contains(t, rep.Text, "Eulerian circuit found starting at A:")
		assert.Equal(t, []int{a, b, c}, rep.Highlights.Vertices)
		assert.Len(t, rep.Highlights.Edges, 3)
	})

	t.Run("none", func(t *testing.T) {
		g := core.NewGraph()
		hub := g.AddVertex(0, 0, "")
		for i := 0; i < 3; i++ {
			g.AddEdge(hub, g.AddVertex(0, 0, ""), 1)
		}

		rep := present.EulerReport(g, euler.Analyze(g))
		assert.Contains(t, rep.Text, "No Eulerian circuit or path found.")
		assert.Contains(t, rep.Text, "Odd-degree vertices:")
	})

	t.Run("no edges", func(t *testing.T) {
		rep := present.EulerReport(core.NewGraph(), euler.Analyze(core.NewGraph()))
		assert.Equal(t, "The graph has no edges: nothing to walk.", rep.Text)
	})
}

func TestFailureReport(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{dijkstra.ErrGraphNil, "No graph to analyze."},
		{bfs.ErrStartVertexNotFound, "The requested start vertex does not exist in the graph."},
		{dijkstra.ErrNegativeWeight, "Shortest-path search does not support negative edge weights."},
		{dfs.ErrNotDirected, "A topological sort requires a directed graph."},
		{dfs.ErrCycleDetected, "No topological order exists: the graph contains a cycle."},
		{errors.New("disk on fire"), "Analysis failed: disk on fire"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, present.FailureReport(tc.err).Text)
	}
	assert.Empty(t, present.FailureReport(nil).Text)
}

func TestHighlightsApply(t *testing.T) {
	canvas := &fakeCanvas{vertices: []int{9}, edges: [][2]int{{9, 9}}}
	h := present.Highlights{Vertices: []int{1, 2}, Edges: [][2]int{{1, 2}}}
	h.Apply(canvas)

	assert.Equal(t, 1, canvas.cleared)
	assert.Equal(t, []int{1, 2}, canvas.vertices)
	assert.Equal(t, [][2]int{{1, 2}}, canvas.edges)

	present.Highlights{}.Apply(canvas)
	assert.Equal(t, 2, canvas.cleared)
	assert.Nil(t, canvas.vertices)
	assert.Nil(t, canvas.edges)
}

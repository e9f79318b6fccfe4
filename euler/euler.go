package euler

import (
	"github.com/graflab/graflab/core"
)

// Analyze computes the Eulerian structure of g. It never fails: every
// outcome, including a nil or empty graph, maps to a Status.
func Analyze(g *core.Graph) *Result {
	res := &Result{}
	if g == nil || g.EdgeCount() == 0 {
		res.Status = StatusNoEdges
		if g != nil {
			res.Directed = g.Directed()
		}
		return res
	}
	res.Directed = g.Directed()

	if res.Directed {
		analyzeDirected(g, res)
	} else {
		analyzeUndirected(g, res)
	}
	return res
}

func analyzeUndirected(g *core.Graph, res *Result) {
	res.Degree = make(map[int]int, g.VertexCount())
	for _, v := range g.Vertices() {
		res.Degree[v] = 0
	}
	for _, e := range g.Edges() {
		res.Degree[e.From]++
		res.Degree[e.To]++
	}
	for _, v := range g.Vertices() {
		if res.Degree[v]%2 != 0 {
			res.Odd = append(res.Odd, v)
		}
	}

	var start int
	switch len(res.Odd) {
	case 0:
		res.Status = StatusCircuit
		start = firstWithEdge(g, res.Degree)
	case 2:
		res.Status = StatusPath
		start = res.Odd[0]
	default:
		res.Status = StatusNone
		return
	}
	finishWalk(g, res, start)
}

func analyzeDirected(g *core.Graph, res *Result) {
	res.InDegree = make(map[int]int, g.VertexCount())
	res.OutDegree = make(map[int]int, g.VertexCount())
	for _, v := range g.Vertices() {
		res.InDegree[v] = 0
		res.OutDegree[v] = 0
	}
	for _, e := range g.Edges() {
		res.OutDegree[e.From]++
		res.InDegree[e.To]++
	}

	// An Eulerian circuit needs every vertex balanced; a path needs
	// exactly one surplus-out vertex and one surplus-in vertex, with a
	// one-arc imbalance each.
	surplusOut, surplusIn := -1, -1
	balanced := true
	for _, v := range g.Vertices() {
		switch diff := res.OutDegree[v] - res.InDegree[v]; {
		case diff == 0:
		case diff == 1 && surplusOut == -1:
			surplusOut = v
			balanced = false
		case diff == -1 && surplusIn == -1:
			surplusIn = v
			balanced = false
		default:
			res.Status = StatusNone
			return
		}
	}

	var start int
	switch {
	case balanced:
		res.Status = StatusCircuit
		start = firstWithEdge(g, res.OutDegree)
	case surplusOut != -1 && surplusIn != -1:
		res.Status = StatusPath
		start = surplusOut
	default:
		res.Status = StatusNone
		return
	}
	finishWalk(g, res, start)
}

// finishWalk runs Hierholzer from start and validates the outcome: the
// walk must cross every edge, and a degenerate single-vertex walk means
// no circuit was found. Failures demote the status to StatusNone.
func finishWalk(g *core.Graph, res *Result, start int) {
	walk := hierholzer(g, start)
	if len(walk) <= 1 || len(walk)-1 != g.EdgeCount() {
		res.Status = StatusNone
		return
	}
	res.Walk = walk
	res.Start = walk[0]
	res.End = walk[len(walk)-1]
}

// hierholzer builds an Eulerian walk from start on an explicit stack,
// consuming a scratch copy of the adjacency lists. Undirected edges are
// consumed from both endpoints at once.
func hierholzer(g *core.Graph, start int) []int {
	directed := g.Directed()
	remain := make(map[int][]int, g.VertexCount())
	for _, e := range g.Edges() {
		remain[e.From] = append(remain[e.From], e.To)
		if !directed && e.From != e.To {
			remain[e.To] = append(remain[e.To], e.From)
		}
	}

	stack := []int{start}
	var walk []int
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		if nbrs := remain[v]; len(nbrs) > 0 {
			n := nbrs[len(nbrs)-1]
			remain[v] = nbrs[:len(nbrs)-1]
			if !directed && n != v {
				remain[n] = removeFirst(remain[n], v)
			}
			stack = append(stack, n)
			continue
		}
		walk = append(walk, v)
		stack = stack[:len(stack)-1]
	}

	// The construction emits the walk back to front.
	for i, j := 0, len(walk)-1; i < j; i, j = i+1, j-1 {
		walk[i], walk[j] = walk[j], walk[i]
	}
	return walk
}

// firstWithEdge returns the lowest vertex id carrying at least one edge.
func firstWithEdge(g *core.Graph, deg map[int]int) int {
	ids := g.Vertices() // ascending
	for _, v := range ids {
		if deg[v] > 0 {
			return v
		}
	}
	return ids[0]
}

// removeFirst drops the first occurrence of v from nbrs, in place.
func removeFirst(nbrs []int, v int) []int {
	for i, n := range nbrs {
		if n == v {
			return append(nbrs[:i], nbrs[i+1:]...)
		}
	}
	return nbrs
}

package cycles

import (
	"github.com/graflab/graflab/core"
)

// classifyAcyclic names the shape of a graph known to hold no cycle and,
// for the directed case, attaches a topological order.
func classifyAcyclic(g *core.Graph, res *Result) {
	if g.Directed() {
		res.Kind = KindDAG
		res.TopoOrder = kahnOrder(g)
		return
	}
	if g.EdgeCount() == g.VertexCount()-1 {
		res.Kind = KindTree
	} else {
		res.Kind = KindForest
	}
}

// kahnOrder produces a topological order of an acyclic directed graph by
// repeated zero-in-degree extraction, always taking the lowest available
// vertex id so the order is deterministic.
func kahnOrder(g *core.Graph) []int {
	ids := g.Vertices()
	inDeg := make(map[int]int, len(ids))
	for _, v := range ids {
		inDeg[v] = 0
	}
	for _, e := range g.Edges() {
		inDeg[e.To]++
	}

	order := make([]int, 0, len(ids))
	done := make(map[int]bool, len(ids))
	for len(order) < len(ids) {
		next := -1
		for _, v := range ids {
			if !done[v] && inDeg[v] == 0 {
				next = v
				break
			}
		}
		if next == -1 {
			// Unreachable for an acyclic graph; bail out rather than spin.
			break
		}
		done[next] = true
		order = append(order, next)
		for _, e := range g.Edges() {
			if e.From == next {
				inDeg[e.To]--
			}
		}
	}
	return order
}

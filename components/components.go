// Package components: the partition computation.

package components

import (
	"sort"

	"github.com/graflab/graflab/core"
)

// Find partitions all vertices of g into weak connected components.
// A nil or empty graph yields an empty Result.
func Find(g *core.Graph) *Result {
	res := &Result{Assignment: make(map[int]int)}
	if g == nil || g.VertexCount() == 0 {
		return res
	}

	adj := undirectedAdjacency(g)
	verts := g.Vertices()

	for _, v := range verts {
		if _, seen := res.Assignment[v]; seen {
			continue
		}
		idx := len(res.Components)
		members := sweep(v, idx, adj, res.Assignment)
		sort.Ints(members)
		entry := Palette[idx%len(Palette)]
		res.Components = append(res.Components, Component{
			Index:     idx,
			Vertices:  members,
			Color:     entry.Hex,
			ColorName: entry.Name,
		})
	}

	res.Smallest = len(res.Components[0].Vertices)
	for _, c := range res.Components {
		n := len(c.Vertices)
		if n > res.Largest {
			res.Largest = n
		}
		if n < res.Smallest {
			res.Smallest = n
		}
	}
	res.Average = float64(len(verts)) / float64(len(res.Components))

	return res
}

// undirectedAdjacency builds a direction-blind neighbor map in one edge
// pass. Self-loops contribute a single entry.
func undirectedAdjacency(g *core.Graph) map[int][]int {
	adj := make(map[int][]int, g.VertexCount())
	for _, e := range g.Edges() {
		adj[e.From] = append(adj[e.From], e.To)
		if e.From != e.To {
			adj[e.To] = append(adj[e.To], e.From)
		}
	}

	return adj
}

// sweep marks every vertex reachable from start with component idx using
// an explicit stack, and returns the members found.
func sweep(start, idx int, adj map[int][]int, assignment map[int]int) []int {
	var members []int
	stack := []int{start}
	assignment[start] = idx

	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		members = append(members, v)

		for _, n := range adj[v] {
			if _, seen := assignment[n]; seen {
				continue
			}
			assignment[n] = idx
			stack = append(stack, n)
		}
	}

	return members
}

package cycles

import (
	"sort"

	"github.com/graflab/graflab/core"
)

// uFrame is one explicit-stack level of the undirected search: the vertex
// being expanded, the vertex it was reached from, and a cursor over its
// sorted neighbor list.
type uFrame struct {
	vertex int
	parent int
	nbrs   []int
	next   int
}

// enumerateUndirected finds every elementary cycle of an undirected graph.
// Each vertex s is taken, in ascending order, as the candidate minimum
// vertex; the search from s never revisits the immediate parent, only
// extends to vertices greater than s, and closes a cycle when a neighbor
// equals s with path length >= 3. The path[1] < closing-vertex tie-break
// keeps one traversal direction per cycle; normalization plus signature
// dedup absorbs anything that slips through via parallel edges.
func enumerateUndirected(g *core.Graph) [][]int {
	adj := sortedAdjacency(g)
	seen := make(map[string]struct{})
	var cycles [][]int

	for _, s := range g.Vertices() {
		path := []int{s}
		onPath := map[int]bool{s: true}
		stack := []uFrame{{vertex: s, parent: -1, nbrs: adj[s]}}

		for len(stack) > 0 {
			f := &stack[len(stack)-1]
			if f.next >= len(f.nbrs) {
				onPath[f.vertex] = false
				path = path[:len(path)-1]
				stack = stack[:len(stack)-1]
				continue
			}
			n := f.nbrs[f.next]
			f.next++

			if n == f.parent {
				continue
			}
			if n == s && len(path) >= 3 {
				if path[1] < f.vertex {
					record(path, seen, &cycles)
				}
				continue
			}
			if n > s && !onPath[n] {
				parent := f.vertex
				path = append(path, n)
				onPath[n] = true
				stack = append(stack, uFrame{vertex: n, parent: parent, nbrs: adj[n]})
			}
		}
	}
	return cycles
}

// record normalizes the open path into a cycle and stores it unless its
// signature was seen before.
func record(path []int, seen map[string]struct{}, cycles *[][]int) {
	norm := normalizeRotation(path)
	sig := signature(norm)
	if _, dup := seen[sig]; dup {
		return
	}
	seen[sig] = struct{}{}
	*cycles = append(*cycles, closed(norm))
}

// sortedAdjacency snapshots every neighbor list in ascending order so the
// candidate sweep visits cycle extensions deterministically.
func sortedAdjacency(g *core.Graph) map[int][]int {
	adj := make(map[int][]int, g.VertexCount())
	for _, v := range g.Vertices() {
		nbrs := g.Neighbors(v)
		sort.Ints(nbrs)
		adj[v] = nbrs
	}
	return adj
}

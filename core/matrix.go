// Package core: adjacency matrix view over the graph.

package core

import (
	"math"
	"sort"
)

// AdjacencyMatrix returns the weighted adjacency matrix together with the
// vertex ids (ascending) that index its rows and columns.
//
// Conventions: matrix[i][i] = 0; absent connections are +Inf; an edge
// (u, v, w) sets matrix[u][v] = w, mirrored for undirected graphs. With
// parallel edges, later edges overwrite earlier entries.
// Complexity: O(V² + E).
func (g *Graph) AdjacencyMatrix() ([]int, [][]float64) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]int, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	index := make(map[int]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	n := len(ids)
	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
		for j := range matrix[i] {
			if i == j {
				matrix[i][j] = 0
			} else {
				matrix[i][j] = math.Inf(1)
			}
		}
	}

	for _, e := range g.edges {
		i, j := index[e.From], index[e.To]
		matrix[i][j] = float64(e.Weight)
		if !g.directed {
			matrix[j][i] = float64(e.Weight)
		}
	}

	return ids, matrix
}

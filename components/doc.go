// Package components partitions the vertices of a core.Graph into weak
// connected components.
//
// What
//
//   - Iterative DFS from each unvisited vertex, iterating vertex ids in
//     ascending order, assigning component indexes in discovery order.
//   - Reachability ignores edge direction (weak connectivity), so the
//     partition is meaningful on directed graphs too.
//   - Each component receives a deterministic display color, cycling
//     through a fixed ten-color palette by component index.
//
// Result
//
//	The Result lists every component with its sorted member vertices and
//	color, the vertex→component assignment, and size statistics
//	(largest, smallest, average). A single component means the graph is
//	connected. An empty graph yields an empty Result, never a crash.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E) after one adjacency pass
//   - Memory: O(V + E)
package components

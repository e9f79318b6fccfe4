// Package dfs implements depth-first traversal and topological sort on a
// core.Graph.
//
// What
//
//   - DFS(g, start, opts...): pre-order depth-first traversal from a start
//     vertex. The implementation uses an explicit stack, never recursion,
//     so arbitrarily deep graphs cannot exhaust the call stack; the visit
//     order is exactly what pre-order recursion over the same neighbor
//     order would produce.
//   - TopologicalSort(g): linear ordering of a directed graph such that
//     every edge u→v has u before v; ErrCycleDetected on cyclic input.
//
// Determinism
//
//	Neighbor expansion follows core.Graph.Neighbors (edge insertion order);
//	TopologicalSort drives its outer loop over ascending vertex ids.
//
// Edge cases
//
//	DFS is total over any graph: an empty graph yields an empty Result,
//	not an error. Self-loops and parallel edges are skipped naturally by
//	the visited set.
//
// Errors
//
//   - ErrGraphNil              if g is nil.
//   - ErrStartVertexNotFound   if the start id is missing.
//   - ErrNotDirected           TopologicalSort on an undirected graph.
//   - ErrCycleDetected         TopologicalSort on a cyclic graph.
//   - context cancellation and OnVisit hook errors, wrapped.
package dfs

// Package dijkstra implements Dijkstra's shortest-path algorithm over a
// core.Graph with non-negative integer edge weights.
//
// What
//
//   - Classic priority-queue relaxation: repeatedly extract the unvisited
//     vertex of minimum tentative distance and relax each outgoing (or,
//     undirected, each incident) edge, updating distance and predecessor
//     on strict improvement.
//   - The heap uses the lazy-decrease-key strategy: improvements push
//     duplicate entries, and stale entries are skipped when popped.
//   - The Result answers both query shapes: PathTo(target) reconstructs
//     the start→target path with its total distance, or reports "no path";
//     AllDistances() lists every vertex sorted by (distance, vertex id),
//     unreached vertices carrying Inf and no path.
//
// Parallel edges
//
//	When several parallel edges connect a pair, relaxation uses the FIRST
//	matching edge in insertion order (core.Graph.EdgeBetween), not the
//	minimum-weight one. This is a deliberate, documented tie-break
//	inherited from the reference behavior; callers who care should not
//	store a heavier parallel edge before a lighter one.
//
// Negative weights
//
//	Not supported. All edges are scanned up front and ErrNegativeWeight is
//	returned before any relaxation happens.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V·E log V) with the ordered-edge-slice weight lookup
//   - Memory: O(V + E)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrNegativeWeight       if any edge weight is negative.
package dijkstra

// Package bfs provides breadth-first search over a core.Graph, returning
// the visit order, hop distances, parent links, and the reached count.
//
// What
//
//   - Explore vertices in non-decreasing hop distance from a start vertex
//     using a FIFO frontier.
//   - A vertex is marked visited the moment it is enqueued, never when it is
//     dequeued, so each vertex enters the queue at most once.
//   - Neighbor expansion follows core.Graph.Neighbors order (edge insertion
//     order), which makes the visit sequence fully reproducible.
//
// Result
//
//   - Order: visit sequence
//   - Depth: vertex → hop distance from the start
//   - Parent: vertex → predecessor in the BFS tree
//   - Reached(): number of vertices reached from the start
//   - PathTo(dest): start→dest path along the BFS tree
//
// Edge cases
//
//	BFS is total over any graph: an empty graph yields an empty Result, not
//	an error. A start id that does not exist (other than core.AutoStart on
//	an empty graph) is ErrStartVertexNotFound.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V·E) with the ordered-edge-slice neighbor scan
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      for invalid options (negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs

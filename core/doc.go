// Package core defines the central Graph, Vertex, and Edge types used by
// every analysis in graflab, and provides thread-safe primitives for
// building, querying, and cloning graphs.
//
// What
//
//   - Vertices carry a unique, monotonically assigned integer id, a display
//     label, and presentation attributes (position, color) that algorithms
//     ignore but the host UI round-trips.
//   - Edges are ordered (From, To) pairs with an integer weight, stored in
//     insertion order. Parallel edges and self-loops are permitted
//     (multigraph semantics).
//   - A single graph-level flag decides directedness; there is no per-edge
//     override. Neighbor lookup and degree computation consult the flag at
//     query time.
//
// Mutation policy
//
//	The model favors permissive mutation over raised errors, consistent
//	with an interactive editing tool: adding an edge with a missing
//	endpoint, or removing something that is not there, is a silent no-op.
//	No core operation returns an error.
//
// Determinism
//
//	Vertices() returns ids in ascending order and Neighbors scans edges in
//	insertion order, so every iteration-dependent tie-break downstream is
//	reproducible. FirstVertexID defines the "auto" start vertex as the
//	lowest id, never container iteration order.
//
// Concurrency
//
//	All operations take an internal sync.RWMutex, so interleaved edits and
//	reads are safe at the operation level. Analyses run to completion over
//	one graph; a host that wants concurrent analyses over a changing graph
//	should hand each one a Clone.
//
// Complexity: AddVertex/HasVertex O(1); edge operations O(E) (ordered-slice
// storage is the price of pinned iteration order on a teaching-scale graph).
package core

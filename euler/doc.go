// Package euler classifies a core.Graph by its Eulerian structure and,
// when one exists, constructs the actual walk.
//
// What
//
//	Analyze computes per-vertex degrees (plain degree for undirected
//	graphs, in/out split for directed ones), decides between four
//	outcomes, and materializes the walk with an iterative Hierholzer
//	construction:
//
//	  - StatusNoEdges: the graph has no edges at all; the question of an
//	    Eulerian walk is vacuous and reported as its own status.
//	  - StatusCircuit: a closed walk crossing every edge exactly once
//	    exists (all degrees even / every vertex balanced).
//	  - StatusPath: an open walk crossing every edge exactly once exists
//	    (exactly two odd vertices / exactly one +1 and one -1 imbalance).
//	  - StatusNone: the degree balance rules out both.
//
// How
//
//	Hierholzer runs on an explicit stack over a consumable copy of the
//	adjacency lists; undirected edges are consumed in both directions at
//	once. The walk comes out reversed and is flipped before returning. A
//	circuit starts at the lowest vertex id carrying an edge; a path starts
//	at the lowest odd vertex (undirected) or at the vertex with one more
//	outgoing than incoming edge (directed).
//
// Edge cases
//
//	A degenerate walk of a single vertex, and a walk that fails to cross
//	every edge because the edge set is disconnected, both demote the
//	outcome to StatusNone with a nil Walk: the degree balance was
//	necessary but not sufficient. Self-loops add two to an undirected
//	degree; parallel edges each count.
//
// Complexity: O(V + E) for degrees and the walk.
package euler

// Package cycles detects and enumerates ALL elementary (simple) cycles of
// a core.Graph — not merely cycle existence — choosing the algorithm by
// directedness.
//
// Undirected
//
//	Every vertex s is taken, in ascending order, as the candidate minimum
//	vertex of a cycle. A depth-first search from s refuses to revisit the
//	immediate parent and only extends to neighbors greater than s, so each
//	cycle is discovered from its minimum vertex exactly once. A cycle is
//	recorded when a neighbor equal to s closes a path of length ≥ 3, with
//	an orientation tie-break (second path vertex < closing vertex) so each
//	undirected cycle is counted in one traversal direction only.
//
// Directed
//
//	A Johnson-style search per candidate s: DFS restricted to vertices ≥ s
//	with a blocked set and a block map. Dead-end branches stay blocked
//	until a cycle closing through the current vertex is found, at which
//	point the chain of dependent vertices is reopened (unblocked). The
//	blocking state is created fresh for every candidate; nothing leaks
//	across calls.
//
// Both searches run on explicit stacks, never recursion, so large inputs
// cannot exhaust the call stack. Recorded cycles are normalized by
// rotating to their minimum vertex and deduplicated by signature; every
// stored cycle is closed (first vertex repeated at the end).
//
// Classification
//
//	When no cycle exists the graph is classified: a directed acyclic graph
//	is a DAG (a topological order is attached); an undirected acyclic
//	graph is a tree when |E| = |V|−1, otherwise a forest. An empty graph
//	is its own defined result, distinct from "acyclic".
//
// Edge policy
//
//	Self-loops and parallel edges never crash enumeration. A directed
//	self-loop is itself an elementary cycle of size 1; undirected
//	enumeration ignores loops (the length ≥ 3 rule) exactly like the
//	parent-refusal ignores trivial two-vertex round trips.
//
// Worst case is exponential in the number of elementary cycles — an
// inherent property of exhaustive enumeration, not a defect.
package cycles

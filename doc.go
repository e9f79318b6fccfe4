// Package graflab is an in-memory graph-theory teaching engine: a mutable
// graph model plus a set of classical analyses, each a pure function of
// (graph, parameters) → structured result.
//
// 🚀 What is graflab?
//
//	A small, focused library that brings together:
//		• Core primitives: integer-id vertices, weighted multigraph edges,
//		  permissive interactive-style mutation under locks
//		• Traversals: BFS, DFS (iterative, explicit stack)
//		• Shortest paths: Dijkstra with path reconstruction
//		• Connectivity: weak connected components with palette coloring
//		• Cycles: exhaustive elementary-cycle enumeration
//		  (undirected min-vertex search, directed Johnson-style blocking)
//		• Eulerian analysis: degree balance + Hierholzer construction
//		• Presentation: textual reports and highlight sets for a canvas
//
// ✨ Why choose graflab?
//
//   - Teaching-friendly – results carry everything a report needs:
//     visit orders, paths, degree tables, cycle statistics
//   - Deterministic – tie-breaks pinned to vertex id and edge insertion
//     order, so the same graph always yields the same report
//   - Pure Go – no cgo, no hidden deps
//   - Honest edge cases – empty graphs, multigraphs and self-loops produce
//     defined results, never panics
//
// The engine never draws: the present package computes the vertex and edge
// sets to highlight and hands them to whatever implements present.Canvas.
//
// Under the hood, everything is organized as flat subpackages:
//
//	core/       — Graph, Vertex, Edge and mutation/query primitives
//	bfs/        — breadth-first traversal
//	dfs/        — depth-first traversal and topological sort
//	components/ — weak connected components
//	dijkstra/   — single-source shortest paths
//	cycles/     — elementary-cycle enumeration and acyclic classification
//	euler/      — Eulerian circuit/path analysis
//	present/    — report rendering and highlight computation
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	a square: one elementary cycle, an Eulerian circuit of length 4.
//
//	go get github.com/graflab/graflab
package graflab

// Package core: type declarations for Vertex, Edge, Graph, and the
// NewGraph constructor with its functional options.
package core

import "sync"

// AutoStart is the sentinel vertex id accepted by every analysis that takes
// a start vertex: it resolves to the lowest existing vertex id.
const AutoStart = -1

// DefaultVertexColor is the presentation color assigned to new vertices.
const DefaultVertexColor = "#4A90E2"

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph and is never reused
// while referenced. Label is for display only and independent of identity.
// X, Y and Color are presentation attributes the algorithms pass through.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID int

	// Label is the display name. Defaults to AlphaLabel(ID) when empty.
	Label string

	// X, Y is the canvas position of the vertex.
	X, Y float64

	// Color is the fill color used by the drawing surface.
	Color string
}

// Edge represents a connection From→To with an integer weight.
//
// Whether the pair is interpreted as ordered is governed by the owning
// Graph's directedness at query time; edges do not carry their own flag.
type Edge struct {
	// From is the source vertex id.
	From int

	// To is the destination vertex id.
	To int

	// Weight is the cost of the edge. New edges default to 1.
	Weight int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the graph's directedness
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// Graph is the core in-memory graph data structure: a mapping from vertex
// id to Vertex plus an ordered sequence of edges.
//
// The edge slice preserves insertion order because several analyses pin
// their tie-breaks to "first matching edge". mu guards both stores.
type Graph struct {
	mu sync.RWMutex

	directed bool // single source of truth for edge interpretation

	nextID   int             // monotonic vertex id generator, never reused
	vertices map[int]*Vertex // vertex id → Vertex
	edges    []*Edge         // insertion-ordered edge sequence
}

// NewGraph creates an empty Graph. By default the graph is undirected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[int]*Vertex),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// AlphaLabel converts a vertex id to its default alphabetic display label:
// 0→A, 1→B, …, 25→Z, 26→AA, and so on.
func AlphaLabel(id int) string {
	var buf []byte
	n := id + 1
	for n > 0 {
		n--
		buf = append([]byte{byte('A' + n%26)}, buf...)
		n /= 26
	}

	return string(buf)
}

// Package core: Graph method implementations.
//
// All mutation follows the permissive policy documented in doc.go: missing
// ids make an operation a no-op, never an error. All methods lock the
// graph's RWMutex; none holds the lock across a callback.

package core

import "sort"

// AddVertex inserts a new vertex at position (x, y) and returns its id.
// An empty label is replaced with the alphabetic default for the id.
// Ids are assigned monotonically and never reused, even after removal.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(x, y float64, label string) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.nextID
	g.nextID++
	if label == "" {
		label = AlphaLabel(id)
	}
	g.vertices[id] = &Vertex{ID: id, Label: label, X: x, Y: y, Color: DefaultVertexColor}

	return id
}

// HasVertex reports whether a vertex with the given id exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns a copy of the vertex with the given id, and whether it
// exists. Mutate through the Set* methods, not the returned copy.
func (g *Graph) Vertex(id int) (Vertex, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, false
	}

	return *v, true
}

// SetVertexLabel updates the display label of a vertex. No-op if absent.
func (g *Graph) SetVertexLabel(id int, label string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if v, ok := g.vertices[id]; ok {
		v.Label = label
	}
}

// SetVertexPosition moves a vertex on the canvas. No-op if absent.
func (g *Graph) SetVertexPosition(id int, x, y float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if v, ok := g.vertices[id]; ok {
		v.X, v.Y = x, y
	}
}

// SetVertexColor recolors a vertex. No-op if absent.
func (g *Graph) SetVertexColor(id int, color string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if v, ok := g.vertices[id]; ok {
		v.Color = color
	}
}

// RemoveVertex deletes the vertex and, atomically, every incident edge.
// No-op if the vertex does not exist.
// Complexity: O(E).
func (g *Graph) RemoveVertex(id int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.vertices[id]; !ok {
		return
	}
	delete(g.vertices, id)

	kept := g.edges[:0]
	for _, e := range g.edges {
		if e.From != id && e.To != id {
			kept = append(kept, e)
		}
	}
	g.edges = kept
}

// AddEdge appends an edge from→to with the given weight. Multigraph
// semantics: parallel edges and self-loops are stored as given. Silent
// no-op when either endpoint is absent.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, weight int64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.vertices[from]; !ok {
		return
	}
	if _, ok := g.vertices[to]; !ok {
		return
	}
	g.edges = append(g.edges, &Edge{From: from, To: to, Weight: weight})
}

// RemoveEdge deletes every edge matching the endpoint pair: exact
// orientation on a directed graph, either orientation on an undirected
// one. No-op when nothing matches.
// Complexity: O(E).
func (g *Graph) RemoveEdge(from, to int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	kept := g.edges[:0]
	for _, e := range g.edges {
		if g.matchesPair(e, from, to) {
			continue
		}
		kept = append(kept, e)
	}
	// Release trailing pointers so removed edges can be collected.
	for i := len(kept); i < len(g.edges); i++ {
		g.edges[i] = nil
	}
	g.edges = kept
}

// EdgeBetween returns the first edge (in insertion order) matching the
// endpoint pair, or nil. On an undirected graph either orientation
// matches. With parallel edges the first stored one wins; downstream
// consumers (Dijkstra in particular) inherit that tie-break.
// Complexity: O(E).
func (g *Graph) EdgeBetween(from, to int) *Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, e := range g.edges {
		if g.matchesPair(e, from, to) {
			return e
		}
	}

	return nil
}

// HasEdge reports whether at least one edge matches the endpoint pair.
func (g *Graph) HasEdge(from, to int) bool {
	return g.EdgeBetween(from, to) != nil
}

// SetEdgeWeight updates the weight of the first edge matching the pair.
// No-op when no edge matches.
func (g *Graph) SetEdgeWeight(from, to int, weight int64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, e := range g.edges {
		if g.matchesPair(e, from, to) {
			e.Weight = weight

			return
		}
	}
}

// matchesPair reports whether e connects (from, to) under the graph's
// current directedness. Caller holds the lock.
func (g *Graph) matchesPair(e *Edge, from, to int) bool {
	if e.From == from && e.To == to {
		return true
	}

	return !g.directed && e.From == to && e.To == from
}

// Neighbors returns the adjacent vertex ids of id, scanning edges in
// insertion order: every u with an edge (id, u), plus, when undirected,
// every u with an edge (u, id). Parallel edges contribute one entry each.
// Unknown ids yield an empty result.
// Complexity: O(E).
func (g *Graph) Neighbors(id int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []int
	for _, e := range g.edges {
		if e.From == id {
			out = append(out, e.To)
		} else if !g.directed && e.To == id {
			out = append(out, e.From)
		}
	}

	return out
}

// Vertices returns all vertex ids in ascending order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]int, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// Edges returns the edge sequence in insertion order. The slice is a copy;
// the *Edge pointers are shared with the graph.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// VertexCount returns the number of vertices. O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of edges, parallel edges counted
// individually. O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Directed reports whether edges are interpreted as ordered pairs.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// FirstVertexID returns the lowest vertex id, the deterministic "auto"
// start vertex. ok is false on an empty graph.
func (g *Graph) FirstVertexID() (id int, ok bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	first := 0
	for v := range g.vertices {
		if !ok || v < first {
			first = v
			ok = true
		}
	}

	return first, ok
}

// ResolveStart maps AutoStart to FirstVertexID and passes any other id
// through. ok is false only for AutoStart on an empty graph.
func (g *Graph) ResolveStart(start int) (int, bool) {
	if start == AutoStart {
		return g.FirstVertexID()
	}

	return start, true
}

// Clear drops all vertices and edges and resets the id counter.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.vertices = make(map[int]*Vertex)
	g.edges = nil
	g.nextID = 0
}

// Clone returns a deep copy of the graph: flag, vertices, edges, and the
// id counter, so ids keep advancing identically in the copy.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		directed: g.directed,
		nextID:   g.nextID,
		vertices: make(map[int]*Vertex, len(g.vertices)),
		edges:    make([]*Edge, 0, len(g.edges)),
	}
	for id, v := range g.vertices {
		cv := *v
		clone.vertices[id] = &cv
	}
	for _, e := range g.edges {
		ce := *e
		clone.edges = append(clone.edges, &ce)
	}

	return clone
}

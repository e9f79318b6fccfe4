// Package dijkstra: the relaxation loop.

package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/graflab/graflab/core"
)

// Dijkstra computes shortest distances from start (which may be
// core.AutoStart for the lowest vertex id) to every vertex of g.
//
// Preconditions, checked in order: g non-nil; no negative edge weight
// anywhere in g; start exists (an empty graph with AutoStart short-circuits
// to an empty Result instead).
func Dijkstra(g *core.Graph, start int) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	// Fail fast on unsupported input before resolving anything else.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	res := &Result{
		Dist: make(map[int]int64),
		Prev: make(map[int]int),
	}
	if g.VertexCount() == 0 && start == core.AutoStart {
		return res, nil
	}
	start, _ = g.ResolveStart(start)
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}
	res.Source = start

	r := &runner{
		g:       g,
		res:     res,
		visited: make(map[int]bool, g.VertexCount()),
	}
	r.init()
	r.process()

	return res, nil
}

// runner holds the mutable state for a single execution.
type runner struct {
	g       *core.Graph
	res     *Result
	visited map[int]bool // distance finalized
	pq      nodePQ
}

// init seeds distances with Inf, the source with 0, and pushes the source.
func (r *runner) init() {
	for _, v := range r.g.Vertices() {
		r.res.Dist[v] = Inf
	}
	r.res.Dist[r.res.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.res.Source, dist: 0})
}

// process extracts the minimum unvisited vertex and relaxes around it
// until the heap drains. Extracted distances are monotone non-decreasing.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue // stale lazy-decrease-key entry
		}
		r.visited[item.id] = true
		r.relax(item.id)
	}
}

// relax attempts to improve the distance of every neighbor of u. The edge
// weight for a pair comes from the first matching stored edge; with
// parallel edges that tie-break is deliberate (see doc.go).
func (r *runner) relax(u int) {
	du := r.res.Dist[u]
	for _, v := range r.g.Neighbors(u) {
		e := r.g.EdgeBetween(u, v)
		if e == nil {
			continue // unreachable with a consistent graph
		}
		newDist := du + e.Weight
		// Strict improvement only; "<" avoids duplicate pushes on ties.
		if newDist >= r.res.Dist[v] {
			continue
		}
		r.res.Dist[v] = newDist
		r.res.Prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}
}

// nodeItem is one (vertex, tentative distance) heap entry.
type nodeItem struct {
	id   int
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, operated
// with the lazy-decrease-key pattern.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// Package bfs: the traversal loop.

package bfs

import (
	"fmt"

	"github.com/graflab/graflab/core"
)

// queueItem pairs a vertex id with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	queue   []queueItem
	visited map[int]bool
	res     *Result
}

// BFS runs breadth-first search on g from start, which may be
// core.AutoStart to begin at the lowest vertex id.
//
// An empty graph returns an empty Result and no error. A missing start
// vertex returns ErrStartVertexNotFound.
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	res := &Result{
		Depth:  make(map[int]int),
		Parent: make(map[int]int),
	}
	// Total over degenerate input: empty graph is a defined empty result.
	if g.VertexCount() == 0 && start == core.AutoStart {
		return res, nil
	}
	start, _ = g.ResolveStart(start)
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}
	res.Start = start

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make(map[int]bool, n),
		res:     res,
	}

	// Seed: the start vertex is marked visited on enqueue.
	w.enqueue(start, 0)

	return w.res, w.loop()
}

// enqueue marks id visited at depth d and appends it to the frontier.
// Visited-on-enqueue guarantees each vertex is enqueued at most once.
func (w *walker) enqueue(id, d int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}

		w.expand(item)
	}

	return nil
}

// expand enqueues every unseen neighbor of item, honoring filter and depth
// limit. Expansion order is the graph's neighbor-lookup order.
func (w *walker) expand(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.graph.Neighbors(item.id) {
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		if w.visited[nbr] {
			continue
		}
		w.res.Parent[nbr] = item.id
		w.enqueue(nbr, nextDepth)
	}
}

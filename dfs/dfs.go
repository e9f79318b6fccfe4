// Package dfs: the iterative traversal loop.

package dfs

import (
	"fmt"

	"github.com/graflab/graflab/core"
)

// frame is one pending visit on the explicit stack.
type frame struct {
	id     int
	parent int
	depth  int
	root   bool // start vertex has no parent
}

// DFS performs pre-order depth-first traversal of g from start, which may
// be core.AutoStart to begin at the lowest vertex id.
//
// An empty graph returns an empty Result and no error. A missing start
// vertex returns ErrStartVertexNotFound.
func DFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	res := &Result{
		Depth:  make(map[int]int),
		Parent: make(map[int]int),
	}
	if g.VertexCount() == 0 && start == core.AutoStart {
		return res, nil
	}
	start, _ = g.ResolveStart(start)
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}
	res.Start = start

	visited := make(map[int]bool, g.VertexCount())
	stack := []frame{{id: start, depth: 0, root: true}}

	// Explicit stack in place of recursion. A vertex may sit on the stack
	// several times; the visited check at pop keeps the order identical to
	// what recursive pre-order over the same neighbor order would give.
	for len(stack) > 0 {
		select {
		case <-o.Ctx.Done():
			return res, o.Ctx.Err()
		default:
		}

		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[f.id] {
			continue
		}
		if o.MaxDepth >= 0 && f.depth > o.MaxDepth {
			continue
		}

		visited[f.id] = true
		res.Order = append(res.Order, f.id)
		res.Depth[f.id] = f.depth
		if !f.root {
			res.Parent[f.id] = f.parent
		}
		if o.OnVisit != nil {
			if err := o.OnVisit(f.id); err != nil {
				return res, fmt.Errorf("dfs: OnVisit hook for %d: %w", f.id, err)
			}
		}

		// Push neighbors in reverse so the first neighbor is popped first.
		nbrs := g.Neighbors(f.id)
		for i := len(nbrs) - 1; i >= 0; i-- {
			if !visited[nbrs[i]] {
				stack = append(stack, frame{id: nbrs[i], parent: f.id, depth: f.depth + 1})
			}
		}
	}

	return res, nil
}

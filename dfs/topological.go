// Package dfs: topological sort of a directed graph.
//
// TopologicalSort computes a linear ordering of vertices such that for
// every directed edge u→v, u appears before v. The traversal is an
// iterative three-color DFS; Gray-on-Gray means a back edge, so the graph
// is cyclic and ErrCycleDetected is returned.
//
// Complexity:
//
//   - Time:   O(V·E) with the ordered-edge-slice neighbor scan
//   - Memory: O(V)

package dfs

import (
	"context"

	"github.com/graflab/graflab/core"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx context.Context
}

// WithCancelContext sets the cancellation context for TopologicalSort.
// Passing nil has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoFrame tracks one vertex and its expansion progress on the stack.
type topoFrame struct {
	id   int
	nbrs []int
	next int
}

// TopologicalSort returns a topological ordering of all vertices of g.
// The outer loop runs over ascending vertex ids, so the ordering is
// deterministic. Returns ErrGraphNil, ErrNotDirected, or ErrCycleDetected.
func TopologicalSort(g *core.Graph, options ...TopoOption) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrNotDirected
	}
	opts := topoOptions{ctx: context.Background()}
	for _, opt := range options {
		opt(&opts)
	}

	verts := g.Vertices()
	state := make(map[int]int, len(verts))
	order := make([]int, 0, len(verts))

	for _, v := range verts {
		if state[v] != White {
			continue
		}
		state[v] = Gray
		stack := []topoFrame{{id: v, nbrs: g.Neighbors(v)}}

		for len(stack) > 0 {
			select {
			case <-opts.ctx.Done():
				return nil, opts.ctx.Err()
			default:
			}

			f := &stack[len(stack)-1]
			if f.next < len(f.nbrs) {
				n := f.nbrs[f.next]
				f.next++
				switch state[n] {
				case White:
					state[n] = Gray
					stack = append(stack, topoFrame{id: n, nbrs: g.Neighbors(n)})
				case Gray:
					// Back edge: the graph is not a DAG.
					return nil, ErrCycleDetected
				}

				continue
			}
			state[f.id] = Black
			order = append(order, f.id)
			stack = stack[:len(stack)-1]
		}
	}

	// Reverse post-order is the topological order.
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}

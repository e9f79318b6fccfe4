// Package bfs: options, errors, and the Result type for breadth-first
// search.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start id is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a vertex is dequeued and visited. Returning an
	// error aborts the traversal with that error.
	OnVisit func(id, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this hop distance.
	// Zero disables the limit.
	MaxDepth int

	// FilterNeighbor can skip an expansion curr→neighbor by returning false.
	FilterNeighbor func(curr, neighbor int) bool

	err error // recorded during option parsing
}

// DefaultOptions returns Options with a background context, no depth limit,
// no filtering, and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnVisit:        func(int, int) error { return nil },
		FilterNeighbor: func(_, _ int) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback invoked at every visit; returning an
// error stops the search.
func WithOnVisit(fn func(id, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the search to the given hop distance.
//
//	d > 0: limit to depth d
//	d == 0: explicit no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)

			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips expansions for which fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a BFS traversal.
type Result struct {
	// Start is the resolved start vertex. Meaningless when the graph was
	// empty (Order is empty then).
	Start int

	// Order records vertices in visit sequence.
	Order []int

	// Depth maps each reached vertex to its hop distance from the start.
	Depth map[int]int

	// Parent maps each reached vertex (except the start) to its
	// predecessor in the BFS tree.
	Parent map[int]int
}

// Reached returns the number of vertices reached from the start.
func (r *Result) Reached() int { return len(r.Order) }

// PathTo reconstructs the start→dest path along the BFS tree.
// Returns an error if dest was not reached.
func (r *Result) PathTo(dest int) ([]int, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %d", dest)
	}
	var path []int
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

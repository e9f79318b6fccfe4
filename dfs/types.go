// Package dfs: options, errors, visitation states, and the Result type.
package dfs

import (
	"context"
	"errors"
)

// Visitation states used by TopologicalSort's three-color marking.
const (
	White = iota // not visited yet
	Gray         // on the explicit stack (visiting)
	Black        // fully explored
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed in.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates the start vertex id does not exist.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrNotDirected indicates TopologicalSort was given an undirected graph.
	ErrNotDirected = errors.New("dfs: topological sort requires a directed graph")

	// ErrCycleDetected indicates a cycle was encountered during
	// TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Option configures optional behavior of DFS traversal.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked on vertex discovery (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id int) error

	// MaxDepth, if non-negative, limits traversal to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int
}

// DefaultOptions returns Options with a background context, no hook, and
// no depth limit.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the context for cancellation. Nil has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as the pre-order hook.
func WithOnVisit(fn func(id int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithMaxDepth limits traversal depth; 0 visits only the start vertex.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Start is the resolved start vertex (meaningless when Order is empty).
	Start int

	// Order records vertices in pre-order (discovery) sequence.
	Order []int

	// Depth maps each reached vertex to its distance from the start along
	// the DFS tree.
	Depth map[int]int

	// Parent maps each reached vertex (except the start) to the vertex
	// from which it was first discovered.
	Parent map[int]int
}

// Reached returns the number of vertices reached from the start.
func (r *Result) Reached() int { return len(r.Order) }

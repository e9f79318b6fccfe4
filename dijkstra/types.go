// Package dijkstra: errors, the Result type, and its query helpers.
package dijkstra

import (
	"errors"
	"math"
	"sort"
)

// Inf is the distance reported for unreachable vertices.
const Inf int64 = math.MaxInt64

// Sentinel errors returned by Dijkstra.
var (
	// ErrGraphNil indicates that a nil *core.Graph was passed in.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex does not exist.
	ErrStartVertexNotFound = errors.New("dijkstra: start vertex not found")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// Result holds the single-source shortest-path tree from Source.
type Result struct {
	// Source is the resolved start vertex.
	Source int

	// Dist maps every vertex to its shortest distance from Source,
	// Inf when unreachable.
	Dist map[int]int64

	// Prev maps each reached vertex (except Source) to its predecessor on
	// a shortest path.
	Prev map[int]int
}

// PathTo reconstructs the shortest Source→target path.
// ok is false — with a nil path and Inf distance — when target is
// unreached or unknown.
func (r *Result) PathTo(target int) (path []int, dist int64, ok bool) {
	d, known := r.Dist[target]
	if !known || d == Inf {
		return nil, Inf, false
	}
	for cur := target; ; {
		path = append(path, cur)
		if cur == r.Source {
			break
		}
		cur = r.Prev[cur]
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, d, true
}

// VertexDistance is one row of the all-targets listing.
type VertexDistance struct {
	// Vertex id.
	Vertex int

	// Dist from the source, Inf when unreachable.
	Dist int64

	// Path from the source, nil when unreachable.
	Path []int
}

// AllDistances lists every vertex with its distance and reconstructed
// path, sorted by (distance, vertex id); unreachable vertices sort last
// with Inf distance and no path.
func (r *Result) AllDistances() []VertexDistance {
	out := make([]VertexDistance, 0, len(r.Dist))
	for v, d := range r.Dist {
		row := VertexDistance{Vertex: v, Dist: d}
		if p, _, ok := r.PathTo(v); ok {
			row.Path = p
		}
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Dist != out[j].Dist {
			return out[i].Dist < out[j].Dist
		}

		return out[i].Vertex < out[j].Vertex
	})

	return out
}

package cycles

import (
	"sort"
	"strconv"
	"strings"
)

// Kind classifies a graph once enumeration has finished.
type Kind int

const (
	// KindEmpty marks a graph with no vertices; nothing can be said
	// about its cyclic structure.
	KindEmpty Kind = iota
	// KindCyclic marks a graph holding at least one elementary cycle.
	KindCyclic
	// KindDAG marks a directed graph without cycles; Result.TopoOrder
	// carries one valid topological order.
	KindDAG
	// KindTree marks a connected undirected acyclic graph (|E| = |V|-1).
	KindTree
	// KindForest marks an undirected acyclic graph that is not a single
	// tree.
	KindForest
)

// String implements fmt.Stringer for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindCyclic:
		return "cyclic"
	case KindDAG:
		return "dag"
	case KindTree:
		return "tree"
	case KindForest:
		return "forest"
	default:
		return "unknown"
	}
}

// Result aggregates everything Detect learned about the graph.
type Result struct {
	// Directed records the flag of the analyzed graph.
	Directed bool
	// Cycles holds every elementary cycle in closed form: the first
	// vertex is repeated at the end ([1 4 2 1]). Each cycle is rotated
	// so its minimum vertex comes first; the slice is ordered by
	// discovery (ascending candidate vertex).
	Cycles [][]int
	// MinSize and MaxSize are the smallest and largest cycle sizes
	// (number of distinct vertices); both are 0 when no cycle exists.
	MinSize int
	MaxSize int
	// VertexUnion lists, in ascending order, every vertex that belongs
	// to at least one cycle.
	VertexUnion []int
	// Kind classifies the graph; KindCyclic whenever Cycles is non-empty.
	Kind Kind
	// TopoOrder holds a topological order of the vertices when Kind is
	// KindDAG, nil otherwise.
	TopoOrder []int
}

// HasCycles reports whether at least one elementary cycle was found.
func (r *Result) HasCycles() bool { return len(r.Cycles) > 0 }

// Count returns the number of distinct elementary cycles.
func (r *Result) Count() int { return len(r.Cycles) }

// Size returns the number of distinct vertices of a closed cycle.
func Size(cycle []int) int {
	if len(cycle) < 2 {
		return 0
	}
	return len(cycle) - 1
}

// normalizeRotation rotates an open cycle (no closing repeat) so that its
// minimum vertex comes first, keeping the traversal direction intact.
func normalizeRotation(cycle []int) []int {
	if len(cycle) == 0 {
		return cycle
	}
	minAt := 0
	for i, v := range cycle {
		if v < cycle[minAt] {
			minAt = i
		}
	}
	out := make([]int, 0, len(cycle))
	out = append(out, cycle[minAt:]...)
	out = append(out, cycle[:minAt]...)
	return out
}

// signature flattens a normalized open cycle into a dedup key.
func signature(cycle []int) string {
	var b strings.Builder
	for i, v := range cycle {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}

// closed appends the first vertex of an open cycle at its end.
func closed(cycle []int) []int {
	out := make([]int, 0, len(cycle)+1)
	out = append(out, cycle...)
	out = append(out, cycle[0])
	return out
}

// unionOf collects the distinct vertices across closed cycles, ascending.
func unionOf(cycles [][]int) []int {
	seen := make(map[int]struct{})
	for _, c := range cycles {
		for _, v := range c[:len(c)-1] {
			seen[v] = struct{}{}
		}
	}
	out := make([]int, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

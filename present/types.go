package present

import (
	"sort"
	"strconv"

	"github.com/graflab/graflab/core"
)

// Canvas is the drawing surface a Report can be applied to. Implementors
// are expected to treat each Set call as a full replacement, not an
// accumulation.
type Canvas interface {
	SetHighlightedVertices(ids []int)
	SetHighlightedEdges(pairs [][2]int)
	ClearHighlights()
}

// Highlights names what a canvas should emphasize: a set of vertex ids
// and a set of unordered edge pairs, each pair normalized to (low, high).
type Highlights struct {
	Vertices []int
	Edges    [][2]int
}

// Empty reports whether there is nothing to highlight.
func (h Highlights) Empty() bool {
	return len(h.Vertices) == 0 && len(h.Edges) == 0
}

// Apply pushes the highlight sets onto a canvas, clearing first so stale
// emphasis never survives.
func (h Highlights) Apply(c Canvas) {
	c.ClearHighlights()
	if len(h.Vertices) > 0 {
		c.SetHighlightedVertices(h.Vertices)
	}
	if len(h.Edges) > 0 {
		c.SetHighlightedEdges(h.Edges)
	}
}

// Report pairs the text of an analysis with its canvas highlights.
type Report struct {
	Text       string
	Highlights Highlights
}

// Apply forwards the report's highlights to a canvas.
func (r Report) Apply(c Canvas) { r.Highlights.Apply(c) }

// pair normalizes an edge to its unordered (low, high) form.
func pair(a, b int) [2]int {
	if b < a {
		a, b = b, a
	}
	return [2]int{a, b}
}

// walkPairs collects the distinct unordered edge pairs along a vertex
// sequence.
func walkPairs(walk []int) [][2]int {
	seen := make(map[[2]int]struct{})
	var pairs [][2]int
	for i := 1; i < len(walk); i++ {
		p := pair(walk[i-1], walk[i])
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		pairs = append(pairs, p)
	}
	return pairs
}

// walkVertices collects the distinct vertices of a walk, ascending.
func walkVertices(walk []int) []int {
	seen := make(map[int]struct{}, len(walk))
	for _, v := range walk {
		seen[v] = struct{}{}
	}
	out := make([]int, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

// treePairs collects the parent-link edges of a traversal tree, ordered
// by child id.
func treePairs(parent map[int]int) [][2]int {
	children := make([]int, 0, len(parent))
	for child := range parent {
		children = append(children, child)
	}
	sort.Ints(children)
	pairs := make([][2]int, 0, len(children))
	for _, child := range children {
		pairs = append(pairs, pair(parent[child], child))
	}
	return pairs
}

// labelOf resolves a vertex id to its display label, falling back to the
// numeric id when the vertex is unknown or unlabeled.
func labelOf(g *core.Graph, id int) string {
	if g != nil {
		if v, ok := g.Vertex(id); ok && v.Label != "" {
			return v.Label
		}
	}
	return strconv.Itoa(id)
}

// labelPath renders a vertex sequence as "A -> B -> C".
func labelPath(g *core.Graph, ids []int) string {
	out := ""
	for i, id := range ids {
		if i > 0 {
			out += " -> "
		}
		out += labelOf(g, id)
	}
	return out
}

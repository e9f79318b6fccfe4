package cycles

import (
	"github.com/graflab/graflab/core"
)

// Detect enumerates every elementary cycle of g and classifies the graph.
// It never fails: a nil or vertex-less graph yields a Result of KindEmpty,
// an acyclic graph yields a Result whose Kind names its shape.
func Detect(g *core.Graph) *Result {
	res := &Result{}
	if g == nil || g.VertexCount() == 0 {
		res.Kind = KindEmpty
		return res
	}
	res.Directed = g.Directed()

	if res.Directed {
		res.Cycles = enumerateDirected(g)
	} else {
		res.Cycles = enumerateUndirected(g)
	}

	if len(res.Cycles) > 0 {
		res.Kind = KindCyclic
		res.VertexUnion = unionOf(res.Cycles)
		res.MinSize = Size(res.Cycles[0])
		res.MaxSize = res.MinSize
		for _, c := range res.Cycles[1:] {
			if n := Size(c); n < res.MinSize {
				res.MinSize = n
			} else if n > res.MaxSize {
				res.MaxSize = n
			}
		}
		return res
	}

	classifyAcyclic(g, res)
	return res
}

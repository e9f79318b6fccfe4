package present

import (
	"fmt"
	"strings"

	"github.com/graflab/graflab/bfs"
	"github.com/graflab/graflab/components"
	"github.com/graflab/graflab/core"
	"github.com/graflab/graflab/cycles"
	"github.com/graflab/graflab/dfs"
	"github.com/graflab/graflab/dijkstra"
	"github.com/graflab/graflab/euler"
)

// BFSReport renders a breadth-first traversal: the visit order in text,
// the visited vertices and the traversal-tree edges as highlights.
func BFSReport(g *core.Graph, res *bfs.Result) Report {
	if res == nil || len(res.Order) == 0 {
		return Report{Text: "Nothing to traverse: the graph has no vertices."}
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Breadth-first traversal from %s\n", labelOf(g, res.Start))
	fmt.Fprintf(&b, "Order: %s\n", labelPath(g, res.Order))
	fmt.Fprintf(&b, "Visited %d of %d vertices.", len(res.Order), g.VertexCount())
	return Report{
		Text: b.String(),
		Highlights: Highlights{
			Vertices: append([]int(nil), res.Order...),
			Edges:    treePairs(res.Parent),
		},
	}
}

// DFSReport renders a depth-first traversal the same way BFSReport does.
func DFSReport(g *core.Graph, res *dfs.Result) Report {
	if res == nil || len(res.Order) == 0 {
		return Report{Text: "Nothing to traverse: the graph has no vertices."}
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Depth-first traversal from %s\n", labelOf(g, res.Start))
	fmt.Fprintf(&b, "Order: %s\n", labelPath(g, res.Order))
	fmt.Fprintf(&b, "Visited %d of %d vertices.", len(res.Order), g.VertexCount())
	return Report{
		Text: b.String(),
		Highlights: Highlights{
			Vertices: append([]int(nil), res.Order...),
			Edges:    treePairs(res.Parent),
		},
	}
}

// ComponentsReport lists every connected component with its palette color
// and the size statistics; the largest component is highlighted.
func ComponentsReport(g *core.Graph, res *components.Result) Report {
	if res == nil || res.Count() == 0 {
		return Report{Text: "Nothing to analyze: the graph has no vertices."}
	}
	var b strings.Builder
	if res.Connected() {
		b.WriteString("The graph is connected: one component covers every vertex.\n")
	} else {
		fmt.Fprintf(&b, "%d connected components found.\n", res.Count())
	}
	var largest *components.Component
	for i := range res.Components {
		c := &res.Components[i]
		names := make([]string, len(c.Vertices))
		for j, v := range c.Vertices {
			names[j] = labelOf(g, v)
		}
		fmt.Fprintf(&b, "Component %d (%s): %s\n", c.Index+1, c.ColorName, strings.Join(names, ", "))
		if largest == nil || c.Size() > largest.Size() {
			largest = c
		}
	}
	fmt.Fprintf(&b, "Largest: %d, smallest: %d, average size: %.1f",
		res.Largest, res.Smallest, res.Average)
	return Report{
		Text:       b.String(),
		Highlights: Highlights{Vertices: append([]int(nil), largest.Vertices...)},
	}
}

// ShortestPathReport renders the shortest path to one target, or a
// descriptive failure when the target is unreachable or unknown.
func ShortestPathReport(g *core.Graph, res *dijkstra.Result, target int) Report {
	if res == nil {
		return Report{Text: "Nothing to analyze: the graph has no vertices."}
	}
	from, to := labelOf(g, res.Source), labelOf(g, target)
	path, dist, ok := res.PathTo(target)
	if !ok {
		return Report{Text: fmt.Sprintf("No path from %s to %s: the target is unreachable.", from, to)}
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Shortest path from %s to %s: %s\n", from, to, labelPath(g, path))
	fmt.Fprintf(&b, "Total distance: %d", dist)
	return Report{
		Text: b.String(),
		Highlights: Highlights{
			Vertices: append([]int(nil), path...),
			Edges:    walkPairs(path),
		},
	}
}

// AllDistancesReport renders the distance table to every vertex, ordered
// by distance then id; unreachable vertices are spelled out.
func AllDistancesReport(g *core.Graph, res *dijkstra.Result) Report {
	if res == nil {
		return Report{Text: "Nothing to analyze: the graph has no vertices."}
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Shortest distances from %s:", labelOf(g, res.Source))
	var reached []int
	for _, vd := range res.AllDistances() {
		if vd.Dist == dijkstra.Inf {
			fmt.Fprintf(&b, "\n  %s: unreachable", labelOf(g, vd.Vertex))
			continue
		}
		fmt.Fprintf(&b, "\n  %s: %d", labelOf(g, vd.Vertex), vd.Dist)
		reached = append(reached, vd.Vertex)
	}
	return Report{
		Text:       b.String(),
		Highlights: Highlights{Vertices: reached},
	}
}

// CyclesReport enumerates the cycles, or names the acyclic shape of the
// graph when there are none.
func CyclesReport(g *core.Graph, res *cycles.Result) Report {
	if res == nil || res.Kind == cycles.KindEmpty {
		return Report{Text: "Nothing to analyze: the graph has no vertices."}
	}
	if !res.HasCycles() {
		switch res.Kind {
		case cycles.KindDAG:
			return Report{Text: fmt.Sprintf(
				"No cycles: the graph is a DAG.\nTopological order: %s",
				labelPath(g, res.TopoOrder))}
		case cycles.KindTree:
			return Report{Text: "No cycles: the graph is a tree."}
		default:
			return Report{Text: "No cycles: the graph is a forest."}
		}
	}
	var b strings.Builder
	if res.Count() == 1 {
		fmt.Fprintf(&b, "1 cycle found (size %d).", res.MinSize)
	} else {
		fmt.Fprintf(&b, "%d cycles found (sizes %d to %d).", res.Count(), res.MinSize, res.MaxSize)
	}
	edges := make([][2]int, 0)
	seen := make(map[[2]int]struct{})
	for i, c := range res.Cycles {
		fmt.Fprintf(&b, "\nCycle %d: %s", i+1, labelPath(g, c))
		for _, p := range walkPairs(c) {
			if _, dup := seen[p]; dup {
				continue
			}
			seen[p] = struct{}{}
			edges = append(edges, p)
		}
	}
	return Report{
		Text: b.String(),
		Highlights: Highlights{
			Vertices: append([]int(nil), res.VertexUnion...),
			Edges:    edges,
		},
	}
}

// EulerReport renders the Eulerian verdict and, when a walk exists, the
// walk itself with its edges highlighted.
func EulerReport(g *core.Graph, res *euler.Result) Report {
	if res == nil || res.Status == euler.StatusNoEdges {
		return Report{Text: "The graph has no edges: nothing to walk."}
	}
	if res.Status == euler.StatusNone || !res.HasWalk() {
		var b strings.Builder
		b.WriteString("No Eulerian circuit or path found.")
		if !res.Directed && len(res.Odd) > 0 {
			names := make([]string, len(res.Odd))
			for i, v := range res.Odd {
				names[i] = labelOf(g, v)
			}
			fmt.Fprintf(&b, "\nOdd-degree vertices: %s", strings.Join(names, ", "))
		}
		return Report{Text: b.String()}
	}
	var b strings.Builder
	if res.Status == euler.StatusCircuit {
		fmt.Fprintf(&b, "Eulerian circuit found starting at %s:\n", labelOf(g, res.Start))
	} else {
		fmt.Fprintf(&b, "Eulerian path found from %s to %s:\n",
			labelOf(g, res.Start), labelOf(g, res.End))
	}
	b.WriteString(labelPath(g, res.Walk))
	return Report{
		Text: b.String(),
		Highlights: Highlights{
			Vertices: walkVertices(res.Walk),
			Edges:    walkPairs(res.Walk),
		},
	}
}

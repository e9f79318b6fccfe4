package present

import (
	"errors"

	"github.com/graflab/graflab/bfs"
	"github.com/graflab/graflab/dfs"
	"github.com/graflab/graflab/dijkstra"
)

// FailureReport maps an algorithm error to a descriptive, user-facing
// sentence. Unknown errors fall through to a generic phrasing rather
// than leaking raw error text structure.
func FailureReport(err error) Report {
	switch {
	case err == nil:
		return Report{}
	case errors.Is(err, bfs.ErrGraphNil),
		errors.Is(err, dfs.ErrGraphNil),
		errors.Is(err, dijkstra.ErrGraphNil):
		return Report{Text: "No graph to analyze."}
	case errors.Is(err, bfs.ErrStartVertexNotFound),
		errors.Is(err, dfs.ErrStartVertexNotFound),
		errors.Is(err, dijkstra.ErrStartVertexNotFound):
		return Report{Text: "The requested start vertex does not exist in the graph."}
	case errors.Is(err, dijkstra.ErrNegativeWeight):
		return Report{Text: "Shortest-path search does not support negative edge weights."}
	case errors.Is(err, dfs.ErrNotDirected):
		return Report{Text: "A topological sort requires a directed graph."}
	case errors.Is(err, dfs.ErrCycleDetected):
		return Report{Text: "No topological order exists: the graph contains a cycle."}
	default:
		return Report{Text: "Analysis failed: " + err.Error()}
	}
}

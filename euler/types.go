package euler

// Status names the Eulerian structure of a graph.
type Status int

const (
	// StatusNoEdges marks a graph without edges; distinct from "no
	// Eulerian structure" because there is nothing to walk.
	StatusNoEdges Status = iota
	// StatusNone marks a graph whose edges admit neither an Eulerian
	// circuit nor an Eulerian path.
	StatusNone
	// StatusCircuit marks a graph with a closed walk crossing every edge
	// exactly once.
	StatusCircuit
	// StatusPath marks a graph with an open walk crossing every edge
	// exactly once.
	StatusPath
)

// String implements fmt.Stringer for diagnostics.
func (s Status) String() string {
	switch s {
	case StatusNoEdges:
		return "no edges"
	case StatusNone:
		return "none"
	case StatusCircuit:
		return "circuit"
	case StatusPath:
		return "path"
	default:
		return "unknown"
	}
}

// Result carries the degree census, the verdict and, when one exists, the
// walk itself.
type Result struct {
	// Directed records the flag of the analyzed graph.
	Directed bool
	// Degree maps vertex id to plain degree; populated for undirected
	// graphs only. Self-loops count twice, parallel edges each count.
	Degree map[int]int
	// InDegree and OutDegree split arcs by direction; populated for
	// directed graphs only.
	InDegree  map[int]int
	OutDegree map[int]int
	// Odd lists the odd-degree vertices of an undirected graph in
	// ascending order.
	Odd []int
	// Status is the verdict.
	Status Status
	// Start and End are the walk endpoints. Equal for a circuit; both
	// zero-valued when Status is StatusNoEdges or StatusNone.
	Start int
	End   int
	// Walk is the full vertex sequence of the Eulerian walk, crossing
	// every edge exactly once. Nil when no walk was produced.
	Walk []int
}

// HasWalk reports whether an Eulerian walk was actually constructed.
func (r *Result) HasWalk() bool { return len(r.Walk) > 0 }

package core_test

import (
	"fmt"

	"github.com/graflab/graflab/core"
)

// ExampleGraph builds the square A—B—D—C—A and queries it.
func ExampleGraph() {
	g := core.NewGraph()
	a := g.AddVertex(0, 0, "")
	b := g.AddVertex(1, 0, "")
	c := g.AddVertex(0, 1, "")
	d := g.AddVertex(1, 1, "")

	g.AddEdge(a, b, 1)
	g.AddEdge(b, d, 1)
	g.AddEdge(d, c, 1)
	g.AddEdge(c, a, 1)

	fmt.Println("vertices:", g.VertexCount())
	fmt.Println("edges:", g.EdgeCount())
	fmt.Println("neighbors of A:", g.Neighbors(a))
	// Output:
	// vertices: 4
	// edges: 4
	// neighbors of A: [1 2]
}

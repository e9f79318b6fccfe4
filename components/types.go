// Package components: palette and result types.
package components

// PaletteEntry pairs a display color with its human-readable name.
type PaletteEntry struct {
	Hex  string
	Name string
}

// Palette is the fixed component color cycle. Component i gets
// Palette[i % len(Palette)].
var Palette = []PaletteEntry{
	{"#FF6B6B", "red"},
	{"#4ECDC4", "turquoise"},
	{"#45B7D1", "sky blue"},
	{"#FFA07A", "salmon"},
	{"#98D8C8", "seafoam"},
	{"#F7DC6F", "yellow"},
	{"#BB8FCE", "violet"},
	{"#85C1E2", "light blue"},
	{"#F8B739", "orange"},
	{"#52B788", "green"},
}

// Component is one weak connected component.
type Component struct {
	// Index is the discovery-order component number, starting at 0.
	Index int

	// Vertices are the member ids in ascending order.
	Vertices []int

	// Color and ColorName come from the palette cycle.
	Color     string
	ColorName string
}

// Size returns the number of member vertices.
func (c Component) Size() int { return len(c.Vertices) }

// Result is the full partition with its statistics.
type Result struct {
	// Components in discovery order.
	Components []Component

	// Assignment maps every vertex id to its component index.
	Assignment map[int]int

	// Largest, Smallest, and Average are component size statistics.
	// All zero on an empty graph.
	Largest  int
	Smallest int
	Average  float64
}

// Count returns the number of components.
func (r *Result) Count() int { return len(r.Components) }

// Connected reports whether every vertex lies in a single component.
// False on an empty graph.
func (r *Result) Connected() bool { return len(r.Components) == 1 }

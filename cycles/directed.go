package cycles

import (
	"github.com/graflab/graflab/core"
)

// dFrame is one explicit-stack level of the directed search. found is
// latched when any cycle closes through this vertex or deeper; it decides
// between unblocking and block-map registration on exit.
type dFrame struct {
	vertex int
	nbrs   []int
	next   int
	found  bool
}

// enumerateDirected finds every elementary cycle of a directed graph with
// a Johnson-style search. Each vertex s is taken, in ascending order, as
// the candidate minimum vertex; the search only walks vertices >= s, keeps
// a blocked set plus a block map of reopen dependencies, and both are
// created fresh per candidate. A successor equal to s closes a cycle; a
// directed self-loop closes one of size 1.
func enumerateDirected(g *core.Graph) [][]int {
	seen := make(map[string]struct{})
	var cycles [][]int

	for _, s := range g.Vertices() {
		blocked := make(map[int]bool)
		blockMap := make(map[int]map[int]struct{})

		path := []int{s}
		blocked[s] = true
		stack := []dFrame{{vertex: s, nbrs: g.Neighbors(s)}}

		for len(stack) > 0 {
			top := len(stack) - 1
			f := &stack[top]

			if f.next < len(f.nbrs) {
				n := f.nbrs[f.next]
				f.next++

				if n == s {
					record(path, seen, &cycles)
					f.found = true
					continue
				}
				if n > s && !blocked[n] {
					blocked[n] = true
					path = append(path, n)
					stack = append(stack, dFrame{vertex: n, nbrs: g.Neighbors(n)})
				}
				continue
			}

			// Vertex exhausted: reopen the dependency chain on success,
			// otherwise register on every successor's block map so a
			// later unblock reaches back here.
			if f.found {
				unblock(f.vertex, blocked, blockMap)
			} else {
				for _, n := range f.nbrs {
					deps := blockMap[n]
					if deps == nil {
						deps = make(map[int]struct{})
						blockMap[n] = deps
					}
					deps[f.vertex] = struct{}{}
				}
			}
			childFound := f.found
			path = path[:len(path)-1]
			stack = stack[:top]
			if childFound && len(stack) > 0 {
				stack[len(stack)-1].found = true
			}
		}
	}
	return cycles
}

// unblock reopens v and, transitively, every vertex whose blocking depends
// on it. Runs on an explicit worklist.
func unblock(v int, blocked map[int]bool, blockMap map[int]map[int]struct{}) {
	work := []int{v}
	for len(work) > 0 {
		w := work[len(work)-1]
		work = work[:len(work)-1]
		delete(blocked, w)
		for dep := range blockMap[w] {
			delete(blockMap[w], dep)
			if blocked[dep] {
				work = append(work, dep)
			}
		}
	}
}

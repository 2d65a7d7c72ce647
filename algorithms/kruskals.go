package algorithms

import (
	"github.com/spakin/disjoint"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/random"
)

// edge is an unordered pair of neighbouring cells.
type edge struct {
	a, b *grid.Cell
}

// kruskals links shuffled candidate edges whose endpoints lie in different
// sets, tracking connectivity with a disjoint-set forest.
//
// Steps:
//  1. Collect each neighbour pair once, in cell creation order.
//  2. Shuffle the pairs with the run's random source.
//  3. Give every cell its own singleton set.
//  4. Each Step examines one pair: if its endpoints are in different
//     sets, link them and union the sets.
//
// Complexity: O(E·α(C)) over all steps. Memory: O(C + E).
type kruskals struct {
	g     *grid.Grid
	edges []edge
	sets  map[grid.Coords]*disjoint.Element
	next  int
	links int
	total int
}

func newKruskals(g *grid.Grid, src *random.Source) Process {
	k := &kruskals{
		g:     g,
		sets:  make(map[grid.Coords]*disjoint.Element, g.CellCount()),
		total: g.CellCount(),
	}

	// 1. Each pair is taken from the endpoint created first.
	seen := make(map[grid.Coords]bool, k.total)
	for _, c := range g.Cells() {
		seen[c.Coords] = true
		for _, n := range g.Neighbours(c) {
			if !seen[n.Coords] {
				k.edges = append(k.edges, edge{c, n})
			}
		}
	}

	// 2. Uniform order over candidate walls.
	random.Shuffle(src, k.edges)

	// 3. Singleton sets.
	for _, c := range g.Cells() {
		k.sets[c.Coords] = disjoint.NewElement()
	}
	return k
}

func (k *kruskals) Step() bool {
	if k.done() {
		return false
	}
	// 4. One candidate per step.
	e := k.edges[k.next]
	k.next++
	sa, sb := k.sets[e.a.Coords], k.sets[e.b.Coords]
	if sa.Find() != sb.Find() {
		k.g.Link(e.a, e.b)
		disjoint.Union(sa, sb)
		k.links++
	}
	return !k.done()
}

func (k *kruskals) done() bool {
	return k.next >= len(k.edges) || k.links >= k.total-1
}

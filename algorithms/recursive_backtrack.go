package algorithms

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/random"
)

// recursiveBacktrack is a randomised depth-first search held on an
// explicit stack: advance into a random unvisited neighbour, or pop.
type recursiveBacktrack struct {
	g       *grid.Grid
	src     *random.Source
	stack   []*grid.Cell
	visited visitSet
	total   int
}

func newRecursiveBacktrack(g *grid.Grid, src *random.Source) Process {
	r := &recursiveBacktrack{g: g, src: src, visited: mapset.New[grid.Coords](), total: g.CellCount()}
	if start := g.RandomCell(nil); start != nil {
		r.stack = append(r.stack, start)
		r.visited.Put(start.Coords)
	}
	return r
}

func (r *recursiveBacktrack) Step() bool {
	if len(r.stack) == 0 || r.visited.Size() >= r.total {
		return false
	}
	top := r.stack[len(r.stack)-1]
	if next, ok := random.Choice(r.src, neighboursWhere(r.g, top, unvisited(r.visited))); ok {
		r.g.Link(top, next)
		r.visited.Put(next.Coords)
		r.stack = append(r.stack, next)
	} else {
		r.stack = r.stack[:len(r.stack)-1]
	}
	return len(r.stack) > 0 && r.visited.Size() < r.total
}

package algorithms

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/random"
)

// aldousBroder random-walks the grid, linking each cell the first time the
// walk enters it. One move per step.
type aldousBroder struct {
	g       *grid.Grid
	src     *random.Source
	current *grid.Cell
	visited visitSet
	total   int
}

func newAldousBroder(g *grid.Grid, src *random.Source) Process {
	a := &aldousBroder{g: g, src: src, visited: mapset.New[grid.Coords](), total: g.CellCount()}
	if cells := g.Cells(); len(cells) > 0 {
		a.current, _ = random.Choice(src, cells)
		a.visited.Put(a.current.Coords)
	}
	return a
}

func (a *aldousBroder) Step() bool {
	if a.visited.Size() >= a.total {
		return false
	}
	next, ok := random.Choice(a.src, a.g.Neighbours(a.current))
	if !ok {
		return false
	}
	if !a.visited.Has(next.Coords) {
		a.g.Link(a.current, next)
		a.visited.Put(next.Coords)
	}
	a.current = next
	return a.visited.Size() < a.total
}

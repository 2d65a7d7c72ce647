package algorithms

import (
	"cmp"
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/lvmaze/grid"
)

// visitSet tracks the cells already joined to the maze.
type visitSet = mapset.Set[grid.Coords]

// neighboursWhere returns the neighbours of c satisfying keep, in direction order.
func neighboursWhere(g *grid.Grid, c *grid.Cell, keep func(*grid.Cell) bool) []*grid.Cell {
	var out []*grid.Cell
	for _, n := range g.Neighbours(c) {
		if keep(n) {
			out = append(out, n)
		}
	}
	return out
}

func unvisited(visited visitSet) func(*grid.Cell) bool {
	return func(c *grid.Cell) bool { return !visited.Has(c.Coords) }
}

func isVisited(visited visitSet) func(*grid.Cell) bool {
	return func(c *grid.Cell) bool { return visited.Has(c.Coords) }
}

// rowMajor returns the cells ordered north to south, then west to east.
func rowMajor(g *grid.Grid) []*grid.Cell {
	cells := g.Cells()
	slices.SortStableFunc(cells, func(a, b *grid.Cell) int {
		if c := cmp.Compare(a.Coords[1], b.Coords[1]); c != 0 {
			return c
		}
		return cmp.Compare(a.Coords[0], b.Coords[0])
	})
	return cells
}

// neighbourIn returns the neighbour of c in direction d, or nil.
func neighbourIn(g *grid.Grid, c *grid.Cell, d grid.Direction) *grid.Cell {
	nc, ok := c.Neighbour(d)
	if !ok {
		return nil
	}
	return g.Cell(nc)
}

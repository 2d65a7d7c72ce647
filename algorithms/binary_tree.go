package algorithms

import (
	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/random"
)

// binaryTree links every cell to one random neighbour among a fixed set of
// "upward" directions, one cell per step.
type binaryTree struct {
	g     *grid.Grid
	src   *random.Source
	cells []*grid.Cell
	dirs  []grid.Direction
	next  int
}

func newBinaryTree(g *grid.Grid, src *random.Source) Process {
	dirs := []grid.Direction{grid.North, grid.East}
	if g.Shape() == grid.ShapeHexagon {
		dirs = []grid.Direction{grid.NorthWest, grid.NorthEast, grid.East}
	}
	return &binaryTree{g: g, src: src, cells: g.Cells(), dirs: dirs}
}

func (b *binaryTree) Step() bool {
	if b.next >= len(b.cells) {
		return false
	}
	cell := b.cells[b.next]
	b.next++

	var candidates []*grid.Cell
	for _, d := range b.dirs {
		if n := neighbourIn(b.g, cell, d); n != nil {
			candidates = append(candidates, n)
		}
	}
	if n, ok := random.Choice(b.src, candidates); ok {
		b.g.Link(cell, n)
	}
	return b.next < len(b.cells)
}

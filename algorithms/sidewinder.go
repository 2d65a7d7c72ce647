package algorithms

import (
	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/random"
)

// sidewinder walks each row west to east, extending a run eastwards and
// closing it with a single link north from a random member.
type sidewinder struct {
	g     *grid.Grid
	src   *random.Source
	cells []*grid.Cell
	run   []*grid.Cell
	next  int
}

func newSidewinder(g *grid.Grid, src *random.Source) Process {
	return &sidewinder{g: g, src: src, cells: rowMajor(g)}
}

func (s *sidewinder) Step() bool {
	if s.next >= len(s.cells) {
		return false
	}
	cell := s.cells[s.next]
	s.next++
	s.run = append(s.run, cell)

	east := neighbourIn(s.g, cell, grid.East)
	north := neighbourIn(s.g, cell, grid.North)
	closeRun := east == nil || (north != nil && s.src.Bool())

	if closeRun {
		member, _ := random.Choice(s.src, s.run)
		if n := neighbourIn(s.g, member, grid.North); n != nil {
			s.g.Link(member, n)
		}
		s.run = s.run[:0]
	} else {
		s.g.Link(cell, east)
	}
	return s.next < len(s.cells)
}

package grid

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/lvmaze/surface"
)

// Render draws the grid onto s, or onto the grid's own surface when s is
// nil. Cells are filled first, walls drawn second and the tagged solution
// path, if any, last. Each cell's surface position is cached under
// MetaRawCoords for ClosestDirectionForClick.
func (g *Grid) Render(s surface.Surface) {
	if s == nil {
		s = g.cfg.Surface
	}
	if s == nil {
		return
	}

	w, h := g.layout.spaceRequirements()
	s.SetSpaceRequirements(w, h, g.cfg.LineWidth)
	s.Clear()

	current := ""
	setColour := func(colour string) {
		if colour != current {
			s.SetColour(colour)
			current = colour
		}
	}

	for _, c := range g.order {
		cell := g.cells[c]
		if cell.Masked() {
			setColour(MaskedColour)
		} else {
			setColour(g.cfg.OpenColour)
		}
		g.layout.fill(s, cell)
	}

	setColour(g.cfg.ClosedColour)
	for _, c := range g.order {
		cell := g.cells[c]
		g.layout.walls(g, s, cell)
		x, y := g.layout.centre(c)
		px, py := s.ConvertCoords(x, y)
		cell.Metadata[MetaRawCoords] = [2]float64{px, py}
	}

	if path := g.taggedPath(); len(path) > 1 {
		setColour(g.cfg.PathColour)
		for i := 1; i < len(path); i++ {
			x1, y1 := g.layout.centre(path[i-1])
			x2, y2 := g.layout.centre(path[i])
			s.Line(x1, y1, x2, y2)
		}
	}
}

// Centre returns the logical position of the middle of the cell at c.
func (g *Grid) Centre(c Coords) (float64, float64) {
	return g.layout.centre(c)
}

// SpaceRequirements returns the logical extent of the grid drawing.
func (g *Grid) SpaceRequirements() (float64, float64) {
	return g.layout.spaceRequirements()
}

// ClosestDirectionForClick classifies where e landed relative to the
// centre of cell. It needs a prior Render; false means the cell has no
// cached position.
func (g *Grid) ClosestDirectionForClick(cell *Cell, e ClickEvent) (Direction, bool) {
	if cell == nil {
		return "", false
	}
	raw, ok := cell.Metadata[MetaRawCoords].([2]float64)
	if !ok {
		return "", false
	}
	return g.layout.closestDirection(cell.Coords, raw[0], raw[1], e.RawCoords[0], e.RawCoords[1]), true
}

// taggedPath returns the cells carrying MetaPath, ordered by path index.
func (g *Grid) taggedPath() []Coords {
	type step struct {
		index  int
		coords Coords
	}
	var steps []step
	for _, c := range g.order {
		if i, ok := g.cells[c].Metadata[MetaPath].(int); ok {
			steps = append(steps, step{i, c})
		}
	}
	slices.SortFunc(steps, func(a, b step) int { return cmp.Compare(a.index, b.index) })
	out := make([]Coords, len(steps))
	for i, s := range steps {
		out[i] = s.coords
	}
	return out
}

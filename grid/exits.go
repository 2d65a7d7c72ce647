package grid

import "fmt"

// PlaceExits marks a start and an end cell according to the configured
// ExitConfig, clearing any previous markers. The value stored under
// MetaStart and MetaEnd is the boundary direction left open, or "" when
// the cell has no outer side.
func (g *Grid) PlaceExits() error {
	if g.CellCount() < 2 {
		return fmt.Errorf("%w: have %d", ErrTooFewCells, g.CellCount())
	}
	g.ClearMetadata(MetaStart, MetaEnd)

	var (
		start, end       *Cell
		startDir, endDir Direction
		placed           bool
	)
	if g.cfg.Exits == ExitsHardest {
		start, end, placed = g.hardestExits()
		if placed {
			startDir, endDir = g.layout.opening(g, start), g.layout.opening(g, end)
		}
	}
	if !placed {
		policy := g.cfg.Exits
		if policy == ExitsHardest {
			policy = ExitsVertical
		}
		start, end, startDir, endDir = g.layout.exits(g, policy)
	}
	if start == nil || end == nil || start == end {
		return fmt.Errorf("%w: no distinct exit cells", ErrTooFewCells)
	}

	start.Metadata[MetaStart] = startDir
	end.Metadata[MetaEnd] = endDir
	return nil
}

// hardestExits runs two breadth-first searches over links: the cell
// farthest from a random cell, then the cell farthest from that one.
func (g *Grid) hardestExits() (start, end *Cell, ok bool) {
	seed := g.RandomCell(func(c *Cell) bool { return c.LinkCount() > 0 })
	if seed == nil {
		return nil, nil, false
	}
	dist, err := g.Distances(seed.Coords)
	if err != nil {
		return nil, nil, false
	}
	a, _ := g.farthest(dist)
	dist, err = g.Distances(a)
	if err != nil {
		return nil, nil, false
	}
	b, d := g.farthest(dist)
	if d <= 0 {
		return nil, nil, false
	}
	return g.cells[a], g.cells[b], true
}

// Exits returns the cells marked by PlaceExits, or nil when unplaced.
func (g *Grid) Exits() (start, end *Cell) {
	for _, c := range g.order {
		cell := g.cells[c]
		if _, ok := cell.Metadata[MetaStart]; ok && start == nil {
			start = cell
		}
		if _, ok := cell.Metadata[MetaEnd]; ok && end == nil {
			end = cell
		}
	}
	return start, end
}

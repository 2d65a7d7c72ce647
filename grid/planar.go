package grid

// planarSides names, per cell, the wall directions facing each bounding
// edge of a planar grid.
type planarSides struct {
	edges func(c Coords) []Direction
	down  []Direction
	up    []Direction
	left  []Direction
	right []Direction
}

// planarExits places the start on the bottom (or left) boundary row and
// the end on the top (or right) one.
func planarExits(g *Grid, policy ExitConfig, sides planarSides) (start, end *Cell, startDir, endDir Direction) {
	axis, startDirs, endDirs, startAtMax := 1, sides.down, sides.up, true
	if policy == ExitsHorizontal {
		axis, startDirs, endDirs, startAtMax = 0, sides.left, sides.right, false
	}

	lo, hi := g.bounds(axis)
	startKey, endKey := lo, hi
	if startAtMax {
		startKey, endKey = hi, lo
	}

	start = pickBoundaryCell(g, sides, axis, startKey, startDirs, nil)
	end = pickBoundaryCell(g, sides, axis, endKey, endDirs, start)
	if end == nil {
		end = g.RandomCell(func(c *Cell) bool { return c != start })
	}
	return start, end, planarOpening(g, sides, start, startDirs), planarOpening(g, sides, end, endDirs)
}

// pickBoundaryCell chooses among cells whose coordinate on axis equals key,
// preferring those with an open side facing dirs.
func pickBoundaryCell(g *Grid, sides planarSides, axis, key int, dirs []Direction, exclude *Cell) *Cell {
	onRow := func(c *Cell) bool { return c != exclude && c.Coords[axis] == key }
	if c := g.RandomCell(func(c *Cell) bool {
		return onRow(c) && planarOpening(g, sides, c, dirs) != ""
	}); c != nil {
		return c
	}
	return g.RandomCell(onRow)
}

func planarOpening(g *Grid, sides planarSides, c *Cell, dirs []Direction) Direction {
	edges := sides.edges(c.Coords)
	var usable []Direction
	for _, d := range dirs {
		for _, e := range edges {
			if d == e {
				usable = append(usable, d)
			}
		}
	}
	return firstOpenSide(g, c, usable)
}

// bounds returns the smallest and largest coordinate on axis over all cells.
func (g *Grid) bounds(axis int) (lo, hi int) {
	for i, c := range g.order {
		v := c[axis]
		if i == 0 || v < lo {
			lo = v
		}
		if i == 0 || v > hi {
			hi = v
		}
	}
	return lo, hi
}

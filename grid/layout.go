package grid

import "github.com/katalvlaran/lvmaze/surface"

// layout is the shape-specific half of a Grid. The set of implementations
// is closed: square, triangle, hexagon and circle.
type layout interface {
	shape() Shape
	init(g *Grid)
	// populate adds every cell and wires adjacency.
	populate(g *Grid)
	spaceRequirements() (width, height float64)
	fill(s surface.Surface, c *Cell)
	walls(g *Grid, s surface.Surface, c *Cell)
	// centre returns the logical position of the middle of cell c.
	centre(c Coords) (x, y float64)
	// locate maps a logical position to the cell coordinates under it.
	locate(x, y float64) (Coords, bool)
	// closestDirection classifies the click at (px, py) relative to the
	// rendered cell at (ox, oy); both are surface coordinates.
	closestDirection(c Coords, ox, oy, px, py float64) Direction
	exits(g *Grid, policy ExitConfig) (start, end *Cell, startDir, endDir Direction)
	// opening returns the boundary direction used when c is an exit.
	opening(g *Grid, c *Cell) Direction
}

// hasWall reports whether a wall separates c from whatever lies in
// direction d: an absent or unlinked neighbour, except for exit openings.
func (g *Grid) hasWall(c *Cell, d Direction) bool {
	if n, ok := c.neighbours[d]; ok {
		if _, exists := g.cells[n]; exists {
			return !c.IsLinkedTo(n)
		}
	}
	return !isOpening(c, d)
}

func isOpening(c *Cell, d Direction) bool {
	for _, k := range [...]string{MetaStart, MetaEnd} {
		if v, ok := c.Metadata[k].(Direction); ok && v != "" && v == d {
			return true
		}
	}
	return false
}

// firstOpenSide returns the first direction in dirs with no neighbour in c.
func firstOpenSide(g *Grid, c *Cell, dirs []Direction) Direction {
	for _, d := range dirs {
		n, ok := c.neighbours[d]
		if !ok {
			return d
		}
		if _, exists := g.cells[n]; !exists {
			return d
		}
	}
	return ""
}

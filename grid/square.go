package grid

import (
	"math"

	"github.com/katalvlaran/lvmaze/surface"
)

var squareEdges = []Direction{North, South, East, West}

type squareLayout struct {
	width, height int
	sides         planarSides
}

func (l *squareLayout) shape() Shape { return ShapeSquare }

func (l *squareLayout) init(g *Grid) {
	l.width, l.height = g.cfg.Width, g.cfg.Height
	l.sides = planarSides{
		edges: func(Coords) []Direction { return squareEdges },
		down:  []Direction{South},
		up:    []Direction{North},
		left:  []Direction{West},
		right: []Direction{East},
	}
}

func (l *squareLayout) populate(g *Grid) {
	for x := 0; x < l.width; x++ {
		for y := 0; y < l.height; y++ {
			g.AddCell(Coords{x, y})
		}
	}
	for x := 0; x < l.width; x++ {
		for y := 0; y < l.height; y++ {
			cell := g.Cell(Coords{x, y})
			if east := g.Cell(Coords{x + 1, y}); east != nil {
				g.MakeNeighbours(cell, West, east, East)
			}
			if south := g.Cell(Coords{x, y + 1}); south != nil {
				g.MakeNeighbours(cell, North, south, South)
			}
		}
	}
}

func (l *squareLayout) spaceRequirements() (float64, float64) {
	return float64(l.width), float64(l.height)
}

func (l *squareLayout) fill(s surface.Surface, c *Cell) {
	x, y := float64(c.Coords[0]), float64(c.Coords[1])
	s.FillPolygon(
		surface.Point{X: x, Y: y},
		surface.Point{X: x + 1, Y: y},
		surface.Point{X: x + 1, Y: y + 1},
		surface.Point{X: x, Y: y + 1},
	)
}

func (l *squareLayout) walls(g *Grid, s surface.Surface, c *Cell) {
	x, y := float64(c.Coords[0]), float64(c.Coords[1])
	if g.hasWall(c, North) {
		s.Line(x, y, x+1, y)
	}
	if g.hasWall(c, South) {
		s.Line(x, y+1, x+1, y+1)
	}
	if g.hasWall(c, West) {
		s.Line(x, y, x, y+1)
	}
	if g.hasWall(c, East) {
		s.Line(x+1, y, x+1, y+1)
	}
}

func (l *squareLayout) centre(c Coords) (float64, float64) {
	return float64(c[0]) + 0.5, float64(c[1]) + 0.5
}

func (l *squareLayout) locate(x, y float64) (Coords, bool) {
	return Coords{int(math.Floor(x)), int(math.Floor(y))}, true
}

func (l *squareLayout) closestDirection(_ Coords, ox, oy, px, py float64) Direction {
	dx, dy := px-ox, py-oy
	if math.Abs(dx) < math.Abs(dy) {
		if dy > 0 {
			return South
		}
		return North
	}
	if dx > 0 {
		return East
	}
	return West
}

func (l *squareLayout) exits(g *Grid, policy ExitConfig) (*Cell, *Cell, Direction, Direction) {
	return planarExits(g, policy, l.sides)
}

func (l *squareLayout) opening(g *Grid, c *Cell) Direction {
	return firstOpenSide(g, c, squareEdges)
}

package grid

import (
	"math"

	"github.com/katalvlaran/lvmaze/surface"
)

var (
	triangleEdgesBaseSouth = []Direction{South, East, West}
	triangleEdgesBaseNorth = []Direction{North, East, West}
)

// triangleLayout tiles alternating up and down triangles; a cell whose
// coordinates sum to an odd number points up and has its base on the
// south side.
type triangleLayout struct {
	width, height int
	sides         planarSides
}

func baseOnSouthSide(c Coords) bool { return (c[0]+c[1])%2 == 1 }

func triangleEdges(c Coords) []Direction {
	if baseOnSouthSide(c) {
		return triangleEdgesBaseSouth
	}
	return triangleEdgesBaseNorth
}

func (l *triangleLayout) shape() Shape { return ShapeTriangle }

func (l *triangleLayout) init(g *Grid) {
	l.width, l.height = g.cfg.Width, g.cfg.Height
	l.sides = planarSides{
		edges: triangleEdges,
		down:  []Direction{South},
		up:    []Direction{North},
		left:  []Direction{West},
		right: []Direction{East},
	}
}

func (l *triangleLayout) populate(g *Grid) {
	for x := 0; x < l.width; x++ {
		for y := 0; y < l.height; y++ {
			g.AddCell(Coords{x, y})
		}
	}
	for x := 0; x < l.width; x++ {
		for y := 0; y < l.height; y++ {
			c := Coords{x, y}
			cell := g.Cell(c)
			if east := g.Cell(Coords{x + 1, y}); east != nil {
				g.MakeNeighbours(cell, West, east, East)
			}
			if !baseOnSouthSide(c) {
				continue
			}
			if south := g.Cell(Coords{x, y + 1}); south != nil {
				g.MakeNeighbours(cell, North, south, South)
			}
		}
	}
}

func (l *triangleLayout) spaceRequirements() (float64, float64) {
	return 0.5 + float64(l.width)/2, float64(l.height) * sin60
}

// corners returns the left base corner, the apex and the right base corner.
func (l *triangleLayout) corners(c Coords) (p1, p2, p3 surface.Point) {
	x, y := float64(c[0]), float64(c[1])
	if baseOnSouthSide(c) {
		p1 = surface.Point{X: x / 2, Y: (y + 1) * sin60}
		p2 = surface.Point{X: (x + 1) / 2, Y: p1.Y - sin60}
	} else {
		p1 = surface.Point{X: x / 2, Y: y * sin60}
		p2 = surface.Point{X: (x + 1) / 2, Y: p1.Y + sin60}
	}
	p3 = surface.Point{X: p1.X + 1, Y: p1.Y}
	return p1, p2, p3
}

func (l *triangleLayout) fill(s surface.Surface, c *Cell) {
	p1, p2, p3 := l.corners(c.Coords)
	s.FillPolygon(p1, p2, p3)
}

func (l *triangleLayout) walls(g *Grid, s surface.Surface, c *Cell) {
	p1, p2, p3 := l.corners(c.Coords)
	base := North
	if baseOnSouthSide(c.Coords) {
		base = South
	}
	if g.hasWall(c, base) {
		line(s, p1, p3)
	}
	if g.hasWall(c, East) {
		line(s, p2, p3)
	}
	if g.hasWall(c, West) {
		line(s, p1, p2)
	}
}

func (l *triangleLayout) centre(c Coords) (float64, float64) {
	p1, p2, p3 := l.corners(c)
	return centroid(p1, p2, p3)
}

func (l *triangleLayout) locate(x, y float64) (Coords, bool) {
	row := int(math.Floor(y / sin60))
	xDivision := 2 * x
	column := int(math.Floor(xDivision))
	ty := math.Mod(y/sin60, 1)

	var cx int
	if (column+row)%2 != 0 {
		tx := 1 - math.Mod(xDivision, 1)
		if tx > ty {
			cx = column - 1
		} else {
			cx = column
		}
	} else {
		tx := math.Mod(xDivision, 1)
		if tx > ty {
			cx = column
		} else {
			cx = column - 1
		}
	}
	return Coords{cx, row}, true
}

func (l *triangleLayout) closestDirection(c Coords, ox, oy, px, py float64) Direction {
	angle := angleFromNorth(ox, oy, px, py)
	sixty := math.Pi / 3
	if baseOnSouthSide(c) {
		switch {
		case math.Abs(angle) > 2*sixty:
			return South
		case angle > 0:
			return East
		default:
			return West
		}
	}
	switch {
	case math.Abs(angle) < sixty:
		return North
	case angle > 0:
		return East
	default:
		return West
	}
}

func (l *triangleLayout) exits(g *Grid, policy ExitConfig) (*Cell, *Cell, Direction, Direction) {
	return planarExits(g, policy, l.sides)
}

func (l *triangleLayout) opening(g *Grid, c *Cell) Direction {
	return firstOpenSide(g, c, triangleEdges(c.Coords))
}

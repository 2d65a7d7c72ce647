package grid

import (
	"math"

	"github.com/katalvlaran/lvmaze/surface"
)

var hexagonEdges = []Direction{NorthWest, NorthEast, East, SouthEast, SouthWest, West}

// Hexagon geometry in logical units: pointy-top cells of circumradius 1.
var (
	hexYOffset1 = cos60
	hexYOffset2 = 2 - cos60
	hexYOffset3 = 2.0
	hexXOffset  = sin60
)

// hexagonLayout staggers odd rows half a cell to the east.
type hexagonLayout struct {
	width, height int
	sides         planarSides
}

func (l *hexagonLayout) shape() Shape { return ShapeHexagon }

func (l *hexagonLayout) init(g *Grid) {
	l.width, l.height = g.cfg.Width, g.cfg.Height
	l.sides = planarSides{
		edges: func(Coords) []Direction { return hexagonEdges },
		down:  []Direction{SouthWest, SouthEast},
		up:    []Direction{NorthWest, NorthEast},
		left:  []Direction{West},
		right: []Direction{East},
	}
}

func (l *hexagonLayout) populate(g *Grid) {
	for x := 0; x < l.width; x++ {
		for y := 0; y < l.height; y++ {
			g.AddCell(Coords{x, y})
		}
	}
	for x := 0; x < l.width; x++ {
		for y := 0; y < l.height; y++ {
			cell := g.Cell(Coords{x, y})
			offset := (y + 1) % 2
			if east := g.Cell(Coords{x + 1, y}); east != nil {
				g.MakeNeighbours(cell, West, east, East)
			}
			if sw := g.Cell(Coords{x - offset, y + 1}); sw != nil {
				g.MakeNeighbours(cell, NorthEast, sw, SouthWest)
			}
			if se := g.Cell(Coords{x + 1 - offset, y + 1}); se != nil {
				g.MakeNeighbours(cell, NorthWest, se, SouthEast)
			}
		}
	}
}

func (l *hexagonLayout) spaceRequirements() (float64, float64) {
	w := float64(l.width)*2*hexXOffset + math.Min(1, float64(l.height-1))*hexXOffset
	h := float64(l.height)*hexYOffset2 + hexYOffset1
	return w, h
}

// corners returns the hexagon vertices anticlockwise from the upper-left one.
func (l *hexagonLayout) corners(c Coords) [6]surface.Point {
	x, y := float64(c[0]), float64(c[1])
	rowX := math.Abs(float64(c[1]%2)) * hexXOffset

	p1 := surface.Point{X: rowX + 2*x*hexXOffset, Y: hexYOffset1 + y*hexYOffset2}
	p2 := surface.Point{X: p1.X, Y: (y + 1) * hexYOffset2}
	p3 := surface.Point{X: rowX + (2*x+1)*hexXOffset, Y: y*hexYOffset2 + hexYOffset3}
	p4 := surface.Point{X: p2.X + 2*hexXOffset, Y: p2.Y}
	p5 := surface.Point{X: p4.X, Y: p1.Y}
	p6 := surface.Point{X: p3.X, Y: y * hexYOffset2}
	return [6]surface.Point{p1, p2, p3, p4, p5, p6}
}

func (l *hexagonLayout) fill(s surface.Surface, c *Cell) {
	p := l.corners(c.Coords)
	s.FillPolygon(p[:]...)
}

func (l *hexagonLayout) walls(g *Grid, s surface.Surface, c *Cell) {
	p := l.corners(c.Coords)
	if g.hasWall(c, East) {
		line(s, p[3], p[4])
	}
	if g.hasWall(c, West) {
		line(s, p[0], p[1])
	}
	if g.hasWall(c, NorthEast) {
		line(s, p[4], p[5])
	}
	if g.hasWall(c, NorthWest) {
		line(s, p[0], p[5])
	}
	if g.hasWall(c, SouthEast) {
		line(s, p[2], p[3])
	}
	if g.hasWall(c, SouthWest) {
		line(s, p[1], p[2])
	}
}

func (l *hexagonLayout) centre(c Coords) (float64, float64) {
	p := l.corners(c)
	return centroid(p[:]...)
}

func (l *hexagonLayout) locate(x, y float64) (Coords, bool) {
	rowHeight := 2 - hexYOffset1
	ty := math.Mod(y/rowHeight, 1)
	row := int(math.Floor(y / rowHeight))
	rowAdjust := math.Abs(float64(row%2)) * hexXOffset
	column := int(math.Floor((x - rowAdjust) / (2 * hexXOffset)))

	if ty > hexYOffset1 {
		return Coords{column, row}, true
	}

	// Zig-zag band between two rows.
	tx := math.Abs(hexXOffset - math.Mod(x-rowAdjust, 2*hexXOffset))
	tty := ty * rowHeight
	if tx/tty <= math.Tan(math.Pi/3) {
		return Coords{column, row}, true
	}
	var dx int
	if rowAdjust != 0 {
		if math.Mod(x-rowAdjust, 2*hexXOffset) > hexXOffset {
			dx = 1
		}
	} else if math.Mod(x, 2*hexXOffset) <= hexXOffset {
		dx = -1
	}
	return Coords{column + dx, row - 1}, true
}

var hexagonSectors = [...]Direction{SouthWest, West, NorthWest, NorthEast, East, SouthEast}

func (l *hexagonLayout) closestDirection(_ Coords, ox, oy, px, py float64) Direction {
	angle := angleFromNorth(ox, oy, px, py)
	sector := int(math.Floor((angle + math.Pi) / (math.Pi / 3)))
	sector = max(0, min(sector, len(hexagonSectors)-1))
	return hexagonSectors[sector]
}

func (l *hexagonLayout) exits(g *Grid, policy ExitConfig) (*Cell, *Cell, Direction, Direction) {
	return planarExits(g, policy, l.sides)
}

func (l *hexagonLayout) opening(g *Grid, c *Cell) Direction {
	return firstOpenSide(g, c, hexagonEdges)
}

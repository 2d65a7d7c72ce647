package grid

import (
	"math"

	"github.com/katalvlaran/lvmaze/surface"
)

// CellCountsForLayers returns the number of cells in each ring of a
// circular grid with the given number of layers. Ring 0 is a single cell
// and every later count is a multiple of the previous one, chosen so that
// cells stay roughly square.
func CellCountsForLayers(layers int) []int {
	if layers <= 0 {
		return nil
	}
	counts := make([]int, 1, layers)
	counts[0] = 1
	rowRadius := 1 / float64(layers)
	for layer := 1; layer < layers; layer++ {
		prev := counts[layer-1]
		circumference := 2 * math.Pi * float64(layer) * rowRadius / float64(prev)
		ratio := max(1, int(math.Round(circumference/rowRadius)))
		counts = append(counts, prev*ratio)
	}
	return counts
}

// circleLayout addresses cells as (layer, index) with index 0 starting at
// north and growing clockwise.
type circleLayout struct {
	layers int
	counts []int
}

func (l *circleLayout) shape() Shape { return ShapeCircle }

func (l *circleLayout) init(g *Grid) {
	l.layers = g.cfg.Layers
	l.counts = CellCountsForLayers(l.layers)
}

func (l *circleLayout) populate(g *Grid) {
	for layer, n := range l.counts {
		for c := 0; c < n; c++ {
			g.AddCell(Coords{layer, c})
		}
	}
	for layer, n := range l.counts {
		for c := 0; c < n; c++ {
			cell := g.Cell(Coords{layer, c})
			if n > 1 {
				acw := g.Cell(Coords{layer, (c + n - 1) % n})
				g.MakeNeighbours(cell, Clockwise, acw, Anticlockwise)
			}
			k := l.outerCount(layer)
			for o := 0; o < k; o++ {
				outer := g.Cell(Coords{layer + 1, c*k + o})
				g.MakeNeighbours(cell, Inwards, outer, Outwards(o))
			}
		}
	}
}

// outerCount returns how many cells of the next ring touch each cell of layer.
func (l *circleLayout) outerCount(layer int) int {
	if layer+1 >= len(l.counts) {
		return 0
	}
	return l.counts[layer+1] / l.counts[layer]
}

func (l *circleLayout) spaceRequirements() (float64, float64) {
	return 2 * float64(l.layers), 2 * float64(l.layers)
}

func (l *circleLayout) origin() (float64, float64) {
	return float64(l.layers), float64(l.layers)
}

// angles returns the start and end angle of cell c, clockwise from north.
func (l *circleLayout) angles(c Coords) (float64, float64) {
	per := 2 * math.Pi / float64(l.counts[c[0]])
	start := per * float64(c[1])
	return start, start + per
}

func (l *circleLayout) fill(s surface.Surface, c *Cell) {
	cx, cy := l.origin()
	start, end := l.angles(c.Coords)
	inner := float64(c.Coords[0])
	s.FillSegment(cx, cy, inner, inner+1, start, end)
}

func (l *circleLayout) walls(g *Grid, s surface.Surface, c *Cell) {
	cx, cy := l.origin()
	layer := c.Coords[0]
	start, end := l.angles(c.Coords)
	inner, outer := float64(layer), float64(layer+1)

	if layer > 0 {
		if g.hasWall(c, Anticlockwise) {
			x1, y1 := surface.PolarToXY(cx, cy, inner, start)
			x2, y2 := surface.PolarToXY(cx, cy, outer, start)
			s.Line(x1, y1, x2, y2)
		}
		if g.hasWall(c, Clockwise) {
			x1, y1 := surface.PolarToXY(cx, cy, inner, end)
			x2, y2 := surface.PolarToXY(cx, cy, outer, end)
			s.Line(x1, y1, x2, y2)
		}
		if g.hasWall(c, Inwards) {
			s.Arc(cx, cy, inner, start, end, false)
		}
	}

	if isOpening(c, Outwards(0)) {
		return
	}
	k := l.outerCount(layer)
	if k == 0 {
		s.Arc(cx, cy, outer, start, end, false)
		return
	}
	span := (end - start) / float64(k)
	for o := 0; o < k; o++ {
		if g.hasWall(c, Outwards(o)) {
			a := start + float64(o)*span
			s.Arc(cx, cy, outer, a, a+span, false)
		}
	}
}

func (l *circleLayout) centre(c Coords) (float64, float64) {
	cx, cy := l.origin()
	if c[0] == 0 {
		return cx, cy
	}
	start, end := l.angles(c)
	return surface.PolarToXY(cx, cy, float64(c[0])+0.5, midPoint(start, end))
}

func (l *circleLayout) locate(x, y float64) (Coords, bool) {
	cx, cy := l.origin()
	dx, dy := x-cx, y-cy
	layer := int(math.Floor(math.Hypot(dx, dy)))
	if layer < 0 || layer >= len(l.counts) {
		return Coords{}, false
	}
	per := 2 * math.Pi / float64(l.counts[layer])
	angle := math.Mod(math.Atan2(dy, dx)+2.5*math.Pi, 2*math.Pi)
	return Coords{layer, int(math.Floor(angle / per))}, true
}

func (l *circleLayout) closestDirection(c Coords, ox, oy, px, py float64) Direction {
	const quarter = math.Pi / 4
	start, end := l.angles(c)
	rel := math.Mod(4*math.Pi+angleFromNorth(ox, oy, px, py)-midPoint(start, end), 2*math.Pi)
	switch {
	case rel > quarter && rel <= 3*quarter:
		return Clockwise
	case rel > 3*quarter && rel <= 5*quarter:
		return Inwards
	case rel > 5*quarter && rel <= 7*quarter:
		return Anticlockwise
	}
	k := l.outerCount(c[0])
	if k <= 1 {
		return Outwards(0)
	}
	dev := rel
	if dev > math.Pi {
		dev -= 2 * math.Pi
	}
	i := int(math.Floor((dev + quarter) / (2 * quarter) * float64(k)))
	return Outwards(max(0, min(i, k-1)))
}

func (l *circleLayout) exits(g *Grid, _ ExitConfig) (start, end *Cell, startDir, endDir Direction) {
	end = g.Cell(Coords{0, 0})
	if end == nil {
		lo, _ := g.bounds(0)
		end = g.RandomCell(func(c *Cell) bool { return c.Coords[0] == lo })
	}
	_, hi := g.bounds(0)
	start = g.RandomCell(func(c *Cell) bool { return c != end && c.Coords[0] == hi })
	if start == nil {
		start = g.RandomCell(func(c *Cell) bool { return c != end })
	}
	return start, end, l.opening(g, start), ""
}

// opening is the outward side of a cell on the rim, or "" for inner cells.
func (l *circleLayout) opening(g *Grid, c *Cell) Direction {
	for o := 0; o < l.outerCount(c.Coords[0]); o++ {
		if n, ok := c.neighbours[Outwards(o)]; ok && g.cells[n] != nil {
			return ""
		}
	}
	return Outwards(0)
}

package grid

import (
	"math"

	"github.com/katalvlaran/lvmaze/surface"
)

var (
	sin60 = math.Sin(math.Pi / 3)
	cos60 = math.Cos(math.Pi / 3)
)

func midPoint(a, b float64) float64 { return (a + b) / 2 }

func centroid(points ...surface.Point) (float64, float64) {
	var x, y float64
	for _, p := range points {
		x += p.X
		y += p.Y
	}
	n := float64(len(points))
	return x / n, y / n
}

// angleFromNorth returns the clockwise angle in (-π, π] from north of the
// point (px, py) as seen from (ox, oy), both in surface coordinates with
// y growing downwards.
func angleFromNorth(ox, oy, px, py float64) float64 {
	angle := math.Atan2(oy-py, px-ox)
	t := math.Pi/2 - angle
	if t <= math.Pi {
		return t
	}
	return -(2*math.Pi - t)
}

func line(s surface.Surface, a, b surface.Point) {
	s.Line(a.X, a.Y, b.X, b.Y)
}

package surface

import "math"

// globalLineWidthAdjustment is the line width, as a fraction of one
// logical unit, for a line-width adjustment of 1.
const globalLineWidthAdjustment = 0.1

// Point is a position in logical units.
type Point struct {
	X, Y float64
}

// ClickEvent is a pointer click on a surface.
// X and Y are logical units; RawX and RawY are the pixel position as clicked.
type ClickEvent struct {
	X, Y       float64
	RawX, RawY float64
	Shift, Alt bool
}

// Surface is the drawing target a grid renders to.
type Surface interface {
	// Clear erases everything and paints the background.
	Clear()
	// SetSpaceRequirements maps a logical extent of requiredWidth by
	// requiredHeight onto the surface. lineWidthAdjustment scales the
	// stroke width; values <= 0 mean 1.
	SetSpaceRequirements(requiredWidth, requiredHeight, lineWidthAdjustment float64)
	// SetColour selects the stroke and fill colour for later calls.
	SetColour(colour string)
	Line(x1, y1, x2, y2 float64)
	// Arc strokes (or, with fill, fills the chord region of) the arc of
	// radius r from startAngle to endAngle.
	Arc(cx, cy, r, startAngle, endAngle float64, fill bool)
	FillPolygon(points ...Point)
	// FillSegment fills the annulus segment between innerR and outerR.
	FillSegment(cx, cy, innerR, outerR, startAngle, endAngle float64)
	// ConvertCoords maps logical units to surface (pixel) coordinates.
	ConvertCoords(x, y float64) (float64, float64)
	// On registers a click handler.
	On(handler func(ClickEvent))
	// Dispose drops all handlers and held resources. It is idempotent.
	Dispose()
}

// viewport holds the logical→pixel transform shared by all implementations.
type viewport struct {
	width, height float64
	magnification float64
	xOffset       float64
	yOffset       float64
	lineWidth     float64
}

func newViewport(width, height float64) viewport {
	return viewport{width: width, height: height, magnification: 1, lineWidth: 1}
}

func (v *viewport) setSpaceRequirements(requiredWidth, requiredHeight, adjustment float64) {
	if requiredWidth <= 0 || requiredHeight <= 0 {
		return
	}
	if adjustment <= 0 {
		adjustment = 1
	}
	vertical := v.height * globalLineWidthAdjustment * adjustment / requiredHeight
	horizontal := v.width * globalLineWidthAdjustment * adjustment / requiredWidth
	v.lineWidth = math.Min(vertical, horizontal)
	v.magnification = math.Min(
		(v.width-v.lineWidth)/requiredWidth,
		(v.height-v.lineWidth)/requiredHeight,
	)
	v.xOffset = v.lineWidth / 2
	v.yOffset = v.lineWidth / 2
}

func (v *viewport) x(x float64) float64 { return v.xOffset + x*v.magnification }

func (v *viewport) y(y float64) float64 { return v.yOffset + y*v.magnification }

func (v *viewport) distance(d float64) float64 { return d * v.magnification }

func (v *viewport) invert(px, py float64) (float64, float64) {
	return (px - v.xOffset) / v.magnification, (py - v.yOffset) / v.magnification
}

// LineWidth reports the stroke width in pixels chosen by the last
// SetSpaceRequirements call.
func (v *viewport) LineWidth() float64 { return v.lineWidth }

// PolarToXY returns the point at distance d and angle (clockwise from
// north) around (cx, cy).
func PolarToXY(cx, cy, d, angle float64) (float64, float64) {
	return cx + d*math.Sin(angle), cy - d*math.Cos(angle)
}

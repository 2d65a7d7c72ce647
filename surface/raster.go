package surface

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// arcStep is the largest angle, in radians, covered by one straight
// segment when arcs are flattened.
const arcStep = math.Pi / 90

// capSides is the number of sides used for round line caps.
const capSides = 16

// Raster is a Surface that paints into an *image.RGBA.
type Raster struct {
	viewport
	img        *image.RGBA
	z          *vector.Rasterizer
	background color.RGBA
	colour     color.RGBA
	clicks     Emitter[ClickEvent]
}

// NewRaster returns a width×height bitmap surface whose Clear paints background.
func NewRaster(width, height int, background string) *Raster {
	bg, _ := ParseColour(background)
	return &Raster{
		viewport:   newViewport(float64(width), float64(height)),
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		z:          vector.NewRasterizer(width, height),
		background: bg,
		colour:     color.RGBA{A: 0xff},
	}
}

// Image returns the backing bitmap.
func (r *Raster) Image() *image.RGBA { return r.img }

func (r *Raster) Clear() {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(r.background), image.Point{}, draw.Src)
}

func (r *Raster) SetSpaceRequirements(requiredWidth, requiredHeight, lineWidthAdjustment float64) {
	r.setSpaceRequirements(requiredWidth, requiredHeight, lineWidthAdjustment)
}

func (r *Raster) SetColour(colour string) {
	r.colour, _ = ParseColour(colour)
}

// fill paints the closed polygon given in pixel coordinates.
func (r *Raster) fill(pixels []Point) {
	if len(pixels) < 3 {
		return
	}
	b := r.img.Bounds()
	r.z.Reset(b.Dx(), b.Dy())
	r.z.MoveTo(float32(pixels[0].X), float32(pixels[0].Y))
	for _, p := range pixels[1:] {
		r.z.LineTo(float32(p.X), float32(p.Y))
	}
	r.z.ClosePath()
	r.z.Draw(r.img, b, image.NewUniform(r.colour), image.Point{})
}

func (r *Raster) disc(px, py, radius float64) {
	pts := make([]Point, capSides)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / capSides
		pts[i] = Point{X: px + radius*math.Cos(a), Y: py + radius*math.Sin(a)}
	}
	r.fill(pts)
}

// stroke draws a pixel-space segment with round caps.
func (r *Raster) stroke(x1, y1, x2, y2 float64) {
	half := r.lineWidth / 2
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length > 0 {
		nx, ny := -dy/length*half, dx/length*half
		r.fill([]Point{{x1 + nx, y1 + ny}, {x2 + nx, y2 + ny}, {x2 - nx, y2 - ny}, {x1 - nx, y1 - ny}})
	}
	r.disc(x1, y1, half)
	r.disc(x2, y2, half)
}

func (r *Raster) Line(x1, y1, x2, y2 float64) {
	r.stroke(r.x(x1), r.y(y1), r.x(x2), r.y(y2))
}

// arcPoints flattens an arc into pixel-space points, start to end.
func (r *Raster) arcPoints(cx, cy, radius, startAngle, endAngle float64) []Point {
	steps := int(math.Ceil(math.Abs(endAngle-startAngle) / arcStep))
	if steps < 1 {
		steps = 1
	}
	pts := make([]Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		a := startAngle + (endAngle-startAngle)*float64(i)/float64(steps)
		x, y := PolarToXY(cx, cy, radius, a)
		pts = append(pts, Point{X: r.x(x), Y: r.y(y)})
	}
	return pts
}

func (r *Raster) Arc(cx, cy, radius, startAngle, endAngle float64, fill bool) {
	pts := r.arcPoints(cx, cy, radius, startAngle, endAngle)
	if fill {
		r.fill(pts)
		return
	}
	for i := 1; i < len(pts); i++ {
		r.stroke(pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y)
	}
}

func (r *Raster) FillPolygon(points ...Point) {
	pixels := make([]Point, len(points))
	for i, p := range points {
		pixels[i] = Point{X: r.x(p.X), Y: r.y(p.Y)}
	}
	r.fill(pixels)
}

func (r *Raster) FillSegment(cx, cy, innerR, outerR, startAngle, endAngle float64) {
	outer := r.arcPoints(cx, cy, outerR, startAngle, endAngle)
	if innerR <= 0 {
		r.fill(append(outer, Point{X: r.x(cx), Y: r.y(cy)}))
		return
	}
	inner := r.arcPoints(cx, cy, innerR, endAngle, startAngle)
	r.fill(append(outer, inner...))
}

func (r *Raster) ConvertCoords(x, y float64) (float64, float64) {
	return r.x(x), r.y(y)
}

func (r *Raster) On(handler func(ClickEvent)) { r.clicks.On(handler) }

// Click simulates a pointer click at pixel position (rawX, rawY).
func (r *Raster) Click(rawX, rawY float64, shift, alt bool) {
	x, y := r.invert(rawX, rawY)
	r.clicks.Emit(ClickEvent{X: x, Y: y, RawX: rawX, RawY: rawY, Shift: shift, Alt: alt})
}

func (r *Raster) Dispose() { r.clicks.Off() }

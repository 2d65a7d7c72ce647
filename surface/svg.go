package surface

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

const svgNamespace = "http://www.w3.org/2000/svg"

// SVG is a Surface that builds an SVG document in memory.
type SVG struct {
	viewport
	background string
	colour     string
	elements   []string
	clicks     Emitter[ClickEvent]
}

// NewSVG returns an SVG surface of width×height pixels whose Clear paints background.
func NewSVG(width, height int, background string) *SVG {
	return &SVG{
		viewport:   newViewport(float64(width), float64(height)),
		background: background,
		colour:     "black",
	}
}

func num(f float64) string {
	return strconv.FormatFloat(math.Round(f*1000)/1000, 'f', -1, 64)
}

func (s *SVG) add(format string, args ...any) {
	s.elements = append(s.elements, fmt.Sprintf(format, args...))
}

func (s *SVG) Clear() {
	s.elements = s.elements[:0]
	s.add(`<rect width="100%%" height="100%%" fill="%s"/>`, s.background)
}

func (s *SVG) SetSpaceRequirements(requiredWidth, requiredHeight, lineWidthAdjustment float64) {
	s.setSpaceRequirements(requiredWidth, requiredHeight, lineWidthAdjustment)
}

func (s *SVG) SetColour(colour string) { s.colour = colour }

func (s *SVG) Line(x1, y1, x2, y2 float64) {
	s.add(`<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s" stroke-linecap="round"/>`,
		num(s.x(x1)), num(s.y(y1)), num(s.x(x2)), num(s.y(y2)), s.colour, num(s.lineWidth))
}

func (s *SVG) FillPolygon(points ...Point) {
	if len(points) == 0 {
		return
	}
	pairs := make([]string, len(points))
	for i, p := range points {
		pairs[i] = num(s.x(p.X)) + "," + num(s.y(p.Y))
	}
	s.add(`<polygon points="%s" fill="%s"/>`, strings.Join(pairs, " "), s.colour)
}

func (s *SVG) polar(cx, cy, d, angle float64) (string, string) {
	x, y := PolarToXY(cx, cy, d, angle)
	return num(s.x(x)), num(s.y(y))
}

func largeArc(startAngle, endAngle float64) string {
	if endAngle-startAngle > math.Pi {
		return "1"
	}
	return "0"
}

func (s *SVG) FillSegment(cx, cy, innerR, outerR, startAngle, endAngle float64) {
	if endAngle-startAngle >= 2*math.Pi {
		if innerR == 0 {
			s.add(`<circle cx="%s" cy="%s" r="%s" fill="%s"/>`,
				num(s.x(cx)), num(s.y(cy)), num(s.distance(outerR)), s.colour)
			return
		}
		// full ring: two circles filled with the even-odd rule
		outer, inner := num(s.distance(outerR)), num(s.distance(innerR))
		x, y := s.x(cx), s.y(cy)
		s.add(`<path fill-rule="evenodd" fill="%s" d="M %s %s a %s %s 0 1 0 %s 0 a %s %s 0 1 0 -%s 0 M %s %s a %s %s 0 1 0 %s 0 a %s %s 0 1 0 -%s 0"/>`,
			s.colour,
			num(x-s.distance(outerR)), num(y), outer, outer, num(2*s.distance(outerR)), outer, outer, num(2*s.distance(outerR)),
			num(x-s.distance(innerR)), num(y), inner, inner, num(2*s.distance(innerR)), inner, inner, num(2*s.distance(innerR)))
		return
	}
	isx, isy := s.polar(cx, cy, innerR, startAngle)
	iex, iey := s.polar(cx, cy, innerR, endAngle)
	osx, osy := s.polar(cx, cy, outerR, startAngle)
	oex, oey := s.polar(cx, cy, outerR, endAngle)
	large := largeArc(startAngle, endAngle)
	s.add(`<path fill="%s" d="M %s %s L %s %s A %s %s 0 %s 1 %s %s L %s %s A %s %s 0 %s 0 %s %s Z"/>`,
		s.colour,
		isx, isy, osx, osy,
		num(s.distance(outerR)), num(s.distance(outerR)), large, oex, oey,
		iex, iey,
		num(s.distance(innerR)), num(s.distance(innerR)), large, isx, isy)
}

func (s *SVG) Arc(cx, cy, r, startAngle, endAngle float64, fill bool) {
	if fill && endAngle-startAngle >= 2*math.Pi {
		s.add(`<circle cx="%s" cy="%s" r="%s" fill="%s" stroke="none"/>`,
			num(s.x(cx)), num(s.y(cy)), num(s.distance(r)), s.colour)
		return
	}
	sx, sy := s.polar(cx, cy, r, startAngle)
	ex, ey := s.polar(cx, cy, r, endAngle)
	radius := num(s.distance(r))
	d := fmt.Sprintf("M %s %s A %s %s 0 %s 1 %s %s", sx, sy, radius, radius, largeArc(startAngle, endAngle), ex, ey)
	if fill {
		s.add(`<path d="%s Z" fill="%s" stroke="none"/>`, d, s.colour)
		return
	}
	s.add(`<path d="%s" fill="none" stroke="%s" stroke-width="%s" stroke-linecap="round"/>`, d, s.colour, num(s.lineWidth))
}

func (s *SVG) ConvertCoords(x, y float64) (float64, float64) {
	return s.x(x), s.y(y)
}

func (s *SVG) On(handler func(ClickEvent)) { s.clicks.On(handler) }

// Click simulates a pointer click at pixel position (rawX, rawY).
func (s *SVG) Click(rawX, rawY float64, shift, alt bool) {
	x, y := s.invert(rawX, rawY)
	s.clicks.Emit(ClickEvent{X: x, Y: y, RawX: rawX, RawY: rawY, Shift: shift, Alt: alt})
}

func (s *SVG) Dispose() { s.clicks.Off() }

// String returns the complete SVG document.
func (s *SVG) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="%s" width="%s" height="%s" viewBox="0 0 %s %s">`,
		svgNamespace, num(s.width), num(s.height), num(s.width), num(s.height))
	for _, el := range s.elements {
		b.WriteString(el)
	}
	b.WriteString("</svg>")
	return b.String()
}

// WriteTo writes the SVG document to w.
func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}

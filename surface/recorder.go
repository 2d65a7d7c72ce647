package surface

// Op names recorded by Recorder.
const (
	OpClear                = "clear"
	OpSetSpaceRequirements = "setSpaceRequirements"
	OpSetColour            = "setColour"
	OpLine                 = "line"
	OpArc                  = "arc"
	OpFillPolygon          = "fillPolygon"
	OpFillSegment          = "fillSegment"
)

// Op is one recorded drawing call, in logical units.
type Op struct {
	Name   string
	Args   []float64
	Points []Point
	Colour string // colour active when the call was made
	Fill   bool
}

// Recorder is a Surface that stores the instruction stream instead of drawing.
type Recorder struct {
	viewport
	colour   string
	ops      []Op
	clicks   Emitter[ClickEvent]
	disposed bool
}

// NewRecorder returns a Recorder mapping onto a width×height pixel area.
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{viewport: newViewport(width, height)}
}

func (r *Recorder) record(op Op) {
	op.Colour = r.colour
	r.ops = append(r.ops, op)
}

// Clear drops the ops recorded so far and records a clear.
func (r *Recorder) Clear() {
	r.ops = r.ops[:0]
	r.record(Op{Name: OpClear})
}

func (r *Recorder) SetSpaceRequirements(requiredWidth, requiredHeight, lineWidthAdjustment float64) {
	r.setSpaceRequirements(requiredWidth, requiredHeight, lineWidthAdjustment)
	r.record(Op{Name: OpSetSpaceRequirements, Args: []float64{requiredWidth, requiredHeight, lineWidthAdjustment}})
}

func (r *Recorder) SetColour(colour string) {
	r.colour = colour
	r.record(Op{Name: OpSetColour})
}

func (r *Recorder) Line(x1, y1, x2, y2 float64) {
	r.record(Op{Name: OpLine, Args: []float64{x1, y1, x2, y2}})
}

func (r *Recorder) Arc(cx, cy, radius, startAngle, endAngle float64, fill bool) {
	r.record(Op{Name: OpArc, Args: []float64{cx, cy, radius, startAngle, endAngle}, Fill: fill})
}

func (r *Recorder) FillPolygon(points ...Point) {
	r.record(Op{Name: OpFillPolygon, Points: append([]Point(nil), points...), Fill: true})
}

func (r *Recorder) FillSegment(cx, cy, innerR, outerR, startAngle, endAngle float64) {
	r.record(Op{Name: OpFillSegment, Args: []float64{cx, cy, innerR, outerR, startAngle, endAngle}, Fill: true})
}

func (r *Recorder) ConvertCoords(x, y float64) (float64, float64) {
	return r.x(x), r.y(y)
}

func (r *Recorder) On(handler func(ClickEvent)) {
	r.clicks.On(handler)
}

// Click simulates a pointer click at pixel position (rawX, rawY).
func (r *Recorder) Click(rawX, rawY float64, shift, alt bool) {
	x, y := r.invert(rawX, rawY)
	r.clicks.Emit(ClickEvent{X: x, Y: y, RawX: rawX, RawY: rawY, Shift: shift, Alt: alt})
}

func (r *Recorder) Dispose() {
	r.clicks.Off()
	r.disposed = true
}

// Disposed reports whether Dispose has been called.
func (r *Recorder) Disposed() bool { return r.disposed }

// Handlers reports the number of registered click handlers.
func (r *Recorder) Handlers() int { return r.clicks.Len() }

// Ops returns the recorded instruction stream.
func (r *Recorder) Ops() []Op { return r.ops }

// Count returns how many ops named name were recorded.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, op := range r.ops {
		if op.Name == name {
			n++
		}
	}
	return n
}

// Filter returns the ops named name, in order.
func (r *Recorder) Filter(name string) []Op {
	var out []Op
	for _, op := range r.ops {
		if op.Name == name {
			out = append(out, op)
		}
	}
	return out
}

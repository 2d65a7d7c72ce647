package grid

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvmaze/random"
	"github.com/katalvlaran/lvmaze/surface"
)

// Grid is the cell table of a maze plus its shape layout and surface.
type Grid struct {
	cfg    Config
	layout layout

	cells map[Coords]*Cell
	order []Coords // creation order

	clicks      surface.Emitter[ClickEvent]
	initialised bool
	disposed    bool
}

// New returns an empty grid of the given shape. Call Initialise to populate it.
//
// Width and Height are required for the planar shapes, Layers for the circle.
// When cfg.Surface is set the grid subscribes to its clicks.
func New(shape Shape, cfg Config) (*Grid, error) {
	var l layout
	switch shape {
	case ShapeSquare:
		l = &squareLayout{}
	case ShapeTriangle:
		l = &triangleLayout{}
	case ShapeHexagon:
		l = &hexagonLayout{}
	case ShapeCircle:
		l = &circleLayout{}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, shape)
	}

	if shape == ShapeCircle {
		if cfg.Layers <= 0 {
			return nil, fmt.Errorf("%w: layers=%d", ErrInvalidDimensions, cfg.Layers)
		}
	} else if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: width=%d height=%d", ErrInvalidDimensions, cfg.Width, cfg.Height)
	}

	cfg.applyDefaults()
	g := &Grid{
		cfg:    cfg,
		layout: l,
		cells:  make(map[Coords]*Cell),
	}
	l.init(g)
	if cfg.Surface != nil {
		cfg.Surface.On(g.handleClick)
	}
	return g, nil
}

// NewSquare returns an empty square grid.
func NewSquare(cfg Config) (*Grid, error) { return New(ShapeSquare, cfg) }

// NewTriangular returns an empty triangular grid.
func NewTriangular(cfg Config) (*Grid, error) { return New(ShapeTriangle, cfg) }

// NewHexagonal returns an empty hexagonal grid.
func NewHexagonal(cfg Config) (*Grid, error) { return New(ShapeHexagon, cfg) }

// NewCircular returns an empty circular grid.
func NewCircular(cfg Config) (*Grid, error) { return New(ShapeCircle, cfg) }

// Shape reports the grid topology.
func (g *Grid) Shape() Shape { return g.layout.shape() }

// Config returns the grid configuration with defaults applied.
func (g *Grid) Config() Config { return g.cfg }

// Random returns the grid's random source.
func (g *Grid) Random() *random.Source { return g.cfg.Random }

// Surface returns the surface owned by the grid, or nil.
func (g *Grid) Surface() surface.Surface { return g.cfg.Surface }

// AttachSurface binds s as the grid's surface and subscribes to its
// clicks. It panics if a surface is already bound.
func (g *Grid) AttachSurface(s surface.Surface) {
	if g.cfg.Surface != nil {
		panic("grid: surface already attached")
	}
	if s == nil {
		return
	}
	g.cfg.Surface = s
	s.On(g.handleClick)
}

// Initialise populates every cell of the shape and wires adjacency.
// It panics when called twice.
func (g *Grid) Initialise() {
	if g.initialised {
		panic("grid: Initialise called twice")
	}
	g.initialised = true
	g.layout.populate(g)
}

// AddCell creates the cell at c. It panics if the cell already exists.
func (g *Grid) AddCell(c Coords) *Cell {
	if _, ok := g.cells[c]; ok {
		panic(fmt.Sprintf("grid: cell %v already exists", c))
	}
	cell := newCell(c)
	g.cells[c] = cell
	g.order = append(g.order, c)
	return cell
}

// RemoveCell severs c from its neighbours and deletes it.
func (g *Grid) RemoveCell(c Coords) error {
	cell, ok := g.cells[c]
	if !ok {
		return fmt.Errorf("%w: %v", ErrCellNotFound, c)
	}
	for _, d := range cell.order {
		if n, ok := g.cells[cell.neighbours[d]]; ok {
			n.dropNeighbour(c)
		}
	}
	delete(g.cells, c)
	g.order = slices.DeleteFunc(g.order, func(o Coords) bool { return o == c })
	return nil
}

// MakeNeighbours records a and b as adjacent: a's slot dirB points at b
// and b's slot dirA points at a. dirA is the direction of a as seen from b.
// It panics on identical cells or an occupied slot.
func (g *Grid) MakeNeighbours(a *Cell, dirA Direction, b *Cell, dirB Direction) {
	if a == nil || b == nil {
		panic("grid: MakeNeighbours with a nil cell")
	}
	if a.Coords == b.Coords {
		panic(fmt.Sprintf("grid: cell %v cannot neighbour itself", a.Coords))
	}
	if _, ok := a.neighbours[dirB]; ok {
		panic(fmt.Sprintf("grid: cell %v already has a neighbour in direction %q", a.Coords, dirB))
	}
	if _, ok := b.neighbours[dirA]; ok {
		panic(fmt.Sprintf("grid: cell %v already has a neighbour in direction %q", b.Coords, dirA))
	}
	a.setNeighbour(dirB, b.Coords)
	b.setNeighbour(dirA, a.Coords)
}

// Link carves a passage between a and b. It panics unless they are
// distinct, unlinked, mutual neighbours.
func (g *Grid) Link(a, b *Cell) {
	g.assertNeighbours(a, b)
	if a.IsLinkedTo(b.Coords) {
		panic(fmt.Sprintf("grid: cells %v and %v are already linked", a.Coords, b.Coords))
	}
	a.links = append(a.links, b.Coords)
	b.links = append(b.links, a.Coords)
}

// Unlink closes the passage between a and b. It panics if they are not linked.
func (g *Grid) Unlink(a, b *Cell) {
	g.assertNeighbours(a, b)
	if !a.IsLinkedTo(b.Coords) {
		panic(fmt.Sprintf("grid: cells %v and %v are not linked", a.Coords, b.Coords))
	}
	a.dropLink(b.Coords)
	b.dropLink(a.Coords)
}

func (g *Grid) assertNeighbours(a, b *Cell) {
	if a == nil || b == nil {
		panic("grid: link with a nil cell")
	}
	if a.Coords == b.Coords {
		panic(fmt.Sprintf("grid: cell %v cannot link to itself", a.Coords))
	}
	if _, ok := a.DirectionOf(b.Coords); !ok {
		panic(fmt.Sprintf("grid: cells %v and %v are not neighbours", a.Coords, b.Coords))
	}
	if _, ok := b.DirectionOf(a.Coords); !ok {
		panic(fmt.Sprintf("grid: cells %v and %v are not neighbours", b.Coords, a.Coords))
	}
}

// IsLinked reports whether a and b share a passage.
func (g *Grid) IsLinked(a, b *Cell) bool {
	return a != nil && b != nil && a.IsLinkedTo(b.Coords)
}

// Cell returns the cell at c, or nil.
func (g *Grid) Cell(c Coords) *Cell { return g.cells[c] }

// CellCount returns the number of cells.
func (g *Grid) CellCount() int { return len(g.order) }

// Cells returns the cells in creation order.
func (g *Grid) Cells() []*Cell {
	out := make([]*Cell, len(g.order))
	for i, c := range g.order {
		out[i] = g.cells[c]
	}
	return out
}

// AllCellCoords returns every cell's coordinates in creation order.
func (g *Grid) AllCellCoords() []Coords { return slices.Clone(g.order) }

// ForEachCell calls fn for each cell in creation order until fn returns false.
func (g *Grid) ForEachCell(fn func(*Cell) bool) {
	for _, c := range g.order {
		if !fn(g.cells[c]) {
			return
		}
	}
}

// RandomCell returns a uniformly chosen cell satisfying pred (nil accepts
// all), or nil when none does.
func (g *Grid) RandomCell(pred func(*Cell) bool) *Cell {
	var candidates []*Cell
	for _, c := range g.order {
		cell := g.cells[c]
		if pred == nil || pred(cell) {
			candidates = append(candidates, cell)
		}
	}
	cell, _ := random.Choice(g.cfg.Random, candidates)
	return cell
}

// Neighbours returns the existing neighbours of cell in direction order.
func (g *Grid) Neighbours(cell *Cell) []*Cell {
	out := make([]*Cell, 0, len(cell.order))
	for _, d := range cell.order {
		if n, ok := g.cells[cell.neighbours[d]]; ok {
			out = append(out, n)
		}
	}
	return out
}

// Links returns the cells linked to cell in link order.
func (g *Grid) Links(cell *Cell) []*Cell {
	out := make([]*Cell, 0, len(cell.links))
	for _, c := range cell.links {
		if n, ok := g.cells[c]; ok {
			out = append(out, n)
		}
	}
	return out
}

// DirectionTo returns the direction in which other lies from cell.
func (g *Grid) DirectionTo(cell, other *Cell) (Direction, bool) {
	if cell == nil || other == nil {
		return "", false
	}
	return cell.DirectionOf(other.Coords)
}

// ClearMetadata deletes the given keys from every cell.
func (g *Grid) ClearMetadata(keys ...string) {
	for _, c := range g.order {
		for _, k := range keys {
			delete(g.cells[c].Metadata, k)
		}
	}
}

// On subscribes handler to clicks that land on a cell of this grid.
func (g *Grid) On(handler func(ClickEvent)) { g.clicks.On(handler) }

// Dispose drops click handlers and disposes the surface. Later calls are no-ops.
func (g *Grid) Dispose() {
	if g.disposed {
		return
	}
	g.disposed = true
	g.clicks.Off()
	if g.cfg.Surface != nil {
		g.cfg.Surface.Dispose()
	}
}

func (g *Grid) handleClick(e surface.ClickEvent) {
	if g.disposed {
		return
	}
	c, ok := g.layout.locate(e.X, e.Y)
	if !ok {
		return
	}
	if _, exists := g.cells[c]; !exists {
		return
	}
	g.clicks.Emit(ClickEvent{
		Coords:    c,
		RawCoords: [2]float64{e.RawX, e.RawY},
		Shift:     e.Shift,
		Alt:       e.Alt,
	})
}

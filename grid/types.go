package grid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvmaze/random"
	"github.com/katalvlaran/lvmaze/surface"
)

// Sentinel errors for grid operations.
var (
	// ErrUnknownShape indicates New was asked for a shape it does not know.
	ErrUnknownShape = errors.New("grid: unknown cell shape")

	// ErrInvalidDimensions indicates a non-positive width, height or layer count.
	ErrInvalidDimensions = errors.New("grid: invalid dimensions")

	// ErrCellNotFound indicates coordinates that do not resolve to a cell.
	ErrCellNotFound = errors.New("grid: cell not found")

	// ErrUnreachable indicates that no linked path joins two cells.
	ErrUnreachable = errors.New("grid: no path between cells")

	// ErrTooFewCells indicates an operation that needs at least two cells.
	ErrTooFewCells = errors.New("grid: at least two cells are required")
)

// Shape selects the cell topology.
type Shape string

// Supported shapes.
const (
	ShapeSquare   Shape = "square"
	ShapeTriangle Shape = "triangle"
	ShapeHexagon  Shape = "hexagon"
	ShapeCircle   Shape = "circle"
)

// Shapes lists every supported shape.
func Shapes() []Shape {
	return []Shape{ShapeSquare, ShapeTriangle, ShapeHexagon, ShapeCircle}
}

// ExitConfig selects how PlaceExits chooses the start and end cells.
type ExitConfig string

// Exit placement policies.
const (
	ExitsVertical   ExitConfig = "vertical"
	ExitsHorizontal ExitConfig = "horizontal"
	ExitsHardest    ExitConfig = "hardest"
)

// Metadata keys written by the grid.
const (
	MetaMasked    = "masked"    // bool: render with MaskedColour
	MetaStart     = "start"     // Direction: start cell, value is the opening
	MetaEnd       = "end"       // Direction: end cell, value is the opening
	MetaPath      = "path"      // int: position on the solution path
	MetaDistance  = "distance"  // int: BFS depth from the last TagDistances origin
	MetaRawCoords = "rawCoords" // [2]float64: last rendered surface position
)

// Default colours.
const (
	MaskedColour        = "#bbbbbb"
	DefaultOpenColour   = "white"
	DefaultClosedColour = "black"
	DefaultPathColour   = "red"
)

// Coords identifies a cell: (x, y) for planar shapes, (layer, index) for circles.
type Coords [2]int

func (c Coords) String() string {
	return strconv.Itoa(c[0]) + "," + strconv.Itoa(c[1])
}

// ParseCoords parses the "x,y" form produced by Coords.String.
func ParseCoords(s string) (Coords, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Coords{}, fmt.Errorf("grid: malformed coordinates %q", s)
	}
	var c Coords
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Coords{}, fmt.Errorf("grid: malformed coordinates %q: %w", s, err)
		}
		c[i] = v
	}
	return c, nil
}

// Direction names a structural neighbour slot.
type Direction string

// Directions used by the square, triangular and hexagonal shapes.
const (
	North     Direction = "n"
	South     Direction = "s"
	East      Direction = "e"
	West      Direction = "w"
	NorthEast Direction = "ne"
	NorthWest Direction = "nw"
	SouthEast Direction = "se"
	SouthWest Direction = "sw"
)

// Directions used by the circular shape.
const (
	Clockwise     Direction = "cw"
	Anticlockwise Direction = "acw"
	Inwards       Direction = "in"
)

const outwardsPrefix = "out_"

// Outwards returns the direction of the i-th outer neighbour of a circular cell.
func Outwards(i int) Direction {
	return Direction(outwardsPrefix + strconv.Itoa(i))
}

// IsOutwards reports whether d is an Outwards direction.
func (d Direction) IsOutwards() bool {
	return strings.HasPrefix(string(d), outwardsPrefix)
}

// ClickEvent is emitted when a click on the grid's surface lands on a cell.
type ClickEvent struct {
	Coords    Coords
	RawCoords [2]float64
	Shift     bool
	Alt       bool
}

// Config carries the dimensions, colours and collaborators of a Grid.
// Zero colours and line width take the defaults; a nil Random uses
// random.New(0).
type Config struct {
	Width  int // square, triangle, hexagon
	Height int // square, triangle, hexagon
	Layers int // circle

	OpenColour   string
	ClosedColour string
	PathColour   string
	LineWidth    float64

	Exits ExitConfig

	Random  *random.Source
	Surface surface.Surface
}

func (c *Config) applyDefaults() {
	if c.OpenColour == "" {
		c.OpenColour = DefaultOpenColour
	}
	if c.ClosedColour == "" {
		c.ClosedColour = DefaultClosedColour
	}
	if c.PathColour == "" {
		c.PathColour = DefaultPathColour
	}
	if c.LineWidth <= 0 {
		c.LineWidth = 1
	}
	if c.Exits == "" {
		c.Exits = ExitsVertical
	}
	if c.Random == nil {
		c.Random = random.New(0)
	}
}

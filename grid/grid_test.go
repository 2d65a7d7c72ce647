package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/random"
)

// newGrid builds and initialises a grid, failing the test on error.
func newGrid(t *testing.T, shape grid.Shape, cfg grid.Config) *grid.Grid {
	t.Helper()
	if cfg.Random == nil {
		cfg.Random = random.New(7)
	}
	g, err := grid.New(shape, cfg)
	require.NoError(t, err)
	g.Initialise()
	return g
}

func planar(w, h int) grid.Config { return grid.Config{Width: w, Height: h} }

func at(x, y int) grid.Coords { return grid.Coords{x, y} }

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name  string
		shape grid.Shape
		cfg   grid.Config
		err   error
	}{
		{"UnknownShape", "octagon", planar(3, 3), grid.ErrUnknownShape},
		{"ZeroWidth", grid.ShapeSquare, planar(0, 3), grid.ErrInvalidDimensions},
		{"NegativeHeight", grid.ShapeHexagon, planar(3, -1), grid.ErrInvalidDimensions},
		{"ZeroLayers", grid.ShapeCircle, grid.Config{Width: 3, Height: 3}, grid.ErrInvalidDimensions},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.shape, tc.cfg)
			assert.True(t, errors.Is(err, tc.err), "got %v; want %v", err, tc.err)
		})
	}
}

func TestNew_Defaults(t *testing.T) {
	g, err := grid.NewSquare(planar(2, 2))
	require.NoError(t, err)
	cfg := g.Config()
	assert.Equal(t, grid.DefaultOpenColour, cfg.OpenColour)
	assert.Equal(t, grid.DefaultClosedColour, cfg.ClosedColour)
	assert.Equal(t, grid.DefaultPathColour, cfg.PathColour)
	assert.Equal(t, 1.0, cfg.LineWidth)
	assert.Equal(t, grid.ExitsVertical, cfg.Exits)
	assert.NotNil(t, g.Random())
	assert.Equal(t, grid.ShapeSquare, g.Shape())
	assert.Zero(t, g.CellCount(), "cells appear only after Initialise")
}

func TestInitialise_Twice(t *testing.T) {
	g := newGrid(t, grid.ShapeSquare, planar(2, 2))
	assert.Panics(t, g.Initialise)
}

func TestCellCounts(t *testing.T) {
	cases := []struct {
		name  string
		shape grid.Shape
		cfg   grid.Config
		want  int
	}{
		{"Square", grid.ShapeSquare, planar(5, 4), 20},
		{"Triangle", grid.ShapeTriangle, planar(5, 4), 20},
		{"Hexagon", grid.ShapeHexagon, planar(5, 4), 20},
		{"Circle", grid.ShapeCircle, grid.Config{Layers: 5}, 1 + 6 + 12 + 24 + 24},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := newGrid(t, tc.shape, tc.cfg)
			assert.Equal(t, tc.want, g.CellCount())
			assert.Len(t, g.AllCellCoords(), tc.want)
		})
	}
}

//----------------------------------------------------------------------------//
// Adjacency
//----------------------------------------------------------------------------//

// TestAdjacencySymmetry checks that every neighbour relation is mutual.
func TestAdjacencySymmetry(t *testing.T) {
	shapes := map[grid.Shape]grid.Config{
		grid.ShapeSquare:   planar(6, 5),
		grid.ShapeTriangle: planar(6, 5),
		grid.ShapeHexagon:  planar(6, 5),
		grid.ShapeCircle:   {Layers: 6},
	}
	for shape, cfg := range shapes {
		t.Run(string(shape), func(t *testing.T) {
			g := newGrid(t, shape, cfg)
			g.ForEachCell(func(c *grid.Cell) bool {
				for _, d := range c.Directions() {
					nc, ok := c.Neighbour(d)
					require.True(t, ok)
					n := g.Cell(nc)
					require.NotNil(t, n, "neighbour %v of %v", nc, c.Coords)
					_, back := n.DirectionOf(c.Coords)
					assert.True(t, back, "%v→%v (%s) is not mutual", c.Coords, nc, d)
				}
				return true
			})
		})
	}
}

func TestSquareNeighbours(t *testing.T) {
	g := newGrid(t, grid.ShapeSquare, planar(3, 3))
	centre := g.Cell(at(1, 1))
	assert.Equal(t, 4, centre.NeighbourCount())

	want := map[grid.Direction]grid.Coords{
		grid.North: at(1, 0), grid.South: at(1, 2), grid.East: at(2, 1), grid.West: at(0, 1),
	}
	for d, c := range want {
		got, ok := centre.Neighbour(d)
		require.True(t, ok, d)
		assert.Equal(t, c, got, d)
	}
	assert.Equal(t, 2, g.Cell(at(0, 0)).NeighbourCount())
	assert.Len(t, g.Neighbours(g.Cell(at(0, 1))), 3)
}

func TestTriangleNeighbours(t *testing.T) {
	g := newGrid(t, grid.ShapeTriangle, planar(3, 2))

	// (1,0) points up: base on the south side.
	up := g.Cell(at(1, 0))
	s, ok := up.Neighbour(grid.South)
	require.True(t, ok)
	assert.Equal(t, at(1, 1), s)
	_, ok = up.Neighbour(grid.North)
	assert.False(t, ok)

	// (1,1) points down and reaches back north.
	n, ok := g.Cell(at(1, 1)).Neighbour(grid.North)
	require.True(t, ok)
	assert.Equal(t, at(1, 0), n)

	// (0,0) points down with nothing above: only its east neighbour.
	assert.Equal(t, []grid.Direction{grid.East}, g.Cell(at(0, 0)).Directions())
}

func TestHexagonNeighbours(t *testing.T) {
	g := newGrid(t, grid.ShapeHexagon, planar(3, 3))
	c := g.Cell(at(1, 1))
	assert.Equal(t, 6, c.NeighbourCount())

	want := map[grid.Direction]grid.Coords{
		grid.East: at(2, 1), grid.West: at(0, 1),
		grid.NorthWest: at(1, 0), grid.NorthEast: at(2, 0),
		grid.SouthWest: at(1, 2), grid.SouthEast: at(2, 2),
	}
	for d, wc := range want {
		got, ok := c.Neighbour(d)
		require.True(t, ok, d)
		assert.Equal(t, wc, got, d)
	}

	// Even rows are not shifted: (1,0) reaches (0,1) to the south-west.
	sw, ok := g.Cell(at(1, 0)).Neighbour(grid.SouthWest)
	require.True(t, ok)
	assert.Equal(t, at(0, 1), sw)
}

func TestCellCountsForLayers(t *testing.T) {
	assert.Equal(t, []int{1, 6, 12, 24, 24}, grid.CellCountsForLayers(5))
	assert.Nil(t, grid.CellCountsForLayers(0))

	for layers := 1; layers <= 30; layers++ {
		counts := grid.CellCountsForLayers(layers)
		require.Len(t, counts, layers)
		assert.Equal(t, 1, counts[0])
		for l := 1; l < layers; l++ {
			assert.Zero(t, counts[l]%counts[l-1], "layers=%d ring %d", layers, l)
		}
	}
}

func TestCircleNeighbours(t *testing.T) {
	g := newGrid(t, grid.ShapeCircle, grid.Config{Layers: 3})

	centre := g.Cell(at(0, 0))
	assert.Equal(t, 6, centre.NeighbourCount())
	for o := 0; o < 6; o++ {
		c, ok := centre.Neighbour(grid.Outwards(o))
		require.True(t, ok)
		assert.Equal(t, at(1, o), c)
	}

	c := g.Cell(at(1, 0))
	want := map[grid.Direction]grid.Coords{
		grid.Clockwise:     at(1, 1),
		grid.Anticlockwise: at(1, 5),
		grid.Inwards:       at(0, 0),
		grid.Outwards(0):   at(2, 0),
		grid.Outwards(1):   at(2, 1),
	}
	for d, wc := range want {
		got, ok := c.Neighbour(d)
		require.True(t, ok, d)
		assert.Equal(t, wc, got, d)
	}
	assert.True(t, grid.Outwards(1).IsOutwards())
	assert.False(t, grid.Inwards.IsOutwards())
}

//----------------------------------------------------------------------------//
// Cell table
//----------------------------------------------------------------------------//

func TestAddCell_Duplicate(t *testing.T) {
	g := newGrid(t, grid.ShapeSquare, planar(2, 2))
	assert.Panics(t, func() { g.AddCell(at(0, 0)) })
	g.AddCell(at(5, 5))
	assert.NotNil(t, g.Cell(at(5, 5)))
}

func TestRemoveCell(t *testing.T) {
	g := newGrid(t, grid.ShapeSquare, planar(3, 3))
	g.Link(g.Cell(at(0, 1)), g.Cell(at(1, 1)))

	require.NoError(t, g.RemoveCell(at(1, 1)))
	assert.Nil(t, g.Cell(at(1, 1)))
	assert.Equal(t, 8, g.CellCount())

	west := g.Cell(at(0, 1))
	_, ok := west.Neighbour(grid.East)
	assert.False(t, ok, "neighbour slot survives removal")
	assert.Zero(t, west.LinkCount(), "link survives removal")
	g.ForEachCell(func(c *grid.Cell) bool {
		_, ok := c.DirectionOf(at(1, 1))
		assert.False(t, ok, "%v still refers to the removed cell", c.Coords)
		return true
	})

	err := g.RemoveCell(at(1, 1))
	assert.True(t, errors.Is(err, grid.ErrCellNotFound))
}

// TestRemoveCell_Idempotent checks that removing the same set in any order
// yields the same cell table.
func TestRemoveCell_Idempotent(t *testing.T) {
	mask := []grid.Coords{at(0, 0), at(2, 1), at(1, 1)}
	a := newGrid(t, grid.ShapeHexagon, planar(4, 4))
	b := newGrid(t, grid.ShapeHexagon, planar(4, 4))
	for i := range mask {
		require.NoError(t, a.RemoveCell(mask[i]))
		require.NoError(t, b.RemoveCell(mask[len(mask)-1-i]))
	}
	assert.Equal(t, a.AllCellCoords(), b.AllCellCoords())
	for _, c := range a.AllCellCoords() {
		assert.ElementsMatch(t, a.Cell(c).Directions(), b.Cell(c).Directions(), c)
	}
}

func TestLink(t *testing.T) {
	g := newGrid(t, grid.ShapeSquare, planar(3, 3))
	a, b := g.Cell(at(0, 0)), g.Cell(at(1, 0))

	g.Link(a, b)
	assert.True(t, g.IsLinked(a, b))
	assert.True(t, g.IsLinked(b, a))
	assert.Equal(t, []*grid.Cell{b}, g.Links(a))

	d, ok := g.DirectionTo(a, b)
	require.True(t, ok)
	assert.Equal(t, grid.East, d)

	assert.Panics(t, func() { g.Link(a, b) }, "double link")
	assert.Panics(t, func() { g.Link(a, a) }, "self link")
	assert.Panics(t, func() { g.Link(a, g.Cell(at(2, 2))) }, "not neighbours")

	g.Unlink(b, a)
	assert.False(t, g.IsLinked(a, b))
	assert.Panics(t, func() { g.Unlink(a, b) })
}

func TestMakeNeighbours_Assertions(t *testing.T) {
	g := newGrid(t, grid.ShapeSquare, planar(2, 1))
	a, b := g.Cell(at(0, 0)), g.Cell(at(1, 0))
	assert.Panics(t, func() { g.MakeNeighbours(a, grid.West, a, grid.East) })
	assert.Panics(t, func() { g.MakeNeighbours(a, grid.West, b, grid.East) }, "slot occupied")

	c := g.AddCell(at(0, 1))
	g.MakeNeighbours(a, grid.North, c, grid.South)
	s, ok := a.Neighbour(grid.South)
	require.True(t, ok)
	assert.Equal(t, c.Coords, s)
}

func TestRandomCell(t *testing.T) {
	g := newGrid(t, grid.ShapeSquare, planar(4, 4))
	for i := 0; i < 20; i++ {
		c := g.RandomCell(func(c *grid.Cell) bool { return c.Coords[1] == 2 })
		require.NotNil(t, c)
		assert.Equal(t, 2, c.Coords[1])
	}
	assert.NotNil(t, g.RandomCell(nil))
	assert.Nil(t, g.RandomCell(func(*grid.Cell) bool { return false }))
}

func TestClearMetadata(t *testing.T) {
	g := newGrid(t, grid.ShapeSquare, planar(2, 2))
	g.ForEachCell(func(c *grid.Cell) bool {
		c.Metadata["a"] = 1
		c.Metadata["b"] = 2
		return true
	})
	g.ClearMetadata("a")
	for _, c := range g.Cells() {
		assert.NotContains(t, c.Metadata, "a")
		assert.Contains(t, c.Metadata, "b")
	}
}

func TestForEachCell_Stops(t *testing.T) {
	g := newGrid(t, grid.ShapeSquare, planar(3, 3))
	n := 0
	g.ForEachCell(func(*grid.Cell) bool {
		n++
		return n < 4
	})
	assert.Equal(t, 4, n)
}

func TestCoords_RoundTrip(t *testing.T) {
	c, err := grid.ParseCoords("3, 12")
	require.NoError(t, err)
	assert.Equal(t, at(3, 12), c)
	assert.Equal(t, "3,12", c.String())

	for _, bad := range []string{"", "1", "1,2,3", "a,b"} {
		_, err := grid.ParseCoords(bad)
		assert.Error(t, err, bad)
	}
}

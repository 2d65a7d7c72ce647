package maze_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/surface"
)

func seed(v int64) *int64 { return &v }

func squareConfig(w, h int, alg string) maze.Config {
	return maze.Config{
		Grid:       maze.GridConfig{CellShape: grid.ShapeSquare, Width: w, Height: h},
		Algorithm:  alg,
		RandomSeed: seed(42),
		Surface:    surface.NewRecorder(200, 200),
	}
}

func quietLogger() logrus.FieldLogger {
	l, _ := logtest.NewNullLogger()
	return l
}

func linkCount(g *grid.Grid) int {
	n := 0
	for _, c := range g.Cells() {
		n += c.LinkCount()
	}
	return n / 2
}

//----------------------------------------------------------------------------//
// Validation
//----------------------------------------------------------------------------//

func TestBuild_InvalidConfig(t *testing.T) {
	rec := func() surface.Surface { return surface.NewRecorder(100, 100) }
	cases := []struct {
		name string
		cfg  maze.Config
		msg  string
	}{
		{"MissingShape", maze.Config{Algorithm: "none", Surface: rec()}, `no "grid.cellShape" property in config object`},
		{"InvalidShape", maze.Config{Grid: maze.GridConfig{CellShape: "octagon", Width: 3, Height: 3}, Algorithm: "none", Surface: rec()}, `invalid "grid.cellShape" property in config object`},
		{"MissingWidth", maze.Config{Grid: maze.GridConfig{CellShape: grid.ShapeSquare, Height: 3}, Algorithm: "none", Surface: rec()}, `missing/invalid "grid.width" property in config object`},
		{"MissingHeight", maze.Config{Grid: maze.GridConfig{CellShape: grid.ShapeHexagon, Width: 3}, Algorithm: "none", Surface: rec()}, `missing/invalid "grid.height" property in config object`},
		{"NegativeWidth", maze.Config{Grid: maze.GridConfig{CellShape: grid.ShapeTriangle, Width: -2, Height: 3}, Algorithm: "none", Surface: rec()}, `missing/invalid "grid.width" property in config object`},
		{"MissingLayers", maze.Config{Grid: maze.GridConfig{CellShape: grid.ShapeCircle}, Algorithm: "none", Surface: rec()}, `missing/invalid "grid.layers" property in config object`},
		{"MissingAlgorithm", maze.Config{Grid: maze.GridConfig{CellShape: grid.ShapeSquare, Width: 3, Height: 3}, Surface: rec()}, `missing/invalid "algorithm" property in config object`},
		{"UnknownAlgorithm", maze.Config{Grid: maze.GridConfig{CellShape: grid.ShapeSquare, Width: 3, Height: 3}, Algorithm: "growingTree", Surface: rec()}, `missing/invalid "algorithm" property in config object`},
		{"BadExitConfig", maze.Config{Grid: maze.GridConfig{CellShape: grid.ShapeSquare, Width: 3, Height: 3}, Algorithm: "none", ExitConfig: "diagonal", Surface: rec()}, `missing/invalid "exitConfig" property in config object`},
		{"NegativeLineWidth", maze.Config{Grid: maze.GridConfig{CellShape: grid.ShapeSquare, Width: 3, Height: 3}, Algorithm: "none", LineWidth: -1, Surface: rec()}, `missing/invalid "lineWidth" property in config object`},
		{"ShapeMismatch", maze.Config{Grid: maze.GridConfig{CellShape: grid.ShapeCircle, Layers: 3}, Algorithm: "binaryTree", Surface: rec()}, `does not support "circle" cells`},
		{"MaskNotAllowed", maze.Config{Grid: maze.GridConfig{CellShape: grid.ShapeSquare, Width: 3, Height: 3}, Algorithm: "sidewinder", Mask: [][2]int{{1, 1}}, Surface: rec()}, "does not support masking"},
		{"NoSurface", maze.Config{Grid: maze.GridConfig{CellShape: grid.ShapeSquare, Width: 3, Height: 3}, Algorithm: "none"}, "no drawing surface"},
		{"MaskCentre", maze.Config{Grid: maze.GridConfig{CellShape: grid.ShapeCircle, Layers: 3}, Algorithm: "wilsons", Mask: [][2]int{{0, 0}}, Surface: rec()}, "cannot remove the only cell of innermost layer"},
		{"MaskOutside", maze.Config{Grid: maze.GridConfig{CellShape: grid.ShapeSquare, Width: 3, Height: 3}, Algorithm: "kruskals", Mask: [][2]int{{7, 7}}, Surface: rec()}, "not part of the grid"},
		{"MaskTooMuch", maze.Config{Grid: maze.GridConfig{CellShape: grid.ShapeSquare, Width: 2, Height: 1}, Algorithm: "kruskals", Mask: [][2]int{{0, 0}}, Surface: rec()}, "at least 2 are required"},
		{"MaskSplits", maze.Config{Grid: maze.GridConfig{CellShape: grid.ShapeSquare, Width: 3, Height: 3}, Algorithm: "aldousBroder", Mask: [][2]int{{1, 0}, {1, 1}, {1, 2}}, Surface: rec()}, "mask splits the grid"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := maze.Build(tc.cfg, maze.WithLogger(quietLogger()))
			require.Error(t, err)
			assert.Nil(t, m)
			assert.True(t, errors.Is(err, maze.ErrInvalidConfig), err)
			assert.Contains(t, err.Error(), tc.msg)
			if r, ok := tc.cfg.Surface.(*surface.Recorder); ok {
				assert.Zero(t, r.Handlers(), "a rejected build must not keep the surface")
			}
		})
	}
}

func TestBuild_CircleCentreAllowedInOtherShapes(t *testing.T) {
	cfg := squareConfig(3, 3, "recursiveBacktrack")
	cfg.Mask = [][2]int{{0, 0}, {0, 0}}
	m, err := maze.Build(cfg, maze.WithLogger(quietLogger()))
	require.NoError(t, err)
	assert.Equal(t, 8, m.CellCount())
	assert.Nil(t, m.Cell(grid.Coords{0, 0}))
}

func TestWithLogger_Nil(t *testing.T) {
	assert.Panics(t, func() { maze.WithLogger(nil) })
}

//----------------------------------------------------------------------------//
// Build
//----------------------------------------------------------------------------//

func TestBuild_Defaults(t *testing.T) {
	m, err := maze.Build(squareConfig(4, 4, "none"), maze.WithLogger(quietLogger()))
	require.NoError(t, err)
	cfg := m.Config()
	assert.Equal(t, "white", cfg.OpenColour)
	assert.Equal(t, "black", cfg.ClosedColour)
	assert.Equal(t, "red", cfg.PathColour)
	assert.Equal(t, 1.0, cfg.LineWidth)
	assert.Equal(t, grid.ExitsVertical, cfg.Exits)
	assert.Equal(t, int64(42), m.Random().Seed())
	assert.Equal(t, "none", m.Algorithm.Name)
	assert.Equal(t, 16, m.CellCount())
}

func TestBuild_LineWidthFloor(t *testing.T) {
	cfg := squareConfig(2, 2, "none")
	cfg.LineWidth = 0.01
	m, err := maze.Build(cfg, maze.WithLogger(quietLogger()))
	require.NoError(t, err)
	assert.Equal(t, maze.MinLineWidth, m.Config().LineWidth)
}

func TestBuild_Colours(t *testing.T) {
	cfg := squareConfig(2, 2, "none")
	cfg.Grid.OpenColor, cfg.Grid.ClosedColor, cfg.Grid.PathColor = "ivory", "#123", "#00ff00"
	m, err := maze.Build(cfg, maze.WithLogger(quietLogger()))
	require.NoError(t, err)
	assert.Equal(t, "ivory", m.Config().OpenColour)
	assert.Equal(t, "#123", m.Config().ClosedColour)
	assert.Equal(t, "#00ff00", m.Config().PathColour)
}

func TestBuild_WallClockSeed(t *testing.T) {
	cfg := squareConfig(3, 3, "huntAndKill")
	cfg.RandomSeed = nil
	m, err := maze.Build(cfg, maze.WithLogger(quietLogger()))
	require.NoError(t, err)
	assert.NotZero(t, m.Random().Seed())
	require.NoError(t, m.Run.ToCompletion(context.Background()))
	assert.Equal(t, 8, linkCount(m.Grid))
}

func TestBuild_FromJSON(t *testing.T) {
	doc := `{
		"grid": {"cellShape": "hexagon", "width": 6, "height": 5, "openColor": "lavender"},
		"algorithm": "truePrims",
		"exitConfig": "hardest",
		"randomSeed": 7,
		"mask": [[2, 2], [3, 2]]
	}`
	var cfg maze.Config
	require.NoError(t, json.Unmarshal([]byte(doc), &cfg))
	cfg.Surface = surface.NewSVG(300, 300, "white")

	m, err := maze.Build(cfg, maze.WithLogger(quietLogger()))
	require.NoError(t, err)
	require.NoError(t, m.Run.ToCompletion(context.Background()))
	assert.Equal(t, 28, m.CellCount())
	assert.Equal(t, 27, linkCount(m.Grid))
	assert.Equal(t, "lavender", m.Config().OpenColour)
}

//----------------------------------------------------------------------------//
// Run
//----------------------------------------------------------------------------//

// TestBuild_Reproducible builds the same seeded maze twice.
func TestBuild_Reproducible(t *testing.T) {
	a, err := maze.Build(squareConfig(10, 10, "recursiveBacktrack"), maze.WithLogger(quietLogger()))
	require.NoError(t, err)
	b, err := maze.Build(squareConfig(10, 10, "recursiveBacktrack"), maze.WithLogger(quietLogger()))
	require.NoError(t, err)
	require.NoError(t, a.Run.ToCompletion(context.Background()))
	require.NoError(t, b.Run.ToCompletion(context.Background()))

	for _, c := range a.Cells() {
		assert.Equal(t, c.Links(), b.Cell(c.Coords).Links(), c.Coords)
	}
	as, ae := a.Exits()
	bs, be := b.Exits()
	assert.Equal(t, as.Coords, bs.Coords)
	assert.Equal(t, ae.Coords, be.Coords)
}

func TestRun_ToCompletion(t *testing.T) {
	m, err := maze.Build(squareConfig(6, 6, "wilsons"), maze.WithLogger(quietLogger()))
	require.NoError(t, err)
	assert.False(t, m.Run.Done())

	require.NoError(t, m.Run.ToCompletion(context.Background()))
	assert.True(t, m.Run.Done())
	assert.Equal(t, 35, linkCount(m.Grid))

	start, end := m.Exits()
	require.NotNil(t, start)
	require.NotNil(t, end)
	path, err := m.Solve()
	require.NoError(t, err)
	assert.Equal(t, start.Coords, path[0])
	assert.Equal(t, end.Coords, path[len(path)-1])

	steps := m.Run.Steps()
	done, err := m.Run.OneStep()
	assert.True(t, done)
	assert.NoError(t, err)
	assert.Equal(t, steps, m.Run.Steps(), "a finished run is inert")
}

func TestRun_OneStep(t *testing.T) {
	m, err := maze.Build(squareConfig(5, 5, "binaryTree"), maze.WithLogger(quietLogger()))
	require.NoError(t, err)

	calls := 0
	for {
		done, err := m.Run.OneStep()
		require.NoError(t, err)
		calls++
		if done {
			break
		}
		starts, _ := m.Exits()
		assert.Nil(t, starts, "exits appear only after the last step")
	}
	assert.Equal(t, 25, calls)
	assert.Equal(t, 24, linkCount(m.Grid))

	first, _ := m.Exits()
	require.NotNil(t, first)
	for i := 0; i < 3; i++ {
		done, err := m.Run.OneStep()
		assert.True(t, done)
		assert.NoError(t, err)
	}
	again, _ := m.Exits()
	assert.Same(t, first, again, "exits are placed once")
}

func TestRun_Cancelled(t *testing.T) {
	m, err := maze.Build(squareConfig(8, 8, "aldousBroder"), maze.WithLogger(quietLogger()))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = m.Run.ToCompletion(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.False(t, m.Run.Done())
	assert.Zero(t, m.Run.Steps())
}

func TestRun_NoneStillPlacesExits(t *testing.T) {
	cfg := squareConfig(4, 4, "none")
	cfg.ExitConfig = grid.ExitsHardest
	m, err := maze.Build(cfg, maze.WithLogger(quietLogger()))
	require.NoError(t, err)
	done, err := m.Run.OneStep()
	require.NoError(t, err)
	assert.True(t, done)
	start, end := m.Exits()
	require.NotNil(t, start)
	assert.Equal(t, 3, start.Coords[1])
	assert.Equal(t, 0, end.Coords[1])
}

func TestBuild_CircleMasked(t *testing.T) {
	cfg := maze.Config{
		Grid:       maze.GridConfig{CellShape: grid.ShapeCircle, Layers: 4},
		Algorithm:  "simplifiedPrims",
		RandomSeed: seed(3),
		Mask:       [][2]int{{1, 0}, {2, 5}},
		Surface:    surface.NewRecorder(200, 200),
	}
	m, err := maze.Build(cfg, maze.WithLogger(quietLogger()))
	require.NoError(t, err)
	require.NoError(t, m.Run.ToCompletion(context.Background()))
	assert.Equal(t, 1+6+12+24-2, m.CellCount())
	assert.Equal(t, m.CellCount()-1, linkCount(m.Grid))
}

//----------------------------------------------------------------------------//
// Logging
//----------------------------------------------------------------------------//

func TestBuild_Logging(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	cfg := squareConfig(3, 3, "kruskals")
	cfg.Mask = [][2]int{{2, 2}}
	m, err := maze.Build(cfg, maze.WithLogger(logger))
	require.NoError(t, err)

	require.Len(t, hook.Entries, 1)
	built := hook.LastEntry()
	assert.Equal(t, logrus.DebugLevel, built.Level)
	assert.Equal(t, "maze built", built.Message)
	assert.Equal(t, grid.ShapeSquare, built.Data["shape"])
	assert.Equal(t, "kruskals", built.Data["algorithm"])
	assert.Equal(t, int64(42), built.Data["seed"])
	assert.Equal(t, 8, built.Data["cells"])
	assert.Equal(t, 1, built.Data["masked"])

	require.NoError(t, m.Run.ToCompletion(context.Background()))
	carved := hook.LastEntry()
	assert.Equal(t, "maze carved", carved.Message)
	assert.Contains(t, carved.Data, "steps")
	assert.Contains(t, carved.Data, "start")
	assert.Equal(t, "kruskals", carved.Data["algorithm"])
}

func TestRender_Surface(t *testing.T) {
	cfg := squareConfig(3, 3, "recursiveBacktrack")
	rec := surface.NewRecorder(300, 300)
	cfg.Surface = rec
	m, err := maze.Build(cfg, maze.WithLogger(quietLogger()))
	require.NoError(t, err)
	require.NoError(t, m.Run.ToCompletion(context.Background()))
	m.Render(nil)

	// Each cell strokes its own sides: 36, less 2 per link, less the exits.
	assert.Equal(t, 9, rec.Count(surface.OpFillPolygon))
	assert.Equal(t, 36-2*8-2, rec.Count(surface.OpLine))

	m.Dispose()
	assert.True(t, rec.Disposed())
}

// SPDX-License-Identifier: MIT
// Package: lvmaze/maze
//
// builder.go: Build, Config → validated grid + algorithm Run handle.
//
// Order of checks (all before carving):
//   1. struct rules (Config.Validate)
//   2. algorithm exists, supports the shape, accepts a mask if given
//   3. a drawing surface is present
//   4. mask: not the circle centre, inside the grid, leaves ≥ 2 cells,
//      leaves one connected region

package maze

import (
	"math"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/lvmaze/algorithms"
	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/random"
)

// Maze is a grid bound to a carving run.
type Maze struct {
	*grid.Grid

	Algorithm algorithms.Algorithm
	Run       *Run
}

// Build validates cfg and returns a maze ready to carve. The grid takes
// ownership of cfg.Surface.
func Build(cfg Config, opts ...Option) (*Maze, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 1. Struct rules.
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// 2. Algorithm applicability.
	shape := cfg.Grid.CellShape
	alg, err := algorithms.Lookup(cfg.Algorithm)
	if err != nil {
		return nil, invalid(`missing/invalid "algorithm" property in config object`)
	}
	if !alg.Metadata.Supports(shape) {
		return nil, invalid("algorithm %q does not support %q cells", alg.Name, shape)
	}
	if len(cfg.Mask) > 0 && !alg.Metadata.Maskable {
		return nil, invalid("algorithm %q does not support masking", alg.Name)
	}

	// 3. Surface.
	if cfg.Surface == nil {
		return nil, invalid("no drawing surface in config object")
	}

	src := seededSource(cfg.RandomSeed)
	lineWidth := cfg.LineWidth
	if lineWidth == 0 {
		lineWidth = 1
	}
	lineWidth = math.Max(lineWidth, MinLineWidth)

	g, err := grid.New(shape, grid.Config{
		Width:        cfg.Grid.Width,
		Height:       cfg.Grid.Height,
		Layers:       cfg.Grid.Layers,
		OpenColour:   cfg.Grid.OpenColor,
		ClosedColour: cfg.Grid.ClosedColor,
		PathColour:   cfg.Grid.PathColor,
		LineWidth:    lineWidth,
		Exits:        cfg.ExitConfig,
		Random:       src,
	})
	if err != nil {
		return nil, invalid("%v", err)
	}
	g.Initialise()

	// 4. Mask.
	if err := applyMask(g, shape, cfg.Mask); err != nil {
		return nil, err
	}
	g.AttachSurface(cfg.Surface)

	log := o.log.WithFields(logrus.Fields{
		"shape":     shape,
		"algorithm": alg.Name,
		"seed":      src.Seed(),
	})
	log.WithFields(logrus.Fields{
		"cells":  g.CellCount(),
		"masked": len(cfg.Mask),
	}).Debug("maze built")

	return &Maze{
		Grid:      g,
		Algorithm: alg,
		Run:       newRun(g, alg.New(g, src), log),
	}, nil
}

func seededSource(seed *int64) *random.Source {
	if seed == nil {
		return random.FromTime()
	}
	return random.New(*seed)
}

// applyMask removes the masked cells and checks what remains is usable.
func applyMask(g *grid.Grid, shape grid.Shape, mask [][2]int) error {
	removed := mapset.New[grid.Coords]()
	for _, m := range mask {
		c := grid.Coords(m)
		if removed.Has(c) {
			continue
		}
		if shape == grid.ShapeCircle && c[0] == 0 {
			return invalid("cannot remove the only cell of innermost layer")
		}
		if err := g.RemoveCell(c); err != nil {
			return invalid("mask cell %v is not part of the grid", c)
		}
		removed.Put(c)
	}

	if n := g.CellCount(); n < 2 {
		return invalid("mask leaves %d cells, at least 2 are required", n)
	}
	if reached := reachable(g); reached != g.CellCount() {
		return invalid("mask splits the grid: %d of %d cells reachable", reached, g.CellCount())
	}
	return nil
}

// reachable counts the cells connected to the first cell by structural adjacency.
func reachable(g *grid.Grid) int {
	start := g.Cells()[0]
	seen := mapset.New[grid.Coords]()
	seen.Put(start.Coords)
	queue := []*grid.Cell{start}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, n := range g.Neighbours(c) {
			if !seen.Has(n.Coords) {
				seen.Put(n.Coords)
				queue = append(queue, n)
			}
		}
	}
	return seen.Size()
}

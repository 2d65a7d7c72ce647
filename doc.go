// Package lvmaze generates, renders and solves mazes on square,
// triangular, hexagonal and circular grids.
//
// What is lvmaze?
//
//	A small engine split into focused subpackages:
//		• grid/:       cells, adjacency, links, masking, rendering, exits, solving
//		• algorithms/: ten step-wise carving algorithms behind one Process interface
//		• maze/:       declarative Config → validated grid + Run handle
//		• surface/:    drawing surfaces: SVG, raster (PNG) and an op recorder
//		• random/:     seedable random source shared by every component
//		• cmd/mazegen: command-line driver
//
// Quick start:
//
//	seed := int64(7)
//	m, err := maze.Build(maze.Config{
//		Grid:       maze.GridConfig{CellShape: grid.ShapeHexagon, Width: 12, Height: 9},
//		Algorithm:  "wilsons",
//		RandomSeed: &seed,
//		Surface:    surface.NewSVG(600, 600, "white"),
//	})
//	if err != nil { ... }
//	_ = m.Run.ToCompletion(ctx)
//	_, _ = m.Solve()
//	m.Render(nil)
//
// A seeded build is reproducible: the same Config carves the same maze and
// places the same exits.
package lvmaze

// SPDX-License-Identifier: MIT

// Package maze assembles a runnable maze from a declarative Config.
//
// Build validates the configuration, seeds a random source, constructs
// the grid of the requested shape, removes masked cells and wraps the
// chosen carving algorithm in a Run handle:
//
//	m, err := maze.Build(cfg, maze.WithLogger(log))
//	if err != nil { ... }
//	if err := m.Run.ToCompletion(ctx); err != nil { ... }
//	m.Render(nil)
//
// Every configuration problem is reported before any carving starts and
// matches ErrInvalidConfig under errors.Is. With a fixed RandomSeed two
// builds of the same Config produce identical mazes.
package maze

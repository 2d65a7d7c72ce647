// Package grid models a maze as a graph of cells over one of four
// topologies: square, triangular, hexagonal and circular.
//
// What:
//
//   - Grid owns a table of Cells keyed by Coords. Each Cell records its
//     structural neighbours (Direction → Coords), the subset it is linked
//     to (carved passages), and an open Metadata bag.
//   - A shape layout, chosen once by New, enumerates coordinates, wires
//     adjacency, computes rendering geometry and maps clicks back to cells.
//   - FindPathBetween solves the maze with a breadth-first search over
//     links; PlaceExits picks start and end cells by an ExitConfig policy.
//
// Invariants:
//
//   - Adjacency is symmetric: if A has B in direction D, B has A in some
//     direction D'.
//   - A link only joins mutual structural neighbours, never a cell to
//     itself, and is present on both sides or on neither.
//   - RemoveCell severs every reference to the removed cell.
//   - Iteration order is creation order, so a seeded build is reproducible.
//
// Errors:
//
//   - ErrUnknownShape:      New called with an unsupported Shape.
//   - ErrInvalidDimensions: non-positive width, height or layers.
//   - ErrCellNotFound:      coordinates that do not resolve to a cell.
//   - ErrUnreachable:       no linked path between two cells.
//   - ErrTooFewCells:       exit placement needs at least two cells.
//
// AddCell, Link, Unlink and MakeNeighbours panic when their structural
// preconditions fail: such a call is a bug in the caller, not a runtime
// condition.
//
// Complexity:
//
//   - Initialise: O(C) for C cells. Cell lookup: O(1). RemoveCell: O(C).
//   - FindPathBetween, Distances: O(C) (a maze has O(C) links).
//
// A Grid is not safe for concurrent use.
package grid

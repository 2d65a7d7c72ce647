// Package algorithms carves passages into a grid.Grid.
//
// Every algorithm is registered under a stable name and produces a Process:
// an explicit state object whose Step performs one unit of work and
// reports whether more remains. Callers can therefore animate generation
// one step at a time or drain it in a loop:
//
//	alg, _ := algorithms.Lookup(algorithms.RecursiveBacktrack)
//	p := alg.New(g, src)
//	for p.Step() {
//	}
//
// Registered names:
//
//   - none               leaves the grid uncarved
//   - binaryTree         square and hexagon, unmasked grids only
//   - sidewinder         square, unmasked grids only
//   - aldousBroder       uniform spanning tree by random walk
//   - wilsons            uniform spanning tree by loop-erased random walk
//   - huntAndKill        random walk with row scans
//   - recursiveBacktrack depth-first search with an explicit stack
//   - kruskals           shuffled edges joined through a union-find
//   - simplifiedPrims    random frontier cell
//   - truePrims          cheapest frontier cell by random cell weights
//   - ellers             square, unmasked grids only, one row per step
//
// Every algorithm except none leaves the grid as a spanning tree of its
// cells: connected, acyclic, with CellCount()-1 links. The algorithms
// that accept masks rely on the remaining cells forming one connected
// region; a random walk over a split grid never finishes.
//
// Steps never leave a half-made link. Processes are not safe for
// concurrent use and must not outlive changes to the grid's cell table.
package algorithms

package grid

import (
	"fmt"
	"slices"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	coords Coords
	depth  int
}

// walker holds the mutable state of a breadth-first search over links.
type walker struct {
	grid    *Grid
	queue   []queueItem
	visited map[Coords]bool
	depth   map[Coords]int
	parent  map[Coords]Coords
	order   []Coords
}

func newWalker(g *Grid) *walker {
	n := g.CellCount()
	return &walker{
		grid:    g,
		queue:   make([]queueItem, 0, n),
		visited: make(map[Coords]bool, n),
		depth:   make(map[Coords]int, n),
		parent:  make(map[Coords]Coords, n),
		order:   make([]Coords, 0, n),
	}
}

// enqueue marks c visited at depth d and records its parent.
func (w *walker) enqueue(c Coords, d int, parent *Coords) {
	w.visited[c] = true
	w.depth[c] = d
	if parent != nil {
		w.parent[c] = *parent
	}
	w.queue = append(w.queue, queueItem{coords: c, depth: d})
}

// loop drains the queue, stopping early once stop is visited.
func (w *walker) loop(stop *Coords) {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.order = append(w.order, item.coords)
		if stop != nil && item.coords == *stop {
			return
		}
		cell := w.grid.cells[item.coords]
		for _, next := range cell.links {
			if w.visited[next] {
				continue
			}
			if _, ok := w.grid.cells[next]; !ok {
				continue
			}
			w.enqueue(next, item.depth+1, &item.coords)
		}
	}
}

// pathTo rebuilds the route from the root to dest, or nil if dest was not reached.
func (w *walker) pathTo(dest Coords) []Coords {
	if !w.visited[dest] {
		return nil
	}
	path := []Coords{dest}
	for cur := dest; ; {
		p, ok := w.parent[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	slices.Reverse(path)
	return path
}

// FindPathBetween returns the shortest linked route from start to end,
// inclusive. On success previous path markers are cleared and every cell
// on the route is tagged with its position under MetaPath.
func (g *Grid) FindPathBetween(start, end Coords) ([]Coords, error) {
	if g.cells[start] == nil {
		return nil, fmt.Errorf("%w: start %v", ErrCellNotFound, start)
	}
	if g.cells[end] == nil {
		return nil, fmt.Errorf("%w: end %v", ErrCellNotFound, end)
	}

	w := newWalker(g)
	w.enqueue(start, 0, nil)
	w.loop(&end)
	path := w.pathTo(end)
	if path == nil {
		return nil, fmt.Errorf("%w: %v to %v", ErrUnreachable, start, end)
	}

	g.ClearMetadata(MetaPath)
	for i, c := range path {
		g.cells[c].Metadata[MetaPath] = i
	}
	return path, nil
}

// Solve finds the path between the start and end cells placed by PlaceExits.
func (g *Grid) Solve() ([]Coords, error) {
	start, end := g.Exits()
	if start == nil || end == nil {
		return nil, fmt.Errorf("%w: exits have not been placed", ErrCellNotFound)
	}
	return g.FindPathBetween(start.Coords, end.Coords)
}

// Distances returns the link distance from the cell at from to every cell
// reachable from it.
func (g *Grid) Distances(from Coords) (map[Coords]int, error) {
	if g.cells[from] == nil {
		return nil, fmt.Errorf("%w: %v", ErrCellNotFound, from)
	}
	w := newWalker(g)
	w.enqueue(from, 0, nil)
	w.loop(nil)
	return w.depth, nil
}

// TagDistances writes each reachable cell's distance from from under
// MetaDistance, clearing previous values first.
func (g *Grid) TagDistances(from Coords) error {
	dist, err := g.Distances(from)
	if err != nil {
		return err
	}
	g.ClearMetadata(MetaDistance)
	for c, d := range dist {
		g.cells[c].Metadata[MetaDistance] = d
	}
	return nil
}

// farthest returns the reachable cell with the greatest distance, choosing
// the earliest created cell on ties.
func (g *Grid) farthest(dist map[Coords]int) (Coords, int) {
	var best Coords
	bestD := -1
	for _, c := range g.order {
		if d, ok := dist[c]; ok && d > bestD {
			best, bestD = c, d
		}
	}
	return best, bestD
}

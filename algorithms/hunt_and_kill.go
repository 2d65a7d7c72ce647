package algorithms

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/random"
)

// huntAndKill random-walks through unvisited cells; when the walk is stuck
// it scans for the first unvisited cell bordering the maze and resumes
// from there.
type huntAndKill struct {
	g       *grid.Grid
	src     *random.Source
	current *grid.Cell
	visited visitSet
	total   int
}

func newHuntAndKill(g *grid.Grid, src *random.Source) Process {
	h := &huntAndKill{g: g, src: src, visited: mapset.New[grid.Coords](), total: g.CellCount()}
	if h.current = g.RandomCell(nil); h.current != nil {
		h.visited.Put(h.current.Coords)
	}
	return h
}

func (h *huntAndKill) Step() bool {
	if h.visited.Size() >= h.total {
		return false
	}
	if next, ok := random.Choice(h.src, neighboursWhere(h.g, h.current, unvisited(h.visited))); ok {
		h.g.Link(h.current, next)
		h.visited.Put(next.Coords)
		h.current = next
		return h.visited.Size() < h.total
	}
	if !h.hunt() {
		return false
	}
	return h.visited.Size() < h.total
}

// hunt links the first unvisited cell that touches the maze and walks on from it.
func (h *huntAndKill) hunt() bool {
	found := false
	h.g.ForEachCell(func(c *grid.Cell) bool {
		if h.visited.Has(c.Coords) {
			return true
		}
		joined, ok := random.Choice(h.src, neighboursWhere(h.g, c, isVisited(h.visited)))
		if !ok {
			return true
		}
		h.g.Link(c, joined)
		h.visited.Put(c.Coords)
		h.current = c
		found = true
		return false
	})
	return found
}

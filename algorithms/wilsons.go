package algorithms

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/random"
)

// wilsons grows the maze from one seed cell by loop-erased random walks:
// a walk wanders from an outside cell until it meets the maze, erasing any
// loop it closes, and is then carved in one go. One walker move per step.
type wilsons struct {
	g      *grid.Grid
	src    *random.Source
	inMaze visitSet
	total  int

	path  []*grid.Cell
	index map[grid.Coords]int // position of each cell on path
}

func newWilsons(g *grid.Grid, src *random.Source) Process {
	w := &wilsons{
		g:      g,
		src:    src,
		inMaze: mapset.New[grid.Coords](),
		total:  g.CellCount(),
		index:  make(map[grid.Coords]int),
	}
	if seed := g.RandomCell(nil); seed != nil {
		w.inMaze.Put(seed.Coords)
	}
	return w
}

func (w *wilsons) Step() bool {
	if w.inMaze.Size() >= w.total {
		return false
	}
	if len(w.path) == 0 {
		start, _ := random.Choice(w.src, w.outside())
		w.push(start)
		return true
	}

	current := w.path[len(w.path)-1]
	next, ok := random.Choice(w.src, w.g.Neighbours(current))
	if !ok {
		return false
	}
	switch i, onPath := w.index[next.Coords]; {
	case w.inMaze.Has(next.Coords):
		w.push(next)
		w.carve()
	case onPath:
		for _, c := range w.path[i+1:] {
			delete(w.index, c.Coords)
		}
		w.path = w.path[:i+1]
	default:
		w.push(next)
	}
	return w.inMaze.Size() < w.total
}

func (w *wilsons) push(c *grid.Cell) {
	w.index[c.Coords] = len(w.path)
	w.path = append(w.path, c)
}

// carve links the walk into the maze; the last path cell is already in it.
func (w *wilsons) carve() {
	for i := 0; i+1 < len(w.path); i++ {
		w.g.Link(w.path[i], w.path[i+1])
		w.inMaze.Put(w.path[i].Coords)
	}
	w.path = w.path[:0]
	clear(w.index)
}

func (w *wilsons) outside() []*grid.Cell {
	var out []*grid.Cell
	w.g.ForEachCell(func(c *grid.Cell) bool {
		if !w.inMaze.Has(c.Coords) {
			out = append(out, c)
		}
		return true
	})
	return out
}

package algorithms

import (
	"container/heap"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/random"
)

// maxCellCost bounds the random weight given to each cell by truePrims.
const maxCellCost = 100

// simplifiedPrims grows the maze from a random cell, each step picking a
// random frontier cell and linking it to one random unvisited neighbour.
type simplifiedPrims struct {
	g       *grid.Grid
	src     *random.Source
	active  []*grid.Cell
	visited visitSet
	total   int
}

func newSimplifiedPrims(g *grid.Grid, src *random.Source) Process {
	p := &simplifiedPrims{g: g, src: src, visited: mapset.New[grid.Coords](), total: g.CellCount()}
	if start := g.RandomCell(nil); start != nil {
		p.active = append(p.active, start)
		p.visited.Put(start.Coords)
	}
	return p
}

func (p *simplifiedPrims) Step() bool {
	if len(p.active) == 0 || p.visited.Size() >= p.total {
		return false
	}
	i := p.src.Int(len(p.active))
	cell := p.active[i]
	if next, ok := random.Choice(p.src, neighboursWhere(p.g, cell, unvisited(p.visited))); ok {
		p.g.Link(cell, next)
		p.visited.Put(next.Coords)
		p.active = append(p.active, next)
	} else {
		p.active[i] = p.active[len(p.active)-1]
		p.active = p.active[:len(p.active)-1]
	}
	return len(p.active) > 0 && p.visited.Size() < p.total
}

// truePrims gives each cell a random cost and always extends the frontier
// from its cheapest cell into that cell's cheapest unvisited neighbour.
type truePrims struct {
	g        *grid.Grid
	cost     map[grid.Coords]int
	frontier *cellPQ
	visited  visitSet
	total    int
}

func newTruePrims(g *grid.Grid, src *random.Source) Process {
	p := &truePrims{
		g:        g,
		cost:     make(map[grid.Coords]int, g.CellCount()),
		frontier: &cellPQ{},
		visited:  mapset.New[grid.Coords](),
		total:    g.CellCount(),
	}
	p.frontier.cost = p.cost
	for _, c := range g.Cells() {
		p.cost[c.Coords] = src.Int(maxCellCost)
	}
	heap.Init(p.frontier)
	if start := g.RandomCell(nil); start != nil {
		heap.Push(p.frontier, start)
		p.visited.Put(start.Coords)
	}
	return p
}

func (p *truePrims) Step() bool {
	if p.frontier.Len() == 0 || p.visited.Size() >= p.total {
		return false
	}
	cell := p.frontier.cells[0]
	var best *grid.Cell
	for _, n := range neighboursWhere(p.g, cell, unvisited(p.visited)) {
		if best == nil || p.cost[n.Coords] < p.cost[best.Coords] {
			best = n
		}
	}
	if best == nil {
		heap.Pop(p.frontier)
	} else {
		p.g.Link(cell, best)
		p.visited.Put(best.Coords)
		heap.Push(p.frontier, best)
	}
	return p.frontier.Len() > 0 && p.visited.Size() < p.total
}

// cellPQ implements heap.Interface for a min-heap of cells ordered by cost.
type cellPQ struct {
	cells []*grid.Cell
	cost  map[grid.Coords]int
}

func (pq cellPQ) Len() int { return len(pq.cells) }

func (pq cellPQ) Less(i, j int) bool {
	return pq.cost[pq.cells[i].Coords] < pq.cost[pq.cells[j].Coords]
}

func (pq cellPQ) Swap(i, j int) { pq.cells[i], pq.cells[j] = pq.cells[j], pq.cells[i] }

func (pq *cellPQ) Push(x any) { pq.cells = append(pq.cells, x.(*grid.Cell)) }

func (pq *cellPQ) Pop() any {
	old := pq.cells
	n := len(old)
	c := old[n-1]
	pq.cells = old[:n-1]
	return c
}

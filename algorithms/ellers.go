package algorithms

import (
	"github.com/spakin/disjoint"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/random"
)

// ellers carves a square grid one row per step. Within a row, adjacent
// cells from different sets are joined at random; each set then sends at
// least one passage south. The last row joins every remaining set.
type ellers struct {
	g    *grid.Grid
	src  *random.Source
	rows [][]*grid.Cell
	sets map[grid.Coords]*disjoint.Element
	next int
}

func newEllers(g *grid.Grid, src *random.Source) Process {
	e := &ellers{g: g, src: src, sets: make(map[grid.Coords]*disjoint.Element, g.CellCount())}
	for _, c := range rowMajor(g) {
		if n := len(e.rows); n == 0 || e.rows[n-1][0].Coords[1] != c.Coords[1] {
			e.rows = append(e.rows, nil)
		}
		e.rows[len(e.rows)-1] = append(e.rows[len(e.rows)-1], c)
	}
	return e
}

func (e *ellers) Step() bool {
	if e.next >= len(e.rows) {
		return false
	}
	row := e.rows[e.next]
	e.next++
	last := e.next == len(e.rows)

	for _, c := range row {
		if _, ok := e.sets[c.Coords]; !ok {
			e.sets[c.Coords] = disjoint.NewElement()
		}
	}

	// Join neighbours across the row.
	for _, c := range row {
		east := neighbourIn(e.g, c, grid.East)
		if east == nil {
			continue
		}
		a, b := e.sets[c.Coords], e.sets[east.Coords]
		if a.Find() == b.Find() || !(last || e.src.Bool()) {
			continue
		}
		e.g.Link(c, east)
		disjoint.Union(a, b)
	}
	if last {
		return false
	}

	// Drop each set at least once into the next row.
	var order []*disjoint.Element
	members := make(map[*disjoint.Element][]*grid.Cell)
	for _, c := range row {
		root := e.sets[c.Coords].Find()
		if _, ok := members[root]; !ok {
			order = append(order, root)
		}
		members[root] = append(members[root], c)
	}
	for _, root := range order {
		cells := random.Shuffle(e.src, members[root])
		drops := 1 + e.src.Int(len(cells))
		for _, c := range cells[:drops] {
			south := neighbourIn(e.g, c, grid.South)
			if south == nil {
				continue
			}
			e.g.Link(c, south)
			child := disjoint.NewElement()
			disjoint.Union(e.sets[c.Coords], child)
			e.sets[south.Coords] = child
		}
	}
	return e.next < len(e.rows)
}

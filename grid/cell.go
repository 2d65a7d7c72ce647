package grid

import "slices"

// Cell is one node of the maze graph.
//
// Neighbours are structural adjacency fixed by the shape; links are the
// carved passages, always a subset of the neighbours.
type Cell struct {
	Coords   Coords
	Metadata map[string]any

	neighbours map[Direction]Coords
	order      []Direction // neighbour insertion order
	links      []Coords
}

func newCell(c Coords) *Cell {
	return &Cell{
		Coords:     c,
		Metadata:   make(map[string]any),
		neighbours: make(map[Direction]Coords),
	}
}

// Neighbour returns the coordinates of the neighbour in direction d.
func (c *Cell) Neighbour(d Direction) (Coords, bool) {
	n, ok := c.neighbours[d]
	return n, ok
}

// Directions returns the occupied neighbour directions in insertion order.
func (c *Cell) Directions() []Direction {
	return slices.Clone(c.order)
}

// NeighbourCount returns the number of structural neighbours.
func (c *Cell) NeighbourCount() int { return len(c.order) }

// Links returns the coordinates of linked cells in link order.
func (c *Cell) Links() []Coords {
	return slices.Clone(c.links)
}

// LinkCount returns the number of carved passages leaving c.
func (c *Cell) LinkCount() int { return len(c.links) }

// IsLinkedTo reports whether c has a passage to other.
func (c *Cell) IsLinkedTo(other Coords) bool {
	return slices.Contains(c.links, other)
}

// DirectionOf returns the direction in which other lies from c.
func (c *Cell) DirectionOf(other Coords) (Direction, bool) {
	for _, d := range c.order {
		if c.neighbours[d] == other {
			return d, true
		}
	}
	return "", false
}

// Masked reports whether c carries the masked marker.
func (c *Cell) Masked() bool {
	m, _ := c.Metadata[MetaMasked].(bool)
	return m
}

func (c *Cell) setNeighbour(d Direction, n Coords) {
	if _, ok := c.neighbours[d]; !ok {
		c.order = append(c.order, d)
	}
	c.neighbours[d] = n
}

// dropNeighbour removes every neighbour slot and link referring to n.
func (c *Cell) dropNeighbour(n Coords) {
	kept := c.order[:0]
	for _, d := range c.order {
		if c.neighbours[d] == n {
			delete(c.neighbours, d)
			continue
		}
		kept = append(kept, d)
	}
	c.order = kept
	c.dropLink(n)
}

func (c *Cell) dropLink(n Coords) {
	if i := slices.Index(c.links, n); i >= 0 {
		c.links = slices.Delete(c.links, i, i+1)
	}
}

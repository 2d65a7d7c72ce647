package algorithms

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/random"
)

// ErrUnknownAlgorithm indicates a name that is not registered.
var ErrUnknownAlgorithm = errors.New("algorithms: unknown algorithm")

// Registered algorithm names.
const (
	None               = "none"
	BinaryTree         = "binaryTree"
	Sidewinder         = "sidewinder"
	AldousBroder       = "aldousBroder"
	Wilsons            = "wilsons"
	HuntAndKill        = "huntAndKill"
	RecursiveBacktrack = "recursiveBacktrack"
	Kruskals           = "kruskals"
	SimplifiedPrims    = "simplifiedPrims"
	TruePrims          = "truePrims"
	Ellers             = "ellers"
)

// Process is a resumable carving run.
type Process interface {
	// Step performs one unit of work and reports whether more remains.
	// Once it returns false, further calls do nothing and return false.
	Step() bool
}

// Metadata describes where an algorithm applies.
type Metadata struct {
	Description string
	Maskable    bool
	Shapes      []grid.Shape
}

// Supports reports whether the algorithm can carve grids of shape s.
func (m Metadata) Supports(s grid.Shape) bool {
	return slices.Contains(m.Shapes, s)
}

// Algorithm is a registered generator.
type Algorithm struct {
	Name     string
	Metadata Metadata
	New      func(g *grid.Grid, src *random.Source) Process
}

var allShapes = []grid.Shape{grid.ShapeSquare, grid.ShapeTriangle, grid.ShapeHexagon, grid.ShapeCircle}

var registry = []Algorithm{
	{None, Metadata{"Grid", true, allShapes}, newNone},
	{BinaryTree, Metadata{"Binary Tree", false, []grid.Shape{grid.ShapeSquare, grid.ShapeHexagon}}, newBinaryTree},
	{Sidewinder, Metadata{"Sidewinder", false, []grid.Shape{grid.ShapeSquare}}, newSidewinder},
	{AldousBroder, Metadata{"Aldous Broder", true, allShapes}, newAldousBroder},
	{Wilsons, Metadata{"Wilson's", true, allShapes}, newWilsons},
	{HuntAndKill, Metadata{"Hunt and Kill", true, allShapes}, newHuntAndKill},
	{RecursiveBacktrack, Metadata{"Recursive Backtrack", true, allShapes}, newRecursiveBacktrack},
	{Kruskals, Metadata{"Kruskal's", true, allShapes}, newKruskals},
	{SimplifiedPrims, Metadata{"Simplified Prim's", true, allShapes}, newSimplifiedPrims},
	{TruePrims, Metadata{"True Prim's", true, allShapes}, newTruePrims},
	{Ellers, Metadata{"Eller's", false, []grid.Shape{grid.ShapeSquare}}, newEllers},
}

// Lookup returns the algorithm registered under name.
func Lookup(name string) (Algorithm, error) {
	for _, a := range registry {
		if a.Name == name {
			return a, nil
		}
	}
	return Algorithm{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Names lists the registered names in registration order.
func Names() []string {
	out := make([]string, len(registry))
	for i, a := range registry {
		out[i] = a.Name
	}
	return out
}

// Drain steps p until it reports no more work and returns the step count.
func Drain(p Process) int {
	n := 1
	for p.Step() {
		n++
	}
	return n
}

type none struct{}

func newNone(*grid.Grid, *random.Source) Process { return none{} }

func (none) Step() bool { return false }

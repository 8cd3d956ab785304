package hyperedge

import (
	"github.com/katalvlaran/avoidroute/geom"
	"github.com/katalvlaran/avoidroute/vgraph"
)

// TreeEdge is one edge of a HyperEdgeTree, carrying the Euclidean distance
// between its endpoints when it was materialised.
type TreeEdge struct {
	U, V vgraph.ID
	Dist float64
}

// HyperEdgeTree is the Steiner-like tree connecting a hyperedge's terminals
// (spec §4.9, glossary "Hyperedge"/"MTST").
type HyperEdgeTree struct {
	Terminals []vgraph.ID
	Edges     []TreeEdge
	// Junctions holds every vertex with tree-degree >= 3: a point where two
	// leaves (or branches) ending at the same coordinate merged (spec
	// §4.9 "Two leaves ending at the same point merge into a junction").
	Junctions map[vgraph.ID]bool
}

// TotalLength sums every edge's Dist, used by the "MTST correctness"
// testable property of spec §8 (post-improvement length must not exceed
// pre-improvement length).
func (t *HyperEdgeTree) TotalLength() float64 {
	total := 0.0
	for _, e := range t.Edges {
		total += e.Dist
	}
	return total
}

// Degree returns the number of tree edges incident to id.
func (t *HyperEdgeTree) Degree(id vgraph.ID) int {
	n := 0
	for _, e := range t.Edges {
		if e.U == id || e.V == id {
			n++
		}
	}
	return n
}

// PositionMap is hyperedge's own copy of vertex positions: Improve moves
// junctions within this map rather than the shared vgraph.Store, since
// deciding which vertices a hyperedge tree is allowed to relocate is a
// router-level policy (spec doc.go).
type PositionMap map[vgraph.ID]geom.Point

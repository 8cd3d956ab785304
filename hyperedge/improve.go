package hyperedge

import (
	"math"

	"github.com/katalvlaran/avoidroute/geom"
	"github.com/katalvlaran/avoidroute/vgraph"
)

// HyperEdgeShiftSegment is one tree edge considered for the local
// improvement pass's balance/settle step (spec §4.9 second phase).
type HyperEdgeShiftSegment struct {
	A, B vgraph.ID
	Dim  Dimension
	// Immovable marks a segment with at least one leaf endpoint (tree
	// degree 1): spec §4.9 "an immovable segment has at least one leaf".
	Immovable bool
}

// Dimension mirrors nudge.Dimension; kept local so hyperedge does not take
// a dependency on the nudge package for a two-value enum.
type Dimension int

const (
	DimX Dimension = iota
	DimY
)

const zeroLengthEps = 1e-6

// Improve runs spec §4.9's local-improvement phase for passes alternating
// dimensions (X, Y, X, Y, ...), moving unsettled junctions towards the
// majority side of their incident branches, collapsing zero-length edges,
// and migrating junctions along edges they share with every neighbour.
// positions is hyperedge's own working copy; Improve returns the improved
// tree and the final positions, leaving the caller's map untouched.
func Improve(tree *HyperEdgeTree, positions PositionMap, passes int) (*HyperEdgeTree, PositionMap) {
	cur := cloneTree(tree)
	pos := clonePositions(positions)

	for p := 0; p < passes; p++ {
		dim := DimX
		if p%2 == 1 {
			dim = DimY
		}
		settlePass(cur, pos, dim)
		removeZeroLengthEdges(cur, pos)
		migrateJunctions(cur, pos)
	}
	return cur, pos
}

// settlePass repeats the balance/move/re-merge loop of spec §4.9 until
// every segment aligned to dim is settled or an iteration budget is spent
// (guards against oscillation between two branches of equal weight).
func settlePass(tree *HyperEdgeTree, pos PositionMap, dim Dimension) {
	const maxIterations = 20
	for iter := 0; iter < maxIterations; iter++ {
		segs := shiftSegments(tree, pos, dim)
		moved := false
		for _, seg := range segs {
			if seg.Immovable {
				continue
			}
			balance, lowTarget, highTarget, hasLow, hasHigh := branchBalance(tree, pos, seg, dim)
			if balance == 0 {
				continue
			}
			var target float64
			switch {
			case balance > 0 && hasHigh:
				target = highTarget
			case balance < 0 && hasLow:
				target = lowTarget
			default:
				continue
			}
			if moveSegment(pos, seg, dim, target) {
				moved = true
			}
		}
		if !moved {
			return
		}
	}
}

// shiftSegments returns one HyperEdgeShiftSegment per tree edge aligned with
// dim (both endpoints share their coordinate along dim). Collinear edges
// are not merged into a single segment.
func shiftSegments(tree *HyperEdgeTree, pos PositionMap, dim Dimension) []HyperEdgeShiftSegment {
	var segs []HyperEdgeShiftSegment
	for _, e := range tree.Edges {
		if math.Abs(fixedCoord(pos[e.U], dim)-fixedCoord(pos[e.V], dim)) >= zeroLengthEps {
			continue
		}
		segs = append(segs, HyperEdgeShiftSegment{
			A:         e.U,
			B:         e.V,
			Dim:       dim,
			Immovable: tree.Degree(e.U) == 1 || tree.Degree(e.V) == 1,
		})
	}
	return segs
}

// branchBalance counts, for each endpoint of seg, how many OTHER incident
// edges diverge towards lower vs. higher positions along dim (the
// coordinate seg's endpoints share, which is the one moveSegment changes),
// and returns the nearest diverging position on each side as the candidate
// move target.
func branchBalance(tree *HyperEdgeTree, pos PositionMap, seg HyperEdgeShiftSegment, dim Dimension) (balance int, lowTarget, highTarget float64, hasLow, hasHigh bool) {
	own := func(a vgraph.ID) float64 { return fixedCoord(pos[a], dim) }
	segPerp := own(seg.A)

	examine := func(center vgraph.ID) {
		for _, e := range tree.Edges {
			var other vgraph.ID
			switch {
			case e.U == center && e.V != seg.A && e.V != seg.B:
				other = e.V
			case e.V == center && e.U != seg.A && e.U != seg.B:
				other = e.U
			default:
				continue
			}
			op := fixedCoord(pos[other], dim)
			if op < segPerp {
				balance--
				if !hasLow || op > lowTarget {
					lowTarget, hasLow = op, true
				}
			} else if op > segPerp {
				balance++
				if !hasHigh || op < highTarget {
					highTarget, hasHigh = op, true
				}
			}
		}
	}
	examine(seg.A)
	examine(seg.B)
	return
}

// moveSegment sets the coordinate along dim that both endpoints of seg
// share to target, mirroring nudge's NudgingShiftSegment. Returns whether a
// move actually happened.
func moveSegment(pos PositionMap, seg HyperEdgeShiftSegment, dim Dimension, target float64) bool {
	a, b := pos[seg.A], pos[seg.B]
	cur := fixedCoord(a, dim)
	if math.Abs(cur-target) < zeroLengthEps {
		return false
	}
	setCoord(&a, dim, target)
	setCoord(&b, dim, target)
	pos[seg.A] = a
	pos[seg.B] = b
	return true
}

func removeZeroLengthEdges(tree *HyperEdgeTree, pos PositionMap) {
	kept := tree.Edges[:0:0]
	for _, e := range tree.Edges {
		if geom.Dist(pos[e.U], pos[e.V]) <= zeroLengthEps {
			mergeVertex(tree, e.V, e.U)
			continue
		}
		kept = append(kept, e)
	}
	tree.Edges = kept
}

// mergeVertex rewrites every remaining edge endpoint equal to from into
// into, collapsing the zero-length edge that used to connect them.
func mergeVertex(tree *HyperEdgeTree, from, into vgraph.ID) {
	for i := range tree.Edges {
		if tree.Edges[i].U == from {
			tree.Edges[i].U = into
		}
		if tree.Edges[i].V == from {
			tree.Edges[i].V = into
		}
	}
}

// migrateJunctions moves each junction to the average position of any
// coordinate its incident edges unanimously agree on along one axis,
// reducing redundant overlap (spec §4.9 "move each junction along any
// common edge it shares with all incident neighbours").
func migrateJunctions(tree *HyperEdgeTree, pos PositionMap) {
	for j := range tree.Junctions {
		var neighbours []vgraph.ID
		for _, e := range tree.Edges {
			if e.U == j {
				neighbours = append(neighbours, e.V)
			} else if e.V == j {
				neighbours = append(neighbours, e.U)
			}
		}
		if len(neighbours) < 2 {
			continue
		}
		agreeX, agreeY := true, true
		xv, yv := pos[neighbours[0]].X, pos[neighbours[0]].Y
		for _, n := range neighbours[1:] {
			if pos[n].X != xv {
				agreeX = false
			}
			if pos[n].Y != yv {
				agreeY = false
			}
		}
		p := pos[j]
		if agreeX {
			p.X = xv
		}
		if agreeY {
			p.Y = yv
		}
		pos[j] = p
	}
}

func perpCoord(p geom.Point, dim Dimension) float64 {
	if dim == DimX {
		return p.Y
	}
	return p.X
}

func fixedCoord(p geom.Point, dim Dimension) float64 {
	if dim == DimX {
		return p.X
	}
	return p.Y
}

func setCoord(p *geom.Point, dim Dimension, v float64) {
	if dim == DimX {
		p.X = v
	} else {
		p.Y = v
	}
}

func cloneTree(t *HyperEdgeTree) *HyperEdgeTree {
	out := &HyperEdgeTree{
		Terminals: append([]vgraph.ID{}, t.Terminals...),
		Edges:     append([]TreeEdge{}, t.Edges...),
		Junctions: make(map[vgraph.ID]bool, len(t.Junctions)),
	}
	for k, v := range t.Junctions {
		out.Junctions[k] = v
	}
	return out
}

func clonePositions(p PositionMap) PositionMap {
	out := make(PositionMap, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

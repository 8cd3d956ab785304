package crossing

import "github.com/katalvlaran/avoidroute/geom"

// Kind classifies a pair of segments (spec §4.7).
type Kind int

const (
	// Disjoint: no geometric intersection, or one that lies only at a
	// segment endpoint (a touch, not a crossing).
	Disjoint Kind = iota
	// ProperCrossing: a single interior intersection point.
	ProperCrossing
	// Shared: the two segments coincide for at least part of their length.
	Shared
)

// SegmentClassification is the result of classifying A's segment i against
// B's segment j.
type SegmentClassification struct {
	AIndex, BIndex int
	Kind           Kind
	Point          geom.Point // valid only when Kind == ProperCrossing
}

// PointRep identifies a corner point for the purposes of the shared-path
// partial order: the coordinate plus which polyline/segment-run it came
// from, so two polylines that happen to pass through the same coordinate
// without actually sharing a sub-path are not confused.
type PointRep struct {
	Pt    geom.Point
	RunID int
}

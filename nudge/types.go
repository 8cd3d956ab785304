package nudge

import "github.com/katalvlaran/avoidroute/geom"

// Dimension is one of the two axes nudging runs over independently (spec
// §4.8 "For each dimension d in {X, Y}").
type Dimension int

const (
	DimX Dimension = iota
	DimY
)

// BendKind classifies a shift segment by the turn its two neighbouring
// segments make, per the glossary's c-bend/s-bend/z-bend definitions.
type BendKind int

const (
	// BendNone applies to a terminal segment (only one neighbour exists)
	// and to a segment with a collinear neighbour.
	BendNone BendKind = iota
	// BendC is a c-bend: both neighbours lie on the same side.
	BendC
	// BendS is an s-bend/z-bend: the neighbours lie on opposite sides.
	BendS
)

// Route is one connector's orthogonal display route, named for nudging's
// purposes (spec §4.8 operates on already-computed display routes, not on
// the visibility graph).
type Route struct {
	ConnectorID string
	Points      []geom.Point
	// Fixed marks a route whose points must never move (e.g. belongs to a
	// checkpoint-constrained connector). Its segments still take part in
	// their region's solve as pinned segments; limit computation does not
	// read them, and Nudge never writes its points back.
	Fixed bool
}

// NudgingShiftSegment is one nudgable sub-range of a route in dimension Dim
// (spec §4.8.1, glossary "Shift segment").
type NudgingShiftSegment struct {
	ConnectorID string
	// Low, High are indices into the owning route's Points: the segment
	// runs from Points[Low] to Points[High], Low == High-1.
	Low, High int
	Dim       Dimension
	// Fixed segments (touching a checkpoint, or belonging to a Fixed
	// route) are never moved but still constrain their neighbours.
	Fixed bool
	// Terminal marks a segment with an open end (one endpoint is the
	// connector's source/target), nudgeable only within a bounded buffer.
	Terminal bool
	Bend     BendKind

	// MinLimit, MaxLimit bound how far the segment's fixed coordinate (the
	// coordinate along Dim, shared by both its endpoints) may move in -Dim
	// and +Dim respectively, from the second scanline sweep of spec
	// §4.8.2.
	MinLimit, MaxLimit float64

	// pos is the segment's fixed coordinate, read before solving and
	// written back after.
	pos float64
	// varLo, varHi are the segment's span along the alternate (varying)
	// axis, used by ComputeLimits and the region-overlap grouping.
	varLo, varHi float64
}

// fixedCoord returns the coordinate shared by both of seg's endpoints
// (constant along its own axis, varying along the other).
func fixedCoord(pt geom.Point, dim Dimension) float64 {
	if dim == DimX {
		return pt.X
	}
	return pt.Y
}

// varyingCoord returns the coordinate that differs between seg's
// endpoints.
func varyingCoord(pt geom.Point, dim Dimension) float64 {
	if dim == DimX {
		return pt.Y
	}
	return pt.X
}

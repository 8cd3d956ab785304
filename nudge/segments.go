package nudge

import "github.com/katalvlaran/avoidroute/geom"

// BuildShiftSegments decomposes route into the NudgingShiftSegments aligned
// to dim (spec §4.8.1): for DimX these are the route's vertical segments
// (constant X, varying Y), for DimY the horizontal ones. A segment is
// Terminal if it touches either end of the route, and its BendKind is
// derived from the turn its two neighbouring segments make at the shared
// corner.
func BuildShiftSegments(route Route, dim Dimension) []NudgingShiftSegment {
	pts := route.Points
	if len(pts) < 2 {
		return nil
	}

	var segs []NudgingShiftSegment
	for i := 0; i < len(pts)-1; i++ {
		a, b := pts[i], pts[i+1]
		if !alignedTo(a, b, dim) {
			continue
		}
		v0, v1 := varyingCoord(a, dim), varyingCoord(b, dim)
		if v0 > v1 {
			v0, v1 = v1, v0
		}
		seg := NudgingShiftSegment{
			ConnectorID: route.ConnectorID,
			Low:         i,
			High:        i + 1,
			Dim:         dim,
			Fixed:       route.Fixed,
			Terminal:    i == 0 || i+1 == len(pts)-1,
			pos:         fixedCoord(a, dim),
			varLo:       v0,
			varHi:       v1,
		}
		seg.Bend = classifyBend(pts, i, dim)
		segs = append(segs, seg)
	}
	return segs
}

// alignedTo reports whether the segment a-b shares the coordinate along
// dim, i.e. is orthogonal and runs perpendicular to dim.
func alignedTo(a, b geom.Point, dim Dimension) bool {
	if dim == DimX {
		return a.X == b.X && a.Y != b.Y
	}
	return a.Y == b.Y && a.X != b.X
}

// classifyBend looks at the segment before index i and after index i+1 (if
// present) to decide whether the turns at both corners put the neighbours
// on the same side (c-bend) or opposite sides (s-bend/z-bend).
func classifyBend(pts []geom.Point, i int, dim Dimension) BendKind {
	hasPrev := i > 0
	hasNext := i+2 < len(pts)
	if !hasPrev || !hasNext {
		return BendNone
	}
	prev := pts[i-1]
	a, b := pts[i], pts[i+1]
	next := pts[i+2]

	turnIn := geom.TurnDirection(prev, a, b)
	turnOut := geom.TurnDirection(a, b, next)
	if turnIn == 0 || turnOut == 0 {
		return BendNone
	}
	if (turnIn > 0) == (turnOut > 0) {
		return BendC
	}
	return BendS
}

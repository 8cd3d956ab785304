package crossing

import "github.com/katalvlaran/avoidroute/geom"

// ClassifySegment classifies polyline a's segment i (a[i]..a[i+1]) against
// every segment of polyline b (spec §4.7).
func ClassifySegment(a []geom.Point, i int, b []geom.Point) []SegmentClassification {
	if i < 0 || i+1 >= len(a) {
		return nil
	}
	p1, p2 := a[i], a[i+1]

	out := make([]SegmentClassification, 0, len(b))
	for j := 0; j+1 < len(b); j++ {
		p3, p4 := b[j], b[j+1]
		k, pt := geom.SegmentIntersect(p1, p2, p3, p4)
		switch k {
		case geom.Disjoint:
			out = append(out, SegmentClassification{AIndex: i, BIndex: j, Kind: Disjoint})
		case geom.CollinearOverlapping:
			out = append(out, SegmentClassification{AIndex: i, BIndex: j, Kind: Shared})
		case geom.IntersectsAtPoint:
			if pt.Equal(p1) || pt.Equal(p2) || pt.Equal(p3) || pt.Equal(p4) {
				// A shared endpoint without transversal crossing is not a
				// proper crossing; callers that need shared-path detection
				// use the Shared classification above instead.
				out = append(out, SegmentClassification{AIndex: i, BIndex: j, Kind: Disjoint})
				continue
			}
			out = append(out, SegmentClassification{AIndex: i, BIndex: j, Kind: ProperCrossing, Point: pt})
		}
	}
	return out
}

// Analysis is the result of analysing every segment of A against every
// segment of B.
type Analysis struct {
	CrossingCount int
	Crossings     []geom.Point
	SharedRuns    []SharedRun
}

// SharedRun is a maximal run of consecutive segments along which A and B
// coincide.
type SharedRun struct {
	AStart, AEnd int
	BStart, BEnd int
}

// Analyse classifies every segment of A against every segment of B and
// aggregates proper crossings and shared sub-paths.
func Analyse(a, b []geom.Point) Analysis {
	var an Analysis
	var curRun *SharedRun
	for i := 0; i+1 < len(a); i++ {
		classes := ClassifySegment(a, i, b)
		matched := false
		for _, c := range classes {
			switch c.Kind {
			case ProperCrossing:
				an.CrossingCount++
				an.Crossings = append(an.Crossings, c.Point)
			case Shared:
				matched = true
				if curRun != nil && curRun.AEnd == i-1 {
					curRun.AEnd = i
					if c.BIndex < curRun.BStart {
						curRun.BStart = c.BIndex
					}
					if c.BIndex > curRun.BEnd {
						curRun.BEnd = c.BIndex
					}
				} else {
					if curRun != nil {
						an.SharedRuns = append(an.SharedRuns, *curRun)
					}
					curRun = &SharedRun{AStart: i, AEnd: i, BStart: c.BIndex, BEnd: c.BIndex}
				}
			}
		}
		if !matched && curRun != nil {
			an.SharedRuns = append(an.SharedRuns, *curRun)
			curRun = nil
		}
	}
	if curRun != nil {
		an.SharedRuns = append(an.SharedRuns, *curRun)
	}
	return an
}

// SplitBranchingSegments inserts a vertex into a and/or b at every point
// where one polyline's interior lies on the other's segment (within
// tolerance), so the crossing analyser and the nudging engine agree on
// segment identity (spec §4.7). Returns the (possibly longer) rewritten
// polylines.
func SplitBranchingSegments(a, b []geom.Point) (newA, newB []geom.Point) {
	newA = splitAgainst(a, b)
	newB = splitAgainst(b, a)
	return newA, newB
}

func splitAgainst(target, other []geom.Point) []geom.Point {
	out := append([]geom.Point{}, target[0])
	for i := 0; i+1 < len(target); i++ {
		p1, p2 := target[i], target[i+1]
		inserts := []geom.Point{}
		for _, q := range other {
			if q.Equal(p1) || q.Equal(p2) {
				continue
			}
			if geom.PointOnLine(p1, p2, q, geom.DefaultTolerance) && onSegment(p1, p2, q) {
				inserts = append(inserts, q)
			}
		}
		sortAlongSegment(p1, inserts)
		out = append(out, inserts...)
		out = append(out, p2)
	}
	return out
}

func onSegment(a, b, q geom.Point) bool {
	lo, hi := a.X, b.X
	if lo > hi {
		lo, hi = hi, lo
	}
	inX := q.X >= lo-geom.DefaultTolerance && q.X <= hi+geom.DefaultTolerance
	lo, hi = a.Y, b.Y
	if lo > hi {
		lo, hi = hi, lo
	}
	inY := q.Y >= lo-geom.DefaultTolerance && q.Y <= hi+geom.DefaultTolerance
	return inX && inY
}

func sortAlongSegment(start geom.Point, pts []geom.Point) {
	for i := 1; i < len(pts); i++ {
		for j := i; j > 0 && geom.Dist(start, pts[j]) < geom.Dist(start, pts[j-1]); j-- {
			pts[j], pts[j-1] = pts[j-1], pts[j]
		}
	}
}

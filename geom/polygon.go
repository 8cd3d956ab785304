package geom

import "sort"

// Polygon is a closed, simple polygon given as an ordered list of vertices.
// By convention (matching obstacle.Shape) vertices are stored clockwise in a
// y-down coordinate system.
type Polygon struct {
	Points []Point
}

// Bounds returns the axis-aligned bounding rectangle of p. Panics-free on an
// empty polygon by returning the zero Rect.
func (p Polygon) Bounds() Rect {
	if len(p.Points) == 0 {
		return Rect{}
	}
	r := Rect{Min: p.Points[0], Max: p.Points[0]}
	for _, pt := range p.Points[1:] {
		if pt.X < r.Min.X {
			r.Min.X = pt.X
		}
		if pt.Y < r.Min.Y {
			r.Min.Y = pt.Y
		}
		if pt.X > r.Max.X {
			r.Max.X = pt.X
		}
		if pt.Y > r.Max.Y {
			r.Max.Y = pt.Y
		}
	}
	return r
}

// ContainsPointInterior reports whether q lies strictly inside p, using a
// standard ray-casting parity test. Points on the boundary are not
// considered interior — callers needing "open segment does not cross
// obstacle interior" semantics (spec §4.4) rely on this distinction.
func (p Polygon) ContainsPointInterior(q Point) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := p.Points[i], p.Points[j]
		if PointOnLine(a, b, q, DefaultTolerance) && onSegmentBounds(a, b, q) {
			return false // boundary, not interior
		}
		if (a.Y > q.Y) != (b.Y > q.Y) {
			xInt := a.X + (q.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if q.X < xInt {
				inside = !inside
			}
		}
	}
	return inside
}

func onSegmentBounds(a, b, q Point) bool {
	return q.X >= min(a.X, b.X)-DefaultTolerance && q.X <= max(a.X, b.X)+DefaultTolerance &&
		q.Y >= min(a.Y, b.Y)-DefaultTolerance && q.Y <= max(a.Y, b.Y)+DefaultTolerance
}

// SegmentCrossesInterior reports whether the open segment (a,b) passes
// through the interior of polygon p — the core predicate behind
// visibility-graph edge admission in spec §4.4.
func (p Polygon) SegmentCrossesInterior(a, b Point) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}
	// Midpoint-inside check catches the case where the segment lies wholly
	// within the polygon without crossing any edge transversally.
	mid := Point{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
	if p.ContainsPointInterior(mid) {
		return true
	}
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		kind, _ := SegmentIntersect(a, b, p.Points[j], p.Points[i])
		if kind == IntersectsAtPoint {
			// A transversal crossing through the boundary implies the
			// segment dips into the interior unless it only touches an
			// endpoint shared with a or b.
			pt, _ := intersectionPoint(a, b, p.Points[j], p.Points[i])
			if !pt.Equal(a) && !pt.Equal(b) {
				return true
			}
		}
	}
	return false
}

// IntersectKind classifies the relationship between two segments.
type IntersectKind int

const (
	// Disjoint means the segments share no point and do not cross.
	Disjoint IntersectKind = iota
	// IntersectsAtPoint means the segments meet at exactly one point.
	IntersectsAtPoint
	// CollinearOverlapping means the segments are collinear and overlap
	// along a sub-segment (possibly a single shared endpoint).
	CollinearOverlapping
)

// SegmentIntersect classifies segments (p1,p2) and (p3,p4) and, when they
// meet at a single point, returns it as the second value.
func SegmentIntersect(p1, p2, p3, p4 Point) (IntersectKind, Point) {
	d1 := TurnDirection(p3, p4, p1)
	d2 := TurnDirection(p3, p4, p2)
	d3 := TurnDirection(p1, p2, p3)
	d4 := TurnDirection(p1, p2, p4)

	if d1 == 0 && d2 == 0 && d3 == 0 && d4 == 0 {
		// Collinear: overlap iff bounding boxes overlap on the shared line.
		if onSegmentBounds(p1, p2, p3) || onSegmentBounds(p1, p2, p4) ||
			onSegmentBounds(p3, p4, p1) || onSegmentBounds(p3, p4, p2) {
			return CollinearOverlapping, Point{}
		}
		return Disjoint, Point{}
	}

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		pt, ok := intersectionPoint(p1, p2, p3, p4)
		if ok {
			return IntersectsAtPoint, pt
		}
	}

	// Touching endpoint cases.
	if d1 == 0 && onSegmentBounds(p3, p4, p1) {
		return IntersectsAtPoint, p1
	}
	if d2 == 0 && onSegmentBounds(p3, p4, p2) {
		return IntersectsAtPoint, p2
	}
	if d3 == 0 && onSegmentBounds(p1, p2, p3) {
		return IntersectsAtPoint, p3
	}
	if d4 == 0 && onSegmentBounds(p1, p2, p4) {
		return IntersectsAtPoint, p4
	}
	return Disjoint, Point{}
}

func intersectionPoint(p1, p2, p3, p4 Point) (Point, bool) {
	x1, y1, x2, y2 := p1.X, p1.Y, p2.X, p2.Y
	x3, y3, x4, y4 := p3.X, p3.Y, p4.X, p4.Y
	denom := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if denom > -DefaultTolerance && denom < DefaultTolerance {
		return Point{}, false
	}
	tNum := (x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)
	t := tNum / denom
	return Point{x1 + t*(x2-x1), y1 + t*(y2-y1)}, true
}

// ConvexHull computes the convex hull of pts via the Graham scan, returning
// hull vertices in counter-clockwise order. Grounded on
// original_source/cola/libcola/convex_hull.cpp.
func ConvexHull(pts []Point) []Point {
	n := len(pts)
	if n < 3 {
		out := make([]Point, n)
		copy(out, pts)
		return out
	}

	sorted := make([]Point, n)
	copy(sorted, pts)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y < sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})
	pivot := sorted[0]
	rest := sorted[1:]
	sort.Slice(rest, func(i, j int) bool {
		da := polarCmp(pivot, rest[i], rest[j])
		return da < 0
	})

	hull := make([]Point, 0, n)
	hull = append(hull, pivot)
	for _, pt := range rest {
		for len(hull) >= 2 && TurnDirection(hull[len(hull)-2], hull[len(hull)-1], pt) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, pt)
	}
	return hull
}

func polarCmp(pivot, a, b Point) float64 {
	t := TurnDirection(pivot, a, b)
	if t != 0 {
		return float64(-t) // counter-clockwise sweep
	}
	return Dist(pivot, a) - Dist(pivot, b)
}

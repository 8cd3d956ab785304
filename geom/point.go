package geom

import "math"

// Point is a 2-D coordinate pair. It carries no identity of its own —
// vgraph.Point wraps one with an owning object id and vertex number.
type Point struct {
	X, Y float64
}

// DefaultTolerance is the absolute tolerance used by PointOnLine and related
// near-collinearity checks unless a caller supplies its own.
const DefaultTolerance = 1e-5

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }

// Equal reports whether p and q are identical within DefaultTolerance.
func (p Point) Equal(q Point) bool {
	return math.Abs(p.X-q.X) <= DefaultTolerance && math.Abs(p.Y-q.Y) <= DefaultTolerance
}

// Dist returns the Euclidean distance between p and q.
func Dist(p, q Point) float64 {
	dx, dy := p.X-q.X, p.Y-q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// ManhattanDist returns the L1 distance between p and q.
func ManhattanDist(p, q Point) float64 {
	return math.Abs(p.X-q.X) + math.Abs(p.Y-q.Y)
}

// Cross returns the 2-D cross product of (p->q) and (p->r), i.e. the signed
// area of the parallelogram they span. Positive means r is to the left of
// the directed line p->q.
func Cross(p, q, r Point) float64 {
	return (q.X-p.X)*(r.Y-p.Y) - (q.Y-p.Y)*(r.X-p.X)
}

// TurnDirection returns sign(AB x BC): +1 for a left (counter-clockwise)
// turn at B, -1 for a right turn, 0 for collinear A,B,C.
func TurnDirection(a, b, c Point) int {
	cr := Cross(a, b, c)
	switch {
	case cr > DefaultTolerance:
		return 1
	case cr < -DefaultTolerance:
		return -1
	default:
		return 0
	}
}

// PointOnLine reports whether c lies on the infinite line through a,b within
// absolute tolerance tol. tol <= 0 selects DefaultTolerance.
//
// Contract (geom §4.1): higher layers treat two coordinates that compare
// exactly equal as permitted to mean "collinear"; this function is where
// that slack is actually granted.
func PointOnLine(a, b, c Point, tol float64) bool {
	if tol <= 0 {
		tol = DefaultTolerance
	}
	length := Dist(a, b)
	if length < DefaultTolerance {
		// Degenerate segment: only c==a (==b) counts as "on" it.
		return Dist(a, c) <= tol
	}
	// Perpendicular distance from c to line ab, normalised by |ab|.
	d := math.Abs(Cross(a, b, c)) / length
	return d <= tol
}

package obstacle

import "github.com/katalvlaran/avoidroute/geom"

// Shape is a rectangular or polygonal obstacle with an ordered set of
// connection pins (spec §3).
type Shape struct {
	Id   string
	Poly geom.Polygon
	Pins []Pin
	// fixed mirrors IsPositionFixed; shapes are always movable by MoveTo,
	// so this is always false but kept to satisfy the Obstacle interface
	// uniformly with Junction.
	fixed bool
}

// NewRectShape constructs a Shape whose polygon is the clockwise corner
// ring of rect (spec §4.3 "polygon corners iterated in clockwise order").
func NewRectShape(id string, rect geom.Rect, pins ...Pin) *Shape {
	corners := rect.Corners()
	return &Shape{Id: id, Poly: geom.Polygon{Points: corners[:]}, Pins: pins}
}

// NewPolygonShape constructs a Shape from an explicit clockwise polygon.
func NewPolygonShape(id string, poly geom.Polygon, pins ...Pin) *Shape {
	return &Shape{Id: id, Poly: poly, Pins: pins}
}

func (s *Shape) ID() string            { return s.Id }
func (s *Shape) Polygon() geom.Polygon { return s.Poly }
func (s *Shape) Bounds() geom.Rect     { return s.Poly.Bounds() }
func (s *Shape) IsPositionFixed() bool { return s.fixed }

// MoveTo translates every polygon vertex by delta.
func (s *Shape) MoveTo(delta geom.Point) {
	for i := range s.Poly.Points {
		s.Poly.Points[i] = s.Poly.Points[i].Add(delta)
	}
}

// SetPolygon replaces the shape's polygon outright (spec §6
// "moveShape(newPolygon)").
func (s *Shape) SetPolygon(poly geom.Polygon) {
	s.Poly = poly
}

// IsDegenerate reports whether the shape's polygon has zero area (spec §7
// "geometry-degenerate").
func (s *Shape) IsDegenerate() bool {
	b := s.Bounds()
	return b.Width() <= geom.DefaultTolerance || b.Height() <= geom.DefaultTolerance
}

// PinPosition resolves pin i to an absolute point.
func (s *Shape) PinPosition(i int) geom.Point {
	return s.Pins[i].Resolve(s.Bounds())
}

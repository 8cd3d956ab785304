package obstacle

import (
	"github.com/katalvlaran/avoidroute/geom"
	"github.com/katalvlaran/avoidroute/vgraph"
)

// Obstacle is the common interface over Shape, Junction, and Cluster (spec
// §9 "Dynamic dispatch").
type Obstacle interface {
	ID() string
	Polygon() geom.Polygon
	Bounds() geom.Rect
	MoveTo(delta geom.Point)
	IsPositionFixed() bool
}

// Pin is a connection pin: a fixed attachment point on a shape or one of a
// junction's four implicit pins (spec §3, §4.3). Position is given either
// as a relative {0..1}^2 fraction of the owning shape's bounding rect, or
// as a cardinal Side — UseSide selects which.
type Pin struct {
	RelX, RelY float64
	Side       vgraph.Direction
	UseSide    bool
	DirMask    vgraph.Direction
}

// Resolve returns the absolute position of the pin given the owning
// shape/junction's bounds.
func (p Pin) Resolve(b geom.Rect) geom.Point {
	if p.UseSide {
		c := b.Center()
		switch p.Side {
		case vgraph.DirUp:
			return geom.Point{X: c.X, Y: b.Min.Y}
		case vgraph.DirDown:
			return geom.Point{X: c.X, Y: b.Max.Y}
		case vgraph.DirLeft:
			return geom.Point{X: b.Min.X, Y: c.Y}
		case vgraph.DirRight:
			return geom.Point{X: b.Max.X, Y: c.Y}
		}
		return c
	}
	return geom.Point{
		X: b.Min.X + p.RelX*b.Width(),
		Y: b.Min.Y + p.RelY*b.Height(),
	}
}

// SidePin constructs a Pin anchored to a cardinal side, with a direction
// mask restricting which way a connector may approach it.
func SidePin(side, dirMask vgraph.Direction) Pin {
	return Pin{Side: side, UseSide: true, DirMask: dirMask}
}

// RelativePin constructs a Pin at a relative {0..1}^2 position with a
// direction mask.
func RelativePin(relX, relY float64, dirMask vgraph.Direction) Pin {
	return Pin{RelX: relX, RelY: relY, DirMask: dirMask}
}

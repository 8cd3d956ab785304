package obstacle

import "github.com/katalvlaran/avoidroute/geom"

// Junction is a position at which connector endpoints attach, with four
// implicit pins at {Up,Down,Left,Right} (spec §3, original_source
// cola/libavoid/junction.cpp). Fixed junctions are pinned by the client and
// never migrate during hyperedge local improvement (spec §4.9, SPEC_FULL
// §12).
type Junction struct {
	Id       string
	Position geom.Point
	Fixed    bool
	// Endpoints lists the connector ids currently attached to this
	// junction (spec §3 Junction).
	Endpoints []string
}

// NewJunction constructs a free (non-fixed) junction at pos.
func NewJunction(id string, pos geom.Point) *Junction {
	return &Junction{Id: id, Position: pos}
}

func (j *Junction) ID() string { return j.Id }

// Polygon returns a degenerate single-point polygon; junctions have no
// area, only implicit pins.
func (j *Junction) Polygon() geom.Polygon {
	return geom.Polygon{Points: []geom.Point{j.Position}}
}

func (j *Junction) Bounds() geom.Rect {
	return geom.Rect{Min: j.Position, Max: j.Position}
}

func (j *Junction) IsPositionFixed() bool { return j.Fixed }

func (j *Junction) MoveTo(delta geom.Point) {
	j.Position = j.Position.Add(delta)
}

// Pin resolves the implicit pin at the given cardinal side. Junctions have
// no extent, so all four pins resolve to the junction's own position and
// the side argument is not used.
func (j *Junction) Pin(side uint8) geom.Point {
	return j.Position
}

// AttachEndpoint records connId as attached to this junction.
func (j *Junction) AttachEndpoint(connID string) {
	for _, e := range j.Endpoints {
		if e == connID {
			return
		}
	}
	j.Endpoints = append(j.Endpoints, connID)
}

// DetachEndpoint removes connId from this junction's attached endpoints.
func (j *Junction) DetachEndpoint(connID string) {
	for i, e := range j.Endpoints {
		if e == connID {
			j.Endpoints = append(j.Endpoints[:i], j.Endpoints[i+1:]...)
			return
		}
	}
}

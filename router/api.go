package router

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/katalvlaran/avoidroute/geom"
	"github.com/katalvlaran/avoidroute/obstacle"
)

// AddShape enqueues a new rectangular shape. If id is empty, an id is
// auto-assigned via uuid (spec §4.3/§6 "construct... assigns or validates
// an id").
func (r *Router) AddShape(rect geom.Rect, id string, pins ...obstacle.Pin) (string, error) {
	if id == "" {
		id = uuid.NewString()
	}
	s := obstacle.NewRectShape(id, rect, pins...)
	if err := r.enqueue(action{kind: actAddShape, shape: s}); err != nil {
		return "", err
	}
	return id, nil
}

// AddPolygonShape enqueues a new shape from an explicit clockwise polygon.
func (r *Router) AddPolygonShape(poly geom.Polygon, id string, pins ...obstacle.Pin) (string, error) {
	if id == "" {
		id = uuid.NewString()
	}
	s := obstacle.NewPolygonShape(id, poly, pins...)
	if err := r.enqueue(action{kind: actAddShape, shape: s}); err != nil {
		return "", err
	}
	return id, nil
}

// RemoveShape enqueues removal of the shape with id.
func (r *Router) RemoveShape(id string) error {
	return r.enqueue(action{kind: actRemoveShape, id: id})
}

// MoveShape enqueues a relative translation of the shape with id by
// (dx, dy) (spec §6 "moveShape(Δx,Δy)").
func (r *Router) MoveShape(id string, dx, dy float64) error {
	return r.enqueue(action{kind: actMoveShape, id: id, delta: geom.Point{X: dx, Y: dy}})
}

// SetShapePolygon enqueues replacing the shape's polygon outright (spec §6
// "moveShape(newPolygon)").
func (r *Router) SetShapePolygon(id string, poly geom.Polygon) error {
	return r.enqueue(action{kind: actSetShapePolygon, id: id, poly: poly})
}

// AddJunction enqueues a new free junction at pos. If id is empty, an id
// is auto-assigned.
func (r *Router) AddJunction(pos geom.Point, id string) (string, error) {
	if id == "" {
		id = uuid.NewString()
	}
	j := obstacle.NewJunction(id, pos)
	if err := r.enqueue(action{kind: actAddJunction, junction: j}); err != nil {
		return "", err
	}
	return id, nil
}

// RemoveJunction enqueues removal of the junction with id.
func (r *Router) RemoveJunction(id string) error {
	return r.enqueue(action{kind: actRemoveJunction, id: id})
}

// MoveJunction enqueues moving the junction with id to an absolute
// position. A no-op if the junction is fixed.
func (r *Router) MoveJunction(id string, pos geom.Point) error {
	return r.enqueue(action{kind: actMoveJunction, id: id, pos: pos})
}

// AddCluster enqueues a new cluster from an explicit convex polygon. If id
// is empty, an id is auto-assigned.
func (r *Router) AddCluster(poly geom.Polygon, id string) (string, error) {
	if id == "" {
		id = uuid.NewString()
	}
	c := obstacle.NewCluster(id, poly)
	if err := r.enqueue(action{kind: actAddCluster, cluster: c}); err != nil {
		return "", err
	}
	return id, nil
}

// AddConnector enqueues a new connector between endA and endB. If id is
// empty, an id is auto-assigned.
func (r *Router) AddConnector(endA, endB Endpoint, typ ConnectorType, id string) (string, error) {
	if id == "" {
		id = uuid.NewString()
	}
	if err := r.enqueue(action{kind: actAddConnector, connID: id, endA: endA, endB: endB, connType: typ}); err != nil {
		return "", err
	}
	return id, nil
}

// RemoveConnector enqueues removal of the connector with id.
func (r *Router) RemoveConnector(id string) error {
	return r.enqueue(action{kind: actRemoveConnector, connID: id})
}

// SetConnectorEndpoints enqueues retargeting the connector with id to new
// endpoints, forcing a reroute.
func (r *Router) SetConnectorEndpoints(id string, endA, endB Endpoint) error {
	return r.enqueue(action{kind: actSetConnectorEndpoints, connID: id, endA: endA, endB: endB})
}

// SetConnectorType enqueues switching the connector with id between
// polyline and orthogonal routing, forcing a reroute.
func (r *Router) SetConnectorType(id string, typ ConnectorType) error {
	return r.enqueue(action{kind: actSetConnectorType, connID: id, connType: typ})
}

// SetConnectorHatesCrossings enqueues toggling the connector's
// hatesCrossings flag (spec §3 ConnectorRef), which doubles the effective
// crossing penalty during path search.
func (r *Router) SetConnectorHatesCrossings(id string, v bool) error {
	return r.enqueue(action{kind: actSetHatesCrossings, connID: id, hatesCrossings: v})
}

// OnRouteChanged registers a callback invoked with the connector's display
// route whenever ProcessTransaction changes it. Callbacks fire in
// connector-insertion order (spec §5).
func (r *Router) OnRouteChanged(connID string, cb func(PolyLine)) error {
	if r.inTransaction {
		return ErrInvalidTransaction
	}
	c, ok := r.connectors[connID]
	if !ok {
		return fmt.Errorf("router: register callback for %q: %w", connID, ErrUnknownConnector)
	}
	c.callback = cb
	return nil
}

// SetRoutingOption sets one of the five named toggles of spec §6.
func (r *Router) SetRoutingOption(opt RoutingOption, enabled bool) error {
	if r.inTransaction {
		return ErrInvalidTransaction
	}
	switch opt {
	case OptNudgeOrthogonalSegmentsConnectedToShapes,
		OptImproveHyperedgeRouting,
		OptPenaliseOrthogonalSharedPaths,
		OptFixedSharedPathPenalty,
		OptPerformUnifyingNudgingPreprocessingStep:
		r.cfg.options[opt] = enabled
		return nil
	default:
		return ErrUnknownRoutingOption
	}
}

// SetRoutingPenalty sets one of the six named penalty knobs of spec §6.
func (r *Router) SetRoutingPenalty(kind PenaltyKind, value float64) error {
	if r.inTransaction {
		return ErrInvalidTransaction
	}
	switch kind {
	case PenaltySegment:
		r.cfg.penalties.Segment = value
	case PenaltyAngle:
		r.cfg.penalties.Angle = value
	case PenaltyCrossing:
		r.cfg.penalties.Crossing = value
	case PenaltyClusterCrossing:
		r.cfg.penalties.Cluster = value
	case PenaltyFixedSharedPathPenalty:
		r.cfg.penalties.FixedSharedPathPenalty = value
	case PenaltyPortDirection:
		r.cfg.penalties.PortDirection = value
	default:
		return ErrUnknownPenaltyKind
	}
	return nil
}

// SetOrthogonalNudgeDistance sets the minimum separation the nudging engine
// targets between parallel orthogonal segments (spec §6).
func (r *Router) SetOrthogonalNudgeDistance(d float64) error {
	if r.inTransaction {
		return ErrInvalidTransaction
	}
	r.cfg.nudgeDistance = d
	return nil
}

// Route returns the connector's raw path-search route (before
// simplification, crossing-ordering, and nudging).
func (r *Router) Route(connID string) (PolyLine, error) {
	c, ok := r.connectors[connID]
	if !ok {
		return PolyLine{}, fmt.Errorf("router: route %q: %w", connID, ErrUnknownConnector)
	}
	return c.rawRoute, nil
}

// DisplayRoute returns the connector's fully post-processed route.
func (r *Router) DisplayRoute(connID string) (PolyLine, error) {
	c, ok := r.connectors[connID]
	if !ok {
		return PolyLine{}, fmt.Errorf("router: displayRoute %q: %w", connID, ErrUnknownConnector)
	}
	return c.display, nil
}

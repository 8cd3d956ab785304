package router

import (
	"fmt"
	"log"

	"github.com/katalvlaran/avoidroute/geom"
	"github.com/katalvlaran/avoidroute/obstacle"
	"github.com/katalvlaran/avoidroute/search"
	"github.com/katalvlaran/avoidroute/vgraph"
)

// RoutingType selects which visibility graph(s) a Router maintains (spec §6
// "Router(routingType in {Polyline, Orthogonal, both})").
type RoutingType int

const (
	PolylineRouting RoutingType = iota
	OrthogonalRouting
	BothRouting
)

// Logger is the diagnostics sink of spec §7 "diagnostics go to a sink
// supplied at construction". Modeled the way the teacher accepts an
// interface with a no-op default for its hook callbacks (core.OnVisit,
// dijkstra's relax hook).
type Logger interface {
	Warnf(format string, args ...interface{})
}

// NopLogger discards every diagnostic. It is the default Logger.
type NopLogger struct{}

func (NopLogger) Warnf(string, ...interface{}) {}

// StdLogger adapts a standard library *log.Logger to the Logger interface.
type StdLogger struct {
	L *log.Logger
}

// NewStdLogger wraps l as a Logger, prefixing every message with "WARN ".
func NewStdLogger(l *log.Logger) StdLogger { return StdLogger{L: l} }

func (s StdLogger) Warnf(format string, args ...interface{}) {
	s.L.Printf("WARN "+format, args...)
}

// RoutingOption is one of the five named toggles of spec §6
// setRoutingOption.
type RoutingOption int

const (
	// OptNudgeOrthogonalSegmentsConnectedToShapes allows nudging of every
	// terminal segment (one ending at a connector's source or target),
	// within NudgeDistance of its position.
	OptNudgeOrthogonalSegmentsConnectedToShapes RoutingOption = iota
	// OptImproveHyperedgeRouting enables the hyperedge engine (spec §4.9)
	// on post-processed routes.
	OptImproveHyperedgeRouting
	// OptPenaliseOrthogonalSharedPaths makes nudging order segments by the
	// shared runs found by crossing analysis, and enables
	// OptFixedSharedPathPenalty. Path search does not count shared-path
	// touches as crossings.
	OptPenaliseOrthogonalSharedPaths
	// OptFixedSharedPathPenalty, together with
	// OptPenaliseOrthogonalSharedPaths, makes path search use the
	// FixedSharedPathPenalty value in place of the Crossing penalty. It is
	// applied per crossing like the Crossing penalty, not once per route.
	OptFixedSharedPathPenalty
	// OptPerformUnifyingNudgingPreprocessingStep runs the centring
	// pre-pass of spec §4.8.8.
	OptPerformUnifyingNudgingPreprocessingStep
)

// PenaltyKind is one of the six named penalty knobs of spec §6
// setRoutingPenalty.
type PenaltyKind int

const (
	PenaltySegment PenaltyKind = iota
	PenaltyAngle
	PenaltyCrossing
	PenaltyClusterCrossing
	PenaltyFixedSharedPathPenalty
	PenaltyPortDirection
)

// ConnectorType selects which visibility graph a connector routes through.
type ConnectorType int

const (
	ConnPolyline ConnectorType = iota
	ConnOrthogonal
)

// PolyLine is an ordered list of points, the public shape of both Route and
// DisplayRoute results (spec §6).
type PolyLine struct {
	Points []geom.Point
}

// EndpointKind distinguishes a connector endpoint anchored to a shape's
// connection pin, a junction, or a free-floating coordinate.
type EndpointKind int

const (
	EndpointFreePoint EndpointKind = iota
	EndpointShapePin
	EndpointJunction
)

// Endpoint identifies one end of a connector (spec §3 ConnectorRef).
type Endpoint struct {
	Kind     EndpointKind
	ObjectID string     // shape or junction id; unused for EndpointFreePoint
	PinIndex int        // valid for EndpointShapePin
	Point    geom.Point // valid for EndpointFreePoint
}

// FreeEndpoint anchors a connector to an absolute point not attached to any
// shape or junction.
func FreeEndpoint(p geom.Point) Endpoint { return Endpoint{Kind: EndpointFreePoint, Point: p} }

// ShapePinEndpoint anchors a connector to one of shapeID's connection pins.
func ShapePinEndpoint(shapeID string, pinIndex int) Endpoint {
	return Endpoint{Kind: EndpointShapePin, ObjectID: shapeID, PinIndex: pinIndex}
}

// JunctionEndpoint anchors a connector to junctionID's position.
func JunctionEndpoint(junctionID string) Endpoint {
	return Endpoint{Kind: EndpointJunction, ObjectID: junctionID}
}

// resolvePoint resolves e to its current absolute coordinate.
func (e Endpoint) resolvePoint(reg *obstacle.Registry) (geom.Point, error) {
	switch e.Kind {
	case EndpointFreePoint:
		return e.Point, nil
	case EndpointShapePin:
		s, ok := reg.Shape(e.ObjectID)
		if !ok || e.PinIndex < 0 || e.PinIndex >= len(s.Pins) {
			return geom.Point{}, fmt.Errorf("router: resolve shape pin endpoint %q[%d]: %w", e.ObjectID, e.PinIndex, ErrUnknownEndpoint)
		}
		return s.PinPosition(e.PinIndex), nil
	case EndpointJunction:
		j, ok := reg.Junction(e.ObjectID)
		if !ok {
			return geom.Point{}, fmt.Errorf("router: resolve junction endpoint %q: %w", e.ObjectID, ErrUnknownEndpoint)
		}
		return j.Position, nil
	default:
		return geom.Point{}, fmt.Errorf("router: resolve endpoint: %w", ErrUnknownEndpoint)
	}
}

// dirMask returns the direction mask a connection pin restricts departure
// to, or vgraph.DirAll for endpoints with no such restriction.
func (e Endpoint) dirMask(reg *obstacle.Registry) vgraph.Direction {
	if e.Kind != EndpointShapePin {
		return vgraph.DirAll
	}
	s, ok := reg.Shape(e.ObjectID)
	if !ok || e.PinIndex < 0 || e.PinIndex >= len(s.Pins) {
		return vgraph.DirAll
	}
	return s.Pins[e.PinIndex].DirMask
}

// preferredDir returns the single side a connection pin faces, or the zero
// Direction when the endpoint is not a shape pin or the pin carries no side
// preference (RelativePin). Used only for the soft port-direction penalty;
// the hard DirMask constraint above is unaffected either way.
func (e Endpoint) preferredDir(reg *obstacle.Registry) vgraph.Direction {
	if e.Kind != EndpointShapePin {
		return 0
	}
	s, ok := reg.Shape(e.ObjectID)
	if !ok || e.PinIndex < 0 || e.PinIndex >= len(s.Pins) {
		return 0
	}
	p := s.Pins[e.PinIndex]
	if !p.UseSide {
		return 0
	}
	return p.Side
}

// connector is the router's internal bookkeeping for one registered
// connector: its endpoints, its last search result (vertex ids, valid only
// within the store it was computed against), the derived raw/display
// routes, and per-connector routing state (spec §3 ConnectorRef).
type connector struct {
	id             string
	typ            ConnectorType
	endA, endB     Endpoint
	hatesCrossings bool
	fixed          bool

	needsReroute bool
	falsePath    bool

	vertexIDs     []vgraph.ID
	cycleBlockers [][2]vgraph.ID

	rawRoute PolyLine
	display  PolyLine

	callback func(PolyLine)
}

// routerConfig holds the functional-option-resolved construction state plus
// the live penalty/option/nudge-distance settings mutated by the
// SetRoutingOption/SetRoutingPenalty/SetOrthogonalNudgeDistance setters.
type routerConfig struct {
	logger        Logger
	penalties     search.Penalties
	options       map[RoutingOption]bool
	nudgeDistance float64
}

// RouterOption configures a Router at construction time, mirroring
// dijkstra.Option / prim_kruskal.Option / builder.BuilderOption.
type RouterOption func(*routerConfig)

// WithLogger supplies the diagnostics sink (default NopLogger).
func WithLogger(l Logger) RouterOption {
	return func(c *routerConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithPenalties seeds the initial penalty set.
func WithPenalties(p search.Penalties) RouterOption {
	return func(c *routerConfig) { c.penalties = p }
}

// WithOrthogonalNudgeDistance seeds the initial nudge distance (default 4).
func WithOrthogonalNudgeDistance(d float64) RouterOption {
	return func(c *routerConfig) { c.nudgeDistance = d }
}

// WithRoutingOption seeds one of the five named toggles.
func WithRoutingOption(opt RoutingOption, enabled bool) RouterOption {
	return func(c *routerConfig) { c.options[opt] = enabled }
}

func newRouterConfig(opts ...RouterOption) *routerConfig {
	cfg := &routerConfig{
		logger:        NopLogger{},
		options:       make(map[RoutingOption]bool),
		nudgeDistance: 4,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// actionKind tags one queued mutation (spec §5 "mutations ... are
// enqueued, not applied").
type actionKind int

const (
	actAddShape actionKind = iota
	actRemoveShape
	actMoveShape
	actSetShapePolygon
	actAddJunction
	actRemoveJunction
	actMoveJunction
	actAddCluster
	actAddConnector
	actRemoveConnector
	actSetConnectorEndpoints
	actSetConnectorType
	actSetHatesCrossings
)

// action is one queued mutation, applied in FIFO order at the start of
// ProcessTransaction's step 1.
type action struct {
	kind actionKind

	shape    *obstacle.Shape
	junction *obstacle.Junction
	cluster  *obstacle.Cluster

	id    string
	delta geom.Point
	pos   geom.Point
	poly  geom.Polygon

	connID         string
	endA, endB     Endpoint
	connType       ConnectorType
	hatesCrossings bool
}

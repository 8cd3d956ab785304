package search

import (
	"github.com/katalvlaran/avoidroute/geom"
	"github.com/katalvlaran/avoidroute/vgraph"
)

// Penalties configures the per-edge cost multipliers of spec §4.6 and the
// public penalty kinds of spec §6 setRoutingPenalty.
type Penalties struct {
	// Segment is added once per accepted segment (discourages many short
	// segments).
	Segment float64
	// Angle (a.k.a. "bend") is added when the incoming and outgoing edge
	// are not collinear at the intermediate vertex.
	Angle float64
	// Crossing is added per estimated crossing with an already-routed
	// edge.
	Crossing float64
	// Cluster is added when an edge crosses a cluster boundary.
	Cluster float64
	// FixedSharedPathPenalty is not read by Search. When the router's
	// OptPenaliseOrthogonalSharedPaths and OptFixedSharedPathPenalty are
	// both set, the router copies it into Crossing, so it scales the edge
	// cost per crossing like Crossing does (spec §6 fixedSharedPathPenalty).
	FixedSharedPathPenalty float64
	// PortDirection penalises departing a connection pin against its
	// PreferredDir side.
	PortDirection float64
}

// RoutedSegment is one already-placed display-route segment, used to
// estimate the crossing penalty of a candidate edge (spec §4.6 "counting
// how many already-routed edges it would cross").
type RoutedSegment struct {
	A, B geom.Point
}

// Option configures a Search call.
type Option func(*config)

type config struct {
	rubberBand     []vgraph.ID
	routed         []RoutedSegment
	hatesCrossings bool
	cycleBlockers  map[[2]vgraph.ID]struct{}
}

// WithRubberBand supplies the connector's current route (as vertex ids, in
// order) so the search restarts from its penultimate vertex, stepping
// backward on failure (spec §4.6 "Rubber-band routing").
func WithRubberBand(route []vgraph.ID) Option {
	return func(c *config) { c.rubberBand = route }
}

// WithRoutedSegments supplies already-placed display-route segments for
// crossing-penalty estimation.
func WithRoutedSegments(segs []RoutedSegment) Option {
	return func(c *config) { c.routed = segs }
}

// WithHatesCrossings marks the connector as having the {hatesCrossings}
// flag of spec §3's ConnectorRef, amplifying the crossing penalty.
func WithHatesCrossings(v bool) Option {
	return func(c *config) { c.hatesCrossings = v }
}

// WithCycleBlockers excludes previously-failed (u,v) pairs from
// consideration (spec §7 "the router records this as a cycle-blocker edge").
func WithCycleBlockers(pairs [][2]vgraph.ID) Option {
	return func(c *config) {
		if c.cycleBlockers == nil {
			c.cycleBlockers = make(map[[2]vgraph.ID]struct{}, len(pairs))
		}
		for _, p := range pairs {
			c.cycleBlockers[p] = struct{}{}
			c.cycleBlockers[[2]vgraph.ID{p[1], p[0]}] = struct{}{}
		}
	}
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

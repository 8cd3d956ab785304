package router

import (
	"github.com/katalvlaran/avoidroute/crossing"
	"github.com/katalvlaran/avoidroute/geom"
	"github.com/katalvlaran/avoidroute/hyperedge"
	"github.com/katalvlaran/avoidroute/nudge"
	"github.com/katalvlaran/avoidroute/obstacle"
	"github.com/katalvlaran/avoidroute/search"
	"github.com/katalvlaran/avoidroute/vgraph"
	"github.com/katalvlaran/avoidroute/visibility"
)

// Router owns every obstacle, junction, cluster, and connector, and drives
// the full pipeline of spec §4.10 through ProcessTransaction. See doc.go.
type Router struct {
	routingType RoutingType
	registry    *obstacle.Registry

	polyStore  *vgraph.Store
	orthoStore *vgraph.Store
	poly       *visibility.Polyline
	ortho      *visibility.Orthogonal

	connectors map[string]*connector
	order      []string // connector insertion order (spec §5 callback order)

	queue         []action
	inTransaction bool

	logger Logger
	cfg    routerConfig
}

// NewRouter constructs a Router for the given routing type.
func NewRouter(routingType RoutingType, opts ...RouterOption) *Router {
	cfg := newRouterConfig(opts...)
	return &Router{
		routingType: routingType,
		registry:    obstacle.NewRegistry(),
		polyStore:   vgraph.NewStore(),
		orthoStore:  vgraph.NewStore(),
		poly:        visibility.NewPolyline(false),
		ortho:       visibility.NewOrthogonal(),
		connectors:  make(map[string]*connector),
		logger:      cfg.logger,
		cfg:         *cfg,
	}
}

// enqueue appends a to the action queue, rejecting the call if it is made
// while ProcessTransaction is already running (spec §7 "invalid-transaction").
func (r *Router) enqueue(a action) error {
	if r.inTransaction {
		return ErrInvalidTransaction
	}
	r.queue = append(r.queue, a)
	return nil
}

// ProcessTransaction executes all queued work: see doc.go for the six
// steps. It never returns an error; every failure mode is non-fatal and
// reported through the Logger (spec §7).
func (r *Router) ProcessTransaction() {
	r.inTransaction = true
	defer func() { r.inTransaction = false }()

	// Step 1: apply queued mutations.
	pending := r.queue
	r.queue = nil
	for _, a := range pending {
		r.applyAction(a)
	}

	// Step 2: rebuild the polyline shape subgraph if the registry went
	// stale. The orthogonal graph has no persistent state and is always
	// regenerated fresh in step 3 (see visibility/doc.go).
	if r.registry.Dirty() {
		if r.routingType != OrthogonalRouting {
			if err := r.poly.BuildShapeGraph(r.polyStore, r.registry.Shapes(), r.registry.Clusters()); err != nil {
				r.logger.Warnf("router: rebuild polyline shape graph: %v", err)
			}
		}
		r.registry.ClearDirty()
		for _, c := range r.connectors {
			c.needsReroute = true
		}
	}

	polyEndpoints := r.rebuildPolylineEndpoints()
	orthoEndpoints := r.rebuildOrthogonalGraph()

	// Step 3: path-search every connector needing a reroute.
	changed := make(map[string]bool)
	for _, id := range r.order {
		c := r.connectors[id]
		if c == nil || (!c.needsReroute && !c.falsePath) {
			continue
		}
		switch c.typ {
		case ConnPolyline:
			pair, ok := polyEndpoints[id]
			if !ok {
				continue
			}
			r.routeConnector(c, r.polyStore, pair[0], pair[1])
		case ConnOrthogonal:
			pair, ok := orthoEndpoints[id]
			if !ok {
				continue
			}
			r.routeConnector(c, r.orthoStore, pair[0], pair[1])
		}
		changed[id] = true
	}

	// Step 4: simplify, crossing-analyse, and nudge orthogonal routes.
	r.postProcessOrthogonal(changed)

	// Step 5: hyperedge engine per junction.
	r.runHyperedges(changed)

	// Step 6: fire callbacks in connector-insertion order.
	for _, id := range r.order {
		if !changed[id] {
			continue
		}
		c := r.connectors[id]
		if c.callback != nil {
			c.callback(c.display)
		}
	}
}

// applyAction performs one queued mutation against the registry or the
// connector table.
func (r *Router) applyAction(a action) {
	switch a.kind {
	case actAddShape:
		if err := r.registry.AddShape(a.shape); err != nil {
			r.logger.Warnf("router: add shape: %v", err)
			return
		}
		if a.shape.IsDegenerate() {
			r.logger.Warnf("router: shape %q is geometry-degenerate", a.shape.ID())
		}
	case actRemoveShape:
		if err := r.registry.RemoveShape(a.id); err != nil {
			r.logger.Warnf("router: remove shape: %v", err)
		}
	case actMoveShape:
		if err := r.registry.MoveShape(a.id, a.delta); err != nil {
			r.logger.Warnf("router: move shape: %v", err)
		}
	case actSetShapePolygon:
		if err := r.registry.SetShapePolygon(a.id, a.poly); err != nil {
			r.logger.Warnf("router: set shape polygon: %v", err)
			return
		}
		if s, ok := r.registry.Shape(a.id); ok && s.IsDegenerate() {
			r.logger.Warnf("router: shape %q is geometry-degenerate", a.id)
		}
	case actAddJunction:
		if err := r.registry.AddJunction(a.junction); err != nil {
			r.logger.Warnf("router: add junction: %v", err)
		}
	case actRemoveJunction:
		if err := r.registry.RemoveJunction(a.id); err != nil {
			r.logger.Warnf("router: remove junction: %v", err)
		}
	case actMoveJunction:
		if err := r.registry.MoveJunction(a.id, a.pos); err != nil {
			r.logger.Warnf("router: move junction: %v", err)
		}
	case actAddCluster:
		if err := r.registry.AddCluster(a.cluster); err != nil {
			r.logger.Warnf("router: add cluster: %v", err)
		}
	case actAddConnector:
		if _, exists := r.connectors[a.connID]; exists {
			r.logger.Warnf("router: add connector: duplicate id %q", a.connID)
			return
		}
		c := &connector{id: a.connID, typ: a.connType, endA: a.endA, endB: a.endB, needsReroute: true}
		r.connectors[a.connID] = c
		r.order = append(r.order, a.connID)
		r.attachJunctionEndpoints(c)
	case actRemoveConnector:
		c, ok := r.connectors[a.connID]
		if !ok {
			r.logger.Warnf("router: remove connector: unknown id %q", a.connID)
			return
		}
		r.detachJunctionEndpoints(c)
		delete(r.connectors, a.connID)
		r.order = removeFromOrder(r.order, a.connID)
	case actSetConnectorEndpoints:
		c, ok := r.connectors[a.connID]
		if !ok {
			r.logger.Warnf("router: set connector endpoints: unknown id %q", a.connID)
			return
		}
		r.detachJunctionEndpoints(c)
		c.endA, c.endB = a.endA, a.endB
		r.attachJunctionEndpoints(c)
		c.needsReroute = true
	case actSetConnectorType:
		c, ok := r.connectors[a.connID]
		if !ok {
			r.logger.Warnf("router: set connector type: unknown id %q", a.connID)
			return
		}
		c.typ = a.connType
		c.needsReroute = true
	case actSetHatesCrossings:
		if c, ok := r.connectors[a.connID]; ok {
			c.hatesCrossings = a.hatesCrossings
		}
	}
}

func (r *Router) attachJunctionEndpoints(c *connector) {
	if c.endA.Kind == EndpointJunction {
		if j, ok := r.registry.Junction(c.endA.ObjectID); ok {
			j.AttachEndpoint(c.id)
		}
	}
	if c.endB.Kind == EndpointJunction {
		if j, ok := r.registry.Junction(c.endB.ObjectID); ok {
			j.AttachEndpoint(c.id)
		}
	}
}

func (r *Router) detachJunctionEndpoints(c *connector) {
	if c.endA.Kind == EndpointJunction {
		if j, ok := r.registry.Junction(c.endA.ObjectID); ok {
			j.DetachEndpoint(c.id)
		}
	}
	if c.endB.Kind == EndpointJunction {
		if j, ok := r.registry.Junction(c.endB.ObjectID); ok {
			j.DetachEndpoint(c.id)
		}
	}
}

func removeFromOrder(order []string, id string) []string {
	for i, oid := range order {
		if oid == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}

// rebuildPolylineEndpoints rewires every polyline connector's short-lived
// endpoint vertices in one call, per visibility.Polyline.RebuildEndpoints'
// contract, and returns the (idA, idB) pair assigned to each connector id.
func (r *Router) rebuildPolylineEndpoints() map[string][2]vgraph.ID {
	if r.routingType == OrthogonalRouting {
		return nil
	}
	var pts []vgraph.Point
	var ids []string
	for _, id := range r.order {
		c := r.connectors[id]
		if c == nil || c.typ != ConnPolyline {
			continue
		}
		ptA, errA := c.endA.resolvePoint(r.registry)
		ptB, errB := c.endB.resolvePoint(r.registry)
		if errA != nil || errB != nil {
			r.logger.Warnf("router: connector %q: unresolved endpoint", id)
			continue
		}
		pts = append(pts, vgraph.Point{Point: ptA, OwnerID: id + ":A"})
		pts = append(pts, vgraph.Point{Point: ptB, OwnerID: id + ":B"})
		ids = append(ids, id)
	}
	vids := r.poly.RebuildEndpoints(r.polyStore, pts)
	out := make(map[string][2]vgraph.ID, len(ids))
	for i, connID := range ids {
		out[connID] = [2]vgraph.ID{vids[2*i], vids[2*i+1]}
	}
	return out
}

// rebuildOrthogonalGraph regenerates the entire orthogonal visibility graph
// from the current shapes and every orthogonal connector's endpoints, since
// visibility.Orthogonal carries no state between calls (visibility/doc.go).
func (r *Router) rebuildOrthogonalGraph() map[string][2]vgraph.ID {
	if r.routingType == PolylineRouting {
		return nil
	}
	var terminals []visibility.Terminal
	var ids []string
	for _, id := range r.order {
		c := r.connectors[id]
		if c == nil || c.typ != ConnOrthogonal {
			continue
		}
		ptA, errA := c.endA.resolvePoint(r.registry)
		ptB, errB := c.endB.resolvePoint(r.registry)
		if errA != nil || errB != nil {
			r.logger.Warnf("router: connector %q: unresolved endpoint", id)
			continue
		}
		terminals = append(terminals,
			visibility.Terminal{OwnerID: id + ":A", Pt: ptA, DirMask: c.endA.dirMask(r.registry), PreferredDir: c.endA.preferredDir(r.registry)},
			visibility.Terminal{OwnerID: id + ":B", Pt: ptB, DirMask: c.endB.dirMask(r.registry), PreferredDir: c.endB.preferredDir(r.registry)},
		)
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil
	}

	r.orthoStore = vgraph.NewStore()
	vids, err := r.ortho.Build(r.orthoStore, r.registry.Shapes(), terminals)
	if err != nil {
		r.logger.Warnf("router: rebuild orthogonal graph: %v", err)
		return nil
	}
	out := make(map[string][2]vgraph.ID, len(ids))
	for i, connID := range ids {
		out[connID] = [2]vgraph.ID{vids[2*i], vids[2*i+1]}
	}
	return out
}

// routeConnector runs path search for c between idA and idB in store,
// falling back to a straight-line route and a cycle-blocker edge on
// no-path (spec §7 "no-path").
func (r *Router) routeConnector(c *connector, store *vgraph.Store, idA, idB vgraph.ID) {
	prevIDs := c.vertexIDs

	penalties := r.cfg.penalties
	if r.cfg.options[OptPenaliseOrthogonalSharedPaths] && r.cfg.options[OptFixedSharedPathPenalty] {
		penalties.Crossing = penalties.FixedSharedPathPenalty
	}

	opts := []search.Option{search.WithHatesCrossings(c.hatesCrossings)}
	if len(c.cycleBlockers) > 0 {
		opts = append(opts, search.WithCycleBlockers(c.cycleBlockers))
	}
	if len(prevIDs) >= 3 {
		opts = append(opts, search.WithRubberBand(prevIDs))
	}
	if c.typ == ConnOrthogonal {
		opts = append(opts, search.WithRoutedSegments(r.routedSegments(c.id)))
	}

	ids, err := search.Search(store, idA, idB, penalties, opts...)
	if err != nil {
		if idx, ok := store.ExistsEdge(idA, idB); ok {
			store.Edge(idx).CycleBlocker = true
			c.cycleBlockers = append(c.cycleBlockers, [2]vgraph.ID{idA, idB})
		}
		r.logger.Warnf("router: connector %q: %v; using a straight-line fallback route", c.id, err)
		ptA, errA := c.endA.resolvePoint(r.registry)
		ptB, errB := c.endB.resolvePoint(r.registry)
		if va, okA := store.Lookup(idA); okA {
			ptA, errA = va.Pt.Point, nil
		}
		if vb, okB := store.Lookup(idB); okB {
			ptB, errB = vb.Pt.Point, nil
		}
		if errA != nil || errB != nil {
			c.needsReroute, c.falsePath = false, false
			return
		}
		c.vertexIDs = nil
		c.rawRoute = PolyLine{Points: []geom.Point{ptA, ptB}}
		c.display = c.rawRoute
		c.needsReroute, c.falsePath = false, false
		return
	}

	c.vertexIDs = ids
	pts := make([]geom.Point, len(ids))
	for i, id := range ids {
		v, _ := store.Lookup(id)
		pts[i] = v.Pt.Point
	}
	c.rawRoute = PolyLine{Points: pts}
	c.display = PolyLine{Points: append([]geom.Point{}, pts...)}
	c.needsReroute, c.falsePath = false, false
}

// routedSegments returns the already-placed display-route segments of
// every orthogonal connector except excludeID, for crossing-penalty
// estimation (spec §4.6).
func (r *Router) routedSegments(excludeID string) []search.RoutedSegment {
	var out []search.RoutedSegment
	for _, id := range r.order {
		if id == excludeID {
			continue
		}
		c := r.connectors[id]
		if c == nil || c.typ != ConnOrthogonal || len(c.display.Points) < 2 {
			continue
		}
		pts := c.display.Points
		for i := 0; i+1 < len(pts); i++ {
			out = append(out, search.RoutedSegment{A: pts[i], B: pts[i+1]})
		}
	}
	return out
}

// postProcessOrthogonal runs simplification, shared-path ordering, and
// nudging over every orthogonal connector's display route (spec §4.10 step
// 4), regardless of whether that connector itself was rerouted this
// transaction, since a neighbour's new route can still require renudging.
func (r *Router) postProcessOrthogonal(changed map[string]bool) {
	var ids []string
	var routes []nudge.Route
	for _, id := range r.order {
		c := r.connectors[id]
		if c == nil || c.typ != ConnOrthogonal || len(c.display.Points) < 2 {
			continue
		}
		ids = append(ids, id)
		routes = append(routes, nudge.Route{
			ConnectorID: id,
			Points:      simplifyPolyline(c.display.Points),
			Fixed:       c.fixed,
		})
	}
	if len(routes) == 0 {
		return
	}

	orderX, orderY := crossing.NewPartialOrder(), crossing.NewPartialOrder()
	if r.cfg.options[OptPenaliseOrthogonalSharedPaths] {
		for i := 0; i < len(routes); i++ {
			for j := i + 1; j < len(routes); j++ {
				an := crossing.Analyse(routes[i].Points, routes[j].Points)
				for _, run := range an.SharedRuns {
					a := crossing.PointRep{Pt: routes[i].Points[run.AStart], RunID: i}
					b := crossing.PointRep{Pt: routes[j].Points[run.BStart], RunID: j}
					orderX.AddBefore(a, b)
					orderY.AddBefore(a, b)
				}
			}
		}
	}

	// nudge.Nudge always runs both the centring pre-pass and the ordered
	// pass per dimension (nudge/doc.go); OptPerformUnifyingNudgingPreprocessingStep
	// is honoured as "the centring pass is always available", since the
	// collaborator does not expose disabling it independently of the
	// ordered pass.
	nudgeOpts := nudge.Options{
		NudgeDistance:         r.cfg.nudgeDistance,
		OrderX:                orderX,
		OrderY:                orderY,
		NudgeTerminalSegments: r.cfg.options[OptNudgeOrthogonalSegmentsConnectedToShapes],
	}

	nudged, err := nudge.Nudge(routes, r.obstacleRects(), nudgeOpts)
	if err != nil {
		r.logger.Warnf("router: nudge: %v", err)
		return
	}
	for i, rt := range nudged {
		c := r.connectors[ids[i]]
		if !samePoints(c.display.Points, rt.Points) {
			changed[ids[i]] = true
		}
		c.display = PolyLine{Points: rt.Points}
	}
}

func (r *Router) obstacleRects() []nudge.Rect {
	shapes := r.registry.Shapes()
	out := make([]nudge.Rect, 0, len(shapes))
	for _, s := range shapes {
		b := s.Bounds()
		out = append(out, nudge.Rect{MinX: b.Min.X, MinY: b.Min.Y, MaxX: b.Max.X, MaxY: b.Max.Y})
	}
	return out
}

// runHyperedges runs the hyperedge engine (spec §4.9) for every junction
// with two or more attached connectors, when OptImproveHyperedgeRouting is
// set. The improved tree's geometry is folded back as an updated junction
// position; affected connectors are flagged for reroute on the next
// transaction rather than having their already-computed display route
// spliced mid-transaction (see DESIGN.md "known simplification").
func (r *Router) runHyperedges(changed map[string]bool) {
	if !r.cfg.options[OptImproveHyperedgeRouting] {
		return
	}
	for _, j := range r.registry.Junctions() {
		if len(j.Endpoints) < 2 {
			continue
		}
		var terminals []vgraph.ID
		for _, connID := range j.Endpoints {
			c := r.connectors[connID]
			if c == nil || c.typ != ConnOrthogonal || len(c.vertexIDs) == 0 {
				continue
			}
			near := c.vertexIDs[0]
			if v, ok := r.orthoStore.Lookup(near); ok && !v.Pt.Point.Equal(j.Position) {
				near = c.vertexIDs[len(c.vertexIDs)-1]
			}
			terminals = append(terminals, near)
		}
		if len(terminals) < 2 {
			continue
		}

		tree, err := hyperedge.BuildMTST(r.orthoStore, terminals, r.cfg.penalties.Angle)
		if err != nil {
			r.logger.Warnf("router: hyperedge for junction %q: %v", j.Id, err)
			continue
		}

		positions := make(hyperedge.PositionMap, len(tree.Edges)*2)
		for _, e := range tree.Edges {
			if _, ok := positions[e.U]; !ok {
				if v, ok := r.orthoStore.Lookup(e.U); ok {
					positions[e.U] = v.Pt.Point
				}
			}
			if _, ok := positions[e.V]; !ok {
				if v, ok := r.orthoStore.Lookup(e.V); ok {
					positions[e.V] = v.Pt.Point
				}
			}
		}
		_, pos := hyperedge.Improve(tree, positions, 4)

		if j.Fixed {
			continue
		}
		var sumX, sumY float64
		var n float64
		for _, t := range terminals {
			if p, ok := pos[t]; ok {
				sumX += p.X
				sumY += p.Y
				n++
			}
		}
		if n == 0 {
			continue
		}
		newPos := geom.Point{X: sumX / n, Y: sumY / n}
		if newPos.Equal(j.Position) {
			continue
		}
		if err := r.registry.MoveJunction(j.Id, newPos); err != nil {
			r.logger.Warnf("router: move junction %q after hyperedge improvement: %v", j.Id, err)
			continue
		}
		for _, connID := range j.Endpoints {
			if c, ok := r.connectors[connID]; ok {
				c.needsReroute = true
			}
		}
	}
}

// samePoints reports whether a and b have the same length and every
// coordinate pair is equal within tolerance, used to decide whether
// post-processing actually changed a connector's display route (spec §8
// idempotence: an unchanged transaction must not re-fire callbacks).
func samePoints(a, b []geom.Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// simplifyPolyline drops interior points that are collinear with both
// neighbours (spec §4.10 step 4 "Simplify").
func simplifyPolyline(pts []geom.Point) []geom.Point {
	if len(pts) < 3 {
		out := make([]geom.Point, len(pts))
		copy(out, pts)
		return out
	}
	out := make([]geom.Point, 0, len(pts))
	out = append(out, pts[0])
	for i := 1; i < len(pts)-1; i++ {
		if geom.TurnDirection(pts[i-1], pts[i], pts[i+1]) == 0 {
			continue
		}
		out = append(out, pts[i])
	}
	out = append(out, pts[len(pts)-1])
	return out
}

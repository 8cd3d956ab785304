package router_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/avoidroute/geom"
	"github.com/katalvlaran/avoidroute/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestProcessTransactionEmptyRouterFiresNoCallbacks covers spec §8's first
// literal scenario: a transaction with nothing queued must succeed quietly
// and fire no callback.
func TestProcessTransactionEmptyRouterFiresNoCallbacks(t *testing.T) {
	r := router.NewRouter(router.OrthogonalRouting)
	fired := false
	r.ProcessTransaction()
	assert.False(t, fired)
}

// TestSingleConnectorRoutesAroundShape covers the "single-shape detour"
// scenario: a connector whose straight line would cross a shape must bend
// around it.
func TestSingleConnectorRoutesAroundShape(t *testing.T) {
	r := router.NewRouter(router.OrthogonalRouting)

	_, err := r.AddShape(geom.Rect{Min: geom.Point{X: 40, Y: 0}, Max: geom.Point{X: 60, Y: 100}}, "box")
	require.NoError(t, err)

	connID, err := r.AddConnector(
		router.FreeEndpoint(geom.Point{X: 0, Y: 50}),
		router.FreeEndpoint(geom.Point{X: 100, Y: 50}),
		router.ConnOrthogonal, "")
	require.NoError(t, err)

	var got router.PolyLine
	require.NoError(t, r.OnRouteChanged(connID, func(p router.PolyLine) { got = p }))

	r.ProcessTransaction()

	require.GreaterOrEqual(t, len(got.Points), 3, "route must detour around the shape rather than cross it")
	for i := 0; i+1 < len(got.Points); i++ {
		a, b := got.Points[i], got.Points[i+1]
		assert.True(t, a.X == b.X || a.Y == b.Y, "every segment of an orthogonal route must be axis-aligned")
	}
}

// TestParallelTerminalConnectorsStayAnchoredByDefault covers the default,
// opt-out case of the terminal-segment nudging rule (spec §4.8.1): two
// coincident connectors whose whole route is a single terminal shift
// segment must keep their actual source/target points exactly where they
// were anchored, not drift apart in the unconstrained dimension.
func TestParallelTerminalConnectorsStayAnchoredByDefault(t *testing.T) {
	const nudgeDist = 10.0
	r := router.NewRouter(router.OrthogonalRouting, router.WithOrthogonalNudgeDistance(nudgeDist))

	src := geom.Point{X: 0, Y: 0}
	dst := geom.Point{X: 100, Y: 0}
	id1, err := r.AddConnector(router.FreeEndpoint(src), router.FreeEndpoint(dst), router.ConnOrthogonal, "")
	require.NoError(t, err)
	id2, err := r.AddConnector(router.FreeEndpoint(src), router.FreeEndpoint(dst), router.ConnOrthogonal, "")
	require.NoError(t, err)

	r.ProcessTransaction()

	route1, err := r.DisplayRoute(id1)
	require.NoError(t, err)
	route2, err := r.DisplayRoute(id2)
	require.NoError(t, err)
	require.NotEmpty(t, route1.Points)
	require.NotEmpty(t, route2.Points)

	assert.InDelta(t, src.Y, route1.Points[0].Y, 1e-6, "connector's source point must stay anchored")
	assert.InDelta(t, dst.Y, route1.Points[len(route1.Points)-1].Y, 1e-6, "connector's target point must stay anchored")
	assert.InDelta(t, src.Y, route2.Points[0].Y, 1e-6, "connector's source point must stay anchored")
	assert.InDelta(t, dst.Y, route2.Points[len(route2.Points)-1].Y, 1e-6, "connector's target point must stay anchored")
}

// TestParallelConnectorsAreNudgedApart covers the "two-parallel-connector
// nudging" scenario with terminal nudging opted in (spec §4.8.1's "Terminal
// segments may be optionally nudged within a bounded buffer"): two
// connectors sharing a corridor must end up separated by at least the
// configured nudge distance, each moved no more than that distance from its
// original anchor.
func TestParallelConnectorsAreNudgedApart(t *testing.T) {
	const nudgeDist = 10.0
	r := router.NewRouter(router.OrthogonalRouting,
		router.WithOrthogonalNudgeDistance(nudgeDist),
		router.WithRoutingOption(router.OptNudgeOrthogonalSegmentsConnectedToShapes, true))

	id1, err := r.AddConnector(
		router.FreeEndpoint(geom.Point{X: 0, Y: 0}),
		router.FreeEndpoint(geom.Point{X: 100, Y: 0}),
		router.ConnOrthogonal, "")
	require.NoError(t, err)
	id2, err := r.AddConnector(
		router.FreeEndpoint(geom.Point{X: 0, Y: 0}),
		router.FreeEndpoint(geom.Point{X: 100, Y: 0}),
		router.ConnOrthogonal, "")
	require.NoError(t, err)

	r.ProcessTransaction()

	route1, err := r.DisplayRoute(id1)
	require.NoError(t, err)
	route2, err := r.DisplayRoute(id2)
	require.NoError(t, err)
	require.NotEmpty(t, route1.Points)
	require.NotEmpty(t, route2.Points)

	// Both routes share the same endpoints, so any still-distinguishable
	// interior point must be separated by at least the nudge distance, and
	// by no more than the buffer bounds each point to.
	sep := 0.0
	for i := range route1.Points {
		if i < len(route2.Points) {
			d := geom.Dist(route1.Points[i], route2.Points[i])
			if d > sep {
				sep = d
			}
			assert.LessOrEqual(t, math.Abs(route1.Points[i].Y), nudgeDist+1e-6, "terminal point must stay within the nudge buffer")
		}
	}
	assert.True(t, sep >= nudgeDist-1e-6, "nudged routes must separate by at least the configured distance, got %v", sep)
}

// TestRerouteAfterMoveSharesInteriorVertices covers the "rubber-band
// reroute" scenario: a small endpoint move should reuse most of the
// previous route's interior vertices rather than recomputing from scratch.
func TestRerouteAfterMoveSharesInteriorVertices(t *testing.T) {
	r := router.NewRouter(router.OrthogonalRouting)

	_, err := r.AddShape(geom.Rect{Min: geom.Point{X: 40, Y: 0}, Max: geom.Point{X: 60, Y: 100}}, "box")
	require.NoError(t, err)

	connID, err := r.AddConnector(
		router.FreeEndpoint(geom.Point{X: 0, Y: 50}),
		router.FreeEndpoint(geom.Point{X: 100, Y: 50}),
		router.ConnOrthogonal, "")
	require.NoError(t, err)

	r.ProcessTransaction()
	before, err := r.Route(connID)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(before.Points), 3)

	require.NoError(t, r.SetConnectorEndpoints(connID,
		router.FreeEndpoint(geom.Point{X: 0, Y: 52}),
		router.FreeEndpoint(geom.Point{X: 100, Y: 50})))
	r.ProcessTransaction()
	after, err := r.Route(connID)
	require.NoError(t, err)

	shared := 0
	for _, a := range before.Points {
		for _, b := range after.Points {
			if a.Equal(b) {
				shared++
				break
			}
		}
	}
	assert.GreaterOrEqual(t, shared, len(before.Points)-2, "rubber-band reroute should keep most interior vertices")
}

// TestHyperedgeFormsSingleJunctionForThreeTerminals covers the "3-terminal
// hyperedge" scenario: three connectors meeting at one junction are
// processed twice without panicking, and each keeps a non-empty display
// route.
func TestHyperedgeFormsSingleJunctionForThreeTerminals(t *testing.T) {
	r := router.NewRouter(router.OrthogonalRouting, router.WithRoutingOption(router.OptImproveHyperedgeRouting, true))

	jID, err := r.AddJunction(geom.Point{X: 50, Y: 50}, "hub")
	require.NoError(t, err)

	ends := []geom.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 50, Y: 100}}
	var connIDs []string
	for _, p := range ends {
		cid, err := r.AddConnector(router.FreeEndpoint(p), router.JunctionEndpoint(jID), router.ConnOrthogonal, "")
		require.NoError(t, err)
		connIDs = append(connIDs, cid)
	}

	require.NotPanics(t, func() { r.ProcessTransaction() })
	require.NotPanics(t, func() { r.ProcessTransaction() })

	for _, cid := range connIDs {
		dr, err := r.DisplayRoute(cid)
		require.NoError(t, err)
		assert.NotEmpty(t, dr.Points)
	}
}

// TestDuplicateConnectorIDIsRejected covers spec §7's "duplicate-id" error
// taxonomy entry: adding a second connector under an id already in use must
// not silently replace the first.
func TestDuplicateConnectorIDIsRejected(t *testing.T) {
	logged := &capturingLogger{}
	r := router.NewRouter(router.OrthogonalRouting, router.WithLogger(logged))

	_, err := r.AddConnector(router.FreeEndpoint(geom.Point{X: 0, Y: 0}), router.FreeEndpoint(geom.Point{X: 10, Y: 0}), router.ConnOrthogonal, "dup")
	require.NoError(t, err)
	_, err = r.AddConnector(router.FreeEndpoint(geom.Point{X: 0, Y: 0}), router.FreeEndpoint(geom.Point{X: 10, Y: 0}), router.ConnOrthogonal, "dup")
	require.NoError(t, err, "enqueue itself never fails; the duplicate is rejected when the transaction applies it")

	r.ProcessTransaction()
	assert.True(t, logged.warned, "a duplicate connector id must be logged as a non-fatal diagnostic")
}

// TestMutationDuringTransactionIsRejected covers spec §7's
// "invalid-transaction" entry: calling a mutation method from inside a
// route-changed callback must return ErrInvalidTransaction.
func TestMutationDuringTransactionIsRejected(t *testing.T) {
	r := router.NewRouter(router.OrthogonalRouting)

	connID, err := r.AddConnector(router.FreeEndpoint(geom.Point{X: 0, Y: 0}), router.FreeEndpoint(geom.Point{X: 10, Y: 0}), router.ConnOrthogonal, "")
	require.NoError(t, err)

	var callbackErr error
	require.NoError(t, r.OnRouteChanged(connID, func(router.PolyLine) {
		_, callbackErr = r.AddJunction(geom.Point{X: 0, Y: 0}, "")
	}))

	r.ProcessTransaction()
	require.Error(t, callbackErr)
	assert.ErrorIs(t, callbackErr, router.ErrInvalidTransaction)
}

// TestNoPathFallsBackToStraightLine covers spec §7's "no-path" entry: when
// a shape fully encloses one endpoint so no route can reach the other, the
// router must fall back to a two-point straight line rather than panicking
// or leaving the connector unrouted.
func TestNoPathFallsBackToStraightLine(t *testing.T) {
	r := router.NewRouter(router.OrthogonalRouting)

	_, err := r.AddShape(geom.Rect{Min: geom.Point{X: -10, Y: -10}, Max: geom.Point{X: 10, Y: 10}}, "enclosure")
	require.NoError(t, err)
	connID, err := r.AddConnector(
		router.FreeEndpoint(geom.Point{X: 0, Y: 0}),
		router.FreeEndpoint(geom.Point{X: 50, Y: 0}),
		router.ConnOrthogonal, "")
	require.NoError(t, err)

	require.NotPanics(t, func() { r.ProcessTransaction() })
	dr, err := r.DisplayRoute(connID)
	require.NoError(t, err)
	assert.Equal(t, []geom.Point{{X: 0, Y: 0}, {X: 50, Y: 0}}, dr.Points)
}

// TestIdempotentTransactionFiresNoCallback covers spec §8's idempotence
// property: re-running ProcessTransaction with no queued mutation must not
// re-fire a connector's callback, since its display route is unchanged.
func TestIdempotentTransactionFiresNoCallback(t *testing.T) {
	r := router.NewRouter(router.OrthogonalRouting)

	connID, err := r.AddConnector(
		router.FreeEndpoint(geom.Point{X: 0, Y: 0}),
		router.FreeEndpoint(geom.Point{X: 100, Y: 0}),
		router.ConnOrthogonal, "")
	require.NoError(t, err)

	calls := 0
	require.NoError(t, r.OnRouteChanged(connID, func(router.PolyLine) { calls++ }))

	r.ProcessTransaction()
	assert.Equal(t, 1, calls, "first transaction computes the route and must fire once")

	r.ProcessTransaction()
	assert.Equal(t, 1, calls, "a transaction with no mutation must not re-fire the callback")
}

// TestMoveShapeTriggersRerouteOfAffectedConnector covers spec §8's
// incrementality scenario: moving a shape must invalidate and reroute the
// connector whose route it affects, signalled by a fresh callback.
func TestMoveShapeTriggersRerouteOfAffectedConnector(t *testing.T) {
	r := router.NewRouter(router.OrthogonalRouting)

	_, err := r.AddShape(geom.Rect{Min: geom.Point{X: 40, Y: 0}, Max: geom.Point{X: 60, Y: 100}}, "box")
	require.NoError(t, err)
	connID, err := r.AddConnector(
		router.FreeEndpoint(geom.Point{X: 0, Y: 50}),
		router.FreeEndpoint(geom.Point{X: 100, Y: 50}),
		router.ConnOrthogonal, "")
	require.NoError(t, err)

	calls := 0
	require.NoError(t, r.OnRouteChanged(connID, func(router.PolyLine) { calls++ }))
	r.ProcessTransaction()
	assert.Equal(t, 1, calls)

	require.NoError(t, r.MoveShape("box", 0, 20))
	r.ProcessTransaction()
	assert.Equal(t, 2, calls, "moving an obstacle must trigger a reroute and a fresh callback")
}

// TestUnknownRoutingOptionIsRejected and TestUnknownPenaltyKindIsRejected
// cover the public setter validation paths.
func TestUnknownRoutingOptionIsRejected(t *testing.T) {
	r := router.NewRouter(router.OrthogonalRouting)
	err := r.SetRoutingOption(router.RoutingOption(999), true)
	require.Error(t, err)
	assert.ErrorIs(t, err, router.ErrUnknownRoutingOption)
}

func TestUnknownPenaltyKindIsRejected(t *testing.T) {
	r := router.NewRouter(router.OrthogonalRouting)
	err := r.SetRoutingPenalty(router.PenaltyKind(999), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, router.ErrUnknownPenaltyKind)
}

// TestUnknownConnectorLookupFails covers looking up a Route/DisplayRoute
// for an id that was never registered.
func TestUnknownConnectorLookupFails(t *testing.T) {
	r := router.NewRouter(router.OrthogonalRouting)
	_, err := r.Route("missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, router.ErrUnknownConnector)
}

type capturingLogger struct {
	warned bool
}

func (c *capturingLogger) Warnf(string, ...interface{}) { c.warned = true }

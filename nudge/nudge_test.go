package nudge_test

import (
	"testing"

	"github.com/katalvlaran/avoidroute/geom"
	"github.com/katalvlaran/avoidroute/nudge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func straightRoute(id string, y float64) nudge.Route {
	return nudge.Route{
		ConnectorID: id,
		Points: []geom.Point{
			{X: 0, Y: y},
			{X: 150, Y: y},
			{X: 150, Y: y + 100},
			{X: 300, Y: y + 100},
		},
	}
}

func TestBuildShiftSegmentsFindsVerticalSegmentForDimX(t *testing.T) {
	r := straightRoute("c1", 100)
	segs := nudge.BuildShiftSegments(r, nudge.DimX)
	require.Len(t, segs, 1, "exactly one vertical (X-aligned) segment in this route")
	assert.Equal(t, 1, segs[0].Low)
	assert.Equal(t, 2, segs[0].High)
}

func TestBuildShiftSegmentsFindsHorizontalSegmentsForDimY(t *testing.T) {
	r := straightRoute("c1", 100)
	segs := nudge.BuildShiftSegments(r, nudge.DimY)
	assert.Len(t, segs, 2, "two horizontal (Y-aligned) segments: entry and exit")
}

func TestBuildShiftSegmentsRejectsDegenerateRoute(t *testing.T) {
	r := nudge.Route{ConnectorID: "c1", Points: []geom.Point{{X: 0, Y: 0}}}
	segs := nudge.BuildShiftSegments(r, nudge.DimX)
	assert.Nil(t, segs)
}

func TestComputeLimitsRespectsObstacle(t *testing.T) {
	r := straightRoute("c1", 100)
	segs := nudge.BuildShiftSegments(r, nudge.DimX)
	obstacles := []nudge.Rect{{MinX: 160, MinY: 90, MaxX: 200, MaxY: 250}}
	nudge.ComputeLimits(segs, obstacles)
	require.Len(t, segs, 1)
	assert.True(t, segs[0].MaxLimit <= 160, "vertical segment at x=150 must be limited below the obstacle's left edge")
}

func TestGroupRegionsMergesOverlappingSegments(t *testing.T) {
	a := straightRoute("c1", 100)
	b := straightRoute("c2", 105)
	segsA := nudge.BuildShiftSegments(a, nudge.DimX)
	segsB := nudge.BuildShiftSegments(b, nudge.DimX)
	all := append(append([]nudge.NudgingShiftSegment{}, segsA...), segsB...)
	regions := nudge.GroupRegions(all)
	require.Len(t, regions, 1, "the two connectors' vertical segments overlap in Y and must be one region")
	assert.Len(t, regions[0], 2)
}

func TestNudgeSeparatesParallelConnectors(t *testing.T) {
	routes := []nudge.Route{
		straightRoute("c1", 100),
		straightRoute("c2", 101),
	}
	out, err := nudge.Nudge(routes, nil, nudge.Options{NudgeDistance: 4})
	require.NoError(t, err)
	require.Len(t, out, 2)

	x1 := out[0].Points[1].X
	x2 := out[1].Points[1].X
	assert.InDelta(t, 4, abs(x2-x1), 1e-6, "the two vertical detours must end up separated by nudgeDistance")
}

func TestNudgeRejectsDegenerateRoute(t *testing.T) {
	routes := []nudge.Route{{ConnectorID: "c1", Points: []geom.Point{{X: 0, Y: 0}}}}
	_, err := nudge.Nudge(routes, nil, nudge.Options{NudgeDistance: 4})
	require.Error(t, err)
	assert.ErrorIs(t, err, nudge.ErrDegenerateRoute)
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

package crossing_test

import (
	"testing"

	"github.com/katalvlaran/avoidroute/crossing"
	"github.com/katalvlaran/avoidroute/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifySegmentProperCrossing(t *testing.T) {
	a := []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 10}}
	b := []geom.Point{{X: 0, Y: 10}, {X: 10, Y: 0}}
	classes := crossing.ClassifySegment(a, 0, b)
	require.Len(t, classes, 1)
	assert.Equal(t, crossing.ProperCrossing, classes[0].Kind)
	assert.True(t, classes[0].Point.Equal(geom.Point{X: 5, Y: 5}))
}

func TestClassifySegmentShared(t *testing.T) {
	a := []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}
	b := []geom.Point{{X: 3, Y: 0}, {X: 8, Y: 0}}
	classes := crossing.ClassifySegment(a, 0, b)
	require.Len(t, classes, 1)
	assert.Equal(t, crossing.Shared, classes[0].Kind)
}

func TestAnalyseCountsCrossingsAndSharedRuns(t *testing.T) {
	a := []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}
	b := []geom.Point{{X: 5, Y: -5}, {X: 5, Y: 15}}
	an := crossing.Analyse(a, b)
	assert.Equal(t, 1, an.CrossingCount)
	assert.Empty(t, an.SharedRuns)
}

func TestSplitBranchingSegmentsInsertsVertex(t *testing.T) {
	a := []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}
	b := []geom.Point{{X: 5, Y: 0}, {X: 5, Y: 10}}
	newA, _ := crossing.SplitBranchingSegments(a, b)
	assert.Len(t, newA, 3, "branch point (5,0) must be inserted into A")
}

func TestPartialOrderResolvesAcyclicChain(t *testing.T) {
	o := crossing.NewPartialOrder()
	p1 := crossing.PointRep{Pt: geom.Point{X: 0, Y: 0}}
	p2 := crossing.PointRep{Pt: geom.Point{X: 1, Y: 0}}
	p3 := crossing.PointRep{Pt: geom.Point{X: 2, Y: 0}}
	o.AddBefore(p1, p2)
	o.AddBefore(p2, p3)

	i1, ok := o.PositionFor(p1)
	require.True(t, ok)
	i2, _ := o.PositionFor(p2)
	i3, _ := o.PositionFor(p3)
	assert.True(t, i1 < i2 && i2 < i3)
}

func TestPartialOrderBreaksCycle(t *testing.T) {
	o := crossing.NewPartialOrder()
	p1 := crossing.PointRep{Pt: geom.Point{X: 0, Y: 0}}
	p2 := crossing.PointRep{Pt: geom.Point{X: 1, Y: 0}}
	p3 := crossing.PointRep{Pt: geom.Point{X: 2, Y: 0}}
	o.AddBefore(p1, p2)
	o.AddBefore(p2, p3)
	o.AddBefore(p3, p1) // closes a cycle

	_, ok := o.PositionFor(p1)
	require.True(t, ok)
	assert.NotEmpty(t, o.Swapped, "a cycle-closing edge must be recorded as swapped")
}

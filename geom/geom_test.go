package geom_test

import (
	"testing"

	"github.com/katalvlaran/avoidroute/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTurnDirection(t *testing.T) {
	tests := []struct {
		name       string
		a, b, c    geom.Point
		wantSign   int
	}{
		{"left turn", geom.Point{0, 0}, geom.Point{1, 0}, geom.Point{1, 1}, 1},
		{"right turn", geom.Point{0, 0}, geom.Point{1, 0}, geom.Point{1, -1}, -1},
		{"collinear", geom.Point{0, 0}, geom.Point{1, 0}, geom.Point{2, 0}, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantSign, geom.TurnDirection(tc.a, tc.b, tc.c))
		})
	}
}

func TestPointOnLine(t *testing.T) {
	a, b := geom.Point{0, 0}, geom.Point{10, 0}
	assert.True(t, geom.PointOnLine(a, b, geom.Point{5, 0}, 0))
	assert.True(t, geom.PointOnLine(a, b, geom.Point{5, 1e-6}, 0))
	assert.False(t, geom.PointOnLine(a, b, geom.Point{5, 1}, 0))
}

func TestSegmentIntersectProperCrossing(t *testing.T) {
	kind, pt := geom.SegmentIntersect(
		geom.Point{0, 0}, geom.Point{10, 10},
		geom.Point{0, 10}, geom.Point{10, 0},
	)
	require.Equal(t, geom.IntersectsAtPoint, kind)
	assert.True(t, pt.Equal(geom.Point{5, 5}))
}

func TestSegmentIntersectDisjoint(t *testing.T) {
	kind, _ := geom.SegmentIntersect(
		geom.Point{0, 0}, geom.Point{1, 0},
		geom.Point{0, 5}, geom.Point{1, 5},
	)
	assert.Equal(t, geom.Disjoint, kind)
}

func TestSegmentIntersectCollinearOverlap(t *testing.T) {
	kind, _ := geom.SegmentIntersect(
		geom.Point{0, 0}, geom.Point{5, 0},
		geom.Point{3, 0}, geom.Point{8, 0},
	)
	assert.Equal(t, geom.CollinearOverlapping, kind)
}

func TestPolygonSegmentCrossesInterior(t *testing.T) {
	square := geom.Polygon{Points: []geom.Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}}

	assert.True(t, square.SegmentCrossesInterior(geom.Point{-5, 5}, geom.Point{15, 5}))
	assert.False(t, square.SegmentCrossesInterior(geom.Point{-5, -5}, geom.Point{-1, -1}))
	assert.False(t, square.SegmentCrossesInterior(geom.Point{0, 0}, geom.Point{10, 0}))
}

func TestRectOverlapsAndUnion(t *testing.T) {
	r1 := geom.NewRect(geom.Point{0, 0}, geom.Point{10, 10})
	r2 := geom.NewRect(geom.Point{5, 5}, geom.Point{15, 15})
	assert.True(t, r1.Overlaps(r2))

	u := r1.Union(r2)
	assert.Equal(t, geom.Point{0, 0}, u.Min)
	assert.Equal(t, geom.Point{15, 15}, u.Max)
}

func TestConvexHullSquareWithInteriorPoint(t *testing.T) {
	pts := []geom.Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {5, 5}}
	hull := geom.ConvexHull(pts)
	assert.Len(t, hull, 4)
	for _, p := range hull {
		assert.False(t, p.Equal(geom.Point{5, 5}), "interior point must not be on hull")
	}
}

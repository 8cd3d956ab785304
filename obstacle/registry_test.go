package obstacle_test

import (
	"testing"

	"github.com/katalvlaran/avoidroute/geom"
	"github.com/katalvlaran/avoidroute/obstacle"
	"github.com/katalvlaran/avoidroute/vgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryAddShapeDuplicate(t *testing.T) {
	r := obstacle.NewRegistry()
	s := obstacle.NewRectShape("s1", geom.NewRect(geom.Point{}, geom.Point{X: 10, Y: 10}))
	require.NoError(t, r.AddShape(s))
	assert.ErrorIs(t, r.AddShape(s), obstacle.ErrDuplicateID)
	assert.True(t, r.Dirty())
}

func TestRegistryMoveShapeMarksDirty(t *testing.T) {
	r := obstacle.NewRegistry()
	s := obstacle.NewRectShape("s1", geom.NewRect(geom.Point{}, geom.Point{X: 10, Y: 10}))
	require.NoError(t, r.AddShape(s))
	r.ClearDirty()
	require.False(t, r.Dirty())

	require.NoError(t, r.MoveShape("s1", geom.Point{X: 5, Y: 0}))
	assert.True(t, r.Dirty())
	got, _ := r.Shape("s1")
	assert.Equal(t, 5.0, got.Bounds().Min.X)
}

func TestJunctionFixedIgnoresMove(t *testing.T) {
	j := obstacle.NewJunction("j1", geom.Point{X: 1, Y: 1})
	j.Fixed = true
	r := obstacle.NewRegistry()
	require.NoError(t, r.AddJunction(j))
	require.NoError(t, r.MoveJunction("j1", geom.Point{X: 99, Y: 99}))
	got, _ := r.Junction("j1")
	assert.Equal(t, geom.Point{X: 1, Y: 1}, got.Position)
}

func TestShapePinPosition(t *testing.T) {
	pin := obstacle.SidePin(vgraph.DirUp, vgraph.DirUp)
	s := obstacle.NewRectShape("s1", geom.NewRect(geom.Point{}, geom.Point{X: 10, Y: 20}), pin)
	pos := s.PinPosition(0)
	assert.Equal(t, geom.Point{X: 5, Y: 0}, pos)
}

func TestClusterCrossesBoundary(t *testing.T) {
	c := obstacle.NewCluster("c1", geom.Polygon{Points: []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}})
	assert.True(t, c.CrossesBoundary(geom.Point{X: -5, Y: 5}, geom.Point{X: 15, Y: 5}))
	assert.False(t, c.CrossesBoundary(geom.Point{X: -5, Y: -5}, geom.Point{X: -1, Y: -1}))
}

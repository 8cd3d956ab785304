package vgraph_test

import (
	"testing"

	"github.com/katalvlaran/avoidroute/geom"
	"github.com/katalvlaran/avoidroute/vgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vid(obj string, seq int) vgraph.ID {
	return vgraph.ID{ObjectID: obj, IsShape: true, Kind: vgraph.KindShapeCorner, Seq: seq}
}

func TestInsertVertexDuplicate(t *testing.T) {
	s := vgraph.NewStore()
	v := &vgraph.Vertex{ID: vid("s1", 0), Pt: vgraph.Point{Point: geom.Point{X: 0, Y: 0}}}
	require.NoError(t, s.InsertVertex(v))

	err := s.InsertVertex(v)
	assert.ErrorIs(t, err, vgraph.ErrDuplicateID)
}

func TestAddEdgeAndExists(t *testing.T) {
	s := vgraph.NewStore()
	a := &vgraph.Vertex{ID: vid("s1", 0)}
	b := &vgraph.Vertex{ID: vid("s1", 1)}
	require.NoError(t, s.InsertVertex(a))
	require.NoError(t, s.InsertVertex(b))

	idx, err := s.AddEdge(vgraph.Edge{U: a.ID, V: b.ID, Dist: 5})
	require.NoError(t, err)

	found, ok := s.ExistsEdge(a.ID, b.ID)
	require.True(t, ok)
	assert.Equal(t, idx, found)

	// Reverse order must also find it.
	found, ok = s.ExistsEdge(b.ID, a.ID)
	require.True(t, ok)
	assert.Equal(t, idx, found)
}

func TestRemoveVertexPatchesAdjacency(t *testing.T) {
	s := vgraph.NewStore()
	a := &vgraph.Vertex{ID: vid("s1", 0)}
	b := &vgraph.Vertex{ID: vid("s1", 1)}
	c := &vgraph.Vertex{ID: vid("s1", 2)}
	require.NoError(t, s.InsertVertex(a))
	require.NoError(t, s.InsertVertex(b))
	require.NoError(t, s.InsertVertex(c))

	_, err := s.AddEdge(vgraph.Edge{U: a.ID, V: b.ID, Dist: 1})
	require.NoError(t, err)
	_, err = s.AddEdge(vgraph.Edge{U: b.ID, V: c.ID, Dist: 1})
	require.NoError(t, err)

	require.NoError(t, s.RemoveVertex(b.ID))

	_, ok := s.ExistsEdge(a.ID, b.ID)
	assert.False(t, ok)
	_, ok = s.ExistsEdge(b.ID, c.ID)
	assert.False(t, ok)

	av, _ := s.Lookup(a.ID)
	assert.Empty(t, av.Visible)
}

func TestIterShapeAndConnectorVertices(t *testing.T) {
	s := vgraph.NewStore()
	shape := &vgraph.Vertex{ID: vgraph.ID{ObjectID: "s1", IsShape: true, Kind: vgraph.KindShapeCorner}}
	conn := &vgraph.Vertex{ID: vgraph.ID{ObjectID: "c1", Kind: vgraph.KindConnectorEndpoint}}
	require.NoError(t, s.InsertVertex(shape))
	require.NoError(t, s.InsertVertex(conn))

	var shapeCount, connCount int
	s.IterShapeVertices(func(*vgraph.Vertex) { shapeCount++ })
	s.IterConnectorVertices(func(*vgraph.Vertex) { connCount++ })

	assert.Equal(t, 1, shapeCount)
	assert.Equal(t, 1, connCount)
}

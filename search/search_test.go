package search_test

import (
	"testing"

	"github.com/katalvlaran/avoidroute/geom"
	"github.com/katalvlaran/avoidroute/search"
	"github.com/katalvlaran/avoidroute/vgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(objID string, seq int) vgraph.ID {
	return vgraph.ID{ObjectID: objID, Kind: vgraph.KindConnectorEndpoint, Seq: seq}
}

func buildLinearGraph(t *testing.T, n int) (*vgraph.Store, []vgraph.ID) {
	t.Helper()
	store := vgraph.NewStore()
	ids := make([]vgraph.ID, n)
	for i := 0; i < n; i++ {
		id := line("p", i)
		ids[i] = id
		require.NoError(t, store.InsertVertex(&vgraph.Vertex{
			ID: id,
			Pt: vgraph.Point{Point: geom.Point{X: float64(i), Y: 0}},
		}))
	}
	for i := 0; i+1 < n; i++ {
		_, err := store.AddEdge(vgraph.Edge{U: ids[i], V: ids[i+1], Dist: 1})
		require.NoError(t, err)
	}
	return store, ids
}

func TestSearchFindsDirectPath(t *testing.T) {
	store, ids := buildLinearGraph(t, 5)
	path, err := search.Search(store, ids[0], ids[4], search.Penalties{})
	require.NoError(t, err)
	assert.Equal(t, ids, path)
}

func TestSearchNoPath(t *testing.T) {
	store := vgraph.NewStore()
	a := line("a", 0)
	b := line("b", 0)
	require.NoError(t, store.InsertVertex(&vgraph.Vertex{ID: a}))
	require.NoError(t, store.InsertVertex(&vgraph.Vertex{ID: b}))

	_, err := search.Search(store, a, b, search.Penalties{})
	assert.ErrorIs(t, err, search.ErrNoPath)
}

func TestSearchKeepsStraightChainUnderBendPenalties(t *testing.T) {
	// Three collinear vertices joined in a chain; with non-zero Angle and
	// Segment penalties the search still returns the straight path a-b-c.
	store := vgraph.NewStore()
	a := line("a", 0)
	b := line("a", 1)
	c := line("a", 2)
	require.NoError(t, store.InsertVertex(&vgraph.Vertex{ID: a, Pt: vgraph.Point{Point: geom.Point{X: 0, Y: 0}}}))
	require.NoError(t, store.InsertVertex(&vgraph.Vertex{ID: b, Pt: vgraph.Point{Point: geom.Point{X: 1, Y: 0}}}))
	require.NoError(t, store.InsertVertex(&vgraph.Vertex{ID: c, Pt: vgraph.Point{Point: geom.Point{X: 2, Y: 0}}}))
	_, err := store.AddEdge(vgraph.Edge{U: a, V: b, Dist: 1})
	require.NoError(t, err)
	_, err = store.AddEdge(vgraph.Edge{U: b, V: c, Dist: 1})
	require.NoError(t, err)

	path, err := search.Search(store, a, c, search.Penalties{Angle: 0.1, Segment: 0.1})
	require.NoError(t, err)
	assert.Equal(t, []vgraph.ID{a, b, c}, path)
}

func TestSearchRubberBandRestartsFromPenultimate(t *testing.T) {
	store, ids := buildLinearGraph(t, 5)
	route := ids // pretend this is the prior route

	path, err := search.Search(store, ids[0], ids[4], search.Penalties{}, search.WithRubberBand(route))
	require.NoError(t, err)
	assert.Equal(t, ids[4], path[len(path)-1])
	assert.Equal(t, ids[0], path[0])
}

func TestSearchCycleBlockerExcludesEdge(t *testing.T) {
	store, ids := buildLinearGraph(t, 3)
	_, err := search.Search(store, ids[0], ids[2], search.Penalties{},
		search.WithCycleBlockers([][2]vgraph.ID{{ids[1], ids[2]}}))
	assert.ErrorIs(t, err, search.ErrNoPath)
}

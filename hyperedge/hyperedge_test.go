package hyperedge_test

import (
	"testing"

	"github.com/katalvlaran/avoidroute/geom"
	"github.com/katalvlaran/avoidroute/hyperedge"
	"github.com/katalvlaran/avoidroute/vgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vid(obj string) vgraph.ID {
	return vgraph.ID{ObjectID: obj, Kind: vgraph.KindConnectorEndpoint}
}

func addVertex(t *testing.T, store *vgraph.Store, obj string, pt geom.Point) vgraph.ID {
	id := vid(obj)
	require.NoError(t, store.InsertVertex(&vgraph.Vertex{ID: id, Pt: vgraph.Point{Point: pt, OwnerID: obj}}))
	return id
}

func addEdge(t *testing.T, store *vgraph.Store, a, b vgraph.ID, dist float64) {
	_, err := store.AddEdge(vgraph.Edge{U: a, V: b, Dist: dist})
	require.NoError(t, err)
}

// buildStarGraph builds three terminals A(0,0), B(100,0), C(50,100) joined
// through a single hub vertex J(50,0): A-J, B-J, J-C.
func buildStarGraph(t *testing.T) (*vgraph.Store, vgraph.ID, vgraph.ID, vgraph.ID, vgraph.ID) {
	store := vgraph.NewStore()
	a := addVertex(t, store, "A", geom.Point{X: 0, Y: 0})
	b := addVertex(t, store, "B", geom.Point{X: 100, Y: 0})
	c := addVertex(t, store, "C", geom.Point{X: 50, Y: 100})
	j := addVertex(t, store, "J", geom.Point{X: 50, Y: 0})
	addEdge(t, store, a, j, 50)
	addEdge(t, store, b, j, 50)
	addEdge(t, store, j, c, 100)
	return store, a, b, c, j
}

func TestBuildMTSTConnectsAllTerminals(t *testing.T) {
	store, a, b, c, _ := buildStarGraph(t)
	tree, err := hyperedge.BuildMTST(store, []vgraph.ID{a, b, c}, 0)
	require.NoError(t, err)
	assert.Len(t, tree.Edges, 3, "star graph: exactly the three spokes")
	assert.InDelta(t, 200, tree.TotalLength(), 1e-6)
}

func TestBuildMTSTMarksHubAsJunction(t *testing.T) {
	store, a, b, c, j := buildStarGraph(t)
	tree, err := hyperedge.BuildMTST(store, []vgraph.ID{a, b, c}, 0)
	require.NoError(t, err)
	assert.True(t, tree.Junctions[j], "the shared hub vertex has tree-degree 3 and must be a junction")
}

func TestBuildMTSTRejectsFewerThanTwoTerminals(t *testing.T) {
	store, a, _, _, _ := buildStarGraph(t)
	_, err := hyperedge.BuildMTST(store, []vgraph.ID{a}, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, hyperedge.ErrNoTerminals)
}

func TestBuildMTSTReportsDisconnectedTerminals(t *testing.T) {
	store := vgraph.NewStore()
	a := addVertex(t, store, "A", geom.Point{X: 0, Y: 0})
	b := addVertex(t, store, "B", geom.Point{X: 100, Y: 0})
	// no edge between them
	_, err := hyperedge.BuildMTST(store, []vgraph.ID{a, b}, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, hyperedge.ErrDisconnected)
}

func TestImproveNeverLengthensTheTree(t *testing.T) {
	store, a, b, c, j := buildStarGraph(t)
	tree, err := hyperedge.BuildMTST(store, []vgraph.ID{a, b, c}, 0)
	require.NoError(t, err)
	before := tree.TotalLength()

	positions := hyperedge.PositionMap{
		a: {X: 0, Y: 0},
		b: {X: 100, Y: 0},
		c: {X: 50, Y: 100},
		j: {X: 50, Y: 0},
	}
	improved, pos := hyperedge.Improve(tree, positions, 4)
	require.NotNil(t, improved)
	require.NotNil(t, pos)

	after := 0.0
	for _, e := range improved.Edges {
		after += geom.Dist(pos[e.U], pos[e.V])
	}
	assert.LessOrEqual(t, after, before+1e-6)
}

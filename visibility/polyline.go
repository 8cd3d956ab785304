package visibility

import (
	"github.com/katalvlaran/avoidroute/geom"
	"github.com/katalvlaran/avoidroute/obstacle"
	"github.com/katalvlaran/avoidroute/vgraph"
)

// Polyline builds and incrementally maintains the sparse line-of-sight
// visibility graph of spec §4.4. It keeps the shape-to-shape subgraph
// across calls to RebuildEndpoints and only regenerates endpoint incidence,
// per spec "For repeated transactions the builder keeps the shape-to-shape
// subgraph and only rebuilds endpoint incidence."
type Polyline struct {
	IgnoreRegions bool

	shapes      []*obstacle.Shape
	clusters    []*obstacle.Cluster
	cornerIDs   map[string][4]vgraph.ID
	shapeBuilt  bool
}

// NewPolyline constructs a polyline visibility builder.
func NewPolyline(ignoreRegions bool) *Polyline {
	return &Polyline{IgnoreRegions: ignoreRegions, cornerIDs: make(map[string][4]vgraph.ID)}
}

// BuildShapeGraph (re)builds the shape-corner subgraph from scratch: one
// vertex for each of a shape polygon's first four corners (further corners
// get no vertex), a ring link to its neighbours, and a visibility edge for
// every corner pair whose open segment does not cross any shape's interior.
func (p *Polyline) BuildShapeGraph(store *vgraph.Store, shapes []*obstacle.Shape, clusters []*obstacle.Cluster) error {
	var stale []vgraph.ID
	store.IterShapeVertices(func(v *vgraph.Vertex) { stale = append(stale, v.ID) })
	for _, id := range stale {
		_ = store.RemoveVertex(id)
	}

	p.shapes = shapes
	p.clusters = clusters
	p.cornerIDs = make(map[string][4]vgraph.ID, len(shapes))

	type corner struct {
		id vgraph.ID
		pt geom.Point
	}
	var all []corner

	for _, s := range shapes {
		poly := s.Polygon()
		var ids [4]vgraph.ID
		n := len(poly.Points)
		for i := 0; i < n && i < 4; i++ {
			id := vgraph.ID{ObjectID: s.ID(), IsShape: true, Kind: vgraph.KindShapeCorner, Seq: i}
			v := &vgraph.Vertex{
				ID:      id,
				Pt:      vgraph.Point{Point: poly.Points[i], OwnerID: s.ID(), Vn: vgraph.Vn(i)},
				DirMask: vgraph.DirAll,
			}
			v.ShPrev = vgraph.ID{ObjectID: s.ID(), IsShape: true, Kind: vgraph.KindShapeCorner, Seq: (i - 1 + n) % n}
			v.ShNext = vgraph.ID{ObjectID: s.ID(), IsShape: true, Kind: vgraph.KindShapeCorner, Seq: (i + 1) % n}
			if _, exists := store.Lookup(id); !exists {
				_ = store.InsertVertex(v)
			}
			ids[i] = id
			all = append(all, corner{id: id, pt: poly.Points[i]})
		}
		p.cornerIDs[s.ID()] = ids
	}

	for i := 0; i < len(all); i++ {
		for j := i + 1; j < len(all); j++ {
			p.maybeAddEdge(store, all[i].id, all[i].pt, all[j].id, all[j].pt)
		}
	}
	p.shapeBuilt = true
	return nil
}

// RebuildEndpoints discards any previously-inserted connector-endpoint
// vertices and reinserts the given endpoints, wiring endpoint-to-shape-corner
// (and endpoint-to-endpoint) visibility edges. Endpoint vertices are
// short-lived: spec §4.2 "connector endpoints (short-lived per reroute)".
func (p *Polyline) RebuildEndpoints(store *vgraph.Store, endpoints []vgraph.Point) []vgraph.ID {
	var stale []vgraph.ID
	store.IterConnectorVertices(func(v *vgraph.Vertex) { stale = append(stale, v.ID) })
	for _, id := range stale {
		_ = store.RemoveVertex(id)
	}

	var ids []vgraph.ID
	for i, ep := range endpoints {
		id := vgraph.ID{ObjectID: ep.OwnerID, Kind: vgraph.KindConnectorEndpoint, Seq: i}
		v := &vgraph.Vertex{ID: id, Pt: ep, DirMask: vgraph.DirAll}
		_ = store.InsertVertex(v)
		ids = append(ids, id)
	}

	for _, s := range p.shapes {
		cids := p.cornerIDs[s.ID()]
		poly := s.Polygon()
		for i, cid := range cids {
			if i >= len(poly.Points) {
				break
			}
			for j, epID := range ids {
				p.maybeAddEdge(store, cid, poly.Points[i], epID, endpoints[j].Point)
			}
		}
	}
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			p.maybeAddEdge(store, ids[i], endpoints[i].Point, ids[j], endpoints[j].Point)
		}
	}
	return ids
}

func (p *Polyline) maybeAddEdge(store *vgraph.Store, u vgraph.ID, up geom.Point, v vgraph.ID, vp geom.Point) {
	if u == v {
		return
	}
	if _, ok := store.ExistsEdge(u, v); ok {
		return
	}
	for _, s := range p.shapes {
		if s.Polygon().SegmentCrossesInterior(up, vp) {
			store.MarkInvisible(u, v)
			return
		}
	}
	crossesCluster := false
	if !p.IgnoreRegions {
		for _, c := range p.clusters {
			if c.CrossesBoundary(up, vp) {
				crossesCluster = true
				break
			}
		}
	}
	_, _ = store.AddEdge(vgraph.Edge{U: u, V: v, Dist: geom.Dist(up, vp), CrossesCluster: crossesCluster})
}

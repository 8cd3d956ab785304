// Package avoidroute is an incremental, object-avoiding line router: given
// a set of rectangular/polygonal shapes, junctions, and connectors between
// them, it computes orthogonal or polyline paths that avoid shape
// interiors, nudges parallel segments apart, and merges converging
// connectors into shared hyperedge trees.
//
// Everything of substance lives under package router, which orchestrates
// the rest of the module's subpackages:
//
//	geom/       — points, rectangles, polygons, segment intersection
//	obstacle/   — shapes, junctions, clusters, and their registry
//	vgraph/     — the shared vertex/edge store routing runs over
//	visibility/ — polyline and orthogonal visibility graph construction
//	search/     — penalised shortest-path search with rubber-band reroute
//	crossing/   — shared-path/crossing detection and ordering
//	nudge/      — orthogonal segment separation via a 1-D constraint solver
//	solver/     — the Variables/Constraints -> positions collaborator
//	hyperedge/  — minimum spanning tree construction and local improvement
//	router/     — the transaction pipeline and public API
//
// A Router is built once via router.NewRouter, mutated through its
// Add*/Remove*/Move* methods — which queue changes rather than applying
// them immediately — and driven forward with ProcessTransaction, which
// applies the queue, reroutes whatever needs it, and fires each changed
// connector's registered callback:
//
//	r := router.NewRouter(router.OrthogonalRouting)
//	boxID, _ := r.AddShape(geom.Rect{Max: geom.Point{X: 40, Y: 40}}, "")
//	connID, _ := r.AddConnector(
//	    router.FreeEndpoint(geom.Point{X: -10, Y: 20}),
//	    router.FreeEndpoint(geom.Point{X: 50, Y: 20}),
//	    router.ConnOrthogonal, "")
//	_ = r.OnRouteChanged(connID, func(p router.PolyLine) { /* draw p.Points */ })
//	r.ProcessTransaction()
//
// See SPEC_FULL.md and DESIGN.md for the full module specification and the
// grounding ledger behind each package's design.
//
//	go get github.com/katalvlaran/avoidroute
package avoidroute

package visibility

import (
	"sort"

	"github.com/katalvlaran/avoidroute/geom"
	"github.com/katalvlaran/avoidroute/obstacle"
	"github.com/katalvlaran/avoidroute/vgraph"
)

// Terminal is a connector endpoint or connection-pin point fed into the
// orthogonal visibility builder.
type Terminal struct {
	OwnerID string
	Pt      geom.Point
	DirMask vgraph.Direction
	// PreferredDir is the single side this terminal's pin faces, used for
	// the soft port-direction penalty rather than the hard DirMask
	// constraint; zero when the terminal has no side preference.
	PreferredDir vgraph.Direction
	IsPin        bool
}

// Orthogonal builds the rectilinear visibility graph of spec §4.5 via two
// scanlines materialised as a Hanan grid: every shape's left/right edge
// contributes a vertical grid line, every shape's top/bottom edge a
// horizontal one, and every terminal contributes both. A grid point is a
// candidate vertex unless it falls in a shape's interior; two
// grid-adjacent candidate vertices on the same line are joined by a
// visibility edge unless a shape's bounding rectangle (orthogonal routing
// treats obstacles as their bounding box, per spec §3 invariant "no two
// shapes overlap") separates them.
//
// This is the vertical-sweep-then-horizontal-sweep decomposition of spec
// §4.5 collapsed into one pass over the grid it would otherwise discover
// event by event — see doc.go and DESIGN.md for the grounding and the
// tradeoff against a literal two-pass scanline over arbitrary polygons.
type Orthogonal struct{}

// NewOrthogonal constructs an orthogonal visibility builder.
func NewOrthogonal() *Orthogonal { return &Orthogonal{} }

// Build regenerates the full orthogonal visibility graph over shapes and
// terminals, returning the vertex ids assigned to each terminal in input
// order.
func (o *Orthogonal) Build(store *vgraph.Store, shapes []*obstacle.Shape, terminals []Terminal) ([]vgraph.ID, error) {
	if len(shapes) == 0 && len(terminals) == 0 {
		return nil, ErrNoShapes
	}

	bounds := make([]geom.Rect, len(shapes))
	for i, s := range shapes {
		bounds[i] = s.Bounds()
	}

	xsSet := map[float64]struct{}{}
	ysSet := map[float64]struct{}{}
	for _, b := range bounds {
		xsSet[b.Min.X] = struct{}{}
		xsSet[b.Max.X] = struct{}{}
		ysSet[b.Min.Y] = struct{}{}
		ysSet[b.Max.Y] = struct{}{}
		// Shape mid-edge vertices (spec §3 vn 4..7) need a grid line through
		// the shape's centre so a route can detour via the top/bottom or
		// left/right midpoint rather than only its corners.
		c := b.Center()
		xsSet[c.X] = struct{}{}
		ysSet[c.Y] = struct{}{}
	}
	for _, t := range terminals {
		xsSet[t.Pt.X] = struct{}{}
		ysSet[t.Pt.Y] = struct{}{}
	}
	xs := sortedFloats(xsSet)
	ys := sortedFloats(ysSet)

	terminalAt := make(map[[2]float64]*Terminal, len(terminals))
	for i := range terminals {
		terminalAt[key(terminals[i].Pt)] = &terminals[i]
	}

	insideAny := func(p geom.Point) bool {
		for _, b := range bounds {
			if p.X > b.Min.X+geom.DefaultTolerance && p.X < b.Max.X-geom.DefaultTolerance &&
				p.Y > b.Min.Y+geom.DefaultTolerance && p.Y < b.Max.Y-geom.DefaultTolerance {
				return true
			}
		}
		return false
	}
	segBlocked := func(a, b geom.Point) bool {
		for _, r := range bounds {
			if segmentCrossesRectInterior(a, b, r) {
				return true
			}
		}
		return false
	}

	idFor := func(p geom.Point) vgraph.ID {
		if t, ok := terminalAt[key(p)]; ok {
			kind := vgraph.KindConnectorEndpoint
			if t.IsPin {
				kind = vgraph.KindConnectionPin
			}
			return vgraph.ID{ObjectID: t.OwnerID, Kind: kind}
		}
		return vgraph.ID{ObjectID: vgraph.DummyObjectID, Kind: vgraph.KindDummyOrthogonal,
			Seq: gridSeq(p, xs, ys)}
	}

	ensureVertex := func(p geom.Point) vgraph.ID {
		id := idFor(p)
		if _, ok := store.Lookup(id); !ok {
			dirMask := vgraph.DirAll
			var preferred vgraph.Direction
			if t, ok := terminalAt[key(p)]; ok {
				if t.DirMask != 0 {
					dirMask = t.DirMask
				}
				preferred = t.PreferredDir
			}
			_ = store.InsertVertex(&vgraph.Vertex{ID: id, Pt: vgraph.Point{Point: p}, DirMask: dirMask, PreferredDir: preferred})
		}
		return id
	}

	// Vertical lines: for each x, walk ys in increasing y, which is
	// top-to-bottom in the y-down coordinate system (vertical sweep,
	// spec §4.5).
	for _, x := range xs {
		var lineIDs []vgraph.ID
		var linePts []geom.Point
		for _, y := range ys {
			p := geom.Point{X: x, Y: y}
			if insideAny(p) {
				continue
			}
			lineIDs = append(lineIDs, ensureVertex(p))
			linePts = append(linePts, p)
		}
		connectLine(store, lineIDs, linePts, segBlocked, vgraph.DirUp, vgraph.DirDown, true)
	}

	// Horizontal lines: for each y, walk xs left-to-right (horizontal
	// sweep, spec §4.5).
	for _, y := range ys {
		var lineIDs []vgraph.ID
		var linePts []geom.Point
		for _, x := range xs {
			p := geom.Point{X: x, Y: y}
			if insideAny(p) {
				continue
			}
			lineIDs = append(lineIDs, ensureVertex(p))
			linePts = append(linePts, p)
		}
		connectLine(store, lineIDs, linePts, segBlocked, vgraph.DirLeft, vgraph.DirRight, false)
	}

	ids := make([]vgraph.ID, len(terminals))
	for i, t := range terminals {
		ids[i] = idFor(t.Pt)
	}
	return ids, nil
}

// connectLine wires visibility edges between grid-adjacent vertices along
// one scanline and propagates the long-range-visibility flags of spec
// §4.5 (hasSeenShapeEdge/hasSeenConnPt, per dimension) as it walks.
func connectLine(store *vgraph.Store, ids []vgraph.ID, pts []geom.Point, blocked func(a, b geom.Point) bool, lowDir, highDir vgraph.Direction, vertical bool) {
	seenShapeEdge := false
	seenConnPt := false
	for i := 0; i < len(ids); i++ {
		v := store.MustLookup(ids[i])
		if vertical {
			if seenShapeEdge {
				v.LRVis.SeenShapeEdgeLowY = true
			}
			if seenConnPt {
				v.LRVis.SeenConnPtLowY = true
			}
		} else {
			if seenShapeEdge {
				v.LRVis.SeenShapeEdgeLowX = true
			}
			if seenConnPt {
				v.LRVis.SeenConnPtLowX = true
			}
		}
		if v.ID.Kind == vgraph.KindConnectorEndpoint || v.ID.Kind == vgraph.KindConnectionPin {
			seenConnPt = true
		}

		if i+1 < len(ids) {
			a, b := pts[i], pts[i+1]
			if !blocked(a, b) {
				va := store.MustLookup(ids[i])
				vb := store.MustLookup(ids[i+1])
				if dirAllowed(va.DirMask, highDir) && dirAllowed(vb.DirMask, lowDir) {
					if _, exists := store.ExistsEdge(ids[i], ids[i+1]); !exists {
						_, _ = store.AddEdge(vgraph.Edge{U: ids[i], V: ids[i+1], Dist: geom.Dist(a, b), Orthogonal: true})
					}
				}
			} else {
				seenShapeEdge = true
			}
		}
	}

	seenShapeEdge, seenConnPt = false, false
	for i := len(ids) - 1; i >= 0; i-- {
		v := store.MustLookup(ids[i])
		if vertical {
			if seenShapeEdge {
				v.LRVis.SeenShapeEdgeHighY = true
			}
			if seenConnPt {
				v.LRVis.SeenConnPtHighY = true
			}
		} else {
			if seenShapeEdge {
				v.LRVis.SeenShapeEdgeHighX = true
			}
			if seenConnPt {
				v.LRVis.SeenConnPtHighX = true
			}
		}
		if v.ID.Kind == vgraph.KindConnectorEndpoint || v.ID.Kind == vgraph.KindConnectionPin {
			seenConnPt = true
		}
		if i-1 >= 0 && blocked(pts[i-1], pts[i]) {
			seenShapeEdge = true
		}
	}
}

func dirAllowed(mask vgraph.Direction, dir vgraph.Direction) bool {
	return mask&dir != 0
}

// segmentCrossesRectInterior reports whether the open, axis-aligned
// segment (a,b) passes through the open interior of rect r.
func segmentCrossesRectInterior(a, b geom.Point, r geom.Rect) bool {
	if a.X == b.X {
		x := a.X
		if x <= r.Min.X+geom.DefaultTolerance || x >= r.Max.X-geom.DefaultTolerance {
			return false
		}
		lo, hi := a.Y, b.Y
		if lo > hi {
			lo, hi = hi, lo
		}
		return lo < r.Max.Y-geom.DefaultTolerance && hi > r.Min.Y+geom.DefaultTolerance
	}
	if a.Y == b.Y {
		y := a.Y
		if y <= r.Min.Y+geom.DefaultTolerance || y >= r.Max.Y-geom.DefaultTolerance {
			return false
		}
		lo, hi := a.X, b.X
		if lo > hi {
			lo, hi = hi, lo
		}
		return lo < r.Max.X-geom.DefaultTolerance && hi > r.Min.X+geom.DefaultTolerance
	}
	return false
}

func sortedFloats(set map[float64]struct{}) []float64 {
	out := make([]float64, 0, len(set))
	for f := range set {
		out = append(out, f)
	}
	sort.Float64s(out)
	return out
}

func key(p geom.Point) [2]float64 { return [2]float64{p.X, p.Y} }

func gridSeq(p geom.Point, xs, ys []float64) int {
	xi := sort.SearchFloat64s(xs, p.X)
	yi := sort.SearchFloat64s(ys, p.Y)
	return xi*len(ys) + yi
}

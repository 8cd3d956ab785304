package search

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/avoidroute/geom"
	"github.com/katalvlaran/avoidroute/vgraph"
)

// epsilonPinDistance is the "distance 0.001" hack referenced by spec §9's
// first Open Question. Here it is only a cost floor: an edge whose
// penalised cost comes out zero or negative is charged this amount
// instead. No pinned-endpoint edge of this length is created.
const epsilonPinDistance = 0.001

// edgeDirection reports the cardinal direction an axis-aligned step from a
// to b departs in, or the zero Direction for a non-orthogonal step. Used
// only to compare a departure against a terminal's PreferredDir.
func edgeDirection(a, b geom.Point) vgraph.Direction {
	switch {
	case b.X > a.X:
		return vgraph.DirRight
	case b.X < a.X:
		return vgraph.DirLeft
	case b.Y < a.Y:
		return vgraph.DirUp
	case b.Y > a.Y:
		return vgraph.DirDown
	}
	return 0
}

// Search finds the least-penalised path from source to target in store,
// per spec §4.6. It returns the path as an ordered list of vertex ids
// (source first, target last).
func Search(store *vgraph.Store, source, target vgraph.ID, pen Penalties, opts ...Option) ([]vgraph.ID, error) {
	if source == (vgraph.ID{}) {
		return nil, ErrEmptySource
	}
	if target == (vgraph.ID{}) {
		return nil, ErrEmptyTarget
	}
	cfg := newConfig(opts)

	if len(cfg.rubberBand) >= 3 {
		route := cfg.rubberBand
		for i := len(route) - 2; i >= 0; i-- {
			restart := route[i]
			var from vgraph.ID
			if i > 0 {
				from = route[i-1]
			}
			path, err := dijkstra(store, restart, from, target, pen, &cfg)
			if err == nil {
				// Splice the untouched prefix of the old route back on.
				full := append(append([]vgraph.ID{}, route[:i]...), path...)
				return full, nil
			}
		}
		return nil, fmt.Errorf("search: rubber-band reroute: %w", ErrNoPath)
	}

	path, err := dijkstra(store, source, vgraph.ID{}, target, pen, &cfg)
	if err != nil {
		return nil, err
	}
	return path, nil
}

func dijkstra(store *vgraph.Store, source, sourceFrom, target vgraph.ID, pen Penalties, cfg *config) ([]vgraph.ID, error) {
	dist := map[state]float64{}
	prevState := map[state]state{}
	hasPrev := map[state]bool{}

	start := state{cur: source, from: sourceFrom}
	dist[start] = 0

	pq := &priorityQueue{{st: start, dist: 0}}
	heap.Init(pq)

	var goal state
	found := false

	for pq.Len() > 0 {
		item := heap.Pop(pq).(*heapItem)
		cur := item.st
		if d, ok := dist[cur]; !ok || item.dist > d {
			continue
		}
		if cur.cur == target {
			goal = cur
			found = true
			break
		}

		v, ok := store.Lookup(cur.cur)
		if !ok {
			continue
		}
		curPt := v.Pt.Point

		var fromPt geom.Point
		hasFrom := cur.from != (vgraph.ID{})
		if hasFrom {
			if fv, ok := store.Lookup(cur.from); ok {
				fromPt = fv.Pt.Point
			} else {
				hasFrom = false
			}
		}

		for _, idx := range v.Visible {
			e := store.Edge(idx)
			if e.CycleBlocker {
				continue
			}
			other := e.U
			if other == cur.cur {
				other = e.V
			}
			if cfg.cycleBlockers != nil {
				if _, blocked := cfg.cycleBlockers[[2]vgraph.ID{cur.cur, other}]; blocked {
					continue
				}
			}
			ov, ok := store.Lookup(other)
			if !ok {
				continue
			}
			otherPt := ov.Pt.Point

			bends := false
			if hasFrom {
				if geom.TurnDirection(fromPt, curPt, otherPt) != 0 {
					bends = true
					if !bendValid(store, cur.from, cur.cur, other, fromPt, curPt, otherPt) {
						continue
					}
				}
			}

			cost := e.Dist
			factor := 1.0
			if bends {
				factor += pen.Angle
				factor += pen.Segment
			}
			if e.CrossesCluster {
				factor += pen.Cluster
			}
			if e.Orthogonal && v.PreferredDir != 0 {
				if dir := edgeDirection(curPt, otherPt); dir != 0 && dir != v.PreferredDir {
					factor += pen.PortDirection
				}
			}
			if crossings := countCrossings(curPt, otherPt, cfg.routed); crossings > 0 {
				mult := pen.Crossing
				if cfg.hatesCrossings {
					mult *= 2
				}
				factor += mult * float64(crossings)
			}
			cost *= factor
			if cost <= 0 {
				cost = epsilonPinDistance
			}

			next := state{cur: other, from: cur.cur}
			nd := item.dist + cost
			if d, ok := dist[next]; !ok || nd < d {
				dist[next] = nd
				prevState[next] = cur
				hasPrev[next] = true
				heap.Push(pq, &heapItem{st: next, dist: nd})
			}
		}
	}

	if !found {
		return nil, fmt.Errorf("search: %s -> %s: %w", source.ObjectID, target.ObjectID, ErrNoPath)
	}

	var path []vgraph.ID
	st := goal
	for {
		path = append([]vgraph.ID{st.cur}, path...)
		if !hasPrev[st] {
			break
		}
		st = prevState[st]
	}
	return path, nil
}

func countCrossings(a, b geom.Point, routed []RoutedSegment) int {
	n := 0
	for _, seg := range routed {
		kind, _ := geom.SegmentIntersect(a, b, seg.A, seg.B)
		if kind == geom.IntersectsAtPoint {
			n++
		}
	}
	return n
}

// bendValid implements spec §4.6's bend-point validity rule: a-b-c where b
// is a shape corner with ring neighbours d (ShPrev), e (ShNext). A straight
// bend (turn==0) is already excluded by the caller before this is invoked;
// here we additionally reject a turn that is inconsistent with the corner's
// ring neighbours, which prunes zig-zag corners that would be equal-length
// to a shorter route.
func bendValid(store *vgraph.Store, a, b, c vgraph.ID, aPt, bPt, cPt geom.Point) bool {
	bv, ok := store.Lookup(b)
	if !ok || bv.ShPrev == (vgraph.ID{}) || bv.ShNext == (vgraph.ID{}) {
		return true // not a ring-constrained shape corner
	}
	dv, dok := store.Lookup(bv.ShPrev)
	ev, eok := store.Lookup(bv.ShNext)
	if !dok || !eok {
		return true
	}
	d, e := dv.Pt.Point, ev.Pt.Point

	turn := geom.TurnDirection(aPt, bPt, cPt)
	if turn == 0 {
		return false
	}
	if turn > 0 {
		return geom.TurnDirection(aPt, bPt, e) > 0 && geom.TurnDirection(bPt, cPt, e) > 0
	}
	return geom.TurnDirection(aPt, bPt, d) < 0 && geom.TurnDirection(bPt, cPt, d) < 0
}

package hyperedge

import (
	"container/heap"
	"math"
	"sort"

	"github.com/katalvlaran/avoidroute/geom"
	"github.com/katalvlaran/avoidroute/vgraph"
)

// BuildMTST constructs the hyperedge's Steiner-like tree over terminals in
// store, per spec §4.9. bendCost is added whenever a materialised tree edge
// turns relative to its predecessor, the same augmented-cost equivalent of
// a dimension-change dummy vertex that the search package uses (see
// search/doc.go) rather than literally splicing a vertex into the shared
// store mid-sweep.
func BuildMTST(store *vgraph.Store, terminals []vgraph.ID, bendCost float64) (*HyperEdgeTree, error) {
	if len(terminals) < 2 {
		return nil, ErrNoTerminals
	}

	resetForest(store)

	pq := &sptfQueue{}
	for _, t := range terminals {
		v, ok := store.Lookup(t)
		if !ok {
			continue
		}
		v.SptfDist = 0
		v.SptfRoot = t
		v.HasNext = false
		heap.Push(pq, &sptfItem{id: t, dist: 0})
	}
	heap.Init(pq)

	visited := make(map[vgraph.ID]bool)
	var candidates []BridgeCandidate

	for pq.Len() > 0 {
		item := heap.Pop(pq).(*sptfItem)
		if visited[item.id] {
			continue
		}
		visited[item.id] = true
		u, ok := store.Lookup(item.id)
		if !ok {
			continue
		}

		for _, idx := range u.Visible {
			e := store.Edge(idx)
			if e.CycleBlocker {
				continue
			}
			other := e.U
			if other == item.id {
				other = e.V
			}
			ov, ok := store.Lookup(other)
			if !ok {
				continue
			}

			cost := e.Dist + turnPenalty(store, u, other, bendCost)

			if !math.IsInf(ov.SptfDist, 1) && ov.SptfRoot != u.SptfRoot {
				// other already belongs to a different terminal's tree
				// (whether or not it has been finalised yet): this edge
				// bridges the two trees.
				candidates = append(candidates, BridgeCandidate{
					U:    item.id,
					V:    other,
					Cost: u.SptfDist + cost + ov.SptfDist,
				})
			}

			nd := u.SptfDist + cost
			if nd < ov.SptfDist {
				ov.SptfDist = nd
				ov.SptfRoot = u.SptfRoot
				ov.PathNext = item.id
				ov.HasNext = true
				heap.Push(pq, &sptfItem{id: other, dist: nd})
			}
		}
	}

	return extendedKruskal(store, terminals, candidates)
}

// turnPenalty adds bendCost when the edge u->other is not collinear with
// u's own incoming tree edge.
func turnPenalty(store *vgraph.Store, u *vgraph.Vertex, other vgraph.ID, bendCost float64) float64 {
	if !u.HasNext || bendCost == 0 {
		return 0
	}
	prev, ok := store.Lookup(u.PathNext)
	if !ok {
		return 0
	}
	ov, ok := store.Lookup(other)
	if !ok {
		return 0
	}
	if geom.TurnDirection(prev.Pt.Point, u.Pt.Point, ov.Pt.Point) != 0 {
		return bendCost
	}
	return 0
}

func resetForest(store *vgraph.Store) {
	store.IterAll(func(v *vgraph.Vertex) {
		v.SptfDist = math.Inf(1)
		v.SptfRoot = vgraph.ID{}
		v.PathNext = vgraph.ID{}
		v.HasNext = false
	})
}

// extendedKruskal processes bridging candidates cheapest-first, unioning
// terminal-rooted trees and materialising each winning bridge's two
// root-paths as tree edges (spec §4.9 "Extended Kruskal's").
func extendedKruskal(store *vgraph.Store, terminals []vgraph.ID, candidates []BridgeCandidate) (*HyperEdgeTree, error) {
	uf := newUnionFind(terminals)

	cq := &candidateQueue{}
	*cq = append(*cq, candidates...)
	heap.Init(cq)

	type edgeKey struct{ a, b vgraph.ID }
	normKey := func(a, b vgraph.ID) edgeKey {
		if a.ObjectID > b.ObjectID || (a.ObjectID == b.ObjectID && a.Seq > b.Seq) {
			a, b = b, a
		}
		return edgeKey{a, b}
	}
	seen := make(map[edgeKey]bool)
	var edges []TreeEdge

	materialisePath := func(from vgraph.ID) {
		cur := from
		for {
			v, ok := store.Lookup(cur)
			if !ok || !v.HasNext {
				return
			}
			next := v.PathNext
			key := normKey(cur, next)
			if !seen[key] {
				seen[key] = true
				nv, _ := store.Lookup(next)
				d := geom.Dist(v.Pt.Point, nv.Pt.Point)
				edges = append(edges, TreeEdge{U: cur, V: next, Dist: d})
			}
			cur = next
		}
	}

	merged := 1
	target := len(terminals)
	for cq.Len() > 0 && merged < target {
		c := heap.Pop(cq).(BridgeCandidate)
		uv, uok := store.Lookup(c.U)
		vv, vok := store.Lookup(c.V)
		if !uok || !vok {
			continue
		}
		ru, rv := uf.find(uv.SptfRoot), uf.find(vv.SptfRoot)
		if ru == rv {
			continue
		}
		uf.union(ru, rv)
		merged++

		materialisePath(c.U)
		materialisePath(c.V)
		key := normKey(c.U, c.V)
		if !seen[key] {
			seen[key] = true
			edges = append(edges, TreeEdge{U: c.U, V: c.V, Dist: geom.Dist(uv.Pt.Point, vv.Pt.Point)})
		}
	}
	if merged < target {
		return nil, ErrDisconnected
	}

	degree := make(map[vgraph.ID]int)
	for _, e := range edges {
		degree[e.U]++
		degree[e.V]++
	}
	junctions := make(map[vgraph.ID]bool)
	for id, d := range degree {
		if d >= 3 {
			junctions[id] = true
		}
	}

	sort.Slice(edges, func(i, j int) bool {
		if edges[i].U.ObjectID != edges[j].U.ObjectID {
			return edges[i].U.ObjectID < edges[j].U.ObjectID
		}
		return edges[i].V.ObjectID < edges[j].V.ObjectID
	})

	return &HyperEdgeTree{Terminals: terminals, Edges: edges, Junctions: junctions}, nil
}

type unionFind struct {
	parent map[vgraph.ID]vgraph.ID
}

func newUnionFind(ids []vgraph.ID) *unionFind {
	uf := &unionFind{parent: make(map[vgraph.ID]vgraph.ID, len(ids))}
	for _, id := range ids {
		uf.parent[id] = id
	}
	return uf
}

func (uf *unionFind) find(id vgraph.ID) vgraph.ID {
	p, ok := uf.parent[id]
	if !ok {
		uf.parent[id] = id
		return id
	}
	if p == id {
		return id
	}
	root := uf.find(p)
	uf.parent[id] = root
	return root
}

func (uf *unionFind) union(a, b vgraph.ID) {
	ra, rb := uf.find(a), uf.find(b)
	if ra != rb {
		uf.parent[ra] = rb
	}
}

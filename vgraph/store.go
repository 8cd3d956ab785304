package vgraph

import "fmt"

// Store keys vertices by ID and owns the shared edge arena. It provides
// O(1) insert/lookup, O(degree) removal, and an O(degree) reverse lookup for
// Edge.exists (spec §4.2).
type Store struct {
	vertices map[ID]*Vertex
	// order preserves insertion order for deterministic iteration (spec §8
	// "route determinism").
	order []ID
	arena []Edge
}

// NewStore constructs an empty vertex/edge store.
func NewStore() *Store {
	return &Store{vertices: make(map[ID]*Vertex)}
}

// InsertVertex adds v to the store. Fails with ErrDuplicateID if v.ID
// already exists.
func (s *Store) InsertVertex(v *Vertex) error {
	if _, exists := s.vertices[v.ID]; exists {
		return fmt.Errorf("vgraph: insert %+v: %w", v.ID, ErrDuplicateID)
	}
	s.vertices[v.ID] = v
	s.order = append(s.order, v.ID)
	return nil
}

// Lookup returns the vertex for id, or (nil, false).
func (s *Store) Lookup(id ID) (*Vertex, bool) {
	v, ok := s.vertices[id]
	return v, ok
}

// MustLookup returns the vertex for id, panicking if absent. Used internally
// where callers have already established id's presence via Store/Edge
// invariants, to avoid threading an impossible error case through every
// call site.
func (s *Store) MustLookup(id ID) *Vertex {
	v, ok := s.vertices[id]
	if !ok {
		panic(fmt.Sprintf("vgraph: MustLookup: missing vertex %+v", id))
	}
	return v
}

// RemoveVertex removes v and every edge incident to it, patching the
// adjacency lists of its neighbours.
func (s *Store) RemoveVertex(id ID) error {
	v, ok := s.vertices[id]
	if !ok {
		return fmt.Errorf("vgraph: remove %+v: %w", id, ErrVertexNotFound)
	}
	for _, idx := range append(append([]int{}, v.Visible...), v.Invisible...) {
		e := &s.arena[idx]
		if e.removed {
			continue
		}
		other := e.U
		if other == id {
			other = e.V
		}
		if ov, ok := s.vertices[other]; ok {
			ov.Visible = removeIdx(ov.Visible, idx)
			ov.Invisible = removeIdx(ov.Invisible, idx)
		}
		e.removed = true
	}
	delete(s.vertices, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func removeIdx(list []int, idx int) []int {
	for i, v := range list {
		if v == idx {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// AddEdge inserts a new visibility edge between u and v into the arena and
// both endpoints' Visible lists, returning its arena index. Callers must
// check ExistsEdge first if duplicate avoidance is required (spec §4.2
// "Edge.exists(u,v) must return an existing edge if any").
func (s *Store) AddEdge(e Edge) (int, error) {
	if _, ok := s.vertices[e.U]; !ok {
		return -1, fmt.Errorf("vgraph: add edge: %w", ErrVertexNotFound)
	}
	if _, ok := s.vertices[e.V]; !ok {
		return -1, fmt.Errorf("vgraph: add edge: %w", ErrVertexNotFound)
	}
	idx := len(s.arena)
	s.arena = append(s.arena, e)
	s.vertices[e.U].Visible = append(s.vertices[e.U].Visible, idx)
	s.vertices[e.V].Visible = append(s.vertices[e.V].Visible, idx)
	return idx, nil
}

// MarkInvisible records a fresh no-edge fact for (u, v) in both endpoints'
// Invisible lists. It does not move or remove an existing Visible edge
// between them.
func (s *Store) MarkInvisible(u, v ID) {
	// Represented as a zero-distance tombstoned arena slot shared by both
	// adjacency lists, mirroring how real edges live simultaneously in
	// both endpoints.
	idx := len(s.arena)
	s.arena = append(s.arena, Edge{U: u, V: v, removed: true})
	if uv, ok := s.vertices[u]; ok {
		uv.Invisible = append(uv.Invisible, idx)
	}
	if vv, ok := s.vertices[v]; ok {
		vv.Invisible = append(vv.Invisible, idx)
	}
}

// Edge returns the arena edge at idx.
func (s *Store) Edge(idx int) *Edge { return &s.arena[idx] }

// ExistsEdge returns the arena index of an existing (u,v) edge in either
// direction, or (-1, false). O(degree(u)).
func (s *Store) ExistsEdge(u, v ID) (int, bool) {
	uv, ok := s.vertices[u]
	if !ok {
		return -1, false
	}
	for _, idx := range uv.Visible {
		e := &s.arena[idx]
		if e.removed {
			continue
		}
		if (e.U == u && e.V == v) || (e.U == v && e.V == u) {
			return idx, true
		}
	}
	return -1, false
}

// RemoveEdge tombstones the edge at idx and patches both endpoints'
// adjacency lists.
func (s *Store) RemoveEdge(idx int) error {
	if idx < 0 || idx >= len(s.arena) {
		return fmt.Errorf("vgraph: remove edge %d: %w", idx, ErrEdgeNotFound)
	}
	e := &s.arena[idx]
	if e.removed {
		return fmt.Errorf("vgraph: remove edge %d: %w", idx, ErrEdgeNotFound)
	}
	e.removed = true
	if uv, ok := s.vertices[e.U]; ok {
		uv.Visible = removeIdx(uv.Visible, idx)
	}
	if vv, ok := s.vertices[e.V]; ok {
		vv.Visible = removeIdx(vv.Visible, idx)
	}
	return nil
}

// IterShapeVertices calls fn for every vertex whose Kind is a shape-owned
// kind (KindShapeCorner, KindShapeMidEdge), in insertion order — required
// by the sweep routines (spec §4.2).
func (s *Store) IterShapeVertices(fn func(*Vertex)) {
	for _, id := range s.order {
		if id.Kind == KindShapeCorner || id.Kind == KindShapeMidEdge {
			fn(s.vertices[id])
		}
	}
}

// IterConnectorVertices calls fn for every vertex whose Kind is
// KindConnectorEndpoint, in insertion order.
func (s *Store) IterConnectorVertices(fn func(*Vertex)) {
	for _, id := range s.order {
		if id.Kind == KindConnectorEndpoint {
			fn(s.vertices[id])
		}
	}
}

// IterAll calls fn for every vertex in insertion order.
func (s *Store) IterAll(fn func(*Vertex)) {
	for _, id := range s.order {
		fn(s.vertices[id])
	}
}

// Len returns the number of live vertices.
func (s *Store) Len() int { return len(s.vertices) }

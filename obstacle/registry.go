package obstacle

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/avoidroute/geom"
)

// Registry stores shapes, junctions, and clusters, and tracks whether the
// visibility graph built over them has gone stale (spec §4.3).
type Registry struct {
	shapes    map[string]*Shape
	junctions map[string]*Junction
	clusters  map[string]*Cluster
	order     []string // shape+junction ids, insertion order

	// dirty is set whenever an obstacle is added, moved, or removed, and
	// cleared by the router once the visibility graph has been rebuilt.
	dirty bool
}

// NewRegistry constructs an empty obstacle registry.
func NewRegistry() *Registry {
	return &Registry{
		shapes:    make(map[string]*Shape),
		junctions: make(map[string]*Junction),
		clusters:  make(map[string]*Cluster),
	}
}

// Dirty reports whether the visibility graph is stale.
func (r *Registry) Dirty() bool { return r.dirty }

// ClearDirty resets the dirty flag after a rebuild.
func (r *Registry) ClearDirty() { r.dirty = false }

// AddShape registers s. Fails with ErrDuplicateID if s.ID() is already
// registered as a shape or junction.
func (r *Registry) AddShape(s *Shape) error {
	if _, exists := r.shapes[s.Id]; exists {
		return fmt.Errorf("obstacle: add shape %q: %w", s.Id, ErrDuplicateID)
	}
	if _, exists := r.junctions[s.Id]; exists {
		return fmt.Errorf("obstacle: add shape %q: %w", s.Id, ErrDuplicateID)
	}
	r.shapes[s.Id] = s
	r.order = append(r.order, s.Id)
	r.dirty = true
	return nil
}

// RemoveShape unregisters the shape with id.
func (r *Registry) RemoveShape(id string) error {
	if _, ok := r.shapes[id]; !ok {
		return fmt.Errorf("obstacle: remove shape %q: %w", id, ErrNotFound)
	}
	delete(r.shapes, id)
	r.removeFromOrder(id)
	r.dirty = true
	return nil
}

// MoveShape translates the shape with id by delta.
func (r *Registry) MoveShape(id string, delta geom.Point) error {
	s, ok := r.shapes[id]
	if !ok {
		return fmt.Errorf("obstacle: move shape %q: %w", id, ErrNotFound)
	}
	s.MoveTo(delta)
	r.dirty = true
	return nil
}

// SetShapePolygon replaces the polygon of the shape with id (spec §6
// "moveShape(newPolygon)").
func (r *Registry) SetShapePolygon(id string, poly geom.Polygon) error {
	s, ok := r.shapes[id]
	if !ok {
		return fmt.Errorf("obstacle: set polygon %q: %w", id, ErrNotFound)
	}
	s.SetPolygon(poly)
	r.dirty = true
	return nil
}

// Shape looks up a registered shape.
func (r *Registry) Shape(id string) (*Shape, bool) {
	s, ok := r.shapes[id]
	return s, ok
}

// AddJunction registers j.
func (r *Registry) AddJunction(j *Junction) error {
	if _, exists := r.junctions[j.Id]; exists {
		return fmt.Errorf("obstacle: add junction %q: %w", j.Id, ErrDuplicateID)
	}
	if _, exists := r.shapes[j.Id]; exists {
		return fmt.Errorf("obstacle: add junction %q: %w", j.Id, ErrDuplicateID)
	}
	r.junctions[j.Id] = j
	r.order = append(r.order, j.Id)
	r.dirty = true
	return nil
}

// RemoveJunction unregisters the junction with id.
func (r *Registry) RemoveJunction(id string) error {
	if _, ok := r.junctions[id]; !ok {
		return fmt.Errorf("obstacle: remove junction %q: %w", id, ErrNotFound)
	}
	delete(r.junctions, id)
	r.removeFromOrder(id)
	r.dirty = true
	return nil
}

// MoveJunction translates the junction with id to a new absolute position,
// unless it is fixed.
func (r *Registry) MoveJunction(id string, pos geom.Point) error {
	j, ok := r.junctions[id]
	if !ok {
		return fmt.Errorf("obstacle: move junction %q: %w", id, ErrNotFound)
	}
	if j.Fixed {
		return nil
	}
	j.Position = pos
	r.dirty = true
	return nil
}

// Junction looks up a registered junction.
func (r *Registry) Junction(id string) (*Junction, bool) {
	j, ok := r.junctions[id]
	return j, ok
}

// AddCluster registers c and sets dirty, since the polyline visibility
// graph tags edges that cross a cluster boundary.
func (r *Registry) AddCluster(c *Cluster) error {
	if _, exists := r.clusters[c.Id]; exists {
		return fmt.Errorf("obstacle: add cluster %q: %w", c.Id, ErrDuplicateID)
	}
	r.clusters[c.Id] = c
	r.dirty = true
	return nil
}

// Cluster looks up a registered cluster.
func (r *Registry) Cluster(id string) (*Cluster, bool) {
	c, ok := r.clusters[id]
	return c, ok
}

// Clusters returns every registered cluster.
func (r *Registry) Clusters() []*Cluster {
	out := make([]*Cluster, 0, len(r.clusters))
	for _, id := range sortedKeys(r.clusters) {
		out = append(out, r.clusters[id])
	}
	return out
}

// Shapes returns every registered shape in insertion order.
func (r *Registry) Shapes() []*Shape {
	out := make([]*Shape, 0, len(r.shapes))
	for _, id := range r.order {
		if s, ok := r.shapes[id]; ok {
			out = append(out, s)
		}
	}
	return out
}

// Junctions returns every registered junction in insertion order.
func (r *Registry) Junctions() []*Junction {
	out := make([]*Junction, 0, len(r.junctions))
	for _, id := range r.order {
		if j, ok := r.junctions[id]; ok {
			out = append(out, j)
		}
	}
	return out
}

func (r *Registry) removeFromOrder(id string) {
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			return
		}
	}
}

func sortedKeys(m map[string]*Cluster) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

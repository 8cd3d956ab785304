package obstacle

import "github.com/katalvlaran/avoidroute/geom"

// Cluster is a convex polygonal region; connectors may be penalised for
// crossing its boundary (spec §3, §4.4 "IgnoreRegions").
type Cluster struct {
	Id   string
	Poly geom.Polygon
}

// NewCluster constructs a Cluster from an explicit convex polygon. Callers
// that only have a point set should run geom.ConvexHull first.
func NewCluster(id string, poly geom.Polygon) *Cluster {
	return &Cluster{Id: id, Poly: poly}
}

func (c *Cluster) ID() string            { return c.Id }
func (c *Cluster) Polygon() geom.Polygon { return c.Poly }
func (c *Cluster) Bounds() geom.Rect     { return c.Poly.Bounds() }
func (c *Cluster) IsPositionFixed() bool { return false }

func (c *Cluster) MoveTo(delta geom.Point) {
	for i := range c.Poly.Points {
		c.Poly.Points[i] = c.Poly.Points[i].Add(delta)
	}
}

// CrossesBoundary reports whether the open segment (a,b) crosses the
// cluster's polygon boundary.
func (c *Cluster) CrossesBoundary(a, b geom.Point) bool {
	n := len(c.Poly.Points)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		kind, _ := geom.SegmentIntersect(a, b, c.Poly.Points[j], c.Poly.Points[i])
		if kind == geom.IntersectsAtPoint {
			return true
		}
	}
	return false
}

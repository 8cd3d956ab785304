package vgraph

import "github.com/katalvlaran/avoidroute/geom"

// Vn is a vertex number: a fixed convention tying a point to a side or
// corner of its owning shape (spec §3).
type Vn int

const (
	// VnCornerTopLeft..VnCornerBottomLeft are shape corner vertex numbers,
	// clockwise starting top-left, matching geom.Rect.Corners/Polygon
	// winding.
	VnCornerTopLeft Vn = iota
	VnCornerTopRight
	VnCornerBottomRight
	VnCornerBottomLeft

	// VnMidTop..VnMidLeft are shape mid-edge vertex numbers.
	VnMidTop
	VnMidRight
	VnMidBottom
	VnMidLeft

	// VnUnassigned is the sentinel for introduced points (spec §3, §9
	// "midVertexNumber" open question) whose side is not yet, or cannot be,
	// determined.
	VnUnassigned Vn = -1
)

// Point is a coordinate owned by an object, carrying the vertex-number
// convention of spec §3.
type Point struct {
	geom.Point
	OwnerID string
	Vn      Vn
}

// Kind distinguishes the reserved vertex classes of spec §3 from ordinary
// shape-corner and connector-endpoint vertices.
type Kind int

const (
	// KindShapeCorner is a long-lived vertex at a shape polygon corner.
	KindShapeCorner Kind = iota
	// KindShapeMidEdge is a long-lived vertex at a shape mid-edge point.
	KindShapeMidEdge
	// KindConnectorEndpoint is a short-lived vertex for one reroute.
	KindConnectorEndpoint
	// KindJunctionPin is a vertex at one of a junction's four implicit
	// pins.
	KindJunctionPin
	// KindConnectionPin is a vertex at a shape's connection pin.
	KindConnectionPin
	// KindDummyOrthogonal is an intersection vertex introduced by the
	// orthogonal scanline breakpoint walk (spec §4.5).
	KindDummyOrthogonal
	// KindDummyShapeEdge is a dummy vertex introduced along a shape edge.
	KindDummyShapeEdge
	// KindDummyPinHelper is a helper vertex introduced to route a
	// connection pin's direction constraint.
	KindDummyPinHelper
	// KindDimensionChange labels a dummy vertex at a bend. Path search does
	// not create such vertices: it charges the bend penalty from its
	// (vertex, predecessor) search state.
	KindDimensionChange
)

// Direction is one of the four cardinal directions used by visibility
// direction masks and connection-pin direction bitmasks (spec §3, §4.5).
type Direction uint8

const (
	DirUp Direction = 1 << iota
	DirDown
	DirLeft
	DirRight
)

// DirAll is the full {Up,Down,Left,Right} mask.
const DirAll = DirUp | DirDown | DirLeft | DirRight

// PropertyFlag carries the long-range-visibility hints of spec §3's
// VertexId: which dimension bounds have already been crossed when walking
// outward from this vertex during a sweep.
type PropertyFlag uint8

const (
	// FlagShapeEdgeCrossedLow marks that a shape edge has been crossed
	// towards lower positions in the sweep dimension.
	FlagShapeEdgeCrossedLow PropertyFlag = 1 << iota
	// FlagShapeEdgeCrossedHigh marks the same towards higher positions.
	FlagShapeEdgeCrossedHigh
	// FlagConnPointCrossed marks that a connection point has been crossed.
	FlagConnPointCrossed
)

// ID identifies a vertex: (objectId, isShape, propertyFlags) per spec §3.
// Two reserved ObjectIDs — DummyObjectID and the empty string — are never
// assigned to a real shape/connector/junction.
type ID struct {
	ObjectID string
	IsShape  bool
	Flags    PropertyFlag
	Kind     Kind
	// Seq disambiguates multiple dummy/pin vertices sharing an ObjectID
	// (e.g. four pins per junction, N dummy vertices per reroute).
	Seq int
}

// DummyObjectID is the reserved ObjectID used for router-internal dummy
// vertices (dimension-change, orthogonal breakpoints) that do not belong to
// any client-visible shape, junction, or connector.
const DummyObjectID = "\x00dummy"

// LongRangeVisibility is the 4-bit-per-dimension hint set of spec §4.5:
// hasSeenConnPt-low/high and hasSeenShapeEdge-low/high, tracked
// independently for X and Y.
type LongRangeVisibility struct {
	SeenConnPtLowX, SeenConnPtHighX       bool
	SeenShapeEdgeLowX, SeenShapeEdgeHighX bool
	SeenConnPtLowY, SeenConnPtHighY       bool
	SeenShapeEdgeLowY, SeenShapeEdgeHighY bool
}

// Vertex owns a Point and an ID, adjacency lists split into visibility and
// invisibility, a visibility-direction bitmask, shape-ring neighbour links,
// and search scratch fields (spec §3).
type Vertex struct {
	ID ID
	Pt Point

	// Visible holds indices (into the owning Store's edge arena) of edges
	// currently considered visibility edges from this vertex.
	Visible []int
	// Invisible holds edges explicitly known NOT to be visible, recorded by
	// MarkInvisible. The visibility builders do not consult it; they test
	// every pair again on each rebuild.
	Invisible []int

	// DirMask restricts which directions this vertex may emit visibility
	// edges in (connection pins, spec §4.5 "Direction mask").
	DirMask Direction

	// PreferredDir is the single direction a connection pin's side faces,
	// used only to compute the soft port-direction penalty (spec §6
	// "port-direction"); it is always one of DirMask's allowed bits, or
	// the zero value when the terminal has no side preference.
	PreferredDir Direction

	// ShPrev/ShNext are the previous/next corner vertex ids in the owning
	// shape's polygon ring (spec §3, §9 "cyclic corner rings"). Zero value
	// (empty ObjectID) means "no ring membership".
	ShPrev, ShNext ID

	LRVis LongRangeVisibility

	// Scratch fields for one graph sweep (hyperedge.BuildMTST's forest
	// search); package search keeps its own state and does not use them.
	PathNext ID
	HasNext  bool
	SptfDist float64
	SptfRoot ID
}

// Edge is an ordered pair of vertices living in the owning Store's arena; it
// appears in both endpoints' adjacency lists simultaneously (spec §3, §9).
type Edge struct {
	U, V       ID
	Dist       float64
	Orthogonal bool
	// CycleBlocker marks an edge synthesised after a failed path search
	// (spec §4.6/§7) so that subsequent routing does not retry the pair.
	CycleBlocker bool
	// CrossesCluster marks an edge tagged during polyline visibility
	// construction as crossing a cluster boundary (spec §4.4).
	CrossesCluster bool
	// removed marks a tombstoned arena slot so RemoveVertex can patch
	// adjacency lists in O(degree) without compacting the arena.
	removed bool
}

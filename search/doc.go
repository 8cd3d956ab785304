// Package search implements the priority-queue shortest-path routine of
// spec §4.6: Dijkstra over a vgraph.Store with a penalty-aware cost
// function (bends, segment count, estimated crossings, cluster-boundary
// traversal), rubber-band rerouting from an existing route, and bend-point
// validity checking against a shape's corner ring.
//
// Grounded directly on lvlath/dijkstra: the same lazy-decrease-key binary
// heap over container/heap, the same functional-Option configuration shape,
// and the same upfront "treat this edge as impassable" wall-edge idea
// (there: InfEdgeThreshold; here: CycleBlocker edges recorded after a prior
// search failure, spec §7).
//
// Bend-cost modelling (spec §4.6 "applied by introducing a dummy
// dimension-change vertex") is implemented as an augmented search state
// (vertex, entry-direction) rather than literal dummy vertices spliced into
// the store mid-search: the two formulations are equivalent for computing
// shortest paths, and the augmented-state form avoids mutating the shared
// vgraph.Store from inside a read-only search. See DESIGN.md.
package search

// Package hyperedge builds and locally improves the minimum-terminal-
// spanning-tree (MTST) structure spec §4.9 calls a HyperEdgeTree: the Steiner-
// tree approximation that joins a set of terminal vertices in a visibility
// graph through shared junctions, used to route a single hyperedge (several
// connectors that should visually merge into one branching line).
//
// Construction (mtst.go) follows the "extended Prim's + extended Kruskal's"
// recipe of spec §4.9: a simultaneous multi-source Dijkstra grows a forest
// rooted at every terminal (using vgraph.Vertex's SptfDist/SptfRoot/PathNext
// scratch fields, reserved for exactly this sweep), recording every edge
// that would bridge two different trees as a candidate; Kruskal's algorithm
// then merges trees across that candidate list in cost order, materialising
// each winning bridge's two root-paths as HyperEdgeTree edges.
//
// Local improvement (improve.go) nudges the resulting tree's junctions
// towards balance — an unsettled shift segment (more branches diverging to
// one side than the other) is moved towards the majority side, zero-length
// edges are collapsed, and near-colinear junctions are pulled together —
// over a fixed number of alternating-dimension passes. Improve operates on
// its own copy of vertex positions rather than the shared vgraph.Store,
// since which vertices are free to move (a hyperedge's own junctions) and
// which aren't (shape corners, fixed terminals) is a router-level decision;
// the router applies the returned positions back onto its own junction
// objects.
package hyperedge

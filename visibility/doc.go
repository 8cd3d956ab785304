// Package visibility builds and incrementally maintains the two visibility
// graphs path search operates over: the sparse line-of-sight graph for
// polyline routing (spec §4.4) and the orthogonal visibility graph for
// rectilinear routing (spec §4.5).
//
// Both builders write into a shared vgraph.Store. The polyline builder
// keeps its shape-to-shape subgraph across transactions and only rebuilds
// endpoint incidence (spec §4.4); the orthogonal builder regenerates the
// grid of candidate horizontal/vertical segments induced by every shape's
// extent and every connector endpoint — the same "interesting coordinate"
// set a two-pass vertical/horizontal scanline sweep would discover event by
// event (original_source cola/libavoid/orthogonal.cpp), materialised
// directly as a Hanan grid rather than threaded through an explicit event
// queue. See DESIGN.md for the grounding and the tradeoff this makes.
package visibility

// Package vgraph is the vertex/edge store underlying every visibility graph
// in avoidroute: it keys vertices by VertexId, holds the two adjacency
// classes described in spec §4.2 (long-lived shape-corner vertices and
// short-lived connector-endpoint vertices), and owns the edge arena shared
// by both endpoints of every edge.
//
// Store is not safe for concurrent use by multiple goroutines; per spec §5
// the router serialises all mutation inside a single ProcessTransaction
// call, so vgraph itself does not need internal locking — unlike
// lvlath/core.Graph, which is a general-purpose concurrent graph.
package vgraph

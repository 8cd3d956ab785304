package vgraph

import "errors"

// ErrDuplicateID indicates InsertVertex was called with a VertexId that is
// already present in the store (spec §4.2 Failure).
var ErrDuplicateID = errors.New("vgraph: duplicate vertex id")

// ErrVertexNotFound indicates a lookup or removal referenced a VertexId that
// does not exist in the store.
var ErrVertexNotFound = errors.New("vgraph: vertex not found")

// ErrEdgeNotFound indicates RemoveEdge or reverse lookup failed to locate
// the requested (u,v) pair.
var ErrEdgeNotFound = errors.New("vgraph: edge not found")

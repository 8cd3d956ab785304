// Package crossing implements the crossing analyser of spec §4.7:
// classifying segment pairs between two polylines as disjoint, properly
// crossing, or sharing a sub-path, and building the partial order over
// shared-path corners that the nudging engine (package nudge) consumes to
// decide which of two coincident segments ends up on which side.
//
// Grounded on original_source/cola/libavoid/connector.cpp
// (splitBranchingSegments, PtOrder) for exact semantics, and on
// lvlath/graph/algorithms' topological-sort-shaped handling of a DAG with
// cycles for the swapped-edge cycle-breaking idiom.
package crossing

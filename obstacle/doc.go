// Package obstacle holds the router's registry of shapes, junctions, and
// clusters (spec §3, §4.3): the rectangular/polygonal obstacles that
// connectors must avoid, the junction points at which hyperedges branch,
// and the convex cluster regions whose boundary crossings path search may
// penalise.
//
// Shape, Junction, and Cluster are a tagged variant behind the common
// Obstacle interface (spec §9 "Dynamic dispatch"), following the
// functional-constructor style of lvlath/builder's impl_*.go files rather
// than an inheritance hierarchy.
package obstacle

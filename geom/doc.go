// Package geom provides the numerically-robust geometric primitives shared
// by every other package in avoidroute: points, rectangles, polygons,
// segment intersection, turn direction, and convex hulls.
//
// Numerical robustness is this package's responsibility alone. Every caller
// above this layer is entitled to treat exact coordinate equality as meaning
// "collinear" — PointOnLine and SegmentIntersect apply a tolerance so that
// minor floating-point drift introduced by upstream construction never
// surfaces as a spurious non-collinearity.
package geom

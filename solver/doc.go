// Package solver implements the 1-D separation-constraint collaborator
// interface of spec §6: given Variables (id, desired position, weight) and
// Constraints (left id, right id, minimum gap, equality bit), it returns
// final positions that satisfy every gap while minimising the weighted
// sum of squared displacement from each variable's desired position.
//
// Spec §1/§9 scope this solver OUT of the core and ask only for the
// Variables/Constraints -> positions contract to be honoured; this package
// is kept separate from nudge for exactly that reason — nudge treats it as
// a black-box collaborator, never reaching into its internals.
//
// The algorithm is a weighted pairwise projection (repeatedly sweep the
// constraints, redistributing each violated gap between its two endpoints
// in inverse proportion to their weight, until a sweep moves nothing by
// more than 1e-9 or 500 sweeps have run; no blocks are formed) rather than
// the real VPSC library's active-set method
// (original_source/solve_VPSC/libvpsc/variable.cpp) — a deliberately
// simpler stand-in behind the same contract. See DESIGN.md.
package solver

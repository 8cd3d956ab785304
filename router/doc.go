// Package router implements the orchestrator of spec §4.10: it owns every
// obstacle, junction, cluster, and connector, queues mutations between
// transactions, and drives the rest of the module's packages
// (obstacle, visibility, search, crossing, nudge, hyperedge) through one
// synchronous ProcessTransaction call.
//
// ProcessTransaction's six steps mirror lvlath/builder.BuildGraph's "one
// orchestrator, resolve configuration once, apply in deterministic order"
// contract, generalised from "apply constructors" to "apply queued actions,
// rebuild stale visibility, reroute, post-process, and fire callbacks":
//
//  1. Apply every queued add/remove/move action against the obstacle
//     registry and the connector table.
//  2. If the registry is dirty, rebuild the polyline shape-to-shape
//     subgraph (orthogonal visibility has no persistent state to rebuild:
//     it is regenerated from scratch per transaction, see visibility/doc.go).
//  3. Path-search every connector flagged needsReroute or falsePath.
//  4. Simplify, crossing-analyse, and nudge the orthogonal display routes.
//  5. When OptImproveHyperedgeRouting is set, run the hyperedge engine for
//     every junction with two or more attached connectors.
//  6. Invoke each changed connector's registered callback, in the order
//     connectors were originally added (spec §5 "ordering guarantees").
//
// Per spec §7, ProcessTransaction itself never returns an error: every
// failure mode it can hit is non-fatal (a no-path search becomes a
// straight-line fallback plus a cycle-blocker edge; infeasible nudging
// recovers by halving separation inside package nudge; degenerate geometry
// is a warning). Diagnostics are written to the Logger supplied at
// construction instead of being surfaced as return values, exactly as spec
// §7 "diagnostics go to a sink supplied at construction" requires.
package router

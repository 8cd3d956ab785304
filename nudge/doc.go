// Package nudge implements the orthogonal nudging engine of spec §4.8: it
// takes a set of already-routed orthogonal display routes and shifts their
// parallel segments apart, dimension by dimension, so that two connectors
// that run alongside each other for a while no longer draw exactly on top
// of one another.
//
// The pipeline per dimension is:
//
//  1. decompose every route into NudgingShiftSegments aligned to that
//     dimension (segments.go);
//  2. compute each segment's [-d,+d] movement limits with a scanline sweep
//     against the obstacle set (limits.go);
//  3. group segments that overlap (transitively) in the alternate
//     dimension into regions (region.go);
//  4. within each region, order segments with crossing.PartialOrder and
//     hand them to the solver collaborator as Variables/Constraints
//     (nudge.go);
//  5. write the solved positions back onto the route points.
//
// Step 4 is run twice per spec §4.8.8: once with an empty order (pure
// centring) and once with the real partial order, mirroring the two-pass
// "performUnifyingNudgingPreprocessingStep then full nudge" structure of
// the source system.
package nudge

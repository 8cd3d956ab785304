package nudge

import "errors"

// ErrDegenerateRoute indicates a route with fewer than two points was
// passed to Nudge; there is no segment to decompose.
var ErrDegenerateRoute = errors.New("nudge: route has fewer than two points")

// ErrInfeasibleSeparation marks spec §7's "infeasible-separation" case: the
// solver could not place every fixed anchor within tolerance at any
// positive separation. Nudge never returns it and the halving loop does not
// use it: that loop halves the separation and, once it falls below 1e-4,
// accepts the last solution.
var ErrInfeasibleSeparation = errors.New("nudge: cannot satisfy gap at any positive separation")

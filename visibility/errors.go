package visibility

import "errors"

// ErrNoShapes is returned by Build when called with zero shapes and zero
// connector endpoints — there is nothing to build a graph over.
var ErrNoShapes = errors.New("visibility: no obstacles or endpoints to build over")

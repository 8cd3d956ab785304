package obstacle

import "errors"

// ErrDuplicateID indicates AddShape/AddJunction/AddCluster was called with
// an id already present in the registry.
var ErrDuplicateID = errors.New("obstacle: duplicate id")

// ErrNotFound indicates a lookup, move, or removal referenced an id that is
// not registered.
var ErrNotFound = errors.New("obstacle: not found")

// ErrDegenerateGeometry indicates a zero-area shape polygon or coincident
// endpoints (spec §7 "geometry-degenerate"). Routing continues; this is a
// warning, not a fatal error.
var ErrDegenerateGeometry = errors.New("obstacle: degenerate geometry")

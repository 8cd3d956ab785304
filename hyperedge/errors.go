package hyperedge

import "errors"

// ErrNoTerminals indicates BuildMTST was called with fewer than two
// terminal vertices; a hyperedge needs at least two to form any tree.
var ErrNoTerminals = errors.New("hyperedge: fewer than two terminals")

// ErrDisconnected indicates the candidate heap was exhausted before every
// terminal's tree had been merged into one: the terminals are not all
// mutually reachable in the supplied visibility graph.
var ErrDisconnected = errors.New("hyperedge: terminals are not all mutually reachable")

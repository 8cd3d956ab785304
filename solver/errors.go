package solver

import "errors"

// ErrUnknownVariable indicates a Constraint references a variable id absent
// from the Variables slice passed to Solve.
var ErrUnknownVariable = errors.New("solver: constraint references unknown variable id")

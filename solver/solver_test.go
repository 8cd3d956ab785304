package solver_test

import (
	"testing"

	"github.com/katalvlaran/avoidroute/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveSatisfiesSingleGap(t *testing.T) {
	vars := []solver.Variable{
		{ID: 0, DesiredPos: 0, Weight: 1},
		{ID: 1, DesiredPos: 1, Weight: 1},
	}
	cons := []solver.Constraint{
		{Left: 0, Right: 1, Gap: 10},
	}
	pos, err := solver.Solve(vars, cons)
	require.NoError(t, err)
	require.Len(t, pos, 2)
	assert.InDelta(t, 10, pos[1]-pos[0], 1e-6)
}

func TestSolveLeavesUnviolatedGapAlone(t *testing.T) {
	vars := []solver.Variable{
		{ID: 0, DesiredPos: 0, Weight: 1},
		{ID: 1, DesiredPos: 20, Weight: 1},
	}
	cons := []solver.Constraint{
		{Left: 0, Right: 1, Gap: 10},
	}
	pos, err := solver.Solve(vars, cons)
	require.NoError(t, err)
	assert.InDelta(t, 0, pos[0], 1e-6)
	assert.InDelta(t, 20, pos[1], 1e-6)
}

func TestSolveHonoursEqualityConstraint(t *testing.T) {
	vars := []solver.Variable{
		{ID: 0, DesiredPos: 0, Weight: 1},
		{ID: 1, DesiredPos: 100, Weight: 1},
	}
	cons := []solver.Constraint{
		{Left: 0, Right: 1, Gap: 5, Equality: true},
	}
	pos, err := solver.Solve(vars, cons)
	require.NoError(t, err)
	assert.InDelta(t, 5, pos[1]-pos[0], 1e-6)
}

func TestSolveRedistributesByWeight(t *testing.T) {
	// heavy variable should move less than the light one
	vars := []solver.Variable{
		{ID: 0, DesiredPos: 0, Weight: 10},
		{ID: 1, DesiredPos: 1, Weight: 1},
	}
	cons := []solver.Constraint{
		{Left: 0, Right: 1, Gap: 10},
	}
	pos, err := solver.Solve(vars, cons)
	require.NoError(t, err)
	moveLeft := pos[0] - 0
	moveRight := pos[1] - 1
	assert.Less(t, abs(moveLeft), abs(moveRight), "heavier variable should move less")
}

func TestSolveChainOfConstraints(t *testing.T) {
	vars := []solver.Variable{
		{ID: 0, DesiredPos: 0, Weight: 1},
		{ID: 1, DesiredPos: 0, Weight: 1},
		{ID: 2, DesiredPos: 0, Weight: 1},
	}
	cons := []solver.Constraint{
		{Left: 0, Right: 1, Gap: 5},
		{Left: 1, Right: 2, Gap: 5},
	}
	pos, err := solver.Solve(vars, cons)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, pos[1]-pos[0], 5-1e-6)
	assert.GreaterOrEqual(t, pos[2]-pos[1], 5-1e-6)
}

func TestSolveRejectsUnknownVariable(t *testing.T) {
	vars := []solver.Variable{
		{ID: 0, DesiredPos: 0, Weight: 1},
	}
	cons := []solver.Constraint{
		{Left: 0, Right: 99, Gap: 5},
	}
	_, err := solver.Solve(vars, cons)
	require.Error(t, err)
	assert.ErrorIs(t, err, solver.ErrUnknownVariable)
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

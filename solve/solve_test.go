package solve_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/optima/knapsack"
	"github.com/katalvlaran/optima/lpsolve"
	"github.com/katalvlaran/optima/milp"
	"github.com/katalvlaran/optima/preprocess"
	"github.com/katalvlaran/optima/schema"
	"github.com/katalvlaran/optima/solve"
)

// stubSolver is a test double for the external solving capability.
type stubSolver struct {
	out lpsolve.RawOutput
	err error
}

func (s stubSolver) Solve(_ *preprocess.PreprocessedLP, _ lpsolve.Method) (lpsolve.RawOutput, error) {
	return s.out, s.err
}

// TestRunKnapsack_ScenarioA: the canonical instance through the whole
// pipeline, selection formatted as the uniform 0/1 assignment.
func TestRunKnapsack_ScenarioA(t *testing.T) {
	res := solve.RunKnapsack(schema.Knapsack{
		Values:   []float64{60, 100, 120},
		Weights:  []int{10, 20, 30},
		Capacity: 50,
	})

	require.NoError(t, res.Err)
	require.Equal(t, schema.StatusOptimal, res.Status)
	assert.Equal(t, 220.0, res.Objective)
	assert.Equal(t, []float64{0, 1, 1}, res.X)
}

// TestRunLP_ScenarioB: minimize -x-y over the unit box.
func TestRunLP_ScenarioB(t *testing.T) {
	res := solve.RunLP(schema.LP{
		Sense:  schema.Minimize,
		C:      []float64{-1, -1},
		Bounds: []schema.Bound{{Lower: 0, Upper: 1}, {Lower: 0, Upper: 1}},
	}, lpsolve.MethodDefault)

	require.NoError(t, res.Err)
	require.Equal(t, schema.StatusOptimal, res.Status)
	assert.InDelta(t, -2.0, res.Objective, 1e-9)
	require.Len(t, res.X, 2)
	assert.InDelta(t, 1.0, res.X[0], 1e-9)
	assert.InDelta(t, 1.0, res.X[1], 1e-9)
	require.NotNil(t, res.Sensitivity)
	assert.False(t, res.Sensitivity.Available, "gonum backend exposes no duals")
}

// TestRunLP_ScenarioC: jointly infeasible equalities are an answer, not an
// error.
func TestRunLP_ScenarioC(t *testing.T) {
	res := solve.RunLP(schema.LP{
		Sense: schema.Minimize,
		C:     []float64{1},
		AEq:   [][]float64{{1}, {1}},
		BEq:   []float64{1, 2},
	}, lpsolve.MethodDefault)

	require.NoError(t, res.Err)
	assert.Equal(t, schema.StatusInfeasible, res.Status)
	assert.Empty(t, res.X)
}

// TestRunLP_OffsetOnly: no constraints + all-zero objective optimizes to
// the bare offset.
func TestRunLP_OffsetOnly(t *testing.T) {
	res := solve.RunLP(schema.LP{
		Sense:  schema.Minimize,
		C:      []float64{0, 0, 0},
		Offset: 2.25,
	}, lpsolve.MethodDefault)

	require.NoError(t, res.Err)
	require.Equal(t, schema.StatusOptimal, res.Status)
	assert.InDelta(t, 2.25, res.Objective, 1e-12)
}

// TestRunLP_ColumnMapRoundTrip: a fixed variable reappears in the uniform
// result at its forced value.
func TestRunLP_ColumnMapRoundTrip(t *testing.T) {
	res := solve.RunLP(schema.LP{
		Sense: schema.Minimize,
		C:     []float64{1, 3},
		AUb:   [][]float64{{1, 1}},
		BUb:   []float64{10},
		Bounds: []schema.Bound{
			{Lower: 0, Upper: math.Inf(1)},
			{Lower: 4, Upper: 4},
		},
	}, lpsolve.MethodDefault)

	require.NoError(t, res.Err)
	require.Equal(t, schema.StatusOptimal, res.Status)
	require.Len(t, res.X, 2, "expansion must restore the original variable count")
	assert.InDelta(t, 0.0, res.X[0], 1e-9)
	assert.InDelta(t, 4.0, res.X[1], 1e-9, "fixed entry equals its forced bound value")
	assert.InDelta(t, 12.0, res.Objective, 1e-9)
}

// TestRunLP_PreprocessPreservesOptimum: the optimum is identical with and
// without scaling, and with reducible structure present.
func TestRunLP_PreprocessPreservesOptimum(t *testing.T) {
	raw := schema.LP{
		Sense: schema.Maximize,
		C:     []float64{3, 5, 0},
		AUb: [][]float64{
			{0, 0, 0}, // removable row
			{1, 0, 0},
			{0, 2, 0},
			{3, 2, 0},
		},
		BUb: []float64{1, 4, 12, 18},
	}

	plain := solve.RunLP(raw, lpsolve.MethodDefault)
	scaled := solve.RunLP(raw, lpsolve.MethodDefault,
		solve.WithPreprocessOptions(preprocess.Options{Scale: true}))

	require.NoError(t, plain.Err)
	require.NoError(t, scaled.Err)
	require.Equal(t, schema.StatusOptimal, plain.Status)
	require.Equal(t, schema.StatusOptimal, scaled.Status)
	assert.InDelta(t, 36.0, plain.Objective, 1e-9)
	assert.InDelta(t, plain.Objective, scaled.Objective, 1e-9, "scaling must never change the optimum")
	assert.Len(t, plain.X, 3)
}

// TestRunLP_StageValidate: malformed shape is tagged with the validation
// stage and the schema sentinel stays reachable.
func TestRunLP_StageValidate(t *testing.T) {
	res := solve.RunLP(schema.LP{
		Sense: schema.Minimize,
		C:     []float64{1, 2},
		AUb:   [][]float64{{1}},
		BUb:   []float64{1},
	}, lpsolve.MethodDefault)

	assert.Equal(t, schema.StatusError, res.Status)
	assert.Equal(t, solve.StageValidate, res.Stage)
	assert.ErrorIs(t, res.Err, schema.ErrDimensionMismatch)
}

// TestRunLP_StagePreprocess: a provable contradiction is tagged with the
// preprocessing stage.
func TestRunLP_StagePreprocess(t *testing.T) {
	res := solve.RunLP(schema.LP{
		Sense:  schema.Minimize,
		C:      []float64{1},
		AEq:    [][]float64{{1}},
		BEq:    []float64{2},
		Bounds: []schema.Bound{{Lower: 1, Upper: 1}},
	}, lpsolve.MethodDefault)

	assert.Equal(t, schema.StatusError, res.Status)
	assert.Equal(t, solve.StagePreprocess, res.Stage)
	assert.ErrorIs(t, res.Err, preprocess.ErrContradiction)
}

// TestRunLP_StageSolve_UnsupportedMethod: the closed method set is enforced
// at the solve stage.
func TestRunLP_StageSolve_UnsupportedMethod(t *testing.T) {
	res := solve.RunLP(schema.LP{Sense: schema.Minimize, C: []float64{1}}, lpsolve.Method(42))

	assert.Equal(t, schema.StatusError, res.Status)
	assert.Equal(t, solve.StageSolve, res.Stage)
	assert.ErrorIs(t, res.Err, lpsolve.ErrUnsupportedMethod)
}

// TestRunLP_StageSolve_BackendFailure: a backend-internal failure surfaces
// as ErrSolver with the raw diagnostic preserved.
func TestRunLP_StageSolve_BackendFailure(t *testing.T) {
	res := solve.RunLP(
		schema.LP{Sense: schema.Minimize, C: []float64{1}},
		lpsolve.MethodDefault,
		solve.WithSolver(stubSolver{out: lpsolve.RawOutput{
			Status:  lpsolve.RawFailure,
			Message: "basis went singular",
		}}),
	)

	assert.Equal(t, schema.StatusError, res.Status)
	assert.Equal(t, solve.StageSolve, res.Stage)
	assert.ErrorIs(t, res.Err, lpsolve.ErrSolver)
	assert.Equal(t, "basis went singular", res.Message)
}

// TestRunLP_SensitivityThroughStub: a backend that does expose duals yields
// a populated report keyed by original indices.
func TestRunLP_SensitivityThroughStub(t *testing.T) {
	res := solve.RunLP(
		schema.LP{
			Sense: schema.Minimize,
			C:     []float64{2, 3},
			AUb:   [][]float64{{1, 1}},
			BUb:   []float64{5},
			Names: []string{"alpha", "beta"},
		},
		lpsolve.MethodDefault,
		solve.WithSolver(stubSolver{out: lpsolve.RawOutput{
			Status:          lpsolve.RawOptimal,
			Objective:       0,
			X:               []float64{0, 0},
			ConstraintDuals: []float64{1.5},
			ReducedCosts:    []float64{2, 3},
		}}),
	)

	require.NoError(t, res.Err)
	require.NotNil(t, res.Sensitivity)
	require.True(t, res.Sensitivity.Available)
	require.Len(t, res.Sensitivity.InequalityDuals, 1)
	assert.Equal(t, 1.5, res.Sensitivity.InequalityDuals[0].Value)
	require.Len(t, res.Sensitivity.ReducedCosts, 2)
	assert.Equal(t, "beta", res.Sensitivity.ReducedCosts[1].Name)
}

// TestRunMILP_BinaryKnapsack: the branch-and-bound path agrees with the DP
// engine on the canonical instance.
func TestRunMILP_BinaryKnapsack(t *testing.T) {
	res := solve.RunMILP(schema.MILP{
		LP: schema.LP{
			Sense: schema.Maximize,
			C:     []float64{60, 100, 120},
			AUb:   [][]float64{{10, 20, 30}},
			BUb:   []float64{50},
			Bounds: []schema.Bound{
				{Lower: 0, Upper: 1},
				{Lower: 0, Upper: 1},
				{Lower: 0, Upper: 1},
			},
		},
		Integrality: []bool{true, true, true},
	}, lpsolve.MethodDefault)

	require.NoError(t, res.Err)
	require.Equal(t, schema.StatusOptimal, res.Status)
	assert.InDelta(t, 220.0, res.Objective, 1e-9)
	assert.Equal(t, []float64{0, 1, 1}, res.X)
	assert.Nil(t, res.Sensitivity, "no marginal report at an integer optimum")
}

// TestRunMILP_StageValidate: a malformed integrality vector is tagged with
// the validation stage.
func TestRunMILP_StageValidate(t *testing.T) {
	res := solve.RunMILP(schema.MILP{
		LP:          schema.LP{Sense: schema.Minimize, C: []float64{1, 2}},
		Integrality: []bool{true},
	}, lpsolve.MethodDefault)

	assert.Equal(t, schema.StatusError, res.Status)
	assert.Equal(t, solve.StageValidate, res.Stage)
	assert.ErrorIs(t, res.Err, schema.ErrDimensionMismatch)
}

// TestRunMILP_StageSolve_NodeLimit: an exhausted node budget is tagged with
// the solve stage and the sentinel stays reachable.
func TestRunMILP_StageSolve_NodeLimit(t *testing.T) {
	res := solve.RunMILP(schema.MILP{
		LP: schema.LP{
			Sense:  schema.Maximize,
			C:      []float64{3, 2},
			AUb:    [][]float64{{1, 1}},
			BUb:    []float64{2.5},
			Bounds: []schema.Bound{{Lower: 0, Upper: 2}, {Lower: 0, Upper: 2}},
		},
		Integrality: []bool{true, true},
	}, lpsolve.MethodDefault, solve.WithMILPOptions(milp.Options{MaxNodes: 1}))

	assert.Equal(t, schema.StatusError, res.Status)
	assert.Equal(t, solve.StageSolve, res.Stage)
	assert.ErrorIs(t, res.Err, milp.ErrNodeLimit)
}

// TestRunKnapsack_StageValidate: a negative weight is caught at the
// validation boundary, never inside the engine.
func TestRunKnapsack_StageValidate(t *testing.T) {
	res := solve.RunKnapsack(schema.Knapsack{
		Values:   []float64{1},
		Weights:  []int{-1},
		Capacity: 3,
	})

	assert.Equal(t, schema.StatusError, res.Status)
	assert.Equal(t, solve.StageValidate, res.Stage)
	assert.ErrorIs(t, res.Err, schema.ErrNegativeWeight)
}

// TestRunKnapsack_MemoryModeOption: the rolling mode produces the same
// uniform result.
func TestRunKnapsack_MemoryModeOption(t *testing.T) {
	raw := schema.Knapsack{
		Values:   []float64{60, 100, 120},
		Weights:  []int{10, 20, 30},
		Capacity: 50,
	}

	full := solve.RunKnapsack(raw)
	rolling := solve.RunKnapsack(raw,
		solve.WithKnapsackOptions(knapsack.Options{MemoryMode: knapsack.RollingKeep}))

	require.NoError(t, full.Err)
	require.NoError(t, rolling.Err)
	assert.Equal(t, full.Objective, rolling.Objective)
	assert.Equal(t, full.X, rolling.X)
}

// TestRunKnapsack_EmptyInstance: n == 0 solves to the empty optimum.
func TestRunKnapsack_EmptyInstance(t *testing.T) {
	res := solve.RunKnapsack(schema.Knapsack{})

	require.NoError(t, res.Err)
	assert.Equal(t, schema.StatusOptimal, res.Status)
	assert.Equal(t, 0.0, res.Objective)
	assert.Empty(t, res.X)
}

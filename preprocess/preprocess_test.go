package preprocess_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/optima/preprocess"
	"github.com/katalvlaran/optima/schema"
)

// mustValidate is a test helper converting a raw LP into a validated one.
func mustValidate(t *testing.T, raw schema.LP) schema.ValidatedLP {
	t.Helper()
	v, err := schema.ValidateLP(raw)
	require.NoError(t, err)

	return v
}

// TestPreprocess_FixedColumnSubstitution: a bound-fixed variable is folded
// into the RHS and the objective offset, and reappears on expansion.
func TestPreprocess_FixedColumnSubstitution(t *testing.T) {
	v := mustValidate(t, schema.LP{
		Sense: schema.Minimize,
		C:     []float64{5, 1},
		AUb:   [][]float64{{2, 1}},
		BUb:   []float64{10},
		Bounds: []schema.Bound{
			{Lower: 3, Upper: 3}, // fixed at 3
			{Lower: 0, Upper: math.Inf(1)},
		},
	})

	pre, cmap, err := preprocess.Preprocess(v, preprocess.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 1, pre.NumVars(), "fixed column must be substituted out")
	assert.Equal(t, []float64{1}, pre.C)
	assert.Equal(t, [][]float64{{1}}, pre.AUb)
	assert.InDelta(t, 4.0, pre.BUb[0], 1e-12, "RHS must absorb 2*3")
	assert.InDelta(t, 15.0, pre.Offset, 1e-12, "offset must absorb 5*3")

	full, err := cmap.Expand([]float64{7})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 7}, full, "fixed entry re-inserted at its forced value")
}

// TestPreprocess_ZeroColumnDropped: a variable absent from objective and all
// rows is eliminated at the in-bounds value nearest zero.
func TestPreprocess_ZeroColumnDropped(t *testing.T) {
	v := mustValidate(t, schema.LP{
		Sense: schema.Minimize,
		C:     []float64{0, 1},
		AUb:   [][]float64{{0, 1}},
		BUb:   []float64{4},
	})

	pre, cmap, err := preprocess.Preprocess(v, preprocess.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 1, pre.NumVars())
	assert.Equal(t, []int{1}, cmap.Kept)

	full, err := cmap.Expand([]float64{2})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2}, full, "default bounds contain 0, so the dropped column is fixed at 0")
}

// TestPreprocess_ZeroColumnPositiveLower: when bounds exclude zero, the
// eliminated column is fixed at the nearest finite endpoint.
func TestPreprocess_ZeroColumnPositiveLower(t *testing.T) {
	v := mustValidate(t, schema.LP{
		Sense: schema.Minimize,
		C:     []float64{0, 1},
		Bounds: []schema.Bound{
			{Lower: 2, Upper: 9},
			{Lower: 0, Upper: 1},
		},
	})

	_, cmap, err := preprocess.Preprocess(v, preprocess.DefaultOptions())
	require.NoError(t, err)

	full, err := cmap.Expand([]float64{1})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 1}, full)
}

// TestPreprocess_TrivialRowRemoval: all-zero rows with satisfiable RHS are
// dropped and surviving rows keep their original indices.
func TestPreprocess_TrivialRowRemoval(t *testing.T) {
	v := mustValidate(t, schema.LP{
		Sense: schema.Minimize,
		C:     []float64{1},
		AUb:   [][]float64{{0}, {1}},
		BUb:   []float64{5, 2},
		AEq:   [][]float64{{0}, {1}},
		BEq:   []float64{0, 1},
	})

	pre, _, err := preprocess.Preprocess(v, preprocess.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 1, pre.NumUb())
	assert.Equal(t, []int{1}, pre.UbRows, "surviving <= row keeps original index 1")
	assert.Equal(t, 1, pre.NumEq())
	assert.Equal(t, []int{1}, pre.EqRows, "surviving = row keeps original index 1")
}

// TestPreprocess_DuplicateRowsCollapsed: repeating a row verbatim adds no
// information; the first occurrence survives with its original index.
func TestPreprocess_DuplicateRowsCollapsed(t *testing.T) {
	v := mustValidate(t, schema.LP{
		Sense: schema.Minimize,
		C:     []float64{1, 1},
		AUb:   [][]float64{{1, 2}, {1, 2}, {3, 0}},
		BUb:   []float64{4, 4, 9},
		AEq:   [][]float64{{1, 0}, {1, 0}},
		BEq:   []float64{1, 1},
	})

	pre, _, err := preprocess.Preprocess(v, preprocess.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 2, pre.NumUb())
	assert.Equal(t, []int{0, 2}, pre.UbRows, "duplicate <= row 1 folded into row 0")
	assert.Equal(t, 1, pre.NumEq())
	assert.Equal(t, []int{0}, pre.EqRows, "duplicate = row 1 folded into row 0")
}

// TestPreprocess_SameRowDifferentRHSKept: identical coefficients with a
// materially different RHS are distinct constraints and must both survive.
func TestPreprocess_SameRowDifferentRHSKept(t *testing.T) {
	v := mustValidate(t, schema.LP{
		Sense: schema.Minimize,
		C:     []float64{1},
		AEq:   [][]float64{{1}, {1}},
		BEq:   []float64{1, 2},
	})

	pre, _, err := preprocess.Preprocess(v, preprocess.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 2, pre.NumEq(), "conflicting equalities are the solver's verdict, not ours")
}

// TestPreprocess_Contradiction: fixing x=1 against an equality demanding
// x=2 must fail fast instead of producing a wrong feasible region.
func TestPreprocess_Contradiction(t *testing.T) {
	v := mustValidate(t, schema.LP{
		Sense:  schema.Minimize,
		C:      []float64{1},
		AEq:    [][]float64{{1}},
		BEq:    []float64{2},
		Bounds: []schema.Bound{{Lower: 1, Upper: 1}},
	})

	_, _, err := preprocess.Preprocess(v, preprocess.DefaultOptions())
	assert.ErrorIs(t, err, preprocess.ErrContradiction)
}

// TestPreprocess_InequalityContradiction: an all-zero <= row with negative
// RHS after substitution is also a provable contradiction.
func TestPreprocess_InequalityContradiction(t *testing.T) {
	v := mustValidate(t, schema.LP{
		Sense:  schema.Minimize,
		C:      []float64{1},
		AUb:    [][]float64{{2}},
		BUb:    []float64{1},
		Bounds: []schema.Bound{{Lower: 1, Upper: 1}},
	})

	_, _, err := preprocess.Preprocess(v, preprocess.DefaultOptions())
	assert.ErrorIs(t, err, preprocess.ErrContradiction)
}

// TestPreprocess_Scaling: equilibration rescales rows by their max |coef|
// without altering the constraint geometry.
func TestPreprocess_Scaling(t *testing.T) {
	v := mustValidate(t, schema.LP{
		Sense: schema.Minimize,
		C:     []float64{1, 1},
		AUb:   [][]float64{{2, 4}},
		BUb:   []float64{8},
	})

	pre, _, err := preprocess.Preprocess(v, preprocess.Options{Scale: true})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, pre.AUb[0][0], 1e-12)
	assert.InDelta(t, 1.0, pre.AUb[0][1], 1e-12)
	assert.InDelta(t, 2.0, pre.BUb[0], 1e-12)
}

// TestColumnMap_ExpandLength: a wrong-width vector is rejected.
func TestColumnMap_ExpandLength(t *testing.T) {
	v := mustValidate(t, schema.LP{Sense: schema.Minimize, C: []float64{1, 2}})

	_, cmap, err := preprocess.Preprocess(v, preprocess.DefaultOptions())
	require.NoError(t, err)

	_, err = cmap.Expand([]float64{1, 2, 3})
	assert.ErrorIs(t, err, preprocess.ErrExpandLength)
}

// TestPreprocess_NoOpKeepsShape: an instance with nothing to reduce passes
// through with identity maps.
func TestPreprocess_NoOpKeepsShape(t *testing.T) {
	v := mustValidate(t, schema.LP{
		Sense: schema.Maximize,
		C:     []float64{1, 2},
		AUb:   [][]float64{{1, 1}},
		BUb:   []float64{3},
	})

	pre, cmap, err := preprocess.Preprocess(v, preprocess.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 2, pre.NumVars())
	assert.Equal(t, []int{0, 1}, cmap.Kept)
	assert.Equal(t, []int{0}, pre.UbRows)
	assert.Equal(t, schema.Maximize, pre.Sense)
}

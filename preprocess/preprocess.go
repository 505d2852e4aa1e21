package preprocess

import (
	"fmt"
	"math"

	"github.com/katalvlaran/optima/schema"
)

// rhsTol is the structural tolerance used when classifying the RHS of an
// all-zero row. It absorbs float drift introduced by fixed-variable
// substitution; it is not a feasibility tolerance for the solver.
const rhsTol = 1e-9

// Preprocess reduces a validated LP without changing its optimum and returns
// the reduced instance plus the ColumnMap that re-expands solutions to the
// original variable count. See the package documentation for the exact
// pipeline and its guarantees.
//
// Errors: ErrContradiction when substitution exposes a provably infeasible
// all-zero row. Any other infeasibility is left for the solver to report.
//
// Complexity: O(rows·n) time.
func Preprocess(v schema.ValidatedLP, opts Options) (*PreprocessedLP, ColumnMap, error) {
	n := v.NumVars()

	// Stage 1: materialize bounds and mark bound-fixed columns.
	bounds := make([]schema.Bound, n)
	fixedMask := make([]bool, n)
	fixedVal := make([]float64, n)
	offset := v.Offset
	for j := 0; j < n; j++ {
		bounds[j] = v.BoundAt(j)
		if bounds[j].Fixed() {
			fixedMask[j] = true
			fixedVal[j] = bounds[j].Lower
			offset += v.C[j] * bounds[j].Lower
		}
	}

	// Fold fixed columns into private RHS copies.
	bUb := foldFixed(v.AUb, v.BUb, fixedMask, fixedVal)
	bEq := foldFixed(v.AEq, v.BEq, fixedMask, fixedVal)

	// Stage 2: eliminate columns that touch neither the objective nor any
	// constraint row. Such a variable is irrelevant to the optimum; it is
	// fixed at the in-bounds value nearest zero for result re-expansion.
	for j := 0; j < n; j++ {
		if fixedMask[j] || v.C[j] != 0 {
			continue
		}
		if columnIsZero(v.AUb, j) && columnIsZero(v.AEq, j) {
			fixedMask[j] = true
			fixedVal[j] = nearestInBounds(bounds[j])
		}
	}

	// Surviving column order is the ascending original order.
	kept := make([]int, 0, n)
	for j := 0; j < n; j++ {
		if !fixedMask[j] {
			kept = append(kept, j)
		}
	}

	out := &PreprocessedLP{
		Sense:  v.Sense,
		Offset: offset,
	}
	out.C = gather(v.C, kept)
	out.Bounds = make([]schema.Bound, len(kept))
	for s, orig := range kept {
		out.Bounds[s] = bounds[orig]
	}

	// Stage 3: row filtering. A row with zero coefficients on every kept
	// column is either trivially satisfied (dropped) or a contradiction.
	var err error
	out.AUb, out.BUb, out.UbRows, err = filterRows(v.AUb, bUb, kept, false)
	if err != nil {
		return nil, ColumnMap{}, err
	}
	out.AEq, out.BEq, out.EqRows, err = filterRows(v.AEq, bEq, kept, true)
	if err != nil {
		return nil, ColumnMap{}, err
	}

	// Stage 4: optional positive row equilibration.
	if opts.Scale {
		equilibrate(out.AUb, out.BUb)
		equilibrate(out.AEq, out.BEq)
	}

	cmap := ColumnMap{
		OriginalN: n,
		Kept:      kept,
		Fixed:     fixedVal,
		FixedMask: fixedMask,
	}

	return out, cmap, nil
}

// foldFixed returns a copy of rhs with the contribution of every fixed
// column subtracted row-wise.
func foldFixed(a [][]float64, rhs []float64, fixedMask []bool, fixedVal []float64) []float64 {
	out := append([]float64(nil), rhs...)
	for i, row := range a {
		for j, coef := range row {
			if fixedMask[j] && coef != 0 {
				out[i] -= coef * fixedVal[j]
			}
		}
	}

	return out
}

// columnIsZero reports whether column j is exactly zero in every row of a.
func columnIsZero(a [][]float64, j int) bool {
	for _, row := range a {
		if row[j] != 0 {
			return false
		}
	}

	return true
}

// nearestInBounds picks the value of a non-empty interval closest to zero:
// 0 when the interval contains it, otherwise the finite endpoint nearest it.
func nearestInBounds(b schema.Bound) float64 {
	if b.Lower <= 0 && b.Upper >= 0 {
		return 0
	}
	if b.Lower > 0 {
		return b.Lower
	}

	return b.Upper
}

// filterRows keeps the rows of (a, rhs) that still constrain a surviving
// column, projecting them onto the kept columns. All-zero rows are dropped
// when trivially satisfied and rejected as contradictions otherwise; exact
// duplicates of an already kept row add no information and are dropped too.
// Returned rowIdx maps surviving row positions to original row indices.
func filterRows(a [][]float64, rhs []float64, kept []int, equality bool) (rows [][]float64, newRHS []float64, rowIdx []int, err error) {
	for i, row := range a {
		zero := true
		for _, j := range kept {
			if row[j] != 0 {
				zero = false
				break
			}
		}
		if zero {
			if equality {
				if math.Abs(rhs[i]) > rhsTol {
					return nil, nil, nil, fmt.Errorf("equality row %d reduced to 0 == %v: %w", i, rhs[i], ErrContradiction)
				}
			} else if rhs[i] < -rhsTol {
				return nil, nil, nil, fmt.Errorf("inequality row %d reduced to 0 <= %v: %w", i, rhs[i], ErrContradiction)
			}
			// Trivially satisfied; dropping it cannot change feasibility.
			continue
		}
		proj := gather(row, kept)
		if duplicateOf(rows, newRHS, proj, rhs[i]) {
			continue
		}
		rows = append(rows, proj)
		newRHS = append(newRHS, rhs[i])
		rowIdx = append(rowIdx, i)
	}

	return rows, newRHS, rowIdx, nil
}

// duplicateOf reports whether an identical row (coefficient-equal, RHS within
// rhsTol) was already kept. Same coefficients with a materially different RHS
// are NOT folded: for inequalities both rows stay binding candidates, and for
// equalities the conflict is the solver's infeasibility verdict to make.
func duplicateOf(rows [][]float64, rhs []float64, row []float64, r float64) bool {
	for i, prev := range rows {
		if math.Abs(rhs[i]-r) > rhsTol {
			continue
		}
		if equalRow(prev, row) {
			return true
		}
	}

	return false
}

// equalRow compares two equal-length coefficient rows exactly.
func equalRow(a, b []float64) bool {
	for j := range a {
		if a[j] != b[j] {
			return false
		}
	}

	return true
}

// gather projects src onto the kept index order.
func gather(src []float64, kept []int) []float64 {
	out := make([]float64, len(kept))
	for s, orig := range kept {
		out[s] = src[orig]
	}

	return out
}

// equilibrate divides each row and its RHS by the row's largest absolute
// coefficient. Factors are strictly positive (all-zero rows were filtered),
// so the feasible region is untouched.
func equilibrate(a [][]float64, rhs []float64) {
	for i, row := range a {
		f := 0.0
		for _, coef := range row {
			if abs := math.Abs(coef); abs > f {
				f = abs
			}
		}
		if f == 0 || f == 1 {
			continue
		}
		for j := range row {
			row[j] /= f
		}
		rhs[i] /= f
	}
}

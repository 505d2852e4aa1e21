// Package schema: validation boundary of the core.
//
// Design principles (shared with the rest of the module):
//   - Deterministic, side-effect free functions.
//   - No panics on user input - only sentinel errors from errors.go, wrapped
//     with the violated field and the expected vs. actual shape.
//   - Validation is total: every invariant is checked here so downstream
//     components (preprocess, lpsolve, knapsack) never re-derive shape facts.

package schema

import (
	"fmt"
	"math"
)

// ValidateLP checks every invariant of the canonical LP shape and returns an
// immutable deep copy on success.
//
// Checked invariants:
//   - Sense ∈ {Minimize, Maximize}.
//   - n = len(C) >= 1; all coefficients finite.
//   - Every row of AUb/AEq has exactly n finite entries.
//   - len(BUb) == len(AUb), len(BEq) == len(AEq); all RHS entries finite.
//   - Bounds, if present, has exactly n pairs with Lower <= Upper
//     (±Inf allowed on the open side; NaN rejected).
//   - Names, if present, has exactly n unique non-empty strings.
//   - Offset finite.
//
// Complexity: O(n·(rows+1)) time, O(size of instance) space for the copy.
func ValidateLP(in LP) (ValidatedLP, error) {
	if in.Sense != Minimize && in.Sense != Maximize {
		return ValidatedLP{}, fmt.Errorf("sense=%d: %w", int(in.Sense), ErrBadSense)
	}

	n := len(in.C)
	if n < 1 {
		return ValidatedLP{}, ErrEmptyObjective
	}
	for j, cj := range in.C {
		if !isFinite(cj) {
			return ValidatedLP{}, fmt.Errorf("c[%d]=%v: %w", j, cj, ErrNaNInf)
		}
	}
	if !isFinite(in.Offset) {
		return ValidatedLP{}, fmt.Errorf("offset=%v: %w", in.Offset, ErrNaNInf)
	}

	if err := validateSystem("A_ub", "b_ub", in.AUb, in.BUb, n); err != nil {
		return ValidatedLP{}, err
	}
	if err := validateSystem("A_eq", "b_eq", in.AEq, in.BEq, n); err != nil {
		return ValidatedLP{}, err
	}

	if in.Bounds != nil {
		if len(in.Bounds) != n {
			return ValidatedLP{}, fmt.Errorf("len(bounds)=%d, want %d: %w", len(in.Bounds), n, ErrDimensionMismatch)
		}
		for j, b := range in.Bounds {
			if err := validateBound(j, b); err != nil {
				return ValidatedLP{}, err
			}
		}
	}

	if in.Names != nil {
		if err := validateNames(in.Names, n); err != nil {
			return ValidatedLP{}, err
		}
	}

	return ValidatedLP{LP: copyLP(in)}, nil
}

// ValidateMILP checks every invariant of the canonical MILP shape: the
// embedded LP is validated by ValidateLP, and Integrality, if present, must
// hold exactly n entries. Returns an immutable deep copy on success.
//
// Complexity: same as ValidateLP plus O(n).
func ValidateMILP(in MILP) (ValidatedMILP, error) {
	v, err := ValidateLP(in.LP)
	if err != nil {
		return ValidatedMILP{}, err
	}
	if in.Integrality != nil && len(in.Integrality) != len(in.C) {
		return ValidatedMILP{}, fmt.Errorf("len(integrality)=%d, want %d: %w", len(in.Integrality), len(in.C), ErrDimensionMismatch)
	}

	out := MILP{LP: v.LP}
	if in.Integrality != nil {
		out.Integrality = append([]bool(nil), in.Integrality...)
	}

	return ValidatedMILP{MILP: out}, nil
}

// ValidateKnapsack checks every invariant of the canonical knapsack shape and
// returns an immutable deep copy on success. n == 0 is valid.
//
// Complexity: O(n) time, O(n) space for the copy.
func ValidateKnapsack(in Knapsack) (ValidatedKnapsack, error) {
	n := len(in.Values)
	if len(in.Weights) != n {
		return ValidatedKnapsack{}, fmt.Errorf("len(weights)=%d, want len(values)=%d: %w", len(in.Weights), n, ErrDimensionMismatch)
	}
	for i, v := range in.Values {
		if !isFinite(v) {
			return ValidatedKnapsack{}, fmt.Errorf("values[%d]=%v: %w", i, v, ErrNaNInf)
		}
	}
	for i, w := range in.Weights {
		if w < 0 {
			return ValidatedKnapsack{}, fmt.Errorf("weights[%d]=%d: %w", i, w, ErrNegativeWeight)
		}
	}
	if in.Capacity < 0 {
		return ValidatedKnapsack{}, fmt.Errorf("capacity=%d: %w", in.Capacity, ErrNegativeCapacity)
	}
	if in.Names != nil {
		if err := validateNames(in.Names, n); err != nil {
			return ValidatedKnapsack{}, err
		}
	}

	return ValidatedKnapsack{Knapsack: copyKnapsack(in)}, nil
}

// validateSystem checks one constraint system (rows, rhs) against n columns.
func validateSystem(aName, bName string, a [][]float64, b []float64, n int) error {
	if len(b) != len(a) {
		return fmt.Errorf("len(%s)=%d, want len(%s)=%d: %w", bName, len(b), aName, len(a), ErrDimensionMismatch)
	}
	for i, row := range a {
		if len(row) != n {
			return fmt.Errorf("%s row %d has %d entries, want %d: %w", aName, i, len(row), n, ErrDimensionMismatch)
		}
		for j, v := range row {
			if !isFinite(v) {
				return fmt.Errorf("%s[%d][%d]=%v: %w", aName, i, j, v, ErrNaNInf)
			}
		}
	}
	for i, v := range b {
		if !isFinite(v) {
			return fmt.Errorf("%s[%d]=%v: %w", bName, i, v, ErrNaNInf)
		}
	}

	return nil
}

// validateBound checks a single bound pair. ±Inf is legal on the open side;
// NaN, Lower==+Inf, Upper==-Inf and inverted intervals are not.
func validateBound(j int, b Bound) error {
	if math.IsNaN(b.Lower) || math.IsNaN(b.Upper) {
		return fmt.Errorf("bounds[%d]=(%v,%v): %w", j, b.Lower, b.Upper, ErrNaNInf)
	}
	if math.IsInf(b.Lower, 1) || math.IsInf(b.Upper, -1) {
		return fmt.Errorf("bounds[%d]=(%v,%v): %w", j, b.Lower, b.Upper, ErrBadBound)
	}
	if b.Lower > b.Upper {
		return fmt.Errorf("bounds[%d]: lower %v > upper %v: %w", j, b.Lower, b.Upper, ErrBadBound)
	}

	return nil
}

// validateNames enforces len(names)==n, non-empty strings, and uniqueness.
func validateNames(names []string, n int) error {
	if len(names) != n {
		return fmt.Errorf("len(names)=%d, want %d: %w", len(names), n, ErrDimensionMismatch)
	}
	seen := make(map[string]struct{}, n)
	for i, name := range names {
		if name == "" {
			return fmt.Errorf("names[%d] is empty: %w", i, ErrBadName)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("names[%d]=%q duplicated: %w", i, name, ErrBadName)
		}
		seen[name] = struct{}{}
	}

	return nil
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// copyLP deep-copies every slice of an LP so the validated value is isolated
// from later caller mutation.
func copyLP(in LP) LP {
	out := LP{
		Sense:  in.Sense,
		C:      append([]float64(nil), in.C...),
		BUb:    append([]float64(nil), in.BUb...),
		BEq:    append([]float64(nil), in.BEq...),
		Offset: in.Offset,
	}
	out.AUb = copyRows(in.AUb)
	out.AEq = copyRows(in.AEq)
	if in.Bounds != nil {
		out.Bounds = append([]Bound(nil), in.Bounds...)
	}
	if in.Names != nil {
		out.Names = append([]string(nil), in.Names...)
	}

	return out
}

// copyKnapsack deep-copies every slice of a Knapsack.
func copyKnapsack(in Knapsack) Knapsack {
	out := Knapsack{
		Values:   append([]float64(nil), in.Values...),
		Weights:  append([]int(nil), in.Weights...),
		Capacity: in.Capacity,
	}
	if in.Names != nil {
		out.Names = append([]string(nil), in.Names...)
	}

	return out
}

// copyRows deep-copies a row-major matrix; nil stays nil.
func copyRows(rows [][]float64) [][]float64 {
	if rows == nil {
		return nil
	}
	out := make([][]float64, len(rows))
	for i, r := range rows {
		out[i] = append([]float64(nil), r...)
	}

	return out
}

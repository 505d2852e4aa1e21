package preprocess

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/optima/schema"
)

var (
	// ErrContradiction is returned when normalization proves the instance
	// infeasible: an all-zero constraint row whose RHS cannot be satisfied
	// (e.g., two fixed variables forced into conflicting equalities).
	ErrContradiction = errors.New("preprocess: contradictory constraint after fixed-variable substitution")

	// ErrExpandLength is returned by ColumnMap.Expand when the solution
	// vector length does not match the surviving variable count.
	ErrExpandLength = errors.New("preprocess: solution length does not match surviving variable count")
)

// Options configures preprocessing. The zero value is the default.
type Options struct {
	// Scale enables positive row equilibration of the surviving constraint
	// rows. Off by default; never changes feasibility or the optimum.
	Scale bool
}

// DefaultOptions returns the canonical defaults (scaling disabled).
func DefaultOptions() Options { return Options{} }

// ColumnMap is the index correspondence from a preprocessed instance's
// variables back to the original instance's variables. It is produced by
// Preprocess and must be treated as read-only.
type ColumnMap struct {
	// OriginalN is the variable count of the original instance.
	OriginalN int

	// Kept maps each surviving solution index to its original index,
	// in ascending original order: original = Kept[surviving].
	Kept []int

	// Fixed holds, for every eliminated original index j (FixedMask[j]
	// true), the value the variable was fixed at.
	Fixed []float64

	// FixedMask marks original indices eliminated during preprocessing.
	FixedMask []bool
}

// Expand re-inflates a preprocessed primal vector to the original variable
// count: surviving entries are placed at their original indices, eliminated
// entries at their fixed values.
//
// Complexity: O(OriginalN).
func (m ColumnMap) Expand(x []float64) ([]float64, error) {
	if len(x) != len(m.Kept) {
		return nil, fmt.Errorf("len(x)=%d, want %d: %w", len(x), len(m.Kept), ErrExpandLength)
	}
	out := make([]float64, m.OriginalN)
	for j := 0; j < m.OriginalN; j++ {
		if m.FixedMask[j] {
			out[j] = m.Fixed[j]
		}
	}
	for s, orig := range m.Kept {
		out[orig] = x[s]
	}

	return out, nil
}

// PreprocessedLP is the reduced instance handed to the solve adapter.
// Bounds are fully materialized (no nil field, no fixed pairs left) and all
// slices are owned by this value; treat as read-only.
type PreprocessedLP struct {
	Sense schema.Sense

	// Objective over surviving variables.
	C []float64

	// Surviving inequality system AUb·x <= BUb.
	AUb [][]float64
	BUb []float64

	// Surviving equality system AEq·x == BEq.
	AEq [][]float64
	BEq []float64

	// Bounds per surviving variable; Lower < Upper holds for every pair.
	Bounds []schema.Bound

	// Offset is the instance offset plus contributions folded in from fixed
	// variables. Added back to the backend objective during normalization.
	Offset float64

	// UbRows and EqRows map surviving row indices to original row indices
	// (UbRows[i] is the original index of preprocessed "<=" row i).
	UbRows []int
	EqRows []int
}

// NumVars returns the surviving variable count.
func (p *PreprocessedLP) NumVars() int { return len(p.C) }

// NumUb returns the surviving inequality row count.
func (p *PreprocessedLP) NumUb() int { return len(p.AUb) }

// NumEq returns the surviving equality row count.
func (p *PreprocessedLP) NumEq() int { return len(p.AEq) }

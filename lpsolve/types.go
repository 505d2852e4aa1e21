package lpsolve

import (
	"errors"

	"github.com/katalvlaran/optima/preprocess"
)

var (
	// ErrUnsupportedMethod is returned for a Method outside the closed
	// {MethodDefault, MethodInteriorPoint, MethodDualSimplex} set.
	ErrUnsupportedMethod = errors.New("lpsolve: unsupported solve method")

	// ErrSolver wraps an internal failure reported by the external solving
	// capability; the raw backend message is preserved in the wrap.
	ErrSolver = errors.New("lpsolve: backend solver failure")

	// ErrInternal is a defensive sentinel for conditions the design asserts
	// can never occur, e.g. an optimal primal vector whose length does not
	// match the preprocessed variable count. Fatal, never retried.
	ErrInternal = errors.New("lpsolve: internal invariant violated")
)

// Method selects the solving strategy requested from the backend. The set is
// closed; adapters validate it by exhaustive matching.
type Method int

const (
	// MethodDefault lets the backend pick its preferred strategy.
	MethodDefault Method = iota

	// MethodInteriorPoint requests an interior-point style strategy.
	MethodInteriorPoint

	// MethodDualSimplex requests a dual-simplex style strategy.
	MethodDualSimplex
)

// String implements fmt.Stringer for diagnostics.
func (m Method) String() string {
	switch m {
	case MethodDefault:
		return "default"
	case MethodInteriorPoint:
		return "interior-point"
	case MethodDualSimplex:
		return "dual-simplex"
	default:
		return "unknown"
	}
}

// ParseMethod converts an adapter-facing selector string into a Method.
// Unrecognized selectors fail with ErrUnsupportedMethod.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "default", "":
		return MethodDefault, nil
	case "interior-point":
		return MethodInteriorPoint, nil
	case "dual-simplex":
		return MethodDualSimplex, nil
	default:
		return 0, ErrUnsupportedMethod
	}
}

// RawStatus is the backend-native termination classification carried by
// RawOutput before normalization.
type RawStatus int

const (
	// RawOptimal: the backend proved optimality; X holds the primal vector.
	RawOptimal RawStatus = iota

	// RawInfeasible: the backend proved no feasible point exists.
	RawInfeasible

	// RawUnbounded: the backend proved the objective is unbounded.
	RawUnbounded

	// RawFailure: a backend-internal failure; Message holds the raw text.
	RawFailure
)

// RawOutput is the complete native bundle returned by a Solver call. The
// backend either returns a complete bundle or an error; there are no
// partial results.
//
// X is sized to the PREPROCESSED variable count and ordered accordingly;
// Objective is expressed in the instance's own sense and excludes the
// preprocessing offset (Normalize adds it back). ConstraintDuals (ordered
// as preprocessed "<=" rows followed by preprocessed "=" rows) and
// ReducedCosts are optional: nil means the capability does not expose them,
// which downstream layers must treat as "not computable", never as zero.
type RawOutput struct {
	Status          RawStatus
	Objective       float64
	X               []float64
	ConstraintDuals []float64
	ReducedCosts    []float64
	Message         string
}

// Solver is the external numerical solving capability. Implementations are
// synchronous and must not retain p after returning. An error return is
// reserved for contract misuse (e.g. unsupported method); solver-internal
// failures travel inside RawOutput as RawFailure.
type Solver interface {
	Solve(p *preprocess.PreprocessedLP, method Method) (RawOutput, error)
}

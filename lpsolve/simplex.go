package lpsolve

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/katalvlaran/optima/preprocess"
)

// SimplexSolver is the bundled dense backend, built on gonum's
// optimize/convex/lp simplex implementation.
//
// It implements a single dense engine (primal simplex with a Phase-I start),
// so every member of the closed Method set routes to that engine; the
// selector still gates the call, and anything outside the set fails with
// ErrUnsupportedMethod. Backend-internal failures (singular basis,
// ill-conditioning, …) surface as RawFailure with gonum's raw message
// preserved.
type SimplexSolver struct{}

// NewSimplexSolver returns the gonum-backed dense LP solver.
func NewSimplexSolver() *SimplexSolver { return &SimplexSolver{} }

var _ Solver = (*SimplexSolver)(nil)

// Solve lowers p to standard form, runs the simplex and recovers the primal
// vector in preprocessed variable order. The returned Objective is in the
// instance's own sense, excluding the preprocessing offset.
//
// gonum's simplex does not expose dual vectors, so ConstraintDuals and
// ReducedCosts are always nil: sensitivity is "not computable" with this
// backend.
//
// Complexity: dominated by the simplex itself; lowering is O(rows·cols).
func (s *SimplexSolver) Solve(p *preprocess.PreprocessedLP, method Method) (RawOutput, error) {
	switch method {
	case MethodDefault, MethodInteriorPoint, MethodDualSimplex:
		// Single dense engine; all recognized selectors route here.
	default:
		return RawOutput{}, fmt.Errorf("method=%d: %w", int(method), ErrUnsupportedMethod)
	}

	// Everything was eliminated by preprocessing: the optimum is the bare
	// offset and the primal vector is empty.
	if p.NumVars() == 0 {
		return RawOutput{Status: RawOptimal, X: []float64{}}, nil
	}

	sf := lowerToStandard(p)

	if sf.rows == 0 {
		// No constraint rows at all: the problem separates per column.
		// A negative standard-form cost means the objective falls without
		// limit; otherwise the optimum is y = 0.
		for _, ck := range sf.c {
			if ck < 0 {
				return RawOutput{Status: RawUnbounded}, nil
			}
		}

		return sf.optimal(0, make([]float64, sf.cols)), nil
	}

	return solveStandard(sf)
}

// solveStandard runs the dense simplex on a standard form with at least one
// row. Columns without row support are compacted away first (gonum rejects
// all-zero columns); when the direct call fails for a reason other than
// infeasibility or unboundedness, a Phase-I probe separates "no feasible
// point exists" from a genuine backend failure.
func solveStandard(sf *standardForm) (RawOutput, error) {
	c, a, kept, unbounded := sf.compactColumns()
	if unbounded {
		return RawOutput{Status: RawUnbounded}, nil
	}

	var solveErr error
	if sf.rows <= len(c) {
		zStd, y, err := lp.Simplex(c, a, sf.b, 0, nil)
		switch {
		case err == nil:
			return sf.optimal(zStd, inflateColumns(y, kept, sf.cols)), nil
		case errors.Is(err, lp.ErrInfeasible):
			return RawOutput{Status: RawInfeasible, Message: err.Error()}, nil
		case errors.Is(err, lp.ErrUnbounded):
			return RawOutput{Status: RawUnbounded, Message: err.Error()}, nil
		}
		solveErr = err
	}

	// The simplex could not run, or failed without a verdict (singular or
	// overdetermined systems). A positive Phase-I optimum is a proof of
	// infeasibility; anything else stays a failure.
	if infeasible, ok := feasibilityProbe(a, sf.b); ok && infeasible {
		return RawOutput{Status: RawInfeasible, Message: "no feasible point exists"}, nil
	}
	msg := "equality system is rank-deficient or overdetermined"
	if solveErr != nil {
		msg = solveErr.Error()
	}

	return RawOutput{Status: RawFailure, Message: msg}, nil
}

// feasibilityProbe solves the auxiliary problem
//
//	minimize Σa  s.t.  A·y + D·a = b,  y, a >= 0,  D = diag(sign(b))
//
// whose artificial block keeps the basis well-posed even when A itself is
// rank-deficient or has more rows than columns. A positive optimum proves
// the original system infeasible; ok reports whether the probe itself ran.
func feasibilityProbe(a *mat.Dense, b []float64) (infeasible, ok bool) {
	m, n := a.Dims()
	c := make([]float64, n+m)
	aug := mat.NewDense(m, n+m, nil)
	aug.Slice(0, m, 0, n).(*mat.Dense).Copy(a)
	for i := 0; i < m; i++ {
		c[n+i] = 1
		d := 1.0
		if b[i] < 0 {
			d = -1
		}
		aug.Set(i, n+i, d)
	}

	opt, _, err := lp.Simplex(c, aug, b, 0, nil)
	if err != nil {
		return false, false
	}

	return opt > 1e-9, true
}

// optimal packages a standard-form optimum, undoing the bound-anchoring
// shift and the maximize→minimize negation.
func (sf *standardForm) optimal(zStd float64, yStd []float64) RawOutput {
	obj := zStd + sf.shift
	if sf.negated {
		obj = -obj
	}

	return RawOutput{
		Status:    RawOptimal,
		Objective: obj,
		X:         sf.recoverPrimal(yStd),
	}
}

package solve

import (
	"fmt"

	"github.com/katalvlaran/optima/knapsack"
	"github.com/katalvlaran/optima/lpsolve"
	"github.com/katalvlaran/optima/milp"
	"github.com/katalvlaran/optima/preprocess"
	"github.com/katalvlaran/optima/schema"
	"github.com/katalvlaran/optima/sensitivity"
)

// RunLP executes the full LP use case on a raw canonical instance:
// validate → preprocess → solve → analyze → format.
//
// The returned Result always reflects the ORIGINAL instance: the primal
// vector is re-expanded to the original variable count and marginals are
// keyed by original indices. Infeasible and unbounded come back as statuses
// with nil Err; stage failures come back as StatusError with Stage and a
// stage-tagged Err.
func RunLP(raw schema.LP, method lpsolve.Method, opts ...Option) Result {
	cfg := newConfig(opts)

	v, err := schema.ValidateLP(raw)
	if err != nil {
		return failed(StageValidate, err, "")
	}

	pre, cmap, err := preprocess.Preprocess(v, cfg.preOpts)
	if err != nil {
		return failed(StagePreprocess, err, "")
	}

	out, err := cfg.solver.Solve(pre, method)
	if err != nil {
		return failed(StageSolve, err, "")
	}

	sol, err := lpsolve.Normalize(out, pre, cmap)
	if err != nil {
		// Normalization failures keep the backend diagnostic visible.
		return failed(StageSolve, err, sol.Message)
	}

	rep := sensitivity.Analyze(v, out, pre, cmap)

	return Result{
		Status:      sol.Status,
		Objective:   sol.Objective,
		X:           sol.X,
		Message:     sol.Message,
		Sensitivity: rep,
	}
}

// RunMILP executes the mixed-integer use case on a raw canonical instance:
// validate → branch-and-bound (each node runs preprocess + solve + normalize
// internally) → format.
//
// The Result follows the same conventions as RunLP, except that no
// sensitivity report is produced: LP duals do not carry their marginal
// meaning at an integer optimum.
func RunMILP(raw schema.MILP, method lpsolve.Method, opts ...Option) Result {
	cfg := newConfig(opts)

	v, err := schema.ValidateMILP(raw)
	if err != nil {
		return failed(StageValidate, err, "")
	}

	sol, err := milp.Solve(v, cfg.solver, method, cfg.milpOpts)
	if err != nil {
		return failed(StageSolve, err, sol.Message)
	}

	return Result{
		Status:    sol.Status,
		Objective: sol.Objective,
		X:         sol.X,
		Message:   sol.Message,
	}
}

// RunKnapsack executes the knapsack use case on a raw canonical instance:
// validate → solve → format. The 0/1 selection is formatted into the
// uniform float64 assignment vector.
func RunKnapsack(raw schema.Knapsack, opts ...Option) Result {
	cfg := newConfig(opts)

	v, err := schema.ValidateKnapsack(raw)
	if err != nil {
		return failed(StageValidate, err, "")
	}

	obj, sel, err := knapsack.Solve01(v.Values, v.Weights, v.Capacity, &cfg.knapOpts)
	if err != nil {
		return failed(StageSolve, err, "")
	}

	x := make([]float64, len(sel))
	for i, take := range sel {
		x[i] = float64(take)
	}

	return Result{
		Status:    schema.StatusOptimal,
		Objective: obj,
		X:         x,
	}
}

// failed builds the uniform failure Result for one stage. The cause stays
// reachable through errors.Is/errors.As on Result.Err.
func failed(stage Stage, err error, message string) Result {
	return Result{
		Status:  schema.StatusError,
		Message: message,
		Stage:   stage,
		Err:     fmt.Errorf("solve: %s: %w", stage, err),
	}
}

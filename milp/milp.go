package milp

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/optima/lpsolve"
	"github.com/katalvlaran/optima/preprocess"
	"github.com/katalvlaran/optima/schema"
)

// node is one open subproblem: the continuous relaxation of the instance
// under tightened per-variable bounds. Bounds slices are never shared
// between nodes.
type node struct {
	bounds []schema.Bound
}

// Solve runs branch-and-bound on a validated MILP. A nil solver selects the
// bundled gonum simplex backend; method is forwarded to every relaxation
// solve.
//
// The returned Solution reflects the original instance: X is in original
// variable order with integer entries rounded exactly, and Objective
// includes the instance offset. StatusInfeasible and StatusUnbounded are
// answers, not errors; an error return means a relaxation solve failed
// (stage errors from the LP layer) or the tree exceeded Options.MaxNodes
// (ErrNodeLimit).
//
// Complexity: see the package documentation.
func Solve(v schema.ValidatedMILP, solver lpsolve.Solver, method lpsolve.Method, opts Options) (schema.Solution, error) {
	if solver == nil {
		solver = lpsolve.NewSimplexSolver()
	}
	cfg := opts.withDefaults()

	n := v.NumVars()
	base := make([]schema.Bound, n)
	for j := 0; j < n; j++ {
		base[j] = v.BoundAt(j)
	}

	stack := []node{{bounds: base}}
	var incumbent *schema.Solution
	explored := 0

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if explored >= cfg.MaxNodes {
			return schema.Solution{Status: schema.StatusError},
				fmt.Errorf("explored %d subproblems: %w", explored, ErrNodeLimit)
		}
		explored++

		sol, err := solveRelaxation(v, cur.bounds, solver, method)
		if err != nil {
			return sol, err
		}

		switch sol.Status {
		case schema.StatusInfeasible:
			continue
		case schema.StatusUnbounded:
			// Only the root can hit this: children restrict the region, so
			// an unbounded child implies an unbounded parent. The relaxation
			// verdict is the instance's verdict.
			return schema.Solution{Status: schema.StatusUnbounded, Message: sol.Message}, nil
		}

		// Bound pruning: a relaxation that cannot strictly beat the
		// incumbent cannot contain a better integer point.
		if incumbent != nil && !improves(v.Sense, sol.Objective, incumbent.Objective) {
			continue
		}

		j := branchVariable(v, sol.X, cfg.IntTol)
		if j < 0 {
			better := schema.Solution{
				Status:    schema.StatusOptimal,
				Objective: sol.Objective,
				X:         roundIntegral(v, sol.X),
			}
			incumbent = &better
			continue
		}

		lo := math.Floor(sol.X[j])
		// Push the "round up" child first so the "round down" child is
		// explored first off the stack.
		if up := childBounds(cur.bounds, j, lo+1, cur.bounds[j].Upper); up != nil {
			stack = append(stack, node{bounds: up})
		}
		if down := childBounds(cur.bounds, j, cur.bounds[j].Lower, lo); down != nil {
			stack = append(stack, node{bounds: down})
		}
	}

	if incumbent == nil {
		return schema.Solution{Status: schema.StatusInfeasible}, nil
	}

	return *incumbent, nil
}

// solveRelaxation runs one continuous relaxation under the given bounds
// through the standard preprocess → solve → normalize pipeline. A
// preprocessing contradiction means the branch region is provably empty and
// maps to StatusInfeasible; every other error aborts the search.
func solveRelaxation(v schema.ValidatedMILP, bounds []schema.Bound, solver lpsolve.Solver, method lpsolve.Method) (schema.Solution, error) {
	relax := v.Relaxation()
	relax.Bounds = bounds

	pre, cmap, err := preprocess.Preprocess(relax, preprocess.DefaultOptions())
	if err != nil {
		if errors.Is(err, preprocess.ErrContradiction) {
			return schema.Solution{Status: schema.StatusInfeasible}, nil
		}

		return schema.Solution{Status: schema.StatusError}, err
	}

	out, err := solver.Solve(pre, method)
	if err != nil {
		return schema.Solution{Status: schema.StatusError}, err
	}

	return lpsolve.Normalize(out, pre, cmap)
}

// improves reports whether a candidate objective strictly beats the
// incumbent in the instance's own sense.
func improves(sense schema.Sense, candidate, incumbent float64) bool {
	if sense == schema.Maximize {
		return candidate > incumbent+objTol
	}

	return candidate < incumbent-objTol
}

// branchVariable picks the integer-constrained variable whose relaxation
// value is farthest from an integer (fractional part closest to 1/2), ties
// resolved to the lowest index. Returns -1 when every integer variable is
// within tol of integral.
func branchVariable(v schema.ValidatedMILP, x []float64, tol float64) int {
	best := -1
	bestDist := 0.0
	for j, val := range x {
		if !v.IntegerAt(j) {
			continue
		}
		f := val - math.Floor(val)
		d := math.Min(f, 1-f)
		if d <= tol {
			continue
		}
		if d > bestDist {
			best, bestDist = j, d
		}
	}

	return best
}

// roundIntegral snaps integer-constrained entries to the nearest integer;
// continuous entries pass through untouched.
func roundIntegral(v schema.ValidatedMILP, x []float64) []float64 {
	out := append([]float64(nil), x...)
	for j := range out {
		if v.IntegerAt(j) {
			out[j] = math.Round(out[j])
		}
	}

	return out
}

// childBounds tightens variable j of parent bounds to [lower, upper],
// returning nil when the interval is empty.
func childBounds(parent []schema.Bound, j int, lower, upper float64) []schema.Bound {
	if lower > upper {
		return nil
	}
	out := append([]schema.Bound(nil), parent...)
	out[j] = schema.Bound{Lower: lower, Upper: upper}

	return out
}

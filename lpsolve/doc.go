// Package lpsolve defines the narrow contract through which the core
// delegates continuous LP solving to an external numerical capability, plus
// the normalization layer that maps the capability's native output back into
// the uniform schema.Solution shape.
//
// The seam has three parts:
//
//   - Method — a closed, validated set of solve-method selectors
//     (MethodDefault, MethodInteriorPoint, MethodDualSimplex). Anything
//     outside the set fails with ErrUnsupportedMethod via exhaustive
//     matching, never by string comparison.
//   - Solver — the swappable backend interface. It receives a preprocessed
//     instance and returns a RawOutput bundle (raw status code, primal
//     vector, optional dual vectors, raw message). The core never assumes a
//     specific library's internal status codes beyond the three-way
//     optimal/infeasible/unbounded plus a catch-all failure.
//   - Normalize — maps a RawOutput into schema.Solution: an optimal primal
//     vector is length-checked against the preprocessed variable count and
//     expanded through the preprocessor's ColumnMap; infeasible/unbounded
//     map directly; anything else surfaces as ErrSolver with the raw
//     message preserved as the diagnostic.
//
// The package ships one backend, SimplexSolver, built on
// gonum.org/v1/gonum/optimize/convex/lp. It lowers the preprocessed LP
// (sense, general bounds, inequality and equality systems) to gonum's
// standard form — minimize ĉ·y subject to Â·y = b̂, y >= 0 — via bound
// shifting, mirroring, free-variable splitting and slack variables, then
// recovers the original variable values from the standard-form solution.
// Swapping in a different engine requires implementing Solver only; schema,
// preprocess and the orchestrator stay untouched.
package lpsolve

// Package schema defines the canonical, library-agnostic problem
// representations accepted by the optimization core, together with the
// validators that guard its single entry boundary.
//
// Three problem families are supported:
//
//   - LP       — a linear program: sense, objective vector c, optional
//     inequality system (A_ub, b_ub), optional equality system (A_eq, b_eq),
//     optional per-variable bounds (default [0, +Inf)), optional names, and a
//     scalar objective offset.
//   - MILP     — an LP plus an optional per-variable integrality marker
//     vector; nil means all-continuous.
//   - Knapsack — a 0/1 knapsack instance: values, non-negative integer
//     weights, non-negative integer capacity, optional names.
//
// Lifecycle contract (validate-once-then-immutable):
//
//	raw instance → ValidateLP / ValidateMILP / ValidateKnapsack → Validated* value
//
// Validation is total: every shape invariant is checked before any downstream
// component runs, so solvers never see malformed data. Validators are pure
// functions of their input; the Validated* types hold deep copies and must be
// treated as read-only by every consumer.
//
// All failures are sentinel errors from errors.go, wrapped at the point of
// detection with the violated field and the expected vs. actual shape. Match
// them with errors.Is.
package schema

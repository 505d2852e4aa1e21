// Package solve is the use-case orchestrator of the optimization core: the
// canonical entry points that take a RAW canonical instance and return the
// uniform Result.
//
// Fixed pipeline order per problem family:
//
//	LP:       validate → preprocess → solve → analyze → format
//	MILP:     validate → branch-and-bound (preprocess + solve per node) → format
//	Knapsack: validate → solve → format
//
// The orchestrator owns no algorithmic logic; it sequences the packages
// below it and is the single place failures are caught. Every stage failure
// is tagged with the originating stage, wrapped into Result.Err with
// StatusError, and stops the pipeline — a failure from one stage is never
// swallowed, never retried, and never raised past the core boundary, so a
// presentation layer always receives a single well-shaped result-or-error
// value. An infeasible or unbounded status is a definitive ANSWER, not a
// failure: it comes back with a nil Err.
//
// The LP backend defaults to lpsolve.NewSimplexSolver() and is swappable
// per call with WithSolver (the MILP search uses the same backend for its
// relaxations); preprocessing, knapsack and branch-and-bound options are
// forwarded with WithPreprocessOptions / WithKnapsackOptions /
// WithMILPOptions.
//
// Instances are validated once and never mutated, and every call returns a
// freshly constructed Result, so concurrent callers may issue independent
// solve calls in parallel with no locking.
package solve

// Package optima is a source-agnostic optimization core: it accepts problem
// instances in a small set of canonical schemas (linear programs, mixed-
// integer programs, 0/1 knapsack), validates and normalizes them, dispatches
// to a solving strategy,
// and returns a uniform result (status, objective, primal assignment,
// optional sensitivity data).
//
// 🚀 What is optima?
//
//	A small, deterministic, pure-Go solving core that brings together:
//		• Canonical schemas: typed LP, MILP & 0/1 knapsack instances, validated once
//		• Preprocessing: optimum-preserving LP reduction with full index maps
//		• Knapsack: exact 0/1 dynamic programming with stable reconstruction
//		• LP adapter: a narrow solver contract + a gonum simplex backend
//		• MILP: deterministic branch-and-bound over the LP machinery
//		• Sensitivity: shadow prices / reduced costs keyed by original indices
//		• Orchestration: validate → preprocess → solve → analyze → format
//
// ✨ Why choose optima?
//
//   - Source-agnostic – the core never knows whether data came from a
//     spreadsheet, a matrix file, or manual entry
//   - Deterministic – repeated solves of the same instance return identical
//     assignments; tie-breaks are documented, not accidental
//   - Swappable solving – the LP backend hides behind one interface; replace
//     it without touching schema, preprocessing or orchestration
//   - Fail-fast – every malformed input is rejected at a single validation
//     boundary; solvers never see bad data
//
// Everything is organized under flat subpackages:
//
//	schema/      — canonical LP, MILP & knapsack types, validators, uniform Solution
//	preprocess/  — LP normalization + column/row maps for result re-expansion
//	knapsack/    — exact 0/1 knapsack DP engine
//	lpsolve/     — solve-method set, solver contract, gonum simplex backend
//	milp/        — branch-and-bound search over the LP pipeline
//	sensitivity/ — marginal/shadow-price report construction
//	solve/       — use-case orchestrator returning the uniform Result
//
// Quick taste:
//
//	res := solve.RunKnapsack(schema.Knapsack{
//		Values:   []float64{60, 100, 120},
//		Weights:  []int{10, 20, 30},
//		Capacity: 50,
//	})
//	// res.Status == schema.StatusOptimal, res.Objective == 220
//
// Dive into each package's doc.go for contracts, complexity and examples.
//
//	go get github.com/katalvlaran/optima
package optima

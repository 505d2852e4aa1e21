// Package preprocess implements optimum-preserving size reduction of a
// validated LP instance prior to solving.
//
// Pipeline (applied in this order):
//
//  1. Materialize default bounds [0, +Inf) for instances without explicit
//     bounds.
//  2. Substitute out fixed columns (Lower == Upper): their contribution is
//     folded into the RHS vectors and the objective offset, never silently
//     dropped.
//  3. Drop columns with zero objective coefficient and zero coefficient in
//     every constraint row, fixing them at the in-bounds value nearest zero.
//  4. Remove rows that are all-zero on the surviving columns when trivially
//     satisfied: "<=" rows with RHS >= 0 and "=" rows with RHS == 0 (within
//     rhsTol). An all-zero row whose RHS is unsatisfiable after substitution
//     is a provable contradiction and fails fast with ErrContradiction.
//  5. Drop exact duplicate rows (identical coefficients, RHS within rhsTol)
//     within each constraint system; the first occurrence survives and keeps
//     its original row index.
//  6. Optional positive row equilibration (Options.Scale, off by default):
//     each row and its RHS are divided by the row's largest |coefficient|.
//     Scaling by a positive factor leaves the feasible region and the
//     optimum unchanged; it is a numerical conditioning aid only.
//
// Every transformation preserves the optimal objective value; only the
// representation shrinks. The returned ColumnMap re-expands a preprocessed
// primal vector to the original variable count with eliminated variables
// re-inserted at their fixed values, and PreprocessedLP records the original
// indices of surviving rows so constraint marginals stay addressable by the
// caller's numbering.
//
// Complexity: O(rows·n) time, O(size of reduced instance) space.
package preprocess

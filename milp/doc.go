// Package milp solves mixed-integer linear programs by branch-and-bound over
// the continuous LP machinery of this module.
//
// The search relaxes the integrality markers, solves the relaxation through
// the standard preprocess → lpsolve pipeline, and branches on a fractional
// integer variable by splitting its bound interval at the fractional value:
// one child caps the variable at floor(x_j), the other raises its lower bound
// to floor(x_j)+1. Children whose interval becomes empty are discarded
// without a solver call, and a node whose relaxation cannot beat the
// incumbent is pruned.
//
// Determinism:
//   - depth-first traversal with the "round down" child explored first,
//   - branching on the most fractional variable (value farthest from an
//     integer), ties resolved to the lowest index,
//   - a new incumbent must STRICTLY improve on the old one, so among
//     equally good integer solutions the first one found is kept.
//
// Verdicts follow the LP layer: a provably empty branch (including a
// preprocessing contradiction) is pruned as infeasible, an exhausted tree
// without an incumbent is StatusInfeasible, and an unbounded root relaxation
// is reported as StatusUnbounded. Integer variables with infinite bounds can
// make the tree infinite; Options.MaxNodes caps the search and trips
// ErrNodeLimit instead of spinning.
//
// Complexity: worst case exponential in the number of integer variables;
// each node costs one preprocess + one LP solve.
package milp

// Package knapsack implements an exact 0/1 knapsack solver with
// deterministic solution reconstruction.
//
// The engine is the one pure-compute component of the core: no I/O, no
// external delegation, no shared state. Given item values (any finite
// reals), non-negative integer weights and a non-negative integer capacity,
// Solve01 returns the optimal total value and a 0/1 selection vector
// aligned to item order.
//
// Memory Modes:
//   - FullTable   — keep the entire (n+1)×(capacity+1) value table and
//     backtrack over it. Memory: O(n·capacity) float64s.
//   - RollingKeep — keep two value rows plus a packed bitset of "take"
//     decisions. Memory: O(capacity) float64s + n·(capacity+1) bits,
//     a 64× reduction of the dominant cost.
//
// Both modes evaluate the identical tie-break predicate ("take item i-1 iff
// it strictly improves the cell"), so they return bit-identical selections
// — repeated solves of the same instance always reconstruct the same
// solution, regardless of mode.
//
// Complexity: O(n·capacity) time in both modes.
package knapsack

package knapsack

import "errors"

var (
	// ErrBadInput indicates a shape violation: values/weights length
	// mismatch, a negative weight, or a negative capacity. Callers going
	// through schema.ValidateKnapsack never trigger it.
	ErrBadInput = errors.New("knapsack: malformed instance")

	// ErrInternal is a defensive sentinel for conditions the design asserts
	// can never occur (reconstruction walking below weight zero). Fatal,
	// never retried.
	ErrInternal = errors.New("knapsack: internal invariant violated")
)

// MemoryMode controls how Solve01 stores its DP state.
//
//   - FullTable   — full (n+1)×(capacity+1) value table; backtracking reads
//     the table directly. Memory: O(n·capacity).
//   - RollingKeep — two value rows plus a packed keep-bit table supporting
//     reconstruction. Memory: O(capacity) floats + n·(capacity+1) bits.
type MemoryMode int

const (
	// FullTable mode: store all rows, reconstruct from the value table.
	FullTable MemoryMode = iota

	// RollingKeep mode: store two rows + keep bits, reconstruct from bits.
	RollingKeep
)

// Options configures Solve01.
//
// Fields:
//   - MemoryMode — choose FullTable or RollingKeep storage. The space/time
//     tradeoff is explicit here rather than an accident of implementation;
//     results are identical in both modes.
type Options struct {
	MemoryMode MemoryMode
}

// DefaultOptions returns the canonical defaults (FullTable).
func DefaultOptions() Options { return Options{MemoryMode: FullTable} }

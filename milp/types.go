package milp

import "errors"

// ErrNodeLimit is returned when the branch-and-bound tree exceeds
// Options.MaxNodes before optimality is proven. The search is aborted
// rather than returning a possibly suboptimal incumbent.
var ErrNodeLimit = errors.New("milp: node limit reached before proving optimality")

const (
	// defaultIntTol is the distance from the nearest integer within which a
	// relaxation value counts as integral.
	defaultIntTol = 1e-6

	// defaultMaxNodes caps the number of explored subproblems.
	defaultMaxNodes = 100000

	// objTol is the strict-improvement margin for incumbent replacement and
	// bound pruning.
	objTol = 1e-9
)

// Options configures the branch-and-bound search. The zero value selects the
// defaults.
//
// Fields:
//   - IntTol — integrality tolerance: a relaxation value within IntTol of an
//     integer is accepted as integral. Non-positive selects defaultIntTol.
//   - MaxNodes — maximum number of subproblems to explore before giving up
//     with ErrNodeLimit. Non-positive selects defaultMaxNodes.
type Options struct {
	IntTol   float64
	MaxNodes int
}

// DefaultOptions returns the canonical defaults.
func DefaultOptions() Options {
	return Options{IntTol: defaultIntTol, MaxNodes: defaultMaxNodes}
}

// withDefaults fills non-positive fields with the canonical defaults.
func (o Options) withDefaults() Options {
	if o.IntTol <= 0 {
		o.IntTol = defaultIntTol
	}
	if o.MaxNodes <= 0 {
		o.MaxNodes = defaultMaxNodes
	}

	return o
}

package schema

import "math"

// Sense selects the optimization direction of an LP instance.
// The set is closed; validators reject any other value.
type Sense int

const (
	// Minimize asks for the smallest objective value.
	Minimize Sense = iota

	// Maximize asks for the largest objective value.
	Maximize
)

// String implements fmt.Stringer for diagnostics.
func (s Sense) String() string {
	switch s {
	case Minimize:
		return "minimize"
	case Maximize:
		return "maximize"
	default:
		return "unknown"
	}
}

// Bound is a per-variable interval [Lower, Upper]. Lower may be -Inf and
// Upper may be +Inf; Lower must not exceed Upper.
type Bound struct {
	Lower float64
	Upper float64
}

// DefaultBound returns the canonical default interval [0, +Inf).
func DefaultBound() Bound { return Bound{Lower: 0, Upper: math.Inf(1)} }

// Free reports whether the interval is unbounded on both sides.
func (b Bound) Free() bool {
	return math.IsInf(b.Lower, -1) && math.IsInf(b.Upper, 1)
}

// Fixed reports whether the interval pins the variable to a single finite
// value (Lower == Upper, both finite).
func (b Bound) Fixed() bool {
	return b.Lower == b.Upper && !math.IsInf(b.Lower, 0)
}

// LP is the raw canonical linear program:
//
//	optimize  Sense( C·x + Offset )
//	s.t.      AUb·x <= BUb
//	          AEq·x == BEq
//	          Bounds[j].Lower <= x[j] <= Bounds[j].Upper
//
// AUb/BUb and AEq/BEq are optional (nil ⇒ no constraints of that kind).
// Bounds is optional; nil means every variable gets DefaultBound().
// Names is optional; if present it must hold len(C) unique non-empty strings.
type LP struct {
	Sense  Sense
	C      []float64
	AUb    [][]float64
	BUb    []float64
	AEq    [][]float64
	BEq    []float64
	Bounds []Bound
	Names  []string
	Offset float64
}

// MILP is the raw canonical mixed-integer linear program: an LP plus a
// per-variable integrality marker. Integrality is optional; nil means every
// variable is continuous and the instance degenerates to its LP relaxation.
// If present it must hold exactly len(C) entries; true restricts the
// variable to integer values within its bounds.
type MILP struct {
	LP
	Integrality []bool
}

// Knapsack is the raw canonical 0/1 knapsack instance. n == 0 is a valid,
// trivially-empty instance. Weights and Capacity are non-negative integers;
// Values may be any finite reals (negative values are legal and simply never
// selected by the optimal policy).
type Knapsack struct {
	Values   []float64
	Weights  []int
	Capacity int
	Names    []string
}

// ValidatedLP is an LP that passed ValidateLP. It holds deep copies of the
// raw slices and must be treated as read-only by all consumers; the
// preprocessor produces new instances instead of mutating it.
type ValidatedLP struct {
	LP
}

// NumVars returns the variable count n.
func (v LP) NumVars() int { return len(v.C) }

// NumUb returns the number of inequality rows.
func (v LP) NumUb() int { return len(v.AUb) }

// NumEq returns the number of equality rows.
func (v LP) NumEq() int { return len(v.AEq) }

// BoundAt returns the bound pair of variable j, applying the default when
// the instance carries no explicit bounds.
func (v LP) BoundAt(j int) Bound {
	if v.Bounds == nil {
		return DefaultBound()
	}

	return v.Bounds[j]
}

// ValidatedMILP is a MILP that passed ValidateMILP. Same read-only
// discipline as ValidatedLP.
type ValidatedMILP struct {
	MILP
}

// IntegerAt reports whether variable j carries an integrality marker; a nil
// Integrality vector means all-continuous.
func (v ValidatedMILP) IntegerAt(j int) bool {
	return v.Integrality != nil && v.Integrality[j]
}

// HasIntegers reports whether any variable is integer-constrained.
func (v ValidatedMILP) HasIntegers() bool {
	for _, flag := range v.Integrality {
		if flag {
			return true
		}
	}

	return false
}

// Relaxation returns the continuous relaxation: the embedded LP with every
// integrality marker dropped.
func (v ValidatedMILP) Relaxation() ValidatedLP {
	return ValidatedLP{LP: v.LP}
}

// ValidatedKnapsack is a Knapsack that passed ValidateKnapsack. Same
// read-only discipline as ValidatedLP.
type ValidatedKnapsack struct {
	Knapsack
}

// NumItems returns the item count n.
func (v ValidatedKnapsack) NumItems() int { return len(v.Values) }

// Status is the uniform outcome classification shared by every solving path.
type Status int

const (
	// StatusOptimal: a provably optimal assignment was found.
	StatusOptimal Status = iota

	// StatusInfeasible: no assignment satisfies the constraints.
	StatusInfeasible

	// StatusUnbounded: the objective can be improved without limit.
	StatusUnbounded

	// StatusError: the solving capability failed; see the diagnostic message.
	StatusError
)

// String implements fmt.Stringer for diagnostics.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Solution is the uniform solve outcome produced fresh per solve call.
// Objective and X are meaningful only when Status == StatusOptimal; X is
// aligned to the ORIGINAL variable order of the instance (a 0/1 vector for
// knapsack). Message carries the backend diagnostic for StatusError.
type Solution struct {
	Status    Status
	Objective float64
	X         []float64
	Message   string
}

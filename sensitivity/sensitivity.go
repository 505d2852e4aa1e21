package sensitivity

import (
	"github.com/katalvlaran/optima/lpsolve"
	"github.com/katalvlaran/optima/preprocess"
	"github.com/katalvlaran/optima/schema"
)

// Marginal is one sensitivity value keyed by an ORIGINAL instance index.
// Name is filled for variables when the instance carries names; constraint
// rows are unnamed in the canonical schema.
type Marginal struct {
	Index int
	Name  string
	Value float64
}

// Report packages the marginals of one solved LP. Available is false when
// the capability exposed no marginals (or the solve was not optimal); in
// that case every slice is empty and the report must be read as "not
// computable", not as zeros.
type Report struct {
	Available bool

	// InequalityDuals are shadow prices of the original "<=" rows.
	InequalityDuals []Marginal

	// EqualityDuals are shadow prices of the original "=" rows.
	EqualityDuals []Marginal

	// ReducedCosts are per-variable marginals keyed by original index.
	ReducedCosts []Marginal
}

// Analyze builds a sensitivity report from a raw solver output.
//
// Dual vectors are consumed only when their lengths match the preprocessed
// shape exactly (ConstraintDuals ordered as "<=" rows then "=" rows,
// ReducedCosts over surviving variables); anything else is treated as "not
// exposed" rather than guessed at. Analyze never fails — absence of data is
// a valid, explicit result.
//
// Complexity: O(rows + n).
func Analyze(v schema.ValidatedLP, raw lpsolve.RawOutput, pre *preprocess.PreprocessedLP, cmap preprocess.ColumnMap) *Report {
	rep := &Report{}
	if raw.Status != lpsolve.RawOptimal {
		return rep
	}

	if len(raw.ConstraintDuals) == pre.NumUb()+pre.NumEq() && len(raw.ConstraintDuals) > 0 {
		for i, d := range raw.ConstraintDuals[:pre.NumUb()] {
			rep.InequalityDuals = append(rep.InequalityDuals, Marginal{Index: pre.UbRows[i], Value: d})
		}
		for i, d := range raw.ConstraintDuals[pre.NumUb():] {
			rep.EqualityDuals = append(rep.EqualityDuals, Marginal{Index: pre.EqRows[i], Value: d})
		}
		rep.Available = true
	}

	if len(raw.ReducedCosts) == pre.NumVars() && len(raw.ReducedCosts) > 0 {
		for s, rc := range raw.ReducedCosts {
			orig := cmap.Kept[s]
			m := Marginal{Index: orig, Value: rc}
			if v.Names != nil {
				m.Name = v.Names[orig]
			}
			rep.ReducedCosts = append(rep.ReducedCosts, m)
		}
		rep.Available = true
	}

	return rep
}

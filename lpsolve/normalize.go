package lpsolve

import (
	"fmt"

	"github.com/katalvlaran/optima/preprocess"
	"github.com/katalvlaran/optima/schema"
)

// Normalize maps a backend RawOutput into the uniform schema.Solution.
//
// Rules:
//   - RawOptimal requires a primal vector of exactly the preprocessed
//     variable count (violation → ErrInternal); the vector is expanded
//     through the preprocessor's column map so callers always see the
//     original variable order, and the preprocessing offset is added back
//     to the objective.
//   - RawInfeasible and RawUnbounded map directly; objective and primal
//     vector are absent by definition.
//   - RawFailure and any unrecognized status map to StatusError with the
//     backend's raw message preserved as the diagnostic, returned alongside
//     an ErrSolver-wrapped error.
func Normalize(raw RawOutput, p *preprocess.PreprocessedLP, cmap preprocess.ColumnMap) (schema.Solution, error) {
	switch raw.Status {
	case RawOptimal:
		if len(raw.X) != p.NumVars() {
			return schema.Solution{Status: schema.StatusError},
				fmt.Errorf("optimal primal has %d entries, want %d: %w", len(raw.X), p.NumVars(), ErrInternal)
		}
		full, err := cmap.Expand(raw.X)
		if err != nil {
			return schema.Solution{Status: schema.StatusError},
				fmt.Errorf("column map rejected primal: %v: %w", err, ErrInternal)
		}

		return schema.Solution{
			Status:    schema.StatusOptimal,
			Objective: raw.Objective + p.Offset,
			X:         full,
			Message:   raw.Message,
		}, nil

	case RawInfeasible:
		return schema.Solution{Status: schema.StatusInfeasible, Message: raw.Message}, nil

	case RawUnbounded:
		return schema.Solution{Status: schema.StatusUnbounded, Message: raw.Message}, nil

	default:
		return schema.Solution{Status: schema.StatusError, Message: raw.Message},
			fmt.Errorf("backend reported %q: %w", raw.Message, ErrSolver)
	}
}

package solve

import (
	"github.com/katalvlaran/optima/knapsack"
	"github.com/katalvlaran/optima/lpsolve"
	"github.com/katalvlaran/optima/milp"
	"github.com/katalvlaran/optima/preprocess"
	"github.com/katalvlaran/optima/schema"
	"github.com/katalvlaran/optima/sensitivity"
)

// Stage identifies the pipeline stage that produced a failure.
type Stage int

const (
	// StageValidate: schema validation of the raw instance.
	StageValidate Stage = iota

	// StagePreprocess: LP normalization and reduction.
	StagePreprocess

	// StageSolve: the backend call and its result normalization.
	StageSolve

	// StageAnalyze: sensitivity packaging. Reserved: Analyze never fails
	// today, so no pipeline path produces this tag yet.
	StageAnalyze

	// StageFormat: assembly of the uniform result. Reserved, same as
	// StageAnalyze.
	StageFormat
)

// String implements fmt.Stringer; the names appear inside Result.Err wraps.
func (s Stage) String() string {
	switch s {
	case StageValidate:
		return "validate"
	case StagePreprocess:
		return "preprocess"
	case StageSolve:
		return "solve"
	case StageAnalyze:
		return "analyze"
	case StageFormat:
		return "format"
	default:
		return "unknown"
	}
}

// Result is the uniform outcome of every solving path, produced fresh per
// call and never shared across calls.
//
// Objective and X are meaningful only for StatusOptimal; X is aligned to
// the ORIGINAL variable order (a 0/1 vector for knapsack). Sensitivity is
// non-nil for every LP solve and explicitly empty when marginals were not
// computable. When a pipeline stage failed, Status is StatusError, Stage
// names the stage and Err carries the stage-tagged cause (match the
// underlying sentinel with errors.Is).
type Result struct {
	Status    schema.Status
	Objective float64
	X         []float64
	Message   string

	Sensitivity *sensitivity.Report

	Stage Stage
	Err   error
}

// config carries per-call orchestration knobs.
type config struct {
	solver   lpsolve.Solver
	preOpts  preprocess.Options
	knapOpts knapsack.Options
	milpOpts milp.Options
}

// Option customizes one orchestrator call.
type Option func(*config)

// WithSolver swaps the LP backend for this call. Passing nil keeps the
// default gonum simplex backend.
func WithSolver(s lpsolve.Solver) Option {
	return func(c *config) {
		if s != nil {
			c.solver = s
		}
	}
}

// WithPreprocessOptions forwards preprocessing options (e.g. scaling).
func WithPreprocessOptions(o preprocess.Options) Option {
	return func(c *config) { c.preOpts = o }
}

// WithKnapsackOptions forwards knapsack engine options (memory mode).
func WithKnapsackOptions(o knapsack.Options) Option {
	return func(c *config) { c.knapOpts = o }
}

// WithMILPOptions forwards branch-and-bound options (integrality tolerance,
// node limit).
func WithMILPOptions(o milp.Options) Option {
	return func(c *config) { c.milpOpts = o }
}

// newConfig applies defaults, then options.
func newConfig(opts []Option) config {
	c := config{
		solver:   lpsolve.NewSimplexSolver(),
		preOpts:  preprocess.DefaultOptions(),
		knapOpts: knapsack.DefaultOptions(),
		milpOpts: milp.DefaultOptions(),
	}
	for _, o := range opts {
		o(&c)
	}

	return c
}

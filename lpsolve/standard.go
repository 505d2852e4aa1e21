package lpsolve

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/optima/preprocess"
	"github.com/katalvlaran/optima/schema"
)

// varKind classifies how a preprocessed variable was lowered into the
// standard form y >= 0.
type varKind int

const (
	// varShifted: finite lower bound L, x = L + y.
	varShifted varKind = iota

	// varMirrored: lower bound -Inf with finite upper U, x = U - y.
	varMirrored

	// varSplit: free variable, x = y⁺ - y⁻ (two columns).
	varSplit
)

// varRecord holds the recovery data for one preprocessed variable.
type varRecord struct {
	kind   varKind
	col    int
	col2   int     // second column, varSplit only
	anchor float64 // L for varShifted, U for varMirrored
}

// standardForm is a preprocessed LP lowered to gonum standard form:
//
//	minimize  c·y   s.t.  a·y = b,  y >= 0
//
// plus the bookkeeping needed to translate a standard-form solution back:
// shift is the objective constant folded out by bound anchoring, and
// negated records a maximize→minimize sign flip.
type standardForm struct {
	c    []float64
	a    *mat.Dense // nil when rows == 0
	b    []float64
	rows int
	cols int

	vars    []varRecord
	negated bool
	shift   float64
}

// lowerToStandard lowers a preprocessed LP to standard form.
//
// Lowering rules, per variable bound pair (Lower < Upper always holds after
// preprocessing):
//   - finite Lower            → shift: x = L + y; a finite Upper adds the
//     inequality row y <= U-L
//   - -Inf Lower, finite Upper → mirror: x = U - y
//   - free                     → split: x = y⁺ - y⁻
//
// Equality rows come first, then "<=" rows, then bound rows; every
// inequality row receives one slack column with coefficient 1.
//
// Complexity: O(rows·cols) time and space.
func lowerToStandard(p *preprocess.PreprocessedLP) *standardForm {
	n := p.NumVars()

	cEff := append([]float64(nil), p.C...)
	negated := p.Sense == schema.Maximize
	if negated {
		for j := range cEff {
			cEff[j] = -cEff[j]
		}
	}

	vars := make([]varRecord, n)
	structCols := 0
	var boundVars []int // shifted variables with a finite upper bound
	for j := 0; j < n; j++ {
		bj := p.Bounds[j]
		switch {
		case !math.IsInf(bj.Lower, -1):
			vars[j] = varRecord{kind: varShifted, col: structCols, anchor: bj.Lower}
			structCols++
			if !math.IsInf(bj.Upper, 1) {
				boundVars = append(boundVars, j)
			}
		case !math.IsInf(bj.Upper, 1):
			vars[j] = varRecord{kind: varMirrored, col: structCols, anchor: bj.Upper}
			structCols++
		default:
			vars[j] = varRecord{kind: varSplit, col: structCols, col2: structCols + 1}
			structCols += 2
		}
	}

	nEq := p.NumEq()
	nIneq := p.NumUb() + len(boundVars)
	sf := &standardForm{
		rows:    nEq + nIneq,
		cols:    structCols + nIneq,
		vars:    vars,
		negated: negated,
	}

	// Objective over structural columns; slack columns stay zero.
	sf.c = make([]float64, sf.cols)
	for j, vr := range vars {
		switch vr.kind {
		case varShifted:
			sf.c[vr.col] = cEff[j]
			sf.shift += cEff[j] * vr.anchor
		case varMirrored:
			sf.c[vr.col] = -cEff[j]
			sf.shift += cEff[j] * vr.anchor
		case varSplit:
			sf.c[vr.col] = cEff[j]
			sf.c[vr.col2] = -cEff[j]
		}
	}

	if sf.rows == 0 {
		return sf
	}

	sf.b = make([]float64, sf.rows)
	sf.a = mat.NewDense(sf.rows, sf.cols, nil)

	r := 0
	for i, row := range p.AEq {
		sf.writeRow(r, row, p.BEq[i])
		r++
	}
	ineqStart := r
	for i, row := range p.AUb {
		sf.writeRow(r, row, p.BUb[i])
		r++
	}
	for _, j := range boundVars {
		sf.a.Set(r, vars[j].col, 1)
		sf.b[r] = p.Bounds[j].Upper - p.Bounds[j].Lower
		r++
	}

	// One slack variable per inequality row, diagonal block after the
	// structural columns.
	for k := 0; k < nIneq; k++ {
		sf.a.Set(ineqStart+k, structCols+k, 1)
	}

	return sf
}

// writeRow lowers one original constraint row into standard-form row r,
// applying per-variable substitutions and accumulating RHS adjustments.
func (sf *standardForm) writeRow(r int, row []float64, rhs float64) {
	adj := rhs
	for j, coef := range row {
		if coef == 0 {
			continue
		}
		vr := sf.vars[j]
		switch vr.kind {
		case varShifted:
			sf.a.Set(r, vr.col, coef)
			adj -= coef * vr.anchor
		case varMirrored:
			sf.a.Set(r, vr.col, -coef)
			adj -= coef * vr.anchor
		case varSplit:
			sf.a.Set(r, vr.col, coef)
			sf.a.Set(r, vr.col2, -coef)
		}
	}
	sf.b[r] = adj
}

// compactColumns drops structural columns with no row support before the
// backend call (the dense simplex rejects all-zero columns). A dropped
// column with negative cost lets the objective fall without limit, so the
// problem is unbounded; otherwise the column rests at y = 0. Returns the
// compacted cost vector and matrix plus the kept column indices for
// re-inflation. Only meaningful when rows > 0.
func (sf *standardForm) compactColumns() (c []float64, a *mat.Dense, kept []int, unbounded bool) {
	kept = make([]int, 0, sf.cols)
	for j := 0; j < sf.cols; j++ {
		zero := true
		for i := 0; i < sf.rows; i++ {
			if sf.a.At(i, j) != 0 {
				zero = false
				break
			}
		}
		if zero {
			if sf.c[j] < 0 {
				return nil, nil, nil, true
			}
			continue
		}
		kept = append(kept, j)
	}
	if len(kept) == sf.cols {
		return sf.c, sf.a, kept, false
	}

	c = make([]float64, len(kept))
	a = mat.NewDense(sf.rows, len(kept), nil)
	for s, j := range kept {
		c[s] = sf.c[j]
		for i := 0; i < sf.rows; i++ {
			a.Set(i, s, sf.a.At(i, j))
		}
	}

	return c, a, kept, false
}

// inflateColumns scatters a compacted solution back to full column width;
// dropped columns rest at zero.
func inflateColumns(y []float64, kept []int, cols int) []float64 {
	out := make([]float64, cols)
	for s, j := range kept {
		out[j] = y[s]
	}

	return out
}

// recoverPrimal translates a standard-form solution y back into the
// preprocessed variable space.
func (sf *standardForm) recoverPrimal(y []float64) []float64 {
	x := make([]float64, len(sf.vars))
	for j, vr := range sf.vars {
		switch vr.kind {
		case varShifted:
			x[j] = vr.anchor + y[vr.col]
		case varMirrored:
			x[j] = vr.anchor - y[vr.col]
		case varSplit:
			x[j] = y[vr.col] - y[vr.col2]
		}
	}

	return x
}

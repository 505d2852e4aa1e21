// Package sensitivity derives marginal explanations (shadow prices for
// constraints, reduced costs for variables) from a solved LP when the
// underlying solving capability exposes them.
//
// Marginals are re-keyed to the ORIGINAL instance numbering: constraint
// duals travel back through the preprocessor's surviving-row indices, and
// reduced costs through its column map, with variable names attached when
// the instance supplies them. Rows and columns eliminated by preprocessing
// simply do not appear in the report — a trivially satisfied row was never
// binding, and a fixed variable has no backend marginal; nothing is
// fabricated in their place.
//
// When marginals are unavailable — the backend does not expose dual vectors
// (the bundled gonum simplex does not), or the solve did not finish optimal
// — Analyze returns an explicit empty report with Available == false.
// Callers must treat that as "not computable", never as "all zero".
package sensitivity

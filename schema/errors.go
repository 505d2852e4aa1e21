// Package schema: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the schema
// package. Validators MUST return these sentinels and tests MUST check them
// via errors.Is. Context (field name, expected vs. actual shape) is added
// with fmt.Errorf("…: %w", ErrX) at the point of detection.

package schema

import "errors"

var (
	// ErrBadSense is returned when the optimization sense is outside the
	// closed {Minimize, Maximize} set.
	ErrBadSense = errors.New("schema: unknown optimization sense")

	// ErrEmptyObjective is returned when an LP objective vector has no
	// entries (the variable count n must be >= 1).
	ErrEmptyObjective = errors.New("schema: objective vector is empty")

	// ErrDimensionMismatch indicates incompatible lengths between paired
	// fields: constraint row vs. n, RHS vector vs. row count, bounds or
	// names vs. n, values vs. weights.
	ErrDimensionMismatch = errors.New("schema: dimension mismatch")

	// ErrBadBound is returned for a malformed bound pair: Lower > Upper,
	// Lower == +Inf, or Upper == -Inf.
	ErrBadBound = errors.New("schema: malformed bound pair")

	// ErrNegativeWeight is returned when a knapsack item weight is negative.
	ErrNegativeWeight = errors.New("schema: negative knapsack weight")

	// ErrNegativeCapacity is returned when a knapsack capacity is negative.
	ErrNegativeCapacity = errors.New("schema: negative knapsack capacity")

	// ErrBadName indicates an empty or duplicate entry in a Names slice.
	ErrBadName = errors.New("schema: empty or duplicate variable name")

	// ErrNaNInf signals a NaN or ±Inf value where a finite value is required
	// (objective, constraint matrices, RHS vectors, knapsack values, offset).
	// Bounds are the only fields allowed to carry infinities.
	ErrNaNInf = errors.New("schema: NaN or Inf encountered")
)

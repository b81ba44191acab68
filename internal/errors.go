package internal

import "errors"

var (
	// ErrInvalidPosition is returned whenever a sheet or position operation
	// is given a syntactically invalid or out-of-range position.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrCircularDependency is returned from SetCell when the candidate
	// cell would, directly or transitively, reference its own position.
	ErrCircularDependency = errors.New("circular dependency detected")

	// ErrFormulaParse is returned when formula text fails to parse. It is
	// always a parse-time failure; it is never stored as a cell value (see
	// FormulaError for that).
	ErrFormulaParse = errors.New("formula parse error")
)

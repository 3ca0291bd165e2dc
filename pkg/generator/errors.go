package generator

import "errors"

var (
	// ErrInvalidSchema is returned when the top-level schema is absent or empty.
	ErrInvalidSchema = errors.New("invalid input: expected a schema, none found")

	// ErrUnresolvedRef is returned when a $ref names a definition that is
	// absent from the definitions table.
	ErrUnresolvedRef = errors.New("unresolved reference")

	// ErrCyclicRef is returned when the definitions table contains a
	// reference cycle.
	ErrCyclicRef = errors.New("cyclic reference")
)

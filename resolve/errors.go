package resolve

import "errors"

var (
	// ErrUnsatisfied indicates that no candidate matched.
	ErrUnsatisfied = errors.New("unsatisfied requirement")

	// ErrAmbiguous indicates that more than one candidate matched and none
	// was preferred.
	ErrAmbiguous = errors.New("ambiguous requirement")

	// ErrUnknownType indicates that a TypeLookup could not find a type.
	ErrUnknownType = errors.New("unknown type")
)

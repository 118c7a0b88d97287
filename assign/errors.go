package assign

import "errors"

var (
	// ErrNilArgument indicates a required argument was nil.
	ErrNilArgument = errors.New("nil argument")

	// ErrInvalidTypeKind indicates a type of a kind other than primitive,
	// array or declared was used where only those are allowed.
	ErrInvalidTypeKind = errors.New("invalid type kind")

	// ErrNotQualifiedNameable indicates a declaration that cannot carry a
	// qualified name was asked for one.
	ErrNotQualifiedNameable = errors.New("element has no qualified name")
)

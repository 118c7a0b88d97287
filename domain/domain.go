package domain

// Type is an opaque handle into a Domain.
//
// Identity is decided by Domain.SameType; implementations are free to hand out
// distinct values for the same type.
type Type interface {
	Kind() Kind
	String() string
}

// DeclaredType is a class, interface or other nominal type, possibly
// parameterized.
type DeclaredType interface {
	Type
	Element() Element
	TypeArguments() []Type
}

// ArrayType is a type whose values hold elements of ComponentType.
type ArrayType interface {
	Type
	ComponentType() Type
}

// TypeVariable is a type parameter usage.
type TypeVariable interface {
	Type
	Element() Element
	UpperBound() Type
}

// IntersectionType is the greatest lower bound of its Bounds.
type IntersectionType interface {
	Type
	Bounds() []Type
}

// WildcardType is a type argument with an optional extends or super bound.
// Either bound may be nil.
type WildcardType interface {
	Type
	ExtendsBound() Type
	SuperBound() Type
}

// Element is a declaration.
type Element interface {
	Kind() ElementKind
	SimpleName() string
	Type() Type
}

// QualifiedNameable is an Element that can report a fully qualified name.
type QualifiedNameable interface {
	Element
	QualifiedName() string
}

// Domain answers elementary questions about types. Every method must be
// pure and total over the types the Domain itself produces.
type Domain interface {
	// SameType reports whether a and b denote the same type.
	SameType(a, b Type) bool

	// Subtype reports whether a is a subtype of b. The relation is reflexive.
	Subtype(a, b Type) bool

	// Assignable reports whether a value of type payload may be assigned to
	// a variable of type receiver. Note the parameter order: source first.
	Assignable(payload, receiver Type) bool

	// DirectSupertypes returns the direct supertypes of t in declaration
	// order. It never returns nil elements.
	DirectSupertypes(t Type) []Type

	// RawType returns the erasure of t, or t itself (or nil) when t has no
	// meaningful raw form.
	RawType(t Type) Type

	// TopType reports whether t is the universal supertype.
	TopType(t Type) bool
}

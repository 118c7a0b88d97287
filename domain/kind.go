package domain

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind classifies a Type.
type Kind int

const (
	_ Kind = iota // zero is reserved for an invalid kind

	KindBoolean
	KindByte
	KindShort
	KindInt
	KindLong
	KindChar
	KindFloat
	KindDouble
	KindVoid
	KindNone
	KindNull
	KindArray
	KindDeclared
	KindError
	KindTypeVar
	KindWildcard
	KindPackage
	KindExecutable
	KindOther
	KindUnion
	KindIntersection
	KindModule
)

// IsPrimitive reports whether k is one of the primitive kinds.
func (k Kind) IsPrimitive() bool {
	switch k {
	default:
		return false
	case KindBoolean, KindByte, KindShort, KindInt,
		KindLong, KindChar, KindFloat, KindDouble:
		return true
	}
}

// IsReference reports whether k is a reference kind that can be
// the type of a variable.
func (k Kind) IsReference() bool {
	switch k {
	default:
		return false
	case KindArray, KindDeclared, KindTypeVar, KindIntersection, KindNull:
		return true
	}
}

//go:generate go tool stringer -type=ElementKind -output=elementkind_string.go

// ElementKind classifies an Element.
type ElementKind int

const (
	_ ElementKind = iota

	ElementPackage
	ElementClass
	ElementEnum
	ElementRecord
	ElementInterface
	ElementAnnotationType
	ElementTypeParameter
	ElementField
	ElementParameter
	ElementMethod
	ElementConstructor
	ElementOther
)

// IsClass reports whether k declares a class-like type.
func (k ElementKind) IsClass() bool {
	switch k {
	default:
		return false
	case ElementClass, ElementEnum, ElementRecord:
		return true
	}
}

// IsInterface reports whether k declares an interface-like type.
func (k ElementKind) IsInterface() bool {
	return k == ElementInterface || k == ElementAnnotationType
}

package assign

import "github.com/microbean/microbean-assign/domain"

// The comparators below treat the zero (invalid) kind as absent and sort it
// last.

// ClassesThenInterfaces orders class-like element kinds before
// interface-like ones. All other pairs compare as 0.
func ClassesThenInterfaces(a, b domain.ElementKind) int {
	switch {
	case a == b:
		return 0
	case a == 0:
		return 1
	case b == 0:
		return -1
	case a.IsClass() && b.IsInterface():
		return -1
	case a.IsInterface() && b.IsClass():
		return 1
	default:
		return 0
	}
}

// kindRank buckets type kinds: type variables, then primitives, then
// arrays, then declared types. Other kinds are unranked.
func kindRank(k domain.Kind) (int, bool) {
	switch {
	case k == domain.KindTypeVar:
		return 0, true
	case k.IsPrimitive():
		return 1, true
	case k == domain.KindArray:
		return 2, true
	case k == domain.KindDeclared:
		return 3, true
	default:
		return 0, false
	}
}

// PrimitiveAndReferenceKinds orders type variables before primitives,
// primitives before arrays, and arrays before declared types. Pairs
// involving any other kind compare as 0.
func PrimitiveAndReferenceKinds(a, b domain.Kind) int {
	switch {
	case a == b:
		return 0
	case a == 0:
		return 1
	case b == 0:
		return -1
	}
	ra, oka := kindRank(a)
	rb, okb := kindRank(b)
	if !oka || !okb {
		return 0
	}
	return ra - rb
}

// PrimitivesThenDeclared orders primitive kinds before the declared kind.
func PrimitivesThenDeclared(a, b domain.Kind) int {
	switch {
	case a == b:
		return 0
	case a == 0:
		return 1
	case b == 0:
		return -1
	case a.IsPrimitive() && b == domain.KindDeclared:
		return -1
	case a == domain.KindDeclared && b.IsPrimitive():
		return 1
	default:
		return 0
	}
}

// TypeVariablesFirst orders the type variable kind before every other kind.
func TypeVariablesFirst(a, b domain.Kind) int {
	switch {
	case a == b:
		return 0
	case a == 0:
		return 1
	case b == 0:
		return -1
	case a == domain.KindTypeVar:
		return -1
	case b == domain.KindTypeVar:
		return 1
	default:
		return 0
	}
}

package assign

import (
	"fmt"

	"github.com/hashicorp/go-set/v3"

	"github.com/microbean/microbean-assign/domain"
)

// Matcher tests whether a matches b.
type Matcher[A, B any] func(a A, b B) bool

// TypeMatcher implements the type-side relations of resolution on top of a
// domain.Domain.
//
// Receiver and payload name the two sides of an assignment: a payload
// flows into a slot typed receiver. During resolution the requirement is the
// receiver and the candidate is the payload.
type TypeMatcher struct {
	domain domain.Domain
}

// NewTypeMatcher returns a TypeMatcher backed by d.
func NewTypeMatcher(d domain.Domain) (*TypeMatcher, error) {
	if d == nil {
		return nil, fmt.Errorf("%w: domain", ErrNilArgument)
	}
	return &TypeMatcher{domain: d}, nil
}

// Domain returns the backing domain.
func (m *TypeMatcher) Domain() domain.Domain {
	return m.domain
}

// CovariantlyAssignable reports whether payload may flow into a slot typed
// receiver. It panics with an error wrapping ErrNilArgument if receiver is
// nil.
func (m *TypeMatcher) CovariantlyAssignable(receiver, payload domain.Type) bool {
	if receiver == nil {
		panic(fmt.Errorf("%w: receiver", ErrNilArgument))
	}
	// The domain asks "is payload assignable to receiver", so the
	// arguments are deliberately swapped.
	return receiver == payload || m.domain.Assignable(payload, receiver)
}

// CovariantlyAssignableToAny reports whether at least one of payloadBounds
// is covariantly assignable to receiver.
func (m *TypeMatcher) CovariantlyAssignableToAny(receiver domain.Type, payloadBounds []domain.Type) bool {
	for _, p := range payloadBounds {
		if m.CovariantlyAssignable(receiver, p) {
			return true
		}
	}
	return false
}

// CovariantlyAssignableToAll reports whether every receiver bound accepts at
// least one of payloadBounds.
func (m *TypeMatcher) CovariantlyAssignableToAll(receiverBounds, payloadBounds []domain.Type) bool {
	return AllMatch(receiverBounds, func(r domain.Type) bool {
		return m.CovariantlyAssignableToAny(r, payloadBounds)
	})
}

// Assignability returns CovariantlyAssignable as a Matcher.
func (m *TypeMatcher) Assignability() Matcher[domain.Type, domain.Type] {
	return m.CovariantlyAssignable
}

// Identical reports whether receiver and payload are the same handle or the
// same type. Unlike SameType, a wildcard handle is identical to itself.
// It panics with an error wrapping ErrNilArgument if either is nil.
func (m *TypeMatcher) Identical(receiver, payload domain.Type) bool {
	if receiver == nil {
		panic(fmt.Errorf("%w: receiver", ErrNilArgument))
	}
	if payload == nil {
		panic(fmt.Errorf("%w: payload", ErrNilArgument))
	}
	return receiver == payload || m.domain.SameType(receiver, payload)
}

// NonGenericClassOrRawType returns the raw type of t if t yields one, and t
// otherwise.
func (m *TypeMatcher) NonGenericClassOrRawType(t domain.Type) domain.Type {
	if m.YieldsRawType(t) {
		return m.domain.RawType(t)
	}
	return t
}

// YieldsRawType reports whether erasing t changes it, as it does for a
// parameterized type or an array of one.
func (m *TypeMatcher) YieldsRawType(t domain.Type) bool {
	raw := m.domain.RawType(t)
	return raw != nil && raw != t
}

// UnboundedTypeVariable reports whether t is a type variable whose upper
// bound is the top type or, recursively, another unbounded type variable. A
// nil upper bound counts as the top type. A cyclic bound chain is not
// unbounded.
func (m *TypeMatcher) UnboundedTypeVariable(t domain.Type) bool {
	visited := set.New[domain.Type](4)
	for t != nil && t.Kind() == domain.KindTypeVar {
		tv, ok := t.(domain.TypeVariable)
		if !ok || !visited.Insert(t) {
			return false
		}
		t = tv.UpperBound()
		if t == nil || m.domain.TopType(t) {
			return true
		}
	}
	return false
}

// AllMatch reports whether p accepts every element of s. It is true for an
// empty s.
func AllMatch[S ~[]E, E any](s S, p func(E) bool) bool {
	for _, e := range s {
		if !p(e) {
			return false
		}
	}
	return true
}

// DeclaredTypeHasQualifiedName reports whether the element declaring t has
// the qualified name n, regardless of t's kind. It returns an error wrapping
// ErrNotQualifiedNameable if the element cannot carry a qualified name.
func DeclaredTypeHasQualifiedName(t domain.DeclaredType, n string) (bool, error) {
	if t == nil {
		return false, fmt.Errorf("%w: t", ErrNilArgument)
	}
	e := t.Element()
	qn, ok := e.(domain.QualifiedNameable)
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrNotQualifiedNameable, t)
	}
	return qn.QualifiedName() == n, nil
}

package assign

import (
	"iter"
	"slices"
	"strings"

	"github.com/microbean/microbean-assign/domain"
)

// SupertypeList is an immutable ordered set of types: non-interface types
// first, then interface types.
//
// The zero value is an empty list.
type SupertypeList struct {
	types          []domain.Type
	interfaceIndex int
}

func newSupertypeList(nonInterfaces, interfaces []domain.Type) SupertypeList {
	types := make([]domain.Type, 0, len(nonInterfaces)+len(interfaces))
	types = append(types, nonInterfaces...)
	types = append(types, interfaces...)

	idx := -1
	if len(interfaces) > 0 {
		idx = len(nonInterfaces)
	}
	return SupertypeList{types: types, interfaceIndex: idx}
}

// Len returns the number of types.
func (l SupertypeList) Len() int {
	return len(l.types)
}

// At returns the i-th type. It panics if i is out of range.
func (l SupertypeList) At(i int) domain.Type {
	return l.types[i]
}

// All iterates over the types in order.
func (l SupertypeList) All() iter.Seq2[int, domain.Type] {
	return slices.All(l.types)
}

// Slice returns a copy of the types.
func (l SupertypeList) Slice() []domain.Type {
	return slices.Clone(l.types)
}

// InterfaceIndex returns the position of the first interface type, or -1
// if there is none.
func (l SupertypeList) InterfaceIndex() int {
	if len(l.types) == 0 {
		return -1
	}
	return l.interfaceIndex
}

// Classes returns a copy of the non-interface types.
func (l SupertypeList) Classes() []domain.Type {
	if l.InterfaceIndex() < 0 {
		return slices.Clone(l.types)
	}
	return slices.Clone(l.types[:l.interfaceIndex])
}

// Interfaces returns a copy of the interface types.
func (l SupertypeList) Interfaces() []domain.Type {
	if l.InterfaceIndex() < 0 {
		return nil
	}
	return slices.Clone(l.types[l.interfaceIndex:])
}

// Contains reports whether the list holds a type that is the same type as t
// according to d.
func (l SupertypeList) Contains(d domain.Domain, t domain.Type) bool {
	return slices.ContainsFunc(l.types, func(s domain.Type) bool {
		return s == t || d.SameType(s, t)
	})
}

// ErasedNames returns the erased name of every type, in order.
func (l SupertypeList) ErasedNames() []string {
	names := make([]string, len(l.types))
	for i, t := range l.types {
		names[i] = ErasedName(t)
	}
	return names
}

func (l SupertypeList) String() string {
	parts := make([]string, len(l.types))
	for i, t := range l.types {
		parts[i] = t.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

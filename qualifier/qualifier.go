// Package qualifier implements the qualifier algebra: the built-in
// qualifiers, membership tests, and normalization to shared canonical
// values.
//
// A qualifier is an *attributes.Attributes whose metadata contains the
// meta-marker Qualifier(), directly or through the metadata of its
// metadata. The built-ins Any, Default and Primordial carry the marker
// themselves.
//
// Normalized values and lists are shared. Callers must not modify a slice
// returned by this package; every shared slice has its capacity clipped, so
// append always copies.
package qualifier

import (
	"slices"

	"github.com/microbean/microbean-assign/attributes"
	"github.com/microbean/microbean-assign/internal/common"
)

var (
	marker              = attributes.Of("Qualifier")
	anyQualifier        = attributes.Of("Any", marker)
	defaultQualifier    = attributes.Of("Default", marker)
	primordialQualifier = attributes.Of("Primordial", marker)

	anyList           = slices.Clip([]*attributes.Attributes{anyQualifier})
	defaultList       = slices.Clip([]*attributes.Attributes{defaultQualifier})
	anyAndDefaultList = slices.Clip([]*attributes.Attributes{anyQualifier, defaultQualifier})
	primordialList    = slices.Clip([]*attributes.Attributes{primordialQualifier})
)

// Qualifier returns the meta-marker that makes other attributes qualifiers.
// The marker is not itself a qualifier.
func Qualifier() *attributes.Attributes {
	return marker
}

// Any returns the qualifier every candidate carries implicitly.
func Any() *attributes.Attributes {
	return anyQualifier
}

// Default returns the qualifier assumed when none is given.
func Default() *attributes.Attributes {
	return defaultQualifier
}

// Primordial returns the qualifier of the bootstrap candidates.
func Primordial() *attributes.Attributes {
	return primordialQualifier
}

// AnyQualifiers returns the shared list [Any].
func AnyQualifiers() []*attributes.Attributes {
	return anyList
}

// DefaultQualifiers returns the shared list [Default].
func DefaultQualifiers() []*attributes.Attributes {
	return defaultList
}

// AnyAndDefaultQualifiers returns the shared list [Any, Default].
func AnyAndDefaultQualifiers() []*attributes.Attributes {
	return anyAndDefaultList
}

// PrimordialQualifiers returns the shared list [Primordial].
func PrimordialQualifiers() []*attributes.Attributes {
	return primordialList
}

// New returns a qualifier named name with the given values.
func New(name string, values map[string]any) *attributes.Attributes {
	return attributes.New(name, values, marker)
}

// IsQualifier reports whether a is a qualifier.
func IsQualifier(a *attributes.Attributes) bool {
	return a != nil && marked(a.Metadata())
}

func marked(metadata []*attributes.Attributes) bool {
	for _, md := range metadata {
		if md.Equal(marker) || IsQualifier(md) {
			return true
		}
	}
	return false
}

// IsAny reports whether a equals Any().
func IsAny(a *attributes.Attributes) bool {
	return anyQualifier.Equal(a)
}

// IsDefault reports whether a equals Default().
func IsDefault(a *attributes.Attributes) bool {
	return defaultQualifier.Equal(a)
}

// IsPrimordial reports whether a equals Primordial().
func IsPrimordial(a *attributes.Attributes) bool {
	return primordialQualifier.Equal(a)
}

// Normalize returns the built-in instance equal to a, or a itself.
func Normalize(a *attributes.Attributes) *attributes.Attributes {
	switch {
	case a == nil:
		return nil
	case IsAny(a):
		return anyQualifier
	case IsDefault(a):
		return defaultQualifier
	case IsPrimordial(a):
		return primordialQualifier
	case marker.Equal(a):
		return marker
	default:
		return a
	}
}

// NormalizeList returns the shared list for [Any], [Default],
// [Any, Default] and [Primordial]; any other list is copied with each
// element normalized. An empty list normalizes to nil.
func NormalizeList(list []*attributes.Attributes) []*attributes.Attributes {
	if common.IsEmpty(list) {
		return nil
	}
	if l, ok := canonical(list); ok {
		return l
	}
	out := make([]*attributes.Attributes, len(list))
	for i, a := range list {
		out[i] = Normalize(a)
	}
	return out
}

// Qualifiers returns the normalized qualifiers in list, in order, dropping
// everything that is not a qualifier. Lists of a recognized shape yield the
// shared list; a list without qualifiers yields nil.
func Qualifiers(list []*attributes.Attributes) []*attributes.Attributes {
	if common.IsEmpty(list) {
		return nil
	}
	if l, ok := canonical(list); ok {
		return l
	}

	out := make([]*attributes.Attributes, 0, len(list))
	for _, a := range list {
		if IsQualifier(a) {
			out = append(out, Normalize(a))
		}
	}
	if common.IsEmpty(out) {
		return nil
	}
	if l, ok := canonical(out); ok {
		return l
	}
	return slices.Clip(out)
}

func canonical(list []*attributes.Attributes) ([]*attributes.Attributes, bool) {
	if common.IsSingle(list) {
		switch a := list[0]; {
		case IsAny(a):
			return anyList, true
		case IsDefault(a):
			return defaultList, true
		case IsPrimordial(a):
			return primordialList, true
		}
		return nil, false
	}
	if len(list) == 2 && IsAny(list[0]) && IsDefault(list[1]) {
		return anyAndDefaultList, true
	}
	return nil, false
}

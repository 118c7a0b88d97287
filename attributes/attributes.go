// Package attributes provides Attributes, a named and optionally valued marker
// that can itself be decorated with other Attributes as metadata.
//
// Attributes play the role annotations play in other ecosystems: a qualifier is
// an Attributes value whose metadata contains the qualifier meta-marker.
package attributes

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// Attributes is an immutable named marker with values and metadata.
//
// Values should be strings, booleans, numbers, *Attributes, or slices of
// those.
type Attributes struct {
	name     string
	values   map[string]any
	metadata []*Attributes
}

// Of returns Attributes with the given name, no values and the given metadata.
func Of(name string, metadata ...*Attributes) *Attributes {
	return New(name, nil, metadata...)
}

// New returns Attributes with the given name, values and metadata.
// The values map and metadata slice are copied.
func New(name string, values map[string]any, metadata ...*Attributes) *Attributes {
	a := &Attributes{name: name}
	if len(values) > 0 {
		a.values = maps.Clone(values)
	}
	if len(metadata) > 0 {
		a.metadata = slices.Clone(metadata)
	}
	return a
}

// Name returns the name.
func (a *Attributes) Name() string {
	return a.name
}

// Value returns the value stored under key.
func (a *Attributes) Value(key string) (any, bool) {
	v, ok := a.values[key]
	return v, ok
}

// Keys returns the value keys in sorted order.
func (a *Attributes) Keys() []string {
	return slices.Sorted(maps.Keys(a.values))
}

// Values returns a copy of the values.
func (a *Attributes) Values() map[string]any {
	return maps.Clone(a.values)
}

// Metadata returns a copy of the metadata.
func (a *Attributes) Metadata() []*Attributes {
	return slices.Clone(a.metadata)
}

// HasMetadata reports whether a carries any metadata.
func (a *Attributes) HasMetadata() bool {
	return len(a.metadata) > 0
}

// Equal reports whether a and other have the same name, values and metadata.
func (a *Attributes) Equal(other *Attributes) bool {
	if a == other {
		return true
	}
	if a == nil || other == nil {
		return false
	}
	if a.name != other.name || len(a.values) != len(other.values) {
		return false
	}
	if len(a.values) > 0 && !cmp.Equal(a.values, other.values) {
		return false
	}
	return slices.EqualFunc(a.metadata, other.metadata, (*Attributes).Equal)
}

// String returns a canonical rendering such as @Named(value=foo).
// Metadata is not rendered.
func (a *Attributes) String() string {
	if a == nil {
		return "<nil>"
	}
	if len(a.values) == 0 {
		return "@" + a.name
	}

	var sb strings.Builder
	sb.WriteString("@")
	sb.WriteString(a.name)
	sb.WriteString("(")
	for i, k := range a.Keys() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s=%v", k, a.values[k])
	}
	sb.WriteString(")")
	return sb.String()
}

// Contains reports whether list holds an element equal to a.
func Contains(list []*Attributes, a *Attributes) bool {
	return slices.ContainsFunc(list, a.Equal)
}

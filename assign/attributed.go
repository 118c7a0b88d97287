package assign

import (
	"fmt"
	"slices"
	"strings"

	"github.com/microbean/microbean-assign/attributes"
	"github.com/microbean/microbean-assign/domain"
)

// AttributedType pairs a primitive, array or declared type with attributes.
type AttributedType struct {
	typ   domain.Type
	attrs []*attributes.Attributes
}

// NewAttributedType returns an AttributedType for t. The attributes are
// copied. It returns an error wrapping ErrInvalidTypeKind if t is not a
// primitive, array or declared type.
func NewAttributedType(t domain.Type, attrs ...*attributes.Attributes) (AttributedType, error) {
	if t == nil {
		return AttributedType{}, fmt.Errorf("%w: type", ErrNilArgument)
	}
	switch k := t.Kind(); {
	case k.IsPrimitive(), k == domain.KindArray, k == domain.KindDeclared:
	default:
		return AttributedType{}, fmt.Errorf("%w: %s (%s)", ErrInvalidTypeKind, t, k)
	}
	return AttributedType{typ: t, attrs: slices.Clip(slices.Clone(attrs))}, nil
}

// Type returns the type.
func (a AttributedType) Type() domain.Type {
	return a.typ
}

// Attributes returns a copy of the attributes.
func (a AttributedType) Attributes() []*attributes.Attributes {
	return slices.Clone(a.attrs)
}

func (a AttributedType) String() string {
	return renderAttributed(a.typ, a.attrs)
}

// AttributedElement pairs a declaration, such as a field or parameter, with
// attributes.
type AttributedElement struct {
	elem  domain.Element
	attrs []*attributes.Attributes
}

// NewAttributedElement returns an AttributedElement for e. The attributes
// are copied.
func NewAttributedElement(e domain.Element, attrs ...*attributes.Attributes) (AttributedElement, error) {
	if e == nil {
		return AttributedElement{}, fmt.Errorf("%w: element", ErrNilArgument)
	}
	return AttributedElement{elem: e, attrs: slices.Clip(slices.Clone(attrs))}, nil
}

// Element returns the declaration.
func (a AttributedElement) Element() domain.Element {
	return a.elem
}

// Attributes returns a copy of the attributes.
func (a AttributedElement) Attributes() []*attributes.Attributes {
	return slices.Clone(a.attrs)
}

// Type returns the declared type of the element.
func (a AttributedElement) Type() domain.Type {
	return a.elem.Type()
}

// AttributedType returns the element's type paired with its attributes.
func (a AttributedElement) AttributedType() (AttributedType, error) {
	return NewAttributedType(a.Type(), a.attrs...)
}

func (a AttributedElement) String() string {
	if a.elem == nil {
		return "<nil>"
	}
	return renderAttributed(a.elem.Type(), a.attrs) + " " + a.elem.SimpleName()
}

func renderAttributed(t domain.Type, attrs []*attributes.Attributes) string {
	var sb strings.Builder
	for _, a := range attrs {
		sb.WriteString(a.String())
		sb.WriteString(" ")
	}
	if t == nil {
		sb.WriteString("<nil>")
	} else {
		sb.WriteString(t.String())
	}
	return sb.String()
}

func attributesEqual(a, b []*attributes.Attributes) bool {
	return slices.EqualFunc(a, b, (*attributes.Attributes).Equal)
}

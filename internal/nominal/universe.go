package nominal

import (
	"fmt"
	"strings"

	"github.com/microbean/microbean-assign/domain"
)

// Universe declares type elements and answers domain.Domain queries about
// the types built from them.
type Universe struct {
	elements   map[string]*TypeElement
	primitives map[domain.Kind]*Primitive
	object     *TypeElement
}

// NewUniverse creates a Universe declaring the top class java.lang.Object
// and the array supertypes java.io.Serializable and java.lang.Cloneable.
func NewUniverse() *Universe {
	u := &Universe{
		elements:   make(map[string]*TypeElement),
		primitives: make(map[domain.Kind]*Primitive),
	}
	u.object = u.declare(domain.ElementClass, "java.lang.Object")
	u.Interface("java.io.Serializable")
	u.Interface("java.lang.Cloneable")
	return u
}

func (u *Universe) declare(kind domain.ElementKind, name string, params ...string) *TypeElement {
	if _, exists := u.elements[name]; exists {
		panic(fmt.Sprintf("type %s already declared", name))
	}

	simple := name
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		simple = name[i+1:]
	}

	e := &TypeElement{
		kind:          kind,
		qualifiedName: name,
		simpleName:    simple,
		u:             u,
	}
	for _, p := range params {
		tv := &TypeVar{bound: &Declared{elem: u.object}}
		tv.elem = &ParameterElement{name: p, tv: tv}
		e.params = append(e.params, tv)
	}

	u.elements[name] = e
	return e
}

// Class declares a class. Without a call to Extends its superclass is
// java.lang.Object.
func (u *Universe) Class(name string, params ...string) *TypeElement {
	return u.declare(domain.ElementClass, name, params...)
}

// Interface declares an interface.
func (u *Universe) Interface(name string, params ...string) *TypeElement {
	return u.declare(domain.ElementInterface, name, params...)
}

// Element returns the declaration named name, or nil.
func (u *Universe) Element(name string) *TypeElement {
	return u.elements[name]
}

// Object returns the top type.
func (u *Universe) Object() *Declared {
	return &Declared{elem: u.object}
}

// Declared returns a usage of e with the given type arguments. A generic
// element with no arguments yields its raw type.
func (u *Universe) Declared(e *TypeElement, args ...domain.Type) *Declared {
	if len(args) > 0 && len(args) != len(e.params) {
		panic(fmt.Sprintf("%s takes %d type arguments, got %d", e.qualifiedName, len(e.params), len(args)))
	}
	return &Declared{elem: e, args: append([]domain.Type(nil), args...)}
}

// Named is Declared for the element declared as name. It panics if no such
// element exists.
func (u *Universe) Named(name string, args ...domain.Type) *Declared {
	e := u.elements[name]
	if e == nil {
		panic(fmt.Sprintf("type %s is not declared", name))
	}
	return u.Declared(e, args...)
}

// ArrayOf returns the array type whose component type is c.
func (u *Universe) ArrayOf(c domain.Type) *Array {
	return &Array{component: c}
}

// Primitive returns the shared primitive type of kind k.
func (u *Universe) Primitive(k domain.Kind) *Primitive {
	if _, ok := primitiveNames[k]; !ok {
		panic(fmt.Sprintf("%s is not a primitive kind", k))
	}
	p, ok := u.primitives[k]
	if !ok {
		p = &Primitive{kind: k}
		u.primitives[k] = p
	}
	return p
}

// TypeVariable declares a free type variable bounded by bound, or by
// java.lang.Object when bound is nil.
func (u *Universe) TypeVariable(name string, bound domain.Type) *TypeVar {
	if bound == nil {
		bound = u.Object()
	}
	tv := &TypeVar{bound: bound}
	tv.elem = &ParameterElement{name: name, tv: tv}
	return tv
}

// Wildcard returns a wildcard with the given bounds; either may be nil.
func (u *Universe) Wildcard(extends, super domain.Type) *Wildcard {
	return &Wildcard{extends: extends, super: super}
}

// Intersection returns the intersection of bounds.
func (u *Universe) Intersection(bounds ...domain.Type) *Intersection {
	return &Intersection{bounds: append([]domain.Type(nil), bounds...)}
}

// Field returns a field declaration of type t.
func (u *Universe) Field(name string, t domain.Type) *VariableElement {
	return &VariableElement{kind: domain.ElementField, name: name, typ: t}
}

// Parameter returns a parameter declaration of type t.
func (u *Universe) Parameter(name string, t domain.Type) *VariableElement {
	return &VariableElement{kind: domain.ElementParameter, name: name, typ: t}
}

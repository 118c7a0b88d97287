package nominal

import (
	"strings"

	"github.com/microbean/microbean-assign/domain"
)

// TypeElement is a class or interface declaration.
type TypeElement struct {
	kind          domain.ElementKind
	qualifiedName string
	simpleName    string
	params        []*TypeVar
	superclass    domain.Type
	interfaces    []domain.Type
	u             *Universe
}

func (e *TypeElement) Kind() domain.ElementKind { return e.kind }
func (e *TypeElement) SimpleName() string       { return e.simpleName }
func (e *TypeElement) QualifiedName() string    { return e.qualifiedName }

// Type returns the type declared by e; its type arguments are e's own type
// variables.
func (e *TypeElement) Type() domain.Type {
	args := make([]domain.Type, len(e.params))
	for i, p := range e.params {
		args[i] = p
	}
	return &Declared{elem: e, args: args}
}

// TypeVar returns the i-th type parameter of e.
func (e *TypeElement) TypeVar(i int) *TypeVar {
	return e.params[i]
}

// Generic reports whether e declares type parameters.
func (e *TypeElement) Generic() bool {
	return len(e.params) > 0
}

// Extends sets the superclass of a class declaration.
func (e *TypeElement) Extends(super domain.Type) *TypeElement {
	e.superclass = super
	return e
}

// Implements appends interfaces, or superinterfaces for an interface
// declaration, in declaration order.
func (e *TypeElement) Implements(ifaces ...domain.Type) *TypeElement {
	e.interfaces = append(e.interfaces, ifaces...)
	return e
}

func (e *TypeElement) String() string { return e.qualifiedName }

// ParameterElement declares a type variable. It has no qualified name.
type ParameterElement struct {
	name string
	tv   *TypeVar
}

func (p *ParameterElement) Kind() domain.ElementKind { return domain.ElementTypeParameter }
func (p *ParameterElement) SimpleName() string       { return p.name }
func (p *ParameterElement) Type() domain.Type        { return p.tv }

// Primitive is a primitive type such as int.
type Primitive struct {
	kind domain.Kind
}

func (p *Primitive) Kind() domain.Kind { return p.kind }

func (p *Primitive) String() string {
	return primitiveNames[p.kind]
}

var primitiveNames = map[domain.Kind]string{
	domain.KindBoolean: "boolean",
	domain.KindByte:    "byte",
	domain.KindShort:   "short",
	domain.KindInt:     "int",
	domain.KindLong:    "long",
	domain.KindChar:    "char",
	domain.KindFloat:   "float",
	domain.KindDouble:  "double",
	domain.KindVoid:    "void",
}

// Declared is a usage of a TypeElement. A generic element used with no type
// arguments is a raw type.
type Declared struct {
	elem *TypeElement
	args []domain.Type
}

func (d *Declared) Kind() domain.Kind            { return domain.KindDeclared }
func (d *Declared) Element() domain.Element      { return d.elem }
func (d *Declared) TypeArguments() []domain.Type { return append([]domain.Type(nil), d.args...) }

// Raw reports whether d is the raw usage of a generic element.
func (d *Declared) Raw() bool {
	return d.elem.Generic() && len(d.args) == 0
}

func (d *Declared) String() string {
	if len(d.args) == 0 {
		return d.elem.qualifiedName
	}
	return d.elem.qualifiedName + "<" + joinTypes(d.args, ",") + ">"
}

// Array is an array type.
type Array struct {
	component domain.Type
}

func (a *Array) Kind() domain.Kind          { return domain.KindArray }
func (a *Array) ComponentType() domain.Type { return a.component }
func (a *Array) String() string             { return a.component.String() + "[]" }

// TypeVar is a type variable. Each declaration yields exactly one TypeVar.
type TypeVar struct {
	elem  *ParameterElement
	bound domain.Type
}

func (v *TypeVar) Kind() domain.Kind       { return domain.KindTypeVar }
func (v *TypeVar) Element() domain.Element { return v.elem }
func (v *TypeVar) UpperBound() domain.Type { return v.bound }
func (v *TypeVar) String() string          { return v.elem.name }

// SetBound replaces the upper bound. It exists so bounds can refer to other
// type variables, including cyclically in malformed models.
func (v *TypeVar) SetBound(bound domain.Type) {
	v.bound = bound
}

// Wildcard is a wildcard type argument.
type Wildcard struct {
	extends domain.Type
	super   domain.Type
}

func (w *Wildcard) Kind() domain.Kind         { return domain.KindWildcard }
func (w *Wildcard) ExtendsBound() domain.Type { return w.extends }
func (w *Wildcard) SuperBound() domain.Type   { return w.super }

func (w *Wildcard) String() string {
	switch {
	case w.extends != nil:
		return "? extends " + w.extends.String()
	case w.super != nil:
		return "? super " + w.super.String()
	default:
		return "?"
	}
}

// Intersection is an intersection of bounds.
type Intersection struct {
	bounds []domain.Type
}

func (i *Intersection) Kind() domain.Kind     { return domain.KindIntersection }
func (i *Intersection) Bounds() []domain.Type { return append([]domain.Type(nil), i.bounds...) }
func (i *Intersection) String() string        { return joinTypes(i.bounds, " & ") }

func joinTypes(ts []domain.Type, sep string) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = t.String()
	}
	return strings.Join(parts, sep)
}

// VariableElement is a field or parameter declaration.
type VariableElement struct {
	kind domain.ElementKind
	name string
	typ  domain.Type
}

func (v *VariableElement) Kind() domain.ElementKind { return v.kind }
func (v *VariableElement) SimpleName() string       { return v.name }
func (v *VariableElement) Type() domain.Type        { return v.typ }

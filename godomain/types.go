package godomain

import (
	"go/types"

	"github.com/microbean/microbean-assign/domain"
)

// goTyped is implemented by every handle.
type goTyped interface {
	goType() types.Type
}

// GoType returns the go/types type behind t, if t came from a Domain.
func GoType(t domain.Type) (types.Type, bool) {
	g, ok := t.(goTyped)
	if !ok {
		return nil, false
	}
	return g.goType(), true
}

// primitiveType is a numeric or boolean basic type.
type primitiveType struct {
	t    types.Type
	kind domain.Kind
}

func (p *primitiveType) Kind() domain.Kind  { return p.kind }
func (p *primitiveType) String() string     { return p.t.String() }
func (p *primitiveType) goType() types.Type { return p.t }

// declaredType is a named type, pointer, string or interface.
type declaredType struct {
	d    *Domain
	t    types.Type
	elem *element
}

func (dt *declaredType) Kind() domain.Kind       { return domain.KindDeclared }
func (dt *declaredType) String() string          { return types.TypeString(dt.t, nil) }
func (dt *declaredType) Element() domain.Element { return dt.elem }
func (dt *declaredType) goType() types.Type      { return dt.t }

// TypeArguments returns the type arguments of an instantiated generic type.
func (dt *declaredType) TypeArguments() []domain.Type {
	n, ok := dt.t.(*types.Named)
	if !ok || n.TypeArgs().Len() == 0 {
		return nil
	}
	args := make([]domain.Type, n.TypeArgs().Len())
	for i := range args {
		args[i] = dt.d.Type(n.TypeArgs().At(i))
	}
	return args
}

// arrayType is a slice or array.
type arrayType struct {
	d         *Domain
	t         types.Type
	component types.Type
}

func (a *arrayType) Kind() domain.Kind          { return domain.KindArray }
func (a *arrayType) String() string             { return types.TypeString(a.t, nil) }
func (a *arrayType) ComponentType() domain.Type { return a.d.Type(a.component) }
func (a *arrayType) goType() types.Type         { return a.t }

// typeVar is a type parameter.
type typeVar struct {
	d    *Domain
	tp   *types.TypeParam
	elem *typeParamElement
}

func (v *typeVar) Kind() domain.Kind       { return domain.KindTypeVar }
func (v *typeVar) String() string          { return v.tp.Obj().Name() }
func (v *typeVar) Element() domain.Element { return v.elem }
func (v *typeVar) goType() types.Type      { return v.tp }

// UpperBound returns the constraint.
func (v *typeVar) UpperBound() domain.Type {
	return v.d.Type(v.tp.Constraint())
}

// otherType is any type the domain does not model further.
type otherType struct {
	t    types.Type
	kind domain.Kind
}

func (o *otherType) Kind() domain.Kind  { return o.kind }
func (o *otherType) String() string     { return types.TypeString(o.t, nil) }
func (o *otherType) goType() types.Type { return o.t }

// element declares a declared type.
type element struct {
	d         *Domain
	kind      domain.ElementKind
	simple    string
	qualified string
	t         types.Type
}

func (e *element) Kind() domain.ElementKind { return e.kind }
func (e *element) SimpleName() string       { return e.simple }
func (e *element) QualifiedName() string    { return e.qualified }
func (e *element) Type() domain.Type        { return e.d.Type(e.t) }

// typeParamElement declares a type parameter. It has no qualified name.
type typeParamElement struct {
	d  *Domain
	tp *types.TypeParam
}

func (e *typeParamElement) Kind() domain.ElementKind { return domain.ElementTypeParameter }
func (e *typeParamElement) SimpleName() string       { return e.tp.Obj().Name() }
func (e *typeParamElement) Type() domain.Type        { return e.d.Type(e.tp) }

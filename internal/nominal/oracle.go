package nominal

import (
	"github.com/microbean/microbean-assign/domain"
)

var _ domain.Domain = (*Universe)(nil)

// SameType implements domain.Domain. A wildcard is never the same type as
// anything, itself included.
func (u *Universe) SameType(a, b domain.Type) bool {
	if a == nil || b == nil {
		return false
	}
	if a.Kind() == domain.KindWildcard || b.Kind() == domain.KindWildcard {
		return false
	}
	return u.sameArg(a, b)
}

// sameArg is SameType extended structurally to wildcard type arguments.
func (u *Universe) sameArg(a, b domain.Type) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || a.Kind() != b.Kind() {
		return false
	}

	switch x := a.(type) {
	case *Primitive:
		return true
	case *Declared:
		y := b.(*Declared)
		if x.elem != y.elem || len(x.args) != len(y.args) {
			return false
		}
		for i := range x.args {
			if !u.sameArg(x.args[i], y.args[i]) {
				return false
			}
		}
		return true
	case *Array:
		return u.sameArg(x.component, b.(*Array).component)
	case *Wildcard:
		y := b.(*Wildcard)
		return u.sameArg(x.extends, y.extends) && u.sameArg(x.super, y.super)
	case *Intersection:
		y := b.(*Intersection)
		if len(x.bounds) != len(y.bounds) {
			return false
		}
		for i := range x.bounds {
			if !u.sameArg(x.bounds[i], y.bounds[i]) {
				return false
			}
		}
		return true
	default:
		// type variables are identical only to themselves
		return false
	}
}

// Subtype implements domain.Domain. Primitive widening is not modeled: a
// primitive is a subtype only of itself.
func (u *Universe) Subtype(a, b domain.Type) bool {
	if a == nil || b == nil {
		return false
	}
	if a.Kind() == domain.KindWildcard || b.Kind() == domain.KindWildcard {
		return false
	}
	if u.SameType(a, b) {
		return true
	}
	if u.TopType(b) && a.Kind().IsReference() {
		return true
	}

	switch x := b.(type) {
	case *Intersection:
		for _, bound := range x.bounds {
			if !u.Subtype(a, bound) {
				return false
			}
		}
		return true
	case *TypeVar:
		return false
	}

	switch x := a.(type) {
	case *TypeVar:
		return u.Subtype(x.bound, b)
	case *Intersection:
		for _, bound := range x.bounds {
			if u.Subtype(bound, b) {
				return true
			}
		}
		return false
	case *Array:
		switch y := b.(type) {
		case *Array:
			if x.component.Kind().IsPrimitive() || y.component.Kind().IsPrimitive() {
				return u.SameType(x.component, y.component)
			}
			return u.Subtype(x.component, y.component)
		case *Declared:
			name := y.elem.qualifiedName
			return name == "java.io.Serializable" || name == "java.lang.Cloneable"
		}
		return false
	case *Declared:
		y, ok := b.(*Declared)
		if !ok {
			return false
		}
		s := u.asSuper(x, y.elem)
		if s == nil {
			return false
		}
		if y.Raw() || !y.elem.Generic() {
			return true
		}
		if s.Raw() {
			// raw to parameterized is an unchecked conversion, not subtyping
			return false
		}
		for i := range y.args {
			if !u.containsArg(y.args[i], s.args[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// containsArg reports whether type argument outer contains type argument
// inner.
func (u *Universe) containsArg(outer, inner domain.Type) bool {
	w, ok := outer.(*Wildcard)
	if !ok {
		return u.sameArg(outer, inner)
	}
	if iw, ok := inner.(*Wildcard); ok {
		return (w.extends == nil || iw.extends != nil && u.Subtype(iw.extends, w.extends)) &&
			(w.super == nil || iw.super != nil && u.Subtype(w.super, iw.super))
	}
	return (w.extends == nil || u.Subtype(inner, w.extends)) &&
		(w.super == nil || u.Subtype(w.super, inner))
}

// asSuper returns the supertype of d, d included, whose element is e.
func (u *Universe) asSuper(d *Declared, e *TypeElement) *Declared {
	seen := make(map[*TypeElement]struct{})
	var walk func(t domain.Type) *Declared
	walk = func(t domain.Type) *Declared {
		dt, ok := t.(*Declared)
		if !ok {
			return nil
		}
		if dt.elem == e {
			return dt
		}
		if _, visited := seen[dt.elem]; visited {
			return nil
		}
		seen[dt.elem] = struct{}{}
		for _, s := range u.DirectSupertypes(dt) {
			if found := walk(s); found != nil {
				return found
			}
		}
		return nil
	}
	return walk(d)
}

// Assignable implements domain.Domain. It adds unchecked conversion from a
// raw type to a parameterization of it, and the null type, to Subtype.
// Boxing is not modeled.
func (u *Universe) Assignable(payload, receiver domain.Type) bool {
	if u.Subtype(payload, receiver) {
		return true
	}
	if payload == nil || receiver == nil {
		return false
	}
	if payload.Kind() == domain.KindNull {
		return receiver.Kind().IsReference()
	}
	p, pok := payload.(*Declared)
	r, rok := receiver.(*Declared)
	if pok && rok && r.elem.Generic() {
		if s := u.asSuper(p, r.elem); s != nil && s.Raw() {
			return true
		}
	}
	return false
}

// DirectSupertypes implements domain.Domain.
//
// Interfaces report java.lang.Object followed by their superinterfaces.
// Arrays of primitives or of java.lang.Object report the intersection
// java.io.Serializable & java.lang.Cloneable; other arrays report arrays of
// their component's direct supertypes.
func (u *Universe) DirectSupertypes(t domain.Type) []domain.Type {
	switch x := t.(type) {
	case *Declared:
		if x.elem == u.object {
			return nil
		}
		var out []domain.Type
		if x.elem.kind.IsInterface() {
			out = append(out, u.Object())
		} else if x.elem.superclass != nil {
			out = append(out, u.supertypeOf(x, x.elem.superclass))
		} else {
			out = append(out, u.Object())
		}
		for _, i := range x.elem.interfaces {
			out = append(out, u.supertypeOf(x, i))
		}
		return out
	case *Array:
		if x.component.Kind().IsPrimitive() || u.TopType(x.component) {
			return []domain.Type{u.Intersection(u.Named("java.io.Serializable"), u.Named("java.lang.Cloneable"))}
		}
		supers := u.DirectSupertypes(x.component)
		out := make([]domain.Type, len(supers))
		for i, s := range supers {
			out[i] = u.ArrayOf(s)
		}
		return out
	case *TypeVar:
		return []domain.Type{x.bound}
	case *Intersection:
		if len(x.bounds) > 0 {
			if d, ok := x.bounds[0].(*Declared); ok && !d.elem.kind.IsInterface() {
				return x.Bounds()
			}
		}
		return append([]domain.Type{u.Object()}, x.bounds...)
	default:
		return nil
	}
}

// supertypeOf substitutes d's type arguments into super, a supertype
// declared by d's element. Raw usages have erased supertypes.
func (u *Universe) supertypeOf(d *Declared, super domain.Type) domain.Type {
	if !d.elem.Generic() {
		return super
	}
	if d.Raw() {
		return u.erase(super)
	}
	m := make(map[*TypeVar]domain.Type, len(d.args))
	for i, p := range d.elem.params {
		m[p] = d.args[i]
	}
	return u.substitute(super, m)
}

func (u *Universe) substitute(t domain.Type, m map[*TypeVar]domain.Type) domain.Type {
	switch x := t.(type) {
	case *TypeVar:
		if r, ok := m[x]; ok {
			return r
		}
		return x
	case *Declared:
		if len(x.args) == 0 {
			return x
		}
		args := make([]domain.Type, len(x.args))
		for i, a := range x.args {
			args[i] = u.substitute(a, m)
		}
		return &Declared{elem: x.elem, args: args}
	case *Array:
		return u.ArrayOf(u.substitute(x.component, m))
	case *Wildcard:
		w := &Wildcard{}
		if x.extends != nil {
			w.extends = u.substitute(x.extends, m)
		}
		if x.super != nil {
			w.super = u.substitute(x.super, m)
		}
		return w
	default:
		return t
	}
}

func (u *Universe) erase(t domain.Type) domain.Type {
	switch x := t.(type) {
	case *Declared:
		if len(x.args) == 0 {
			return x
		}
		return &Declared{elem: x.elem}
	case *Array:
		return u.ArrayOf(u.erase(x.component))
	case *TypeVar:
		return u.erase(x.bound)
	default:
		return t
	}
}

// RawType implements domain.Domain. Parameterized declared types and arrays
// of them erase; every other type is returned unchanged.
func (u *Universe) RawType(t domain.Type) domain.Type {
	switch x := t.(type) {
	case *Declared:
		if len(x.args) == 0 {
			return x
		}
		return &Declared{elem: x.elem}
	case *Array:
		if c := u.RawType(x.component); c != x.component {
			return u.ArrayOf(c)
		}
		return x
	default:
		return t
	}
}

// TopType implements domain.Domain.
func (u *Universe) TopType(t domain.Type) bool {
	d, ok := t.(*Declared)
	return ok && d.elem == u.object
}

package godomain

import (
	"go/types"
	"slices"
	"sync"

	"golang.org/x/tools/go/types/typeutil"

	"github.com/microbean/microbean-assign/domain"
)

var _ domain.Domain = (*Domain)(nil)

// Domain is a domain.Domain over go/types. It is safe for concurrent use.
type Domain struct {
	pkgs       []*types.Package
	interfaces []*types.Named
	top        types.Type

	mu      sync.Mutex
	handles typeutil.Map // types.Type -> domain.Type
}

// New returns a Domain whose interfaces are the non-generic named
// interfaces declared in pkgs, plus error.
func New(pkgs ...*types.Package) *Domain {
	d := &Domain{
		pkgs: slices.Clone(pkgs),
		top:  types.NewInterfaceType(nil, nil).Complete(),
	}
	for _, pkg := range pkgs {
		d.interfaces = append(d.interfaces, declaredInterfaces(pkg)...)
	}
	d.interfaces = append(d.interfaces, types.Universe.Lookup("error").Type().(*types.Named))
	return d
}

func declaredInterfaces(pkg *types.Package) []*types.Named {
	var out []*types.Named
	scope := pkg.Scope()
	for _, name := range scope.Names() {
		tn, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || tn.IsAlias() {
			continue
		}
		n, ok := tn.Type().(*types.Named)
		if !ok || n.TypeParams().Len() > 0 {
			continue
		}
		if iface, ok := n.Underlying().(*types.Interface); ok && iface.IsMethodSet() {
			out = append(out, n)
		}
	}
	return out
}

// Packages returns the packages the domain was built from.
func (d *Domain) Packages() []*types.Package {
	return slices.Clone(d.pkgs)
}

// Type returns the handle for t. Identical types yield the same handle.
func (d *Domain) Type(t types.Type) domain.Type {
	if t == nil {
		return nil
	}
	t = types.Unalias(t)
	if b, ok := t.(*types.Basic); ok && b.Info()&types.IsUntyped != 0 && b.Kind() != types.UntypedNil {
		t = types.Default(t)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if h, ok := d.handles.At(t).(domain.Type); ok {
		return h
	}
	h := d.newHandle(t)
	d.handles.Set(t, h)
	return h
}

func (d *Domain) newHandle(t types.Type) domain.Type {
	switch x := t.(type) {
	case *types.Basic:
		switch k := basicKind(x); k {
		case domain.KindDeclared:
			return &declaredType{d: d, t: t, elem: &element{
				d:         d,
				kind:      domain.ElementClass,
				simple:    x.Name(),
				qualified: x.Name(),
				t:         t,
			}}
		default:
			if k.IsPrimitive() {
				return &primitiveType{t: t, kind: k}
			}
			return &otherType{t: t, kind: k}
		}

	case *types.Named:
		obj := x.Obj()
		kind := domain.ElementClass
		if types.IsInterface(x) {
			kind = domain.ElementInterface
		}
		return &declaredType{d: d, t: t, elem: &element{
			d:         d,
			kind:      kind,
			simple:    obj.Name(),
			qualified: qualifiedName(obj),
			t:         x.Origin(),
		}}

	case *types.Pointer:
		return &declaredType{d: d, t: t, elem: &element{
			d:         d,
			kind:      domain.ElementClass,
			simple:    types.TypeString(t, shortQualifier),
			qualified: types.TypeString(t, nil),
			t:         t,
		}}

	case *types.Interface:
		simple := types.TypeString(t, shortQualifier)
		if x.Empty() {
			simple = "any"
		}
		return &declaredType{d: d, t: t, elem: &element{
			d:      d,
			kind:   domain.ElementInterface,
			simple: simple,
			t:      t,
		}}

	case *types.Slice:
		return &arrayType{d: d, t: t, component: x.Elem()}

	case *types.Array:
		return &arrayType{d: d, t: t, component: x.Elem()}

	case *types.TypeParam:
		return &typeVar{d: d, tp: x, elem: &typeParamElement{d: d, tp: x}}

	case *types.Union:
		return &otherType{t: t, kind: domain.KindUnion}

	case *types.Signature:
		return &otherType{t: t, kind: domain.KindExecutable}

	default:
		return &otherType{t: t, kind: domain.KindOther}
	}
}

func basicKind(b *types.Basic) domain.Kind {
	switch b.Kind() {
	case types.Bool:
		return domain.KindBoolean
	case types.Int8, types.Uint8:
		return domain.KindByte
	case types.Int16, types.Uint16:
		return domain.KindShort
	case types.Int32, types.Uint32:
		return domain.KindInt
	case types.Int, types.Int64, types.Uint, types.Uint64, types.Uintptr:
		return domain.KindLong
	case types.Float32:
		return domain.KindFloat
	case types.Float64:
		return domain.KindDouble
	case types.String:
		return domain.KindDeclared
	case types.UntypedNil:
		return domain.KindNull
	case types.Invalid:
		return domain.KindError
	default:
		return domain.KindOther
	}
}

func qualifiedName(obj *types.TypeName) string {
	if obj.Pkg() == nil {
		return obj.Name()
	}
	return obj.Pkg().Path() + "." + obj.Name()
}

func shortQualifier(pkg *types.Package) string {
	return pkg.Name()
}

func (d *Domain) goTypes(a, b domain.Type) (types.Type, types.Type, bool) {
	if a == nil || b == nil {
		return nil, nil, false
	}
	ga, ok := GoType(a)
	if !ok {
		return nil, nil, false
	}
	gb, ok := GoType(b)
	if !ok {
		return nil, nil, false
	}
	return ga, gb, true
}

// SameType implements domain.Domain.
func (d *Domain) SameType(a, b domain.Type) bool {
	if a != nil && a == b {
		return true
	}
	ga, gb, ok := d.goTypes(a, b)
	return ok && types.Identical(ga, gb)
}

// Subtype implements domain.Domain. A type is a subtype of itself and of
// every interface it implements. Primitives are subtypes only of
// themselves.
func (d *Domain) Subtype(a, b domain.Type) bool {
	if d.SameType(a, b) {
		return true
	}
	ga, gb, ok := d.goTypes(a, b)
	if !ok || b.Kind() != domain.KindDeclared {
		return false
	}
	if k := a.Kind(); k.IsPrimitive() || k == domain.KindNull || k == domain.KindUnion {
		return false
	}
	iface, ok := gb.Underlying().(*types.Interface)
	return ok && implementable(ga) && types.Implements(ga, iface)
}

// Assignable implements domain.Domain with Go assignability.
func (d *Domain) Assignable(payload, receiver domain.Type) bool {
	if d.Subtype(payload, receiver) {
		return true
	}
	gp, gr, ok := d.goTypes(payload, receiver)
	return ok && types.AssignableTo(gp, gr)
}

// DirectSupertypes implements domain.Domain.
func (d *Domain) DirectSupertypes(t domain.Type) []domain.Type {
	g, ok := GoType(t)
	if !ok || d.TopType(t) {
		return nil
	}
	switch k := t.Kind(); {
	case k.IsPrimitive(), k == domain.KindNull, k == domain.KindError, k == domain.KindUnion:
		return nil
	case k == domain.KindTypeVar:
		return []domain.Type{t.(domain.TypeVariable).UpperBound()}
	}

	var implemented []*types.Named
	if implementable(g) {
		for _, n := range d.interfaces {
			if !types.Identical(g, n) && types.Implements(g, n.Underlying().(*types.Interface)) {
				implemented = append(implemented, n)
			}
		}
	}

	var out []domain.Type
	for _, n := range implemented {
		if !refined(n, implemented) {
			out = append(out, d.Type(n))
		}
	}
	if len(out) == 0 {
		return []domain.Type{d.Type(d.top)}
	}
	return out
}

// refined reports whether some other interface in implemented is strictly
// more specific than n.
func refined(n *types.Named, implemented []*types.Named) bool {
	nIface := n.Underlying().(*types.Interface)
	for _, m := range implemented {
		if m == n {
			continue
		}
		mIface := m.Underlying().(*types.Interface)
		if types.Implements(m, nIface) && !types.Implements(n, mIface) {
			return true
		}
	}
	return false
}

// implementable reports whether go/types can decide whether t implements
// an interface. Uninstantiated generic types cannot.
func implementable(t types.Type) bool {
	if n, ok := t.(*types.Named); ok {
		return n.TypeParams().Len() == 0 || n.TypeArgs().Len() > 0
	}
	return true
}

// RawType implements domain.Domain. Instantiated generic types erase to
// their origin, through pointers, slices and arrays.
func (d *Domain) RawType(t domain.Type) domain.Type {
	g, ok := GoType(t)
	if !ok {
		return t
	}
	if raw := rawType(g); raw != g {
		return d.Type(raw)
	}
	return t
}

func rawType(t types.Type) types.Type {
	switch x := t.(type) {
	case *types.Named:
		if x.TypeArgs().Len() > 0 {
			return x.Origin()
		}
	case *types.Pointer:
		if e := rawType(x.Elem()); e != x.Elem() {
			return types.NewPointer(e)
		}
	case *types.Slice:
		if e := rawType(x.Elem()); e != x.Elem() {
			return types.NewSlice(e)
		}
	case *types.Array:
		if e := rawType(x.Elem()); e != x.Elem() {
			return types.NewArray(e, x.Len())
		}
	}
	return t
}

// TopType implements domain.Domain. Only the unnamed empty interface is
// the top type.
func (d *Domain) TopType(t domain.Type) bool {
	g, ok := GoType(t)
	if !ok {
		return false
	}
	iface, ok := g.(*types.Interface)
	return ok && iface.Empty()
}

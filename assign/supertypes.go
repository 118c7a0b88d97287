package assign

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/hashicorp/go-set/v3"

	"github.com/microbean/microbean-assign/domain"
)

// Types computes supertype closures over a domain.
type Types struct {
	domain domain.Domain
	order  *SpecializationComparator
	log    *slog.Logger
}

// NewTypes returns a Types backed by d.
func NewTypes(d domain.Domain, opts ...Option) (*Types, error) {
	if d == nil {
		return nil, fmt.Errorf("%w: domain", ErrNilArgument)
	}
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	return &Types{
		domain: d,
		order:  &SpecializationComparator{domain: d},
		log:    cfg.log(),
	}, nil
}

// Domain returns the backing domain.
func (ts *Types) Domain() domain.Domain {
	return ts.domain
}

// Supertypes returns every supertype of t, t included.
func (ts *Types) Supertypes(t domain.Type) (SupertypeList, error) {
	return ts.SupertypesFunc(t, nil)
}

// SupertypesFunc returns every supertype of t, t included, that p accepts.
// A nil p accepts everything.
//
// Non-interface types appear first in depth-first discovery order, which
// already runs from most to least specialized. Interface types follow,
// sorted by specialization with erased names breaking ties, because
// interfaces can be extended in any order.
//
// Types are deduplicated by erased name, so a parameterized type and its
// raw form never both appear, and a cyclic supertype graph terminates.
func (ts *Types) SupertypesFunc(t domain.Type, p func(domain.Type) bool) (SupertypeList, error) {
	if t == nil {
		return SupertypeList{}, fmt.Errorf("%w: t", ErrNilArgument)
	}

	var nonInterfaces, interfaces []domain.Type
	seen := set.New[string](13)
	ts.walk(t, p, &nonInterfaces, &interfaces, seen)

	slices.SortStableFunc(interfaces, ts.order.CompareTotal)

	l := newSupertypeList(nonInterfaces, interfaces)
	ts.log.Debug("computed supertypes",
		"type", t.String(),
		"count", l.Len(),
		"interfaceIndex", l.InterfaceIndex())
	return l, nil
}

func (ts *Types) walk(t domain.Type, p func(domain.Type) bool, nonInterfaces, interfaces *[]domain.Type, seen *set.Set[string]) {
	if !seen.Insert(ErasedName(t)) {
		return
	}

	if p == nil || p(t) {
		if isInterface(t) {
			*interfaces = append(*interfaces, t) // reflexive
		} else {
			*nonInterfaces = append(*nonInterfaces, t) // reflexive
		}
	}

	for _, s := range ts.domain.DirectSupertypes(t) {
		ts.walk(s, p, nonInterfaces, interfaces, seen)
	}
}

func isInterface(t domain.Type) bool {
	if t.Kind() != domain.KindDeclared {
		return false
	}
	d, ok := t.(domain.DeclaredType)
	return ok && d.Element() != nil && d.Element().Kind().IsInterface()
}

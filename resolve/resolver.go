package resolve

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/microbean/microbean-assign/assign"
	"github.com/microbean/microbean-assign/attributes"
	"github.com/microbean/microbean-assign/domain"
	"github.com/microbean/microbean-assign/internal/common"
	"github.com/microbean/microbean-assign/qualifier"
	"github.com/microbean/microbean-assign/selectable"
)

// Resolver selects candidates for requirements. It is safe for concurrent
// use if its domain is.
type Resolver struct {
	types      *assign.Types
	matcher    *assign.TypeMatcher
	order      *assign.SpecializationComparator
	candidates []assign.AttributedType
	selection  selectable.Selectable[assign.AttributedType, assign.AttributedType]
	log        *slog.Logger
}

// New returns a Resolver choosing among candidates. The candidates are
// copied.
func New(d domain.Domain, candidates []assign.AttributedType, opts ...Option) (*Resolver, error) {
	if d == nil {
		return nil, fmt.Errorf("%w: domain", assign.ErrNilArgument)
	}
	for i, c := range candidates {
		if c.Type() == nil {
			return nil, fmt.Errorf("candidate %d: %w: type", i, assign.ErrNilArgument)
		}
	}

	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	log := cfg.log()
	types, err := assign.NewTypes(d, assign.WithLogger(log))
	if err != nil {
		return nil, err
	}
	matcher, err := assign.NewTypeMatcher(d)
	if err != nil {
		return nil, err
	}
	order, err := assign.NewSpecializationComparator(d)
	if err != nil {
		return nil, err
	}

	r := &Resolver{
		types:      types,
		matcher:    matcher,
		order:      order,
		candidates: slices.Clone(candidates),
		log:        log,
	}

	eligible := selectable.Filtering(r.candidates, r.eligible)
	ordered := func(required assign.AttributedType) []assign.AttributedType {
		out := eligible(required)
		r.rank(out)
		r.log.Debug("selected candidates",
			"required", required.String(),
			"count", len(out))
		return out
	}

	if cfg.cacheSize > 0 {
		r.selection, err = selectable.CachingLRU(ordered, selectionKey, cfg.cacheSize)
		if err != nil {
			return nil, err
		}
	} else {
		r.selection = selectable.CachingBy(ordered, selectionKey)
	}

	return r, nil
}

// Candidates returns a copy of the candidates.
func (r *Resolver) Candidates() []assign.AttributedType {
	return slices.Clone(r.candidates)
}

// Select returns every candidate eligible for required, most preferred
// first. The result is shared; do not modify it. A zero required selects
// nothing.
func (r *Resolver) Select(required assign.AttributedType) []assign.AttributedType {
	if required.Type() == nil {
		return nil
	}
	return r.selection(required)
}

// Resolve returns the candidate eligible for required that is preferred
// over every other eligible candidate. It returns an error wrapping
// ErrUnsatisfied if there is none, and one wrapping ErrAmbiguous if no
// single candidate is preferred over all the others.
func (r *Resolver) Resolve(required assign.AttributedType) (assign.AttributedType, error) {
	if required.Type() == nil {
		return assign.AttributedType{}, fmt.Errorf("%w: required", assign.ErrNilArgument)
	}
	selected := r.Select(required)
	switch {
	case common.IsEmpty(selected):
		return assign.AttributedType{}, fmt.Errorf("%w: %s", ErrUnsatisfied, required)
	case common.IsSingle(selected):
		return selected[0], nil
	case r.preferred(selected[0], selected[1:]):
		return selected[0], nil
	}

	names := make([]string, len(selected))
	for i, s := range selected {
		names[i] = s.String()
	}
	r.log.Debug("ambiguous requirement",
		"required", required.String(),
		"candidates", names)
	return assign.AttributedType{}, fmt.Errorf("%w: %s matches %s", ErrAmbiguous, required, strings.Join(names, ", "))
}

// TypesOf returns the types a candidate can be assigned as: the supertype
// closure of its type.
func (r *Resolver) TypesOf(candidate assign.AttributedType) (assign.SupertypeList, error) {
	return r.types.Supertypes(candidate.Type())
}

func (r *Resolver) eligible(candidate, required assign.AttributedType) bool {
	if !r.matcher.CovariantlyAssignable(required.Type(), candidate.Type()) {
		return false
	}
	have := candidateQualifiers(candidate)
	return assign.AllMatch(requiredQualifiers(required), func(q *attributes.Attributes) bool {
		return attributes.Contains(have, q)
	})
}

// rank sorts eligible candidates: classes before interfaces, then larger
// supertype closures first, then by erased name. A subtype's closure
// strictly contains its supertype's, so subtypes precede their supertypes
// and unrelated types keep a fixed order whatever the input order.
func (r *Resolver) rank(out []assign.AttributedType) {
	type ranked struct {
		at    assign.AttributedType
		kind  domain.ElementKind
		depth int
		name  string
	}
	rs := make([]ranked, len(out))
	for i, at := range out {
		// Candidate types are non-nil, checked by New.
		l, _ := r.types.Supertypes(at.Type())
		rs[i] = ranked{
			at:    at,
			kind:  elementKind(at.Type()),
			depth: l.Len(),
			name:  assign.ErasedName(at.Type()),
		}
	}
	slices.SortStableFunc(rs, func(a, b ranked) int {
		if c := assign.ClassesThenInterfaces(a.kind, b.kind); c != 0 {
			return c
		}
		if c := cmp.Compare(b.depth, a.depth); c != 0 {
			return c
		}
		return strings.Compare(a.name, b.name)
	})
	for i := range rs {
		out[i] = rs[i].at
	}
}

// preferred reports whether best is strictly preferred over every one of
// others.
func (r *Resolver) preferred(best assign.AttributedType, others []assign.AttributedType) bool {
	return assign.AllMatch(others, func(o assign.AttributedType) bool {
		return r.compare(best, o) < 0
	})
}

// compare orders classes before interfaces and then by specialization.
// Types that are not declared rank with classes. Unrelated types compare
// as 0.
func (r *Resolver) compare(a, b assign.AttributedType) int {
	if c := assign.ClassesThenInterfaces(elementKind(a.Type()), elementKind(b.Type())); c != 0 {
		return c
	}
	return r.order.Compare(a.Type(), b.Type())
}

func elementKind(t domain.Type) domain.ElementKind {
	if d, ok := t.(domain.DeclaredType); ok && d.Element() != nil {
		return d.Element().Kind()
	}
	return domain.ElementClass
}

func requiredQualifiers(required assign.AttributedType) []*attributes.Attributes {
	if q := qualifier.Qualifiers(required.Attributes()); !common.IsEmpty(q) {
		return q
	}
	return qualifier.DefaultQualifiers()
}

func candidateQualifiers(candidate assign.AttributedType) []*attributes.Attributes {
	q := qualifier.Qualifiers(candidate.Attributes())
	switch {
	case common.IsEmpty(q):
		return qualifier.AnyAndDefaultQualifiers()
	case slices.ContainsFunc(q, qualifier.IsAny):
		return q
	default:
		return append(q, qualifier.Any())
	}
}

func selectionKey(required assign.AttributedType) string {
	var sb strings.Builder
	sb.WriteString(required.Type().String())
	for _, q := range requiredQualifiers(required) {
		sb.WriteByte(' ')
		writeKey(&sb, q)
	}
	return sb.String()
}

// writeKey encodes a with its value types and metadata, so attributes
// that print alike but are not equal get different keys.
func writeKey(sb *strings.Builder, a *attributes.Attributes) {
	fmt.Fprintf(sb, "@%s%#v", a.Name(), a.Values())
	if !a.HasMetadata() {
		return
	}
	sb.WriteByte('[')
	for i, m := range a.Metadata() {
		if i > 0 {
			sb.WriteByte(',')
		}
		writeKey(sb, m)
	}
	sb.WriteByte(']')
}

package assign

import (
	"fmt"
)

// Assignment is a resolved value that belongs to its assignee. The value is
// held, never re-derived.
type Assignment[R any] struct {
	assignee AttributedElement
	value    R
}

// NewAssignment returns an Assignment of value to assignee.
func NewAssignment[R any](assignee AttributedElement, value R) (Assignment[R], error) {
	if assignee.elem == nil {
		return Assignment[R]{}, fmt.Errorf("%w: assignee", ErrNilArgument)
	}
	return Assignment[R]{assignee: assignee, value: value}, nil
}

// Assignee returns the element the value is assigned to.
func (a Assignment[R]) Assignee() AttributedElement {
	return a.assignee
}

// Value returns the assigned value.
func (a Assignment[R]) Value() R {
	return a.value
}

// Aggregate is anything with dependencies.
type Aggregate interface {
	// Dependencies returns the dependencies in order. Implementations
	// return a fresh or immutable slice.
	Dependencies() []AttributedElement
}

// NoDependencies is an Aggregate without dependencies. Embed it to get the
// default.
type NoDependencies struct{}

// Dependencies returns nil.
func (NoDependencies) Dependencies() []AttributedElement {
	return nil
}

// Assign resolves every dependency of a with r, in dependency order, and
// returns one Assignment per distinct dependency. If a has no dependencies
// r is never called and the result is nil.
func Assign[R any](a Aggregate, r func(AttributedType) (R, error)) ([]Assignment[R], error) {
	if a == nil {
		return nil, fmt.Errorf("%w: aggregate", ErrNilArgument)
	}
	deps := a.Dependencies()
	if len(deps) == 0 {
		return nil, nil
	}
	if r == nil {
		return nil, fmt.Errorf("%w: resolver", ErrNilArgument)
	}

	out := make([]Assignment[R], 0, len(deps))
	for i, d := range deps {
		if duplicateDependency(deps[:i], d) {
			continue
		}
		at, err := d.AttributedType()
		if err != nil {
			return nil, fmt.Errorf("dependency %s: %w", d, err)
		}
		v, err := r(at)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve dependency %s: %w", d, err)
		}
		out = append(out, Assignment[R]{assignee: d, value: v})
	}
	return out, nil
}

func duplicateDependency(prior []AttributedElement, d AttributedElement) bool {
	for _, p := range prior {
		if p.elem == d.elem && attributesEqual(p.attrs, d.attrs) {
			return true
		}
	}
	return false
}

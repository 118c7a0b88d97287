package assign

import (
	"fmt"
	"strings"

	"github.com/microbean/microbean-assign/domain"
)

// SpecializationComparator orders types from most to least specialized.
//
// Compare is a partial order and is not consistent with equality: two
// unrelated types compare as 0. Do not use it where a strict total order is
// required; CompareTotal exists for that.
type SpecializationComparator struct {
	domain domain.Domain
}

// NewSpecializationComparator returns a comparator backed by d.
func NewSpecializationComparator(d domain.Domain) (*SpecializationComparator, error) {
	if d == nil {
		return nil, fmt.Errorf("%w: domain", ErrNilArgument)
	}
	return &SpecializationComparator{domain: d}, nil
}

// Compare returns a negative number when t is a proper subtype of s, a
// positive number when s is a proper subtype of t, and 0 otherwise. A nil
// argument sorts after any non-nil one.
func (c *SpecializationComparator) Compare(t, s domain.Type) int {
	r, _ := c.compare(t, s)
	return r
}

// CompareTotal is Compare with unrelated types ordered by their erased
// names, which makes sorting with it deterministic.
func (c *SpecializationComparator) CompareTotal(t, s domain.Type) int {
	if r, related := c.compare(t, s); related {
		return r
	}
	return strings.Compare(ErasedName(t), ErasedName(s))
}

func (c *SpecializationComparator) compare(t, s domain.Type) (int, bool) {
	switch {
	case t == s:
		return 0, true
	case t == nil:
		return 1, true // nils last
	case s == nil:
		return -1, true
	case c.domain.SameType(t, s):
		return 0, true
	case c.domain.Subtype(t, s):
		return -1, true
	case c.domain.Subtype(s, t):
		return 1, true
	default:
		return 0, false
	}
}

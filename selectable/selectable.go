// Package selectable provides memoizable selections: functions from
// criteria to the elements they select.
package selectable

import (
	"fmt"
	"slices"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

// Selectable selects the elements matching criteria.
//
// A Selectable must be a pure function of its criteria: the same criteria
// always select the same elements. Callers must not modify the returned
// slice; caching wrappers hand the same slice to every caller.
type Selectable[C, E any] func(criteria C) []E

// Select calls s.
func (s Selectable[C, E]) Select(criteria C) []E {
	return s(criteria)
}

// Empty returns a Selectable that selects nothing.
func Empty[C, E any]() Selectable[C, E] {
	return func(C) []E { return nil }
}

// Filtering returns a Selectable that selects the elements of collection
// accepted by p, in collection order. The collection is copied. An empty
// collection yields Empty.
func Filtering[C, E any](collection []E, p func(e E, criteria C) bool) Selectable[C, E] {
	if p == nil {
		panic("selectable: nil predicate")
	}
	if len(collection) == 0 {
		return Empty[C, E]()
	}
	elements := slices.Clone(collection)
	return func(c C) []E {
		var out []E
		for _, e := range elements {
			if p(e, c) {
				out = append(out, e)
			}
		}
		return slices.Clip(out)
	}
}

// CachingWith returns a Selectable that delegates each selection to
// computeIfAbsent, which must return the cached selection for the criteria
// or compute, cache and return it using the supplied function.
func CachingWith[C, E any](s Selectable[C, E], computeIfAbsent func(C, func(C) []E) []E) Selectable[C, E] {
	return func(c C) []E {
		return computeIfAbsent(c, s)
	}
}

// Caching returns a Selectable that memoizes s in an unbounded concurrent
// map keyed by criteria. Concurrent first selections of the same criteria
// may each call s; all of them observe the same cached result.
func Caching[C comparable, E any](s Selectable[C, E]) Selectable[C, E] {
	var cache sync.Map
	return CachingWith(s, func(c C, f func(C) []E) []E {
		if v, ok := cache.Load(c); ok {
			return v.([]E)
		}
		v, _ := cache.LoadOrStore(c, f(c))
		return v.([]E)
	})
}

// CachingBy returns a Selectable that memoizes s in an unbounded concurrent
// map under key(criteria). Concurrent first selections of the same key
// call s exactly once and share its result.
func CachingBy[C, E any](s Selectable[C, E], key func(C) string) Selectable[C, E] {
	var (
		cache sync.Map
		group singleflight.Group
	)
	return CachingWith(s, func(c C, f func(C) []E) []E {
		k := key(c)
		if v, ok := cache.Load(k); ok {
			return v.([]E)
		}
		v, _, _ := group.Do(k, func() (any, error) {
			if v, ok := cache.Load(k); ok {
				return v, nil
			}
			r := f(c)
			cache.Store(k, r)
			return r, nil
		})
		return v.([]E)
	})
}

// CachingLRU returns a Selectable that memoizes at most size selections of
// s under key(criteria), evicting the least recently used.
func CachingLRU[C any, K comparable, E any](s Selectable[C, E], key func(C) K, size int) (Selectable[C, E], error) {
	cache, err := lru.New[K, []E](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create selection cache: %w", err)
	}
	return CachingWith(s, func(c C, f func(C) []E) []E {
		k := key(c)
		if v, ok := cache.Get(k); ok {
			return v
		}
		v := f(c)
		cache.Add(k, v)
		return v
	}), nil
}

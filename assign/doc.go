// Package assign is the type-matching core of a typesafe dependency
// resolution container.
//
// It composes the answers of a domain.Domain into higher level algorithms:
//   - Types: the deduplicated, ordered closure of a type's supertypes
//   - SpecializationComparator: a partial order from most to least specialized
//   - TypeMatcher: covariant assignability, identity, raw types and
//     unbounded type variable detection
//   - AttributedType, AttributedElement: types and declarations paired
//     with their attributes
//   - Assignment, Aggregate: resolved values for an object's dependencies
package assign

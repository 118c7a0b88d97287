// Package nominal is an in-memory nominal type system that implements
// domain.Domain.
//
// It models classes, interfaces, arrays, primitives, type variables,
// wildcards and intersections with single-inheritance class hierarchies,
// the shape of a JVM type system. It serves as the reference oracle for
// tests and examples of the matching core.
//
// Key types:
//   - Universe: declares type elements and implements domain.Domain
//   - TypeElement: a class or interface declaration
//   - Declared, Array, Primitive, TypeVar, Wildcard, Intersection: types
//   - Standard: a Universe pre-populated with common library types
package nominal

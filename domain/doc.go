// Package domain declares the type oracle that the matching core is layered on.
//
// The core never constructs types and never reimplements subtyping rules. It
// asks a Domain elementary questions and composes the answers.
//
// Key types:
//   - Type: an opaque handle with a Kind
//   - DeclaredType, ArrayType, TypeVariable, IntersectionType, WildcardType: kind refinements
//   - Element, QualifiedNameable: the declaration behind a declared type or type variable
//   - Domain: SameType, Subtype, Assignable, DirectSupertypes, RawType, TopType
package domain

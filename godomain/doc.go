// Package godomain implements domain.Domain over go/types.
//
// Go has no class hierarchy, so the domain models one:
//
//   - numeric and boolean basic types are primitives with no supertypes
//   - named types, pointers, string and interfaces are declared types
//   - slices and arrays are array types
//   - type parameters are type variables bounded by their constraints
//   - the empty interface is the top type
//
// The direct supertypes of a declared type are the most specific
// interfaces, among those declared in the loaded packages plus error, that
// it implements; the top type when there are none. Subtyping is
// implementation of an interface. Assignability is Go assignability.
//
// Handles are interned: every type identical to another yields the same
// domain.Type value.
//
// Key functions:
//   - Load: load packages with golang.org/x/tools/go/packages
//   - New: build a Domain over already type-checked packages
//   - Domain.Lookup: find a type by qualified name
//   - Domain.Type / GoType: convert between go/types and domain types
package godomain

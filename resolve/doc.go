// Package resolve matches a required attributed type against a fixed set of
// candidate attributed types.
//
// A candidate is eligible when its type is covariantly assignable to the
// required type and its qualifiers include every required qualifier.
// Requirements without qualifiers require Default; candidates without
// qualifiers carry Default; every candidate carries Any.
//
// # Ordering
//
// Eligible candidates are ordered classes before interfaces, then from most
// to least specialized. Resolve picks the first one, or fails with
// ErrAmbiguous when the first two are not ordered.
//
// # Candidate files
//
//	candidates:
//	  - type: java.lang.String
//	    qualifiers:
//	      - Default
//	      - name: Named
//	        values:
//	          value: primary
//	  - type: java.lang.Integer
//
// Type names are bound to domain types by a TypeLookup.
//
// # Key functions
//
//   - New: builds a Resolver over a domain and candidates
//   - Resolver.Select: all eligible candidates, in order
//   - Resolver.Resolve: the single best candidate
//   - ParseCandidates / LoadCandidates: read a candidate file
//   - CandidateFile.Bind: turn a candidate file into attributed types
package resolve

// Package closed checks closed sum types.
//
// A closed type is an abstract base type whose legal variants
// are exactly its direct subtypes declared alongside it.
// The base is marked closed by its author,
// and the checks in this package verify that
//
//   - the base cannot be instantiated directly,
//   - every variant is declared in the same file as its base,
//   - every dispatch on a value of the base type either has a fallback arm
//     or tests every variant.
//
// The checks are written against the Symbol interface
// so that they do not depend on any particular front end.
// Package gosym provides Symbols for Go types,
// where a closed base is an interface carrying a //closed:union directive.
package closed

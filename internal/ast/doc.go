// Package ast is the compiler's central type-and-node arena: a per
// compilation Context that owns all type and AST memory and guarantees that
// structurally identical types share one canonical node.
//
// # Ownership
//
// Everything the context mints lives in its arena and stays valid, at a
// stable address, until Context.Release. There is no per-node teardown; the
// only individually released resources are protocol conformance records,
// which own heap state outside the arena.
//
// # Interning
//
// Each type family has a factory (TupleOf, FunctionOf, NominalFor, ...)
// that consults a per-family table keyed on the family's structural
// identity. A hit returns the existing pointer; a miss allocates, computes
// the derived flags and inserts. Two families opt out by design: tuples
// whose elements carry default-value expressions, and polymorphic function
// types, whose identity is tied to a caller-owned generic parameter list.
//
// # Canonicality
//
// A node is canonical when every immediate constituent is canonical; sugar
// forms (paren, slice, substituted, written reference paths) never are.
// Canonical-only operations, such as the substitution registry, treat a
// non-canonical argument as a caller bug and panic.
//
// # Concurrency
//
// A context is confined to one goroutine for its whole lifetime. Distinct
// contexts are fully independent and may be used in parallel.
package ast

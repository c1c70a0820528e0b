package ast

import "keel/internal/arena"

// TupleElem is one element of a tuple type request.
type TupleElem struct {
	// Type may be nil while an element is still being resolved; such tuples
	// are never canonical.
	Type Type
	Name Identifier
	// Default, when non-nil, identifies the element's default-value
	// expression. Default expressions are not part of the structural key,
	// so tuples carrying one bypass the interning table entirely.
	Default *ExprHandle
	// VarargBase, when non-nil, marks the element as variadic with the
	// given base type.
	VarargBase Type
}

// HasName reports whether the element is labeled.
func (e TupleElem) HasName() bool { return e.Name.IsValid() }

// HasDefault reports whether the element carries a default expression.
func (e TupleElem) HasDefault() bool { return e.Default != nil }

// IsVararg reports whether the element is variadic.
func (e TupleElem) IsVararg() bool { return e.VarargBase != nil }

// TupleType is an ordered sequence of optionally labeled elements.
type TupleType struct {
	typeBase
	elems []TupleElem
}

// Elems returns the context-owned element slice. Callers must not mutate it.
func (t *TupleType) Elems() []TupleElem { return t.elems }

// ParenType is the sugared "(T)" wrapper. It is never canonical; its
// canonical meaning is the underlying type itself.
type ParenType struct {
	typeBase
	underlying Type
}

// Underlying returns the wrapped type.
func (t *ParenType) Underlying() Type { return t.underlying }

// ParenOf returns the unique paren wrapper for underlying.
func (c *Context) ParenOf(underlying Type) *ParenType {
	if entry, ok := c.parens[underlying]; ok {
		return entry
	}
	t := arena.Alloc[ParenType](c.arena)
	t.typeBase = c.newBase(KindParen, false, hasTypeVar(underlying), isUnresolved(underlying))
	t.underlying = underlying
	c.parens[underlying] = t
	return t
}

func tupleKey(elems []TupleElem) string {
	var f fingerprint
	f.addUint(uint64(len(elems)))
	for _, e := range elems {
		f.addType(e.Type)
		f.addUint(uint64(e.Name))
		f.addBool(e.HasDefault())
		f.addType(e.VarargBase)
	}
	return f.key()
}

// TupleOf returns the tuple type with the given elements.
//
// Two requests collapse: a single unnamed, non-variadic element yields the
// paren wrapper of its type rather than a one-element tuple, and any
// element with a default expression forces a fresh node outside the
// structural table, so distinct defaults stay distinguishable downstream.
func (c *Context) TupleOf(elems []TupleElem) Type {
	if len(elems) == 1 && !elems[0].IsVararg() && !elems[0].HasName() {
		return c.ParenOf(elems[0].Type)
	}

	hasDefaults := false
	hasVar := false
	for _, e := range elems {
		if e.HasDefault() {
			hasDefaults = true
			if hasVar {
				break
			}
		}
		if hasTypeVar(e.Type) {
			hasVar = true
			if hasDefaults {
				break
			}
		}
	}

	var key string
	if !hasDefaults {
		key = tupleKey(elems)
		if entry, ok := c.tuples[key]; ok {
			return entry
		}
	}

	canonical := true
	unresolved := false
	for _, e := range elems {
		if !canonicalOrNil(e.Type) {
			canonical = false
		}
		if isUnresolved(e.Type) {
			unresolved = true
		}
	}

	t := arena.Alloc[TupleType](c.arena)
	t.typeBase = c.newBase(KindTuple, canonical, hasVar, unresolved)
	t.elems = arena.Copy(c.arena, elems)
	if !hasDefaults {
		c.tuples[key] = t
	}
	return t
}

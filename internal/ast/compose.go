package ast

import "keel/internal/arena"

// ProtocolCompositionType is a conjunction of protocol types. The member
// sequence is kept as given; the structural key does not reorder it.
type ProtocolCompositionType struct {
	typeBase
	protocols []Type
}

// Protocols returns the context-owned member slice. Callers must not
// mutate it.
func (t *ProtocolCompositionType) Protocols() []Type { return t.protocols }

// CompositionOf returns the unique composition of the given protocol
// types. The empty composition is the "any value" type.
func (c *Context) CompositionOf(protocols []Type) *ProtocolCompositionType {
	var f fingerprint
	f.addUint(uint64(len(protocols)))
	for _, p := range protocols {
		f.addType(p)
	}
	key := f.key()
	if entry, ok := c.compositions[key]; ok {
		return entry
	}

	canonical := true
	hasVar := false
	unresolved := false
	for _, p := range protocols {
		if !canonicalOrNil(p) {
			canonical = false
		}
		if hasTypeVar(p) {
			hasVar = true
		}
		if isUnresolved(p) {
			unresolved = true
		}
	}

	t := arena.Alloc[ProtocolCompositionType](c.arena)
	t.typeBase = c.newBase(KindProtocolComposition, canonical, hasVar, unresolved)
	t.protocols = arena.Copy(c.arena, protocols)
	c.compositions[key] = t
	return t
}

// RefPathComponent is one dotted segment of a written type reference,
// before name resolution substitutes the real type.
type RefPathComponent struct {
	Name Identifier
	// Args carries explicit generic arguments written on the segment.
	Args []Type
	// Resolved is filled by name resolution; nil until then.
	Resolved Type
}

// ReferencePathType is written type syntax ("a.b.C<T>") kept as data. It is
// sugar: never canonical, never interned, each request allocates fresh
// storage tied to that written occurrence.
type ReferencePathType struct {
	typeBase
	components []RefPathComponent
}

// Components returns the context-owned component slice.
func (t *ReferencePathType) Components() []RefPathComponent { return t.components }

// ReferencePathOf allocates a written-reference type over the given
// components. At least one component is required.
func (c *Context) ReferencePathOf(components []RefPathComponent) *ReferencePathType {
	if len(components) == 0 {
		panic("ast: empty reference path")
	}
	t := arena.Alloc[ReferencePathType](c.arena)
	t.typeBase = c.newBase(KindReferencePath, false, false, false)
	t.components = arena.Copy(c.arena, components)
	for i := range t.components {
		t.components[i].Args = arena.Copy(c.arena, t.components[i].Args)
	}
	return t
}

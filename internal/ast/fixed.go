package ast

import "keel/internal/arena"

// MetaType is the type of a type value, interned on the instance type.
type MetaType struct {
	typeBase
	instance Type
}

// Instance returns the type this metatype describes.
func (t *MetaType) Instance() Type { return t.instance }

// MetaOf returns the unique metatype for instance.
func (c *Context) MetaOf(instance Type) *MetaType {
	if entry, ok := c.metas[instance]; ok {
		return entry
	}
	t := arena.Alloc[MetaType](c.arena)
	t.typeBase = c.newBase(KindMeta, canonicalOrNil(instance), hasTypeVar(instance), isUnresolved(instance))
	t.instance = instance
	c.metas[instance] = t
	return t
}

// ModuleType is the type of a module reference, interned on module
// identity.
type ModuleType struct {
	typeBase
	module *Module
}

// Module returns the module token.
func (t *ModuleType) Module() *Module { return t.module }

// ModuleTypeOf returns the unique module type for m.
func (c *Context) ModuleTypeOf(m *Module) *ModuleType {
	if entry, ok := c.modules[m]; ok {
		return entry
	}
	t := arena.Alloc[ModuleType](c.arena)
	t.typeBase = c.newBase(KindModule, true, false, false)
	t.module = m
	c.modules[m] = t
	return t
}

// Qual is the qualifier bitset of a reference type. Bits participate in the
// interning key, so differently qualified references are distinct types.
type Qual uint8

const (
	// QualImplicit marks references materialized by the compiler rather
	// than written in source.
	QualImplicit Qual = 1 << iota
	// QualNonSettable marks references that cannot be assigned through.
	QualNonSettable
)

// Has reports whether every bit of q2 is set in q.
func (q Qual) Has(q2 Qual) bool { return q&q2 == q2 }

// ReferenceType is a qualified reference to a storage location.
type ReferenceType struct {
	typeBase
	object Type
	quals  Qual
}

// Object returns the referenced type.
func (t *ReferenceType) Object() Type { return t.object }

// Quals returns the qualifier bits.
func (t *ReferenceType) Quals() Qual { return t.quals }

type referenceKey struct {
	object Type
	quals  Qual
}

// ReferenceOf returns the unique reference type for (object, quals).
func (c *Context) ReferenceOf(object Type, quals Qual) *ReferenceType {
	key := referenceKey{object: object, quals: quals}
	if entry, ok := c.references[key]; ok {
		return entry
	}
	t := arena.Alloc[ReferenceType](c.arena)
	t.typeBase = c.newBase(KindReference, canonicalOrNil(object), hasTypeVar(object), isUnresolved(object))
	t.object = object
	t.quals = quals
	c.references[key] = t
	return t
}

// SubstitutedType remembers that original was replaced by replacement
// during specialization. It is sugar over the replacement and therefore
// never canonical.
type SubstitutedType struct {
	typeBase
	original    Type
	replacement Type
}

// Original returns the type before substitution.
func (t *SubstitutedType) Original() Type { return t.original }

// Replacement returns the substituted type.
func (t *SubstitutedType) Replacement() Type { return t.replacement }

type substitutedKey struct {
	original    Type
	replacement Type
}

// SubstitutedOf returns the unique substituted wrapper for
// (original, replacement).
func (c *Context) SubstitutedOf(original, replacement Type) *SubstitutedType {
	key := substitutedKey{original: original, replacement: replacement}
	if entry, ok := c.substituted[key]; ok {
		return entry
	}
	t := arena.Alloc[SubstitutedType](c.arena)
	t.typeBase = c.newBase(KindSubstituted, false, hasTypeVar(replacement), isUnresolved(replacement))
	t.original = original
	t.replacement = replacement
	c.substituted[key] = t
	return t
}

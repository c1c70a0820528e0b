package ast

import (
	"fmt"

	"keel/internal/arena"
)

// NominalType names a declaration, optionally nested inside a parent type.
// Its Kind mirrors the declaration kind: union, struct, class or protocol.
type NominalType struct {
	typeBase
	decl   *NominalDecl
	parent Type
}

// Decl returns the declaration the type names.
func (t *NominalType) Decl() *NominalDecl { return t.decl }

// Parent returns the enclosing type, nil at top level.
func (t *NominalType) Parent() Type { return t.parent }

type nominalKey struct {
	decl   *NominalDecl
	parent Type
}

func (c *Context) nominalFor(table map[nominalKey]*NominalType, kind Kind, decl *NominalDecl, parent Type) *NominalType {
	key := nominalKey{decl: decl, parent: parent}
	if entry, ok := table[key]; ok {
		return entry
	}
	t := arena.Alloc[NominalType](c.arena)
	t.typeBase = c.newBase(kind,
		parent == nil || parent.IsCanonical(),
		hasTypeVar(parent),
		isUnresolved(parent))
	t.decl = decl
	t.parent = parent
	table[key] = t
	return t
}

// UnionFor returns the unique union type for (decl, parent).
func (c *Context) UnionFor(decl *NominalDecl, parent Type) *NominalType {
	if decl.Kind() != DeclUnion {
		panic(fmt.Sprintf("ast: union type over a %s declaration", decl.Kind()))
	}
	return c.nominalFor(c.unions, KindUnion, decl, parent)
}

// StructFor returns the unique struct type for (decl, parent).
func (c *Context) StructFor(decl *NominalDecl, parent Type) *NominalType {
	if decl.Kind() != DeclStruct {
		panic(fmt.Sprintf("ast: struct type over a %s declaration", decl.Kind()))
	}
	return c.nominalFor(c.structs, KindStruct, decl, parent)
}

// ClassFor returns the unique class type for (decl, parent).
func (c *Context) ClassFor(decl *NominalDecl, parent Type) *NominalType {
	if decl.Kind() != DeclClass {
		panic(fmt.Sprintf("ast: class type over a %s declaration", decl.Kind()))
	}
	return c.nominalFor(c.classes, KindClass, decl, parent)
}

// newProtocolType mints the declaration-time type of a protocol. Protocol
// types have no parent and are always canonical; they live on the
// declaration, not in an interning table.
func (c *Context) newProtocolType(decl *NominalDecl) *NominalType {
	t := arena.Alloc[NominalType](c.arena)
	t.typeBase = c.newBase(KindProtocol, true, false, false)
	t.decl = decl
	return t
}

// NominalFor routes a declaration to its type family. Protocol declarations
// return their declaration-time type rather than constructing anything.
func (c *Context) NominalFor(decl *NominalDecl, parent Type) *NominalType {
	switch decl.Kind() {
	case DeclUnion:
		return c.UnionFor(decl, parent)
	case DeclStruct:
		return c.StructFor(decl, parent)
	case DeclClass:
		return c.ClassFor(decl, parent)
	case DeclProtocol:
		t, ok := decl.DeclaredType().(*NominalType)
		if !ok || t == nil {
			panic("ast: protocol declaration without a declared type")
		}
		return t
	default:
		panic(fmt.Sprintf("ast: not a nominal declaration kind: %s", decl.Kind()))
	}
}

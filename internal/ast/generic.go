package ast

import (
	"fmt"

	"keel/internal/arena"
)

// UnboundGenericType names a generic declaration before any type arguments
// are applied.
type UnboundGenericType struct {
	typeBase
	decl   *NominalDecl
	parent Type
}

// Decl returns the generic declaration.
func (t *UnboundGenericType) Decl() *NominalDecl { return t.decl }

// Parent returns the enclosing type, nil at top level.
func (t *UnboundGenericType) Parent() Type { return t.parent }

// UnboundGenericFor returns the unique unbound generic type for
// (decl, parent).
func (c *Context) UnboundGenericFor(decl *NominalDecl, parent Type) *UnboundGenericType {
	if !decl.IsGeneric() {
		panic(fmt.Sprintf("ast: unbound generic over non-generic %s declaration", decl.Kind()))
	}
	key := nominalKey{decl: decl, parent: parent}
	if entry, ok := c.unbound[key]; ok {
		return entry
	}
	t := arena.Alloc[UnboundGenericType](c.arena)
	t.typeBase = c.newBase(KindUnboundGeneric,
		parent == nil || parent.IsCanonical(),
		hasTypeVar(parent),
		isUnresolved(parent))
	t.decl = decl
	t.parent = parent
	c.unbound[key] = t
	return t
}

// BoundGenericType applies concrete type arguments to a generic union,
// struct or class declaration. Its Kind is one of the three bound variants,
// chosen by the declaration kind.
type BoundGenericType struct {
	typeBase
	decl   *NominalDecl
	parent Type
	args   []Type
}

// Decl returns the generic declaration.
func (t *BoundGenericType) Decl() *NominalDecl { return t.decl }

// Parent returns the enclosing type, nil at top level.
func (t *BoundGenericType) Parent() Type { return t.parent }

// Args returns the context-owned argument slice. Callers must not mutate
// it.
func (t *BoundGenericType) Args() []Type { return t.args }

type boundKey struct {
	decl   *NominalDecl
	parent Type
	args   string
}

func boundArgsKey(args []Type) string {
	var f fingerprint
	f.addUint(uint64(len(args)))
	for _, a := range args {
		f.addType(a)
	}
	return f.key()
}

func boundKindFor(decl *NominalDecl) Kind {
	switch decl.Kind() {
	case DeclUnion:
		return KindBoundGenericUnion
	case DeclStruct:
		return KindBoundGenericStruct
	case DeclClass:
		return KindBoundGenericClass
	default:
		panic(fmt.Sprintf("ast: cannot bind a %s declaration", decl.Kind()))
	}
}

// BoundGenericFor returns the unique bound generic type for
// (decl, parent, args).
func (c *Context) BoundGenericFor(decl *NominalDecl, parent Type, args []Type) *BoundGenericType {
	kind := boundKindFor(decl)
	if !decl.IsGeneric() {
		panic(fmt.Sprintf("ast: binding non-generic %s declaration", decl.Kind()))
	}
	key := boundKey{decl: decl, parent: parent, args: boundArgsKey(args)}
	if entry, ok := c.bound[key]; ok {
		return entry
	}

	canonical := parent == nil || parent.IsCanonical()
	hasVar := hasTypeVar(parent)
	unresolved := isUnresolved(parent)
	for _, a := range args {
		if !canonicalOrNil(a) {
			canonical = false
		}
		if hasTypeVar(a) {
			hasVar = true
		}
		if isUnresolved(a) {
			unresolved = true
		}
	}

	t := arena.Alloc[BoundGenericType](c.arena)
	t.typeBase = c.newBase(kind, canonical, hasVar, unresolved)
	t.decl = decl
	t.parent = parent
	t.args = arena.Copy(c.arena, args)
	c.bound[key] = t
	return t
}

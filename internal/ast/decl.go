package ast

import (
	"fmt"

	"keel/internal/arena"
)

// DeclKind tags a nominal declaration. The set is closed; type factories
// dispatch over it exhaustively.
type DeclKind uint8

const (
	// DeclUnion is a sum-type declaration.
	DeclUnion DeclKind = iota
	DeclStruct
	DeclClass
	DeclProtocol
)

func (k DeclKind) String() string {
	switch k {
	case DeclUnion:
		return "union"
	case DeclStruct:
		return "struct"
	case DeclClass:
		return "class"
	case DeclProtocol:
		return "protocol"
	default:
		return fmt.Sprintf("DeclKind(%d)", uint8(k))
	}
}

// NominalDecl is the identity token behind nominal and generic types. The
// context treats it as opaque: declaration checking happens elsewhere, the
// type tables only care about its pointer identity and kind.
type NominalDecl struct {
	kind    DeclKind
	name    Identifier
	uid     uint32
	generic *GenericParamList // nil for non-generic declarations

	// declared caches the declaration-time type. For protocols it is built
	// eagerly, because a protocol's type is defined at declaration, not on
	// demand.
	declared Type
}

// Kind returns the declaration kind.
func (d *NominalDecl) Kind() DeclKind { return d.kind }

// Name returns the declared name handle.
func (d *NominalDecl) Name() Identifier { return d.name }

// GenericParams returns the declaration's generic parameter list, nil when
// the declaration is not generic.
func (d *NominalDecl) GenericParams() *GenericParamList { return d.generic }

// IsGeneric reports whether the declaration carries generic parameters.
func (d *NominalDecl) IsGeneric() bool { return d.generic != nil }

// DeclaredType returns the declaration-time type, nil if none was recorded.
func (d *NominalDecl) DeclaredType() Type { return d.declared }

// NewNominalDecl allocates a declaration token in the context arena. A
// protocol declaration gets its ProtocolType minted immediately.
func (c *Context) NewNominalDecl(kind DeclKind, name Identifier, generic *GenericParamList) *NominalDecl {
	if kind == DeclProtocol && generic != nil {
		panic("ast: protocol declarations cannot be generic")
	}
	d := arena.Alloc[NominalDecl](c.arena)
	d.kind = kind
	d.name = name
	d.uid = c.takeUID()
	d.generic = generic
	if kind == DeclProtocol {
		d.declared = c.newProtocolType(d)
	}
	return d
}

// GenericParam is one generic parameter of a declaration or a polymorphic
// function signature.
type GenericParam struct {
	Name Identifier
}

// GenericParamList is owned by its declaration, not deduplicated by the
// context. Polymorphic function types key their identity on this pointer.
type GenericParamList struct {
	Params []GenericParam
}

// NewGenericParamList copies params into arena-owned storage.
func (c *Context) NewGenericParamList(params []GenericParam) *GenericParamList {
	l := arena.Alloc[GenericParamList](c.arena)
	l.Params = arena.Copy(c.arena, params)
	return l
}

// Module is the identity token behind module types.
type Module struct {
	name Identifier
	uid  uint32
}

// Name returns the module name handle.
func (m *Module) Name() Identifier { return m.name }

// NewModule allocates a module token in the context arena.
func (c *Context) NewModule(name Identifier) *Module {
	m := arena.Alloc[Module](c.arena)
	m.name = name
	m.uid = c.takeUID()
	return m
}

// ExprHandle boxes a default-value expression so tuple elements can refer to
// it by identity. The context never looks inside.
type ExprHandle struct {
	Value any
}

// NewExprHandle allocates an expression box in the context arena.
func (c *Context) NewExprHandle(value any) *ExprHandle {
	h := arena.Alloc[ExprHandle](c.arena)
	h.Value = value
	return h
}

package ast

import "testing"

func (c *Context) testGenericDecl(kind DeclKind, name string) *NominalDecl {
	params := c.NewGenericParamList([]GenericParam{{Name: c.Intern("T")}})
	return c.NewNominalDecl(kind, c.Intern(name), params)
}

func TestNominalDispatch(t *testing.T) {
	c := newTestContext()
	union := c.NewNominalDecl(DeclUnion, c.Intern("Option"), nil)
	strct := c.NewNominalDecl(DeclStruct, c.Intern("Point"), nil)
	class := c.NewNominalDecl(DeclClass, c.Intern("Window"), nil)

	if c.NominalFor(union, nil).Kind() != KindUnion {
		t.Fatalf("union declaration must route to the union family")
	}
	if c.NominalFor(strct, nil).Kind() != KindStruct {
		t.Fatalf("struct declaration must route to the struct family")
	}
	if c.NominalFor(class, nil).Kind() != KindClass {
		t.Fatalf("class declaration must route to the class family")
	}

	if c.NominalFor(strct, nil) != c.StructFor(strct, nil) {
		t.Fatalf("dispatch and the direct factory must agree")
	}
	if c.StructFor(strct, nil) == c.StructFor(c.NewNominalDecl(DeclStruct, c.Intern("Point"), nil), nil) {
		t.Fatalf("declaration identity, not name, keys nominal types")
	}
}

func TestProtocolTypeDefinedAtDeclaration(t *testing.T) {
	c := newTestContext()
	proto := c.NewNominalDecl(DeclProtocol, c.Intern("Printable"), nil)
	declared := proto.DeclaredType()
	if declared == nil || declared.Kind() != KindProtocol {
		t.Fatalf("protocol declaration must carry its type from creation")
	}
	if c.NominalFor(proto, nil) != declared {
		t.Fatalf("dispatch must return the declaration-time type, not a new node")
	}
	if !declared.IsCanonical() {
		t.Fatalf("protocol types are canonical")
	}
}

func TestNominalParentInKey(t *testing.T) {
	c := newTestContext()
	outer := c.NominalFor(c.NewNominalDecl(DeclStruct, c.Intern("Outer"), nil), nil)
	inner := c.NewNominalDecl(DeclStruct, c.Intern("Inner"), nil)
	nested := c.StructFor(inner, outer)
	if nested == c.StructFor(inner, nil) {
		t.Fatalf("parent is part of the structural key")
	}
	if nested != c.StructFor(inner, outer) {
		t.Fatalf("equal (decl, parent) must share one node")
	}
	if !nested.IsCanonical() {
		t.Fatalf("canonical parent must keep the nested type canonical")
	}
	sugarParent := c.ParenOf(outer)
	if c.StructFor(inner, sugarParent).IsCanonical() {
		t.Fatalf("a non-canonical parent must poison the nested type")
	}
}

func TestUnboundGeneric(t *testing.T) {
	c := newTestContext()
	decl := c.testGenericDecl(DeclStruct, "Box")
	u1 := c.UnboundGenericFor(decl, nil)
	u2 := c.UnboundGenericFor(decl, nil)
	if u1 != u2 {
		t.Fatalf("equal (decl, parent) must share one node")
	}
	mustPanic(t, "unbound generic over a non-generic declaration", func() {
		c.UnboundGenericFor(c.NewNominalDecl(DeclStruct, c.Intern("Plain"), nil), nil)
	})
}

func TestBoundGenericUniquenessAndDispatch(t *testing.T) {
	c := newTestContext()
	b := c.Builtins()
	box := c.testGenericDecl(DeclStruct, "Box")

	g1 := c.BoundGenericFor(box, nil, []Type{b.Word})
	g2 := c.BoundGenericFor(box, nil, []Type{b.Word})
	if g1 != g2 {
		t.Fatalf("equal keys must share one node")
	}
	if g1 == c.BoundGenericFor(box, nil, []Type{b.Float64}) {
		t.Fatalf("arguments are part of the key")
	}
	if g1.Kind() != KindBoundGenericStruct {
		t.Fatalf("struct declaration must yield the struct-bound variant")
	}
	if c.BoundGenericFor(c.testGenericDecl(DeclUnion, "Choice"), nil, []Type{b.Word}).Kind() != KindBoundGenericUnion {
		t.Fatalf("union declaration must yield the union-bound variant")
	}
	if c.BoundGenericFor(c.testGenericDecl(DeclClass, "Ref"), nil, []Type{b.Word}).Kind() != KindBoundGenericClass {
		t.Fatalf("class declaration must yield the class-bound variant")
	}
	mustPanic(t, "binding a protocol declaration", func() {
		c.BoundGenericFor(c.NewNominalDecl(DeclProtocol, c.Intern("P"), nil), nil, []Type{b.Word})
	})
}

func TestBoundGenericCanonicality(t *testing.T) {
	c := newTestContext()
	b := c.Builtins()
	box := c.testGenericDecl(DeclStruct, "Box")

	if !c.BoundGenericFor(box, nil, []Type{b.Word}).IsCanonical() {
		t.Fatalf("canonical arguments must yield a canonical binding")
	}
	sugar := c.ParenOf(b.Word)
	if c.BoundGenericFor(box, nil, []Type{sugar}).IsCanonical() {
		t.Fatalf("a non-canonical argument must poison the binding")
	}
	tv := c.NewTypeVariable()
	g := c.BoundGenericFor(box, nil, []Type{tv})
	if !g.HasTypeVariable() {
		t.Fatalf("flag must propagate through generic arguments")
	}
	if !c.BoundGenericFor(box, nil, []Type{b.Unresolved}).IsUnresolved() {
		t.Fatalf("unresolved flag must propagate through generic arguments")
	}
}

func TestBoundGenericArgsCopied(t *testing.T) {
	c := newTestContext()
	b := c.Builtins()
	box := c.testGenericDecl(DeclStruct, "Box")
	args := []Type{b.Word}
	g := c.BoundGenericFor(box, nil, args)
	args[0] = b.Float64
	if g.Args()[0] != b.Word {
		t.Fatalf("bound generic must own a copy of the caller's argument buffer")
	}
}

func TestSubstitutionRegistry(t *testing.T) {
	c := newTestContext()
	b := c.Builtins()
	box := c.testGenericDecl(DeclStruct, "Box")
	g := c.BoundGenericFor(box, nil, []Type{b.Word})

	if _, ok := c.Substitutions(g); ok {
		t.Fatalf("lookup before any set must report absent")
	}
	subs := []Substitution{{Param: &box.GenericParams().Params[0], Replacement: b.Word}}
	c.SetSubstitutions(g, subs)
	got, ok := c.Substitutions(g)
	if !ok || len(got) != 1 || got[0].Replacement != b.Word {
		t.Fatalf("lookup after set must return the recorded list")
	}
	mustPanic(t, "second substitution set", func() {
		c.SetSubstitutions(g, subs)
	})

	poisoned := c.BoundGenericFor(box, nil, []Type{c.ParenOf(b.Word)})
	mustPanic(t, "substitution lookup on a non-canonical type", func() {
		c.Substitutions(poisoned)
	})
	mustPanic(t, "substitution set on a non-canonical type", func() {
		c.SetSubstitutions(poisoned, subs)
	})
}

func TestProtocolComposition(t *testing.T) {
	c := newTestContext()
	p1 := c.NewNominalDecl(DeclProtocol, c.Intern("A"), nil).DeclaredType()
	p2 := c.NewNominalDecl(DeclProtocol, c.Intern("B"), nil).DeclaredType()

	comp := c.CompositionOf([]Type{p1, p2})
	if comp != c.CompositionOf([]Type{p1, p2}) {
		t.Fatalf("equal member sequences must share one node")
	}
	if comp == c.CompositionOf([]Type{p2, p1}) {
		t.Fatalf("the key keeps the sequence as given")
	}
	if !comp.IsCanonical() {
		t.Fatalf("composition of canonical members must be canonical")
	}
	empty := c.CompositionOf(nil)
	if empty != c.CompositionOf(nil) || !empty.IsCanonical() {
		t.Fatalf("the empty composition is a shared canonical node")
	}
}

func TestReferencePathNeverShared(t *testing.T) {
	c := newTestContext()
	comps := []RefPathComponent{{Name: c.Intern("std")}, {Name: c.Intern("Box")}}
	r1 := c.ReferencePathOf(comps)
	r2 := c.ReferencePathOf(comps)
	if r1 == r2 {
		t.Fatalf("written references are tied to their occurrence")
	}
	if r1.IsCanonical() {
		t.Fatalf("written references are sugar")
	}
	comps[0].Name = c.Intern("mutated")
	if r1.Components()[0].Name != c.Intern("std") {
		t.Fatalf("components must be copied into context storage")
	}
	mustPanic(t, "empty reference path", func() {
		c.ReferencePathOf(nil)
	})
}

package ast

import "testing"

func TestTupleUniqueness(t *testing.T) {
	c := newTestContext()
	x := c.Intern("x")
	y := c.Intern("y")
	word := c.Builtins().Word
	elems := []TupleElem{{Type: word, Name: x}, {Type: word, Name: y}}

	t1 := c.TupleOf(elems)
	t2 := c.TupleOf([]TupleElem{{Type: word, Name: x}, {Type: word, Name: y}})
	if t1 != t2 {
		t.Fatalf("structurally equal tuples must share one node")
	}

	renamed := c.TupleOf([]TupleElem{{Type: word, Name: y}, {Type: word, Name: x}})
	if renamed == t1 {
		t.Fatalf("element names are part of the structural key")
	}
}

func TestTupleCollapseToParen(t *testing.T) {
	c := newTestContext()
	word := c.Builtins().Word

	got := c.TupleOf([]TupleElem{{Type: word}})
	paren, ok := got.(*ParenType)
	if !ok {
		t.Fatalf("single unnamed element must collapse to paren, got %s", got.Kind())
	}
	if paren != c.ParenOf(word) {
		t.Fatalf("collapse must reuse the interned paren node")
	}
	if paren.Underlying() != word {
		t.Fatalf("paren wraps the wrong type")
	}
	if paren.IsCanonical() {
		t.Fatalf("paren is sugar and must not be canonical")
	}

	named := c.TupleOf([]TupleElem{{Type: word, Name: c.Intern("x")}})
	if _, isTuple := named.(*TupleType); !isTuple {
		t.Fatalf("a named single element must stay a tuple")
	}
	vararg := c.TupleOf([]TupleElem{{Type: c.SliceOf(word), VarargBase: word}})
	if _, isTuple := vararg.(*TupleType); !isTuple {
		t.Fatalf("a variadic single element must stay a tuple")
	}
}

func TestTupleDefaultValuesNotShared(t *testing.T) {
	c := newTestContext()
	word := c.Builtins().Word
	x := c.Intern("x")
	y := c.Intern("y")

	withDefault := func() Type {
		return c.TupleOf([]TupleElem{
			{Type: word, Name: x},
			{Type: word, Name: y, Default: c.NewExprHandle(0)},
		})
	}
	t1 := withDefault()
	t2 := withDefault()
	if t1 == t2 {
		t.Fatalf("default-carrying tuples must stay distinct nodes")
	}

	// The default-free shape is still interned, unaffected by the above.
	plain := []TupleElem{{Type: word, Name: x}, {Type: word, Name: y}}
	if c.TupleOf(plain) != c.TupleOf(plain) {
		t.Fatalf("default-free shape must stay interned")
	}
}

func TestEmptyTupleSingleton(t *testing.T) {
	c := newTestContext()
	if c.TupleOf(nil) != c.Builtins().EmptyTuple {
		t.Fatalf("empty tuple requests must return the builtin singleton")
	}
	if !c.Builtins().EmptyTuple.IsCanonical() {
		t.Fatalf("empty tuple must be canonical")
	}
}

func TestTupleElementsCopied(t *testing.T) {
	c := newTestContext()
	word := c.Builtins().Word
	elems := []TupleElem{{Type: word, Name: c.Intern("x")}, {Type: word, Name: c.Intern("y")}}
	tt := c.TupleOf(elems).(*TupleType)
	elems[0].Name = c.Intern("mutated")
	if tt.Elems()[0].Name != c.Intern("x") {
		t.Fatalf("tuple must own a copy of the caller's element buffer")
	}
}

func TestTupleEndToEnd(t *testing.T) {
	c := newTestContext()
	word := c.Builtins().Word
	x := c.Intern("x")
	y := c.Intern("y")

	plain := []TupleElem{{Type: word, Name: x}, {Type: word, Name: y}}
	if c.TupleOf(plain) != c.TupleOf(plain) {
		t.Fatalf("plain tuple must be interned")
	}

	d1 := c.TupleOf([]TupleElem{{Type: word, Name: x}, {Type: word, Name: y, Default: c.NewExprHandle(0)}})
	d2 := c.TupleOf([]TupleElem{{Type: word, Name: x}, {Type: word, Name: y, Default: c.NewExprHandle(0)}})
	if d1 == d2 {
		t.Fatalf("distinct defaults must yield distinct nodes")
	}
	for _, tt := range []Type{d1, d2} {
		for _, e := range tt.(*TupleType).Elems() {
			if !e.Type.IsCanonical() {
				t.Fatalf("element type must stay canonical")
			}
		}
	}
}

package ast

import "testing"

func TestConformanceRegistry(t *testing.T) {
	c := newTestContext()
	b := c.Builtins()
	proto := c.NewNominalDecl(DeclProtocol, c.Intern("Printable"), nil)

	if _, ok := c.Conformance(b.Word, proto); ok {
		t.Fatalf("lookup before recording must report absent")
	}
	rec := c.RecordConformance(b.Word, proto)
	if rec != c.RecordConformance(b.Word, proto) {
		t.Fatalf("one (type, protocol) pair has one record")
	}
	got, ok := c.Conformance(b.Word, proto)
	if !ok || got != rec {
		t.Fatalf("lookup must return the recorded entry")
	}

	req := c.Intern("describe")
	rec.SetWitness(req, c.FunctionOf(b.EmptyTuple, b.Word, false))
	if w, ok := rec.Witness(req); !ok || w.Kind() != KindFunction {
		t.Fatalf("witness lookup broken")
	}
	if _, ok := rec.Witness(c.Intern("other")); ok {
		t.Fatalf("missing requirement must report absent")
	}

	mustPanic(t, "conformance to a non-protocol declaration", func() {
		c.RecordConformance(b.Word, c.NewNominalDecl(DeclStruct, c.Intern("S"), nil))
	})
}

func TestConformanceReleasedState(t *testing.T) {
	c := newTestContext()
	proto := c.NewNominalDecl(DeclProtocol, c.Intern("P"), nil)
	rec := c.RecordConformance(c.Builtins().Word, proto)
	req := c.Intern("x")
	c.Release()
	mustPanic(t, "witness write after release", func() {
		rec.SetWitness(req, nil)
	})
}

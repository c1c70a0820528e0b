package census

import (
	"path/filepath"
	"testing"

	"keel/internal/ast"
	"keel/internal/diag"
	"keel/internal/lang"
)

func TestTakeCountsConstruction(t *testing.T) {
	c := ast.NewContext(lang.Default(), diag.NewBag(16))
	b := c.Builtins()
	_ = c.FunctionOf(b.Word, b.Float64, false)
	_ = c.FunctionOf(b.Word, b.Float64, false) // cache hit

	s := Take(c)
	if s.TypesByKind["fn"] != 1 {
		t.Fatalf("expected one constructed function type, got %d", s.TypesByKind["fn"])
	}
	if s.TypesTotal == 0 || s.Identifiers == 0 {
		t.Fatalf("snapshot missing totals: %+v", s)
	}
}

func TestRoundTrip(t *testing.T) {
	c := ast.NewContext(lang.Default(), diag.NewBag(16))
	_ = c.ArrayOf(c.Builtins().Word, 3)
	s := Take(c)

	data, err := s.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.TypesTotal != s.TypesTotal || got.TypesByKind["array"] != s.TypesByKind["array"] {
		t.Fatalf("round trip changed counts: %+v vs %+v", got, s)
	}
}

func TestDecodeRejectsUnknownSchema(t *testing.T) {
	s := Snapshot{Schema: schemaVersion + 1}
	data, err := s.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := Decode(data); err == nil {
		t.Fatalf("unknown schema must be rejected")
	}
}

func TestFileRoundTrip(t *testing.T) {
	c := ast.NewContext(lang.Default(), diag.NewBag(16))
	s := Take(c)
	path := filepath.Join(t.TempDir(), "census.bin")
	if err := s.WriteFile(path); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.TypesTotal != s.TypesTotal {
		t.Fatalf("file round trip changed totals")
	}
}

package diag

import (
	"testing"

	"keel/internal/source"
)

func TestBagLimit(t *testing.T) {
	b := NewBag(2)
	d := Diagnostic{Severity: SevError, Code: SemaTypeMismatch}
	if !b.Add(d) || !b.Add(d) {
		t.Fatalf("adds under the limit must succeed")
	}
	if b.Add(d) {
		t.Fatalf("add over the limit must be rejected")
	}
	if b.Len() != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", b.Len())
	}
}

func TestBagHasErrors(t *testing.T) {
	b := NewBag(4)
	b.Add(Diagnostic{Severity: SevWarning})
	if b.HasErrors() {
		t.Fatalf("warnings alone must not count as errors")
	}
	b.Add(Diagnostic{Severity: SevError})
	if !b.HasErrors() {
		t.Fatalf("expected HasErrors after an error diagnostic")
	}
}

func TestBagSortedDeterministic(t *testing.T) {
	b := NewBag(8)
	b.Add(Diagnostic{Primary: source.Span{File: 1, Start: 50}})
	b.Add(Diagnostic{Primary: source.Span{File: 0, Start: 10}})
	b.Add(Diagnostic{Primary: source.Span{File: 0, Start: 5}})
	got := b.Sorted()
	if got[0].Primary.Start != 5 || got[1].Primary.Start != 10 || got[2].Primary.File != 1 {
		t.Fatalf("unexpected order: %v", got)
	}
}

func TestBagReporter(t *testing.T) {
	b := NewBag(4)
	r := BagReporter{Bag: b}
	ReportError(r, SemaUnresolvedName, source.Span{File: 0, Start: 1, End: 2}, "unresolved name")
	if !b.HasErrors() {
		t.Fatalf("reported error did not reach the bag")
	}
	if b.Items()[0].Code.String() != "KEEL3001" {
		t.Fatalf("unexpected code rendering: %s", b.Items()[0].Code)
	}
}

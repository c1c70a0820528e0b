package diag

import (
	"fmt"
	"sort"

	"fortio.org/safecast"
)

// Bag accumulates diagnostics up to a fixed limit. It is the canonical sink
// a compilation hands to its phases: producers report through a Reporter,
// consumers drain the bag once the phase is done.
type Bag struct {
	items []Diagnostic
	max   uint16
}

// NewBag constructs a bag that holds at most max diagnostics.
func NewBag(max int) *Bag {
	capped, err := safecast.Conv[uint16](max)
	if err != nil {
		panic(fmt.Errorf("diag: bag limit overflow: %w", err))
	}
	return &Bag{
		items: make([]Diagnostic, 0, max),
		max:   capped,
	}
}

// Add appends a diagnostic, honoring the limit. Returns false when the bag
// is full and the diagnostic was dropped.
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= int(b.max) {
		return false
	}
	b.items = append(b.items, d)
	return true
}

// Len returns the number of accumulated diagnostics.
func (b *Bag) Len() int {
	return len(b.items)
}

// HasErrors reports whether at least one diagnostic has severity Error.
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

// Items returns the accumulated diagnostics in insertion order.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Sorted returns diagnostics ordered by file, then start offset, then code.
// Insertion order breaks remaining ties, so the result is deterministic.
func (b *Bag) Sorted() []Diagnostic {
	out := make([]Diagnostic, len(b.items))
	copy(out, b.items)
	sort.SliceStable(out, func(i, j int) bool {
		a, c := out[i], out[j]
		if a.Primary.File != c.Primary.File {
			return a.Primary.File < c.Primary.File
		}
		if a.Primary.Start != c.Primary.Start {
			return a.Primary.Start < c.Primary.Start
		}
		return a.Code < c.Code
	})
	return out
}

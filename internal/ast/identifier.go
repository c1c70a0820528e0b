package ast

import (
	"fmt"

	"fortio.org/safecast"
	"golang.org/x/text/unicode/norm"
)

// Identifier is an opaque handle over context-interned text. Handles are
// cheap equality and hash keys; they stay valid exactly as long as the
// owning context.
type Identifier uint32

// NoIdentifier is the null handle. The empty string always maps to it, so
// "no identifier" and "identifier of empty text" are one representation.
const NoIdentifier Identifier = 0

// IsValid reports whether the handle names non-empty text.
func (id Identifier) IsValid() bool { return id != NoIdentifier }

// identTable interns strings into context-owned storage. Slot 0 is reserved
// for NoIdentifier.
type identTable struct {
	byID      []string
	index     map[string]Identifier
	normalize bool
}

func newIdentTable(normalize bool) identTable {
	return identTable{
		byID:      []string{""},
		index:     make(map[string]Identifier, 64),
		normalize: normalize,
	}
}

func (t *identTable) intern(text string) Identifier {
	if text == "" {
		return NoIdentifier
	}
	if t.normalize && !norm.NFC.IsNormalString(text) {
		text = norm.NFC.String(text)
	}
	if id, ok := t.index[text]; ok {
		return id
	}

	// Own copy, detached from whatever buffer the caller sliced.
	cpy := string([]byte(text))
	next, err := safecast.Conv[uint32](len(t.byID))
	if err != nil {
		panic(fmt.Errorf("ast: identifier table overflow: %w", err))
	}
	id := Identifier(next)
	t.byID = append(t.byID, cpy)
	t.index[cpy] = id
	return id
}

func (t *identTable) lookup(id Identifier) (string, bool) {
	if int(id) >= len(t.byID) {
		return "", false
	}
	return t.byID[id], true
}

func (t *identTable) len() int {
	return len(t.byID)
}

package ast

import "encoding/binary"

// Type is an immutable, context-owned type node. Two structurally identical
// requests against one context return the same pointer (unless the family
// opts out of caching), so == on Type values is structural equality for
// canonical types.
type Type interface {
	// Kind returns the closed family tag.
	Kind() Kind
	// IsCanonical reports whether this pointer is the unique canonical
	// representative of its structural identity. A type built over sugared
	// constituents is itself not canonical.
	IsCanonical() bool
	// HasTypeVariable reports whether any reachable constituent is an open
	// inference variable.
	HasTypeVariable() bool
	// IsUnresolved reports whether any reachable constituent is the
	// unresolved marker.
	IsUnresolved() bool

	base() *typeBase
}

// typeBase carries the per-node state shared by every family. The flags are
// computed at construction and never change.
type typeBase struct {
	kind       Kind
	uid        uint32 // context-unique, used to build structural keys
	canonical  bool
	hasTypeVar bool
	unresolved bool
}

func (b *typeBase) Kind() Kind            { return b.kind }
func (b *typeBase) IsCanonical() bool     { return b.canonical }
func (b *typeBase) HasTypeVariable() bool { return b.hasTypeVar }
func (b *typeBase) IsUnresolved() bool    { return b.unresolved }
func (b *typeBase) base() *typeBase       { return b }

// typeUID returns the stable per-context id of t, 0 for nil. These ids feed
// the structural keys of the variable-arity tables; they are safe to hash
// because a node's address, and therefore its id, never changes (arena
// lifetime invariant).
func typeUID(t Type) uint32 {
	if t == nil {
		return 0
	}
	return t.base().uid
}

// canonicalOrNil reports canonicality treating a nil constituent as
// non-canonical, matching the tuple rule for elements without a settled
// type.
func canonicalOrNil(t Type) bool {
	return t != nil && t.IsCanonical()
}

func hasTypeVar(t Type) bool {
	return t != nil && t.HasTypeVariable()
}

func isUnresolved(t Type) bool {
	return t != nil && t.IsUnresolved()
}

// fingerprint builds structural-identity keys for the variable-arity
// interning tables. Fields are appended in a fixed order with varint
// framing, so distinct field sequences cannot collide.
type fingerprint struct {
	buf []byte
}

func (f *fingerprint) addUint(u uint64) {
	f.buf = binary.AppendUvarint(f.buf, u)
}

func (f *fingerprint) addType(t Type) {
	f.addUint(uint64(typeUID(t)))
}

func (f *fingerprint) addBool(b bool) {
	if b {
		f.buf = append(f.buf, 1)
	} else {
		f.buf = append(f.buf, 0)
	}
}

func (f *fingerprint) key() string {
	return string(f.buf)
}

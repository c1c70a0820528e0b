package ast

import (
	"fmt"

	"keel/internal/arena"
)

// ErrorType is the placeholder type handed out after a diagnostic. It is
// canonical, so downstream composition over it stays canonical.
type ErrorType struct {
	typeBase
}

// UnresolvedType is the marker for types name resolution has not settled.
// Composites over it carry the unresolved flag and several caches treat
// them specially.
type UnresolvedType struct {
	typeBase
}

// BuiltinPointerType covers the three foundational pointer singletons: raw
// memory, managed object references and foreign object references.
type BuiltinPointerType struct {
	typeBase
}

func (c *Context) newBuiltinSingleton(kind Kind) Type {
	switch kind {
	case KindError:
		t := arena.Alloc[ErrorType](c.arena)
		t.typeBase = c.newBase(kind, true, false, false)
		return t
	case KindUnresolved:
		t := arena.Alloc[UnresolvedType](c.arena)
		t.typeBase = c.newBase(kind, true, false, true)
		return t
	case KindBuiltinRawPointer, KindBuiltinObjectPointer, KindBuiltinForeignPointer:
		t := arena.Alloc[BuiltinPointerType](c.arena)
		t.typeBase = c.newBase(kind, true, false, false)
		return t
	default:
		panic(fmt.Sprintf("ast: not a builtin singleton kind: %s", kind))
	}
}

// BuiltinIntegerType is a fixed-width integer, interned per bit width.
type BuiltinIntegerType struct {
	typeBase
	width uint32
}

// Width returns the bit width.
func (t *BuiltinIntegerType) Width() uint32 { return t.width }

// IntegerType returns the unique integer type of the given bit width.
func (c *Context) IntegerType(width uint32) *BuiltinIntegerType {
	if entry, ok := c.integers[width]; ok {
		return entry
	}
	t := arena.Alloc[BuiltinIntegerType](c.arena)
	t.typeBase = c.newBase(KindBuiltinInteger, true, false, false)
	t.width = width
	c.integers[width] = t
	return t
}

// FloatSemantics enumerates the supported floating-point representations.
type FloatSemantics uint8

const (
	// Float16 is IEEE binary16.
	Float16 FloatSemantics = iota
	Float32
	Float64
	// Float80 is the x87 extended format.
	Float80
	Float128
	// FloatPair128 is the double-double format.
	FloatPair128

	numFloatSemantics
)

func (s FloatSemantics) String() string {
	switch s {
	case Float16:
		return "f16"
	case Float32:
		return "f32"
	case Float64:
		return "f64"
	case Float80:
		return "f80"
	case Float128:
		return "f128"
	case FloatPair128:
		return "f128pair"
	default:
		return fmt.Sprintf("FloatSemantics(%d)", uint8(s))
	}
}

// BuiltinFloatType is one of the floating-point singletons.
type BuiltinFloatType struct {
	typeBase
	sem FloatSemantics
}

// Semantics returns the representation tag.
func (t *BuiltinFloatType) Semantics() FloatSemantics { return t.sem }

func (c *Context) newFloatType(sem FloatSemantics) *BuiltinFloatType {
	t := arena.Alloc[BuiltinFloatType](c.arena)
	t.typeBase = c.newBase(KindBuiltinFloat, true, false, false)
	t.sem = sem
	c.floats[sem] = t
	return t
}

// FloatType returns the singleton for the given semantics.
func (c *Context) FloatType(sem FloatSemantics) *BuiltinFloatType {
	if sem >= numFloatSemantics {
		panic(fmt.Sprintf("ast: unknown float semantics %d", uint8(sem)))
	}
	return c.floats[sem]
}

// TypeVariableType is an open inference variable. Every request mints a
// fresh variable; they are canonical by definition and are the only source
// of the hasTypeVariable flag.
type TypeVariableType struct {
	typeBase
}

// NewTypeVariable mints a fresh inference variable.
func (c *Context) NewTypeVariable() *TypeVariableType {
	t := arena.Alloc[TypeVariableType](c.arena)
	t.typeBase = c.newBase(KindTypeVariable, true, true, false)
	return t
}

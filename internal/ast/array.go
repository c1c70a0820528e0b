package ast

import (
	"fmt"

	"keel/internal/arena"
)

// ArrayType is a fixed-size array, interned on (element, size).
type ArrayType struct {
	typeBase
	elem Type
	size uint64
}

// Elem returns the element type.
func (t *ArrayType) Elem() Type { return t.elem }

// Size returns the element count.
func (t *ArrayType) Size() uint64 { return t.size }

type arrayKey struct {
	elem Type
	size uint64
}

// ArrayOf returns the unique array type of size elements. A zero size is a
// caller bug, not a constructible type.
func (c *Context) ArrayOf(elem Type, size uint64) *ArrayType {
	if size == 0 {
		panic(fmt.Sprintf("ast: zero-size array of %s", elem.Kind()))
	}
	key := arrayKey{elem: elem, size: size}
	if entry, ok := c.arrays[key]; ok {
		return entry
	}
	t := arena.Alloc[ArrayType](c.arena)
	t.typeBase = c.newBase(KindArray, canonicalOrNil(elem), hasTypeVar(elem), isUnresolved(elem))
	t.elem = elem
	t.size = size
	c.arrays[key] = t
	return t
}

// SliceType is the sugared open-ended array form. Like paren, it is never
// canonical; specialization lowers it to a bound generic later.
type SliceType struct {
	typeBase
	elem Type
}

// Elem returns the element type.
func (t *SliceType) Elem() Type { return t.elem }

// SliceOf returns the unique slice wrapper for elem.
func (c *Context) SliceOf(elem Type) *SliceType {
	if entry, ok := c.slices[elem]; ok {
		return entry
	}
	t := arena.Alloc[SliceType](c.arena)
	t.typeBase = c.newBase(KindSlice, false, hasTypeVar(elem), isUnresolved(elem))
	t.elem = elem
	c.slices[elem] = t
	return t
}

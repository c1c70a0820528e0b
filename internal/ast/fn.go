package ast

import "keel/internal/arena"

// FunctionType is a monomorphic function type, interned on
// (input, output, autoClosure).
type FunctionType struct {
	typeBase
	input       Type
	output      Type
	autoClosure bool
}

// Input returns the parameter type.
func (t *FunctionType) Input() Type { return t.input }

// Output returns the result type.
func (t *FunctionType) Output() Type { return t.output }

// IsAutoClosure reports whether arguments are implicitly wrapped in a
// closure at the call site.
func (t *FunctionType) IsAutoClosure() bool { return t.autoClosure }

type functionKey struct {
	input       Type
	output      Type
	autoClosure bool
}

// FunctionOf returns the unique function type for the given signature.
func (c *Context) FunctionOf(input, output Type, autoClosure bool) *FunctionType {
	key := functionKey{input: input, output: output, autoClosure: autoClosure}
	if entry, ok := c.functions[key]; ok {
		return entry
	}
	t := arena.Alloc[FunctionType](c.arena)
	t.typeBase = c.newBase(KindFunction,
		canonicalOrNil(input) && canonicalOrNil(output),
		hasTypeVar(input) || hasTypeVar(output),
		isUnresolved(input) || isUnresolved(output))
	t.input = input
	t.output = output
	t.autoClosure = autoClosure
	c.functions[key] = t
	return t
}

// PolymorphicFunctionType is a function type carrying its own generic
// parameter list. It is deliberately never cached: its identity is tied to
// the caller-supplied parameter list, which the context does not
// deduplicate.
type PolymorphicFunctionType struct {
	typeBase
	input  Type
	output Type
	params *GenericParamList
}

// Input returns the parameter type.
func (t *PolymorphicFunctionType) Input() Type { return t.input }

// Output returns the result type.
func (t *PolymorphicFunctionType) Output() Type { return t.output }

// Params returns the generic parameter list the type was built over.
func (t *PolymorphicFunctionType) Params() *GenericParamList { return t.params }

// PolymorphicFunctionOf mints a fresh polymorphic function type. Inference
// variables cannot appear in a generic signature.
func (c *Context) PolymorphicFunctionOf(input, output Type, params *GenericParamList) *PolymorphicFunctionType {
	if hasTypeVar(input) || hasTypeVar(output) {
		panic("ast: polymorphic function over a type variable")
	}
	t := arena.Alloc[PolymorphicFunctionType](c.arena)
	t.typeBase = c.newBase(KindPolymorphicFunction,
		canonicalOrNil(input) && canonicalOrNil(output),
		false,
		isUnresolved(input) || isUnresolved(output))
	t.input = input
	t.output = output
	t.params = params
	return t
}

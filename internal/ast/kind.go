package ast

import "fmt"

// Kind enumerates every type family the context can mint. The set is closed:
// dispatch over it is always an exhaustive switch.
type Kind uint8

const (
	// KindError is the placeholder type produced after a diagnostic, so
	// downstream construction can continue without special-casing failure.
	KindError Kind = iota
	// KindUnresolved marks a type that name resolution has not settled yet.
	KindUnresolved
	KindBuiltinInteger
	KindBuiltinFloat
	KindBuiltinRawPointer
	KindBuiltinObjectPointer
	KindBuiltinForeignPointer
	KindTypeVariable
	KindTuple
	KindParen
	KindFunction
	KindPolymorphicFunction
	KindArray
	KindSlice
	KindUnion
	KindStruct
	KindClass
	KindProtocol
	KindProtocolComposition
	KindUnboundGeneric
	KindBoundGenericUnion
	KindBoundGenericStruct
	KindBoundGenericClass
	KindMeta
	KindModule
	KindReference
	KindSubstituted
	KindReferencePath
)

func (k Kind) String() string {
	switch k {
	case KindError:
		return "error"
	case KindUnresolved:
		return "unresolved"
	case KindBuiltinInteger:
		return "builtin.int"
	case KindBuiltinFloat:
		return "builtin.float"
	case KindBuiltinRawPointer:
		return "builtin.rawptr"
	case KindBuiltinObjectPointer:
		return "builtin.objptr"
	case KindBuiltinForeignPointer:
		return "builtin.foreignptr"
	case KindTypeVariable:
		return "typevar"
	case KindTuple:
		return "tuple"
	case KindParen:
		return "paren"
	case KindFunction:
		return "fn"
	case KindPolymorphicFunction:
		return "polyfn"
	case KindArray:
		return "array"
	case KindSlice:
		return "slice"
	case KindUnion:
		return "union"
	case KindStruct:
		return "struct"
	case KindClass:
		return "class"
	case KindProtocol:
		return "protocol"
	case KindProtocolComposition:
		return "composition"
	case KindUnboundGeneric:
		return "unbound"
	case KindBoundGenericUnion:
		return "bound.union"
	case KindBoundGenericStruct:
		return "bound.struct"
	case KindBoundGenericClass:
		return "bound.class"
	case KindMeta:
		return "meta"
	case KindModule:
		return "module"
	case KindReference:
		return "reference"
	case KindSubstituted:
		return "substituted"
	case KindReferencePath:
		return "refpath"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// numKinds is the size of per-kind census tables.
const numKinds = int(KindReferencePath) + 1

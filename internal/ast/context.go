package ast

import (
	"fmt"

	"fortio.org/safecast"

	"keel/internal/arena"
	"keel/internal/diag"
	"keel/internal/lang"
)

// Context owns every type and AST node of one compilation: the arena they
// live in, the identifier table, the per-family interning tables, the
// substitution registry and the conformance registry. It guarantees that
// structurally identical types are represented by exactly one canonical
// node, so the rest of the compiler can compare types by pointer and hash
// them by address.
//
// A context is single-threaded: one compilation goroutine owns it from
// NewContext to Release. Contexts never share nodes.
type Context struct {
	opts  *lang.Options
	diags *diag.Bag
	arena *arena.Arena

	idents  identTable
	nextUID uint32

	builtins Builtins
	floats   [numFloatSemantics]*BuiltinFloatType

	// Fixed-arity interning tables, keyed directly on constituents.
	integers    map[uint32]*BuiltinIntegerType
	parens      map[Type]*ParenType
	functions   map[functionKey]*FunctionType
	arrays      map[arrayKey]*ArrayType
	slices      map[Type]*SliceType
	metas       map[Type]*MetaType
	modules     map[*Module]*ModuleType
	references  map[referenceKey]*ReferenceType
	substituted map[substitutedKey]*SubstitutedType

	// Variable-arity interning tables, keyed on structural fingerprints or
	// declaration identity.
	tuples       map[string]*TupleType
	unions       map[nominalKey]*NominalType
	structs      map[nominalKey]*NominalType
	classes      map[nominalKey]*NominalType
	compositions map[string]*ProtocolCompositionType
	unbound      map[nominalKey]*UnboundGenericType
	bound        map[boundKey]*BoundGenericType

	// substitutions is write-once per canonical bound generic type.
	substitutions map[*BoundGenericType][]Substitution

	// conformances carry their own heap ownership and are released
	// explicitly at teardown; the arena never runs destructors.
	conformances map[conformanceKey]*ProtocolConformance

	counts   [numKinds]uint64
	released bool
}

// Builtins is the registry of foundational singleton types, constructed
// once at context creation. The struct is returned by value, so callers can
// freely copy it around.
type Builtins struct {
	Error      Type
	Unresolved Type
	EmptyTuple Type

	RawPointer     Type
	ObjectPointer  Type
	ForeignPointer Type

	Float16      Type
	Float32      Type
	Float64      Type
	Float80      Type
	Float128     Type
	FloatPair128 Type

	// Word is the integer type of the target pointer width.
	Word Type

	// BuiltinModule is the distinguished module owning builtin names, with
	// its module type available from creation.
	BuiltinModule     *Module
	BuiltinModuleType Type
}

// NewContext creates the context for one compilation. Both collaborators
// are externally owned: the context borrows opts for its lifetime and
// reports nothing to diags itself beyond answering HadError.
func NewContext(opts *lang.Options, diags *diag.Bag) *Context {
	if opts == nil {
		opts = lang.Default()
	}
	c := &Context{
		opts:  opts,
		diags: diags,
		arena: arena.New(),

		idents: newIdentTable(opts.NormalizeIdentifiers),

		integers:    make(map[uint32]*BuiltinIntegerType),
		parens:      make(map[Type]*ParenType),
		functions:   make(map[functionKey]*FunctionType),
		arrays:      make(map[arrayKey]*ArrayType),
		slices:      make(map[Type]*SliceType),
		metas:       make(map[Type]*MetaType),
		modules:     make(map[*Module]*ModuleType),
		references:  make(map[referenceKey]*ReferenceType),
		substituted: make(map[substitutedKey]*SubstitutedType),

		tuples:       make(map[string]*TupleType),
		unions:       make(map[nominalKey]*NominalType),
		structs:      make(map[nominalKey]*NominalType),
		classes:      make(map[nominalKey]*NominalType),
		compositions: make(map[string]*ProtocolCompositionType),
		unbound:      make(map[nominalKey]*UnboundGenericType),
		bound:        make(map[boundKey]*BoundGenericType),

		substitutions: make(map[*BoundGenericType][]Substitution),
		conformances:  make(map[conformanceKey]*ProtocolConformance),
	}

	// Builtin singletons. Each entry is self-contained; the sequence only
	// matters for the empty tuple, which goes through the regular tuple
	// factory and therefore needs the tables above.
	c.builtins.Error = c.newBuiltinSingleton(KindError)
	c.builtins.Unresolved = c.newBuiltinSingleton(KindUnresolved)
	c.builtins.RawPointer = c.newBuiltinSingleton(KindBuiltinRawPointer)
	c.builtins.ObjectPointer = c.newBuiltinSingleton(KindBuiltinObjectPointer)
	c.builtins.ForeignPointer = c.newBuiltinSingleton(KindBuiltinForeignPointer)
	c.builtins.Float16 = c.newFloatType(Float16)
	c.builtins.Float32 = c.newFloatType(Float32)
	c.builtins.Float64 = c.newFloatType(Float64)
	c.builtins.Float80 = c.newFloatType(Float80)
	c.builtins.Float128 = c.newFloatType(Float128)
	c.builtins.FloatPair128 = c.newFloatType(FloatPair128)
	c.builtins.Word = c.IntegerType(opts.PointerBits)
	c.builtins.EmptyTuple = c.TupleOf(nil)
	c.builtins.BuiltinModule = c.NewModule(c.Intern("builtin"))
	c.builtins.BuiltinModuleType = c.ModuleTypeOf(c.builtins.BuiltinModule)

	return c
}

// Builtins returns the builtin type registry. O(1), never fails.
func (c *Context) Builtins() Builtins {
	return c.builtins
}

// Options returns the borrowed language options.
func (c *Context) Options() *lang.Options {
	return c.opts
}

// Reporter returns a diagnostic reporter bound to the context's sink.
func (c *Context) Reporter() diag.Reporter {
	if c.diags == nil {
		return diag.NopReporter{}
	}
	return diag.BagReporter{Bag: c.diags}
}

// HadError reports whether the diagnostic sink has accumulated any error.
// The context itself neither raises nor clears diagnostics.
func (c *Context) HadError() bool {
	return c.diags != nil && c.diags.HasErrors()
}

// Allocate hands out raw arena memory for AST nodes built elsewhere in the
// compiler. The block stays valid, at a stable address, until Release.
func (c *Context) Allocate(size, align int) []byte {
	return c.arena.Alloc(size, align)
}

// Intern returns the context-owned handle for text. Equal text always
// yields the same handle; empty text yields NoIdentifier without touching
// storage.
func (c *Context) Intern(text string) Identifier {
	return c.idents.intern(text)
}

// IdentifierText resolves a handle back to its text.
func (c *Context) IdentifierText(id Identifier) (string, bool) {
	return c.idents.lookup(id)
}

// Release tears the context down: conformance records are released
// individually (they own heap state the arena knows nothing about), then
// the arena drops every node at once. Using the context afterwards is a
// contract violation.
func (c *Context) Release() {
	if c.released {
		return
	}
	for _, conf := range c.conformances {
		conf.release()
	}
	c.conformances = nil
	c.arena.Release()
	c.released = true
}

// Stats is a point-in-time census of the context.
type Stats struct {
	TypesByKind [numKinds]uint64
	TypesTotal  uint64
	Identifiers int
	ArenaBytes  uint64
	ArenaPins   int
}

// Stats returns construction counters for tooling. Counts include uncached
// nodes, so they track construction, not table sizes.
func (c *Context) Stats() Stats {
	var total uint64
	for _, n := range c.counts {
		total += n
	}
	return Stats{
		TypesByKind: c.counts,
		TypesTotal:  total,
		Identifiers: c.idents.len() - 1, // slot 0 is the null handle
		ArenaBytes:  c.arena.Bytes(),
		ArenaPins:   c.arena.Pins(),
	}
}

func (c *Context) takeUID() uint32 {
	next, err := safecast.Conv[uint32](uint64(c.nextUID) + 1)
	if err != nil {
		panic(fmt.Errorf("ast: context uid overflow: %w", err))
	}
	c.nextUID = next
	return next
}

// newBase mints the shared node header. Every type node goes through here,
// cached or not, so the census counters see all of them.
func (c *Context) newBase(kind Kind, canonical, hasTypeVar, unresolved bool) typeBase {
	if c.released {
		panic("ast: context used after release")
	}
	c.counts[kind]++
	return typeBase{
		kind:       kind,
		uid:        c.takeUID(),
		canonical:  canonical,
		hasTypeVar: hasTypeVar,
		unresolved: unresolved,
	}
}

package ast

import "fmt"

// ProtocolConformance records how a type satisfies a protocol. Unlike type
// nodes, a conformance owns mutable heap state (its witness map), so the
// context releases each record explicitly at teardown instead of relying on
// the arena.
type ProtocolConformance struct {
	typ       Type
	protocol  *NominalDecl
	witnesses map[Identifier]Type
	released  bool
}

// ConformingType returns the type side of the record.
func (pc *ProtocolConformance) ConformingType() Type { return pc.typ }

// Protocol returns the protocol declaration side of the record.
func (pc *ProtocolConformance) Protocol() *NominalDecl { return pc.protocol }

// SetWitness records the type satisfying one protocol requirement.
func (pc *ProtocolConformance) SetWitness(requirement Identifier, witness Type) {
	if pc.released {
		panic("ast: conformance used after release")
	}
	pc.witnesses[requirement] = witness
}

// Witness looks up the recorded type for a requirement.
func (pc *ProtocolConformance) Witness(requirement Identifier) (Type, bool) {
	if pc.released {
		panic("ast: conformance used after release")
	}
	w, ok := pc.witnesses[requirement]
	return w, ok
}

// Released reports whether the record was torn down.
func (pc *ProtocolConformance) Released() bool { return pc.released }

func (pc *ProtocolConformance) release() {
	pc.witnesses = nil
	pc.released = true
}

type conformanceKey struct {
	typ      Type
	protocol *NominalDecl
}

// RecordConformance creates (or returns) the conformance record for
// (typ, protocol). The protocol side must be a protocol declaration.
func (c *Context) RecordConformance(typ Type, protocol *NominalDecl) *ProtocolConformance {
	if protocol.Kind() != DeclProtocol {
		panic(fmt.Sprintf("ast: conformance to a %s declaration", protocol.Kind()))
	}
	key := conformanceKey{typ: typ, protocol: protocol}
	if entry, ok := c.conformances[key]; ok {
		return entry
	}
	pc := &ProtocolConformance{
		typ:       typ,
		protocol:  protocol,
		witnesses: make(map[Identifier]Type),
	}
	c.conformances[key] = pc
	return pc
}

// Conformance looks up the record for (typ, protocol). Absence is an
// ordinary outcome.
func (c *Context) Conformance(typ Type, protocol *NominalDecl) (*ProtocolConformance, bool) {
	pc, ok := c.conformances[conformanceKey{typ: typ, protocol: protocol}]
	return pc, ok
}

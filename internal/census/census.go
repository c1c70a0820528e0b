// Package census turns a type context into a serializable summary for
// tooling: how many nodes of each family were constructed, how much arena
// memory they took, how many identifiers were interned.
package census

import (
	"fmt"
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"keel/internal/ast"
)

// Current schema version - increment when Snapshot format changes.
const schemaVersion uint16 = 1

// Snapshot is a point-in-time census of one context. It carries no node
// pointers, so it stays meaningful after the context is released.
type Snapshot struct {
	// Schema version for safe invalidation when the format changes.
	Schema uint16

	TypesByKind map[string]uint64
	TypesTotal  uint64
	Identifiers int
	ArenaBytes  uint64
	ArenaPins   int
}

// Take builds a snapshot of the context's current state.
func Take(c *ast.Context) Snapshot {
	stats := c.Stats()
	byKind := make(map[string]uint64)
	for kind, n := range stats.TypesByKind {
		if n == 0 {
			continue
		}
		byKind[ast.Kind(kind).String()] = n
	}
	return Snapshot{
		Schema:      schemaVersion,
		TypesByKind: byKind,
		TypesTotal:  stats.TypesTotal,
		Identifiers: stats.Identifiers,
		ArenaBytes:  stats.ArenaBytes,
		ArenaPins:   stats.ArenaPins,
	}
}

// Encode serializes the snapshot.
func (s Snapshot) Encode() ([]byte, error) {
	return msgpack.Marshal(s)
}

// Decode deserializes a snapshot, rejecting unknown schema versions.
func Decode(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := msgpack.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("census: decode: %w", err)
	}
	if s.Schema != schemaVersion {
		return Snapshot{}, fmt.Errorf("census: unsupported schema %d (want %d)", s.Schema, schemaVersion)
	}
	return s, nil
}

// WriteFile encodes the snapshot to path.
func (s Snapshot) WriteFile(path string) error {
	data, err := s.Encode()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("census: write %s: %w", path, err)
	}
	return nil
}

// ReadFile decodes a snapshot from path.
func ReadFile(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("census: read %s: %w", path, err)
	}
	return Decode(data)
}

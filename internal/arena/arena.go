package arena

import (
	"fmt"

	"fortio.org/safecast"
)

// chunkSize is the granularity of raw byte allocation. Requests larger than
// this get a dedicated chunk.
const chunkSize = 64 * 1024

// Arena is a bump allocator with bulk teardown. Raw byte requests are served
// from append-only chunks; typed nodes are pinned so they live exactly as
// long as the arena. Nothing is ever freed individually, and memory handed
// out never moves, so callers may hold raw pointers for the arena's lifetime.
type Arena struct {
	chunk    []byte   // current chunk, len = used, cap = capacity
	chunks   [][]byte // full chunks, retained until Release
	pins     []any    // typed nodes kept alive until Release
	allocs   uint64   // total raw bytes handed out
	released bool
}

// New returns an empty arena.
func New() *Arena {
	return &Arena{}
}

// Alloc returns a zeroed byte block of the given size, aligned to align
// bytes within the current chunk. Size zero returns nil. Align must be a
// power of two.
func (a *Arena) Alloc(size, align int) []byte {
	if a.released {
		panic("arena: alloc after release")
	}
	if size < 0 || align <= 0 || align&(align-1) != 0 {
		panic(fmt.Sprintf("arena: bad alloc request size=%d align=%d", size, align))
	}
	if size == 0 {
		return nil
	}

	pad := (align - len(a.chunk)&(align-1)) & (align - 1)
	if len(a.chunk)+pad+size > cap(a.chunk) {
		a.grow(size)
		pad = 0
	}
	a.chunk = a.chunk[:len(a.chunk)+pad]

	start := len(a.chunk)
	a.chunk = a.chunk[:start+size]
	grant, err := safecast.Conv[uint64](size)
	if err != nil {
		panic(fmt.Errorf("arena: alloc size overflow: %w", err))
	}
	a.allocs += grant
	return a.chunk[start : start+size : start+size]
}

func (a *Arena) grow(need int) {
	if a.chunk != nil {
		a.chunks = append(a.chunks, a.chunk)
	}
	size := chunkSize
	if need > size {
		size = need
	}
	a.chunk = make([]byte, 0, size)
}

// Bytes reports the total raw bytes handed out so far.
func (a *Arena) Bytes() uint64 {
	return a.allocs
}

// Pins reports how many typed nodes the arena keeps alive.
func (a *Arena) Pins() int {
	return len(a.pins)
}

// Release drops every chunk and pin at once. The arena and everything it
// handed out must not be used afterwards.
func (a *Arena) Release() {
	a.chunk = nil
	a.chunks = nil
	a.pins = nil
	a.released = true
}

func (a *Arena) pin(v any) {
	if a.released {
		panic("arena: alloc after release")
	}
	a.pins = append(a.pins, v)
}

// Alloc allocates one zero-valued T owned by the arena. The returned pointer
// stays valid, at a stable address, until the arena is released.
func Alloc[T any](a *Arena) *T {
	v := new(T)
	a.pin(v)
	return v
}

// Copy clones src into arena-owned storage. The result never aliases the
// caller's buffer; an empty src yields nil.
func Copy[T any](a *Arena, src []T) []T {
	if len(src) == 0 {
		return nil
	}
	dst := make([]T, len(src))
	copy(dst, src)
	a.pin(&dst[0])
	return dst
}

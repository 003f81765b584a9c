// Package compilerstub stands in for the compiler collaborator that
// spec places out of scope: the part of the toolchain that emits
// object and frame outlines and builds stack frames. Nothing in this
// package is a compiler — it is the minimal fixture builder that lets
// tests and the cacophonyrt CLI drive internal/gc the way generated
// code would, using the exact wire layout of spec section 3.
package compilerstub

import (
	"github.com/mhorod/cacophony/internal/gc"
)

// OutlineArena interns outlines: compiler-emitted, read-only
// descriptors that are never moved or reclaimed for the life of the
// program (spec section 3, "Outline"). Each interned outline gets its
// own permanently retained backing array, so addresses handed out by
// Intern never move even though the arena itself keeps growing.
type OutlineArena struct{}

// retainedOutlines holds every interned outline's backing array for the
// life of the process, independently of the arena that built it.
var retainedOutlines [][]uint64

// NewOutlineArena creates an empty arena.
func NewOutlineArena() *OutlineArena {
	return &OutlineArena{}
}

// Intern builds an outline describing an object or frame of n words,
// with a reference slot at every offset in refs, and returns its
// address.
func (a *OutlineArena) Intern(n int64, refs ...int64) gc.Addr {
	chunks := (n + 63) / 64
	buf := make([]uint64, 1+chunks)
	buf[0] = uint64(n)
	for _, r := range refs {
		if r < 0 || r >= n {
			panic("compilerstub: reference offset out of range for outline")
		}
		buf[1+r/64] |= uint64(1) << uint(r%64)
	}
	retainedOutlines = append(retainedOutlines, buf)
	return gc.FromWords(buf)
}

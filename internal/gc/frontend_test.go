package gc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllocStructZeroesReferenceSlotsOnly(t *testing.T) {
	bottomOutline := makeOutline(2, 0, 1)
	bottom := newTestFrame(2, bottomOutline, Null)

	allocator := NewPagedAllocator(4096)
	walker := NewWalker(bottom.fp)
	collector := NewCollector(walker, allocator, nil)
	frontend := NewFrontend(allocator, collector, DefaultGCWait)

	objOutline := makeOutline(2, 0) // slot 0 ref, slot 1 scalar
	objOutlineAddr := Addr(objOutline)

	data := frontend.AllocStruct(objOutlineAddr, bottom.fp)
	require.Equal(t, Null, wordToAddr(readWord(data)))
}

func TestAllocStructTriggersCollectionEveryGCWaitCalls(t *testing.T) {
	bottomOutline := makeOutline(2, 0, 1)
	bottom := newTestFrame(2, bottomOutline, Null)

	allocator := NewPagedAllocator(4096)
	walker := NewWalker(bottom.fp)
	collector := NewCollector(walker, allocator, nil)
	frontend := NewFrontend(allocator, collector, 3)

	objOutline := makeOutline(1, 0)
	objOutlineAddr := Addr(objOutline)

	var last Addr
	for i := 0; i < 3; i++ {
		last = frontend.AllocStruct(objOutlineAddr, bottom.fp)
	}
	bottom.setSlot(1, last)
	// The third call above ran a cycle before allocating, with nothing
	// rooted, so it reclaimed the first two objects; last is the object
	// that call produced. The sixth call below runs the next cycle with
	// last rooted: it keeps last and reclaims the two unrooted objects
	// allocated after it, leaving last plus the sixth object (16 bytes
	// each).
	for i := 0; i < 3; i++ {
		frontend.AllocStruct(objOutlineAddr, bottom.fp)
	}
	require.NotEqual(t, Null, bottom.getSlot(1))
	require.Equal(t, int64(32), allocator.TotalOccupied())
}

func TestAllocStructRejectsReentrantCall(t *testing.T) {
	bottomOutline := makeOutline(1, 0)
	bottom := newTestFrame(1, bottomOutline, Null)

	allocator := NewPagedAllocator(4096)
	walker := NewWalker(bottom.fp)
	collector := NewCollector(walker, allocator, nil)
	frontend := NewFrontend(allocator, collector, DefaultGCWait)
	frontend.inCollection = true

	objOutline := makeOutline(1, 0)
	require.Panics(t, func() { frontend.AllocStruct(Addr(objOutline), bottom.fp) })
}

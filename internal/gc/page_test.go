package gc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllocateBumpsWithinAPage(t *testing.T) {
	a := NewPagedAllocator(4096)
	first := a.Allocate(24)
	second := a.Allocate(24)
	require.Equal(t, first.Add(3), second)
	require.Equal(t, int64(48), a.TotalOccupied())
}

func TestAllocateRejectsNonWordMultiple(t *testing.T) {
	a := NewPagedAllocator(4096)
	require.Panics(t, func() { a.Allocate(23) })
}

func TestAllocateOversizeGetsOwnPage(t *testing.T) {
	a := NewPagedAllocator(4096)
	a.Allocate(24)
	big := a.Allocate(8192)
	require.NotZero(t, big)

	stats := a.PageStats()
	require.Len(t, stats, 2)
	require.True(t, stats[1].Oversize)
	require.Equal(t, int64(8192), stats[1].Occupied)
}

func TestAllocateCreatesNewPageWhenTailIsFull(t *testing.T) {
	a := NewPagedAllocator(48) // exactly two 24-byte objects per page
	a.Allocate(24)
	a.Allocate(24)
	require.Len(t, a.PageStats(), 1)
	a.Allocate(24)
	require.Len(t, a.PageStats(), 2)
}

func TestCleanupKeepsFullyAlivePageInPlace(t *testing.T) {
	a := NewPagedAllocator(4096)
	outline := []uint64{0} // N=0, no bitmap chunks
	outlineAddr := FromWords(outline)
	objSlot := a.Allocate(8)
	writeWord(objSlot, addrToWord(Addr(outlineAddr)))
	obj := objSlot.add(1)

	alive := map[Addr]struct{}{obj: {}}
	relocation := a.Cleanup(alive)
	require.Empty(t, relocation)
	require.Equal(t, int64(8), a.TotalOccupied())
}

func TestCleanupEvacuatesPartiallyAlivePage(t *testing.T) {
	a := NewPagedAllocator(4096)
	outline := []uint64{0}
	outlineAddr := Addr(FromWords(outline))

	deadSlot := a.Allocate(8)
	writeWord(deadSlot, addrToWord(outlineAddr))
	liveSlot := a.Allocate(8)
	writeWord(liveSlot, addrToWord(outlineAddr))
	live := liveSlot.add(1)

	alive := map[Addr]struct{}{live: {}}
	relocation := a.Cleanup(alive)

	require.Len(t, relocation, 1)
	newAddr, ok := relocation[live]
	require.True(t, ok)
	require.NotEqual(t, live, newAddr)
	require.Equal(t, int64(8), a.TotalOccupied())
}

package compilerstub

import (
	"testing"

	"github.com/mhorod/cacophony/internal/gc"
	"github.com/stretchr/testify/require"
)

func TestNewFrameLaysOutSlotsDescending(t *testing.T) {
	arena := NewOutlineArena()
	outline := arena.Intern(3, 0, 1)

	caller := gc.Addr(0x1000)
	f := NewFrame(3, outline, caller)

	require.Equal(t, caller, f.GetSlot(0))
	f.SetSlot(2, gc.Addr(7))
	require.Equal(t, uint64(7), gc.ReadWord(f.FP().Sub(2)))
	require.Equal(t, gc.AddrToWord(caller), gc.ReadWord(f.FP()))
}

func TestNewFrameZeroesNonLinkReferenceSlots(t *testing.T) {
	arena := NewOutlineArena()
	outline := arena.Intern(3, 0, 1, 2)

	f := NewFrame(3, outline, gc.Addr(0xABCD))
	require.Equal(t, gc.Addr(0xABCD), f.GetSlot(0))
	require.Equal(t, gc.Null, f.GetSlot(1))
	require.Equal(t, gc.Null, f.GetSlot(2))
}

func TestNewFramePanicsOnZeroSlots(t *testing.T) {
	arena := NewOutlineArena()
	outline := arena.Intern(0)
	require.Panics(t, func() { NewFrame(0, outline, gc.Null) })
}

func TestSetGetSlotRoundTrip(t *testing.T) {
	arena := NewOutlineArena()
	outline := arena.Intern(2, 0)
	f := NewFrame(2, outline, gc.Null)

	f.SetSlot(1, gc.Addr(42))
	require.Equal(t, gc.Addr(42), f.GetSlot(1))
}

func TestSlotIndexOutOfRangePanics(t *testing.T) {
	arena := NewOutlineArena()
	outline := arena.Intern(1, 0)
	f := NewFrame(1, outline, gc.Null)
	require.Panics(t, func() { f.GetSlot(1) })
}

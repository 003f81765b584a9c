package compilerstub

import (
	"testing"

	"github.com/mhorod/cacophony/internal/gc"
	"github.com/stretchr/testify/require"
)

func TestInternBuildsDecodableOutline(t *testing.T) {
	arena := NewOutlineArena()
	addr := arena.Intern(3, 0, 2)

	outline := gc.Outline(addr)
	require.Equal(t, int64(3), outline.N())
	require.Equal(t, []int64{0, 2}, outline.RefOffsets())
}

func TestInternRejectsOutOfRangeOffset(t *testing.T) {
	arena := NewOutlineArena()
	require.Panics(t, func() { arena.Intern(2, 5) })
}

func TestInternedOutlinesKeepStableAddresses(t *testing.T) {
	arena := NewOutlineArena()
	a := arena.Intern(1, 0)
	b := arena.Intern(1, 0)
	require.NotEqual(t, a, b)

	// Interning more outlines must not move addresses already handed
	// out.
	for i := 0; i < 50; i++ {
		arena.Intern(4)
	}
	require.Equal(t, int64(1), gc.Outline(a).N())
	require.Equal(t, int64(1), gc.Outline(b).N())
}

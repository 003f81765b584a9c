package gc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func makeOutline(n int64, refs ...int64) Outline {
	chunks := (n + 63) / 64
	buf := make([]uint64, 1+chunks)
	buf[0] = uint64(n)
	for _, r := range refs {
		buf[1+r/64] |= uint64(1) << uint(r%64)
	}
	return Outline(FromWords(buf))
}

func TestRefOffsetsDecodesBitmap(t *testing.T) {
	o := makeOutline(70, 0, 5, 64, 69)
	require.Equal(t, []int64{0, 5, 64, 69}, o.RefOffsets())
}

func TestRefOffsetsEmptyForNoReferences(t *testing.T) {
	o := makeOutline(4)
	require.Empty(t, o.RefOffsets())
}

func TestOutlineSizeBytes(t *testing.T) {
	o := makeOutline(2)
	require.Equal(t, int64(24), o.sizeBytes())
}

func TestRefOffsetsPanicsOnBitPastObjectEnd(t *testing.T) {
	o := makeOutline(1, 0)
	// Corrupt the bitmap to flag a second bit the object doesn't have.
	writeWord(Addr(o).add(1), 0b11)
	require.Panics(t, func() { o.RefOffsets() })
}

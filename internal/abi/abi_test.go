package abi

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIOWriteInt(t *testing.T) {
	var out bytes.Buffer
	io_ := NewIO(&out, strings.NewReader(""))
	io_.WriteInt(42)
	io_.WriteInt(-7)
	require.Equal(t, "42\n-7\n", out.String())
}

func TestIOReadInt(t *testing.T) {
	io_ := NewIO(&bytes.Buffer{}, strings.NewReader("  12   -34\n56"))
	require.Equal(t, int64(12), io_.ReadInt())
	require.Equal(t, int64(-34), io_.ReadInt())
	require.Equal(t, int64(56), io_.ReadInt())
}

func TestHeapAllocIsZeroedAndAddressable(t *testing.T) {
	h := NewHeap()
	base := h.Alloc(16)
	require.Equal(t, uint64(0), h.GetMem(base, 0))
	h.PutMem(base, 1, 99)
	require.Equal(t, uint64(99), h.GetMem(base, 1))
	require.Equal(t, uint64(0), h.GetMem(base, 0))
}

func TestRandintIsDeterministic(t *testing.T) {
	a := NewRand()
	b := NewRand()
	for i := 0; i < 20; i++ {
		require.Equal(t, a.Randint(0, 99), b.Randint(0, 99))
	}
}

func TestRandintStaysInRange(t *testing.T) {
	g := NewRand()
	for i := 0; i < 1000; i++ {
		v := g.Randint(5, 9)
		require.GreaterOrEqual(t, v, int64(5))
		require.LessOrEqual(t, v, int64(9))
	}
}

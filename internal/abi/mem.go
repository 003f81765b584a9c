package abi

import "github.com/mhorod/cacophony/internal/gc"

// Heap is the untyped allocator behind alloc/get_mem/put_mem: raw,
// unmanaged memory that the garbage collector never scans or moves.
// It exists for the handful of runtime calls that predate or bypass
// alloc_struct entirely (spec section 6.1 lists alloc, get_mem and
// put_mem alongside alloc_struct as distinct entry points).
//
// retained keeps every block reachable for the life of the process:
// Cacophony programs never free raw memory, so neither does this.
type Heap struct {
	retained [][]byte
}

// NewHeap creates an empty untyped heap.
func NewHeap() *Heap {
	return &Heap{}
}

// Alloc returns sizeBytes of zeroed, word-aligned memory.
func (h *Heap) Alloc(sizeBytes int64) gc.Addr {
	block := make([]byte, sizeBytes)
	h.retained = append(h.retained, block)
	return gc.FromBytes(block)
}

// GetMem reads the word at offset words into the block starting at base.
func (h *Heap) GetMem(base gc.Addr, offset int64) uint64 {
	return gc.ReadWord(base.Add(offset))
}

// PutMem writes v to the word at offset words into the block starting
// at base.
func (h *Heap) PutMem(base gc.Addr, offset int64, v uint64) {
	gc.WriteWord(base.Add(offset), v)
}

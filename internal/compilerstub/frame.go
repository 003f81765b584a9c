package compilerstub

import "github.com/mhorod/cacophony/internal/gc"

// Frame is a constructed stack frame: N slots laid out in descending
// address order below the outline pointer, exactly as spec section 3
// describes ("Stack frame"). It stands in for what a function
// prologue does on entry to a managed function.
type Frame struct {
	words []uint64 // retained for the frame's lifetime; length N+1
	fp    gc.Addr
	n     int64
}

// NewFrame builds a frame of n slots described by outline, with
// slot 0 set to callerFP (the calling convention's frame-link store).
// Every other reference slot the outline flags is zeroed before
// return, via CleanFrameRefs, matching the contract that a new
// frame's reference slots read null before any alloc_struct or run_gc
// can observe them.
//
// A frame must reserve at least slot 0: real calling conventions
// always spend one slot linking to the caller, and the bottom frame
// (spec section 3, invariant 5) still reserves it even though the
// link is never followed.
func NewFrame(n int64, outline gc.Addr, callerFP gc.Addr) *Frame {
	if n < 1 {
		panic("compilerstub: a frame must reserve at least slot 0 for the caller link")
	}
	words := make([]uint64, n+1)
	base := gc.FromWords(words)
	fp := base.Add(n - 1)
	gc.WriteWord(fp.Add(1), gc.AddrToWord(outline))

	f := &Frame{words: words, fp: fp, n: n}
	f.SetSlot(0, callerFP)
	CleanFrameRefs(outline, fp)
	return f
}

// FP returns the frame pointer: the data pointer of slot 0.
func (f *Frame) FP() gc.Addr { return f.fp }

func (f *Frame) checkSlot(i int64) {
	if i < 0 || i >= f.n {
		panic("compilerstub: frame slot index out of range")
	}
}

// SetSlot writes a value into slot i.
func (f *Frame) SetSlot(i int64, v gc.Addr) {
	f.checkSlot(i)
	gc.WriteWord(f.fp.Sub(i), gc.AddrToWord(v))
}

// GetSlot reads the value of slot i.
func (f *Frame) GetSlot(i int64) gc.Addr {
	f.checkSlot(i)
	return gc.WordToAddr(gc.ReadWord(f.fp.Sub(i)))
}

// CleanFrameRefs zeroes every reference slot a frame's outline flags,
// except slot 0 (the caller-frame link, which the calling convention
// owns and which must stay intact for the walker to find the rest of
// the stack). This is the pure-Go equivalent of the assembler
// clean_refs helper of spec section 6.1: because fp is an explicit
// value in this design rather than an implicit register, there is no
// register state clean_refs needs assembly to reach.
func CleanFrameRefs(outline gc.Addr, fp gc.Addr) {
	desc := gc.Outline(outline)
	for _, offset := range desc.RefOffsets() {
		if offset == 0 {
			continue
		}
		gc.WriteWord(fp.Sub(offset), 0)
	}
}

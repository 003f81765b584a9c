package gc

// Outline is the address of a compiler-emitted, read-only descriptor:
// word 0 holds the number of data words N, followed by
// ceil(N/64) bitmap chunks whose bit i (chunk i/64, position i mod 64)
// marks word i of the described object or frame as a reference slot
// (spec section 3, "Outline"). Outlines are never moved or reclaimed,
// so an Outline value is stable for the lifetime of the process.
type Outline Addr

// N returns the number of data words the outline describes (not
// counting the outline pointer slot itself).
func (o Outline) N() int64 {
	return int64(readWord(Addr(o)))
}

func (o Outline) chunks() int64 {
	n := o.N()
	return (n + 63) / 64
}

func (o Outline) chunk(i int64) uint64 {
	return readWord(Addr(o).add(1 + i))
}

// RefOffsets decodes the bitmap into the ordered list of word offsets
// that are reference slots. A bit set past word N-1 indicates a
// malformed outline (spec section 4.2, "Failure") and this panics
// rather than returning a slot outside the object.
func (o Outline) RefOffsets() []int64 {
	n := o.N()
	var offsets []int64
	for c := int64(0); c < o.chunks(); c++ {
		word := o.chunk(c)
		for b := int64(0); b < 64; b++ {
			if word&(uint64(1)<<uint(b)) == 0 {
				continue
			}
			offset := c*64 + b
			if offset >= n {
				undefined(ErrMalformedOutline, "reference bit set past object end")
			}
			offsets = append(offsets, offset)
		}
	}
	return offsets
}

// sizeBytes returns the total size in bytes of an object described by
// this outline: the outline pointer slot plus N data words (spec
// section 3, "Object (heap)").
func (o Outline) sizeBytes() int64 {
	return wordSize * (1 + o.N())
}

// objectOutline reads the outline pointer stored just before a heap
// object's data pointer.
func objectOutline(dataPtr Addr) Outline {
	raw := readWord(dataPtr.sub(1))
	if raw == 0 {
		undefined(ErrNilOutline, "heap object has nil outline pointer")
	}
	return Outline(wordToAddr(raw))
}

// frameOutline reads the outline pointer stored one word above a
// frame pointer (spec section 3, "Stack frame").
func frameOutline(fp Addr) Outline {
	raw := readWord(fp.add(1))
	if raw == 0 {
		undefined(ErrNilOutline, "stack frame has nil outline pointer")
	}
	return Outline(wordToAddr(raw))
}

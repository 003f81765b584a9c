package gc

// Walker performs a depth-first traversal of the objects reachable
// from a frame pointer, following typed references described by
// per-frame/per-object outlines (spec section 4.2).
//
// It runs in one of two modes: Mark collects the set of live data
// pointers; Remap rewrites references through a relocation map
// produced by a prior cleanup. Both share the same traversal so that
// the two passes can never disagree about what is reachable.
type Walker struct {
	stackBottom Addr

	visited    map[Addr]struct{}
	remapMode  bool
	relocation map[Addr]Addr
}

// NewWalker creates a walker rooted at the given stack bottom. The
// bottom frame's data pointer is compared against stackBottom to
// decide when to stop following the caller-frame chain (spec section
// 4.2, "Bottom-frame detection").
func NewWalker(stackBottom Addr) *Walker {
	return &Walker{stackBottom: stackBottom}
}

// Mark walks from fp in marking mode and returns the set of live
// heap-object data pointers.
func (w *Walker) Mark(fp Addr) map[Addr]struct{} {
	w.reset(false, nil)
	w.visit(fp, true)
	return w.visited
}

// Remap walks from fp in remapping mode, rewriting every reference
// slot whose current value is a key of relocation to the mapped
// value before following it.
func (w *Walker) Remap(fp Addr, relocation map[Addr]Addr) {
	w.reset(true, relocation)
	w.visit(fp, true)
}

func (w *Walker) reset(remapMode bool, relocation map[Addr]Addr) {
	w.remapMode = remapMode
	w.relocation = relocation
	w.visited = make(map[Addr]struct{})
}

// visit implements the traversal contract of spec section 4.2.
func (w *Walker) visit(ptr Addr, isFrame bool) {
	if !isFrame {
		w.visited[ptr] = struct{}{}
	}

	var outline Outline
	if isFrame {
		outline = frameOutline(ptr)
	} else {
		outline = objectOutline(ptr)
	}

	offsets := outline.RefOffsets()
	isBottomFrame := isFrame && ptr == w.stackBottom

	for _, offset := range offsets {
		if isBottomFrame && offset == 0 {
			// There is no caller to follow from the bottom frame
			// (invariant 5).
			continue
		}

		slot := slotAddr(ptr, offset, isFrame)
		ref := wordToAddr(readWord(slot))
		if ref == Null {
			continue
		}

		if w.remapMode {
			if newRef, ok := w.relocation[ref]; ok {
				writeWord(slot, addrToWord(newRef))
				ref = newRef
			}
		}

		nextIsFrame := isFrame && offset == 0
		if nextIsFrame {
			// The caller-frame chain is linear, so a frame is only
			// ever visited once; no membership check is needed.
			w.visit(ref, true)
			continue
		}
		if _, seen := w.visited[ref]; !seen {
			w.visit(ref, false)
		}
	}
}

// slotAddr computes the address of slot `offset` of the object or
// frame at ptr. Heap object slots increase with address; frame slots
// decrease with address (spec section 3).
func slotAddr(ptr Addr, offset int64, isFrame bool) Addr {
	if isFrame {
		return ptr.sub(offset)
	}
	return ptr.add(offset)
}

package gc

// DefaultGCWait is the reference GC-trigger policy's period: the
// number of alloc_struct calls between forced collections (spec
// section 6.3, GC_WAIT). A value of 1 forces a collection on every
// allocation, the stress-test setting.
const DefaultGCWait = 10

// Frontend is the alloc_struct entry point compiled code calls (spec
// section 4.4). It owns the reference GC-trigger policy: a simple
// call counter. Nothing else in this package decides when to collect;
// a caller that wants a different policy can drive Collector.RunGC
// directly instead of going through Frontend.
type Frontend struct {
	Allocator *PagedAllocator
	Collector *Collector
	GCWait    int

	counter      int
	inCollection bool
}

// NewFrontend wires an allocator and collector behind the reference
// trigger policy. gcWait <= 0 is treated as DefaultGCWait.
func NewFrontend(allocator *PagedAllocator, collector *Collector, gcWait int) *Frontend {
	if gcWait <= 0 {
		gcWait = DefaultGCWait
	}
	return &Frontend{Allocator: allocator, Collector: collector, GCWait: gcWait}
}

// AllocStruct allocates a new object described by outline, possibly
// triggering a collection first, and returns its data pointer with
// every reference slot zeroed (spec section 4.4).
func (f *Frontend) AllocStruct(outline Addr, fp Addr) Addr {
	if f.inCollection {
		undefined(ErrReentrantAlloc, "alloc_struct called during a collection cycle")
	}

	f.counter++
	if f.counter == f.GCWait {
		f.counter = 0
		f.inCollection = true
		f.Collector.RunGC(fp)
		f.inCollection = false
	}

	desc := Outline(outline)
	sizeBytes := desc.sizeBytes()
	storage := f.Allocator.Allocate(sizeBytes)
	writeWord(storage, addrToWord(outline))
	dataPtr := storage.add(1)

	// Zero only the reference slots, not the whole object: a later
	// cycle might observe this object before compiled code has
	// written its scalar fields, but it will never dereference an
	// uninitialized reference slot (Design Notes, "zeroes the new
	// object's bytes" resolution).
	for _, offset := range desc.RefOffsets() {
		writeWord(dataPtr.add(offset), 0)
	}

	return dataPtr
}

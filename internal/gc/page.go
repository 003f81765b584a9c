package gc

// DefaultRegularPageSize is the default byte size of a regular page
// (spec section 6.3, REGULAR_PAGE_SIZE).
const DefaultRegularPageSize = 4096

// page is one entry in the PagedAllocator's page list (spec section
// 3, "Memory page"). A regular page holds many small objects; an
// oversize page holds exactly one object larger than the regular page
// size. backing keeps the page's storage reachable so the host Go
// runtime's own collector never reclaims it out from under us.
type page struct {
	base     Addr
	size     int64
	occupied int64
	oversize bool
	backing  []byte
}

func newPage(sizeBytes int64, oversize bool) *page {
	backing := make([]byte, sizeBytes)
	base := Addr(bytesAddr(backing))
	return &page{base: base, size: sizeBytes, occupied: 0, oversize: oversize, backing: backing}
}

func (p *page) freeSpace() int64 {
	return p.size - p.occupied
}

// walk visits every live-at-allocation-time object on the page in
// address order, reading each object's size from its own outline.
// This mirrors the reference implementation's page traversal
// (lib_cacophony/gc/gc.cpp, traverse_pages): it relies on invariant 4
// (occupied is an exact sum of placed object sizes, no gaps) to know
// where each object ends.
func (p *page) walk(visit func(dataPtr Addr, sizeBytes int64)) {
	offset := int64(0)
	for offset < p.occupied {
		outlineSlot := p.base.add(offset / wordSize)
		dataPtr := outlineSlot.add(1)
		outline := Outline(wordToAddr(readWord(outlineSlot)))
		size := outline.sizeBytes()
		visit(dataPtr, size)
		offset += size
	}
}

// PagedAllocator owns an ordered list of pages and services bump
// allocations for compiled code (spec section 4.1).
type PagedAllocator struct {
	pages           []*page
	regularPageSize int64
}

// NewPagedAllocator creates an allocator with no pages yet; the first
// Allocate call creates the first page.
func NewPagedAllocator(regularPageSize int64) *PagedAllocator {
	if regularPageSize <= 0 || regularPageSize%wordSize != 0 {
		panic("gc: regular page size must be a positive word multiple")
	}
	return &PagedAllocator{regularPageSize: regularPageSize}
}

func (a *PagedAllocator) tail() *page {
	if len(a.pages) == 0 {
		return nil
	}
	return a.pages[len(a.pages)-1]
}

// Allocate returns a word-aligned address with at least sizeBytes of
// writable memory (spec section 4.1, "allocate").
func (a *PagedAllocator) Allocate(sizeBytes int64) Addr {
	if sizeBytes <= 0 || sizeBytes%wordSize != 0 {
		panic("gc: allocate: size must be a positive word multiple")
	}
	if sizeBytes > a.regularPageSize {
		p := newPage(sizeBytes, true)
		p.occupied = sizeBytes
		a.pages = append(a.pages, p)
		return p.base
	}

	t := a.tail()
	if t == nil || t.freeSpace() < sizeBytes {
		t = newPage(a.regularPageSize, false)
		a.pages = append(a.pages, t)
	}
	addr := t.base.add(t.occupied / wordSize)
	t.occupied += sizeBytes

	// Bound wasted tail fragmentation: the page with the most free
	// room becomes the tail (spec section 4.1).
	if len(a.pages) > 1 {
		prev := a.pages[len(a.pages)-2]
		if prev.freeSpace() > t.freeSpace() {
			a.pages[len(a.pages)-1], a.pages[len(a.pages)-2] = prev, t
		}
	}
	return addr
}

// Pages returns the allocator's current page list, for bookkeeping by
// the Collector. The returned slice must not be mutated.
func (a *PagedAllocator) Pages() []*page {
	return a.pages
}

// TotalOccupied sums occupied bytes across every page (spec section 8,
// P3).
func (a *PagedAllocator) TotalOccupied() int64 {
	var total int64
	for _, p := range a.pages {
		total += p.occupied
	}
	return total
}

// PageStats is a point-in-time snapshot of one page, for monitoring
// and tests that want to reason about page-level bookkeeping without
// reaching into the unexported page type.
type PageStats struct {
	Size     int64
	Occupied int64
	Oversize bool
}

// PageStats returns a snapshot of every page in allocator order; the
// last entry is the current tail (spec section 8, S5).
func (a *PagedAllocator) PageStats() []PageStats {
	stats := make([]PageStats, len(a.pages))
	for i, p := range a.pages {
		stats[i] = PageStats{Size: p.size, Occupied: p.occupied, Oversize: p.oversize}
	}
	return stats
}

// Cleanup compacts the heap: pages entirely covered by alive objects
// are kept in place; the rest are evacuated into fresh or reused
// pages. It returns the old-data-pointer to new-data-pointer
// relocation map for objects that moved (spec section 4.3).
//
// Only the prose contract of section 4.3 is followed here, not the
// literal pointer bookkeeping of the original C++ (which never
// re-attaches a reused scratch page to the live list, silently
// leaking it); see DESIGN.md.
func (a *PagedAllocator) Cleanup(alive map[Addr]struct{}) map[Addr]Addr {
	detached := a.pages
	a.pages = nil
	relocation := make(map[Addr]Addr)
	processed := make(map[*page]bool, len(detached))

	// Step 2: pages entirely covered by alive objects are untouched.
	for _, p := range detached {
		var aliveBytes int64
		p.walk(func(dataPtr Addr, size int64) {
			if _, ok := alive[dataPtr]; ok {
				aliveBytes += size
			}
		})
		if aliveBytes == p.occupied {
			a.pages = append(a.pages, p)
			processed[p] = true
		}
	}

	// Step 3: evacuate the rest, reusing at most one scratch page.
	var scratch *page
	for _, p := range detached {
		if processed[p] {
			continue
		}
		var survivors []Addr
		p.walk(func(dataPtr Addr, _ int64) {
			if _, ok := alive[dataPtr]; ok {
				survivors = append(survivors, dataPtr)
			}
		})
		if len(survivors) == 0 {
			if scratch == nil {
				scratch = p
			} else {
				a.freePage(p)
			}
			continue
		}
		for _, dataPtr := range survivors {
			outline := objectOutline(dataPtr)
			size := outline.sizeBytes()
			dst := a.tail()
			if dst == nil || dst.freeSpace() < size {
				if scratch != nil {
					dst = scratch
					dst.occupied = 0
					scratch = nil
				} else {
					dst = newPage(a.regularPageSize, false)
				}
				a.pages = append(a.pages, dst)
			}
			newDataPtr := dst.base.add(dst.occupied/wordSize + 1)
			copyWords(dst.base.add(dst.occupied/wordSize), dataPtr.sub(1), size)
			relocation[dataPtr] = newDataPtr
			dst.occupied += size
		}
		if scratch == nil {
			scratch = p
		} else {
			a.freePage(p)
		}
	}
	if scratch != nil {
		a.freePage(scratch)
	}
	return relocation
}

// freePage drops the allocator's reference to a page's backing store,
// letting the host Go runtime reclaim it. Page-granular reclamation
// only; individual objects are never freed (spec section 5).
func (a *PagedAllocator) freePage(p *page) {
	p.backing = nil
}

// Package gc implements the Cacophony runtime garbage collector: a
// moving, copying, compacting collector for a single-threaded,
// stack-rooted heap.
//
// The collector has three tightly coupled parts, each in its own
// file:
//
//	PagedAllocator (page.go)   bump-allocates fixed-size and oversize
//	                           objects out of a list of memory pages,
//	                           and compacts survivors during cleanup.
//
//	Walker (walker.go)         discovers live objects by walking the
//	                           stack and the objects reachable from
//	                           it, following a compiler-emitted
//	                           bitmap "outline" at each frame and
//	                           object. The same walk rewrites
//	                           references when run in remap mode.
//
//	Collector (collector.go)   orchestrates one cycle: mark, then
//	                           cleanup, then remap.
//
// alloc_struct (frontend.go) is the single entry point compiled code
// calls; it decides whether a call triggers a cycle, then allocates
// and zeroes the new object's reference slots.
//
// None of this package knows about the compiler that emits outlines,
// or about any particular calling convention beyond "a frame pointer
// is a word-sized address, passed explicitly." Those concerns live in
// internal/compilerstub.
//
// The collector is not safe for concurrent use. It is a synchronous
// library call invoked from the same thread that mutates the heap;
// see spec section 5 ("single-threaded, synchronous").
package gc

package gc

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Config holds the compile-time tuning knobs of spec section 6.3.
type Config struct {
	// RegularPageSize is the byte size of a regular page. Zero means
	// DefaultRegularPageSize.
	RegularPageSize int64
	// GCWait is the number of alloc_struct calls between forced
	// collections. Zero means DefaultGCWait.
	GCWait int
	// Log receives structured collection-cycle events. Nil discards
	// them.
	Log *logrus.Entry
}

func (c Config) normalized() Config {
	if c.RegularPageSize <= 0 {
		c.RegularPageSize = DefaultRegularPageSize
	}
	if c.GCWait <= 0 {
		c.GCWait = DefaultGCWait
	}
	return c
}

// Runtime wires the allocator, walker, collector, and frontend
// together behind a single value, installed once per process at a
// known stack bottom (spec section 6.4, "Process state").
//
// A C runtime would keep this state as a handful of process-wide
// globals; Install/Global below give the same "installed once, known
// everywhere" semantics through one addressable value instead, while
// the type itself stays an ordinary value any caller can construct
// directly for isolated tests.
type Runtime struct {
	Allocator *PagedAllocator
	Walker    *Walker
	Collector *Collector
	Frontend  *Frontend
	Config    Config
}

// New constructs a Runtime rooted at stackBottom — the data pointer of
// the program's first (bottom) stack frame — with the given tuning
// knobs.
func New(stackBottom Addr, cfg Config) *Runtime {
	cfg = cfg.normalized()
	allocator := NewPagedAllocator(cfg.RegularPageSize)
	walker := NewWalker(stackBottom)
	collector := NewCollector(walker, allocator, cfg.Log)
	frontend := NewFrontend(allocator, collector, cfg.GCWait)
	return &Runtime{
		Allocator: allocator,
		Walker:    walker,
		Collector: collector,
		Frontend:  frontend,
		Config:    cfg,
	}
}

// AllocStruct is the alloc_struct entry point (spec section 6.1).
func (r *Runtime) AllocStruct(outline Addr, fp Addr) Addr {
	return r.Frontend.AllocStruct(outline, fp)
}

// RunGC forces a collection cycle rooted at fp, bypassing the trigger
// policy.
func (r *Runtime) RunGC(fp Addr) map[Addr]Addr {
	return r.Collector.RunGC(fp)
}

var (
	globalOnce sync.Once
	global     *Runtime
)

// Install installs the process-wide Runtime exactly once; subsequent
// calls are no-ops and return the first installation, matching
// stack_bottom's "installed once at program entry... immutable
// thereafter" contract (spec section 6.4).
func Install(stackBottom Addr, cfg Config) *Runtime {
	globalOnce.Do(func() {
		global = New(stackBottom, cfg)
	})
	return global
}

// Global returns the process-wide Runtime installed by Install. It
// panics if nothing has installed one yet — compiled code's startup
// sequence is expected to call Install before any alloc_struct call.
func Global() *Runtime {
	if global == nil {
		panic("gc: runtime not installed; call gc.Install at program startup")
	}
	return global
}

package gc

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Collector orchestrates a collection cycle: mark, then cleanup, then
// remap (spec section 4.5). No other work runs during a cycle; the
// mutator is paused simply because the collector is a synchronous
// library call.
type Collector struct {
	Walker    *Walker
	Allocator *PagedAllocator
	log       *logrus.Entry
}

// NewCollector wires a walker and allocator into a collector. A nil
// logger runs with a logrus logger whose output is discarded.
func NewCollector(walker *Walker, allocator *PagedAllocator, log *logrus.Entry) *Collector {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = logrus.NewEntry(l)
	}
	return &Collector{Walker: walker, Allocator: allocator, log: log}
}

// RunGC performs one cycle rooted at fp and returns the relocation map
// produced by cleanup, mostly useful for tests and logging; compiled
// code has no use for the return value.
func (c *Collector) RunGC(fp Addr) map[Addr]Addr {
	before := c.Allocator.TotalOccupied()
	alive := c.Walker.Mark(fp)

	relocation := c.Allocator.Cleanup(alive)
	c.Walker.Remap(fp, relocation)

	after := c.Allocator.TotalOccupied()
	c.log.WithFields(logrus.Fields{
		"live_objects":  len(alive),
		"relocated":     len(relocation),
		"pages":         len(c.Allocator.Pages()),
		"occupied_pre":  before,
		"occupied_post": after,
	}).Debug("gc: cycle complete")

	return relocation
}

// Package abi implements the small C-ABI surface spec section 6.1
// groups under "runtime support calls": I/O, untyped memory, the
// deterministic random helper, assertion, and the stack-alignment
// check. None of it is part of the garbage collector itself — it is
// the rest of what a Cacophony binary links against, kept separate so
// internal/gc stays free of anything that isn't the collector.
package abi

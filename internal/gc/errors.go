package gc

import "github.com/pkg/errors"

// Error taxonomy (spec section 7).
//
// Fatal errors terminate the process outright — the collector trusts
// the compiler and has no way to continue once one of these fires.
// Undefined-behavior errors are contract violations by compiled code;
// this implementation chooses to panic rather than silently corrupt
// the heap, which lets a recovering test harness tell which contract
// was violated (the wrapped sentinel error) and at which step (the
// wrapping message).
var (
	// ErrMalformedOutline is wrapped and panicked when an outline's
	// bitmap claims a reference slot past the object's word count.
	ErrMalformedOutline = errors.New("gc: malformed outline")

	// ErrNilOutline is wrapped and panicked when a heap object's
	// outline pointer is null.
	ErrNilOutline = errors.New("gc: nil outline pointer")

	// ErrReentrantAlloc is wrapped and panicked if alloc_struct is
	// called again while a collection cycle driven by an earlier call
	// is still in progress.
	ErrReentrantAlloc = errors.New("gc: re-entrant alloc_struct")
)

// undefined panics, wrapping cause with the contract it violated. The
// Fatal category of spec section 7 (OS allocation failure, check_rsp,
// cassert) has no call site in this package — it belongs to
// internal/abi, which owns the process-terminating runtime calls.
func undefined(cause error, context string) {
	panic(errors.Wrap(cause, context))
}

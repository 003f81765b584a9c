//go:build !amd64

package abi

// checkRSP has no portable implementation: the alignment check is
// defined in terms of the x86-64 hardware stack pointer. Other
// architectures report aligned unconditionally rather than fail a
// check that was never meaningful for them.
func checkRSP() bool { return true }

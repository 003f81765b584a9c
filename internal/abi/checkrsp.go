package abi

import "os"

// CheckRSP exits with status 50 if the hardware stack pointer is
// misaligned, matching check_rsp's reference behavior: a dedicated
// exit code distinct from cassert's, because a misaligned stack is a
// code-generation bug rather than a runtime assertion failure.
func CheckRSP() {
	if checkRSP() {
		return
	}
	os.Stderr.WriteString("check_rsp: misaligned stack pointer\n")
	os.Exit(50)
}

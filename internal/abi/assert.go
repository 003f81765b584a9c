package abi

import "os"

// Cassert exits the process with status 1 if cond is false, matching
// cassert's behavior exactly: no panic, no stack trace, just a one-line
// message on stderr and exit(1).
func Cassert(cond bool, msg string) {
	if cond {
		return
	}
	os.Stderr.WriteString("cassert: " + msg + "\n")
	os.Exit(1)
}

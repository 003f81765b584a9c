//go:build amd64

package abi

// checkRSP is implemented in checkrsp_amd64.s: it reads the hardware
// %rsp directly, which no Go expression can name.
func checkRSP() bool

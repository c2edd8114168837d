//go:build amd64

package attacks

import "golang.org/x/sys/cpu"

// hasBMI2 is resolved once at process start; every subsequent pext call
// takes the same branch, so callers never re-check the feature bit.
var hasBMI2 = cpu.X86.HasBMI2

// pextHardware is implemented in pext_amd64.s using the PEXTQ instruction.
// It must only be called when hasBMI2 is true.
func pextHardware(src, mask uint64) uint64

func pext(src, mask uint64) uint64 {
	if hasBMI2 {
		return pextHardware(src, mask)
	}
	return pextSoftware(src, mask)
}

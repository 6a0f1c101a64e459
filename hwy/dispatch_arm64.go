//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

func init() {
	features = Features{
		Arch:    "arm64",
		HasNEON: cpu.ARM64.HasASIMD,
		HasFMA:  cpu.ARM64.HasASIMD,
		HasSVE:  cpu.ARM64.HasSVE,
	}

	// Check for HWY_NO_SIMD environment variable first
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	// ARM64 (AArch64) always has NEON (ASIMD) available.
	// It's part of the ARMv8-A base architecture.
	if cpu.ARM64.HasASIMD {
		currentLevel = DispatchNEON
		currentWidth = 16 // NEON is 128-bit (16 bytes)
		currentName = "neon"
	} else {
		// Fallback to scalar (should never happen on ARMv8+)
		setScalarMode()
	}
}

package hwy

// Features is a snapshot of the CPU flags relevant to 128-bit float32
// kernels, as reported by golang.org/x/sys/cpu. It is filled once at init
// and does not change with HWY_NO_SIMD; CurrentLevel does.
type Features struct {
	// Arch is runtime.GOARCH for the detecting file.
	Arch string

	// x86-64
	HasSSE2   bool
	HasSSE41  bool
	HasAVX    bool
	HasAVX2   bool
	HasAVX512 bool

	// ARM64
	HasNEON bool
	HasSVE  bool

	// HasFMA reports hardware fused multiply-add. The kernels never use it;
	// it is reported because Go may contract x*y+z on such hosts.
	HasFMA bool
}

var features Features

// CPUFeatures returns the feature flags detected at startup.
func CPUFeatures() Features {
	return features
}

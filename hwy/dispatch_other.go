//go:build !amd64 && !arm64

package hwy

import "runtime"

func init() {
	// Other architectures fall back to scalar mode.
	features = Features{Arch: runtime.GOARCH}
	setScalarMode()
}

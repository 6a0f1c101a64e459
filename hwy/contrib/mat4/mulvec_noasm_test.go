//go:build noasm || purego

package mat4

import (
	"slices"
	"testing"
)

func TestNoasmUsesPortableKernels(t *testing.T) {
	if slices.Contains(Implementations(), "float32x4") {
		t.Errorf("Implementations() = %v, float32x4 must not be built with noasm or purego", Implementations())
	}
	if got := Implementation(); got != "scalar" {
		t.Errorf("Implementation() = %q, want scalar", got)
	}
}

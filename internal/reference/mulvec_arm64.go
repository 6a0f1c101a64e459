//go:build arm64 && !purego

package reference

import "github.com/goxgl/mat4simd/hwy/contrib/mat4"

// algo-vecmath v0.1.0 ships arm64 NEON assembly that does not assemble
// (VFMULD), so arm64 builds without the purego tag sum in plain Go.
// Products of float32 operands are exact in float64, which makes a fused
// multiply-add here give the same result as separate operations.

// MulVec4 returns x*m[0] + y*m[1] + z*m[2] + w*m[3] evaluated in float64.
func MulVec4(m mat4.Matrix4, v mat4.Vec4) [4]float64 {
	var acc [4]float64
	for r, s := range v.Array() {
		for c := range 4 {
			acc[c] += float64(s) * float64(m[r][c])
		}
	}
	return acc
}

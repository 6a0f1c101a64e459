//go:build !arm64 || purego

package reference

import (
	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/goxgl/mat4simd/hwy/contrib/mat4"
)

// MulVec4 returns x*m[0] + y*m[1] + z*m[2] + w*m[3] evaluated in float64.
func MulVec4(m mat4.Matrix4, v mat4.Vec4) [4]float64 {
	acc := make([]float64, 4)
	row := make([]float64, 4)
	scaled := make([]float64, 4)

	for r, s := range v.Array() {
		for c := range 4 {
			row[c] = float64(m[r][c])
		}
		vecmath.ScaleBlock(scaled, row, float64(s))
		vecmath.AddBlockInPlace(acc, scaled)
	}
	return [4]float64(acc)
}

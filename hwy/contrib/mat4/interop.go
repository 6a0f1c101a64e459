package mat4

import (
	"github.com/seqsense/pcgol/mat"
	"golang.org/x/image/math/f32"
)

// FromColumnMajor builds the Matrix4 for which MulVec4 computes M*v, given
// M stored column-major: element (r, c) at m[4*c+r]. Columns of M become
// rows of the result, so this is a straight copy.
func FromColumnMajor(m [16]float32) Matrix4 {
	var out Matrix4
	for r := range 4 {
		copy(out[r][:], m[4*r:4*r+4])
	}
	return out
}

// FromRowMajor builds the Matrix4 for which MulVec4 computes M*v, given M
// stored row-major: element (r, c) at m[4*r+c]. The storage is transposed.
func FromRowMajor(m [16]float32) Matrix4 {
	var out Matrix4
	for r := range 4 {
		for c := range 4 {
			out[c][r] = m[4*r+c]
		}
	}
	return out
}

// FromPCGol converts a pcgol transform (column-major).
func FromPCGol(m mat.Mat4) Matrix4 {
	return FromColumnMajor([16]float32(m))
}

// FromF32 converts an x/image/math/f32 matrix (row-major).
func FromF32(m f32.Mat4) Matrix4 {
	return FromRowMajor([16]float32(m))
}

// Vec4FromVec3 extends a point or direction with w. Use w=1 for points so
// that translations apply, w=0 for directions.
func Vec4FromVec3(v mat.Vec3, w float32) Vec4 {
	return Vec4{X: v[0], Y: v[1], Z: v[2], W: w}
}

// Vec3 drops w.
func (v Vec4) Vec3() mat.Vec3 {
	return mat.Vec3{v.X, v.Y, v.Z}
}

// Vec4FromF32 converts an x/image/math/f32 vector.
func Vec4FromF32(v f32.Vec4) Vec4 {
	return Vec4FromArray([4]float32(v))
}

// F32 returns v as an x/image/math/f32 vector.
func (v Vec4) F32() f32.Vec4 {
	return f32.Vec4(v.Array())
}

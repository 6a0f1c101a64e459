package mat4

// mulVec4Scalar is the pure Go kernel. The float32 conversions round each
// product before it is summed; without them the compiler may contract a
// product and a sum into a fused multiply-add on arm64 and friends.
func mulVec4Scalar(m Matrix4, vecs []Vec4) {
	for i := range vecs {
		v := vecs[i]
		var out [4]float32
		for c := range 4 {
			p0 := float32(v.X * m[0][c])
			p1 := float32(v.Y * m[1][c])
			p2 := float32(v.Z * m[2][c])
			p3 := float32(v.W * m[3][c])
			out[c] = (p0 + p1) + (p2 + p3)
		}
		vecs[i] = Vec4FromArray(out)
	}
}

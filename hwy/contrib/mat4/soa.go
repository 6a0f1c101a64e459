package mat4

import "github.com/goxgl/mat4simd/hwy"

// MulVec4SoA transforms vectors stored as four component slices: lane i
// of x, y, z and w is one vector, and all four slices are overwritten.
//
// The sixteen matrix entries are broadcast once; each step then handles
// hwy.MaxLanes[float32]() vectors at a time, with a masked step for the
// remainder. Per element the arithmetic and its association are the same
// as MulVec4, so the two layouts give bit-identical results.
//
// Panics if the four slices differ in length.
func MulVec4SoA(m Matrix4, x, y, z, w []float32) {
	n := len(x)
	if len(y) != n || len(z) != n || len(w) != n {
		panic("component slices differ in length")
	}
	if n == 0 {
		return
	}

	var b [4][4]hwy.Vec[float32]
	for r := range 4 {
		for c := range 4 {
			b[r][c] = hwy.Set(m[r][c])
		}
	}

	transform := func(vx, vy, vz, vw hwy.Vec[float32]) [4]hwy.Vec[float32] {
		var out [4]hwy.Vec[float32]
		for c := range 4 {
			p0 := hwy.Mul(vx, b[0][c])
			p1 := hwy.Mul(vy, b[1][c])
			p2 := hwy.Mul(vz, b[2][c])
			p3 := hwy.Mul(vw, b[3][c])
			out[c] = hwy.Add(hwy.Add(p0, p1), hwy.Add(p2, p3))
		}
		return out
	}

	hwy.ProcessWithTail[float32](n,
		func(offset int) {
			out := transform(
				hwy.Load(x[offset:]),
				hwy.Load(y[offset:]),
				hwy.Load(z[offset:]),
				hwy.Load(w[offset:]),
			)
			hwy.Store(out[0], x[offset:])
			hwy.Store(out[1], y[offset:])
			hwy.Store(out[2], z[offset:])
			hwy.Store(out[3], w[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[float32](count)
			out := transform(
				hwy.MaskLoad(mask, x[offset:]),
				hwy.MaskLoad(mask, y[offset:]),
				hwy.MaskLoad(mask, z[offset:]),
				hwy.MaskLoad(mask, w[offset:]),
			)
			hwy.MaskStore(mask, out[0], x[offset:])
			hwy.MaskStore(mask, out[1], y[offset:])
			hwy.MaskStore(mask, out[2], z[offset:])
			hwy.MaskStore(mask, out[3], w[offset:])
		},
	)
}

// SplitSoA copies vecs into four freshly allocated component slices.
func SplitSoA(vecs []Vec4) (x, y, z, w []float32) {
	x = make([]float32, len(vecs))
	y = make([]float32, len(vecs))
	z = make([]float32, len(vecs))
	w = make([]float32, len(vecs))
	for i, v := range vecs {
		x[i], y[i], z[i], w[i] = v.X, v.Y, v.Z, v.W
	}
	return x, y, z, w
}

// JoinSoA writes the component slices back into vecs. It panics if any
// slice is shorter than vecs.
func JoinSoA(vecs []Vec4, x, y, z, w []float32) {
	n := len(vecs)
	if len(x) < n || len(y) < n || len(z) < n || len(w) < n {
		panic("component slice too small")
	}
	for i := range vecs {
		vecs[i] = Vec4{X: x[i], Y: y[i], Z: z[i], W: w[i]}
	}
}

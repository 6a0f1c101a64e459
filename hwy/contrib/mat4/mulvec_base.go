package mat4

import "github.com/goxgl/mat4simd/hwy"

// BaseMulVec4 is MulVec4 written against the portable hwy operations.
//
// Each row is loaded once as a 4-lane vector. For every element the four
// components are broadcast with hwy.Set, multiplied by their rows and
// summed as (p0+p1)+(p2+p3). Set produces a full-width broadcast; Mul with
// a 4-lane row keeps the first four lanes, so the result always has
// exactly four lanes regardless of the dispatch width.
//
// It allocates per element and exists as the reference for the register
// implementations; MulVec4 never selects it.
func BaseMulVec4(m Matrix4, vecs []Vec4) {
	r0 := hwy.Load(m[0][:])
	r1 := hwy.Load(m[1][:])
	r2 := hwy.Load(m[2][:])
	r3 := hwy.Load(m[3][:])

	var out [4]float32
	for i := range vecs {
		v := &vecs[i]

		p0 := hwy.Mul(hwy.Set(v.X), r0)
		p1 := hwy.Mul(hwy.Set(v.Y), r1)
		p2 := hwy.Mul(hwy.Set(v.Z), r2)
		p3 := hwy.Mul(hwy.Set(v.W), r3)

		sum := hwy.Add(hwy.Add(p0, p1), hwy.Add(p2, p3))
		hwy.Store(sum, out[:])
		*v = Vec4FromArray(out)
	}
}

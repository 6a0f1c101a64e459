// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build amd64 && goexperiment.simd && !noasm && !purego

package mat4

import (
	"simd/archsimd"

	"github.com/goxgl/mat4simd/hwy"
)

func init() {
	// archsimd lowers 128-bit float ops to VEX encodings, which need AVX.
	hasAVX := hwy.CPUFeatures().HasAVX
	register(kernel{
		name:        "float32x4",
		fn:          mulVec4Float32x4,
		unsupported: !hasAVX,
	}, hasAVX && hwy.CurrentLevel().IsX86())
}

// broadcast4 replicates s into all four lanes (_mm_set1_ps).
func broadcast4(s float32) archsimd.Float32x4 {
	b := [4]float32{s, s, s, s}
	return archsimd.LoadFloat32x4Slice(b[:])
}

// mulVec4Float32x4 keeps the four rows in Float32x4 registers for the
// whole batch. VMULPS and VADDPS round each lane like the scalar path.
func mulVec4Float32x4(m Matrix4, vecs []Vec4) {
	r0 := archsimd.LoadFloat32x4Slice(m[0][:])
	r1 := archsimd.LoadFloat32x4Slice(m[1][:])
	r2 := archsimd.LoadFloat32x4Slice(m[2][:])
	r3 := archsimd.LoadFloat32x4Slice(m[3][:])

	var out [4]float32
	for i := range vecs {
		v := &vecs[i]

		p0 := broadcast4(v.X).Mul(r0)
		p1 := broadcast4(v.Y).Mul(r1)
		p2 := broadcast4(v.Z).Mul(r2)
		p3 := broadcast4(v.W).Mul(r3)

		p0.Add(p1).Add(p2.Add(p3)).StoreSlice(out[:])
		*v = Vec4FromArray(out)
	}
}

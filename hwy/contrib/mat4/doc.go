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

// Package mat4 transforms batches of four-component float32 vectors by a
// fixed 4x4 matrix, using 128-bit SIMD registers where the host offers
// them.
//
// # Kernel
//
// MulVec4 overwrites every element of a []Vec4 in place. For each vector
// v it broadcasts the four components, scales the matrix rows by them and
// sums the scaled rows:
//
//	v = (v.X*m[0] + v.Y*m[1]) + (v.Z*m[2] + v.W*m[3])
//
// Row r of a Matrix4 is the register scaled by component r. Under the
// column-vector convention (result = M*v) each Matrix4 row therefore holds
// a column of M; FromColumnMajor and FromRowMajor build a Matrix4 from the
// two common storage orders so that the kernel computes M*v.
//
// Every multiply and add is rounded separately to float32 and the sum is
// always associated as above, so all implementations return bit-identical
// results. No fused multiply-add is used on any path.
//
// # Implementations
//
//   - scalar: plain Go with explicit float32 rounding of each product
//   - hwy: the portable hwy.Vec operations (Set, Load, Mul, Add, Store)
//   - float32x4: archsimd.Float32x4 registers (amd64, GOEXPERIMENT=simd, AVX)
//
// MulVec4 picks one at init from hwy.CurrentLevel; Implementation reports
// which. Setting HWY_NO_SIMD selects the scalar path at run time, and the
// noasm or purego build tags leave float32x4 out of the binary.
//
// # Batches
//
//   - MulVec4SoA transforms vectors stored as four component slices.
//   - MulVec4Parallel spreads a large batch over a workerpool.Pool, and
//     MulVec4SoAParallel does the same for component slices.
//
// # Example Usage
//
//	m := mat4.Diagonal(1, 2, 3, 4)
//	vecs := []mat4.Vec4{{X: 1, Y: 1, Z: 1, W: 1}}
//	mat4.MulVec4(m, vecs)
//	// vecs[0] = {1, 2, 3, 4}
package mat4

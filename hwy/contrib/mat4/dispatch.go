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

package mat4

// kernel is one implementation of the batch transform.
type kernel struct {
	name string
	fn   func(m Matrix4, vecs []Vec4)

	// unsupported is set when the host lacks the instructions fn needs;
	// such a kernel is listed but must not be called.
	unsupported bool
}

// kernels lists every implementation built into this binary. Register
// implementations append themselves from init whatever the CPU.
var kernels = []kernel{
	{name: "scalar", fn: mulVec4Scalar},
	{name: "hwy", fn: BaseMulVec4},
}

// selected is the implementation MulVec4 dispatches to.
var selected = kernels[0]

func register(k kernel, use bool) {
	kernels = append(kernels, k)
	if use {
		selected = k
	}
}

// MulVec4 overwrites each element of vecs with the matrix-vector product
// (v.X*m[0] + v.Y*m[1]) + (v.Z*m[2] + v.W*m[3]).
//
// Elements are independent; an empty or nil slice is a no-op. The matrix
// is passed by value and never modified. MulVec4 does not allocate and
// provides no synchronization: the caller must not access vecs from
// another goroutine until it returns.
func MulVec4(m Matrix4, vecs []Vec4) {
	if len(vecs) == 0 {
		return
	}
	selected.fn(m, vecs)
}

// Implementation returns the name of the implementation used by MulVec4:
// "scalar" or "float32x4".
func Implementation() string {
	return selected.name
}

// Implementations returns the names of all implementations compiled into
// this binary, in registration order, including ones the host CPU or
// HWY_NO_SIMD keeps MulVec4 from selecting.
func Implementations() []string {
	names := make([]string, len(kernels))
	for i, k := range kernels {
		names[i] = k.name
	}
	return names
}

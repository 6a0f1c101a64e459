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

import (
	"strconv"
	"strings"
)

// Matrix4 is four rows of four packed float32 values. Row r is scaled by
// component r of each vector passed to MulVec4.
type Matrix4 [4][4]float32

// Vec4 is a homogeneous four-component vector.
type Vec4 struct {
	X, Y, Z, W float32
}

// Identity returns the identity matrix.
func Identity() Matrix4 {
	return Diagonal(1, 1, 1, 1)
}

// Diagonal returns the matrix with d0..d3 on the diagonal and zero elsewhere.
func Diagonal(d0, d1, d2, d3 float32) Matrix4 {
	return Matrix4{
		{d0, 0, 0, 0},
		{0, d1, 0, 0},
		{0, 0, d2, 0},
		{0, 0, 0, d3},
	}
}

// Row returns row i. It panics if i is not in [0, 4).
func (m Matrix4) Row(i int) [4]float32 {
	return m[i]
}

// String formats the matrix as four lines of space separated numbers.
func (m Matrix4) String() string {
	var sb strings.Builder
	for i, row := range m {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j, v := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatFloat(float64(v), 'g', -1, 32))
		}
	}
	return sb.String()
}

// Vec4FromArray builds a vector from {x, y, z, w}.
func Vec4FromArray(a [4]float32) Vec4 {
	return Vec4{X: a[0], Y: a[1], Z: a[2], W: a[3]}
}

// Array returns the components as {x, y, z, w}.
func (v Vec4) Array() [4]float32 {
	return [4]float32{v.X, v.Y, v.Z, v.W}
}

// Add returns the component-wise sum v + a.
func (v Vec4) Add(a Vec4) Vec4 {
	return Vec4{v.X + a.X, v.Y + a.Y, v.Z + a.Z, v.W + a.W}
}

// Scale returns v with every component multiplied by k.
func (v Vec4) Scale(k float32) Vec4 {
	return Vec4{v.X * k, v.Y * k, v.Z * k, v.W * k}
}

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

package hwy

import "testing"

func TestTailMask(t *testing.T) {
	mask := TailMask[float32](3)

	if !mask.GetBit(0) || !mask.GetBit(1) || !mask.GetBit(2) {
		t.Error("TailMask: first 3 bits should be true")
	}

	for i := 3; i < mask.NumLanes(); i++ {
		if mask.GetBit(i) {
			t.Errorf("TailMask: bit %d should be false", i)
		}
	}

	if mask.CountTrue() != min(3, MaxLanes[float32]()) {
		t.Errorf("TailMask: CountTrue() = %d, want 3", mask.CountTrue())
	}
}

func TestTailMaskClamps(t *testing.T) {
	if got := TailMask[float32](-1).CountTrue(); got != 0 {
		t.Errorf("TailMask(-1): CountTrue() = %d, want 0", got)
	}
	maxLanes := MaxLanes[float32]()
	if got := TailMask[float32](maxLanes + 5).CountTrue(); got != maxLanes {
		t.Errorf("TailMask(%d): CountTrue() = %d, want %d", maxLanes+5, got, maxLanes)
	}
	if TailMask[float32](2).GetBit(-1) {
		t.Error("GetBit(-1) should be false")
	}
}

func TestProcessWithTail(t *testing.T) {
	for _, size := range []int{0, 1, 3, 4, 7, 100} {
		data := make([]float32, size)
		for i := range data {
			data[i] = float32(i)
		}
		output := make([]float32, size)

		covered := 0
		ProcessWithTail[float32](size,
			func(offset int) {
				covered += MaxLanes[float32]()
				v := Load(data[offset:])
				Store(Add(v, v), output[offset:])
			},
			func(offset, count int) {
				covered += count
				mask := TailMask[float32](count)
				v := MaskLoad(mask, data[offset:])
				MaskStore(mask, Add(v, v), output[offset:])
			},
		)

		if covered != size {
			t.Errorf("size %d: covered %d elements", size, covered)
		}
		for i, val := range output {
			if want := float32(i) * 2; val != want {
				t.Errorf("size %d: output[%d]: got %v, want %v", size, i, val, want)
			}
		}
	}
}

func TestAlignedSize(t *testing.T) {
	maxLanes := MaxLanes[float32]()

	tests := []struct {
		input    int
		expected int
	}{
		{0, 0},
		{1, maxLanes},
		{maxLanes, maxLanes},
		{maxLanes + 1, maxLanes * 2},
		{maxLanes * 2, maxLanes * 2},
	}

	for _, tt := range tests {
		result := AlignedSize[float32](tt.input)
		if result != tt.expected {
			t.Errorf("AlignedSize(%d): got %d, want %d", tt.input, result, tt.expected)
		}
	}
}

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

//go:build amd64 && !goexperiment.simd

package hwy

import "golang.org/x/sys/cpu"

// Fallback for when GOEXPERIMENT=simd is not enabled. Without archsimd
// there are no register types to dispatch to, so the level stays scalar
// even though the feature flags are still collected for diagnostics.
// Build with GOEXPERIMENT=simd for SSE2/AVX2/AVX512 dispatch.

func init() {
	detectFeatures()
	setScalarMode()
}

func detectFeatures() {
	features = Features{
		Arch:      "amd64",
		HasSSE2:   cpu.X86.HasSSE2,
		HasSSE41:  cpu.X86.HasSSE41,
		HasAVX:    cpu.X86.HasAVX,
		HasAVX2:   cpu.X86.HasAVX2,
		HasFMA:    cpu.X86.HasFMA,
		HasAVX512: cpu.X86.HasAVX512F,
	}
}

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

package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/goxgl/mat4simd/hwy/contrib/mat4"
)

// config is the YAML input of the demo: four matrix rows and any number
// of vectors.
//
//	matrix:
//	  - [1, 0, 0, 0]
//	  - [0, 2, 0, 0]
//	  - [0, 0, 3, 0]
//	  - [0, 0, 0, 4]
//	vectors:
//	  - [1, 1, 1, 1]
type config struct {
	Matrix  [][]float32 `yaml:"matrix"`
	Vectors [][]float32 `yaml:"vectors"`
}

var errNoVectors = errors.New("no vectors")

// defaultInput is the diagonal matrix with i+1 at (i, i) and a single
// (1, 1, 1, 1) vector.
func defaultInput() (mat4.Matrix4, []mat4.Vec4) {
	return mat4.Diagonal(1, 2, 3, 4), []mat4.Vec4{{X: 1, Y: 1, Z: 1, W: 1}}
}

func loadConfig(path string) (mat4.Matrix4, []mat4.Vec4, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return mat4.Matrix4{}, nil, err
	}
	return parseConfig(data)
}

func parseConfig(data []byte) (mat4.Matrix4, []mat4.Vec4, error) {
	var cfg config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return mat4.Matrix4{}, nil, fmt.Errorf("decoding config: %w", err)
	}

	var m mat4.Matrix4
	if len(cfg.Matrix) != 4 {
		return m, nil, fmt.Errorf("matrix: got %d rows, want 4", len(cfg.Matrix))
	}
	for i, row := range cfg.Matrix {
		if len(row) != 4 {
			return m, nil, fmt.Errorf("matrix row %d: got %d values, want 4", i, len(row))
		}
		copy(m[i][:], row)
	}

	if len(cfg.Vectors) == 0 {
		return m, nil, errNoVectors
	}
	vecs := make([]mat4.Vec4, len(cfg.Vectors))
	for i, v := range cfg.Vectors {
		if len(v) != 4 {
			return m, nil, fmt.Errorf("vector %d: got %d values, want 4", i, len(v))
		}
		vecs[i] = mat4.Vec4FromArray([4]float32(v))
	}
	return m, vecs, nil
}

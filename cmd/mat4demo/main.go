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

// Command mat4demo transforms vectors by a 4x4 matrix with the mat4 kernel
// and prints the matrix and the results.
//
// Usage:
//
//	mat4demo                       # diagonal(1, 2, 3, 4) times (1, 1, 1, 1)
//	mat4demo -config input.yaml    # matrix and vectors from a file
//	mat4demo -verify -workers 8    # parallel run, checked against float64
//	mat4demo -info                 # dispatch level and CPU features
//
// Set HWY_NO_SIMD=1 to force the scalar kernel.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/goxgl/mat4simd/hwy"
	"github.com/goxgl/mat4simd/hwy/contrib/mat4"
	"github.com/goxgl/mat4simd/hwy/contrib/workerpool"
	"github.com/goxgl/mat4simd/internal/reference"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	configPath string
	info       bool
	verify     bool
	workers    int
}

func parseOptions(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("mat4demo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "YAML file with matrix rows and vectors")
	fs.BoolVar(&opts.info, "info", false, "print SIMD dispatch information and exit")
	fs.BoolVar(&opts.verify, "verify", false, "check results against a float64 reference")
	fs.IntVar(&opts.workers, "workers", 0, "transform with a pool of this many workers (0: single goroutine)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if opts.workers < 0 {
		return nil, fmt.Errorf("-workers must be >= 0, got %d", opts.workers)
	}
	return opts, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseOptions(args, stderr)
	if err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if opts.info {
		printInfo(stdout)
		return 0
	}

	m, vecs := defaultInput()
	if opts.configPath != "" {
		m, vecs, err = loadConfig(opts.configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Error: loading %s: %v\n", opts.configPath, err)
			return 1
		}
	}

	var want, bound [][4]float64
	if opts.verify {
		want = make([][4]float64, len(vecs))
		bound = make([][4]float64, len(vecs))
		for i, v := range vecs {
			want[i] = reference.MulVec4(m, v)
			bound[i] = reference.Bound(m, v)
		}
	}

	if opts.workers > 0 {
		pool := workerpool.New(opts.workers)
		mat4.MulVec4Parallel(pool, m, vecs)
		pool.Close()
	} else {
		mat4.MulVec4(m, vecs)
	}

	fmt.Fprintln(stdout, m)
	fmt.Fprintln(stdout)
	for _, v := range vecs {
		fmt.Fprintf(stdout, "%f %f %f %f\n", v.X, v.Y, v.Z, v.W)
	}

	if opts.verify {
		// The ulp figure is informational: it explodes when products
		// cancel. Pass or fail is decided by the magnitude-scaled bound.
		var worstULP, worstRatio float64
		failed := -1
		for i, v := range vecs {
			worstULP = max(worstULP, reference.MaxULP(v, want[i]))
			r := reference.ErrorRatio(v, want[i], bound[i])
			if r > 1 && failed < 0 {
				failed = i
			}
			worstRatio = max(worstRatio, r)
		}
		fmt.Fprintf(stdout, "\nverify: %d vectors, max error %.2f ulp, %.3f of rounding bound\n",
			len(vecs), worstULP, worstRatio)
		if failed >= 0 {
			fmt.Fprintf(stderr, "Error: vector %d: error %.3f times the rounding bound\n", failed, worstRatio)
			return 1
		}
	}
	return 0
}

func printInfo(w io.Writer) {
	fmt.Fprintf(w, "GOOS: %s\n", runtime.GOOS)
	fmt.Fprintf(w, "GOARCH: %s\n", runtime.GOARCH)
	fmt.Fprintf(w, "NumCPU: %d\n", runtime.NumCPU())
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Highway dispatch level: %s\n", hwy.CurrentLevel())
	fmt.Fprintf(w, "Highway dispatch width: %d bytes\n", hwy.CurrentWidth())
	fmt.Fprintf(w, "MulVec4 implementation: %s\n", mat4.Implementation())
	fmt.Fprintf(w, "Available implementations: %v\n", mat4.Implementations())
	fmt.Fprintln(w)

	f := hwy.CPUFeatures()
	fmt.Fprintf(w, "=== golang.org/x/sys/cpu (%s) ===\n", f.Arch)
	switch f.Arch {
	case "amd64":
		fmt.Fprintf(w, "  HasSSE2:   %v\n", f.HasSSE2)
		fmt.Fprintf(w, "  HasSSE41:  %v\n", f.HasSSE41)
		fmt.Fprintf(w, "  HasAVX:    %v\n", f.HasAVX)
		fmt.Fprintf(w, "  HasAVX2:   %v\n", f.HasAVX2)
		fmt.Fprintf(w, "  HasAVX512: %v\n", f.HasAVX512)
	case "arm64":
		fmt.Fprintf(w, "  HasNEON:   %v\n", f.HasNEON)
		fmt.Fprintf(w, "  HasSVE:    %v\n", f.HasSVE)
	}
	fmt.Fprintf(w, "  HasFMA:    %v (unused; kernels round every product)\n", f.HasFMA)
}

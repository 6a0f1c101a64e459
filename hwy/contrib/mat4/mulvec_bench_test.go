package mat4

import (
	"fmt"
	"testing"

	"github.com/goxgl/mat4simd/hwy/contrib/workerpool"
)

var benchResultVec4 []Vec4

func benchMatrix() Matrix4 {
	return Matrix4{
		{0.9, 0.1, -0.3, 0},
		{-0.2, 0.95, 0.2, 0},
		{0.3, -0.1, 0.9, 0},
		{1, 2, 3, 1},
	}
}

func benchVecs(n int) []Vec4 {
	vecs := make([]Vec4, n)
	for i := range vecs {
		f := float32(i)
		vecs[i] = Vec4{f, f, f, f}
	}
	return vecs
}

func BenchmarkMulVec4(b *testing.B) {
	m := benchMatrix()
	for _, k := range kernels {
		b.Run(k.name, func(b *testing.B) {
			vecs := benchVecs(1000)
			b.SetBytes(int64(len(vecs)) * 16)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				k.fn(m, vecs)
			}
			benchResultVec4 = vecs
		})
	}
}

func BenchmarkMulVec4SoA(b *testing.B) {
	m := benchMatrix()
	x, y, z, w := SplitSoA(benchVecs(1000))
	b.SetBytes(1000 * 16)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		MulVec4SoA(m, x, y, z, w)
	}
}

func BenchmarkMulVec4Parallel(b *testing.B) {
	m := benchMatrix()
	pool := workerpool.New(0)
	defer pool.Close()

	for _, n := range []int{1 << 12, 1 << 16, 1 << 20} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			vecs := benchVecs(n)
			b.SetBytes(int64(n) * 16)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				MulVec4Parallel(pool, m, vecs)
			}
			benchResultVec4 = vecs
		})
	}
}

package mat4

import (
	"github.com/goxgl/mat4simd/hwy"
	"github.com/goxgl/mat4simd/hwy/contrib/workerpool"
)

// MinParallelBatch is the smallest batch MulVec4Parallel splits across
// workers. Below it the hand-off costs more than the transform.
const MinParallelBatch = 1024

// parallelGrain is the number of vectors a worker claims at a time.
const parallelGrain = MinParallelBatch / 4

// MulVec4Parallel is MulVec4 with the batch handed out to the pool
// workers in non-overlapping runs of parallelGrain vectors, so the result
// is the same as a single MulVec4 call. A nil pool or a batch shorter
// than MinParallelBatch runs on the calling goroutine.
// It blocks until every run is done. The caller must not access vecs
// concurrently.
func MulVec4Parallel(pool *workerpool.Pool, m Matrix4, vecs []Vec4) {
	if pool == nil || len(vecs) < MinParallelBatch {
		MulVec4(m, vecs)
		return
	}
	pool.ParallelForBatched(len(vecs), parallelGrain, func(start, end int) {
		MulVec4(m, vecs[start:end])
	})
}

// MulVec4SoAParallel is MulVec4SoA split across the pool. Ranges start on
// multiples of hwy.MaxLanes[float32](), so only the last one has a masked
// tail. A nil pool or a batch shorter than MinParallelBatch runs on the
// calling goroutine. Panics if the four slices differ in length.
func MulVec4SoAParallel(pool *workerpool.Pool, m Matrix4, x, y, z, w []float32) {
	n := len(x)
	if len(y) != n || len(z) != n || len(w) != n {
		panic("component slices differ in length")
	}
	if pool == nil || n < MinParallelBatch {
		MulVec4SoA(m, x, y, z, w)
		return
	}
	pool.ParallelForAligned(n, hwy.MaxLanes[float32](), func(start, end int) {
		MulVec4SoA(m, x[start:end], y[start:end], z[start:end], w[start:end])
	})
}

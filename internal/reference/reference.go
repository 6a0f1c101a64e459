// Package reference computes MulVec4 results in float64 for checking the
// float32 kernels.
//
// Products of two float32 values are exact in float64 and the four-term
// sums lose at most a few float64 ulps, so the oracle is accurate well
// beyond float32 precision.
//
// Two error measures are provided. ULP and MaxULP compare against the
// float32 spacing at the exact result and are tight when no products
// cancel. Bound and ErrorRatio scale with the magnitude of the products
// and hold for any signs.
package reference

import (
	"math"

	"github.com/goxgl/mat4simd/hwy/contrib/mat4"
)

// boundFactor is four float32 machine epsilons. A float32 evaluation of
// the row-scaled sum rounds three times (product, pair sum, final sum),
// each by at most half an epsilon relative to the terms involved.
const boundFactor = 4 * 0x1p-23

// underflowSlack covers products that round into the subnormal range,
// where the relative bound no longer holds.
const underflowSlack = 4 * math.SmallestNonzeroFloat32

// Bound returns, per component, the largest error accepted for a float32
// result: 4*eps32 times the sum of the magnitudes of the four products,
// plus a few subnormal steps. Unlike ULP it stays meaningful when the
// products cancel and the exact result is near zero.
func Bound(m mat4.Matrix4, v mat4.Vec4) [4]float64 {
	var b [4]float64
	for r, s := range v.Array() {
		for c := range 4 {
			b[c] += math.Abs(float64(s) * float64(m[r][c]))
		}
	}
	for c := range b {
		b[c] = b[c]*boundFactor + underflowSlack
	}
	return b
}

// ErrorRatio returns the largest |got-want|/bound over the four
// components; a result is acceptable when the ratio is at most 1. NaN
// matches NaN, and an infinity matches a want whose magnitude may round
// past math.MaxFloat32 with the same sign.
func ErrorRatio(got mat4.Vec4, want, bound [4]float64) float64 {
	var worst float64
	for c, g := range got.Array() {
		worst = max(worst, errorRatio(float64(g), want[c], bound[c]))
	}
	return worst
}

func errorRatio(got, want, bound float64) float64 {
	switch {
	case math.IsNaN(got) && math.IsNaN(want):
		return 0
	case math.IsNaN(got) || math.IsNaN(want):
		return math.Inf(1)
	case got == want:
		return 0
	case math.IsInf(got, 0):
		if math.Signbit(got) == math.Signbit(want) && math.Abs(want)+bound >= math.MaxFloat32 {
			return 0
		}
		return math.Inf(1)
	case math.IsInf(want, 0) || math.IsInf(bound, 0):
		return math.Inf(1)
	}
	return math.Abs(got-want) / bound
}

// ULP returns the distance between got and want in units of the float32
// spacing at want. Equal values, including two NaNs or matching
// infinities, are 0 apart; a NaN against a number is +Inf.
func ULP(got float32, want float64) float64 {
	g := float64(got)
	switch {
	case math.IsNaN(g) && math.IsNaN(want):
		return 0
	case math.IsNaN(g) || math.IsNaN(want):
		return math.Inf(1)
	case g == want:
		return 0
	case math.IsInf(g, 0) || math.IsInf(want, 0):
		return math.Inf(1)
	}

	w := float32(math.Abs(want))
	if math.IsInf(float64(w), 0) {
		return math.Inf(1)
	}
	spacing := float64(math.Nextafter32(w, float32(math.Inf(1))) - w)
	if math.IsInf(spacing, 0) {
		// want rounds to MaxFloat32; use the spacing just below it.
		spacing = float64(w - math.Nextafter32(w, 0))
	}
	return math.Abs(g-want) / spacing
}

// MaxULP returns the largest ULP distance over the four components.
// With mixed-sign products the exact result can be tiny and the distance
// huge even for a correctly rounded kernel; use ErrorRatio there.
func MaxULP(got mat4.Vec4, want [4]float64) float64 {
	var worst float64
	for i, g := range got.Array() {
		worst = max(worst, ULP(g, want[i]))
	}
	return worst
}

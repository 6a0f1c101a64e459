package reference

import (
	"math"
	"testing"

	"github.com/goxgl/mat4simd/hwy/contrib/mat4"
)

func TestMulVec4(t *testing.T) {
	m := mat4.Matrix4{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	}
	got := MulVec4(m, mat4.Vec4{X: 1, Y: 0, Z: -1, W: 0.5})
	want := [4]float64{1 - 9 + 6.5, 2 - 10 + 7, 3 - 11 + 7.5, 4 - 12 + 8}
	if got != want {
		t.Errorf("MulVec4() = %v, want %v", got, want)
	}
}

func TestMulVec4Exact(t *testing.T) {
	// 1/3 has no float32 representation; the float64 product keeps all
	// 48 significant bits of the float32 operands.
	third := float32(1.0 / 3)
	got := MulVec4(mat4.Diagonal(third, 0, 0, 0), mat4.Vec4{X: third})
	if want := float64(third) * float64(third); got[0] != want {
		t.Errorf("MulVec4()[0] = %v, want %v", got[0], want)
	}
}

func TestULP(t *testing.T) {
	one := float32(1)
	next := math.Nextafter32(one, 2)

	tests := []struct {
		name string
		got  float32
		want float64
		ulp  float64
	}{
		{"equal", 1, 1, 0},
		{"one step", next, 1, 1},
		{"half step", 1, 1 + float64(next-one)/2, 0.5},
		{"negative", -next, -1, 1},
		{"zero", 0, 0, 0},
		{"nan nan", float32(math.NaN()), math.NaN(), 0},
		{"nan number", float32(math.NaN()), 1, math.Inf(1)},
		{"inf inf", float32(math.Inf(1)), math.Inf(1), 0},
		{"inf number", float32(math.Inf(1)), 1, math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ULP(tt.got, tt.want); got != tt.ulp {
				t.Errorf("ULP(%v, %v) = %v, want %v", tt.got, tt.want, got, tt.ulp)
			}
		})
	}
}

func TestMaxULP(t *testing.T) {
	next := math.Nextafter32(4, 5)
	got := mat4.Vec4{X: 1, Y: 2, Z: 3, W: next}
	if d := MaxULP(got, [4]float64{1, 2, 3, 4}); d != 1 {
		t.Errorf("MaxULP() = %v, want 1", d)
	}
}

func TestBound(t *testing.T) {
	m := mat4.Matrix4{
		{1, -2, 0, 0},
		{-3, 4, 0, 0},
	}
	b := Bound(m, mat4.Vec4{X: 2, Y: 1})
	wantTerms := [4]float64{2 + 3, 4 + 4, 0, 0}
	for c := range 4 {
		want := wantTerms[c]*boundFactor + underflowSlack
		if b[c] != want {
			t.Errorf("Bound()[%d] = %v, want %v", c, b[c], want)
		}
	}
}

func TestErrorRatio(t *testing.T) {
	inf := math.Inf(1)
	nan := math.NaN()
	bound := [4]float64{1e-6, 1e-6, 1e-6, 1e-6}

	tests := []struct {
		name  string
		got   mat4.Vec4
		want  [4]float64
		bound [4]float64
		ratio float64
	}{
		{"exact", mat4.Vec4{X: 1, Y: 2, Z: 3, W: 4}, [4]float64{1, 2, 3, 4}, bound, 0},
		{"half bound", mat4.Vec4{X: 1}, [4]float64{1 + 5e-7}, bound, 0.5},
		{"nan nan", mat4.Vec4{X: float32(nan)}, [4]float64{nan}, bound, 0},
		{"nan number", mat4.Vec4{X: float32(nan)}, [4]float64{1}, bound, inf},
		{"overflow", mat4.Vec4{X: float32(inf)}, [4]float64{6e38}, bound, 0},
		{"overflow wrong sign", mat4.Vec4{X: float32(math.Inf(-1))}, [4]float64{6e38}, bound, inf},
		{"inf in range", mat4.Vec4{X: float32(inf)}, [4]float64{1}, bound, inf},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ErrorRatio(tt.got, tt.want, tt.bound)
			if math.Abs(got-tt.ratio) > 1e-9 && got != tt.ratio {
				t.Errorf("ErrorRatio() = %v, want %v", got, tt.ratio)
			}
		})
	}
}

// TestCancellation transforms a vector whose products cancel: 3*0.1 and
// 0.3 round to the same float32, so the kernel returns 0 while the exact
// value is about -7.45e-9. The ULP distance is enormous, the bound holds.
func TestCancellation(t *testing.T) {
	m := mat4.Matrix4{
		{0.1, 0, 0, 0},
		{-0.3, 0, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
	v := mat4.Vec4{X: 3, Y: 1, Z: 1, W: 1}
	want := MulVec4(m, v)

	got := []mat4.Vec4{v}
	mat4.MulVec4(m, got)

	if got[0].X != 0 {
		t.Fatalf("X = %g, want 0", got[0].X)
	}
	if d := MaxULP(got[0], want); d <= 4 {
		t.Errorf("MaxULP() = %v, expected cancellation to exceed 4", d)
	}
	if r := ErrorRatio(got[0], want, Bound(m, v)); r > 1 {
		t.Errorf("ErrorRatio() = %v, want <= 1", r)
	}
}

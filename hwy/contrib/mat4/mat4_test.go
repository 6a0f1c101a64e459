package mat4

import "testing"

func TestMatrix4String(t *testing.T) {
	m := Matrix4{
		{1, 0, 0, 0},
		{0, 2.5, 0, 0},
		{0, 0, -3, 0},
		{0, 0, 0, 1e-7},
	}
	want := "1 0 0 0\n0 2.5 0 0\n0 0 -3 0\n0 0 0 1e-07"
	if got := m.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestDiagonal(t *testing.T) {
	m := Diagonal(1, 2, 3, 4)
	for r := range 4 {
		row := m.Row(r)
		for c := range 4 {
			want := float32(0)
			if r == c {
				want = float32(r + 1)
			}
			if row[c] != want {
				t.Errorf("m[%d][%d] = %v, want %v", r, c, row[c], want)
			}
		}
	}
	if Identity() != Diagonal(1, 1, 1, 1) {
		t.Error("Identity() is not Diagonal(1, 1, 1, 1)")
	}
}

func TestVec4Helpers(t *testing.T) {
	v := Vec4{1, 2, 3, 4}
	if got := v.Array(); got != [4]float32{1, 2, 3, 4} {
		t.Errorf("Array() = %v", got)
	}
	if got := Vec4FromArray([4]float32{5, 6, 7, 8}); got != (Vec4{5, 6, 7, 8}) {
		t.Errorf("Vec4FromArray() = %+v", got)
	}
	if got := v.Add(Vec4{1, 1, 1, 1}); got != (Vec4{2, 3, 4, 5}) {
		t.Errorf("Add() = %+v", got)
	}
	if got := v.Scale(-2); got != (Vec4{-2, -4, -6, -8}) {
		t.Errorf("Scale() = %+v", got)
	}
}

// Package hwy provides the portable SIMD layer used by the mat4simd kernels.
//
// It mirrors the Highway C++ library's model: code is written once against
// a Vec abstraction, and the runtime reports which instruction set the
// host offers so that callers can pick a register-level implementation
// when one exists. In base mode a Vec wraps a slice and every operation
// is plain Go, which makes it the reference for the accelerated paths.
//
// Basic usage:
//
//	import "github.com/goxgl/mat4simd/hwy"
//
//	// Broadcast a scalar and scale a row
//	s := hwy.Set[float32](2)
//	row := hwy.Load(data)
//	hwy.Store(hwy.Mul(s, row), output)
//
// Every operation rounds its own result. Mul followed by Add is never
// contracted into a fused multiply-add.
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
type Lanes interface {
	Floats | Integers
}

// Vec is a portable vector handle. In base mode it wraps a slice whose
// length is the number of active lanes.
//
// Vec instances should not be created directly; use Load, Set, or Zero instead.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the underlying slice representation of the vector.
// This is primarily for testing and should not be used in performance-critical code.
func (v Vec[T]) Data() []T {
	return v.data
}

// Store writes the vector's data to a slice.
// This is the method form of the hwy.Store function.
func (v Vec[T]) Store(dst []T) {
	Store(v, dst)
}

// Mask selects active lanes for MaskLoad and MaskStore.
//
// Mask instances should not be created directly; use TailMask instead.
type Mask[T Lanes] struct {
	// bit i is set if lane i is active.
	bits []bool
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return len(m.bits)
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask[T]) CountTrue() int {
	count := 0
	for _, bit := range m.bits {
		if bit {
			count++
		}
	}
	return count
}

// GetBit returns whether lane i is active.
func (m Mask[T]) GetBit(i int) bool {
	if i < 0 || i >= len(m.bits) {
		return false
	}
	return m.bits[i]
}

package geometry

import "fmt"

// RingType classifies a polygon ring by its winding.
//
// MVT §4.3.4.4: a ring with positive signed area is an exterior ring, a
// ring with negative signed area is an interior ring, and a ring with zero
// area is invalid.
type RingType uint8

const (
	// RingOuter is an exterior ring (signed area > 0).
	RingOuter RingType = iota

	// RingInner is an interior ring (signed area < 0).
	RingInner

	// RingInvalid is a degenerate ring with zero area.
	RingInvalid
)

// String returns a human-readable name for the ring type.
func (r RingType) String() string {
	switch r {
	case RingOuter:
		return "Outer"
	case RingInner:
		return "Inner"
	case RingInvalid:
		return "Invalid"
	default:
		return fmt.Sprintf("RingType(%d)", uint8(r))
	}
}

// classifyRing maps twice the signed ring area to a ring type.
func classifyRing(sum int64) RingType {
	switch {
	case sum > 0:
		return RingOuter
	case sum < 0:
		return RingInner
	default:
		return RingInvalid
	}
}

// det is the 2D cross product of two cursor positions. Summed over
// consecutive ring vertices it yields twice the signed ring area (the
// shoelace formula). 64-bit arithmetic on the 32-bit components cannot
// overflow.
func det(a, b UnscaledPoint) int64 {
	return int64(a.X)*int64(b.Y) - int64(b.X)*int64(a.Y)
}

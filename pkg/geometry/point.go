package geometry

// Point is a final 2D coordinate as produced by a handler's Convert method
// when no further transformation is wanted.
type Point struct {
	X int32
	Y int32
}

// UnscaledPoint is the raw accumulated cursor position handed to Convert.
//
// Z is the accumulated elevation and stays 0 for 2D geometries. "Unscaled"
// means no scaling, projection, or dequantization has been applied yet.
type UnscaledPoint struct {
	X int32
	Y int32
	Z int64
}

// Point returns the planar part of the coordinate, dropping elevation.
func (p UnscaledPoint) Point() Point {
	return Point{X: p.X, Y: p.Y}
}

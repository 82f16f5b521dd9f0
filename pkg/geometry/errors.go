package geometry

// FormatError indicates a malformed geometric attribute stream: a declared
// type other than number list, or a stream that ends before a declared
// field or value count is fully present.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return e.Reason
}

// GeometryError indicates a violation of the geometry command grammar:
// an unexpected command id, an invalid command count, missing parameter
// integers, trailing data after a point geometry, or an unknown geometry
// type.
type GeometryError struct {
	Reason string
}

func (e *GeometryError) Error() string {
	return e.Reason
}

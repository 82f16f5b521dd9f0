// Package geometry decodes Mapbox Vector Tile geometry command streams.
//
// It implements the geometry encoding described in MVT §4.3: a sequence of
// command integers (MoveTo, LineTo, ClosePath) interleaved with zigzag-encoded
// coordinate deltas, plus the extension streams for per-vertex elevation and
// inline geometric attributes.
//
// The package operates on already-decoded integer sequences. Turning wire
// bytes into those sequences (protobuf varint decoding, tile and layer
// parsing) is the job of the surrounding tile reader; the decoder only
// consumes the three cursor interfaces.
//
// # Basic Usage
//
// Implement a handler for the geometry kind you expect and run the matching
// driver:
//
//	type printer struct{}
//
//	func (printer) Convert(p geometry.UnscaledPoint) geometry.Point {
//	    return geometry.Point{X: p.X, Y: p.Y}
//	}
//	func (printer) PointsBegin(count uint32)     { fmt.Printf("multipoint with %d points\n", count) }
//	func (printer) PointsPoint(p geometry.Point) { fmt.Printf("  (%d, %d)\n", p.X, p.Y) }
//	func (printer) PointsEnd()                   {}
//
//	data := []uint32{9, 50, 34} // MoveTo(1), x=25, y=17
//	d := geometry.NewDecoder(geometry.NewUint32Cursor(data), uint32(len(data)/2))
//	err := geometry.DecodePoint[geometry.Point](d, printer{})
//
// The Convert method is the only place coordinates are interpreted. It is the
// seam for dequantization, tile-to-world projection, or 3D passthrough; the
// decoder itself has no opinion on the output point type.
//
// # Elevation and Geometric Attributes
//
// 3D geometries carry one raw (not zigzag-encoded) elevation delta per vertex
// in a side stream, and geometric attributes carry delta-encoded per-vertex
// values in another. Pass both to NewExtendedDecoder; a nil cursor means the
// stream is absent. A handler that also implements AttrHandler receives one
// callback per registered attribute after every emitted vertex.
//
// # Errors
//
// Malformed input is reported as *FormatError (geometric attribute stream)
// or *GeometryError (command grammar). Both abort the decode immediately; no
// handler callback is made after a failure. Misuse of the decoder primitives
// themselves (NextPoint without a pending count, NextCommand with one) is a
// programming error and panics.
package geometry

package mvt

import (
	"github.com/joto/vtzero/pkg/geometry"
)

// DecodeGeometry decodes one feature geometry into a Geometry value.
//
// data is the raw command/parameter integer sequence of the feature,
// geomType its declared type tag. The maximum repeat count is derived from
// the stream length, bounding worst-case work on adversarial input.
//
// Malformed input is reported as *geometry.GeometryError or
// *geometry.FormatError; no partial Geometry is returned.
func DecodeGeometry(data []uint32, geomType geometry.GeomType, opts DecodeOptions) (*Geometry, error) {
	var elev geometry.Int64Cursor
	if len(opts.Elevations) > 0 {
		elev = geometry.NewInt64Cursor(opts.Elevations)
	}
	var attr geometry.Uint64Cursor
	if len(opts.Attributes) > 0 {
		attr = geometry.NewUint64Cursor(opts.Attributes)
	}

	d := geometry.NewExtendedDecoder(
		geometry.NewUint32Cursor(data),
		elev,
		attr,
		uint32(len(data)/2),
	)

	builder := &geometryBuilder{geom: Geometry{Type: geomType}}
	if err := geometry.DecodeGeometry[Coordinate](d, geomType, builder); err != nil {
		return nil, err
	}
	return &builder.geom, nil
}

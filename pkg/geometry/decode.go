package geometry

import "fmt"

// GeomType is the geometry type tag of a feature.
//
// The values match the GeomType enum of the vector tile protobuf schema.
type GeomType int32

const (
	GeomTypeUnknown    GeomType = 0
	GeomTypePoint      GeomType = 1
	GeomTypeLinestring GeomType = 2
	GeomTypePolygon    GeomType = 3
)

// String returns a human-readable name for the geometry type.
func (t GeomType) String() string {
	switch t {
	case GeomTypeUnknown:
		return "Unknown"
	case GeomTypePoint:
		return "Point"
	case GeomTypeLinestring:
		return "LineString"
	case GeomTypePolygon:
		return "Polygon"
	default:
		return fmt.Sprintf("GeomType(%d)", int32(t))
	}
}

// DecodePoint decodes a point or multipoint geometry and drives h with the
// result.
//
// MVT §4.3.4.2: the geometry consists of a single MoveTo command with a
// count greater than 0, and nothing else.
func DecodePoint[T any](d *Decoder, h PointHandler[T]) error {
	// MVT §4.3.4.2 "MUST consist of a single MoveTo command"
	ok, err := d.NextCommand(CommandMoveTo)
	if err != nil {
		return err
	}
	if !ok {
		return &GeometryError{Reason: "expected MoveTo command (spec 4.3.4.2)"}
	}

	// MVT §4.3.4.2 "command count greater than 0"
	if d.Count() == 0 {
		return &GeometryError{Reason: "MoveTo command count is zero (spec 4.3.4.2)"}
	}

	attrs, err := newAttributeCollection(d.attr)
	if err != nil {
		return err
	}
	attrHandler, _ := h.(AttrHandler)

	h.PointsBegin(d.Count())
	for d.Count() > 0 {
		p, err := d.NextPoint()
		if err != nil {
			return err
		}
		h.PointsPoint(h.Convert(p))
		attrs.visit(attrHandler)
	}

	if !d.Done() {
		return &GeometryError{Reason: "additional data after end of geometry (spec 4.3.4.2)"}
	}

	h.PointsEnd()
	return nil
}

// DecodeLinestring decodes a linestring or multilinestring geometry and
// drives h with the result.
//
// MVT §4.3.4.3: each linestring is a MoveTo command with count 1 followed
// by a LineTo command with a count greater than 0; the sequence repeats
// for every linestring in the geometry.
func DecodeLinestring[T any](d *Decoder, h LinestringHandler[T]) error {
	attrs, err := newAttributeCollection(d.attr)
	if err != nil {
		return err
	}
	attrHandler, _ := h.(AttrHandler)

	for {
		// MVT §4.3.4.3 "1. A MoveTo command"
		ok, err := d.NextCommand(CommandMoveTo)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		// MVT §4.3.4.3 "with a command count of 1"
		if d.Count() != 1 {
			return &GeometryError{Reason: "MoveTo command count is not 1 (spec 4.3.4.3)"}
		}

		p, err := d.NextPoint()
		if err != nil {
			return err
		}
		firstPoint := h.Convert(p)

		// MVT §4.3.4.3 "2. A LineTo command"
		ok, err = d.NextCommand(CommandLineTo)
		if err != nil {
			return err
		}
		if !ok {
			return &GeometryError{Reason: "expected LineTo command (spec 4.3.4.3)"}
		}

		// MVT §4.3.4.3 "with a command count greater than 0"
		if d.Count() == 0 {
			return &GeometryError{Reason: "LineTo command count is zero (spec 4.3.4.3)"}
		}

		h.LinestringBegin(d.Count() + 1)

		h.LinestringPoint(firstPoint)
		attrs.visit(attrHandler)

		for d.Count() > 0 {
			p, err := d.NextPoint()
			if err != nil {
				return err
			}
			h.LinestringPoint(h.Convert(p))
			attrs.visit(attrHandler)
		}

		h.LinestringEnd()
	}
}

// DecodePolygon decodes a polygon or multipolygon geometry and drives h
// with the result.
//
// MVT §4.3.4.4: each ring is a MoveTo command with count 1, a LineTo
// command, and a ClosePath command; the sequence repeats for every ring.
// The signed ring area is accumulated while decoding and reported to
// RingEnd as a winding classification.
func DecodePolygon[T any](d *Decoder, h PolygonHandler[T]) error {
	attrs, err := newAttributeCollection(d.attr)
	if err != nil {
		return err
	}
	attrHandler, _ := h.(AttrHandler)

	for {
		// MVT §4.3.4.4 "1. A MoveTo command"
		ok, err := d.NextCommand(CommandMoveTo)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		// MVT §4.3.4.4 "with a command count of 1"
		if d.Count() != 1 {
			return &GeometryError{Reason: "MoveTo command count is not 1 (spec 4.3.4.4)"}
		}

		startPoint, err := d.NextPoint()
		if err != nil {
			return err
		}
		lastPoint := startPoint
		var sum int64

		// MVT §4.3.4.4 "2. A LineTo command"
		ok, err = d.NextCommand(CommandLineTo)
		if err != nil {
			return err
		}
		if !ok {
			return &GeometryError{Reason: "expected LineTo command (spec 4.3.4.4)"}
		}

		h.RingBegin(d.Count() + 2)

		h.RingPoint(h.Convert(startPoint))
		attrs.visit(attrHandler)

		for d.Count() > 0 {
			p, err := d.NextPoint()
			if err != nil {
				return err
			}
			sum += det(lastPoint, p)
			lastPoint = p
			h.RingPoint(h.Convert(p))
			attrs.visit(attrHandler)
		}

		// MVT §4.3.4.4 "3. A ClosePath command"
		ok, err = d.NextCommand(CommandClosePath)
		if err != nil {
			return err
		}
		if !ok {
			return &GeometryError{Reason: "expected ClosePath command (4.3.4.4)"}
		}

		sum += det(lastPoint, startPoint)

		// The ring is closed by repeating its start point; no attribute
		// values are consumed for the repeated point.
		h.RingPoint(h.Convert(startPoint))

		h.RingEnd(classifyRing(sum))
	}
}

// DecodeGeometry dispatches on the geometry type tag and runs the matching
// driver. An unknown type tag is a *GeometryError.
func DecodeGeometry[T any](d *Decoder, geomType GeomType, h Handler[T]) error {
	switch geomType {
	case GeomTypePoint:
		return DecodePoint[T](d, h)
	case GeomTypeLinestring:
		return DecodeLinestring[T](d, h)
	case GeomTypePolygon:
		return DecodePolygon[T](d, h)
	default:
		return &GeometryError{Reason: "unknown geometry type"}
	}
}

// DecodePointResult decodes a point geometry and returns the handler's
// result.
func DecodePointResult[T, R any](d *Decoder, h PointResultHandler[T, R]) (R, error) {
	if err := DecodePoint[T](d, h); err != nil {
		var zero R
		return zero, err
	}
	return h.Result(), nil
}

// DecodeLinestringResult decodes a linestring geometry and returns the
// handler's result.
func DecodeLinestringResult[T, R any](d *Decoder, h LinestringResultHandler[T, R]) (R, error) {
	if err := DecodeLinestring[T](d, h); err != nil {
		var zero R
		return zero, err
	}
	return h.Result(), nil
}

// DecodePolygonResult decodes a polygon geometry and returns the handler's
// result.
func DecodePolygonResult[T, R any](d *Decoder, h PolygonResultHandler[T, R]) (R, error) {
	if err := DecodePolygon[T](d, h); err != nil {
		var zero R
		return zero, err
	}
	return h.Result(), nil
}

// DecodeGeometryResult decodes a geometry of any type and returns the
// handler's result.
func DecodeGeometryResult[T, R any](d *Decoder, geomType GeomType, h ResultHandler[T, R]) (R, error) {
	if err := DecodeGeometry[T](d, geomType, h); err != nil {
		var zero R
		return zero, err
	}
	return h.Result(), nil
}

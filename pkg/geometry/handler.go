package geometry

// Handlers receive decoded primitives as they are produced. All callbacks
// are invoked synchronously in decode order and never again after a decode
// has failed. The decoder borrows the handler for one call only.

// Converter turns a raw accumulated cursor position into the caller's point
// type. It is called exactly once per emitted vertex; the start point of a
// ring is emitted (and therefore converted) twice.
type Converter[T any] interface {
	Convert(p UnscaledPoint) T
}

// PointHandler receives a decoded point (or multipoint) geometry.
type PointHandler[T any] interface {
	Converter[T]

	// PointsBegin is called once with the number of points that follow.
	PointsBegin(count uint32)

	// PointsPoint is called once per point.
	PointsPoint(p T)

	// PointsEnd is called once after the last point.
	PointsEnd()
}

// LinestringHandler receives a decoded linestring (or multilinestring)
// geometry. The Begin/Point/End sequence repeats for every linestring in
// the geometry.
type LinestringHandler[T any] interface {
	Converter[T]

	// LinestringBegin is called with the number of points in the
	// linestring that follows.
	LinestringBegin(count uint32)

	// LinestringPoint is called once per point.
	LinestringPoint(p T)

	// LinestringEnd is called after the last point of each linestring.
	LinestringEnd()
}

// PolygonHandler receives a decoded polygon (or multipolygon) geometry as a
// sequence of classified rings. The Begin/Point/End sequence repeats for
// every ring; the final point of a ring repeats its first.
type PolygonHandler[T any] interface {
	Converter[T]

	// RingBegin is called with the number of points in the ring that
	// follows, including the repeated closing point.
	RingBegin(count uint32)

	// RingPoint is called once per point.
	RingPoint(p T)

	// RingEnd is called after the closing point with the winding
	// classification of the ring.
	RingEnd(ringType RingType)
}

// Handler combines the three geometry-kind handlers. It is required by
// DecodeGeometry, which dispatches on the geometry type at runtime.
type Handler[T any] interface {
	PointHandler[T]
	LinestringHandler[T]
	PolygonHandler[T]
}

// AttrHandler is an optional capability: a handler that also implements it
// receives one callback per registered geometric attribute after every
// emitted vertex (except the repeated closing point of a ring). Attribute
// values are consumed from the stream whether or not the handler implements
// this interface.
type AttrHandler interface {
	// AttributeValue reports the accumulated attribute value at the
	// current vertex.
	AttributeValue(keyIndex, scalingIndex uint32, value int64)

	// AttributeNull reports that the attribute has no value at the
	// current vertex.
	AttributeNull(keyIndex uint32)
}

// Resulter is implemented by handlers that produce a final value. Use the
// Decode*Result functions to have it returned after a successful decode.
type Resulter[R any] interface {
	Result() R
}

// PointResultHandler is a PointHandler that produces a final value.
type PointResultHandler[T, R any] interface {
	PointHandler[T]
	Resulter[R]
}

// LinestringResultHandler is a LinestringHandler that produces a final
// value.
type LinestringResultHandler[T, R any] interface {
	LinestringHandler[T]
	Resulter[R]
}

// PolygonResultHandler is a PolygonHandler that produces a final value.
type PolygonResultHandler[T, R any] interface {
	PolygonHandler[T]
	Resulter[R]
}

// ResultHandler is a Handler that produces a final value.
type ResultHandler[T, R any] interface {
	Handler[T]
	Resulter[R]
}

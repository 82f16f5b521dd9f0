package mvt

import (
	"github.com/joto/vtzero/pkg/geometry"
)

// Coordinate is a decoded vertex in tile-local space. Z is the accumulated
// elevation and stays 0 for 2D geometries.
type Coordinate struct {
	X int32
	Y int32
	Z int64
}

// Ring is one classified boundary of a polygon. Points includes the
// repeated closing point, so a ring always has at least 2 entries and a
// valid one at least 4.
type Ring struct {
	Type   geometry.RingType
	Points []Coordinate
}

// VertexAttribute is one geometric attribute value observed at one vertex.
type VertexAttribute struct {
	// Vertex is the zero-based index of the emitted vertex this value
	// belongs to, counted across the whole geometry.
	Vertex int

	KeyIndex     uint32
	ScalingIndex uint32

	// Value is the accumulated attribute value. It is meaningless when
	// Null is set.
	Value int64
	Null  bool
}

// Geometry is a fully decoded feature geometry. Exactly one of Points,
// Lines, or Rings is populated, matching Type.
type Geometry struct {
	Type geometry.GeomType

	// Points holds the vertices of a point or multipoint geometry.
	Points []Coordinate

	// Lines holds the linestrings of a linestring or multilinestring
	// geometry.
	Lines [][]Coordinate

	// Rings holds the classified rings of a polygon or multipolygon
	// geometry, in decode order.
	Rings []Ring

	// Attributes holds the geometric attribute values observed while
	// decoding, in emit order. Empty unless an attribute stream was
	// supplied.
	Attributes []VertexAttribute
}

// BoundingBox is an axis-aligned rectangle in tile-local space.
type BoundingBox struct {
	MinX, MinY int32
	MaxX, MaxY int32
}

// BoundingBox returns the axis-aligned bounds of all vertices of the
// geometry. The second return value is false for a geometry without
// vertices.
func (g *Geometry) BoundingBox() (BoundingBox, bool) {
	var bounds BoundingBox
	seen := false

	extend := func(c Coordinate) {
		if !seen {
			bounds = BoundingBox{MinX: c.X, MinY: c.Y, MaxX: c.X, MaxY: c.Y}
			seen = true
			return
		}
		if c.X < bounds.MinX {
			bounds.MinX = c.X
		}
		if c.X > bounds.MaxX {
			bounds.MaxX = c.X
		}
		if c.Y < bounds.MinY {
			bounds.MinY = c.Y
		}
		if c.Y > bounds.MaxY {
			bounds.MaxY = c.Y
		}
	}

	for _, c := range g.Points {
		extend(c)
	}
	for _, line := range g.Lines {
		for _, c := range line {
			extend(c)
		}
	}
	for _, ring := range g.Rings {
		for _, c := range ring.Points {
			extend(c)
		}
	}

	return bounds, seen
}

// geometryBuilder assembles a Geometry through the visitor protocol.
type geometryBuilder struct {
	geom   Geometry
	line   []Coordinate
	ring   Ring
	vertex int
}

func (b *geometryBuilder) Convert(p geometry.UnscaledPoint) Coordinate {
	return Coordinate{X: p.X, Y: p.Y, Z: p.Z}
}

func (b *geometryBuilder) PointsBegin(count uint32) {
	b.geom.Points = make([]Coordinate, 0, count)
}

func (b *geometryBuilder) PointsPoint(c Coordinate) {
	b.geom.Points = append(b.geom.Points, c)
	b.vertex++
}

func (b *geometryBuilder) PointsEnd() {}

func (b *geometryBuilder) LinestringBegin(count uint32) {
	b.line = make([]Coordinate, 0, count)
}

func (b *geometryBuilder) LinestringPoint(c Coordinate) {
	b.line = append(b.line, c)
	b.vertex++
}

func (b *geometryBuilder) LinestringEnd() {
	b.geom.Lines = append(b.geom.Lines, b.line)
	b.line = nil
}

func (b *geometryBuilder) RingBegin(count uint32) {
	b.ring = Ring{Points: make([]Coordinate, 0, count)}
}

func (b *geometryBuilder) RingPoint(c Coordinate) {
	b.ring.Points = append(b.ring.Points, c)
	b.vertex++
}

func (b *geometryBuilder) RingEnd(ringType geometry.RingType) {
	b.ring.Type = ringType
	b.geom.Rings = append(b.geom.Rings, b.ring)
	b.ring = Ring{}
}

func (b *geometryBuilder) AttributeValue(keyIndex, scalingIndex uint32, value int64) {
	b.geom.Attributes = append(b.geom.Attributes, VertexAttribute{
		Vertex:       b.vertex - 1,
		KeyIndex:     keyIndex,
		ScalingIndex: scalingIndex,
		Value:        value,
	})
}

func (b *geometryBuilder) AttributeNull(keyIndex uint32) {
	b.geom.Attributes = append(b.geom.Attributes, VertexAttribute{
		Vertex:   b.vertex - 1,
		KeyIndex: keyIndex,
		Null:     true,
	})
}

package geometry

import "fmt"

// CommandID identifies one of the three geometry commands.
//
// MVT §4.3.1: a CommandInteger packs the command id into its low 3 bits and
// the command count into the remaining 29.
type CommandID uint32

const (
	// CommandMoveTo moves the cursor by a coordinate delta, starting a new
	// point, linestring or ring.
	CommandMoveTo CommandID = 1

	// CommandLineTo extends the current linestring or ring by one vertex.
	CommandLineTo CommandID = 2

	// CommandClosePath closes the current ring. Its count must be 1 and it
	// carries no parameters.
	CommandClosePath CommandID = 7
)

// String returns the command name as used in the MVT specification.
func (c CommandID) String() string {
	switch c {
	case CommandMoveTo:
		return "MoveTo"
	case CommandLineTo:
		return "LineTo"
	case CommandClosePath:
		return "ClosePath"
	default:
		return fmt.Sprintf("CommandID(%d)", uint32(c))
	}
}

// maxCommandCount is the largest count a CommandInteger can carry.
const maxCommandCount = (1 << 29) - 1

// commandInteger builds a CommandInteger from id and count.
func commandInteger(id CommandID, count uint32) uint32 {
	return uint32(id)&0x7 | count<<3
}

func commandIDOf(word uint32) uint32 {
	return word & 0x7
}

func commandCountOf(word uint32) uint32 {
	return word >> 3
}

// Decoder walks a geometry command stream, maintaining the accumulated
// cursor position and the repeat count of the current command.
//
// A Decoder holds no resources and decodes exactly one geometry; create a
// fresh one per geometry. It borrows its cursors for the duration of the
// decode and is not safe for concurrent use, but independent decoders may
// run concurrently.
type Decoder struct {
	geom Uint32Cursor
	elev Int64Cursor  // nil when the geometry is 2D
	attr Uint64Cursor // nil when there are no geometric attributes

	cursor UnscaledPoint

	// maximum permitted value for count, derived from the stream length
	maxCount uint32

	// count is set from a CommandInteger and counted down with each
	// NextPoint call. It must be 0 when NextCommand is called and
	// greater than 0 when NextPoint is called.
	count uint32
}

// NewDecoder returns a decoder for a plain 2D geometry without elevation or
// geometric attribute streams.
//
// max bounds the count of any single command; callers conventionally derive
// it from the stream length as len(data)/2. NewDecoder panics if max cannot
// be represented in a CommandInteger.
func NewDecoder(geom Uint32Cursor, max uint32) *Decoder {
	return NewExtendedDecoder(geom, nil, nil, max)
}

// NewExtendedDecoder returns a decoder with optional elevation and geometric
// attribute streams. A nil cursor means the stream is absent; a non-nil
// elevation cursor makes decoded points 3D.
func NewExtendedDecoder(geom Uint32Cursor, elev Int64Cursor, attr Uint64Cursor, max uint32) *Decoder {
	if max > maxCommandCount {
		panic(fmt.Sprintf("geometry: max command count %d exceeds representable maximum %d", max, uint32(maxCommandCount)))
	}
	return &Decoder{
		geom:     geom,
		elev:     elev,
		attr:     attr,
		maxCount: max,
	}
}

// Count reports how many points of the current command are still pending.
func (d *Decoder) Count() uint32 {
	return d.count
}

// Done reports whether both the geometry and elevation streams are
// exhausted. Used to detect trailing data after a point geometry.
func (d *Decoder) Done() bool {
	if d.geom.HasMore() {
		return false
	}
	if d.elev != nil && d.elev.HasMore() {
		return false
	}
	return true
}

// NextCommand reads the next CommandInteger and checks it against the
// expected command id.
//
// It returns (false, nil) if the geometry stream is exhausted, which is the
// normal end of a geometry. A command id other than expected, a ClosePath
// count other than 1, or a MoveTo/LineTo count above the configured maximum
// is a *GeometryError. NextCommand panics if points of the previous command
// are still pending.
func (d *Decoder) NextCommand(expected CommandID) (bool, error) {
	if d.count != 0 {
		panic("geometry: NextCommand called with unconsumed points pending")
	}

	if !d.geom.HasMore() {
		return false, nil
	}
	word := d.geom.Next()

	if commandIDOf(word) != uint32(expected) {
		return false, &GeometryError{
			Reason: fmt.Sprintf("expected command %d but got %d", uint32(expected), commandIDOf(word)),
		}
	}

	if expected == CommandClosePath {
		// MVT §4.3.3.3 "A ClosePath command MUST have a command count of 1"
		if commandCountOf(word) != 1 {
			return false, &GeometryError{Reason: "ClosePath command count is not 1"}
		}
	} else {
		d.count = commandCountOf(word)
		if d.count > d.maxCount {
			return false, &GeometryError{Reason: "count too large"}
		}
	}

	return true, nil
}

// NextPoint reads one coordinate delta pair, applies it to the cursor and
// returns the updated position. If an elevation stream is present and not
// exhausted, one raw elevation delta is applied as well.
//
// NextPoint panics if no points are pending for the current command.
func (d *Decoder) NextPoint() (UnscaledPoint, error) {
	if d.count == 0 {
		panic("geometry: NextPoint called with no points pending")
	}

	if !d.geom.HasMore() {
		return UnscaledPoint{}, &GeometryError{Reason: "too few points in geometry"}
	}
	x := d.geom.Next()
	if !d.geom.HasMore() {
		return UnscaledPoint{}, &GeometryError{Reason: "too few points in geometry"}
	}
	y := d.geom.Next()

	// MVT §4.3.2 "A ParameterInteger is zigzag encoded"
	d.cursor.X += decodeZigzag32(x)
	d.cursor.Y += decodeZigzag32(y)

	// Elevation deltas are raw, not zigzag encoded.
	if d.elev != nil && d.elev.HasMore() {
		d.cursor.Z += d.elev.Next()
	}

	d.count--

	return d.cursor, nil
}

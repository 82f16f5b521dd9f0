package geometry

// maxGeometricAttributes bounds how many geometric attributes are tracked
// per geometry. Attributes declared beyond the bound are silently ignored;
// the stream grammar is self-terminating, so this is a capacity policy, not
// an error.
const maxGeometricAttributes = 8

// geometricAttribute reads the per-vertex values of one attribute declared
// in the geometric attribute stream.
type geometricAttribute struct {
	keyIndex     uint32
	scalingIndex uint32

	// raw values still to be consumed, one per vertex
	values []uint64

	// running sum of the decoded deltas
	value int64
}

// getNextValue advances to the value for the next vertex. It returns false
// when the attribute has no more values at all, or when the value for this
// vertex is null (raw 0). Real deltas are stored offset by one, so a raw
// value v decodes as zigzag(v-1).
func (a *geometricAttribute) getNextValue() bool {
	if len(a.values) == 0 {
		return false
	}
	raw := a.values[0]
	a.values = a.values[1:]
	if raw == 0 {
		return false
	}
	a.value += decodeZigzag64(raw - 1)
	return true
}

// attributeCollection holds the attributes declared in the geometric
// attribute stream of one geometry.
type attributeCollection struct {
	attrs [maxGeometricAttributes]geometricAttribute
	size  int
}

// newAttributeCollection parses the self-describing attribute stream
// header. Each attribute starts with a complex value whose low 4 bits must
// be 10 (number list) and whose high bits are the key index, followed by
// the value count and the scaling index, followed by the values themselves.
//
// A nil cursor yields an empty collection. Header fields or values missing
// from the stream are a *FormatError.
func newAttributeCollection(c Uint64Cursor) (*attributeCollection, error) {
	coll := &attributeCollection{}
	if c == nil {
		return coll, nil
	}

	for c.HasMore() && coll.size < maxGeometricAttributes {
		complexValue := c.Next()
		if complexValue&0xf != 10 {
			return nil, &FormatError{Reason: "geometric attributes must be of type number list"}
		}
		if !c.HasMore() {
			return nil, &FormatError{Reason: "geometric attributes end too soon"}
		}

		count := c.Next()
		if !c.HasMore() {
			return nil, &FormatError{Reason: "geometric attributes end too soon"}
		}
		scaling := c.Next()
		if !c.HasMore() {
			return nil, &FormatError{Reason: "geometric attributes end too soon"}
		}

		// The cursor cannot be forked the way an iterator can be copied, so
		// the declared values are collected here instead of being skipped
		// and re-read later. No capacity hint: count is attacker-controlled.
		var values []uint64
		for n := uint64(0); n < count; n++ {
			if !c.HasMore() {
				return nil, &FormatError{Reason: "geometric attributes end too soon"}
			}
			values = append(values, c.Next())
		}

		coll.attrs[coll.size] = geometricAttribute{
			keyIndex:     uint32(complexValue >> 4),
			scalingIndex: uint32(scaling),
			values:       values,
		}
		coll.size++
	}

	return coll, nil
}

// visit consumes one value per registered attribute for the vertex that was
// just emitted and reports it to h. Values are consumed even when h is nil
// so that the streams stay in lockstep.
func (coll *attributeCollection) visit(h AttrHandler) {
	for i := 0; i < coll.size; i++ {
		a := &coll.attrs[i]
		if a.getNextValue() {
			if h != nil {
				h.AttributeValue(a.keyIndex, a.scalingIndex, a.value)
			}
		} else if h != nil {
			h.AttributeNull(a.keyIndex)
		}
	}
}

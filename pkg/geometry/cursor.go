package geometry

// The decoder reads from three independent forward-only cursors: the command
// stream (uint32), the elevation stream (int64) and the geometric attribute
// stream (uint64). A nil cursor means the stream is absent; every place that
// consults an optional cursor branches on presence first.

// Uint32Cursor is a forward-only reader over a sequence of unsigned 32-bit
// integers. Next must only be called after HasMore has reported true.
type Uint32Cursor interface {
	HasMore() bool
	Next() uint32
}

// Int64Cursor is a forward-only reader over a sequence of signed 64-bit
// integers. Next must only be called after HasMore has reported true.
type Int64Cursor interface {
	HasMore() bool
	Next() int64
}

// Uint64Cursor is a forward-only reader over a sequence of unsigned 64-bit
// integers. Next must only be called after HasMore has reported true.
type Uint64Cursor interface {
	HasMore() bool
	Next() uint64
}

// NewUint32Cursor returns a cursor reading values front to back.
// The slice is borrowed, not copied.
func NewUint32Cursor(values []uint32) Uint32Cursor {
	return &uint32SliceCursor{values: values}
}

// NewInt64Cursor returns a cursor reading values front to back.
// The slice is borrowed, not copied.
func NewInt64Cursor(values []int64) Int64Cursor {
	return &int64SliceCursor{values: values}
}

// NewUint64Cursor returns a cursor reading values front to back.
// The slice is borrowed, not copied.
func NewUint64Cursor(values []uint64) Uint64Cursor {
	return &uint64SliceCursor{values: values}
}

type uint32SliceCursor struct {
	values []uint32
	pos    int
}

func (c *uint32SliceCursor) HasMore() bool {
	return c.pos < len(c.values)
}

func (c *uint32SliceCursor) Next() uint32 {
	v := c.values[c.pos]
	c.pos++
	return v
}

type int64SliceCursor struct {
	values []int64
	pos    int
}

func (c *int64SliceCursor) HasMore() bool {
	return c.pos < len(c.values)
}

func (c *int64SliceCursor) Next() int64 {
	v := c.values[c.pos]
	c.pos++
	return v
}

type uint64SliceCursor struct {
	values []uint64
	pos    int
}

func (c *uint64SliceCursor) HasMore() bool {
	return c.pos < len(c.values)
}

func (c *uint64SliceCursor) Next() uint64 {
	v := c.values[c.pos]
	c.pos++
	return v
}

package geometry

import (
	"fmt"
	"reflect"
	"testing"
)

// recorder implements Handler[UnscaledPoint] and captures every callback in
// order, so tests can assert the exact visitor sequence.
type recorder struct {
	calls    []string
	converts int
}

func (r *recorder) log(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) Convert(p UnscaledPoint) UnscaledPoint {
	r.converts++
	return p
}

func (r *recorder) PointsBegin(count uint32) { r.log("points_begin(%d)", count) }
func (r *recorder) PointsPoint(p UnscaledPoint) {
	r.log("point(%d,%d,%d)", p.X, p.Y, p.Z)
}
func (r *recorder) PointsEnd() { r.log("points_end") }

func (r *recorder) LinestringBegin(count uint32) { r.log("linestring_begin(%d)", count) }
func (r *recorder) LinestringPoint(p UnscaledPoint) {
	r.log("point(%d,%d,%d)", p.X, p.Y, p.Z)
}
func (r *recorder) LinestringEnd() { r.log("linestring_end") }

func (r *recorder) RingBegin(count uint32) { r.log("ring_begin(%d)", count) }
func (r *recorder) RingPoint(p UnscaledPoint) {
	r.log("point(%d,%d,%d)", p.X, p.Y, p.Z)
}
func (r *recorder) RingEnd(ringType RingType) { r.log("ring_end(%s)", ringType) }

// attrRecorder additionally records geometric attribute callbacks.
type attrRecorder struct {
	recorder
}

func (r *attrRecorder) AttributeValue(keyIndex, scalingIndex uint32, value int64) {
	r.log("attr(key=%d,scaling=%d,value=%d)", keyIndex, scalingIndex, value)
}

func (r *attrRecorder) AttributeNull(keyIndex uint32) {
	r.log("attr_null(key=%d)", keyIndex)
}

func checkCalls(t *testing.T, got, want []string) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("callback sequence mismatch:\n got:  %v\n want: %v", got, want)
	}
}

// newTestDecoder builds a 2D decoder with the conventional maximum repeat
// count of half the stream length.
func newTestDecoder(data []uint32) *Decoder {
	return NewDecoder(NewUint32Cursor(data), uint32(len(data)/2))
}

func checkGeometryError(t *testing.T, err error, reason string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected geometry error %q, got nil", reason)
	}
	geomErr, ok := err.(*GeometryError)
	if !ok {
		t.Fatalf("expected *GeometryError, got %T: %v", err, err)
	}
	if geomErr.Reason != reason {
		t.Errorf("expected reason %q, got %q", reason, geomErr.Reason)
	}
}

func checkFormatError(t *testing.T, err error, reason string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected format error %q, got nil", reason)
	}
	formatErr, ok := err.(*FormatError)
	if !ok {
		t.Fatalf("expected *FormatError, got %T: %v", err, err)
	}
	if formatErr.Reason != reason {
		t.Errorf("expected reason %q, got %q", reason, formatErr.Reason)
	}
}

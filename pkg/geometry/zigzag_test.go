package geometry

import "testing"

func TestZigzagDecode32(t *testing.T) {
	tests := []struct {
		encoded uint32
		decoded int32
	}{
		{0, 0},
		{1, -1},
		{2, 1},
		{3, -2},
		{4, 2},
		{50, 25},
		{4294967294, 2147483647},
		{4294967295, -2147483648},
	}

	for _, tt := range tests {
		if got := decodeZigzag32(tt.encoded); got != tt.decoded {
			t.Errorf("decodeZigzag32(%d) = %d, want %d", tt.encoded, got, tt.decoded)
		}
		if got := encodeZigzag32(tt.decoded); got != tt.encoded {
			t.Errorf("encodeZigzag32(%d) = %d, want %d", tt.decoded, got, tt.encoded)
		}
	}
}

func TestZigzagDecode64(t *testing.T) {
	tests := []struct {
		encoded uint64
		decoded int64
	}{
		{0, 0},
		{1, -1},
		{2, 1},
		{3, -2},
		{4, 2},
		{18446744073709551614, 9223372036854775807},
		{18446744073709551615, -9223372036854775808},
	}

	for _, tt := range tests {
		if got := decodeZigzag64(tt.encoded); got != tt.decoded {
			t.Errorf("decodeZigzag64(%d) = %d, want %d", tt.encoded, got, tt.decoded)
		}
		if got := encodeZigzag64(tt.decoded); got != tt.encoded {
			t.Errorf("encodeZigzag64(%d) = %d, want %d", tt.decoded, got, tt.encoded)
		}
	}
}

func TestZigzagRoundTrip(t *testing.T) {
	for _, v := range []int32{0, 1, -1, 17, -25, 1 << 20, -(1 << 20)} {
		if got := decodeZigzag32(encodeZigzag32(v)); got != v {
			t.Errorf("round trip of %d gave %d", v, got)
		}
	}
}

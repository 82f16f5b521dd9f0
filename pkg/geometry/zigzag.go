package geometry

// Zigzag encoding maps signed integers onto unsigned ones so that values
// with small magnitude get small encodings: 0, -1, 1, -2, 2, ...
// MVT §4.3.2: ParameterIntegers are zigzag encoded.

func decodeZigzag32(v uint32) int32 {
	return int32(v>>1) ^ -int32(v&1)
}

func decodeZigzag64(v uint64) int64 {
	return int64(v>>1) ^ -int64(v&1)
}

func encodeZigzag32(v int32) uint32 {
	return uint32((v << 1) ^ (v >> 31))
}

func encodeZigzag64(v int64) uint64 {
	return uint64((v << 1) ^ (v >> 63))
}

package mvt

// DecodeOptions configures geometry decoding.
type DecodeOptions struct {
	// Elevations is the raw elevation delta stream of a 3D geometry, one
	// delta per vertex. Leave nil for 2D geometries.
	Elevations []int64

	// Attributes is the geometric attribute stream of the geometry.
	// Leave nil when the feature declares none.
	Attributes []uint64
}

// DefaultDecodeOptions returns options for a plain 2D geometry without
// geometric attributes.
func DefaultDecodeOptions() DecodeOptions {
	return DecodeOptions{}
}

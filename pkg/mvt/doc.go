// Package mvt builds concrete geometry values from Mapbox Vector Tile
// geometry streams.
//
// It sits on top of the low-level visitor-driven decoder in pkg/geometry
// and is aimed at callers who just want the decoded coordinates:
//
//	data := []uint32{9, 50, 34} // MoveTo(1), x=25, y=17
//	geom, err := mvt.DecodeGeometry(data, geometry.GeomTypePoint, mvt.DefaultDecodeOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(geom.Points[0]) // {25 17 0}
//
// Decoded geometries can be converted to paulmach/orb values for use with
// the wider Go geo ecosystem, and collections of them can be indexed for
// fast bounding-box queries:
//
//	idx := mvt.NewIndex()
//	idx.Insert(featureID, geom)
//	hits := idx.Search(mvt.BoundingBox{MinX: 0, MinY: 0, MaxX: 256, MaxY: 256})
//
// Coordinates are kept in tile-local integer space; projecting them to
// geographic coordinates is up to the caller (or a custom handler on the
// pkg/geometry API).
package mvt

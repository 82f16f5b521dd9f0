// Decode several geometries and run bounding-box queries against the
// R-tree index.
package main

import (
	"fmt"
	"log"

	"github.com/joto/vtzero/pkg/geometry"
	"github.com/joto/vtzero/pkg/mvt"
)

func cmd(id, count uint32) uint32 { return id&0x7 | count<<3 }
func zz(v int32) uint32           { return uint32((v << 1) ^ (v >> 31)) }

func pointAt(x, y int32) []uint32 {
	return []uint32{cmd(1, 1), zz(x), zz(y)}
}

func main() {
	idx := mvt.NewIndex()

	features := map[uint64][]uint32{
		1: pointAt(10, 10),
		2: pointAt(100, 100),
		3: pointAt(3000, 3000),
	}
	for id, data := range features {
		geom, err := mvt.DecodeGeometry(data, geometry.GeomTypePoint, mvt.DefaultDecodeOptions())
		if err != nil {
			log.Fatalf("feature %d: %v", id, err)
		}
		idx.Insert(id, geom)
	}

	fmt.Printf("indexed %d geometries\n", idx.Len())

	viewport := mvt.BoundingBox{MinX: 0, MinY: 0, MaxX: 256, MaxY: 256}
	for _, entry := range idx.Search(viewport) {
		fmt.Printf("feature %d is inside the viewport: %v\n", entry.ID, entry.Geometry.Points)
	}
}

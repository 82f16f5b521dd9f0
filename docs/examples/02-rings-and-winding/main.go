// Decode a polygon with a hole and report the winding classification of
// every ring.
package main

import (
	"fmt"
	"log"

	"github.com/joto/vtzero/pkg/geometry"
	"github.com/joto/vtzero/pkg/mvt"
)

func cmd(id, count uint32) uint32 { return id&0x7 | count<<3 }
func zz(v int32) uint32           { return uint32((v << 1) ^ (v >> 31)) }

func main() {
	data := []uint32{
		// counter-clockwise outer square (0,0)..(10,10)
		cmd(1, 1), zz(0), zz(0),
		cmd(2, 3), zz(10), zz(0), zz(0), zz(10), zz(-10), zz(0),
		cmd(7, 1),
		// clockwise hole (2,2)..(8,8)
		cmd(1, 1), zz(2), zz(-8),
		cmd(2, 3), zz(0), zz(6), zz(6), zz(0), zz(0), zz(-6),
		cmd(7, 1),
	}

	geom, err := mvt.DecodeGeometry(data, geometry.GeomTypePolygon, mvt.DefaultDecodeOptions())
	if err != nil {
		log.Fatal(err)
	}

	for i, ring := range geom.Rings {
		fmt.Printf("ring %d: %s, %d points (closed: %v)\n",
			i, ring.Type, len(ring.Points),
			ring.Points[0] == ring.Points[len(ring.Points)-1])
	}

	// hand the result to the orb ecosystem
	converted, err := geom.Orb()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("as orb geometry: %T\n", converted)
}

// Decode a point geometry with the one-call API and with a custom handler.
package main

import (
	"fmt"
	"log"

	"github.com/joto/vtzero/pkg/geometry"
	"github.com/joto/vtzero/pkg/mvt"
)

// printer writes every decoded point to stdout.
type printer struct{}

func (printer) Convert(p geometry.UnscaledPoint) geometry.Point {
	return geometry.Point{X: p.X, Y: p.Y}
}

func (printer) PointsBegin(count uint32) {
	fmt.Printf("multipoint with %d points:\n", count)
}

func (printer) PointsPoint(p geometry.Point) {
	fmt.Printf("  (%d, %d)\n", p.X, p.Y)
}

func (printer) PointsEnd() {
	fmt.Println("done")
}

func main() {
	// MoveTo(1), x=25, y=17 -- the point example from the MVT spec
	data := []uint32{9, 50, 34}

	// one-call API
	geom, err := mvt.DecodeGeometry(data, geometry.GeomTypePoint, mvt.DefaultDecodeOptions())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("decoded %s geometry: %v\n", geom.Type, geom.Points)

	// handler API
	d := geometry.NewDecoder(geometry.NewUint32Cursor(data), uint32(len(data)/2))
	if err := geometry.DecodePoint[geometry.Point](d, printer{}); err != nil {
		log.Fatal(err)
	}
}

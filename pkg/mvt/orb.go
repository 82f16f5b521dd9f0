package mvt

import (
	"github.com/paulmach/orb"

	"github.com/joto/vtzero/pkg/geometry"
)

// Orb converts the decoded geometry to a paulmach/orb geometry, keeping
// coordinates in tile-local space.
//
// Single-element multi geometries collapse to their simple form (one point
// yields orb.Point, one linestring orb.LineString, one polygon
// orb.Polygon). Polygon rings are assembled by classification: an Outer
// ring starts a new polygon, Inner rings become holes of the polygon
// started most recently, and Invalid (zero-area) rings are dropped.
// Elevation is discarded; orb is a 2D model.
func (g *Geometry) Orb() (orb.Geometry, error) {
	switch g.Type {
	case geometry.GeomTypePoint:
		if len(g.Points) == 1 {
			return orbPoint(g.Points[0]), nil
		}
		multi := make(orb.MultiPoint, 0, len(g.Points))
		for _, c := range g.Points {
			multi = append(multi, orbPoint(c))
		}
		return multi, nil

	case geometry.GeomTypeLinestring:
		if len(g.Lines) == 1 {
			return orbLine(g.Lines[0]), nil
		}
		multi := make(orb.MultiLineString, 0, len(g.Lines))
		for _, line := range g.Lines {
			multi = append(multi, orbLine(line))
		}
		return multi, nil

	case geometry.GeomTypePolygon:
		return g.orbPolygons()
	}

	return nil, &geometry.GeometryError{Reason: "unknown geometry type"}
}

func (g *Geometry) orbPolygons() (orb.Geometry, error) {
	var polygons orb.MultiPolygon

	for _, ring := range g.Rings {
		switch ring.Type {
		case geometry.RingOuter:
			polygons = append(polygons, orb.Polygon{orbRing(ring)})
		case geometry.RingInner:
			// an inner ring before any outer ring has nothing to belong
			// to and is dropped, like zero-area rings
			if len(polygons) == 0 {
				continue
			}
			last := len(polygons) - 1
			polygons[last] = append(polygons[last], orbRing(ring))
		}
	}

	if len(polygons) == 0 {
		return nil, &geometry.GeometryError{Reason: "polygon geometry has no outer ring"}
	}
	if len(polygons) == 1 {
		return polygons[0], nil
	}
	return polygons, nil
}

func orbPoint(c Coordinate) orb.Point {
	return orb.Point{float64(c.X), float64(c.Y)}
}

func orbLine(line []Coordinate) orb.LineString {
	out := make(orb.LineString, 0, len(line))
	for _, c := range line {
		out = append(out, orbPoint(c))
	}
	return out
}

func orbRing(ring Ring) orb.Ring {
	out := make(orb.Ring, 0, len(ring.Points))
	for _, c := range ring.Points {
		out = append(out, orbPoint(c))
	}
	return out
}

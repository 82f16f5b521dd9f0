package mvt

import (
	"reflect"
	"testing"

	"github.com/paulmach/orb"

	"github.com/joto/vtzero/pkg/geometry"
)

func TestOrbPoint(t *testing.T) {
	t.Run("single point", func(t *testing.T) {
		g := pointGeometry(25, 17)
		converted, err := g.Orb()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(converted, orb.Point{25, 17}) {
			t.Errorf("Orb() = %v, want Point(25 17)", converted)
		}
	})

	t.Run("multipoint", func(t *testing.T) {
		g := &Geometry{
			Type:   geometry.GeomTypePoint,
			Points: []Coordinate{{X: 1, Y: 2}, {X: 3, Y: 4}},
		}
		converted, err := g.Orb()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := orb.MultiPoint{{1, 2}, {3, 4}}
		if !reflect.DeepEqual(converted, want) {
			t.Errorf("Orb() = %v, want %v", converted, want)
		}
	})
}

func TestOrbLinestring(t *testing.T) {
	g := &Geometry{
		Type: geometry.GeomTypeLinestring,
		Lines: [][]Coordinate{
			{{X: 0, Y: 0}, {X: 4, Y: 0}},
			{{X: 1, Y: 1}, {X: 1, Y: 5}},
		},
	}
	converted, err := g.Orb()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := orb.MultiLineString{
		{{0, 0}, {4, 0}},
		{{1, 1}, {1, 5}},
	}
	if !reflect.DeepEqual(converted, want) {
		t.Errorf("Orb() = %v, want %v", converted, want)
	}
}

func TestOrbPolygon(t *testing.T) {
	square := func(ringType geometry.RingType, min, max int32) Ring {
		return Ring{
			Type: ringType,
			Points: []Coordinate{
				{X: min, Y: min}, {X: max, Y: min}, {X: max, Y: max},
				{X: min, Y: max}, {X: min, Y: min},
			},
		}
	}

	t.Run("outer with hole", func(t *testing.T) {
		g := &Geometry{
			Type: geometry.GeomTypePolygon,
			Rings: []Ring{
				square(geometry.RingOuter, 0, 10),
				square(geometry.RingInner, 2, 8),
			},
		}
		converted, err := g.Orb()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		polygon, ok := converted.(orb.Polygon)
		if !ok {
			t.Fatalf("Orb() returned %T, want orb.Polygon", converted)
		}
		if len(polygon) != 2 {
			t.Errorf("polygon has %d rings, want 2", len(polygon))
		}
	})

	t.Run("two outers make a multipolygon", func(t *testing.T) {
		g := &Geometry{
			Type: geometry.GeomTypePolygon,
			Rings: []Ring{
				square(geometry.RingOuter, 0, 10),
				square(geometry.RingOuter, 20, 30),
			},
		}
		converted, err := g.Orb()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		multi, ok := converted.(orb.MultiPolygon)
		if !ok {
			t.Fatalf("Orb() returned %T, want orb.MultiPolygon", converted)
		}
		if len(multi) != 2 {
			t.Errorf("multipolygon has %d polygons, want 2", len(multi))
		}
	})

	t.Run("invalid rings are dropped", func(t *testing.T) {
		g := &Geometry{
			Type: geometry.GeomTypePolygon,
			Rings: []Ring{
				square(geometry.RingOuter, 0, 10),
				{Type: geometry.RingInvalid, Points: []Coordinate{{X: 0, Y: 0}, {X: 0, Y: 0}}},
			},
		}
		converted, err := g.Orb()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		polygon, ok := converted.(orb.Polygon)
		if !ok {
			t.Fatalf("Orb() returned %T, want orb.Polygon", converted)
		}
		if len(polygon) != 1 {
			t.Errorf("polygon has %d rings, want 1", len(polygon))
		}
	})

	t.Run("no outer ring", func(t *testing.T) {
		g := &Geometry{
			Type: geometry.GeomTypePolygon,
			Rings: []Ring{
				square(geometry.RingInner, 2, 8),
			},
		}
		if _, err := g.Orb(); err == nil {
			t.Error("expected error for polygon without outer ring")
		}
	})
}

func TestOrbUnknownType(t *testing.T) {
	g := &Geometry{Type: geometry.GeomTypeUnknown}
	if _, err := g.Orb(); err == nil {
		t.Error("expected error for unknown geometry type")
	}
}

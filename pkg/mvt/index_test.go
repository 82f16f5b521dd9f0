package mvt

import (
	"testing"

	"github.com/joto/vtzero/pkg/geometry"
)

func pointGeometry(x, y int32) *Geometry {
	return &Geometry{
		Type:   geometry.GeomTypePoint,
		Points: []Coordinate{{X: x, Y: y}},
	}
}

func TestIndex(t *testing.T) {
	idx := NewIndex()

	if !idx.Insert(1, pointGeometry(10, 10)) {
		t.Fatal("Insert failed for point geometry")
	}
	if !idx.Insert(2, pointGeometry(200, 200)) {
		t.Fatal("Insert failed for point geometry")
	}
	if !idx.Insert(3, &Geometry{
		Type: geometry.GeomTypeLinestring,
		Lines: [][]Coordinate{
			{{X: 0, Y: 0}, {X: 50, Y: 50}},
		},
	}) {
		t.Fatal("Insert failed for linestring geometry")
	}

	if idx.Len() != 3 {
		t.Errorf("Len() = %d, want 3", idx.Len())
	}

	t.Run("query hits intersecting entries", func(t *testing.T) {
		hits := idx.Search(BoundingBox{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100})
		if len(hits) != 2 {
			t.Fatalf("got %d hits, want 2", len(hits))
		}
		seen := map[uint64]bool{}
		for _, e := range hits {
			seen[e.ID] = true
		}
		if !seen[1] || !seen[3] {
			t.Errorf("hit IDs = %v, want 1 and 3", seen)
		}
	})

	t.Run("query misses distant entries", func(t *testing.T) {
		hits := idx.Search(BoundingBox{MinX: 300, MinY: 300, MaxX: 400, MaxY: 400})
		if len(hits) != 0 {
			t.Errorf("got %d hits, want 0", len(hits))
		}
	})
}

func TestIndexRejectsEmptyGeometry(t *testing.T) {
	idx := NewIndex()
	if idx.Insert(1, &Geometry{Type: geometry.GeomTypeLinestring}) {
		t.Error("Insert accepted a geometry without vertices")
	}
	if idx.Len() != 0 {
		t.Errorf("Len() = %d, want 0", idx.Len())
	}
}

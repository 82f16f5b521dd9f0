package mvt

import (
	"github.com/dhconnelly/rtreego"
)

// An R-tree cannot store degenerate rectangles, so point-like bounds are
// widened by a sliver well below half a tile unit.
const minIndexExtent = 1e-9

// Index provides fast bounding-box queries over decoded geometries.
//
// Queries are O(log N) with the R-tree, compared to O(N) with a linear
// scan over the tile's features.
//
// Example:
//
//	idx := mvt.NewIndex()
//	for id, geom := range decoded {
//	    idx.Insert(id, geom)
//	}
//	hits := idx.Search(viewport)
//
// An Index is not safe for concurrent mutation; build it first, then share
// it for reads.
type Index struct {
	rtree *rtreego.Rtree
	size  int
}

// Entry is one indexed geometry.
type Entry struct {
	ID       uint64
	Geometry *Geometry

	bounds BoundingBox
}

// Bounds method for the rtreego.Spatial interface.
func (e *Entry) Bounds() rtreego.Rect {
	return rectOf(e.bounds)
}

func rectOf(b BoundingBox) rtreego.Rect {
	width := float64(b.MaxX) - float64(b.MinX)
	if width < minIndexExtent {
		width = minIndexExtent
	}
	height := float64(b.MaxY) - float64(b.MinY)
	if height < minIndexExtent {
		height = minIndexExtent
	}
	rect, _ := rtreego.NewRect(rtreego.Point{float64(b.MinX), float64(b.MinY)}, []float64{width, height})
	return rect
}

// NewIndex returns an empty geometry index.
func NewIndex() *Index {
	return &Index{
		rtree: rtreego.NewTree(2, 25, 50),
	}
}

// Insert adds a geometry under the given id. It reports false for a
// geometry without vertices, which cannot be indexed.
func (idx *Index) Insert(id uint64, g *Geometry) bool {
	bounds, ok := g.BoundingBox()
	if !ok {
		return false
	}
	idx.rtree.Insert(&Entry{ID: id, Geometry: g, bounds: bounds})
	idx.size++
	return true
}

// Search returns all entries whose bounds intersect the query box, in no
// particular order.
func (idx *Index) Search(query BoundingBox) []*Entry {
	spatials := idx.rtree.SearchIntersect(rectOf(query))

	entries := make([]*Entry, 0, len(spatials))
	for _, s := range spatials {
		entries = append(entries, s.(*Entry))
	}
	return entries
}

// Len reports the number of indexed geometries.
func (idx *Index) Len() int {
	return idx.size
}

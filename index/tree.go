// Package index implements the R*-tree spatial virtual table: a
// sqlite3.Module named SpartialIndex backed by
// github.com/dhconnelly/rtreego, a query-plan compiler translating SQL
// predicates into an index strategy, and the cursor that streams matching
// rows back to the SQL engine.
package index

import (
	"math"

	"github.com/dhconnelly/rtreego"

	"github.com/beetlebugorg/geob/geob"
	"github.com/beetlebugorg/geob/geoberr"
)

// Tree wraps an rtreego.Rtree, holding either point or arbitrary-geometry
// entries. It is built once when the virtual table is created and mutated
// as the shadow triggers forward INSERT/UPDATE/DELETE from the host table.
//
// Only a "type=point" index stores the single coordinate (and so supports
// distance predicates); every other typed variant — linestring, polygon,
// multipoint, multilinestring, multipolygon, and the untyped "geometry"
// variant — is keyed on the value's bounding-box envelope and differs only
// in whether isAny skips the per-row Kind check.
type Tree struct {
	rtree        *rtreego.Rtree
	requiredKind geob.Kind
	isAny        bool
	byRow        map[int64]entry
}

// NewTree constructs an empty tree for the given "type" creation
// parameter. isAny is true for "type=geometry", which accepts any kind;
// otherwise kind is the single Kind every inserted value must match.
func NewTree(kind geob.Kind, isAny bool) *Tree {
	return &Tree{
		rtree:        rtreego.NewTree(2, 25, 50),
		requiredKind: kind,
		isAny:        isAny,
		byRow:        make(map[int64]entry),
	}
}

// IsPoint reports whether this tree was created with type=point, the only
// variant that stores a bare coordinate and so supports distance search.
func (t *Tree) IsPoint() bool { return !t.isAny && t.requiredKind == geob.KindPoint }

// Len returns the number of indexed rows.
func (t *Tree) Len() int { return t.rtree.Size() }

func (t *Tree) entryFor(rowid int64, v geob.Value) (entry, error) {
	if !t.isAny {
		if err := v.CheckKind(t.requiredKind); err != nil {
			return nil, err
		}
	}
	if t.IsPoint() {
		g, err := v.Geometry()
		if err != nil {
			return nil, err
		}
		p, _ := g.AsPoint()
		return pointEntry{rowid: rowid, x: p.X(), y: p.Y(), blob: v.Bytes()}, nil
	}
	g, err := v.Geometry()
	if err != nil {
		return nil, err
	}
	box, ok := geob.BoundingBox(g)
	if !ok {
		return nil, geoberr.NewDomainError("cannot index empty geometry for rowid %d", rowid)
	}
	return geometryEntry{rowid: rowid, box: box, blob: v.Bytes()}, nil
}

// Insert adds or replaces the entry for rowid. A NULL geometry (empty v)
// is silently a no-op, since shadow triggers can fire before the indexed
// column is populated. For a point-typed tree, a non-Point value fails
// with a DomainError.
func (t *Tree) Insert(rowid int64, v geob.Value) error {
	if len(v.Bytes()) == 0 {
		return nil
	}
	e, err := t.entryFor(rowid, v)
	if err != nil {
		return err
	}
	t.Remove(rowid)
	t.rtree.Insert(e)
	t.byRow[rowid] = e
	return nil
}

// Remove deletes rowid's entry, if present.
func (t *Tree) Remove(rowid int64) {
	if e, ok := t.byRow[rowid]; ok {
		t.rtree.Delete(e)
		delete(t.byRow, rowid)
	}
}

// Update replaces rowid's entry: remove(oldid); insert(newid, newgeo).
func (t *Tree) Update(oldID, newID int64, v geob.Value) error {
	t.Remove(oldID)
	return t.Insert(newID, v)
}

// All returns every indexed entry, used by the cursor's full-scan strategy.
func (t *Tree) All() []entry {
	out := make([]entry, 0, len(t.byRow))
	for _, e := range t.byRow {
		out = append(out, e)
	}
	return out
}

// LocateInEnvelope returns every entry whose bounding box intersects box.
func (t *Tree) LocateInEnvelope(box geob.Box) []entry {
	rect, err := rectFromBox(box)
	if err != nil {
		return nil
	}
	spatials := t.rtree.SearchIntersect(rect)
	out := make([]entry, len(spatials))
	for i, s := range spatials {
		out[i] = s.(entry)
	}
	return out
}

// metersPerDegreeLat approximates the length of one degree of latitude,
// used to build a generous candidate envelope for LocateWithinDistance
// before the exact Haversine filter narrows it down.
const metersPerDegreeLat = 111320.0

// LocateWithinDistance returns every point entry within great-circle
// distance meters of (x, y). Point-typed trees only — callers must check
// IsPoint() first.
func (t *Tree) LocateWithinDistance(x, y, meters float64) []entry {
	latSpan := meters/metersPerDegreeLat + 1e-6
	cosLat := math.Cos(y * math.Pi / 180)
	if cosLat < 1e-6 {
		cosLat = 1e-6
	}
	lonSpan := meters/(metersPerDegreeLat*cosLat) + 1e-6
	box := geob.Box{MinX: x - lonSpan, MaxX: x + lonSpan, MinY: y - latSpan, MaxY: y + latSpan}

	candidates := t.LocateInEnvelope(box)
	out := candidates[:0]
	for _, e := range candidates {
		pe, ok := e.(pointEntry)
		if !ok {
			continue
		}
		if geob.HaversineMeters(x, y, pe.x, pe.y) <= meters {
			out = append(out, e)
		}
	}
	return out
}

// NearestNeighbors returns up to k entries closest to (x, y), backing
// ST_NearestNeighbors.
func (t *Tree) NearestNeighbors(k int, x, y float64) []entry {
	spatials := t.rtree.NearestNeighbors(k, rtreego.Point{x, y})
	out := make([]entry, 0, len(spatials))
	for _, s := range spatials {
		if s == nil {
			continue
		}
		out = append(out, s.(entry))
	}
	return out
}

package geob

import (
	"encoding/binary"

	"github.com/beetlebugorg/geob/geoberr"
	"github.com/beetlebugorg/geob/internal/wire"
)

// PointView is a borrowed handle onto a Point body: two packed f64 slots.
// Construction is O(1); it records only the slice and endian.
type PointView struct {
	buf   []byte // exactly CoordSize bytes
	order binary.ByteOrder
}

func (p PointView) X() float64 { return wire.ReadF64At(p.buf, 0, p.order) }
func (p PointView) Y() float64 { return wire.ReadF64At(p.buf, 8, p.order) }

func (p PointView) coord() Coord { return Coord{buf: p.buf, order: p.order} }

func parsePointView(buf []byte, pos int, order binary.ByteOrder) (PointView, int, error) {
	if pos+CoordSize > len(buf) {
		return PointView{}, 0, geoberr.NewFormatError(pos, "truncated point")
	}
	return PointView{buf: buf[pos : pos+CoordSize], order: order}, CoordSize, nil
}

// LineStringView is a borrowed handle onto a LineString (or, sharing the
// same layout, a MultiPoint) body: a u32 count followed by that many
// Points with no per-point tag. Construction is O(1); Point(i) is O(1)
// because coordinates are uniformly sized.
type LineStringView struct {
	buf   []byte // exactly n*CoordSize bytes, points only
	n     uint32
	order binary.ByteOrder
}

// Len returns the declared point count.
func (l LineStringView) Len() int { return int(l.n) }

// Point returns the i-th coordinate, or a FormatError if i is out of range.
func (l LineStringView) Point(i int) (PointView, error) {
	if i < 0 || i >= int(l.n) {
		return PointView{}, geoberr.NewFormatError(-1, "point index %d out of range [0,%d)", i, l.n)
	}
	off := i * CoordSize
	return PointView{buf: l.buf[off : off+CoordSize], order: l.order}, nil
}

func parseLineStringView(buf []byte, pos int, order binary.ByteOrder) (LineStringView, int, error) {
	if pos+4 > len(buf) {
		return LineStringView{}, 0, geoberr.NewFormatError(pos, "truncated line string count")
	}
	n := wire.ReadU32At(buf, pos, order)
	start := pos + 4
	size := int(n) * CoordSize
	if size < 0 || start+size > len(buf) {
		return LineStringView{}, 0, geoberr.NewFormatError(pos, "line string declares %d points beyond slice bounds", n)
	}
	return LineStringView{buf: buf[start : start+size], n: n, order: order}, 4 + size, nil
}

// PolygonView is a borrowed handle onto a Polygon (or, sharing the same
// layout, a MultiLineString) body: a u32 ring count followed by that many
// LineStrings with no per-ring tag. Rings are variably sized, so
// construction walks every ring once (O(n)) to record its span; indexed
// access is then O(1) against the pre-walked slice.
type PolygonView struct {
	rings []LineStringView
}

// Len returns the number of rings (0 means no exterior ring).
func (p PolygonView) Len() int { return len(p.rings) }

// Ring returns the i-th ring view: ring 0 is the exterior, 1..Len()-1 are
// interior holes.
func (p PolygonView) Ring(i int) (LineStringView, error) {
	if i < 0 || i >= len(p.rings) {
		return LineStringView{}, geoberr.NewFormatError(-1, "ring index %d out of range [0,%d)", i, len(p.rings))
	}
	return p.rings[i], nil
}

func parsePolygonView(buf []byte, pos int, order binary.ByteOrder) (PolygonView, int, error) {
	if pos+4 > len(buf) {
		return PolygonView{}, 0, geoberr.NewFormatError(pos, "truncated polygon ring count")
	}
	n := wire.ReadU32At(buf, pos, order)
	cursor := pos + 4
	rings := make([]LineStringView, 0, n)
	for i := uint32(0); i < n; i++ {
		ring, consumed, err := parseLineStringView(buf, cursor, order)
		if err != nil {
			return PolygonView{}, 0, err
		}
		rings = append(rings, ring)
		cursor += consumed
	}
	return PolygonView{rings: rings}, cursor - pos, nil
}

// MultiPolygonView is a borrowed handle onto a MultiPolygon body: a u32
// count followed by that many Polygons with no per-element tag.
type MultiPolygonView struct {
	polys []PolygonView
}

func (m MultiPolygonView) Len() int { return len(m.polys) }

func (m MultiPolygonView) Polygon(i int) (PolygonView, error) {
	if i < 0 || i >= len(m.polys) {
		return PolygonView{}, geoberr.NewFormatError(-1, "polygon index %d out of range [0,%d)", i, len(m.polys))
	}
	return m.polys[i], nil
}

func parseMultiPolygonView(buf []byte, pos int, order binary.ByteOrder) (MultiPolygonView, int, error) {
	if pos+4 > len(buf) {
		return MultiPolygonView{}, 0, geoberr.NewFormatError(pos, "truncated multipolygon count")
	}
	n := wire.ReadU32At(buf, pos, order)
	cursor := pos + 4
	polys := make([]PolygonView, 0, n)
	for i := uint32(0); i < n; i++ {
		poly, consumed, err := parsePolygonView(buf, cursor, order)
		if err != nil {
			return MultiPolygonView{}, 0, err
		}
		polys = append(polys, poly)
		cursor += consumed
	}
	return MultiPolygonView{polys: polys}, cursor - pos, nil
}

// CollectionView is a borrowed handle onto a GeometryCollection body: a u32
// count followed by that many child geometries (type:u8 body), each
// inheriting the parent's endian and carrying no SRID of its own.
type CollectionView struct {
	children []GeometryView
}

func (c CollectionView) Len() int { return len(c.children) }

func (c CollectionView) Geometry(i int) (GeometryView, error) {
	if i < 0 || i >= len(c.children) {
		return GeometryView{}, geoberr.NewFormatError(-1, "geometry index %d out of range [0,%d)", i, len(c.children))
	}
	return c.children[i], nil
}

func parseCollectionView(buf []byte, pos int, order binary.ByteOrder) (CollectionView, int, error) {
	if pos+4 > len(buf) {
		return CollectionView{}, 0, geoberr.NewFormatError(pos, "truncated collection count")
	}
	n := wire.ReadU32At(buf, pos, order)
	cursor := pos + 4
	children := make([]GeometryView, 0, n)
	for i := uint32(0); i < n; i++ {
		child, consumed, err := parseGeometryView(buf, cursor, order)
		if err != nil {
			return CollectionView{}, 0, err
		}
		children = append(children, child)
		cursor += consumed
	}
	return CollectionView{children: children}, cursor - pos, nil
}

// GeometryView is the discriminated sum of the seven geometry kinds,
// dispatched on a leading type byte. Exactly one of the As* accessors is
// valid for a given Kind().
type GeometryView struct {
	kind  Kind
	point PointView
	line  LineStringView // LineString or MultiPoint
	poly  PolygonView    // Polygon or MultiLineString
	multi MultiPolygonView
	coll  CollectionView
}

// Kind returns the geometry's discriminant.
func (g GeometryView) Kind() Kind { return g.kind }

func (g GeometryView) AsPoint() (PointView, bool)              { return g.point, g.kind == KindPoint }
func (g GeometryView) AsLineString() (LineStringView, bool)    { return g.line, g.kind == KindLineString }
func (g GeometryView) AsPolygon() (PolygonView, bool)          { return g.poly, g.kind == KindPolygon }
func (g GeometryView) AsMultiPoint() (LineStringView, bool)    { return g.line, g.kind == KindMultiPoint }
func (g GeometryView) AsMultiLineString() (PolygonView, bool)  { return g.poly, g.kind == KindMultiLineString }
func (g GeometryView) AsMultiPolygon() (MultiPolygonView, bool) {
	return g.multi, g.kind == KindMultiPolygon
}
func (g GeometryView) AsCollection() (CollectionView, bool) {
	return g.coll, g.kind == KindGeometryCollection
}

// parseGeometryView parses "type:u8 body" at pos, dispatching type=4 to the
// LineString-style parser (MultiPoint shares LineString's layout) and
// type=5 to the Polygon-style parser (MultiLineString shares Polygon's
// layout), per the binary decoder's resolved Open Question.
func parseGeometryView(buf []byte, pos int, order binary.ByteOrder) (GeometryView, int, error) {
	if pos >= len(buf) {
		return GeometryView{}, 0, geoberr.NewFormatError(pos, "truncated geometry: missing type byte")
	}
	kind := Kind(buf[pos])
	if !kind.Valid() {
		return GeometryView{}, 0, geoberr.NewFormatError(pos, "invalid geometry type byte %d", buf[pos])
	}
	body := pos + 1

	switch kind {
	case KindPoint:
		v, n, err := parsePointView(buf, body, order)
		if err != nil {
			return GeometryView{}, 0, err
		}
		return GeometryView{kind: kind, point: v}, 1 + n, nil
	case KindLineString, KindMultiPoint:
		v, n, err := parseLineStringView(buf, body, order)
		if err != nil {
			return GeometryView{}, 0, err
		}
		return GeometryView{kind: kind, line: v}, 1 + n, nil
	case KindPolygon, KindMultiLineString:
		v, n, err := parsePolygonView(buf, body, order)
		if err != nil {
			return GeometryView{}, 0, err
		}
		return GeometryView{kind: kind, poly: v}, 1 + n, nil
	case KindMultiPolygon:
		v, n, err := parseMultiPolygonView(buf, body, order)
		if err != nil {
			return GeometryView{}, 0, err
		}
		return GeometryView{kind: kind, multi: v}, 1 + n, nil
	case KindGeometryCollection:
		v, n, err := parseCollectionView(buf, body, order)
		if err != nil {
			return GeometryView{}, 0, err
		}
		return GeometryView{kind: kind, coll: v}, 1 + n, nil
	default:
		return GeometryView{}, 0, geoberr.NewFormatError(pos, "unreachable geometry kind %d", kind)
	}
}

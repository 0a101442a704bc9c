package geob

// Equal reports structural equality: same kind, same coordinates by value
// (exact ==, not bit-identity — callers comparing blobs of different
// endianness still compare equal because views decode before comparing).
func (g GeometryView) Equal(o GeometryView) bool {
	if g.kind != o.kind {
		return false
	}
	switch g.kind {
	case KindPoint:
		return g.point.X() == o.point.X() && g.point.Y() == o.point.Y()
	case KindLineString, KindMultiPoint:
		return lineStringsEqual(g.line, o.line)
	case KindPolygon, KindMultiLineString:
		return polygonsEqual(g.poly, o.poly)
	case KindMultiPolygon:
		if g.multi.Len() != o.multi.Len() {
			return false
		}
		for i := 0; i < g.multi.Len(); i++ {
			a, _ := g.multi.Polygon(i)
			b, _ := o.multi.Polygon(i)
			if !polygonsEqual(a, b) {
				return false
			}
		}
		return true
	case KindGeometryCollection:
		if g.coll.Len() != o.coll.Len() {
			return false
		}
		for i := 0; i < g.coll.Len(); i++ {
			a, _ := g.coll.Geometry(i)
			b, _ := o.coll.Geometry(i)
			if !a.Equal(b) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func lineStringsEqual(a, b LineStringView) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		pa, _ := a.Point(i)
		pb, _ := b.Point(i)
		if pa.X() != pb.X() || pa.Y() != pb.Y() {
			return false
		}
	}
	return true
}

func polygonsEqual(a, b PolygonView) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		ra, _ := a.Ring(i)
		rb, _ := b.Ring(i)
		if !lineStringsEqual(ra, rb) {
			return false
		}
	}
	return true
}

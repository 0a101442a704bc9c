package sqlgeob

import "github.com/beetlebugorg/geob/geob"

// planarWithin reports whether a's envelope lies within b's envelope.
// ST_Within/ST_Contains/ST_Intersects are bounding-box predicates rather
// than exact polygon/segment intersection tests — see DESIGN.md.
func planarWithin(a, b geob.GeometryView) (bool, bool) {
	ab, aok := geob.BoundingBox(a)
	bb, bok := geob.BoundingBox(b)
	if !aok || !bok {
		return false, false
	}
	return bb.Contains(ab), true
}

func planarContains(a, b geob.GeometryView) (bool, bool) {
	return planarWithin(b, a)
}

func planarIntersects(a, b geob.GeometryView) (bool, bool) {
	ab, aok := geob.BoundingBox(a)
	bb, bok := geob.BoundingBox(b)
	if !aok || !bok {
		return false, false
	}
	return ab.Intersects(bb), true
}

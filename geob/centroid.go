package geob

import "math"

// Centroid returns the geometric centroid of g: an area-weighted centroid
// when g contains any Polygon/MultiPolygon, else a length-weighted
// centroid along any LineString/MultiLineString, else the arithmetic mean
// of its points — the same dimension-priority rule most centroid
// implementations use, so a Polygon's holes pull its centroid away from
// the plain vertex average and a LineString's centroid lands on the line
// rather than averaging unevenly spaced vertices. ok is false for an
// empty geometry (zero vertices).
func Centroid(g GeometryView) (x, y float64, ok bool) {
	var areas, lengths, points accumulator
	accumulateCentroid(g, &areas, &lengths, &points)

	if areas.hasAny && areas.weight != 0 {
		return areas.sumX / areas.weight, areas.sumY / areas.weight, true
	}
	if lengths.hasAny && lengths.weight != 0 {
		return lengths.sumX / lengths.weight, lengths.sumY / lengths.weight, true
	}
	if points.hasAny && points.weight != 0 {
		return points.sumX / points.weight, points.sumY / points.weight, true
	}
	return 0, 0, false
}

// accumulator sums weight*coordinate pairs, the common shape behind both
// the area-weighted and length-weighted centroid passes.
type accumulator struct {
	sumX, sumY, weight float64
	hasAny             bool
}

func (a *accumulator) add(cx, cy, weight float64) {
	a.sumX += cx * weight
	a.sumY += cy * weight
	a.weight += weight
	a.hasAny = true
}

func accumulateCentroid(g GeometryView, areas, lengths, points *accumulator) {
	switch g.kind {
	case KindPoint:
		points.add(g.point.X(), g.point.Y(), 1)
	case KindMultiPoint:
		walkLineStringCoords(g.line, func(x, y float64) { points.add(x, y, 1) })
	case KindLineString:
		accumulateLineLength(g.line, lengths)
	case KindMultiLineString:
		for i := 0; i < g.poly.Len(); i++ {
			ring, _ := g.poly.Ring(i)
			accumulateLineLength(ring, lengths)
		}
	case KindPolygon:
		accumulatePolygonArea(g.poly, areas)
	case KindMultiPolygon:
		for i := 0; i < g.multi.Len(); i++ {
			p, _ := g.multi.Polygon(i)
			accumulatePolygonArea(p, areas)
		}
	case KindGeometryCollection:
		for i := 0; i < g.coll.Len(); i++ {
			child, _ := g.coll.Geometry(i)
			accumulateCentroid(child, areas, lengths, points)
		}
	}
}

func accumulateLineLength(l LineStringView, lengths *accumulator) {
	for i := 1; i < l.Len(); i++ {
		a, _ := l.Point(i - 1)
		b, _ := l.Point(i)
		length := math.Hypot(b.X()-a.X(), b.Y()-a.Y())
		if length == 0 {
			continue
		}
		lengths.add((a.X()+b.X())/2, (a.Y()+b.Y())/2, length)
	}
}

func accumulatePolygonArea(p PolygonView, areas *accumulator) {
	for i := 0; i < p.Len(); i++ {
		ring, _ := p.Ring(i)
		cx, cy, area, ok := ringCentroidAndArea(ring)
		if !ok {
			continue
		}
		areas.add(cx, cy, area)
	}
}

// ringCentroidAndArea computes a closed ring's signed planar area and its
// centroid via the standard polygon-centroid formula. A hole ring, wound
// opposite the exterior ring, contributes a negative area and so pulls
// the polygon's combined centroid away from the hole — the same sign
// cancellation chamberlainDuquetteSignedArea relies on for area.
func ringCentroidAndArea(l LineStringView) (cx, cy, area float64, ok bool) {
	n := l.Len()
	if n < 3 {
		return 0, 0, 0, false
	}
	var a, sumX, sumY float64
	for i := 0; i < n; i++ {
		p0, _ := l.Point(i)
		p1, _ := l.Point((i + 1) % n)
		cross := p0.X()*p1.Y() - p1.X()*p0.Y()
		a += cross
		sumX += (p0.X() + p1.X()) * cross
		sumY += (p0.Y() + p1.Y()) * cross
	}
	a /= 2
	if a == 0 {
		return 0, 0, 0, false
	}
	return sumX / (6 * a), sumY / (6 * a), a, true
}

func walkLineStringCoords(l LineStringView, fn func(x, y float64)) {
	for i := 0; i < l.Len(); i++ {
		p, _ := l.Point(i)
		fn(p.X(), p.Y())
	}
}

// Centroid returns the Value's centroid as a new Point Value sharing its
// SRID, or ok=false if the geometry has no coordinates.
func (v Value) Centroid() (Value, bool) {
	g, err := v.Geometry()
	if err != nil {
		return Value{}, false
	}
	x, y, ok := Centroid(g)
	if !ok {
		return Value{}, false
	}
	return NewPoint(v.SRID(), x, y), true
}

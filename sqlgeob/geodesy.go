// Package sqlgeob registers geob's SQL-callable scalar functions against a
// *sqlite3.SQLiteConn: the WKT codec, SRID accessors, projection, planar
// bounding-box predicates, geodesic area/perimeter measures, and a planar
// centroid.
package sqlgeob

import (
	"math"

	"github.com/beetlebugorg/geob/geob"
)

// chamberlainDuquetteSignedArea implements the Chamberlain & Duquette
// (2007) geodesic polygon area algorithm over a closed ring of
// (longitude, latitude) pairs in decimal degrees. Both single- and
// two-argument forms of ST_Area build on this one formula, differing only
// in whether the result is reported signed or unsigned.
func chamberlainDuquetteSignedArea(ring [][2]float64) float64 {
	if len(ring) < 3 {
		return 0
	}
	const deg2rad = math.Pi / 180
	var sum float64
	n := len(ring)
	for i := 0; i < n; i++ {
		p1 := ring[i]
		p2 := ring[(i+1)%n]
		lon1, lat1 := p1[0]*deg2rad, p1[1]*deg2rad
		lon2, lat2 := p2[0]*deg2rad, p2[1]*deg2rad
		sum += (lon2 - lon1) * (2 + math.Sin(lat1) + math.Sin(lat2))
	}
	return -sum * geob.EarthRadiusMeters * geob.EarthRadiusMeters / 2
}

func ringCoords(l geob.LineStringView) [][2]float64 {
	out := make([][2]float64, l.Len())
	for i := 0; i < l.Len(); i++ {
		p, _ := l.Point(i)
		out[i] = [2]float64{p.X(), p.Y()}
	}
	return out
}

// geodesicAreaSigned sums the Chamberlain-Duquette signed area of every
// ring in g (exterior rings and holes, whose opposite winding order makes
// their contribution subtract automatically, exactly as in the planar
// shoelace formula this generalizes).
func geodesicAreaSigned(g geob.GeometryView) float64 {
	var total float64
	switch g.Kind() {
	case geob.KindPolygon:
		poly, _ := g.AsPolygon()
		total += polygonAreaSigned(poly)
	case geob.KindMultiPolygon:
		multi, _ := g.AsMultiPolygon()
		for i := 0; i < multi.Len(); i++ {
			poly, _ := multi.Polygon(i)
			total += polygonAreaSigned(poly)
		}
	case geob.KindGeometryCollection:
		coll, _ := g.AsCollection()
		for i := 0; i < coll.Len(); i++ {
			child, _ := coll.Geometry(i)
			total += geodesicAreaSigned(child)
		}
	}
	return total
}

func polygonAreaSigned(p geob.PolygonView) float64 {
	var total float64
	for i := 0; i < p.Len(); i++ {
		ring, _ := p.Ring(i)
		total += chamberlainDuquetteSignedArea(ringCoords(ring))
	}
	return total
}

// geodesicPerimeter sums the Haversine length of every ring and line this
// geometry carries.
func geodesicPerimeter(g geob.GeometryView) float64 {
	var total float64
	switch g.Kind() {
	case geob.KindLineString:
		line, _ := g.AsLineString()
		total += lineLength(line)
	case geob.KindMultiLineString:
		multi, _ := g.AsMultiLineString()
		for i := 0; i < multi.Len(); i++ {
			ring, _ := multi.Ring(i)
			total += lineLength(ring)
		}
	case geob.KindPolygon:
		poly, _ := g.AsPolygon()
		total += polygonPerimeter(poly)
	case geob.KindMultiPolygon:
		multi, _ := g.AsMultiPolygon()
		for i := 0; i < multi.Len(); i++ {
			poly, _ := multi.Polygon(i)
			total += polygonPerimeter(poly)
		}
	case geob.KindGeometryCollection:
		coll, _ := g.AsCollection()
		for i := 0; i < coll.Len(); i++ {
			child, _ := coll.Geometry(i)
			total += geodesicPerimeter(child)
		}
	}
	return total
}

func polygonPerimeter(p geob.PolygonView) float64 {
	var total float64
	for i := 0; i < p.Len(); i++ {
		ring, _ := p.Ring(i)
		total += ringLength(ring)
	}
	return total
}

func lineLength(l geob.LineStringView) float64 {
	var total float64
	for i := 1; i < l.Len(); i++ {
		a, _ := l.Point(i - 1)
		b, _ := l.Point(i)
		total += geob.HaversineMeters(a.X(), a.Y(), b.X(), b.Y())
	}
	return total
}

// ringLength closes the ring back to its first point, unlike lineLength.
func ringLength(l geob.LineStringView) float64 {
	total := lineLength(l)
	if l.Len() > 1 {
		first, _ := l.Point(0)
		last, _ := l.Point(l.Len() - 1)
		total += geob.HaversineMeters(last.X(), last.Y(), first.X(), first.Y())
	}
	return total
}

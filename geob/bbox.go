package geob

import "math"

// Box is an axis-aligned bounding rectangle in the geometry's own SRID
// units: Min{X,Y} <= Max{X,Y}.
type Box struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns MaxX - MinX.
func (b Box) Width() float64 { return b.MaxX - b.MinX }

// Height returns MaxY - MinY.
func (b Box) Height() float64 { return b.MaxY - b.MinY }

// Contains reports whether o lies entirely within b (inclusive).
func (b Box) Contains(o Box) bool {
	return b.MinX <= o.MinX && b.MinY <= o.MinY && b.MaxX >= o.MaxX && b.MaxY >= o.MaxY
}

// Intersects reports whether b and o overlap, including edge-touching.
func (b Box) Intersects(o Box) bool {
	return b.MinX <= o.MaxX && o.MinX <= b.MaxX && b.MinY <= o.MaxY && o.MinY <= b.MaxY
}

// ContainsPoint reports whether (x, y) lies within b, inclusive of edges.
func (b Box) ContainsPoint(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// BoundingBox walks g and returns its axis-aligned envelope. ok is false
// when g has no coordinates to bound: an empty LineString or MultiPoint, a
// Polygon or MultiLineString with no non-empty ring, or an empty
// MultiPolygon or collection.
func BoundingBox(g GeometryView) (Box, bool) {
	box := Box{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
	any := extendBox(&box, g)
	return box, any
}

func extendBox(box *Box, g GeometryView) bool {
	switch g.kind {
	case KindPoint:
		extendPoint(box, g.point)
		return true
	case KindLineString, KindMultiPoint:
		return extendLineString(box, g.line)
	case KindPolygon, KindMultiLineString:
		return extendPolygon(box, g.poly)
	case KindMultiPolygon:
		any := false
		for i := 0; i < g.multi.Len(); i++ {
			p, _ := g.multi.Polygon(i)
			if extendPolygon(box, p) {
				any = true
			}
		}
		return any
	case KindGeometryCollection:
		any := false
		for i := 0; i < g.coll.Len(); i++ {
			child, _ := g.coll.Geometry(i)
			if extendBox(box, child) {
				any = true
			}
		}
		return any
	default:
		return false
	}
}

func extendPoint(box *Box, p PointView) {
	x, y := p.X(), p.Y()
	box.MinX = math.Min(box.MinX, x)
	box.MinY = math.Min(box.MinY, y)
	box.MaxX = math.Max(box.MaxX, x)
	box.MaxY = math.Max(box.MaxY, y)
}

func extendLineString(box *Box, l LineStringView) bool {
	if l.Len() == 0 {
		return false
	}
	for i := 0; i < l.Len(); i++ {
		p, _ := l.Point(i)
		extendPoint(box, p)
	}
	return true
}

func extendPolygon(box *Box, p PolygonView) bool {
	if p.Len() == 0 {
		return false
	}
	any := false
	for i := 0; i < p.Len(); i++ {
		ring, _ := p.Ring(i)
		if extendLineString(box, ring) {
			any = true
		}
	}
	return any
}

// Envelope returns a new Value holding the axis-aligned bounding polygon of
// v's geometry, sharing v's SRID. ok is false when v's geometry has no
// coordinates to bound.
func (v Value) Envelope() (Value, bool) {
	g, err := v.Geometry()
	if err != nil {
		return Value{}, false
	}
	box, ok := BoundingBox(g)
	if !ok {
		return Value{}, false
	}
	return NewEnvelopePolygon(v.SRID(), box), true
}

// NewEnvelopePolygon builds a closed 5-point exterior-ring-only Polygon
// tracing b counter-clockwise from its southwest corner.
func NewEnvelopePolygon(srid uint32, b Box) Value {
	ring := [][2]float64{
		{b.MinX, b.MinY},
		{b.MaxX, b.MinY},
		{b.MaxX, b.MaxY},
		{b.MinX, b.MaxY},
		{b.MinX, b.MinY},
	}
	return newPolygonValue(srid, ring)
}

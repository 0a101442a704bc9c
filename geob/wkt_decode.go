package geob

import (
	"fmt"
	"strconv"
	"strings"
)

// Decode is the literal inverse of FromText: it walks a Value's binary body
// and emits "SRID=N;TYPE(...)", rings nested in parentheses and coordinates
// separated by ", ". Round-tripping FromText then Decode is an identity for
// every geometry in the supported grammar.
func Decode(v Value) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "SRID=%d;", v.SRID())
	g, err := v.Geometry()
	if err != nil {
		return sb.String()
	}
	writeGeometryText(&sb, g)
	return sb.String()
}

func writeGeometryText(sb *strings.Builder, g GeometryView) {
	switch g.kind {
	case KindPoint:
		sb.WriteString("POINT(")
		writeCoordText(sb, g.point)
		sb.WriteByte(')')
	case KindLineString:
		sb.WriteString("LINESTRING")
		writeCoordsText(sb, g.line)
	case KindMultiPoint:
		sb.WriteString("MULTIPOINT")
		writeCoordsText(sb, g.line)
	case KindPolygon:
		sb.WriteString("POLYGON")
		writeRingsText(sb, g.poly)
	case KindMultiLineString:
		sb.WriteString("MULTILINESTRING")
		writeRingsText(sb, g.poly)
	case KindMultiPolygon:
		sb.WriteString("MULTIPOLYGON(")
		for i := 0; i < g.multi.Len(); i++ {
			if i > 0 {
				sb.WriteString(", ")
			}
			poly, _ := g.multi.Polygon(i)
			writeRingsText(sb, poly)
		}
		sb.WriteByte(')')
	case KindGeometryCollection:
		sb.WriteString("GEOMETRYCOLLECTION(")
		for i := 0; i < g.coll.Len(); i++ {
			if i > 0 {
				sb.WriteString(", ")
			}
			child, _ := g.coll.Geometry(i)
			writeGeometryText(sb, child)
		}
		sb.WriteByte(')')
	}
}

func writeCoordText(sb *strings.Builder, p PointView) {
	sb.WriteString(formatFloat(p.X()))
	sb.WriteByte(' ')
	sb.WriteString(formatFloat(p.Y()))
}

func writeCoordsText(sb *strings.Builder, l LineStringView) {
	sb.WriteByte('(')
	for i := 0; i < l.Len(); i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		p, _ := l.Point(i)
		writeCoordText(sb, p)
	}
	sb.WriteByte(')')
}

func writeRingsText(sb *strings.Builder, p PolygonView) {
	sb.WriteByte('(')
	for i := 0; i < p.Len(); i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		ring, _ := p.Ring(i)
		writeCoordsText(sb, ring)
	}
	sb.WriteByte(')')
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

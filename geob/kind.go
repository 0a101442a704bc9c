// Package geob implements the SRID-framed binary geometry encoding: the
// blob layout [endian:1][srid:u32][geometry], zero-copy views over a
// borrowed slice, and the reference-counted owning Value that wraps it.
//
// The format is a superset of WKB: every type byte and count field reads
// exactly the way canonical WKB does, but MultiPoint, MultiLineString, and
// MultiPolygon children carry no per-element type tag — they inherit the
// parent's. See Kind for the dispatch table.
package geob

import "fmt"

// Kind is the leading type byte of an encoded geometry body.
type Kind byte

const (
	KindPoint              Kind = 1
	KindLineString         Kind = 2
	KindPolygon            Kind = 3
	KindMultiPoint         Kind = 4
	KindMultiLineString    Kind = 5
	KindMultiPolygon       Kind = 6
	KindGeometryCollection Kind = 7
)

// String returns the WKT keyword for the kind (POINT, LINESTRING, ...).
func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "POINT"
	case KindLineString:
		return "LINESTRING"
	case KindPolygon:
		return "POLYGON"
	case KindMultiPoint:
		return "MULTIPOINT"
	case KindMultiLineString:
		return "MULTILINESTRING"
	case KindMultiPolygon:
		return "MULTIPOLYGON"
	case KindGeometryCollection:
		return "GEOMETRYCOLLECTION"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", byte(k))
	}
}

// Valid reports whether k is one of the seven recognized geometry kinds.
func (k Kind) Valid() bool {
	return k >= KindPoint && k <= KindGeometryCollection
}

// KindFromKeyword maps a lowercase "type" creation-parameter keyword of the
// spatial index module (geometry|point|linestring|polygon|multipoint|
// multilinestring|multipolygon) to its Kind. Matching is case-sensitive.
// "geometry" returns Kind 0 with ok=true, meaning any kind.
func KindFromKeyword(keyword string) (Kind, bool) {
	switch keyword {
	case "point":
		return KindPoint, true
	case "linestring":
		return KindLineString, true
	case "polygon":
		return KindPolygon, true
	case "multipoint":
		return KindMultiPoint, true
	case "multilinestring":
		return KindMultiLineString, true
	case "multipolygon":
		return KindMultiPolygon, true
	case "geometry":
		return 0, true // "any" sentinel
	default:
		return 0, false
	}
}

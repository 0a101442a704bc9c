package geob

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/beetlebugorg/geob/geoberr"
	"github.com/beetlebugorg/geob/internal/wire"
)

// FromText parses WKT-with-SRID ("SRID=4326;POINT(1 2)") into a new Value.
// Encoding is single-pass: counts are reserved as placeholder zeros,
// their position recorded, the children parsed, and the true count
// patched back in once the closing paren is consumed — no second buffer.
// Output is always encoded little-endian.
func FromText(s string) (Value, error) {
	sc := &scanner{s: s}
	if err := sc.expectLiteral("SRID"); err != nil {
		return Value{}, err
	}
	sc.skipSpace()
	if err := sc.expectByte('='); err != nil {
		return Value{}, err
	}
	sc.skipSpace()
	srid, err := sc.parseUint32()
	if err != nil {
		return Value{}, err
	}
	sc.skipSpace()
	if err := sc.expectByte(';'); err != nil {
		return Value{}, err
	}

	order := binary.LittleEndian
	w := wire.NewWriter(order)
	w.WriteU8(1)
	w.WriteU32(srid)

	if err := parseGeometryText(sc, w, order); err != nil {
		return Value{}, errors.Wrap(err, "geob: parse wkt")
	}

	sc.skipSpace()
	if !sc.eof() {
		return Value{}, geoberr.NewFormatError(sc.pos, "trailing input after geometry")
	}

	return Value{buf: newBuffer(w.Bytes())}, nil
}

func parseGeometryText(sc *scanner, w *wire.Writer, order binary.ByteOrder) error {
	sc.skipSpace()
	switch {
	case sc.is("POINT"):
		sc.pos += len("POINT")
		w.WriteU8(byte(KindPoint))
		return parseCoordText(sc, w)
	case sc.is("LINESTRING"):
		sc.pos += len("LINESTRING")
		w.WriteU8(byte(KindLineString))
		return parseCoordsBody(sc, w, order)
	case sc.is("MULTILINESTRING"):
		sc.pos += len("MULTILINESTRING")
		w.WriteU8(byte(KindMultiLineString))
		return parseRingsBody(sc, w, order)
	case sc.is("MULTIPOLYGON"):
		sc.pos += len("MULTIPOLYGON")
		w.WriteU8(byte(KindMultiPolygon))
		return parseMultiPolygonBody(sc, w, order)
	case sc.is("MULTIPOINT"):
		sc.pos += len("MULTIPOINT")
		w.WriteU8(byte(KindMultiPoint))
		return parseCoordsBody(sc, w, order)
	case sc.is("POLYGON"):
		sc.pos += len("POLYGON")
		w.WriteU8(byte(KindPolygon))
		return parseRingsBody(sc, w, order)
	case sc.is("GEOMETRYCOLLECTION"):
		sc.pos += len("GEOMETRYCOLLECTION")
		w.WriteU8(byte(KindGeometryCollection))
		return parseCollectionBody(sc, w, order)
	default:
		return geoberr.NewFormatError(sc.pos, "unrecognized geometry keyword")
	}
}

// parseCoordText parses a single "(" number ws number ")" pair, used by
// POINT, which carries no element count.
func parseCoordText(sc *scanner, w *wire.Writer) error {
	sc.skipSpace()
	if err := sc.expectByte('('); err != nil {
		return err
	}
	sc.skipSpace()
	x, err := sc.parseFloat()
	if err != nil {
		return err
	}
	if err := sc.expectWS(); err != nil {
		return err
	}
	y, err := sc.parseFloat()
	if err != nil {
		return err
	}
	sc.skipSpace()
	if err := sc.expectByte(')'); err != nil {
		return err
	}
	w.WriteF64(x)
	w.WriteF64(y)
	return nil
}

// parseCoordsBody parses the "coords" production: a parenthesized,
// comma-separated list of coordinate pairs prefixed by a patched u32
// count. Shared by LineString and MultiPoint.
func parseCoordsBody(sc *scanner, w *wire.Writer, order binary.ByteOrder) error {
	sc.skipSpace()
	if err := sc.expectByte('('); err != nil {
		return err
	}
	countPos := w.Position()
	w.WriteU32(0)
	var count uint32
	for {
		sc.skipSpace()
		if sc.peek() == ')' {
			break
		}
		if count > 0 {
			if err := sc.expectByte(','); err != nil {
				return err
			}
			sc.skipSpace()
		}
		x, err := sc.parseFloat()
		if err != nil {
			return err
		}
		if err := sc.expectWS(); err != nil {
			return err
		}
		y, err := sc.parseFloat()
		if err != nil {
			return err
		}
		w.WriteF64(x)
		w.WriteF64(y)
		count++
	}
	if err := sc.expectByte(')'); err != nil {
		return err
	}
	w.PatchU32At(countPos, count)
	return nil
}

// parseRingsBody parses the "rings" production: a parenthesized,
// comma-separated list of coords groups prefixed by a patched u32 count.
// Shared by Polygon and MultiLineString.
func parseRingsBody(sc *scanner, w *wire.Writer, order binary.ByteOrder) error {
	sc.skipSpace()
	if err := sc.expectByte('('); err != nil {
		return err
	}
	countPos := w.Position()
	w.WriteU32(0)
	var count uint32
	for {
		sc.skipSpace()
		if sc.peek() == ')' {
			break
		}
		if count > 0 {
			if err := sc.expectByte(','); err != nil {
				return err
			}
		}
		if err := parseCoordsBody(sc, w, order); err != nil {
			return err
		}
		count++
	}
	if err := sc.expectByte(')'); err != nil {
		return err
	}
	w.PatchU32At(countPos, count)
	return nil
}

// parseMultiPolygonBody parses MultiPolygon's extra level of nesting: a
// parenthesized, comma-separated list of rings groups.
func parseMultiPolygonBody(sc *scanner, w *wire.Writer, order binary.ByteOrder) error {
	sc.skipSpace()
	if err := sc.expectByte('('); err != nil {
		return err
	}
	countPos := w.Position()
	w.WriteU32(0)
	var count uint32
	for {
		sc.skipSpace()
		if sc.peek() == ')' {
			break
		}
		if count > 0 {
			if err := sc.expectByte(','); err != nil {
				return err
			}
		}
		if err := parseRingsBody(sc, w, order); err != nil {
			return err
		}
		count++
	}
	if err := sc.expectByte(')'); err != nil {
		return err
	}
	w.PatchU32At(countPos, count)
	return nil
}

// parseCollectionBody parses GeometryCollection's child list: each child
// is a full "type:u8 body" geometry, recursively dispatched.
func parseCollectionBody(sc *scanner, w *wire.Writer, order binary.ByteOrder) error {
	sc.skipSpace()
	if err := sc.expectByte('('); err != nil {
		return err
	}
	countPos := w.Position()
	w.WriteU32(0)
	var count uint32
	for {
		sc.skipSpace()
		if sc.peek() == ')' {
			break
		}
		if count > 0 {
			if err := sc.expectByte(','); err != nil {
				return err
			}
		}
		if err := parseGeometryText(sc, w, order); err != nil {
			return err
		}
		count++
	}
	if err := sc.expectByte(')'); err != nil {
		return err
	}
	w.PatchU32At(countPos, count)
	return nil
}

package geob

import (
	"encoding/binary"

	"github.com/beetlebugorg/geob/geoberr"
	"github.com/beetlebugorg/geob/internal/wire"
)

// Transformer maps a single (x, y) pair from one CRS to another. Callers
// construct one per source/target SRID pair — typically backed by a real
// projection library — before calling ProjectInto; constructing a
// Transformer for an SRID pair the library doesn't recognize is expected to
// fail there, before any blob bytes are touched.
type Transformer interface {
	Transform(x, y float64) (float64, float64, error)
}

// IdentityTransformer leaves coordinates unchanged. Useful for SRID
// relabeling without reprojection, and in tests.
type IdentityTransformer struct{}

func (IdentityTransformer) Transform(x, y float64) (float64, float64, error) {
	return x, y, nil
}

// ProjectInto returns a new Value with every coordinate rewritten through
// tr and the SRID field patched to to, leaving structural bytes (endian,
// type tags, counts) untouched. The source Value is never mutated.
//
// Per-coordinate transform failure partway through the walk is not
// recoverable: ProjectInto returns the error and a zero Value, discarding
// the partly rewritten copy, and does not retry.
func (v Value) ProjectInto(to uint32, tr Transformer) (Value, error) {
	out := v.Clone()
	out.makeUnique()
	order := out.Order()
	wire.WriteU32At(out.buf.b, 1, to, order)
	if _, err := projectGeometry(out.buf.b, 5, order, tr); err != nil {
		return Value{}, err
	}
	return out, nil
}

func projectGeometry(buf []byte, pos int, order binary.ByteOrder, tr Transformer) (int, error) {
	kind := Kind(buf[pos])
	body := pos + 1

	switch kind {
	case KindPoint:
		if err := projectCoord(buf, body, order, tr); err != nil {
			return 0, err
		}
		return 1 + CoordSize, nil
	case KindLineString, KindMultiPoint:
		consumed, err := projectLineString(buf, body, order, tr)
		if err != nil {
			return 0, err
		}
		return 1 + consumed, nil
	case KindPolygon, KindMultiLineString:
		consumed, err := projectPolygon(buf, body, order, tr)
		if err != nil {
			return 0, err
		}
		return 1 + consumed, nil
	case KindMultiPolygon:
		n := wire.ReadU32At(buf, body, order)
		cursor := body + 4
		for i := uint32(0); i < n; i++ {
			consumed, err := projectPolygon(buf, cursor, order, tr)
			if err != nil {
				return 0, err
			}
			cursor += consumed
		}
		return cursor - pos, nil
	case KindGeometryCollection:
		n := wire.ReadU32At(buf, body, order)
		cursor := body + 4
		for i := uint32(0); i < n; i++ {
			consumed, err := projectGeometry(buf, cursor, order, tr)
			if err != nil {
				return 0, err
			}
			cursor += consumed
		}
		return cursor - pos, nil
	default:
		return 0, geoberr.NewFormatError(pos, "unreachable geometry kind %d", kind)
	}
}

func projectCoord(buf []byte, pos int, order binary.ByteOrder, tr Transformer) error {
	x := wire.ReadF64At(buf, pos, order)
	y := wire.ReadF64At(buf, pos+8, order)
	nx, ny, err := tr.Transform(x, y)
	if err != nil {
		return err
	}
	wire.WriteF64At(buf, pos, nx, order)
	wire.WriteF64At(buf, pos+8, ny, order)
	return nil
}

func projectLineString(buf []byte, pos int, order binary.ByteOrder, tr Transformer) (int, error) {
	n := wire.ReadU32At(buf, pos, order)
	cursor := pos + 4
	for i := uint32(0); i < n; i++ {
		if err := projectCoord(buf, cursor, order, tr); err != nil {
			return 0, err
		}
		cursor += CoordSize
	}
	return cursor - pos, nil
}

func projectPolygon(buf []byte, pos int, order binary.ByteOrder, tr Transformer) (int, error) {
	n := wire.ReadU32At(buf, pos, order)
	cursor := pos + 4
	for i := uint32(0); i < n; i++ {
		consumed, err := projectLineString(buf, cursor, order, tr)
		if err != nil {
			return 0, err
		}
		cursor += consumed
	}
	return cursor - pos, nil
}

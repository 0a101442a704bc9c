package geob

import (
	"encoding/binary"

	"github.com/beetlebugorg/geob/geoberr"
	"github.com/beetlebugorg/geob/internal/wire"
)

// maxCollectionDepth bounds the recursion used by eatGeometry so a hostile
// blob cannot blow the stack.
const maxCollectionDepth = 64

// Validate reports whether b is a well-formed encoded geometry blob. It is
// the cheap, detail-free check safe to call before adopting untrusted input.
func Validate(b []byte) bool {
	return validate(b) == nil
}

// validate is the positioned-error sibling of Validate, used internally by
// FromBytes so construction failures carry a useful position.
func validate(b []byte) error {
	if len(b) < 5 {
		return geoberr.NewFormatError(0, "blob shorter than header (endian+srid)")
	}
	order, err := endianFromByte(b[0])
	if err != nil {
		return err
	}
	consumed, err := eatGeometry(b, 5, order, 0)
	if err != nil {
		return err
	}
	end := 5 + consumed
	if end != len(b) {
		return geoberr.NewFormatError(end, "trailing bytes after geometry: %d unconsumed", len(b)-end)
	}
	return nil
}

func endianFromByte(b byte) (binary.ByteOrder, error) {
	switch b {
	case 0:
		return binary.BigEndian, nil
	case 1:
		return binary.LittleEndian, nil
	default:
		return nil, geoberr.NewFormatError(0, "invalid endian byte %d, want 0 or 1", b)
	}
}

// eatGeometry walks one "type:u8 body" without materializing a view,
// returning the number of bytes consumed.
func eatGeometry(buf []byte, pos int, order binary.ByteOrder, depth int) (int, error) {
	if depth > maxCollectionDepth {
		return 0, geoberr.NewFormatError(pos, "collection nesting exceeds %d levels", maxCollectionDepth)
	}
	if pos >= len(buf) {
		return 0, geoberr.NewFormatError(pos, "truncated geometry: missing type byte")
	}
	kind := Kind(buf[pos])
	if !kind.Valid() {
		return 0, geoberr.NewFormatError(pos, "invalid geometry type byte %d", buf[pos])
	}
	body := pos + 1

	switch kind {
	case KindPoint:
		if body+CoordSize > len(buf) {
			return 0, geoberr.NewFormatError(pos, "truncated point")
		}
		return 1 + CoordSize, nil
	case KindLineString, KindMultiPoint:
		n, err := eatU32(buf, body, order)
		if err != nil {
			return 0, err
		}
		size := int(n) * CoordSize
		if body+4+size > len(buf) {
			return 0, geoberr.NewFormatError(pos, "line string declares %d points beyond slice bounds", n)
		}
		return 1 + 4 + size, nil
	case KindPolygon, KindMultiLineString:
		n, err := eatU32(buf, body, order)
		if err != nil {
			return 0, err
		}
		cursor := body + 4
		for i := uint32(0); i < n; i++ {
			consumed, err := eatLineString(buf, cursor, order)
			if err != nil {
				return 0, err
			}
			cursor += consumed
		}
		return cursor - pos, nil
	case KindMultiPolygon:
		n, err := eatU32(buf, body, order)
		if err != nil {
			return 0, err
		}
		cursor := body + 4
		for i := uint32(0); i < n; i++ {
			consumed, err := eatPolygon(buf, cursor, order)
			if err != nil {
				return 0, err
			}
			cursor += consumed
		}
		return cursor - pos, nil
	case KindGeometryCollection:
		n, err := eatU32(buf, body, order)
		if err != nil {
			return 0, err
		}
		cursor := body + 4
		for i := uint32(0); i < n; i++ {
			consumed, err := eatGeometry(buf, cursor, order, depth+1)
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

func eatU32(buf []byte, pos int, order binary.ByteOrder) (uint32, error) {
	if pos+4 > len(buf) {
		return 0, geoberr.NewFormatError(pos, "truncated count")
	}
	return wire.ReadU32At(buf, pos, order), nil
}

func eatLineString(buf []byte, pos int, order binary.ByteOrder) (int, error) {
	n, err := eatU32(buf, pos, order)
	if err != nil {
		return 0, err
	}
	size := int(n) * CoordSize
	if pos+4+size > len(buf) {
		return 0, geoberr.NewFormatError(pos, "line string declares %d points beyond slice bounds", n)
	}
	return 4 + size, nil
}

func eatPolygon(buf []byte, pos int, order binary.ByteOrder) (int, error) {
	n, err := eatU32(buf, pos, order)
	if err != nil {
		return 0, err
	}
	cursor := pos + 4
	for i := uint32(0); i < n; i++ {
		consumed, err := eatLineString(buf, cursor, order)
		if err != nil {
			return 0, err
		}
		cursor += consumed
	}
	return cursor - pos, nil
}

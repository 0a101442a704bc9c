package geob

import (
	"encoding/binary"

	"github.com/beetlebugorg/geob/internal/wire"
)

// CoordSize is the on-wire size of a single (x, y) pair.
const CoordSize = 16

// Coord is a borrowed 16-byte (x, y) pair.
type Coord struct {
	buf   []byte
	order binary.ByteOrder
}

// X returns the first coordinate slot.
func (c Coord) X() float64 { return wire.ReadF64At(c.buf, 0, c.order) }

// Y returns the second coordinate slot.
func (c Coord) Y() float64 { return wire.ReadF64At(c.buf, 8, c.order) }

// Equal compares two coordinates with exact floating-point equality:
// decoded values are compared, not the underlying bytes, so two blobs
// encoding the same point in different byte orders compare equal.
func (c Coord) Equal(o Coord) bool {
	return c.X() == o.X() && c.Y() == o.Y()
}

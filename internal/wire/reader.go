// Package wire implements endian-aware scalar reads and writes over a byte
// slice, plus the "reserve and patch" trick the WKT encoder uses to emit a
// count before its elements are known.
package wire

import (
	"encoding/binary"
	"math"

	"github.com/beetlebugorg/geob/geoberr"
)

// Reader walks a borrowed byte slice with a fixed byte order. It never
// allocates and never copies; every accessor bounds-checks and returns a
// position-tagged FormatError instead of panicking.
type Reader struct {
	Buf   []byte
	Order binary.ByteOrder
	pos   int
}

// NewReader wraps buf for reading starting at offset 0.
func NewReader(buf []byte, order binary.ByteOrder) *Reader {
	return &Reader{Buf: buf, Order: order}
}

// Pos returns the current read offset.
func (r *Reader) Pos() int { return r.pos }

// Remaining reports how many unread bytes are left.
func (r *Reader) Remaining() int { return len(r.Buf) - r.pos }

func (r *Reader) need(n int) error {
	if r.pos+n > len(r.Buf) {
		return geoberr.NewFormatError(r.pos, "truncated payload: need %d bytes, have %d", n, r.Remaining())
	}
	return nil
}

// U8 reads one byte.
func (r *Reader) U8() (byte, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	b := r.Buf[r.pos]
	r.pos++
	return b, nil
}

// U32 reads a 32-bit unsigned integer in the reader's byte order.
func (r *Reader) U32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := r.Order.Uint32(r.Buf[r.pos : r.pos+4])
	r.pos += 4
	return v, nil
}

// F64 reads a 64-bit IEEE-754 double in the reader's byte order.
func (r *Reader) F64() (float64, error) {
	if err := r.need(8); err != nil {
		return 0, err
	}
	bits := r.Order.Uint64(r.Buf[r.pos : r.pos+8])
	r.pos += 8
	return math.Float64frombits(bits), nil
}

// Skip advances the read position by n bytes without interpreting them.
func (r *Reader) Skip(n int) error {
	if err := r.need(n); err != nil {
		return err
	}
	r.pos += n
	return nil
}

// Slice returns the n raw bytes at the current position without advancing.
func (r *Reader) Slice(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	return r.Buf[r.pos : r.pos+n], nil
}

// ReadF64At decodes a double at an absolute offset, independent of the
// reader's own cursor. Used by views that compute element offsets directly.
func ReadF64At(buf []byte, offset int, order binary.ByteOrder) float64 {
	return math.Float64frombits(order.Uint64(buf[offset : offset+8]))
}

// ReadU32At decodes a u32 at an absolute offset.
func ReadU32At(buf []byte, offset int, order binary.ByteOrder) uint32 {
	return order.Uint32(buf[offset : offset+4])
}

// WriteF64At patches a double at an absolute offset in place.
func WriteF64At(buf []byte, offset int, v float64, order binary.ByteOrder) {
	order.PutUint64(buf[offset:offset+8], math.Float64bits(v))
}

// WriteU32At patches a u32 at an absolute offset in place.
func WriteU32At(buf []byte, offset int, v uint32, order binary.ByteOrder) {
	order.PutUint32(buf[offset:offset+4], v)
}

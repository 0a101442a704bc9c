package wire

import (
	"encoding/binary"
	"math"
)

// Writer is a growable byte buffer with the "reserve a placeholder, patch it
// later" primitive the WKT encoder needs: it writes a zero u32 count before
// its elements are known, records Position(), parses the elements, then
// calls PatchU32At once the true count is known.
type Writer struct {
	Buf   []byte
	Order binary.ByteOrder
}

// NewWriter returns an empty writer using the given byte order.
func NewWriter(order binary.ByteOrder) *Writer {
	return &Writer{Order: order}
}

// Position returns the number of bytes written so far.
func (w *Writer) Position() int { return len(w.Buf) }

// WriteU8 appends a single byte.
func (w *Writer) WriteU8(v byte) {
	w.Buf = append(w.Buf, v)
}

// WriteU32 appends a u32 in the writer's byte order.
func (w *Writer) WriteU32(v uint32) {
	var tmp [4]byte
	w.Order.PutUint32(tmp[:], v)
	w.Buf = append(w.Buf, tmp[:]...)
}

// WriteF64 appends an IEEE-754 double in the writer's byte order.
func (w *Writer) WriteF64(v float64) {
	var tmp [8]byte
	w.Order.PutUint64(tmp[:], math.Float64bits(v))
	w.Buf = append(w.Buf, tmp[:]...)
}

// PatchU32At overwrites the u32 at pos, which must have been reserved with a
// prior WriteU32 call at that position.
func (w *Writer) PatchU32At(pos int, v uint32) {
	w.Order.PutUint32(w.Buf[pos:pos+4], v)
}

// Bytes returns the accumulated buffer.
func (w *Writer) Bytes() []byte { return w.Buf }

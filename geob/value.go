package geob

import (
	"encoding/binary"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/beetlebugorg/geob/geoberr"
	"github.com/beetlebugorg/geob/internal/wire"
)

// buffer is a reference-counted immutable byte slice shared by every clone
// of a Value. Clone increments the refcount, and makeUnique decrements it
// when it moves a handle onto a private copy; Go has no deterministic
// destructor to decrement it when a clone is dropped, so makeUnique treats
// "refs > 1" as a conservative signal and copies whenever it sees it. That
// costs an extra allocation when a clone was dropped without being
// mutated, but keeps "a shared buffer is never mutated" correct without
// manual release calls, which would be unidiomatic in a garbage-collected
// runtime.
type buffer struct {
	b    []byte
	refs int32
}

func newBuffer(b []byte) *buffer {
	return &buffer{b: b, refs: 1}
}

func (buf *buffer) retain() *buffer {
	atomic.AddInt32(&buf.refs, 1)
	return buf
}

// Value is the owning, shared-ownership handle over an encoded geometry
// blob: [endian:1][srid:u32][geometry]. Cloning a Value is cheap and shares
// the underlying bytes; SetSRID and ProjectInto make the buffer uniquely
// owned before mutating it.
type Value struct {
	buf *buffer
}

// Clone returns a new handle sharing the same underlying bytes.
func (v Value) Clone() Value {
	return Value{buf: v.buf.retain()}
}

func (v *Value) makeUnique() {
	if atomic.LoadInt32(&v.buf.refs) == 1 {
		return
	}
	cp := make([]byte, len(v.buf.b))
	copy(cp, v.buf.b)
	atomic.AddInt32(&v.buf.refs, -1)
	v.buf = newBuffer(cp)
}

// FromBytes validates b and adopts a private copy of it as a new Value.
func FromBytes(b []byte) (Value, error) {
	if err := validate(b); err != nil {
		return Value{}, errors.Wrap(err, "geob: decode blob")
	}
	cp := make([]byte, len(b))
	copy(cp, b)
	return Value{buf: newBuffer(cp)}, nil
}

// NewPoint constructs a minimal Point blob for (x, y) under srid, encoded
// little-endian.
func NewPoint(srid uint32, x, y float64) Value {
	w := wire.NewWriter(binary.LittleEndian)
	w.WriteU8(1) // little-endian marker
	w.WriteU32(srid)
	w.WriteU8(byte(KindPoint))
	w.WriteF64(x)
	w.WriteF64(y)
	return Value{buf: newBuffer(w.Bytes())}
}

// newPolygonValue builds a single-ring Polygon blob (no holes) from a
// closed ring of (x, y) pairs, encoded little-endian.
func newPolygonValue(srid uint32, ring [][2]float64) Value {
	w := wire.NewWriter(binary.LittleEndian)
	w.WriteU8(1)
	w.WriteU32(srid)
	w.WriteU8(byte(KindPolygon))
	w.WriteU32(1) // one ring
	w.WriteU32(uint32(len(ring)))
	for _, c := range ring {
		w.WriteF64(c[0])
		w.WriteF64(c[1])
	}
	return Value{buf: newBuffer(w.Bytes())}
}

// Bytes returns the blob's bytes. Callers must not mutate the returned
// slice — it may be shared with other Values.
func (v Value) Bytes() []byte {
	if v.buf == nil {
		return nil
	}
	return v.buf.b
}

// Order returns the byte order declared by the blob's leading byte.
func (v Value) Order() binary.ByteOrder {
	order, _ := endianFromByte(v.buf.b[0])
	return order
}

// SRID returns the blob's 32-bit spatial reference identifier.
func (v Value) SRID() uint32 {
	return wire.ReadU32At(v.buf.b, 1, v.Order())
}

// SetSRID patches the SRID field in place, making the buffer uniquely
// owned first so other Values sharing the old buffer are unaffected.
func (v *Value) SetSRID(srid uint32) {
	v.makeUnique()
	wire.WriteU32At(v.buf.b, 1, srid, v.Order())
}

// Kind returns the geometry's type byte.
func (v Value) Kind() Kind {
	return Kind(v.buf.b[5])
}

// Geometry returns a zero-copy view over the blob's geometry body.
func (v Value) Geometry() (GeometryView, error) {
	view, _, err := parseGeometryView(v.buf.b, 5, v.Order())
	return view, err
}

// Equal reports whether v and o have the same SRID and structurally equal
// geometry, comparing decoded coordinate values rather than raw bytes.
func (v Value) Equal(o Value) bool {
	if v.SRID() != o.SRID() {
		return false
	}
	a, err := v.Geometry()
	if err != nil {
		return false
	}
	b, err := o.Geometry()
	if err != nil {
		return false
	}
	return a.Equal(b)
}

// String returns the WKT-with-SRID text form, e.g. "SRID=4326;POINT(1 2)".
func (v Value) String() string {
	return Decode(v)
}

// CheckKind returns a DomainError if v's Kind doesn't match want. Scalar
// functions that only accept one geometry kind (e.g. ST_Distance on points)
// use this so a kind mismatch fails loudly instead of silently falling back.
func (v Value) CheckKind(want Kind) error {
	if v.Kind() != want {
		return geoberr.NewDomainError("expected %s, got %s", want, v.Kind())
	}
	return nil
}

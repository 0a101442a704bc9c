package wire

import (
	"encoding/binary"
	"testing"
)

func TestWriterReaderRoundTrip(t *testing.T) {
	w := NewWriter(binary.LittleEndian)
	w.WriteU8(7)
	w.WriteU32(42)
	w.WriteF64(3.5)

	r := NewReader(w.Bytes(), binary.LittleEndian)
	b, err := r.U8()
	if err != nil || b != 7 {
		t.Fatalf("U8() = (%d, %v), want (7, nil)", b, err)
	}
	n, err := r.U32()
	if err != nil || n != 42 {
		t.Fatalf("U32() = (%d, %v), want (42, nil)", n, err)
	}
	f, err := r.F64()
	if err != nil || f != 3.5 {
		t.Fatalf("F64() = (%v, %v), want (3.5, nil)", f, err)
	}
	if r.Remaining() != 0 {
		t.Fatalf("Remaining() = %d, want 0", r.Remaining())
	}
}

func TestReaderTruncatedReturnsError(t *testing.T) {
	r := NewReader([]byte{1, 2}, binary.LittleEndian)
	if _, err := r.U32(); err == nil {
		t.Fatal("U32() on a 2-byte buffer did not error")
	}
}

func TestPatchU32AtOverwritesReservedSlot(t *testing.T) {
	w := NewWriter(binary.LittleEndian)
	pos := w.Position()
	w.WriteU32(0)
	w.WriteF64(1.0)
	w.PatchU32At(pos, 99)

	r := NewReader(w.Bytes(), binary.LittleEndian)
	n, err := r.U32()
	if err != nil || n != 99 {
		t.Fatalf("U32() after patch = (%d, %v), want (99, nil)", n, err)
	}
}

func TestReadWriteAtAbsoluteOffset(t *testing.T) {
	buf := make([]byte, 16)
	WriteU32At(buf, 0, 7, binary.BigEndian)
	WriteF64At(buf, 4, 2.25, binary.BigEndian)

	if got := ReadU32At(buf, 0, binary.BigEndian); got != 7 {
		t.Fatalf("ReadU32At() = %d, want 7", got)
	}
	if got := ReadF64At(buf, 4, binary.BigEndian); got != 2.25 {
		t.Fatalf("ReadF64At() = %v, want 2.25", got)
	}
}

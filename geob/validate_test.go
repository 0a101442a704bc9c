package geob

import "testing"

func TestValidateAcceptsWellFormedBlobs(t *testing.T) {
	cases := map[string]Value{
		"point":        NewPoint(4326, 1, 2),
		"polygon":      mustFromText(t, "SRID=0;POLYGON((0 0, 1 0, 1 1, 0 0))"),
		"multipolygon": mustFromText(t, "SRID=0;MULTIPOLYGON(((0 0, 1 0, 1 1, 0 0)))"),
		"collection":   mustFromText(t, "SRID=0;GEOMETRYCOLLECTION(POINT(1 2))"),
	}
	for name, v := range cases {
		t.Run(name, func(t *testing.T) {
			if !Validate(v.Bytes()) {
				t.Fatalf("Validate() = false for a well-formed %s blob", name)
			}
		})
	}
}

func TestValidateNeverPanics(t *testing.T) {
	inputs := [][]byte{
		nil,
		{},
		{0},
		{1, 0, 0, 0, 0},
		{1, 0, 0, 0, 0, 255},
		{1, 0, 0, 0, 0, 1, 0xFF, 0xFF, 0xFF, 0xFF},
		{2, 0, 0, 0, 0, 1},
	}
	for i, b := range inputs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Fatalf("Validate(inputs[%d]) panicked: %v", i, r)
				}
			}()
			Validate(b)
		}()
	}
}

func TestValidateRejectsBadEndianByte(t *testing.T) {
	b := NewPoint(4326, 1, 2).Bytes()
	b[0] = 2
	if Validate(b) {
		t.Fatal("Validate() accepted an invalid endian byte")
	}
}

func TestValidateRejectsBadTypeByte(t *testing.T) {
	b := NewPoint(4326, 1, 2).Bytes()
	b[5] = 0
	if Validate(b) {
		t.Fatal("Validate() accepted an out-of-range type byte")
	}
}

func TestValidateRejectsDeeplyNestedCollection(t *testing.T) {
	// Build a GeometryCollection nested beyond maxCollectionDepth by
	// repeatedly wrapping a point in single-child collections.
	text := "POINT(1 2)"
	for i := 0; i < maxCollectionDepth+2; i++ {
		text = "GEOMETRYCOLLECTION(" + text + ")"
	}
	v, err := FromText("SRID=0;" + text)
	if err == nil {
		if Validate(v.Bytes()) {
			t.Fatal("Validate() accepted a collection nested beyond the depth bound")
		}
	}
}

func mustFromText(t *testing.T, s string) Value {
	t.Helper()
	v, err := FromText(s)
	if err != nil {
		t.Fatalf("FromText(%q) error = %v", s, err)
	}
	return v
}

package sqlgeob

import "testing"

func TestPlanarWithinContainsIntersects(t *testing.T) {
	outer := geomOf(t, "SRID=0;POLYGON((0 0, 10 0, 10 10, 0 10, 0 0))")
	inner := geomOf(t, "SRID=0;POLYGON((2 2, 4 2, 4 4, 2 4, 2 2))")
	disjoint := geomOf(t, "SRID=0;POLYGON((20 20, 21 20, 21 21, 20 21, 20 20))")
	overlapping := geomOf(t, "SRID=0;POLYGON((5 5, 15 5, 15 15, 5 15, 5 5))")

	if ok, valid := planarWithin(inner, outer); !valid || !ok {
		t.Fatalf("inner should be within outer's envelope: ok=%v valid=%v", ok, valid)
	}
	if ok, valid := planarContains(outer, inner); !valid || !ok {
		t.Fatalf("outer should contain inner's envelope: ok=%v valid=%v", ok, valid)
	}
	if ok, valid := planarWithin(disjoint, outer); !valid || ok {
		t.Fatalf("disjoint should not be within outer's envelope: ok=%v valid=%v", ok, valid)
	}
	if ok, valid := planarIntersects(outer, overlapping); !valid || !ok {
		t.Fatalf("overlapping envelopes should intersect: ok=%v valid=%v", ok, valid)
	}
	if ok, valid := planarIntersects(outer, disjoint); !valid || ok {
		t.Fatalf("disjoint envelopes should not intersect: ok=%v valid=%v", ok, valid)
	}
}

func TestPlanarContainsIsWithinReversed(t *testing.T) {
	a := geomOf(t, "SRID=0;POINT(1 1)")
	b := geomOf(t, "SRID=0;POINT(1 1)")
	okWithin, validWithin := planarWithin(a, b)
	okContains, validContains := planarContains(b, a)
	if okWithin != okContains || validWithin != validContains {
		t.Fatalf("planarContains(b, a) should mirror planarWithin(a, b): (%v,%v) vs (%v,%v)",
			okContains, validContains, okWithin, validWithin)
	}
}

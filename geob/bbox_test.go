package geob

import "testing"

func TestBoxContainsAndIntersects(t *testing.T) {
	outer := Box{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}
	inner := Box{MinX: 2, MinY: 2, MaxX: 4, MaxY: 4}
	disjoint := Box{MinX: 20, MinY: 20, MaxX: 30, MaxY: 30}

	if !outer.Contains(inner) {
		t.Fatal("outer.Contains(inner) = false, want true")
	}
	if inner.Contains(outer) {
		t.Fatal("inner.Contains(outer) = true, want false")
	}
	if !outer.Intersects(inner) {
		t.Fatal("outer.Intersects(inner) = false, want true")
	}
	if outer.Intersects(disjoint) {
		t.Fatal("outer.Intersects(disjoint) = true, want false")
	}
}

func TestEnvelopeOfPolygon(t *testing.T) {
	v, err := FromText("SRID=4326;POLYGON((0 0, 4 0, 4 4, 0 4, 0 0))")
	if err != nil {
		t.Fatalf("FromText() error = %v", err)
	}
	env, ok := v.Envelope()
	if !ok {
		t.Fatal("Envelope() ok = false")
	}
	if env.SRID() != 4326 {
		t.Fatalf("Envelope SRID() = %d, want 4326", env.SRID())
	}
	g, err := env.Geometry()
	if err != nil {
		t.Fatalf("Geometry() error = %v", err)
	}
	box, ok := BoundingBox(g)
	if !ok {
		t.Fatal("BoundingBox() of the envelope ok = false")
	}
	if box.MinX != 0 || box.MinY != 0 || box.MaxX != 4 || box.MaxY != 4 {
		t.Fatalf("envelope box = %+v, want (0,0,4,4)", box)
	}
}

func TestBoundingBoxOfEmptyPolygon(t *testing.T) {
	v, err := FromText("SRID=0;POLYGON()")
	if err != nil {
		t.Fatalf("FromText() error = %v", err)
	}
	g, err := v.Geometry()
	if err != nil {
		t.Fatalf("Geometry() error = %v", err)
	}
	if _, ok := BoundingBox(g); ok {
		t.Fatal("BoundingBox() of an empty polygon ok = true, want false")
	}
}

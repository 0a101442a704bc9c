package geob

import "testing"

func TestFromTextPoint(t *testing.T) {
	v, err := FromText("SRID=4326;POINT(12.5 55.7)")
	if err != nil {
		t.Fatalf("FromText() error = %v", err)
	}
	if v.SRID() != 4326 {
		t.Fatalf("SRID() = %d, want 4326", v.SRID())
	}
	if v.Kind() != KindPoint {
		t.Fatalf("Kind() = %v, want KindPoint", v.Kind())
	}
	g, err := v.Geometry()
	if err != nil {
		t.Fatalf("Geometry() error = %v", err)
	}
	p, _ := g.AsPoint()
	if p.X() != 12.5 || p.Y() != 55.7 {
		t.Fatalf("point = (%v, %v), want (12.5, 55.7)", p.X(), p.Y())
	}
}

func TestPolygonRoundTripsToSameText(t *testing.T) {
	const text = "SRID=0;POLYGON((0 0, 4 0, 4 4, 0 4, 0 0))"
	v, err := FromText(text)
	if err != nil {
		t.Fatalf("FromText() error = %v", err)
	}
	if got := v.String(); got != text {
		t.Fatalf("round trip = %q, want %q", got, text)
	}
}

func TestMultiPolygonLengths(t *testing.T) {
	const text = "SRID=0;MULTIPOLYGON(((0 0, 4 0, 4 4, 0 4, 0 0)), ((0 0, 3 0, 0 3, 0 0)))"
	v, err := FromText(text)
	if err != nil {
		t.Fatalf("FromText() error = %v", err)
	}
	g, err := v.Geometry()
	if err != nil {
		t.Fatalf("Geometry() error = %v", err)
	}
	m, ok := g.AsMultiPolygon()
	if !ok {
		t.Fatal("AsMultiPolygon() ok = false")
	}
	if m.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", m.Len())
	}
	second, err := m.Polygon(1)
	if err != nil {
		t.Fatalf("Polygon(1) error = %v", err)
	}
	ring, err := second.Ring(0)
	if err != nil {
		t.Fatalf("Ring(0) error = %v", err)
	}
	if ring.Len() != 3 {
		t.Fatalf("ring Len() = %d, want 3", ring.Len())
	}
}

func TestFromTextRejectsGarbage(t *testing.T) {
	cases := []string{
		"",
		"POINT(1 2)",           // missing SRID
		"SRID=4326;POINT(1 2",  // missing close paren
		"SRID=4326;BOGUS(1 2)", // unknown keyword
	}
	for _, c := range cases {
		t.Run(c, func(t *testing.T) {
			if _, err := FromText(c); err == nil {
				t.Fatalf("FromText(%q) did not error", c)
			}
		})
	}
}

func TestLineStringRoundTrip(t *testing.T) {
	const text = "SRID=4326;LINESTRING(0 0, 1 1, 2 2)"
	v, err := FromText(text)
	if err != nil {
		t.Fatalf("FromText() error = %v", err)
	}
	if got := v.String(); got != text {
		t.Fatalf("round trip = %q, want %q", got, text)
	}
}

func TestGeometryCollectionRoundTrip(t *testing.T) {
	const text = "SRID=4326;GEOMETRYCOLLECTION(POINT(1 2), LINESTRING(0 0, 1 1))"
	v, err := FromText(text)
	if err != nil {
		t.Fatalf("FromText() error = %v", err)
	}
	g, err := v.Geometry()
	if err != nil {
		t.Fatalf("Geometry() error = %v", err)
	}
	c, ok := g.AsCollection()
	if !ok {
		t.Fatal("AsCollection() ok = false")
	}
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	if got := v.String(); got != text {
		t.Fatalf("round trip = %q, want %q", got, text)
	}
}

package geob

import "testing"

func TestCentroidOfPolygon(t *testing.T) {
	v, err := FromText("SRID=4326;POLYGON((0 0, 4 0, 4 4, 0 4, 0 0))")
	if err != nil {
		t.Fatalf("FromText() error = %v", err)
	}
	c, ok := v.Centroid()
	if !ok {
		t.Fatal("Centroid() ok = false")
	}
	if c.SRID() != 4326 {
		t.Fatalf("Centroid SRID() = %d, want 4326", c.SRID())
	}
	g, err := c.Geometry()
	if err != nil {
		t.Fatalf("Geometry() error = %v", err)
	}
	p, _ := g.AsPoint()
	wantX, wantY := 2.0, 2.0
	if p.X() != wantX || p.Y() != wantY {
		t.Fatalf("centroid = (%v, %v), want (%v, %v)", p.X(), p.Y(), wantX, wantY)
	}
}

func TestCentroidOfPolygonWithHole(t *testing.T) {
	v, err := FromText("SRID=0;POLYGON((0 0, 10 0, 10 10, 0 10, 0 0), (4 4, 4 6, 6 6, 6 4, 4 4))")
	if err != nil {
		t.Fatalf("FromText() error = %v", err)
	}
	c, ok := v.Centroid()
	if !ok {
		t.Fatal("Centroid() ok = false")
	}
	g, err := c.Geometry()
	if err != nil {
		t.Fatalf("Geometry() error = %v", err)
	}
	p, _ := g.AsPoint()
	// A centered hole doesn't move the centroid of a centered square.
	if p.X() != 5 || p.Y() != 5 {
		t.Fatalf("centroid = (%v, %v), want (5, 5)", p.X(), p.Y())
	}
}

func TestCentroidOfLineStringIsLengthWeighted(t *testing.T) {
	// A long segment from (0,0)-(10,0) and a short one from (10,0)-(10,1):
	// the centroid should sit close to the long segment's midpoint (5, 0),
	// not the plain vertex average (6.67, 0.33).
	v, err := FromText("SRID=0;LINESTRING(0 0, 10 0, 10 1)")
	if err != nil {
		t.Fatalf("FromText() error = %v", err)
	}
	c, ok := v.Centroid()
	if !ok {
		t.Fatal("Centroid() ok = false")
	}
	g, _ := c.Geometry()
	p, _ := g.AsPoint()
	// weighted sum: (5,0)*10 + (10,0.5)*1, divided by total length 11.
	wantX, wantY := 60.0/11, 0.5/11
	if diff := p.X() - wantX; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("centroid.X = %v, want %v", p.X(), wantX)
	}
	if diff := p.Y() - wantY; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("centroid.Y = %v, want %v", p.Y(), wantY)
	}
}

func TestCentroidOfEmptyGeometryCollectionFails(t *testing.T) {
	v, err := FromText("SRID=0;GEOMETRYCOLLECTION()")
	if err != nil {
		t.Fatalf("FromText() error = %v", err)
	}
	if _, ok := v.Centroid(); ok {
		t.Fatal("Centroid() of an empty collection ok = true, want false")
	}
}

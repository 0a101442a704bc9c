package index

import (
	"testing"

	"github.com/beetlebugorg/geob/geob"
)

func mustValue(t *testing.T, wkt string) geob.Value {
	t.Helper()
	v, err := geob.FromText(wkt)
	if err != nil {
		t.Fatalf("FromText(%q): %v", wkt, err)
	}
	return v
}

func TestTreePointInsertAndEnvelopeSearch(t *testing.T) {
	tree := NewTree(geob.KindPoint, false)
	if !tree.IsPoint() {
		t.Fatal("expected IsPoint true for type=point")
	}
	if err := tree.Insert(1, mustValue(t, "SRID=4326;POINT(10 10)")); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := tree.Insert(2, mustValue(t, "SRID=4326;POINT(100 100)")); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if tree.Len() != 2 {
		t.Fatalf("Len = %d, want 2", tree.Len())
	}

	hits := tree.LocateInEnvelope(geob.Box{MinX: 0, MinY: 0, MaxX: 20, MaxY: 20})
	if len(hits) != 1 || hits[0].RowID() != 1 {
		t.Fatalf("envelope search = %v, want rowid 1 only", hits)
	}
}

func TestTreePointRejectsNonPointKind(t *testing.T) {
	tree := NewTree(geob.KindPoint, false)
	err := tree.Insert(1, mustValue(t, "SRID=0;LINESTRING(0 0, 1 1)"))
	if err == nil {
		t.Fatal("expected a kind error inserting a LineString into a point-typed tree")
	}
}

func TestTreeTypedVariantValidatesKind(t *testing.T) {
	tree := NewTree(geob.KindPolygon, false)
	ls := mustValue(t, "SRID=0;LINESTRING(0 0, 1 1)")
	if err := tree.Insert(1, ls); err == nil {
		t.Fatal("expected error inserting a LineString into a polygon-typed tree")
	}
	poly := mustValue(t, "SRID=0;POLYGON((0 0, 4 0, 4 4, 0 4, 0 0))")
	if err := tree.Insert(1, poly); err != nil {
		t.Fatalf("Insert polygon into polygon-typed tree: %v", err)
	}
	if tree.IsPoint() {
		t.Fatal("a polygon-typed tree must not report IsPoint")
	}
}

func TestTreeAnyAcceptsEveryKind(t *testing.T) {
	tree := NewTree(0, true)
	if err := tree.Insert(1, mustValue(t, "SRID=0;POINT(1 1)")); err != nil {
		t.Fatalf("Insert point: %v", err)
	}
	if err := tree.Insert(2, mustValue(t, "SRID=0;LINESTRING(0 0, 1 1)")); err != nil {
		t.Fatalf("Insert linestring: %v", err)
	}
	if tree.Len() != 2 {
		t.Fatalf("Len = %d, want 2", tree.Len())
	}
}

func TestTreeRemoveAndUpdate(t *testing.T) {
	tree := NewTree(geob.KindPoint, false)
	_ = tree.Insert(1, mustValue(t, "SRID=0;POINT(0 0)"))
	tree.Remove(1)
	if tree.Len() != 0 {
		t.Fatalf("Len = %d after Remove, want 0", tree.Len())
	}

	_ = tree.Insert(1, mustValue(t, "SRID=0;POINT(0 0)"))
	if err := tree.Update(1, 2, mustValue(t, "SRID=0;POINT(5 5)")); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if tree.Len() != 1 {
		t.Fatalf("Len = %d after Update, want 1", tree.Len())
	}
	all := tree.All()
	if len(all) != 1 || all[0].RowID() != 2 {
		t.Fatalf("All() = %v, want single rowid 2", all)
	}
}

func TestTreeLocateWithinDistance(t *testing.T) {
	tree := NewTree(geob.KindPoint, false)
	_ = tree.Insert(1, mustValue(t, "SRID=4326;POINT(12.568 55.676)")) // Copenhagen
	_ = tree.Insert(2, mustValue(t, "SRID=4326;POINT(2.349 48.853)"))  // Paris

	near := tree.LocateWithinDistance(12.568, 55.676, 1000)
	if len(near) != 1 || near[0].RowID() != 1 {
		t.Fatalf("LocateWithinDistance(1km) = %v, want rowid 1 only", near)
	}

	far := tree.LocateWithinDistance(12.568, 55.676, 2_000_000_000)
	if len(far) != 2 {
		t.Fatalf("LocateWithinDistance(huge radius) = %v, want both rows", far)
	}
}

func TestTreeNearestNeighbors(t *testing.T) {
	tree := NewTree(geob.KindPoint, false)
	_ = tree.Insert(1, mustValue(t, "SRID=0;POINT(0 0)"))
	_ = tree.Insert(2, mustValue(t, "SRID=0;POINT(10 10)"))
	_ = tree.Insert(3, mustValue(t, "SRID=0;POINT(1 1)"))

	nn := tree.NearestNeighbors(2, 0, 0)
	if len(nn) != 2 {
		t.Fatalf("NearestNeighbors = %v, want 2 entries", nn)
	}
	if nn[0].RowID() != 1 {
		t.Fatalf("nearest entry rowid = %d, want 1", nn[0].RowID())
	}
}

package sqlgeob

import (
	"strings"
	"testing"
)

func TestAddColumnTriggerSQLRendersPlaceholders(t *testing.T) {
	sql, err := addColumnTriggerSQL("places", "geom", 4326)
	if err != nil {
		t.Fatalf("addColumnTriggerSQL: %v", err)
	}
	for _, want := range []string{
		"places_geom_geob_trigger_insert",
		"places_geom_geob_trigger_update",
		"AFTER INSERT ON places",
		"AFTER UPDATE OF geom ON places",
		"ST_GetSRID(NEW.geom) != 4326",
	} {
		if !strings.Contains(sql, want) {
			t.Fatalf("rendered SQL missing %q:\n%s", want, sql)
		}
	}
}

func TestAddColumnTriggerSQLDifferentSRIDsDiffer(t *testing.T) {
	a, err := addColumnTriggerSQL("t", "c", 4326)
	if err != nil {
		t.Fatalf("addColumnTriggerSQL: %v", err)
	}
	b, err := addColumnTriggerSQL("t", "c", 3857)
	if err != nil {
		t.Fatalf("addColumnTriggerSQL: %v", err)
	}
	if a == b {
		t.Fatal("rendering with a different srid should change the generated SQL")
	}
}

package index

import (
	"strings"

	"github.com/google/uuid"

	"github.com/beetlebugorg/geob/internal/ddltmpl"
)

// shadowTriggerTemplate forwards INSERT/UPDATE/DELETE on the host table's
// indexed column into this virtual table, keeping the R*-tree in sync with
// the table it shadows. The trigger name embedded via ${name} is unique per
// CREATE VIRTUAL TABLE invocation (see shadowTriggerSQL), so re-creating an
// index over the same table+column never collides with a lingering trigger
// from a prior one.
const shadowTriggerTemplate = `
CREATE TRIGGER IF NOT EXISTS ${name}_ai
AFTER INSERT ON ${table}
BEGIN
	INSERT INTO ${vtab}(id, geometry) VALUES (NEW.rowid, NEW.${column});
END;

CREATE TRIGGER IF NOT EXISTS ${name}_au
AFTER UPDATE ON ${table}
BEGIN
	UPDATE ${vtab} SET geometry = NEW.${column} WHERE id = OLD.rowid;
END;

CREATE TRIGGER IF NOT EXISTS ${name}_ad
AFTER DELETE ON ${table}
BEGIN
	DELETE FROM ${vtab} WHERE id = OLD.rowid;
END;
`

// shadowTriggerSQL renders the trigger DDL wired at CREATE VIRTUAL TABLE
// time, naming the trigger set "{table}_{column}_geob_trigger",
// disambiguated with a short uuid suffix so a second index created over
// the same table+column (e.g. after DROP then re-CREATE with a different
// srid) never collides with a trigger a stale connection still has
// registered.
func shadowTriggerSQL(table, column, vtabName string) (string, error) {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	name := table + "_" + column + "_geob_trigger_" + suffix
	lookup := ddltmpl.MapLookup{
		"name":   name,
		"table":  table,
		"column": column,
		"vtab":   vtabName,
	}
	return ddltmpl.Render(shadowTriggerTemplate, lookup)
}

package sqlgeob

import (
	"strconv"

	"github.com/beetlebugorg/geob/internal/ddltmpl"
)

// columnTriggerTemplate is the validation-trigger DDL ST_AddColumn renders:
// two AFTER triggers that abort the write if the column holds a geob blob
// whose SRID doesn't match the one ST_AddColumn was called with.
const columnTriggerTemplate = `
CREATE TRIGGER IF NOT EXISTS ${name}_insert
AFTER INSERT ON ${table}
FOR EACH ROW WHEN NEW.${column} IS NOT NULL
BEGIN
	SELECT RAISE(ABORT, 'geob: SRID mismatch on ${table}.${column}')
	WHERE ST_GetSRID(NEW.${column}) != ${srid};
END;

CREATE TRIGGER IF NOT EXISTS ${name}_update
AFTER UPDATE OF ${column} ON ${table}
FOR EACH ROW WHEN NEW.${column} IS NOT NULL
BEGIN
	SELECT RAISE(ABORT, 'geob: SRID mismatch on ${table}.${column}')
	WHERE ST_GetSRID(NEW.${column}) != ${srid};
END;
`

// addColumnTriggerSQL renders the validation-trigger DDL for ST_AddColumn,
// naming the trigger set "{table}_{column}_geob_trigger".
func addColumnTriggerSQL(table, column string, srid uint32) (string, error) {
	lookup := ddltmpl.MapLookup{
		"name":   table + "_" + column + "_geob_trigger",
		"table":  table,
		"column": column,
		"srid":   strconv.FormatUint(uint64(srid), 10),
	}
	return ddltmpl.Render(columnTriggerTemplate, lookup)
}

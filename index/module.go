package index

import (
	"database/sql/driver"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-sqlite3"

	"github.com/beetlebugorg/geob/geob"
	"github.com/beetlebugorg/geob/geoberr"
)

// ModuleName is the SQL virtual-table module name. The spelling
// "SpartialIndex" is intentional, not a typo to be fixed: it is part of
// the surface callers write USING SpartialIndex(...) against.
const ModuleName = "SpartialIndex"

// Module implements sqlite3.Module, creating a SpartialIndex virtual table
// over USING SpartialIndex(table=T, column=C, srid=N, type=K [, index=…]).
type Module struct{}

// Register installs the module against conn under ModuleName.
func Register(conn *sqlite3.SQLiteConn) error {
	return conn.RegisterModule(ModuleName, Module{})
}

func (Module) Create(c *sqlite3.SQLiteConn, args []string) (sqlite3.VTab, error) {
	return create(c, args, true)
}

func (Module) Connect(c *sqlite3.SQLiteConn, args []string) (sqlite3.VTab, error) {
	return create(c, args, false)
}

func (Module) DestroyModule() {}

// params are the parsed USING SpartialIndex(...) creation options.
type params struct {
	vtabName string
	table    string
	column   string
	srid     uint32
	kind     geob.Kind
	isAny    bool // "type=geometry": accepts any kind, tree keys on envelope
	index    bool
}

// args[0:3] are the module name, database name, and table name sqlite
// passes automatically; the declared key=value pairs start at args[3].
func parseParams(args []string) (params, error) {
	if len(args) < 3 {
		return params{}, geoberr.NewConfigError("missing module/database/table name arguments")
	}
	p := params{index: true, vtabName: args[2]}
	seen := map[string]bool{}
	for _, raw := range args[3:] {
		eq := strings.IndexByte(raw, '=')
		if eq < 0 {
			return p, geoberr.NewConfigError("malformed option %q, want key=value", raw)
		}
		key := strings.TrimSpace(raw[:eq])
		val := strings.Trim(strings.TrimSpace(raw[eq+1:]), `'"`)
		switch key {
		case "table":
			p.table = val
		case "column":
			p.column = val
		case "srid":
			n, err := strconv.ParseUint(val, 10, 32)
			if err != nil {
				return p, geoberr.NewConfigError("bad srid %q: %v", val, err)
			}
			p.srid = uint32(n)
		case "type":
			if val == "geometry" {
				p.isAny = true
			} else {
				k, ok := geob.KindFromKeyword(val)
				if !ok {
					return p, geoberr.NewConfigError("unrecognized type %q", val)
				}
				p.kind = k
			}
		case "index":
			p.index = val == "true" || val == "1"
		default:
			return p, geoberr.NewConfigError("unrecognized option %q", key)
		}
		seen[key] = true
	}
	for _, req := range []string{"table", "column", "srid", "type"} {
		if !seen[req] {
			return p, geoberr.NewConfigError("missing required option %q", req)
		}
	}
	return p, nil
}

// VTab implements sqlite3.VTab and sqlite3.VTabUpdater over a Tree.
type VTab struct {
	conn   *sqlite3.SQLiteConn
	params params
	tree   *Tree
}

func create(c *sqlite3.SQLiteConn, args []string, bulkLoad bool) (sqlite3.VTab, error) {
	p, err := parseParams(args)
	if err != nil {
		return nil, err
	}

	const schema = `CREATE TABLE x(id INTEGER, geometry BLOB HIDDEN, distance DOUBLE HIDDEN)`
	if err := c.DeclareVTab(schema); err != nil {
		return nil, geoberr.NewExternalError(err, "declaring SpartialIndex schema")
	}

	vt := &VTab{conn: c, params: p, tree: NewTree(p.kind, p.isAny)}

	if p.index {
		triggerSQL, err := shadowTriggerSQL(p.table, p.column, p.vtabName)
		if err != nil {
			return nil, err
		}
		if _, err := c.Exec(triggerSQL, nil); err != nil {
			return nil, geoberr.NewExternalError(err, "creating shadow triggers on %s.%s", p.table, p.column)
		}
	}

	if bulkLoad {
		if err := vt.bulkLoad(); err != nil {
			return nil, err
		}
	}

	return vt, nil
}

// bulkLoad scans "SELECT rowid, C FROM T" and inserts every row into the
// tree, the Go stand-in for the R*-tree container's own bulk_load
// primitive (rtreego exposes no distinct bulk-load entry point; repeated
// Insert is the documented substitution — see DESIGN.md).
func (vt *VTab) bulkLoad() error {
	query := fmt.Sprintf("SELECT rowid, %s FROM %s", vt.params.column, vt.params.table)
	rows, err := vt.conn.Query(query, nil)
	if err != nil {
		return geoberr.NewExternalError(err, "bulk-loading %s.%s", vt.params.table, vt.params.column)
	}
	defer rows.Close()

	dest := make([]driver.Value, 2)
	for {
		if err := rows.Next(dest); err != nil {
			if err == io.EOF {
				break
			}
			return geoberr.NewExternalError(err, "scanning bulk-load row")
		}
		rowid, ok := dest[0].(int64)
		if !ok {
			continue
		}
		blob, ok := dest[1].([]byte)
		if !ok || blob == nil {
			continue
		}
		v, err := geob.FromBytes(blob)
		if err != nil {
			continue
		}
		_ = vt.tree.Insert(rowid, v)
	}
	return nil
}

func (vt *VTab) BestIndex(cst []sqlite3.InfoConstraint, ob []sqlite3.InfoOrderBy) (*sqlite3.IndexResult, error) {
	return bestIndex(vt.tree.IsPoint(), vt.tree.Len(), cst, ob)
}

func (vt *VTab) Disconnect() error { return nil }

func (vt *VTab) Destroy() error { return nil }

func (vt *VTab) Open() (sqlite3.VTabCursor, error) {
	return &Cursor{tree: vt.tree}, nil
}

// Insert implements sqlite3.VTabUpdater. vals[0] is always nil for a
// rowid-allocating insert; vals[1] holds the requested rowid (or nil),
// vals[2] the geometry column, vals[3] the ignored distance column.
func (vt *VTab) Insert(rowidHint interface{}, vals []interface{}) (int64, error) {
	rowid, blob, err := parseInsertArgs(rowidHint, vals)
	if err != nil {
		return 0, err
	}
	if blob == nil {
		return rowid, nil
	}
	v, err := geob.FromBytes(blob)
	if err != nil {
		return 0, err
	}
	if err := vt.tree.Insert(rowid, v); err != nil {
		return 0, err
	}
	return rowid, nil
}

func (vt *VTab) Update(oldRowid interface{}, vals []interface{}) error {
	oldID, err := toInt64(oldRowid)
	if err != nil {
		return err
	}
	newID, blob, err := parseInsertArgs(vals[0], vals)
	if err != nil {
		return err
	}
	if blob == nil {
		vt.tree.Remove(oldID)
		return nil
	}
	v, err := geob.FromBytes(blob)
	if err != nil {
		return err
	}
	return vt.tree.Update(oldID, newID, v)
}

func (vt *VTab) Delete(rowid interface{}) error {
	id, err := toInt64(rowid)
	if err != nil {
		return err
	}
	vt.tree.Remove(id)
	return nil
}

func parseInsertArgs(rowidHint interface{}, vals []interface{}) (int64, []byte, error) {
	var rowid int64
	if rowidHint != nil {
		id, err := toInt64(rowidHint)
		if err != nil {
			return 0, nil, err
		}
		rowid = id
	} else if len(vals) > 1 && vals[1] != nil {
		id, err := toInt64(vals[1])
		if err != nil {
			return 0, nil, err
		}
		rowid = id
	}
	var blob []byte
	if len(vals) > 2 {
		if b, ok := vals[2].([]byte); ok {
			blob = b
		}
	}
	return rowid, blob, nil
}

func toInt64(v interface{}) (int64, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case float64:
		return int64(n), nil
	default:
		return 0, geoberr.NewDomainError("expected rowid, got %T", v)
	}
}

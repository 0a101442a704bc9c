// Package geobext bundles the geob SQLite extension surface -- the scalar
// functions of package sqlgeob and the SpartialIndex virtual table module
// of package index -- behind a single import, mirroring the way
// other_examples/.../geopackage-repository.go registers a driver variant
// in an init() for a spatial sqlite3 extension.
//
// Importing geobext for side effects registers a "sqlite3_geob" driver
// with database/sql; opening a connection through it gets the whole geob
// surface without the caller wiring sqlgeob and index separately.
package geobext

import (
	"database/sql"

	"github.com/mattn/go-sqlite3"

	"github.com/beetlebugorg/geob/index"
	"github.com/beetlebugorg/geob/sqlgeob"
)

func init() {
	sql.Register("sqlite3_geob", &sqlite3.SQLiteDriver{
		ConnectHook: RegisterExtension,
	})
}

// RegisterExtension installs every geob scalar function and the
// SpartialIndex virtual table module on conn. It is the ConnectHook wired
// into the "sqlite3_geob" driver above, and is also exported directly for
// callers who manage their own sqlite3.SQLiteDriver and want to compose
// it with other ConnectHooks.
func RegisterExtension(conn *sqlite3.SQLiteConn) error {
	if err := sqlgeob.RegisterFunctions(conn); err != nil {
		return err
	}
	return index.Register(conn)
}

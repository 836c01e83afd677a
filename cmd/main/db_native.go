//go:build !cgo_sqlite

package main

import (
	"database/sql"

	_ "modernc.org/sqlite"
)

const driverName = "sqlite"

// defaultDSNParams enables WAL and a busy timeout. modernc.org/sqlite takes its
// pragmas in this form.
const defaultDSNParams = "_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"

func openDB(dataSource string) (*sql.DB, error) {
	return sql.Open(driverName, dataSource)
}

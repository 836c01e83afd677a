//go:build cgo_sqlite

package main

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

const driverName = "sqlite3"

// defaultDSNParams enables WAL and a busy timeout. mattn/go-sqlite3 takes its
// pragmas in this form.
const defaultDSNParams = "_journal_mode=WAL&_busy_timeout=5000"

func openDB(dataSource string) (*sql.DB, error) {
	return sql.Open(driverName, dataSource)
}

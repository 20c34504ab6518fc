// Package store persists uploaded originals and the device registry in
// sqlite. The rendering core never touches this package; it is handed
// decoded bytes and options by the HTTP layer.
package store

import (
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

//go:embed schema.sql
var schema string

// Open connects to the database file and applies the schema.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", "file:"+path)
	if err != nil {
		return nil, fmt.Errorf("Couldn't open database:\n%w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("Couldn't initialise database:\n%w", err)
	}
	return db, nil
}

// transact runs fn inside a transaction, rolling back on error.
func transact(db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("Couldn't begin transaction:\n%w", err)
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

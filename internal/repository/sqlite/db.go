// Package sqlite is the durable appointment backend: the same repository
// contract as localstore, over a local SQLite file. No server process, same
// single-writer deployment.
package sqlite

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS appointments (
	seq        INTEGER PRIMARY KEY AUTOINCREMENT,
	id         TEXT NOT NULL UNIQUE,
	patient_id TEXT NOT NULL,
	doctor_id  TEXT NOT NULL,
	date       TEXT NOT NULL,
	time       TEXT NOT NULL,
	duration   INTEGER NOT NULL,
	type       TEXT NOT NULL,
	notes      TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL,
	updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_appointments_date ON appointments(date);
`

// NewDB opens (and if needed creates) the database at path. ":memory:" works
// for tests. Note the deliberate absence of any uniqueness constraint on
// (doctor_id, date, time): double-booking is allowed.
func NewDB(path string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// modernc.org/sqlite serializes access itself; one connection avoids
	// SQLITE_BUSY on concurrent writes.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	return db, nil
}

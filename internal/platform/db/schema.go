package db

import (
	"context"
	"strings"
)

// schemaDDL creates the four clinic tables. Identifiers are store-assigned
// integer rowids; dates are ISO-8601 "YYYY-MM-DD" strings and times 24-hour
// "HH:MM" strings, stored as TEXT. appointment_id on billing is nullable: a
// billing does not have to be tied to a visit.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS patients (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    dob TEXT NOT NULL,
    gender TEXT,
    contact_info TEXT,
    address TEXT
);

CREATE TABLE IF NOT EXISTS doctors (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    specialty TEXT,
    contact_info TEXT
);

CREATE TABLE IF NOT EXISTS appointments (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    patient_id INTEGER NOT NULL,
    doctor_id INTEGER NOT NULL,
    date TEXT NOT NULL,
    time TEXT NOT NULL,
    reason TEXT,
    status TEXT NOT NULL DEFAULT 'Scheduled'
);

CREATE TABLE IF NOT EXISTS billing (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    patient_id INTEGER NOT NULL,
    appointment_id INTEGER,
    amount REAL NOT NULL,
    date TEXT NOT NULL,
    status TEXT NOT NULL DEFAULT 'Unpaid',
    services_rendered TEXT
);
`

// InitSchema applies the bundled DDL statement by statement. Creation is
// idempotent (IF NOT EXISTS), so running it on every startup is safe.
// Individual failures are logged and the remaining statements still run; the
// return value reports whether everything applied cleanly.
func (s *Store) InitSchema(ctx context.Context) bool {
	conn, err := s.open()
	if err != nil {
		s.log.Error().Err(err).Msg("open database")
		return false
	}
	defer conn.Close()

	ok := true
	for _, stmt := range strings.Split(schemaDDL, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			s.log.Error().Err(err).Str("statement", stmt).Msg("schema statement failed")
			ok = false
		}
	}
	return ok
}

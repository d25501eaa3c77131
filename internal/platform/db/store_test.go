package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := New(filepath.Join(t.TempDir(), "clinic.db"), zerolog.Nop())
	if !s.InitSchema(context.Background()) {
		t.Fatal("InitSchema failed")
	}
	return s
}

func TestInitSchema_Idempotent(t *testing.T) {
	s := newTestStore(t)
	if !s.InitSchema(context.Background()) {
		t.Error("second InitSchema failed")
	}
}

func TestInsertAndQueryRow(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, ok := s.Insert(ctx, `INSERT INTO doctors (name, specialty, contact_info) VALUES (?, ?, ?)`,
		"Shaw", "Cardiology", "ext. 1")
	if !ok {
		t.Fatal("Insert failed")
	}
	if id == 0 {
		t.Fatal("Insert returned id 0")
	}

	var name, specialty string
	found := s.QueryRow(ctx, `SELECT name, specialty FROM doctors WHERE id = ?`, []any{id},
		func(row RowScanner) error { return row.Scan(&name, &specialty) })
	if !found {
		t.Fatal("QueryRow did not find the inserted row")
	}
	if name != "Shaw" || specialty != "Cardiology" {
		t.Errorf("got (%q, %q), want (Shaw, Cardiology)", name, specialty)
	}
}

func TestInsert_AssignsIncreasingIDs(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, ok := s.Insert(ctx, `INSERT INTO doctors (name) VALUES (?)`, "A")
	if !ok {
		t.Fatal("first Insert failed")
	}
	second, ok := s.Insert(ctx, `INSERT INTO doctors (name) VALUES (?)`, "B")
	if !ok {
		t.Fatal("second Insert failed")
	}
	if second <= first {
		t.Errorf("ids not increasing: %d then %d", first, second)
	}
}

func TestQueryRow_NoRow(t *testing.T) {
	s := newTestStore(t)

	var name string
	found := s.QueryRow(context.Background(), `SELECT name FROM doctors WHERE id = ?`, []any{999},
		func(row RowScanner) error { return row.Scan(&name) })
	if found {
		t.Error("QueryRow reported a hit for a missing row")
	}
}

func TestExec_BadStatement(t *testing.T) {
	s := newTestStore(t)

	if s.Exec(context.Background(), `INSERT INTO nonexistent (x) VALUES (?)`, 1) {
		t.Error("Exec against a missing table should return false")
	}
}

func TestQuery_BadStatement(t *testing.T) {
	s := newTestStore(t)

	calls := 0
	ok := s.Query(context.Background(), `SELECT * FROM nonexistent`, nil,
		func(RowScanner) error { calls++; return nil })
	if ok {
		t.Error("Query against a missing table should return false")
	}
	if calls != 0 {
		t.Errorf("scan callback ran %d times on a failed query", calls)
	}
}

func TestQuery_Empty(t *testing.T) {
	s := newTestStore(t)

	calls := 0
	ok := s.Query(context.Background(), `SELECT name FROM doctors`, nil,
		func(RowScanner) error { calls++; return nil })
	if !ok {
		t.Error("Query over an empty table should succeed")
	}
	if calls != 0 {
		t.Errorf("scan callback ran %d times for no rows", calls)
	}
}

func TestPing(t *testing.T) {
	s := newTestStore(t)
	if !s.Ping(context.Background()) {
		t.Error("Ping failed on a reachable store")
	}
}

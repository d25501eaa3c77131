package patient

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/clinic/clinic/internal/platform/db"
)

func newTestRepo(t *testing.T) Repository {
	t.Helper()
	store := db.New(filepath.Join(t.TempDir(), "clinic.db"), zerolog.Nop())
	if !store.InitSchema(context.Background()) {
		t.Fatal("InitSchema failed")
	}
	return NewSQLiteRepo(store)
}

func TestRepo_RoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	p := Patient{Name: "Alice", DOB: "1990-05-01", Gender: "Female", ContactInfo: "555-0101", Address: "1 Main St"}
	if !repo.Insert(ctx, &p) {
		t.Fatal("Insert failed")
	}
	if p.ID == 0 {
		t.Fatal("Insert did not assign an id")
	}

	got, ok := repo.GetByID(ctx, p.ID)
	if !ok {
		t.Fatal("GetByID did not find the inserted patient")
	}
	if !reflect.DeepEqual(got, &p) {
		t.Errorf("GetByID = %+v, want %+v", got, &p)
	}
}

func TestRepo_GetByID_Absent(t *testing.T) {
	repo := newTestRepo(t)

	if _, ok := repo.GetByID(context.Background(), 42); ok {
		t.Error("GetByID found a patient in an empty store")
	}
}

func TestRepo_ListAll_OrderedByName(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, name := range []string{"Zoe", "Alice", "Mona"} {
		p := Patient{Name: name, DOB: "1990-05-01"}
		if !repo.Insert(ctx, &p) {
			t.Fatalf("Insert %q failed", name)
		}
	}

	first := repo.ListAll(ctx)
	want := []string{"Alice", "Mona", "Zoe"}
	if len(first) != len(want) {
		t.Fatalf("ListAll returned %d patients, want %d", len(first), len(want))
	}
	for i, p := range first {
		if p.Name != want[i] {
			t.Errorf("ListAll[%d].Name = %q, want %q", i, p.Name, want[i])
		}
	}

	second := repo.ListAll(ctx)
	if !reflect.DeepEqual(first, second) {
		t.Error("two ListAll calls without writes returned different sequences")
	}
}

func TestRepo_Update(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	p := Patient{Name: "Alice", DOB: "1990-05-01"}
	if !repo.Insert(ctx, &p) {
		t.Fatal("Insert failed")
	}

	p.Address = "2 Side St"
	if !repo.Update(ctx, &p) {
		t.Fatal("Update failed")
	}

	got, _ := repo.GetByID(ctx, p.ID)
	if got.Address != "2 Side St" {
		t.Errorf("Address after update = %q, want %q", got.Address, "2 Side St")
	}
}

func TestRepo_Delete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	p := Patient{Name: "Alice", DOB: "1990-05-01"}
	if !repo.Insert(ctx, &p) {
		t.Fatal("Insert failed")
	}
	if !repo.Delete(ctx, p.ID) {
		t.Fatal("Delete failed")
	}
	if _, ok := repo.GetByID(ctx, p.ID); ok {
		t.Error("GetByID found a deleted patient")
	}
}

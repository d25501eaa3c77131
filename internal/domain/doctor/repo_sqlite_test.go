package doctor

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

	d := Doctor{Name: "Meredith Shaw", Specialty: "Cardiology", ContactInfo: "ext. 101"}
	if !repo.Insert(ctx, &d) {
		t.Fatal("Insert failed")
	}
	if d.ID == 0 {
		t.Fatal("Insert did not assign an id")
	}

	got, ok := repo.GetByID(ctx, d.ID)
	if !ok {
		t.Fatal("GetByID did not find the inserted doctor")
	}
	if !reflect.DeepEqual(got, &d) {
		t.Errorf("GetByID = %+v, want %+v", got, &d)
	}
}

func TestRepo_ListAll_OrderedByName(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, name := range []string{"Keller", "Shaw", "Raman"} {
		d := Doctor{Name: name}
		if !repo.Insert(ctx, &d) {
			t.Fatalf("Insert %q failed", name)
		}
	}

	got := repo.ListAll(ctx)
	want := []string{"Keller", "Raman", "Shaw"}
	if len(got) != len(want) {
		t.Fatalf("ListAll returned %d doctors, want %d", len(got), len(want))
	}
	for i, d := range got {
		if d.Name != want[i] {
			t.Errorf("ListAll[%d].Name = %q, want %q", i, d.Name, want[i])
		}
	}
}

func TestRepo_UpdateAndDelete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	d := Doctor{Name: "Shaw", Specialty: "Cardiology"}
	if !repo.Insert(ctx, &d) {
		t.Fatal("Insert failed")
	}

	d.Specialty = "General Practice"
	if !repo.Update(ctx, &d) {
		t.Fatal("Update failed")
	}
	got, _ := repo.GetByID(ctx, d.ID)
	if got.Specialty != "General Practice" {
		t.Errorf("Specialty after update = %q, want %q", got.Specialty, "General Practice")
	}

	if !repo.Delete(ctx, d.ID) {
		t.Fatal("Delete failed")
	}
	if _, ok := repo.GetByID(ctx, d.ID); ok {
		t.Error("GetByID found a deleted doctor")
	}
}

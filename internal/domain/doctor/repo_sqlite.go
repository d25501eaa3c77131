package doctor

import (
	"context"

	"github.com/clinic/clinic/internal/platform/db"
)

type sqliteRepo struct{ store *db.Store }

func NewSQLiteRepo(store *db.Store) Repository { return &sqliteRepo{store: store} }

const cols = `id, name, specialty, contact_info`

func (r *sqliteRepo) scan(row db.RowScanner, d *Doctor) error {
	return row.Scan(&d.ID, &d.Name, &d.Specialty, &d.ContactInfo)
}

func (r *sqliteRepo) Insert(ctx context.Context, d *Doctor) bool {
	id, ok := r.store.Insert(ctx, `
		INSERT INTO doctors (name, specialty, contact_info)
		VALUES (?, ?, ?)`,
		d.Name, d.Specialty, d.ContactInfo)
	if !ok {
		return false
	}
	d.ID = id
	return true
}

func (r *sqliteRepo) Update(ctx context.Context, d *Doctor) bool {
	return r.store.Exec(ctx, `
		UPDATE doctors
		SET name = ?, specialty = ?, contact_info = ?
		WHERE id = ?`,
		d.Name, d.Specialty, d.ContactInfo, d.ID)
}

func (r *sqliteRepo) Delete(ctx context.Context, id int64) bool {
	return r.store.Exec(ctx, `DELETE FROM doctors WHERE id = ?`, id)
}

func (r *sqliteRepo) GetByID(ctx context.Context, id int64) (*Doctor, bool) {
	var d Doctor
	ok := r.store.QueryRow(ctx, `SELECT `+cols+` FROM doctors WHERE id = ?`, []any{id},
		func(row db.RowScanner) error { return r.scan(row, &d) })
	if !ok {
		return nil, false
	}
	return &d, true
}

func (r *sqliteRepo) ListAll(ctx context.Context) []*Doctor {
	var items []*Doctor
	ok := r.store.Query(ctx, `SELECT `+cols+` FROM doctors ORDER BY name`, nil,
		func(row db.RowScanner) error {
			var d Doctor
			if err := r.scan(row, &d); err != nil {
				return err
			}
			items = append(items, &d)
			return nil
		})
	if !ok {
		return nil
	}
	return items
}

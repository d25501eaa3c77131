package patient

import (
	"context"

	"github.com/clinic/clinic/internal/platform/db"
)

type sqliteRepo struct{ store *db.Store }

func NewSQLiteRepo(store *db.Store) Repository { return &sqliteRepo{store: store} }

const cols = `id, name, dob, gender, contact_info, address`

func (r *sqliteRepo) scan(row db.RowScanner, p *Patient) error {
	return row.Scan(&p.ID, &p.Name, &p.DOB, &p.Gender, &p.ContactInfo, &p.Address)
}

func (r *sqliteRepo) Insert(ctx context.Context, p *Patient) bool {
	id, ok := r.store.Insert(ctx, `
		INSERT INTO patients (name, dob, gender, contact_info, address)
		VALUES (?, ?, ?, ?, ?)`,
		p.Name, p.DOB, p.Gender, p.ContactInfo, p.Address)
	if !ok {
		return false
	}
	p.ID = id
	return true
}

func (r *sqliteRepo) Update(ctx context.Context, p *Patient) bool {
	return r.store.Exec(ctx, `
		UPDATE patients
		SET name = ?, dob = ?, gender = ?, contact_info = ?, address = ?
		WHERE id = ?`,
		p.Name, p.DOB, p.Gender, p.ContactInfo, p.Address, p.ID)
}

func (r *sqliteRepo) Delete(ctx context.Context, id int64) bool {
	return r.store.Exec(ctx, `DELETE FROM patients WHERE id = ?`, id)
}

func (r *sqliteRepo) GetByID(ctx context.Context, id int64) (*Patient, bool) {
	var p Patient
	ok := r.store.QueryRow(ctx, `SELECT `+cols+` FROM patients WHERE id = ?`, []any{id},
		func(row db.RowScanner) error { return r.scan(row, &p) })
	if !ok {
		return nil, false
	}
	return &p, true
}

func (r *sqliteRepo) ListAll(ctx context.Context) []*Patient {
	var items []*Patient
	ok := r.store.Query(ctx, `SELECT `+cols+` FROM patients ORDER BY name`, nil,
		func(row db.RowScanner) error {
			var p Patient
			if err := r.scan(row, &p); err != nil {
				return err
			}
			items = append(items, &p)
			return nil
		})
	if !ok {
		return nil
	}
	return items
}

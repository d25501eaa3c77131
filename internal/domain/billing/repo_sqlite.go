package billing

import (
	"context"

	"github.com/clinic/clinic/internal/platform/db"
)

type sqliteRepo struct{ store *db.Store }

func NewSQLiteRepo(store *db.Store) Repository { return &sqliteRepo{store: store} }

const cols = `id, patient_id, appointment_id, amount, date, status, services_rendered`

func (r *sqliteRepo) scan(row db.RowScanner, b *Billing) error {
	return row.Scan(&b.ID, &b.PatientID, &b.AppointmentID, &b.Amount, &b.Date, &b.Status, &b.ServicesRendered)
}

func (r *sqliteRepo) Insert(ctx context.Context, b *Billing) bool {
	id, ok := r.store.Insert(ctx, `
		INSERT INTO billing (patient_id, appointment_id, amount, date, status, services_rendered)
		VALUES (?, ?, ?, ?, ?, ?)`,
		b.PatientID, b.AppointmentID, b.Amount, b.Date, b.Status, b.ServicesRendered)
	if !ok {
		return false
	}
	b.ID = id
	return true
}

func (r *sqliteRepo) Update(ctx context.Context, b *Billing) bool {
	return r.store.Exec(ctx, `
		UPDATE billing
		SET patient_id = ?, appointment_id = ?, amount = ?, date = ?, status = ?, services_rendered = ?
		WHERE id = ?`,
		b.PatientID, b.AppointmentID, b.Amount, b.Date, b.Status, b.ServicesRendered, b.ID)
}

func (r *sqliteRepo) Delete(ctx context.Context, id int64) bool {
	return r.store.Exec(ctx, `DELETE FROM billing WHERE id = ?`, id)
}

func (r *sqliteRepo) GetByID(ctx context.Context, id int64) (*Billing, bool) {
	var b Billing
	ok := r.store.QueryRow(ctx, `SELECT `+cols+` FROM billing WHERE id = ?`, []any{id},
		func(row db.RowScanner) error { return r.scan(row, &b) })
	if !ok {
		return nil, false
	}
	return &b, true
}

func (r *sqliteRepo) ListAll(ctx context.Context) []*Billing {
	return r.list(ctx, `SELECT `+cols+` FROM billing ORDER BY date DESC`, nil)
}

func (r *sqliteRepo) ListByPatient(ctx context.Context, patientID int64) []*Billing {
	return r.list(ctx, `SELECT `+cols+` FROM billing WHERE patient_id = ? ORDER BY date DESC`, []any{patientID})
}

func (r *sqliteRepo) list(ctx context.Context, query string, args []any) []*Billing {
	var items []*Billing
	ok := r.store.Query(ctx, query, args,
		func(row db.RowScanner) error {
			var b Billing
			if err := r.scan(row, &b); err != nil {
				return err
			}
			items = append(items, &b)
			return nil
		})
	if !ok {
		return nil
	}
	return items
}

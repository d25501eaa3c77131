package appointment

import (
	"context"

	"github.com/clinic/clinic/internal/platform/db"
)

type sqliteRepo struct{ store *db.Store }

func NewSQLiteRepo(store *db.Store) Repository { return &sqliteRepo{store: store} }

const cols = `id, patient_id, doctor_id, date, time, reason, status`

func (r *sqliteRepo) scan(row db.RowScanner, a *Appointment) error {
	return row.Scan(&a.ID, &a.PatientID, &a.DoctorID, &a.Date, &a.Time, &a.Reason, &a.Status)
}

func (r *sqliteRepo) Insert(ctx context.Context, a *Appointment) bool {
	id, ok := r.store.Insert(ctx, `
		INSERT INTO appointments (patient_id, doctor_id, date, time, reason, status)
		VALUES (?, ?, ?, ?, ?, ?)`,
		a.PatientID, a.DoctorID, a.Date, a.Time, a.Reason, a.Status)
	if !ok {
		return false
	}
	a.ID = id
	return true
}

func (r *sqliteRepo) Update(ctx context.Context, a *Appointment) bool {
	return r.store.Exec(ctx, `
		UPDATE appointments
		SET patient_id = ?, doctor_id = ?, date = ?, time = ?, reason = ?, status = ?
		WHERE id = ?`,
		a.PatientID, a.DoctorID, a.Date, a.Time, a.Reason, a.Status, a.ID)
}

func (r *sqliteRepo) Delete(ctx context.Context, id int64) bool {
	return r.store.Exec(ctx, `DELETE FROM appointments WHERE id = ?`, id)
}

func (r *sqliteRepo) GetByID(ctx context.Context, id int64) (*Appointment, bool) {
	var a Appointment
	ok := r.store.QueryRow(ctx, `SELECT `+cols+` FROM appointments WHERE id = ?`, []any{id},
		func(row db.RowScanner) error { return r.scan(row, &a) })
	if !ok {
		return nil, false
	}
	return &a, true
}

func (r *sqliteRepo) ListAll(ctx context.Context) []*Appointment {
	return r.list(ctx, `SELECT `+cols+` FROM appointments ORDER BY date, time`, nil)
}

func (r *sqliteRepo) ListByPatient(ctx context.Context, patientID int64) []*Appointment {
	return r.list(ctx, `SELECT `+cols+` FROM appointments WHERE patient_id = ? ORDER BY date, time`, []any{patientID})
}

func (r *sqliteRepo) list(ctx context.Context, query string, args []any) []*Appointment {
	var items []*Appointment
	ok := r.store.Query(ctx, query, args,
		func(row db.RowScanner) error {
			var a Appointment
			if err := r.scan(row, &a); err != nil {
				return err
			}
			items = append(items, &a)
			return nil
		})
	if !ok {
		return nil
	}
	return items
}

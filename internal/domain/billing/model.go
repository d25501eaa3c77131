package billing

import "time"

const dateLayout = "2006-01-02"

// Status is the closed set of billing states. As with appointments, no
// transition graph is enforced.
type Status string

const (
	StatusUnpaid    Status = "Unpaid"
	StatusPaid      Status = "Paid"
	StatusPending   Status = "Pending"
	StatusCancelled Status = "Cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusUnpaid, StatusPaid, StatusPending, StatusCancelled:
		return true
	}
	return false
}

// Billing maps to the billing table. AppointmentID is optional: a billing is
// always for a patient but not necessarily for a recorded visit.
type Billing struct {
	ID               int64   `db:"id" json:"id"`
	PatientID        int64   `db:"patient_id" json:"patient_id"`
	AppointmentID    *int64  `db:"appointment_id" json:"appointment_id,omitempty"`
	Amount           float64 `db:"amount" json:"amount"`
	Date             string  `db:"date" json:"date"` // YYYY-MM-DD
	Status           Status  `db:"status" json:"status"`
	ServicesRendered string  `db:"services_rendered" json:"services_rendered,omitempty"`
}

// MarkPaid sets the status to Paid.
func (b *Billing) MarkPaid() { b.Status = StatusPaid }

// Overdue reports whether the billing date is strictly before today and the
// billing has not been paid. A billing dated today is never overdue, nor is
// one whose date does not parse.
func (b *Billing) Overdue() bool {
	return b.overdueAt(time.Now())
}

func (b *Billing) overdueAt(now time.Time) bool {
	d, err := time.ParseInLocation(dateLayout, b.Date, time.Local)
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	return d.Before(today) && b.Status != StatusPaid
}

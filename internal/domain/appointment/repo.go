package appointment

import "context"

// Repository is the appointments persistence contract.
type Repository interface {
	Insert(ctx context.Context, a *Appointment) bool
	Update(ctx context.Context, a *Appointment) bool
	Delete(ctx context.Context, id int64) bool
	GetByID(ctx context.Context, id int64) (*Appointment, bool)
	ListAll(ctx context.Context) []*Appointment
	ListByPatient(ctx context.Context, patientID int64) []*Appointment
}

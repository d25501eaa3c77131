package billing

import "context"

// Repository is the billing persistence contract.
type Repository interface {
	Insert(ctx context.Context, b *Billing) bool
	Update(ctx context.Context, b *Billing) bool
	Delete(ctx context.Context, id int64) bool
	GetByID(ctx context.Context, id int64) (*Billing, bool)
	ListAll(ctx context.Context) []*Billing
	ListByPatient(ctx context.Context, patientID int64) []*Billing
}

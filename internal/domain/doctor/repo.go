package doctor

import "context"

// Repository is the doctors persistence contract.
type Repository interface {
	Insert(ctx context.Context, d *Doctor) bool
	Update(ctx context.Context, d *Doctor) bool
	Delete(ctx context.Context, id int64) bool
	GetByID(ctx context.Context, id int64) (*Doctor, bool)
	ListAll(ctx context.Context) []*Doctor
}

package patient

import "context"

// Repository is the patients persistence contract. Writes report success as a
// boolean; reads model absence as (nil, false) or an empty slice. Repositories
// never surface driver errors.
type Repository interface {
	Insert(ctx context.Context, p *Patient) bool
	Update(ctx context.Context, p *Patient) bool
	Delete(ctx context.Context, id int64) bool
	GetByID(ctx context.Context, id int64) (*Patient, bool)
	ListAll(ctx context.Context) []*Patient
}

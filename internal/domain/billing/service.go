package billing

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/clinic/clinic/internal/domain"
)

// Service is the only write path for billing records.
type Service struct {
	repo Repository
	log  zerolog.Logger
}

func NewService(repo Repository, log zerolog.Logger) *Service {
	return &Service{repo: repo, log: log.With().Str("service", "billing").Logger()}
}

func (s *Service) Add(ctx context.Context, b *Billing) error {
	if b.Date == "" {
		b.Date = time.Now().Format(dateLayout)
	}
	if b.Status == "" {
		b.Status = StatusUnpaid
	}
	if err := validate(b); err != nil {
		s.log.Warn().Err(err).Msg("add billing rejected")
		return err
	}
	if !s.repo.Insert(ctx, b) {
		return domain.ErrOperationFailed
	}
	return nil
}

func (s *Service) Update(ctx context.Context, b *Billing) error {
	if b.Status == "" {
		b.Status = StatusUnpaid
	}
	if err := validate(b); err != nil {
		s.log.Warn().Err(err).Int64("id", b.ID).Msg("update billing rejected")
		return err
	}
	if !s.repo.Update(ctx, b) {
		return domain.ErrOperationFailed
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if !s.repo.Delete(ctx, id) {
		return domain.ErrOperationFailed
	}
	return nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Billing, bool) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListAll(ctx context.Context) []*Billing {
	return s.repo.ListAll(ctx)
}

func (s *Service) ListByPatient(ctx context.Context, patientID int64) []*Billing {
	return s.repo.ListByPatient(ctx, patientID)
}

// MarkPaid sets the record to Paid and persists it.
func (s *Service) MarkPaid(ctx context.Context, b *Billing) error {
	b.MarkPaid()
	return s.Update(ctx, b)
}

// Overdue returns every billing whose date is before today and which has not
// been paid. The predicate is computed per record, not stored, so this is a
// full scan over the billing list.
func (s *Service) Overdue(ctx context.Context) []*Billing {
	var overdue []*Billing
	for _, b := range s.repo.ListAll(ctx) {
		if b.Overdue() {
			overdue = append(overdue, b)
		}
	}
	return overdue
}

func validate(b *Billing) error {
	if b.Amount <= 0 {
		return domain.Validationf("billing amount must be positive")
	}
	if !b.Status.Valid() {
		return domain.Validationf("invalid billing status: %s", b.Status)
	}
	return nil
}

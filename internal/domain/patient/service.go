package patient

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/clinic/clinic/internal/domain"
)

// Service is the only write path for patients. Every mutation is validated
// here before it reaches the repository.
type Service struct {
	repo Repository
	log  zerolog.Logger
}

func NewService(repo Repository, log zerolog.Logger) *Service {
	return &Service{repo: repo, log: log.With().Str("service", "patient").Logger()}
}

func (s *Service) Add(ctx context.Context, p *Patient) error {
	if err := validate(p); err != nil {
		s.log.Warn().Err(err).Msg("add patient rejected")
		return err
	}
	if !s.repo.Insert(ctx, p) {
		return domain.ErrOperationFailed
	}
	return nil
}

func (s *Service) Update(ctx context.Context, p *Patient) error {
	if err := validate(p); err != nil {
		s.log.Warn().Err(err).Int64("id", p.ID).Msg("update patient rejected")
		return err
	}
	if !s.repo.Update(ctx, p) {
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

func (s *Service) GetByID(ctx context.Context, id int64) (*Patient, bool) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListAll(ctx context.Context) []*Patient {
	return s.repo.ListAll(ctx)
}

func validate(p *Patient) error {
	if strings.TrimSpace(p.Name) == "" {
		return domain.Validationf("patient name cannot be empty")
	}
	if p.DOB == "" {
		return domain.Validationf("patient date of birth is required")
	}
	age, ok := ageAt(p.DOB, time.Now())
	if !ok {
		return domain.Validationf("patient date of birth must be in YYYY-MM-DD format")
	}
	if age < 0 || age > 120 {
		return domain.Validationf("patient date of birth is not realistic")
	}
	return nil
}

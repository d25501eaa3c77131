package doctor

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/clinic/clinic/internal/domain"
)

// Service is the only write path for doctors.
type Service struct {
	repo Repository
	log  zerolog.Logger
}

func NewService(repo Repository, log zerolog.Logger) *Service {
	return &Service{repo: repo, log: log.With().Str("service", "doctor").Logger()}
}

func (s *Service) Add(ctx context.Context, d *Doctor) error {
	if strings.TrimSpace(d.Name) == "" {
		err := domain.Validationf("doctor name cannot be empty")
		s.log.Warn().Err(err).Msg("add doctor rejected")
		return err
	}
	if !s.repo.Insert(ctx, d) {
		return domain.ErrOperationFailed
	}
	return nil
}

func (s *Service) Update(ctx context.Context, d *Doctor) error {
	if strings.TrimSpace(d.Name) == "" {
		err := domain.Validationf("doctor name cannot be empty")
		s.log.Warn().Err(err).Int64("id", d.ID).Msg("update doctor rejected")
		return err
	}
	if !s.repo.Update(ctx, d) {
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

func (s *Service) GetByID(ctx context.Context, id int64) (*Doctor, bool) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListAll(ctx context.Context) []*Doctor {
	return s.repo.ListAll(ctx)
}

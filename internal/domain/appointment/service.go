package appointment

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/clinic/clinic/internal/domain"
)

// Service is the only write path for appointments. The past-scheduling check
// runs on both add and update so a record cannot be moved into the past.
type Service struct {
	repo Repository
	log  zerolog.Logger
}

func NewService(repo Repository, log zerolog.Logger) *Service {
	return &Service{repo: repo, log: log.With().Str("service", "appointment").Logger()}
}

func (s *Service) Add(ctx context.Context, a *Appointment) error {
	if a.Status == "" {
		a.Status = StatusScheduled
	}
	if err := validate(a); err != nil {
		s.log.Warn().Err(err).Msg("add appointment rejected")
		return err
	}
	if !s.repo.Insert(ctx, a) {
		return domain.ErrOperationFailed
	}
	return nil
}

func (s *Service) Update(ctx context.Context, a *Appointment) error {
	if a.Status == "" {
		a.Status = StatusScheduled
	}
	if err := validate(a); err != nil {
		s.log.Warn().Err(err).Int64("id", a.ID).Msg("update appointment rejected")
		return err
	}
	if !s.repo.Update(ctx, a) {
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

func (s *Service) GetByID(ctx context.Context, id int64) (*Appointment, bool) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListAll(ctx context.Context) []*Appointment {
	return s.repo.ListAll(ctx)
}

func (s *Service) ListByPatient(ctx context.Context, patientID int64) []*Appointment {
	return s.repo.ListByPatient(ctx, patientID)
}

func validate(a *Appointment) error {
	if !a.Status.Valid() {
		return domain.Validationf("invalid appointment status: %s", a.Status)
	}
	if a.InPast() {
		return domain.Validationf("cannot schedule an appointment in the past")
	}
	return nil
}

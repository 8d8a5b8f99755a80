package bed

import (
	"context"

	"github.com/bedboard/bedboard/internal/platform/apperr"
	"github.com/bedboard/bedboard/internal/platform/events"
)

type Service struct {
	repo     Repository
	notifier events.Publisher
}

func NewService(repo Repository, notifier events.Publisher) *Service {
	return &Service{repo: repo, notifier: notifier}
}

func (s *Service) CreateBed(ctx context.Context, b *Bed) error {
	if b.WardName == "" {
		return apperr.E(apperr.KindValidation, "ward_name is required")
	}
	if b.SpecialtyType == "" {
		return apperr.E(apperr.KindValidation, "specialty_type is required")
	}
	if b.CurrentStatus == "" {
		b.CurrentStatus = StatusAvailable
	}
	if !ValidStatus(b.CurrentStatus) {
		return apperr.Errorf(apperr.KindValidation, "invalid status: %s", b.CurrentStatus)
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return err
	}
	_ = s.notifier.Publish(ctx, events.BedsUpdated())
	return nil
}

func (s *Service) ListBeds(ctx context.Context, specialty string) ([]*Bed, error) {
	return s.repo.List(ctx, specialty)
}

// UpdateBedStatus is the narrow housekeeping primitive: it changes the bed's
// status without touching the admission ledger. Callers that need status and
// admissions kept in sync go through the transfer workflow instead.
func (s *Service) UpdateBedStatus(ctx context.Context, bedID int, status string) (*Bed, error) {
	if !ValidStatus(status) {
		return nil, apperr.Errorf(apperr.KindValidation, "invalid status: %s", status)
	}
	b, err := s.repo.UpdateStatus(ctx, bedID, status)
	if err != nil {
		return nil, err
	}
	_ = s.notifier.Publish(ctx, events.BedsUpdated())
	return b, nil
}

// DeleteBed succeeds even when the bed does not exist. That matches the
// long-standing API contract the dashboard depends on.
func (s *Service) DeleteBed(ctx context.Context, bedID int) error {
	if err := s.repo.Delete(ctx, bedID); err != nil {
		return err
	}
	_ = s.notifier.Publish(ctx, events.BedsUpdated())
	return nil
}

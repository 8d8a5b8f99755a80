package admission

import "context"

// Service exposes the ledger's read side. Writes go through the transfer
// workflow so bed status and admissions stay in sync.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CurrentPatient(ctx context.Context, bedID int) (*Admission, error) {
	return s.repo.Current(ctx, bedID)
}

func (s *Service) HistoryByBed(ctx context.Context, bedID int) ([]*Admission, error) {
	return s.repo.HistoryByBed(ctx, bedID)
}

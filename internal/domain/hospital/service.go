package hospital

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) HospitalsSummary(ctx context.Context) ([]*Summary, error) {
	return s.repo.Summaries(ctx)
}

func (s *Service) WardAvailability(ctx context.Context, hospitalID int) ([]*WardAvailability, error) {
	return s.repo.WardAvailability(ctx, hospitalID)
}

// OccupancyByHospital computes 100 * occupied / total per hospital. A
// hospital with zero beds reports 0 rather than dividing by zero.
func (s *Service) OccupancyByHospital(ctx context.Context) ([]*Occupancy, error) {
	counts, err := s.repo.Counts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*Occupancy, 0, len(counts))
	for _, c := range counts {
		o := &Occupancy{Name: c.Name}
		if c.Total > 0 {
			o.OccupancyPercentage = 100 * float64(c.Total-c.Available) / float64(c.Total)
		}
		out = append(out, o)
	}
	return out, nil
}

package hospital

import (
	"context"
	"testing"
)

type repoMock struct {
	summaries []*Summary
	wards     map[int][]*WardAvailability
	counts    []*BedCounts
}

func (m *repoMock) Summaries(_ context.Context) ([]*Summary, error) {
	return m.summaries, nil
}

func (m *repoMock) WardAvailability(_ context.Context, hospitalID int) ([]*WardAvailability, error) {
	return m.wards[hospitalID], nil
}

func (m *repoMock) Counts(_ context.Context) ([]*BedCounts, error) {
	return m.counts, nil
}

func TestOccupancyByHospital(t *testing.T) {
	svc := NewService(&repoMock{counts: []*BedCounts{
		{Name: "City General", Total: 4, Available: 1},
		{Name: "Empty Clinic", Total: 0, Available: 0},
		{Name: "Full House", Total: 2, Available: 0},
	}})

	got, err := svc.OccupancyByHospital(context.Background())
	if err != nil {
		t.Fatalf("OccupancyByHospital: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].OccupancyPercentage != 75 {
		t.Errorf("City General = %v, want 75", got[0].OccupancyPercentage)
	}
	// Zero beds must report zero occupancy, not a division error.
	if got[1].OccupancyPercentage != 0 {
		t.Errorf("Empty Clinic = %v, want 0", got[1].OccupancyPercentage)
	}
	if got[2].OccupancyPercentage != 100 {
		t.Errorf("Full House = %v, want 100", got[2].OccupancyPercentage)
	}
}

func TestWardAvailabilityPassthrough(t *testing.T) {
	svc := NewService(&repoMock{wards: map[int][]*WardAvailability{
		1: {{WardName: "ICU", AvailableBeds: 2, TotalBeds: 5}},
	}})

	wards, err := svc.WardAvailability(context.Background(), 1)
	if err != nil {
		t.Fatalf("WardAvailability: %v", err)
	}
	if len(wards) != 1 || wards[0].WardName != "ICU" || wards[0].AvailableBeds != 2 {
		t.Errorf("unexpected wards: %+v", wards)
	}
}

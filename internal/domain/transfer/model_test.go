package transfer

import "testing"

func TestPriorityRank(t *testing.T) {
	cases := []struct {
		priority string
		want     int
	}{
		{PriorityEmergency, 1},
		{PriorityHigh, 2},
		{PriorityMedium, 3},
		{PriorityLow, 4},
		{"Unknown", 4},
		{"", 4},
	}
	for _, tc := range cases {
		if got := PriorityRank(tc.priority); got != tc.want {
			t.Errorf("PriorityRank(%q) = %d, want %d", tc.priority, got, tc.want)
		}
	}
}

func TestValidDecision(t *testing.T) {
	if !ValidDecision(StatusApproved) || !ValidDecision(StatusRejected) {
		t.Error("terminal statuses should be valid decisions")
	}
	if ValidDecision(StatusPending) || ValidDecision("MAYBE") {
		t.Error("non-terminal statuses should not be valid decisions")
	}
}

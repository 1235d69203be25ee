package tui

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"serverbook/internal/domain"
)

func TestCostSeries_ReversesToChronological(t *testing.T) {
	month := func(m time.Month) time.Time {
		return time.Date(2024, m, 1, 0, 0, 0, 0, time.UTC)
	}
	// Stored order is newest first.
	snapshots := []domain.CostSnapshot{
		{Month: month(time.March), CostMonth: 30},
		{Month: month(time.February), CostMonth: 20},
		{Month: month(time.January), CostMonth: 10},
	}

	got := costSeries(snapshots)
	want := []float64{10, 20, 30}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("costSeries mismatch (-want +got):\n%s", diff)
	}
}

func TestCostSeries_Empty(t *testing.T) {
	if got := costSeries(nil); len(got) != 0 {
		t.Errorf("expected empty series, got %v", got)
	}
}

func TestLatestCost(t *testing.T) {
	est := 5.5
	tests := []struct {
		name   string
		server domain.Server
		want   string
	}{
		{
			name: "snapshot wins over estimate",
			server: domain.Server{
				CostMonthEstimated: &est,
				CostSnapshots:      []domain.CostSnapshot{{CostMonth: 8.39}},
			},
			want: "8.39",
		},
		{
			name:   "estimate fallback is marked approximate",
			server: domain.Server{CostMonthEstimated: &est},
			want:   "~5.50",
		},
		{
			name:   "nothing known",
			server: domain.Server{},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := latestCost(tt.server); got != tt.want {
				t.Errorf("latestCost = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in       string
		maxWidth int
		want     string
	}{
		{"short", 10, "short"},
		{"exactly-ten", 11, "exactly-ten"},
		{"a-very-long-server-name", 10, "a-very-lo…"},
		{"abc", 2, "ab"},
		{"anything", 0, ""},
	}

	for _, tt := range tests {
		if got := truncate(tt.in, tt.maxWidth); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.maxWidth, got, tt.want)
		}
	}
}

package timefmt

import (
	"testing"
	"time"
)

func TestAge(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		ts   time.Time
		want string
	}{
		{"seconds", now.Add(-30 * time.Second), "just now"},
		{"minutes", now.Add(-5 * time.Minute), "5m ago"},
		{"hours", now.Add(-7 * time.Hour), "7h ago"},
		{"oneDay", now.Add(-25 * time.Hour), "1 day ago"},
		{"days", now.Add(-6 * 24 * time.Hour), "6 days ago"},
		{"sameYear", now.Add(-40 * 24 * time.Hour), "Jan 29"},
		{"otherYear", time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), "Jun 1 2024"},
		{"zero", time.Time{}, "never"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Age(tc.ts, now); got != tc.want {
				t.Fatalf("Age(%s) = %q, want %q", tc.name, got, tc.want)
			}
		})
	}
}

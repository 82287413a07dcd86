package ui

import (
	"testing"
	"time"
)

func TestFormatChanged(t *testing.T) {
	now := time.Date(2026, 10, 17, 21, 0, 0, 0, time.UTC)
	cases := []struct {
		name string
		at   time.Time
		want string
	}{
		{"never", time.Time{}, "never"},
		{"just now", now.Add(-10 * time.Second), "20:59:50 (now)"},
		{"minutes", now.Add(-5 * time.Minute), "20:55:00 (5m ago)"},
		{"hours", now.Add(-3 * time.Hour), "18:00:00 (3h ago)"},
		{"days", now.Add(-48 * time.Hour), "21:00:00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := formatChanged(tc.at, now); got != tc.want {
				t.Fatalf("formatChanged = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestColumnsFillWidth(t *testing.T) {
	for _, width := range []int{118, 90, LayoutCompactWidth, 60, 40} {
		c := columns(width)
		gaps := 4 * colGap
		if c.date == 0 {
			gaps = 3 * colGap
		}
		if got := c.id + c.name + c.author + c.pages + c.date + gaps; got != width {
			t.Fatalf("columns(%d) total = %d", width, got)
		}
		if width < LayoutCompactWidth && c.date != 0 {
			t.Fatalf("columns(%d) kept the published column", width)
		}
	}
}

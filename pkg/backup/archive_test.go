package backup

import (
	"testing"
	"time"
)

func TestArchive_AgeAt(t *testing.T) {
	now := time.Date(2023, 6, 15, 5, 0, 0, 0, time.UTC)
	a := Archive{ModTime: now.Add(-36 * time.Hour)}

	if got := a.AgeAt(now); got != 36*time.Hour {
		t.Errorf("expected age 36h, got %v", got)
	}
}

func TestArchive_OlderThan(t *testing.T) {
	now := time.Date(2023, 6, 15, 5, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		age  time.Duration
		d    time.Duration
		want bool
	}{
		{"clearly older", 25 * time.Hour, 24 * time.Hour, true},
		{"clearly younger", 23 * time.Hour, 24 * time.Hour, false},
		{"exactly at boundary", 24 * time.Hour, 24 * time.Hour, false},
		{"one second past boundary", 24*time.Hour + time.Second, 24 * time.Hour, true},
		{"zero duration", time.Nanosecond, 0, true},
		{"future mod time", -time.Hour, 24 * time.Hour, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Archive{ModTime: now.Add(-tt.age)}
			if got := a.OlderThan(now, tt.d); got != tt.want {
				t.Errorf("OlderThan(now, %v) with age %v: expected %v, got %v",
					tt.d, tt.age, tt.want, got)
			}
		})
	}
}

// A negated duration must describe the same cutoff as the positive one.
func TestArchive_OlderThanNegativeDuration(t *testing.T) {
	now := time.Date(2023, 6, 15, 5, 0, 0, 0, time.UTC)
	a := Archive{ModTime: now.Add(-25 * time.Hour)}

	if !a.OlderThan(now, -24*time.Hour) {
		t.Error("expected OlderThan to treat -24h as 24h")
	}
	if a.OlderThan(now, -26*time.Hour) {
		t.Error("expected OlderThan to treat -26h as 26h")
	}
}

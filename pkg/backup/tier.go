package backup

import (
	"time"

	"github.com/Gredelston/minecraft-scripts/pkg/config"
)

// Tier is one backup cadence: a directory of archives plus the windows
// governing creation and pruning. The tier set is fixed at three; only
// directories and windows are configurable.
type Tier struct {
	// Name identifies the tier: "daily", "weekly", or "monthly".
	Name string

	// Directory holds the tier's archives.
	Directory string

	// Cadence is the nominal interval between backups.
	Cadence time.Duration

	// Tolerance is the slack subtracted from Cadence when deciding
	// whether a backup is due. Sign-insensitive.
	Tolerance time.Duration

	// Retention is the maximum archive age before deletion eligibility.
	Retention time.Duration
}

// NeedsBackup reports whether the tier is due at the given instant: true
// iff every known archive is older than the tolerance-adjusted cadence
// (Cadence minus Tolerance). An empty tier is vacuously due. Without the
// tolerance, an archive finished minutes after the previous trigger would
// still be fractionally younger than a full cadence at the next trigger
// and would wrongly suppress it.
func (t Tier) NeedsBackup(archives []Archive, now time.Time) bool {
	adjusted := t.Cadence - absDuration(t.Tolerance)
	for _, a := range archives {
		if !a.OlderThan(now, adjusted) {
			return false
		}
	}
	return true
}

// Expired returns the archives strictly older than the tier's retention
// window, in scan order. An archive exactly at the boundary is retained.
// There is no minimum-retained count: after an outage longer than the
// window, every archive in the tier is eligible, and the longer tiers
// are the redundancy for that case.
func (t Tier) Expired(archives []Archive, now time.Time) []Archive {
	var expired []Archive
	for _, a := range archives {
		if a.OlderThan(now, t.Retention) {
			expired = append(expired, a)
		}
	}
	return expired
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}

// Tiers binds the configured directories and windows to the fixed tier
// set, in processing order: daily, weekly, monthly.
func Tiers(cfg *config.BackupsConfig) []Tier {
	return []Tier{
		newTier(config.DailyDirName, &cfg.Daily),
		newTier(config.WeeklyDirName, &cfg.Weekly),
		newTier(config.MonthlyDirName, &cfg.Monthly),
	}
}

func newTier(name string, tc *config.TierConfig) Tier {
	return Tier{
		Name:      name,
		Directory: tc.Directory,
		Cadence:   tc.Cadence,
		Tolerance: tc.Tolerance,
		Retention: tc.Retention,
	}
}

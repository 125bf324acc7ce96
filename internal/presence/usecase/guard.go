package usecase

import "time"

const (
	defaultActivityWindow = 45 * time.Second
	defaultGraceWindow    = 30 * time.Second
)

// DecayGuard is the two-threshold staleness check for the presence sweep.
// Records with activity older than ActivityWindow decay; records with
// activity newer than GraceWindow are protected from a sweep pass that read
// them before a fresh ping landed. Records between the two thresholds are
// left untouched, which keeps a racing touch and sweep from flapping the
// online flag.
type DecayGuard struct {
	ActivityWindow time.Duration
	GraceWindow    time.Duration
}

func NewDecayGuard(activity, grace time.Duration) DecayGuard {
	if activity <= 0 {
		activity = defaultActivityWindow
	}
	if grace <= 0 {
		grace = defaultGraceWindow
	}
	return DecayGuard{ActivityWindow: activity, GraceWindow: grace}
}

// ShouldDecay reports whether a record with the given last activity should
// transition offline at now. A record that never reported activity decays
// immediately.
func (g DecayGuard) ShouldDecay(lastActivity *time.Time, now time.Time) bool {
	if lastActivity == nil {
		return true
	}
	if lastActivity.After(now.Add(-g.GraceWindow)) {
		return false
	}
	return lastActivity.Before(now.Add(-g.ActivityWindow))
}

package gamify

import (
	"math"
	"time"

	"github.com/skillsprint/skillsprint/internal/store"
)

// Visit is the outcome of a daily streak check.
type Visit struct {
	Streak     int
	LastActive time.Time

	// Changed reports whether the visit moved the streak state. A second
	// visit on the same calendar day changes nothing, and the caller must
	// not write to storage when Changed is false.
	Changed bool
}

// Tracker maintains the consecutive-day activity streak.
type Tracker struct {
	// Now is overridable for tests; defaults to time.Now.
	Now func() time.Time
}

// OnVisit evaluates the streak against the current calendar day. A first
// ever visit or a gap of more than one day resets the streak to 1, a visit
// exactly one day after the last extends it, and a repeat visit on the same
// day leaves everything untouched. user is mutated when Changed.
func (tr Tracker) OnVisit(user *store.User) Visit {
	now := time.Now()
	if tr.Now != nil {
		now = tr.Now()
	}
	today := truncateDay(now)

	if user.LastActive != nil {
		last := truncateDay(*user.LastActive)
		switch daysBetween(last, today) {
		case 0:
			return Visit{Streak: user.Streak, LastActive: *user.LastActive, Changed: false}
		case 1:
			user.Streak++
		default:
			user.Streak = 1
		}
	} else {
		user.Streak = 1
	}

	user.LastActive = &now
	return Visit{Streak: user.Streak, LastActive: now, Changed: true}
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// daysBetween counts calendar days between two day-truncated times. Rounding
// absorbs DST transitions where a "day" is 23 or 25 hours long.
func daysBetween(from, to time.Time) int {
	return int(math.Round(to.Sub(from).Hours() / 24))
}

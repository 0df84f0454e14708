// Package quota decides whether an account may run another generation
// under its subscription tier.
package quota

import (
	"time"

	"contentforge/pkg/domain"
)

// FreeDailyLimit is the number of generations a free account may run
// per UTC day.
const FreeDailyLimit = 3

// Unlimited is returned by Remaining for tiers without a daily cap.
const Unlimited = -1

// Allow reports whether an account on the given tier may run one more
// generation, given the count it has already run today. Unknown tiers
// are treated as free.
func Allow(tier domain.Tier, usedToday int) bool {
	if tier == domain.TierPro {
		return true
	}
	return usedToday < FreeDailyLimit
}

// Remaining returns how many generations the account can still run
// today, or Unlimited for uncapped tiers. Never negative for capped
// tiers.
func Remaining(tier domain.Tier, usedToday int) int {
	if tier == domain.TierPro {
		return Unlimited
	}
	left := FreeDailyLimit - usedToday
	if left < 0 {
		return 0
	}
	return left
}

// DayStart returns the UTC midnight that opens the quota window
// containing t. Counters reset at this boundary.
func DayStart(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// NextReset returns when the current quota window ends, i.e. the next
// UTC midnight after t. Useful for Retry-After headers.
func NextReset(t time.Time) time.Time {
	return DayStart(t).Add(24 * time.Hour)
}

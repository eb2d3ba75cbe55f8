package services

import (
	"math"
	"time"
)

const (
	// DecayRate is stat points lost per elapsed hour, applied to all stats.
	DecayRate = 10
	// CareBoost is the fixed increase a care action grants its target stat.
	CareBoost = 40
	// StatMax caps every stat.
	StatMax = 100
)

// Stats is the mutable portion of a pet reconciled by the decay engine.
type Stats struct {
	Energy      int
	Tension     int
	Maintenance int
}

// Decayed returns the stats after decay accrued between lastAction and now,
// plus the decay amount that was applied. It is a pure function: re-sampling
// now without an intervening care action yields the same result, because the
// baseline timestamp never moves on a decay-only pass.
func Decayed(s Stats, lastAction, now time.Time) (Stats, int) {
	elapsed := now.Sub(lastAction).Hours()
	if elapsed <= 0 {
		return s, 0
	}
	amount := int(math.Floor(elapsed * DecayRate))
	if amount == 0 {
		return s, 0
	}
	s.Energy = clampStat(s.Energy - amount)
	s.Tension = clampStat(s.Tension - amount)
	s.Maintenance = clampStat(s.Maintenance - amount)
	return s, amount
}

func clampStat(v int) int {
	if v < 0 {
		return 0
	}
	if v > StatMax {
		return StatMax
	}
	return v
}

package distribution

import "time"

// Halflife describes periodic weight decay. Zero Period disables it.
type Halflife struct {
	Period      time.Duration
	LastApplied time.Time
}

// NewHalflife returns Halflife with the given period, counting from now.
func NewHalflife(period time.Duration, now time.Time) Halflife {
	return Halflife{Period: period, LastApplied: now}
}

// Enabled checks whether decay is configured.
func (h Halflife) Enabled() bool {
	return h.Period > 0
}

// ShouldApply checks whether decay is due at now. It has no side effects.
func (h Halflife) ShouldApply(now time.Time) bool {
	return h.Enabled() && !now.Before(h.Next())
}

// Next returns the moment decay becomes due. It is meaningless for disabled
// decay.
func (h Halflife) Next() time.Time {
	return h.LastApplied.Add(h.Period)
}

// Advance marks decay as applied at now.
func (h *Halflife) Advance(now time.Time) {
	h.LastApplied = now
}

// ReducedWeight returns the weight after a single decay. Weights not greater
// than 1 are kept as is.
func ReducedWeight(w uint64) uint64 {
	if w <= 1 {
		return w
	}
	return w / 2
}

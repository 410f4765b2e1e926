package sm2

import "math"

const (
	// DefaultEasiness is the easiness factor assigned to a brand-new item.
	DefaultEasiness = 2.5

	// MinEasiness is the algorithm-defined floor for the easiness factor.
	// Repeated failures keep easiness flat here rather than driving it lower.
	MinEasiness = 1.3

	// restartInterval is the interval, in days, after a failed review.
	restartInterval = 1

	// defaultMaxInterval caps intervals at roughly 100 years when no
	// Scheduler is configured.
	defaultMaxInterval = 36500
)

// advance computes one SM-2 state transition. The quality must already be
// validated; callers reject out-of-range grades before reaching this point.
//
// Easiness is updated first, from the pre-update factor and the current
// grade, because the new factor scales the interval of a third-or-later
// consecutive pass.
func advance(it Item, q Quality, maxInterval int) Item {
	ef := nextEasiness(it.Easiness, q)
	reps := nextRepetitions(it.Repetitions, q)
	return Item{
		Easiness:    ef,
		Repetitions: reps,
		Interval:    nextInterval(it.Interval, ef, reps, maxInterval),
	}
}

// nextEasiness computes the updated easiness factor.
// EF' = EF + (0.1 - (5-q) * (0.08 + (5-q) * 0.02)), clamped to MinEasiness.
func nextEasiness(ef float64, q Quality) float64 {
	miss := float64(Perfect - q)
	return clampEasiness(ef + (0.1 - miss*(0.08+miss*0.02)))
}

// nextRepetitions increments the consecutive-pass count, or resets it to
// zero when the review failed.
func nextRepetitions(reps int, q Quality) int {
	if !q.Passing() {
		return 0
	}
	return reps + 1
}

// nextInterval computes the next review interval in days, switching on the
// post-update repetition count:
//
//	failure → restartInterval
//	1 pass  → 1
//	2 passes → 6
//	n passes → round(prev * EF'), saturated at maxInterval
func nextInterval(prev int, ef float64, reps int, maxInterval int) int {
	switch reps {
	case 0:
		return restartInterval
	case 1:
		return 1
	case 2:
		return 6
	default:
		ivl := math.Round(float64(prev) * ef)
		if ivl > float64(maxInterval) {
			return maxInterval
		}
		return int(ivl)
	}
}

// clampEasiness clamps the easiness factor to its MinEasiness floor.
func clampEasiness(ef float64) float64 {
	return math.Max(ef, MinEasiness)
}

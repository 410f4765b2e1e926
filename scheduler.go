package sm2

import (
	"encoding/json"
	"fmt"
)

// SchedulerConfig configures a Scheduler.
// Zero values produce sensible defaults; see field comments.
type SchedulerConfig struct {
	MaximumInterval int `json:"maximum_interval"` // zero → 36500
}

// Scheduler schedules item reviews using the SM-2 algorithm.
// A Scheduler is stateless apart from its configuration and is safe for
// concurrent use.
type Scheduler struct {
	maximumInterval int
}

// NewScheduler creates a Scheduler from the given config.
// Zero-value fields are filled with defaults; invalid values return an error.
func NewScheduler(cfg SchedulerConfig) (*Scheduler, error) {
	maxIvl := cfg.MaximumInterval
	if maxIvl == 0 {
		maxIvl = defaultMaxInterval
	}
	if maxIvl < 0 {
		return nil, fmt.Errorf("%w: maximum interval %d must be positive", ErrInvalidConfig, maxIvl)
	}
	return &Scheduler{maximumInterval: maxIvl}, nil
}

// ReviewItem processes a review of the item with the given quality.
// It returns the updated item and a review log; the input item is not
// mutated. The only error is ErrInvalidQuality for grades outside [0, 5].
func (s *Scheduler) ReviewItem(item Item, q Quality) (Item, ReviewLog, error) {
	if !q.IsValid() {
		return Item{}, ReviewLog{}, fmt.Errorf("%w: %d", ErrInvalidQuality, int(q))
	}

	next := advance(item, q, s.maximumInterval)

	log := ReviewLog{
		Quality:     q,
		Easiness:    next.Easiness,
		Repetitions: next.Repetitions,
		Interval:    next.Interval,
	}
	return next, log, nil
}

// PreviewItem returns the result of reviewing the item with each possible grade.
func (s *Scheduler) PreviewItem(item Item) map[Quality]Item {
	result := make(map[Quality]Item, 6)
	for q := Blackout; q <= Perfect; q++ {
		next, _, _ := s.ReviewItem(item, q)
		result[q] = next
	}
	return result
}

// RescheduleItem replays the given review logs to rebuild the item's
// scheduling state. Returns ErrInvalidQuality if any log carries an
// out-of-range grade.
func (s *Scheduler) RescheduleItem(item Item, logs []ReviewLog) (Item, error) {
	it := item
	for _, log := range logs {
		next, _, err := s.ReviewItem(it, log.Quality)
		if err != nil {
			return Item{}, err
		}
		it = next
	}
	return it, nil
}

// schedulerJSON is the serialized form of a Scheduler.
type schedulerJSON struct {
	MaximumInterval int `json:"maximum_interval"`
}

// MarshalJSON implements json.Marshaler.
func (s *Scheduler) MarshalJSON() ([]byte, error) {
	return json.Marshal(schedulerJSON{MaximumInterval: s.maximumInterval})
}

// UnmarshalJSON implements json.Unmarshaler.
// It rebuilds the scheduler from the serialized config.
func (s *Scheduler) UnmarshalJSON(data []byte) error {
	var j schedulerJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	rebuilt, err := NewScheduler(SchedulerConfig{MaximumInterval: j.MaximumInterval})
	if err != nil {
		return err
	}
	*s = *rebuilt
	return nil
}

package sm2

import "fmt"

// Item holds the SM-2 memory state of a single learning item.
// It is a plain value: operations take and return Items by value and never
// mutate their input.
type Item struct {
	Easiness    float64 `json:"easiness"`    // growth factor for the interval, never below MinEasiness.
	Repetitions int     `json:"repetitions"` // consecutive passing reviews since the last failure.
	Interval    int     `json:"interval"`    // days until the item is next due.
}

// NewItem creates an item in its default state: easiness 2.5, no reviews yet,
// immediately due.
func NewItem() Item {
	return Item{Easiness: DefaultEasiness}
}

// Review processes one review of the item with the given quality and returns
// the updated item. The receiver is unchanged; callers must use the returned
// value. Intervals are capped at the default maximum (100 years); use a
// Scheduler to configure the cap.
//
// The only error is ErrInvalidQuality, returned when q is outside [0, 5].
func (it Item) Review(q Quality) (Item, error) {
	if !q.IsValid() {
		return Item{}, fmt.Errorf("%w: %d", ErrInvalidQuality, int(q))
	}
	return advance(it, q, defaultMaxInterval), nil
}

package sm2

import (
	"encoding"
	"encoding/json"
	"fmt"
)

// Quality represents the user's 0–5 assessment of recall for one review.
type Quality int

const (
	Blackout  Quality = iota // Complete blackout, no recall at all.
	Incorrect                // Wrong answer, but the correct one was remembered when shown.
	Familiar                 // Wrong answer, but the correct one felt easy to recall.
	Difficult                // Correct answer recalled with serious difficulty.
	Hesitant                 // Correct answer after a hesitation.
	Perfect                  // Perfect recall.
)

var (
	qualityNames = [...]string{
		Blackout:  "Blackout",
		Incorrect: "Incorrect",
		Familiar:  "Familiar",
		Difficult: "Difficult",
		Hesitant:  "Hesitant",
		Perfect:   "Perfect",
	}
	qualityByName = map[string]Quality{
		"Blackout":  Blackout,
		"Incorrect": Incorrect,
		"Familiar":  Familiar,
		"Difficult": Difficult,
		"Hesitant":  Hesitant,
		"Perfect":   Perfect,
	}
)

// Compile-time interface checks.
var (
	_ fmt.Stringer             = Quality(0)
	_ json.Marshaler           = Quality(0)
	_ json.Unmarshaler         = (*Quality)(nil)
	_ encoding.TextMarshaler   = Quality(0)
	_ encoding.TextUnmarshaler = (*Quality)(nil)
)

// NewQuality validates n and returns it as a Quality.
// Any integer outside [0, 5] returns ErrInvalidQuality.
func NewQuality(n int) (Quality, error) {
	q := Quality(n)
	if !q.IsValid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidQuality, n)
	}
	return q, nil
}

// IsValid reports whether q is a valid quality (Blackout through Perfect).
func (q Quality) IsValid() bool {
	return q >= Blackout && q <= Perfect
}

// Passing reports whether q counts as a successful recall (Difficult or better).
// Failed reviews reset an item's repetition sequence.
func (q Quality) Passing() bool {
	return q >= Difficult
}

// String returns the name of the quality ("Blackout" through "Perfect").
// For invalid values it returns "Quality(n)".
func (q Quality) String() string {
	if q.IsValid() {
		return qualityNames[q]
	}
	return fmt.Sprintf("Quality(%d)", int(q))
}

// MarshalText implements encoding.TextMarshaler.
func (q Quality) MarshalText() ([]byte, error) {
	if !q.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidQuality, int(q))
	}
	return []byte(qualityNames[q]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (q *Quality) UnmarshalText(text []byte) error {
	v, ok := qualityByName[string(text)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidQuality, text)
	}
	*q = v
	return nil
}

// MarshalJSON implements json.Marshaler. Quality serializes as a JSON string.
func (q Quality) MarshalJSON() ([]byte, error) {
	text, err := q.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler. Expects a JSON string.
func (q *Quality) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidQuality, data)
	}
	return q.UnmarshalText([]byte(s))
}

package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the calendar-date format used for due dates at every boundary.
const DateLayout = "2006-01-02"

// Default values for a card that has never been graded.
const (
	DefaultEaseFactor = 2.5
	MinEaseFactor     = 1.3
)

// Card is a single flashcard. The core treats Front and Back as opaque payloads.
type Card struct {
	ID        string
	Deck      string
	Front     string
	Back      string
	CreatedAt time.Time
}

// StableCardID derives the card identifier from its content so that the same
// front/back pair always maps to the same card.
func StableCardID(front, back string) string {
	sum := sha256.Sum256([]byte(front + "\t" + back))
	return hex.EncodeToString(sum[:])[:16]
}

// CardState is the persisted scheduling state of one card.
// Interval == 0 means the card is in the learning phase; LearningStep is only
// meaningful there. Dates carry no time-of-day (see DateOf).
type CardState struct {
	Interval     int
	Ease         float64
	Due          time.Time
	Reps         int
	Lapses       int
	LastReviewed *time.Time
	LearningStep int
}

// NewCardState returns the state of a card that has never been graded.
func NewCardState(today time.Time) CardState {
	return CardState{
		Interval:     0,
		Ease:         DefaultEaseFactor,
		Due:          DateOf(today),
		LearningStep: 0,
	}
}

// IsLearning reports whether the card is still in the learning phase.
func (s CardState) IsLearning() bool {
	return s.Interval == 0
}

// IsDue reports whether the card should be reviewed on the given day.
func (s CardState) IsDue(today time.Time) bool {
	return !DateOf(s.Due).After(DateOf(today))
}

// DateOf strips the time-of-day, keeping the calendar date as seen in t's location.
// The result is midnight UTC so dates compare and round-trip through DATE columns.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the calendar date n days after day.
func AddDays(day time.Time, n int) time.Time {
	return DateOf(day).AddDate(0, 0, n)
}

// cardStateJSON is the on-disk shape of a state document. Optional fields are
// pointers so that absent keys can be told apart from zero values.
type cardStateJSON struct {
	Interval     int      `json:"interval"`
	Ease         *float64 `json:"ease"`
	Due          string   `json:"due"`
	Reps         int      `json:"reps"`
	Lapses       int      `json:"lapses"`
	LastReviewed *string  `json:"last_reviewed"`
	LearningStep *int     `json:"learning_step"`
}

// MarshalJSON writes dates as YYYY-MM-DD.
func (s CardState) MarshalJSON() ([]byte, error) {
	ease := s.Ease
	step := s.LearningStep
	out := cardStateJSON{
		Interval:     s.Interval,
		Ease:         &ease,
		Due:          s.Due.Format(DateLayout),
		Reps:         s.Reps,
		Lapses:       s.Lapses,
		LearningStep: &step,
	}
	if s.LastReviewed != nil {
		lr := s.LastReviewed.Format(DateLayout)
		out.LastReviewed = &lr
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads a state document. Older documents may lack
// learning_step (decoded as 0) or ease (decoded as the default ease).
// Unknown keys such as transient requeue flags are ignored.
func (s *CardState) UnmarshalJSON(data []byte) error {
	var in cardStateJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	if in.Interval < 0 {
		return NewValidationError("interval", "must be >= 0")
	}

	due, err := time.Parse(DateLayout, in.Due)
	if err != nil {
		return fmt.Errorf("due %q: %w", in.Due, ErrValidation)
	}

	out := CardState{
		Interval: in.Interval,
		Ease:     DefaultEaseFactor,
		Due:      due,
		Reps:     in.Reps,
		Lapses:   in.Lapses,
	}
	if in.Ease != nil {
		out.Ease = max(MinEaseFactor, *in.Ease)
	}
	if in.LearningStep != nil && in.Interval == 0 {
		out.LearningStep = *in.LearningStep
	}
	if in.LastReviewed != nil && *in.LastReviewed != "" {
		lr, err := time.Parse(DateLayout, *in.LastReviewed)
		if err != nil {
			return fmt.Errorf("last_reviewed %q: %w", *in.LastReviewed, ErrValidation)
		}
		out.LastReviewed = &lr
	}

	*s = out
	return nil
}

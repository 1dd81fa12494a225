package study

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/heartmarshall/recall/internal/domain"
)

const (
	maxDeckLength = 100
	maxSideLength = 2000
	maxPractice   = 1000
)

func validateDeck(deck string, errs []domain.FieldError) []domain.FieldError {
	switch {
	case strings.TrimSpace(deck) == "":
		errs = append(errs, domain.FieldError{Field: "deck", Message: "required"})
	case utf8.RuneCountInString(deck) > maxDeckLength:
		errs = append(errs, domain.FieldError{Field: "deck", Message: "too long (max 100)"})
	}
	return errs
}

// AddCardInput holds the parameters for adding a card to a deck.
type AddCardInput struct {
	Deck  string
	Front string
	Back  string
}

// Normalize trims surrounding whitespace from every field.
func (i *AddCardInput) Normalize() {
	i.Deck = strings.TrimSpace(i.Deck)
	i.Front = strings.TrimSpace(i.Front)
	i.Back = strings.TrimSpace(i.Back)
}

// Validate checks all fields and collects all errors.
func (i *AddCardInput) Validate() error {
	var errs []domain.FieldError

	errs = validateDeck(i.Deck, errs)
	if i.Front == "" {
		errs = append(errs, domain.FieldError{Field: "front", Message: "required"})
	} else if utf8.RuneCountInString(i.Front) > maxSideLength {
		errs = append(errs, domain.FieldError{Field: "front", Message: "too long (max 2000)"})
	}
	if i.Back == "" {
		errs = append(errs, domain.FieldError{Field: "back", Message: "required"})
	} else if utf8.RuneCountInString(i.Back) > maxSideLength {
		errs = append(errs, domain.FieldError{Field: "back", Message: "too long (max 2000)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// StartReviewInput holds the parameters for a due-card session.
type StartReviewInput struct {
	Deck string
}

// Validate checks all fields and collects all errors.
func (i *StartReviewInput) Validate() error {
	errs := validateDeck(i.Deck, nil)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// StartPracticeInput holds the parameters for a practice session.
// Limit 0 means the whole deck.
type StartPracticeInput struct {
	Deck  string
	Limit int
}

// Validate checks all fields and collects all errors.
func (i *StartPracticeInput) Validate() error {
	errs := validateDeck(i.Deck, nil)

	if i.Limit < 0 || i.Limit > maxPractice {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 1000"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// AnswerInput is the grade for the card in flight. Correct and Elapsed are
// recorded in the review log only; they never influence scheduling.
type AnswerInput struct {
	Grade   domain.ReviewGrade
	Correct *bool
	Elapsed time.Duration
}

// Validate checks all fields and collects all errors.
func (i *AnswerInput) Validate() error {
	var errs []domain.FieldError

	if !i.Grade.IsValid() {
		errs = append(errs, domain.FieldError{Field: "grade", Message: "must be AGAIN, HARD, GOOD, or EASY"})
	}
	if i.Elapsed < 0 {
		errs = append(errs, domain.FieldError{Field: "elapsed", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// elapsedMs returns nil when no response time was measured.
func (i *AnswerInput) elapsedMs() *int {
	if i.Elapsed <= 0 {
		return nil
	}
	ms := int(i.Elapsed.Milliseconds())
	return &ms
}

package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SRSConfig holds the scheduling parameters (pure domain type).
type SRSConfig struct {
	// LearningSteps are the learning-phase steps. Only their count drives
	// scheduling; the durations are display labels.
	LearningSteps        []time.Duration
	DefaultEaseFactor    float64
	MinEaseFactor        float64
	EaseStep             float64
	HardIntervalModifier float64
	EasyBonus            float64
	GraduatingInterval   int
	EasyInterval         int
}

// DefaultSRSConfig returns the reference parameters: two learning steps
// (1m, 10m), ease 2.5 floored at 1.3, Hard ×0.85, Easy ×1.3.
func DefaultSRSConfig() SRSConfig {
	return SRSConfig{
		LearningSteps:        []time.Duration{time.Minute, 10 * time.Minute},
		DefaultEaseFactor:    DefaultEaseFactor,
		MinEaseFactor:        MinEaseFactor,
		EaseStep:             0.15,
		HardIntervalModifier: 0.85,
		EasyBonus:            1.3,
		GraduatingInterval:   1,
		EasyInterval:         4,
	}
}

// Validate rejects configurations the scheduler cannot run with.
func (c SRSConfig) Validate() error {
	if len(c.LearningSteps) == 0 {
		return fmt.Errorf("learning steps must not be empty: %w", ErrInvalidConfig)
	}
	if c.MinEaseFactor <= 0 {
		return fmt.Errorf("min ease factor must be > 0 (got %v): %w", c.MinEaseFactor, ErrInvalidConfig)
	}
	if c.DefaultEaseFactor < c.MinEaseFactor {
		return fmt.Errorf("default ease factor %v below minimum %v: %w", c.DefaultEaseFactor, c.MinEaseFactor, ErrInvalidConfig)
	}
	if c.GraduatingInterval < 1 || c.EasyInterval < 1 {
		return fmt.Errorf("graduating and easy intervals must be >= 1: %w", ErrInvalidConfig)
	}
	if c.HardIntervalModifier <= 0 || c.EasyBonus <= 0 {
		return fmt.Errorf("interval modifiers must be > 0: %w", ErrInvalidConfig)
	}
	return nil
}

// QueueEntry is one card carried through a session.
type QueueEntry struct {
	CardID string
	Front  string
	Back   string
}

// ReviewLog records a single grading event.
type ReviewLog struct {
	ID         uuid.UUID
	CardID     string
	SessionID  uuid.UUID
	Grade      ReviewGrade
	Correct    *bool
	ElapsedMs  *int
	ReviewedOn time.Time
}

// GradeCounts holds per-grade counters for a study session.
type GradeCounts struct {
	Again int
	Hard  int
	Good  int
	Easy  int
}

// Add increments the counter for grade.
func (c *GradeCounts) Add(grade ReviewGrade) {
	switch grade {
	case ReviewGradeAgain:
		c.Again++
	case ReviewGradeHard:
		c.Hard++
	case ReviewGradeGood:
		c.Good++
	case ReviewGradeEasy:
		c.Easy++
	}
}

// SessionSummary is reported when a session terminates or is aborted.
type SessionSummary struct {
	SessionID   uuid.UUID
	Mode        SessionMode
	UniqueCards int
	TotalDraws  int
	Correct     int
	Incorrect   int
	Graduated   int
	Remaining   int
	Grades      GradeCounts
	Aborted     bool
}

// Accuracy returns the share of correct answers in percent, or nil when no
// answer was judged.
func (s SessionSummary) Accuracy() *float64 {
	judged := s.Correct + s.Incorrect
	if judged == 0 {
		return nil
	}
	acc := float64(s.Correct) / float64(judged) * 100
	return &acc
}

// ReviewCounts holds aggregated review-log counts computed in SQL.
type ReviewCounts struct {
	Total  int
	Passed int
}

// DeckStats holds aggregated statistics for a deck. ReviewsToday counts cards
// last reviewed today; GradingsToday counts every logged grading today.
type DeckStats struct {
	Deck          string
	TotalCards    int
	New           int
	Learning      int
	Review        int
	DueToday      int
	ReviewsToday  int
	GradingsToday int
	Accuracy7d    *float64
	Accuracy30d   *float64
}

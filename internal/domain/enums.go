package domain

import (
	"fmt"
	"strings"
)

// ReviewGrade represents the self-assessed (or suggested) recall quality.
type ReviewGrade string

const (
	ReviewGradeAgain ReviewGrade = "AGAIN"
	ReviewGradeHard  ReviewGrade = "HARD"
	ReviewGradeGood  ReviewGrade = "GOOD"
	ReviewGradeEasy  ReviewGrade = "EASY"
)

func (g ReviewGrade) String() string { return string(g) }

func (g ReviewGrade) IsValid() bool {
	switch g {
	case ReviewGradeAgain, ReviewGradeHard, ReviewGradeGood, ReviewGradeEasy:
		return true
	}
	return false
}

// Ordinal returns 1 (Again) through 4 (Easy), or 0 for an invalid grade.
func (g ReviewGrade) Ordinal() int {
	switch g {
	case ReviewGradeAgain:
		return 1
	case ReviewGradeHard:
		return 2
	case ReviewGradeGood:
		return 3
	case ReviewGradeEasy:
		return 4
	}
	return 0
}

// IsPass reports whether the grade counts as a successful recall (Good or Easy).
func (g ReviewGrade) IsPass() bool {
	return g == ReviewGradeGood || g == ReviewGradeEasy
}

// ParseReviewGrade accepts the ordinal ("1".."4") or the grade name in any case.
func ParseReviewGrade(s string) (ReviewGrade, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "1", "AGAIN":
		return ReviewGradeAgain, nil
	case "2", "HARD":
		return ReviewGradeHard, nil
	case "3", "GOOD":
		return ReviewGradeGood, nil
	case "4", "EASY":
		return ReviewGradeEasy, nil
	}
	return "", fmt.Errorf("grade %q: %w", s, ErrValidation)
}

// Requeue tells the session orchestrator whether and where a just-graded card
// goes back into the current session. It is never persisted.
type Requeue int

const (
	RequeueNone Requeue = iota
	RequeueImmediate
	RequeueDelayed
)

func (r Requeue) String() string {
	switch r {
	case RequeueNone:
		return "NONE"
	case RequeueImmediate:
		return "IMMEDIATE"
	case RequeueDelayed:
		return "DELAYED"
	}
	return fmt.Sprintf("Requeue(%d)", int(r))
}

// SessionMode selects how a session's initial queue is built.
type SessionMode string

const (
	SessionModeReview   SessionMode = "REVIEW"
	SessionModePractice SessionMode = "PRACTICE"
)

func (m SessionMode) String() string { return string(m) }

func (m SessionMode) IsValid() bool {
	switch m {
	case SessionModeReview, SessionModePractice:
		return true
	}
	return false
}

package study

import (
	"fmt"
	"math"
	"time"

	"github.com/heartmarshall/recall/internal/domain"
)

// SRSInput holds all data needed for SRS calculation. Pure value, no side effects.
type SRSInput struct {
	State  domain.CardState
	Grade  domain.ReviewGrade
	Today  time.Time
	Config domain.SRSConfig
}

// SRSOutput is the result of SRS calculation. Requeue is an instruction for
// the running session only and is never persisted with State.
type SRSOutput struct {
	State   domain.CardState
	Requeue domain.Requeue
}

// Graduated reports whether this transition moved the card from the learning
// phase to the review phase.
func (o SRSOutput) Graduated(prev domain.CardState) bool {
	return prev.IsLearning() && !o.State.IsLearning()
}

// CalculateSRS is a pure function. No DB, no context, no logger, no clock.
// An invalid grade is treated as Good; callers validate grades at the boundary.
func CalculateSRS(input SRSInput) SRSOutput {
	today := domain.DateOf(input.Today)

	next := input.State
	next.Reps++
	next.LastReviewed = &today

	if input.Grade == domain.ReviewGradeAgain {
		return lapse(next, today)
	}

	if input.State.IsLearning() {
		return calculateLearning(input, next, today)
	}
	return calculateReview(input, next, today)
}

// lapse sends the card back to the first learning step, from either phase.
func lapse(next domain.CardState, today time.Time) SRSOutput {
	next.Lapses++
	next.Interval = 0
	next.LearningStep = 0
	next.Due = today
	return SRSOutput{State: next, Requeue: domain.RequeueImmediate}
}

func calculateLearning(input SRSInput, next domain.CardState, today time.Time) SRSOutput {
	switch input.Grade {
	case domain.ReviewGradeHard:
		// Repeat current step, later in the session.
		next.Due = today
		return SRSOutput{State: next, Requeue: domain.RequeueDelayed}

	case domain.ReviewGradeEasy:
		return graduate(next, today, input.Config.EasyInterval)

	default:
		// GOOD: next step or graduate
		next.LearningStep++
		if next.LearningStep >= len(input.Config.LearningSteps) {
			return graduate(next, today, input.Config.GraduatingInterval)
		}
		next.Due = today
		return SRSOutput{State: next, Requeue: domain.RequeueDelayed}
	}
}

func calculateReview(input SRSInput, next domain.CardState, today time.Time) SRSOutput {
	cfg := input.Config
	interval := float64(input.State.Interval)

	switch input.Grade {
	case domain.ReviewGradeHard:
		next.Interval = floorDays(interval * cfg.HardIntervalModifier)
		next.Ease = math.Max(cfg.MinEaseFactor, input.State.Ease-cfg.EaseStep)

	case domain.ReviewGradeEasy:
		next.Interval = floorDays(interval * input.State.Ease * cfg.EasyBonus)
		next.Ease = input.State.Ease + cfg.EaseStep

	default:
		next.Interval = floorDays(interval * input.State.Ease)
	}

	next.LearningStep = 0
	next.Due = domain.AddDays(today, next.Interval)
	return SRSOutput{State: next, Requeue: domain.RequeueNone}
}

func graduate(next domain.CardState, today time.Time, intervalDays int) SRSOutput {
	next.Interval = intervalDays
	next.LearningStep = 0
	next.Due = domain.AddDays(today, intervalDays)
	return SRSOutput{State: next, Requeue: domain.RequeueNone}
}

// floorDays truncates a computed interval to whole days, never below one.
func floorDays(days float64) int {
	return max(1, int(math.Floor(days)))
}

// SuggestGrade offers a default grade from correctness and response time:
// fast correct answers were easy, slow ones felt hard. It is advisory only.
func SuggestGrade(correct bool, elapsed, easyBefore, hardAfter time.Duration) domain.ReviewGrade {
	if !correct {
		return domain.ReviewGradeAgain
	}
	switch {
	case elapsed < easyBefore:
		return domain.ReviewGradeEasy
	case elapsed < hardAfter:
		return domain.ReviewGradeGood
	default:
		return domain.ReviewGradeHard
	}
}

// StepLabel returns a human-readable phase label such as "Learning (10m)".
// Labels are cosmetic: no elapsed time is enforced between steps.
func StepLabel(state domain.CardState, cfg domain.SRSConfig) string {
	if !state.IsLearning() {
		return "Review"
	}
	if state.LearningStep >= len(cfg.LearningSteps) {
		return "Graduating"
	}

	step := cfg.LearningSteps[state.LearningStep]
	if step < time.Hour {
		return fmt.Sprintf("Learning (%dm)", int(step.Minutes()))
	}
	return fmt.Sprintf("Learning (%.0fh)", step.Hours())
}

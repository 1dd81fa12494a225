package study

import (
	"sort"

	"github.com/heartmarshall/recall/internal/domain"
)

// newCardDifficulty is the score of a card that has never been graded.
const newCardDifficulty = 1.0

// DifficultyScore estimates how hard a card is for the learner. Repeated
// lapses weigh most, then a low ease factor, then many reps at low ease.
func DifficultyScore(state *domain.CardState) float64 {
	if state == nil {
		return newCardDifficulty
	}

	score := float64(state.Lapses)*10 + (domain.DefaultEaseFactor-state.Ease)*5
	if state.Ease < 2.3 {
		score += float64(state.Reps) * 0.1
	}
	return score
}

// RankByDifficulty returns entries ordered hardest first. Entries with equal
// scores keep their input order. Cards missing from states are scored as new.
func RankByDifficulty(entries []domain.QueueEntry, states map[string]domain.CardState) []domain.QueueEntry {
	type scored struct {
		entry domain.QueueEntry
		score float64
	}

	items := make([]scored, len(entries))
	for i, e := range entries {
		var st *domain.CardState
		if s, ok := states[e.CardID]; ok {
			st = &s
		}
		items[i] = scored{entry: e, score: DifficultyScore(st)}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].score > items[j].score
	})

	ranked := make([]domain.QueueEntry, len(items))
	for i, it := range items {
		ranked[i] = it.entry
	}
	return ranked
}

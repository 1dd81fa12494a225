package study

import (
	"fmt"

	"github.com/heartmarshall/recall/internal/domain"
)

// Tier identifies one of the three session queues. Lower tiers are drawn first.
type Tier int

const (
	TierImmediate Tier = iota
	TierMain
	TierDelayed

	tierCount
)

func (t Tier) String() string {
	switch t {
	case TierImmediate:
		return "IMMEDIATE"
	case TierMain:
		return "MAIN"
	case TierDelayed:
		return "DELAYED"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}

// ReviewQueue holds the three FIFO tiers of a session. A card ID is present in
// at most one tier at a time.
type ReviewQueue struct {
	tiers [tierCount][]domain.QueueEntry
	where map[string]Tier
}

// NewReviewQueue seeds the Main tier with entries in order. Repeated card IDs
// are dropped, keeping the first occurrence.
func NewReviewQueue(entries []domain.QueueEntry) *ReviewQueue {
	q := &ReviewQueue{where: make(map[string]Tier, len(entries))}
	for _, e := range entries {
		q.push(TierMain, e)
	}
	return q
}

// Pop removes and returns the front entry of the highest-priority non-empty tier.
func (q *ReviewQueue) Pop() (domain.QueueEntry, Tier, bool) {
	for t := TierImmediate; t < tierCount; t++ {
		if len(q.tiers[t]) == 0 {
			continue
		}
		e := q.tiers[t][0]
		q.tiers[t][0] = domain.QueueEntry{}
		q.tiers[t] = q.tiers[t][1:]
		delete(q.where, e.CardID)
		return e, t, true
	}
	return domain.QueueEntry{}, 0, false
}

// Requeue appends the entry to the tier named by r. RequeueNone resolves the
// card for the session. It reports false when the card is already queued.
func (q *ReviewQueue) Requeue(e domain.QueueEntry, r domain.Requeue) bool {
	switch r {
	case domain.RequeueImmediate:
		return q.push(TierImmediate, e)
	case domain.RequeueDelayed:
		return q.push(TierDelayed, e)
	default:
		return true
	}
}

// unpop returns a popped entry to the front of its tier.
func (q *ReviewQueue) unpop(t Tier, e domain.QueueEntry) {
	q.tiers[t] = append([]domain.QueueEntry{e}, q.tiers[t]...)
	q.where[e.CardID] = t
}

func (q *ReviewQueue) push(t Tier, e domain.QueueEntry) bool {
	if _, ok := q.where[e.CardID]; ok {
		return false
	}
	q.tiers[t] = append(q.tiers[t], e)
	q.where[e.CardID] = t
	return true
}

// Len returns the number of queued entries across all tiers.
func (q *ReviewQueue) Len() int {
	return len(q.where)
}

// TierLen returns the number of entries in one tier.
func (q *ReviewQueue) TierLen(t Tier) int {
	if t < 0 || t >= tierCount {
		return 0
	}
	return len(q.tiers[t])
}

// Lookup reports which tier holds the card, if any.
func (q *ReviewQueue) Lookup(cardID string) (Tier, bool) {
	t, ok := q.where[cardID]
	return t, ok
}

package types

import (
	"github.com/giftcraft/authentiq/internal/database/types/enum"
)

// ReviewQueueFilter narrows a queue listing. Nil fields match everything, so
// filters combine freely.
type ReviewQueueFilter struct {
	Category  string
	RiskLevel *enum.RiskLevel
	Decision  *enum.AdminDecision
}

// AnnotatedEntry pairs a review entry with its derived priority score.
// The score is computed at read time and never stored.
type AnnotatedEntry struct {
	*ReviewEntry

	PriorityScore float64 `json:"priorityScore"`
}

package convert

import (
	"github.com/giftcraft/authentiq/internal/database/types"
	restTypes "github.com/giftcraft/authentiq/internal/rest/types"
)

// QueueEntry converts an annotated review entry to its REST representation.
func QueueEntry(entry *types.AnnotatedEntry) restTypes.QueueEntry {
	return restTypes.QueueEntry{
		ID:                   entry.ID,
		ImageID:              entry.ImageID,
		ImageType:            entry.ImageType.String(),
		Category:             entry.Category,
		RiskLevel:            entry.RiskLevel.String(),
		AuthenticityScore:    entry.AuthenticityScore,
		SimilarityMatchCount: entry.SimilarityMatchCount,
		FlaggedReasons:       entry.FlaggedReasons,
		EvaluationDetails:    entry.EvaluationDetails,
		AdminDecision:        entry.AdminDecision.String(),
		PriorityScore:        entry.PriorityScore,
		FlaggedAt:            entry.FlaggedAt,
	}
}

// HistoryRecord converts an audit record to its REST representation.
func HistoryRecord(record *types.DecisionRecord) restTypes.HistoryRecord {
	return restTypes.HistoryRecord{
		ID:                  record.ID,
		EntryID:             record.EntryID,
		OldDecision:         record.OldDecision.String(),
		NewDecision:         record.NewDecision.String(),
		Reasoning:           record.Reasoning,
		AdminFeedback:       record.AdminFeedback,
		PerformedBy:         record.PerformedBy,
		ReviewTimeSeconds:   record.ReviewTimeSeconds,
		WasCorrectlyFlagged: record.WasCorrectlyFlagged,
		Timestamp:           record.Timestamp,
	}
}

// CategoryStat converts a daily bucket to its REST representation.
func CategoryStat(stat *types.CategoryStat) restTypes.CategoryStatEntry {
	return restTypes.CategoryStatEntry{
		Category:           stat.Category,
		Date:               stat.Date,
		TotalFlagged:       stat.TotalFlagged,
		FalsePositiveCount: stat.FalsePositiveCount,
		AverageScore:       stat.AverageScore,
		FalsePositiveRate:  stat.FalsePositiveRate(),
	}
}

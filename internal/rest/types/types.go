package types

import (
	"time"

	"github.com/giftcraft/authentiq/internal/database/types"
	"github.com/giftcraft/authentiq/internal/database/types/enum"
)

// FlagResponse reports what a flag ingestion did.
type FlagResponse struct {
	// Status is "queued" when a new entry was created, "merged" when an open
	// entry absorbed the flag, and "skipped" when no review was needed.
	Status  string `json:"status"`
	EntryID int64  `json:"entryId,omitempty"`
}

// QueueEntry is one review queue item as served to admins.
type QueueEntry struct {
	ID                   int64                   `json:"id"`
	ImageID              int64                   `json:"imageId"`
	ImageType            string                  `json:"imageType"`
	Category             string                  `json:"category"`
	RiskLevel            string                  `json:"riskLevel"`
	AuthenticityScore    float64                 `json:"authenticityScore"`
	SimilarityMatchCount int                     `json:"similarityMatchCount"`
	FlaggedReasons       types.FlagReasons       `json:"flaggedReasons"`
	EvaluationDetails    types.EvaluationDetails `json:"evaluationDetails"`
	AdminDecision        string                  `json:"adminDecision"`
	PriorityScore        float64                 `json:"priorityScore"`
	FlaggedAt            time.Time               `json:"flaggedAt"`
}

// QueueResponse is one page of the review queue.
type QueueResponse struct {
	Entries []QueueEntry `json:"entries"`
	Total   int          `json:"total"`
	Page    int          `json:"page"`
	Limit   int          `json:"limit"`
}

// DecisionResponse reports a processed decision.
type DecisionResponse struct {
	EntryID  int64     `json:"entryId"`
	Decision string    `json:"decision"`
	RecordID int64     `json:"recordId"`
	Time     time.Time `json:"time"`
}

// HistoryRecord is one audit trail item.
type HistoryRecord struct {
	ID                  int64     `json:"id"`
	EntryID             int64     `json:"entryId"`
	OldDecision         string    `json:"oldDecision"`
	NewDecision         string    `json:"newDecision"`
	Reasoning           string    `json:"reasoning,omitempty"`
	AdminFeedback       string    `json:"adminFeedback,omitempty"`
	PerformedBy         int64     `json:"performedBy"`
	ReviewTimeSeconds   int64     `json:"reviewTimeSeconds,omitempty"`
	WasCorrectlyFlagged *bool     `json:"wasCorrectlyFlagged,omitempty"`
	Timestamp           time.Time `json:"timestamp"`
}

// HistoryResponse is the full audit trail for one image.
type HistoryResponse struct {
	ImageID int64           `json:"imageId"`
	Records []HistoryRecord `json:"records"`
}

// CategoryStatEntry is one per-category daily bucket with its derived rate.
type CategoryStatEntry struct {
	Category           string    `json:"category"`
	Date               time.Time `json:"date"`
	TotalFlagged       int64     `json:"totalFlagged"`
	FalsePositiveCount int64     `json:"falsePositiveCount"`
	AverageScore       float64   `json:"averageScore"`
	FalsePositiveRate  float64   `json:"falsePositiveRate"`
}

// ThresholdsPayload carries review thresholds over the API.
type ThresholdsPayload struct {
	ScoreThreshold      float64  `json:"scoreThreshold"`
	ReviewRiskLevels    []string `json:"reviewRiskLevels"`
	MatchCountThreshold int      `json:"matchCountThreshold"`
}

// ToThresholds converts the payload into the stored form.
func (p *ThresholdsPayload) ToThresholds() (*types.ReviewThresholds, error) {
	levels := make([]enum.RiskLevel, len(p.ReviewRiskLevels))

	for i, name := range p.ReviewRiskLevels {
		level, err := enum.RiskLevelString(name)
		if err != nil {
			return nil, err
		}

		levels[i] = level
	}

	return &types.ReviewThresholds{
		ScoreThreshold:      p.ScoreThreshold,
		ReviewRiskLevels:    levels,
		MatchCountThreshold: p.MatchCountThreshold,
	}, nil
}

// FromThresholds converts the stored form into the API payload.
func FromThresholds(t *types.ReviewThresholds) ThresholdsPayload {
	levels := make([]string, len(t.ReviewRiskLevels))
	for i, level := range t.ReviewRiskLevels {
		levels[i] = level.String()
	}

	return ThresholdsPayload{
		ScoreThreshold:      t.ScoreThreshold,
		ReviewRiskLevels:    levels,
		MatchCountThreshold: t.MatchCountThreshold,
	}
}

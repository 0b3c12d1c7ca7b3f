package types

import (
	"errors"
	"time"

	"github.com/giftcraft/authentiq/internal/database/types/enum"
)

var ErrSettingNotFound = errors.New("setting not found")

// Setting keys for the authenticity pipeline.
const (
	SettingKeyReviewThresholds = "review_thresholds"
	SettingKeyReviewAccess     = "review_access"
)

// Setting is one row of the key/value settings table. Values are JSON-encoded
// typed payloads. Settings are read fresh on every ingestion and authorization
// check so edits apply immediately; nothing here is cached process-wide.
type Setting struct {
	Key       string    `bun:",pk"      json:"key"`
	Value     []byte    `bun:",notnull" json:"value"`
	UpdatedAt time.Time `bun:",notnull" json:"updatedAt"`
}

// ReviewThresholds controls when an ingested flag requires human review.
// These are operator-tunable defaults, not verified classifier tuning.
type ReviewThresholds struct {
	// Scores at or below this value always queue for review.
	ScoreThreshold float64 `json:"scoreThreshold"`
	// Risk levels that queue for review regardless of score.
	ReviewRiskLevels []enum.RiskLevel `json:"reviewRiskLevels"`
	// Similarity match count that queues for review on its own.
	MatchCountThreshold int `json:"matchCountThreshold"`
}

// DefaultReviewThresholds returns the thresholds used until an operator edits them.
func DefaultReviewThresholds() *ReviewThresholds {
	return &ReviewThresholds{
		ScoreThreshold:      40,
		ReviewRiskLevels:    []enum.RiskLevel{enum.RiskLevelSuspicious, enum.RiskLevelHighlySuspicious},
		MatchCountThreshold: 3,
	}
}

// RequiresReview applies the thresholds to a candidate image's classifier output.
func (t *ReviewThresholds) RequiresReview(risk enum.RiskLevel, score float64, matchCount int) bool {
	for _, level := range t.ReviewRiskLevels {
		if risk == level {
			return true
		}
	}

	if score <= t.ScoreThreshold {
		return true
	}

	return t.MatchCountThreshold > 0 && matchCount >= t.MatchCountThreshold
}

// ReviewAccess lists the admins allowed to operate the review queue.
type ReviewAccess struct {
	AdminIDs []int64 `json:"adminIds"`
}

// IsAdmin checks membership in the admin list.
func (a *ReviewAccess) IsAdmin(adminID int64) bool {
	for _, id := range a.AdminIDs {
		if id == adminID {
			return true
		}
	}

	return false
}

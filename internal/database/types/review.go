package types

import (
	"errors"
	"fmt"
	"time"

	"github.com/giftcraft/authentiq/internal/database/types/enum"
	"github.com/google/uuid"
)

var (
	ErrEntryNotFound   = errors.New("review entry not found")
	ErrAlreadyReviewed = errors.New("review entry already closed")
	ErrNotAuthorized   = errors.New("admin is not authorized to review")
)

// FlagReason describes one signal that contributed to an image being flagged.
type FlagReason struct {
	Message    string   `json:"message"`    // Human-readable explanation of the signal
	Confidence float64  `json:"confidence"` // Classifier confidence for this signal
	Evidence   []string `json:"evidence"`   // Supporting references (matched image IDs, hash distances)
}

// FlagReasons maps reason types to their details. Stored as jsonb on the entry.
type FlagReasons map[enum.FlagReasonType]*FlagReason

// Add adds or replaces the reason for the given type.
func (r FlagReasons) Add(reasonType enum.FlagReasonType, reason *FlagReason) {
	r[reasonType] = reason
}

// Merge folds another reason into the map without creating duplicates.
// An existing reason of the same type keeps the higher confidence and the
// union of evidence; repeated ingestion of the same flag is a no-op.
func (r FlagReasons) Merge(reasonType enum.FlagReasonType, reason *FlagReason) {
	existing, ok := r[reasonType]
	if !ok {
		r[reasonType] = reason
		return
	}

	if reason.Confidence > existing.Confidence {
		existing.Message = reason.Message
		existing.Confidence = reason.Confidence
	}

	seen := make(map[string]struct{}, len(existing.Evidence))
	for _, e := range existing.Evidence {
		seen[e] = struct{}{}
	}

	for _, e := range reason.Evidence {
		if _, dup := seen[e]; !dup {
			existing.Evidence = append(existing.Evidence, e)
		}
	}
}

// MergeAll folds a whole reason map into this one.
func (r FlagReasons) MergeAll(other FlagReasons) {
	for reasonType, reason := range other {
		r.Merge(reasonType, reason)
	}
}

// Types returns the string names of all reason types present.
func (r FlagReasons) Types() []string {
	names := make([]string, 0, len(r))
	for reasonType := range r {
		names = append(names, reasonType.String())
	}

	return names
}

// Validate checks every reason in the map.
func (r FlagReasons) Validate() error {
	if len(r) == 0 {
		return fmt.Errorf("%w: at least one flagged reason is required", ErrInvalidFlag)
	}

	for reasonType, reason := range r {
		if !reasonType.IsAFlagReasonType() {
			return fmt.Errorf("%w: unknown flag reason type %d", ErrInvalidFlag, reasonType)
		}

		if reason == nil || reason.Message == "" {
			return fmt.Errorf("%w: flag reason %s has no message", ErrInvalidFlag, reasonType)
		}

		if reason.Confidence < 0 || reason.Confidence > 1 {
			return fmt.Errorf("%w: flag reason %s confidence %f not in [0,1]",
				ErrInvalidFlag, reasonType, reason.Confidence)
		}
	}

	return nil
}

// EvaluationDetails carries the classifier's structured evaluation output
// captured at flag time. Never free text.
type EvaluationDetails struct {
	ModelVersion string             `json:"modelVersion"`
	SignalScores map[string]float64 `json:"signalScores,omitempty"`
	Summary      string             `json:"summary,omitempty"`
}

// ReviewEntry is one queued human-review task referencing a candidate image.
// At most one entry per (image_id, image_type) may be pending at any time;
// a resubmission after a reupload request creates a new entry, never reopens
// a closed one.
type ReviewEntry struct {
	ID                   int64              `bun:",pk,autoincrement"  json:"id"`
	UUID                 uuid.UUID          `bun:",notnull,unique"    json:"uuid"`
	ImageID              int64              `bun:",notnull"           json:"imageId"`
	ImageType            enum.ImageType     `bun:",notnull"           json:"imageType"`
	Category             string             `bun:",notnull"           json:"category"`
	FlaggedReasons       FlagReasons        `bun:",type:jsonb"        json:"flaggedReasons"`
	EvaluationDetails    EvaluationDetails  `bun:",type:jsonb"        json:"evaluationDetails"`
	RiskLevel            enum.RiskLevel     `bun:",notnull"           json:"riskLevel"`
	AuthenticityScore    float64            `bun:",notnull"           json:"authenticityScore"`
	SimilarityMatchCount int                `bun:",notnull,default:0" json:"similarityMatchCount"`
	AdminDecision        enum.AdminDecision `bun:",notnull"           json:"adminDecision"`
	ReviewedBy           int64              `bun:",nullzero"          json:"reviewedBy,omitempty"`
	ReviewedAt           time.Time          `bun:",nullzero"          json:"reviewedAt,omitempty"`
	FlaggedAt            time.Time          `bun:",notnull"           json:"flaggedAt"`
}

// Risk weights used by the priority score.
const (
	riskWeightHighlySuspicious = 50
	riskWeightSuspicious       = 30
	riskWeightLowConcern       = 10

	scoreDeficitFactor = 0.3
	matchWeight        = 10
	waitWeightPerHour  = 2
	maxWaitBoost       = 50
)

// RiskWeight returns the base priority contribution of a risk level.
func RiskWeight(level enum.RiskLevel) float64 {
	switch level {
	case enum.RiskLevelHighlySuspicious:
		return riskWeightHighlySuspicious
	case enum.RiskLevelSuspicious:
		return riskWeightSuspicious
	case enum.RiskLevelLowConcern:
		return riskWeightLowConcern
	case enum.RiskLevelClean:
		return 0
	default:
		return 0
	}
}

// PriorityAt computes the entry's queue priority at the given instant.
// The score is derived on every read and never persisted, so wait time is
// always current. Monotonically non-decreasing in match count and wait time.
func (e *ReviewEntry) PriorityAt(now time.Time) float64 {
	priority := RiskWeight(e.RiskLevel)
	priority += (100 - e.AuthenticityScore) * scoreDeficitFactor
	priority += float64(e.SimilarityMatchCount) * matchWeight

	waitBoost := now.Sub(e.FlaggedAt).Hours() * waitWeightPerHour
	if waitBoost < 0 {
		waitBoost = 0
	}

	priority += min(waitBoost, maxWaitBoost)

	return priority
}

package types

import (
	"errors"
	"fmt"
	"time"

	"github.com/giftcraft/authentiq/internal/database/types/enum"
)

var (
	ErrImageNotFound = errors.New("candidate image not found")
	ErrInvalidFlag   = errors.New("invalid flag payload")
)

// SimilarityMatch records one classifier-reported match against another image.
type SimilarityMatch struct {
	TargetImageID int64            `json:"targetImageId"`
	Score         float64          `json:"score"`
	Method        enum.MatchMethod `json:"method"`
}

// Validate checks that a similarity match is structurally sound.
func (m SimilarityMatch) Validate() error {
	if m.TargetImageID <= 0 {
		return fmt.Errorf("%w: similarity match target image ID must be positive", ErrInvalidFlag)
	}

	if m.Score < 0 || m.Score > 100 {
		return fmt.Errorf("%w: similarity match score %f not in [0,100]", ErrInvalidFlag, m.Score)
	}

	if !m.Method.IsAMatchMethod() {
		return fmt.Errorf("%w: unknown match method %d", ErrInvalidFlag, m.Method)
	}

	return nil
}

// CandidateImage stores the authenticity metadata for one submitted image.
// Identity is the (image_id, image_type) pair; the image bytes themselves live
// behind the opaque storage path and are never touched here.
type CandidateImage struct {
	ImageID            int64                   `bun:",pk"                  json:"imageId"`
	ImageType          enum.ImageType          `bun:",pk"                  json:"imageType"`
	OwnerUserID        int64                   `bun:",notnull"             json:"ownerUserId"`
	TutorialID         int64                   `bun:",nullzero"            json:"tutorialId,omitempty"`
	RequestID          int64                   `bun:",nullzero"            json:"requestId,omitempty"`
	StoragePath        string                  `bun:",notnull"             json:"storagePath"`
	PerceptualHash     string                  `bun:",notnull,default:''"  json:"perceptualHash"`
	AuthenticityScore  float64                 `bun:",notnull"             json:"authenticityScore"`
	RiskLevel          enum.RiskLevel          `bun:",notnull"             json:"riskLevel"`
	SimilarityMatches  []SimilarityMatch       `bun:",type:jsonb"          json:"similarityMatches"`
	VerificationStatus enum.VerificationStatus `bun:",notnull"             json:"verificationStatus"`
	CreatedAt          time.Time               `bun:",notnull"             json:"createdAt"`
	UpdatedAt          time.Time               `bun:",notnull"             json:"updatedAt"`
}

// Validate checks the classifier-supplied fields before any write.
func (c *CandidateImage) Validate() error {
	if c.ImageID <= 0 {
		return fmt.Errorf("%w: image ID must be positive", ErrInvalidFlag)
	}

	if !c.ImageType.IsAImageType() {
		return fmt.Errorf("%w: unknown image type %d", ErrInvalidFlag, c.ImageType)
	}

	if c.OwnerUserID <= 0 {
		return fmt.Errorf("%w: owner user ID must be positive", ErrInvalidFlag)
	}

	if c.StoragePath == "" {
		return fmt.Errorf("%w: storage path is required", ErrInvalidFlag)
	}

	if c.AuthenticityScore < 0 || c.AuthenticityScore > 100 {
		return fmt.Errorf("%w: authenticity score %f not in [0,100]", ErrInvalidFlag, c.AuthenticityScore)
	}

	if !c.RiskLevel.IsARiskLevel() {
		return fmt.Errorf("%w: unknown risk level %d", ErrInvalidFlag, c.RiskLevel)
	}

	for _, match := range c.SimilarityMatches {
		if err := match.Validate(); err != nil {
			return err
		}
	}

	return nil
}

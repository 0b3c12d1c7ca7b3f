package service

import (
	"context"
	"fmt"
	"time"

	"github.com/giftcraft/authentiq/internal/database/dbretry"
	"github.com/giftcraft/authentiq/internal/database/models"
	"github.com/giftcraft/authentiq/internal/database/types"
	"github.com/giftcraft/authentiq/internal/database/types/enum"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// FlagRequest is the classifier's already-computed output for one image.
// The pipeline does no hashing or scoring of its own.
type FlagRequest struct {
	ImageID           int64                   `json:"imageId"`
	ImageType         enum.ImageType          `json:"imageType"`
	OwnerUserID       int64                   `json:"ownerUserId"`
	TutorialID        int64                   `json:"tutorialId,omitempty"`
	RequestID         int64                   `json:"requestId,omitempty"`
	StoragePath       string                  `json:"storagePath"`
	PerceptualHash    string                  `json:"perceptualHash"`
	AuthenticityScore float64                 `json:"authenticityScore"`
	RiskLevel         enum.RiskLevel          `json:"riskLevel"`
	SimilarityMatches []types.SimilarityMatch `json:"similarityMatches"`
	FlaggedReasons    types.FlagReasons       `json:"flaggedReasons"`
	EvaluationDetails types.EvaluationDetails `json:"evaluationDetails"`
	Category          string                  `json:"category,omitempty"`
	Title             string                  `json:"title,omitempty"`
}

// IngestResult reports what one flag ingestion did.
type IngestResult struct {
	Image *types.CandidateImage `json:"image"`
	// Entry is nil when the policy decided no review is needed.
	Entry *types.ReviewEntry `json:"entry,omitempty"`
	// Created is true when a new pending entry was queued, false when an
	// existing pending entry absorbed the flag (or none was needed).
	Created bool `json:"created"`
}

// IngestService turns classifier output into candidate image rows and queued
// review entries.
type IngestService struct {
	db         *bun.DB
	image      *models.ImageModel
	review     *models.ReviewModel
	stats      *models.CategoryStatsModel
	policy     ReviewPolicy
	categories CategoryResolver
	logger     *zap.Logger
}

// NewIngest creates a new ingest service.
func NewIngest(
	db *bun.DB,
	image *models.ImageModel,
	review *models.ReviewModel,
	stats *models.CategoryStatsModel,
	policy ReviewPolicy,
	categories CategoryResolver,
	logger *zap.Logger,
) *IngestService {
	return &IngestService{
		db:         db,
		image:      image,
		review:     review,
		stats:      stats,
		policy:     policy,
		categories: categories,
		logger:     logger.Named("ingest_service"),
	}
}

// Ingest validates and applies one classifier flag. The candidate image is
// upserted; a pending review entry is created when the policy requires one,
// or merged into idempotently when the image is already queued. Re-sending
// the same flag never produces a duplicate entry.
func (s *IngestService) Ingest(ctx context.Context, req *FlagRequest) (*IngestResult, error) {
	image := &types.CandidateImage{
		ImageID:            req.ImageID,
		ImageType:          req.ImageType,
		OwnerUserID:        req.OwnerUserID,
		TutorialID:         req.TutorialID,
		RequestID:          req.RequestID,
		StoragePath:        req.StoragePath,
		PerceptualHash:     req.PerceptualHash,
		AuthenticityScore:  req.AuthenticityScore,
		RiskLevel:          req.RiskLevel,
		SimilarityMatches:  req.SimilarityMatches,
		VerificationStatus: enum.VerificationStatusPending,
	}

	// Reject before any write
	if err := image.Validate(); err != nil {
		return nil, err
	}

	if err := req.FlaggedReasons.Validate(); err != nil {
		return nil, err
	}

	category := req.Category
	if category == "" {
		category = s.categories.Resolve(ctx, req.Title)
	}

	// Thresholds are read fresh on every ingestion; edits apply immediately
	needsReview, err := s.policy.RequiresReview(ctx, req.RiskLevel, req.AuthenticityScore, len(req.SimilarityMatches))
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate review policy: %w", err)
	}

	result := &IngestResult{Image: image}

	err = dbretry.Transaction(ctx, s.db, func(ctx context.Context, tx bun.Tx) error {
		if err := s.image.UpsertWithTx(ctx, tx, image); err != nil {
			return err
		}

		entry, err := s.review.GetPendingByImageTx(ctx, tx, req.ImageID, req.ImageType)
		if err != nil {
			return err
		}

		switch {
		case entry != nil:
			// Merge into the open entry; never queue the same image twice
			entry.FlaggedReasons.MergeAll(req.FlaggedReasons)
			entry.EvaluationDetails = req.EvaluationDetails
			entry.RiskLevel = req.RiskLevel
			entry.AuthenticityScore = req.AuthenticityScore
			entry.SimilarityMatchCount = len(req.SimilarityMatches)

			if err := s.review.MergeFlagsWithTx(ctx, tx, entry); err != nil {
				return err
			}

			result.Entry = entry

		case needsReview:
			entry = &types.ReviewEntry{
				UUID:                 uuid.New(),
				ImageID:              req.ImageID,
				ImageType:            req.ImageType,
				Category:             category,
				FlaggedReasons:       req.FlaggedReasons,
				EvaluationDetails:    req.EvaluationDetails,
				RiskLevel:            req.RiskLevel,
				AuthenticityScore:    req.AuthenticityScore,
				SimilarityMatchCount: len(req.SimilarityMatches),
				AdminDecision:        enum.AdminDecisionPending,
				FlaggedAt:            time.Now(),
			}

			if err := s.review.CreateWithTx(ctx, tx, entry); err != nil {
				return err
			}

			day := entry.FlaggedAt.UTC().Truncate(24 * time.Hour)
			if err := s.stats.RecordFlaggedWithTx(ctx, tx, category, day, req.AuthenticityScore); err != nil {
				return err
			}

			result.Entry = entry
			result.Created = true
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Created {
		s.logger.Info("Queued image for review",
			zap.Int64("imageID", req.ImageID),
			zap.String("imageType", req.ImageType.String()),
			zap.String("category", category),
			zap.String("riskLevel", req.RiskLevel.String()),
			zap.Float64("score", req.AuthenticityScore))
	} else {
		s.logger.Debug("Ingested flag without new entry",
			zap.Int64("imageID", req.ImageID),
			zap.Bool("merged", result.Entry != nil))
	}

	return result, nil
}

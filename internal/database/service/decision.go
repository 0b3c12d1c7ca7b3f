package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/giftcraft/authentiq/internal/database/dbretry"
	"github.com/giftcraft/authentiq/internal/database/models"
	"github.com/giftcraft/authentiq/internal/database/types"
	"github.com/giftcraft/authentiq/internal/database/types/enum"
	"github.com/giftcraft/authentiq/pkg/utils"
	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// batchWorkers bounds concurrent batch item transactions.
const batchWorkers = 4

// notifyTimeout bounds the best-effort owner notification so a slow
// collaborator never delays a committed decision.
const notifyTimeout = 5 * time.Second

// Notifier delivers best-effort owner notifications after a decision commits.
type Notifier interface {
	NotifyDecision(ctx context.Context, notice DecisionNotice) error
}

// DecisionNotice is the payload handed to the notifier.
type DecisionNotice struct {
	OwnerUserID int64              `json:"ownerUserId"`
	EntryID     int64              `json:"entryId"`
	ImageID     int64              `json:"imageId"`
	Decision    enum.AdminDecision `json:"decision"`
}

// DecisionRequest is one admin verdict on a pending entry.
type DecisionRequest struct {
	EntryID               int64              `json:"entryId"`
	Decision              enum.AdminDecision `json:"decision"`
	AdminID               int64              `json:"adminId"`
	Notes                 string             `json:"notes,omitempty"`
	Reasoning             string             `json:"reasoning,omitempty"`
	ReviewDurationSeconds int64              `json:"reviewDurationSeconds,omitempty"`
	WasCorrectlyFlagged   *bool              `json:"wasCorrectlyFlagged,omitempty"`
}

// Validate rejects malformed verdicts before touching storage.
func (r *DecisionRequest) Validate() error {
	if r.EntryID <= 0 {
		return fmt.Errorf("%w: entry ID must be positive", types.ErrInvalidFlag)
	}

	if !r.Decision.IsAAdminDecision() || !r.Decision.IsTerminal() {
		return fmt.Errorf("%w: decision %d is not a terminal verdict", types.ErrInvalidFlag, r.Decision)
	}

	if r.AdminID <= 0 {
		return fmt.Errorf("%w: admin ID must be positive", types.ErrInvalidFlag)
	}

	return nil
}

// BatchResult reports the outcome of one item in a batch. Items are
// independent; one failure never hides the others.
type BatchResult struct {
	EntryID int64  `json:"entryId"`
	Status  string `json:"status"` // success | error
	Error   string `json:"error,omitempty"`
}

// DecisionService applies admin verdicts to pending review entries.
// Each verdict is a single atomic transaction: close the entry exactly once,
// append the audit record, and cascade to the image, the owning submission,
// and the false-positive counters.
type DecisionService struct {
	db         *bun.DB
	review     *models.ReviewModel
	decision   *models.DecisionModel
	image      *models.ImageModel
	submission *models.SubmissionModel
	stats      *models.CategoryStatsModel
	authorizer AuthorizationProvider
	notifier   Notifier
	logger     *zap.Logger
}

// NewDecision creates a new decision service.
func NewDecision(
	db *bun.DB,
	review *models.ReviewModel,
	decision *models.DecisionModel,
	image *models.ImageModel,
	submission *models.SubmissionModel,
	stats *models.CategoryStatsModel,
	authorizer AuthorizationProvider,
	notifier Notifier,
	logger *zap.Logger,
) *DecisionService {
	return &DecisionService{
		db:         db,
		review:     review,
		decision:   decision,
		image:      image,
		submission: submission,
		stats:      stats,
		authorizer: authorizer,
		notifier:   notifier,
		logger:     logger.Named("decision_service"),
	}
}

// SubmitDecision closes one pending entry with the admin's verdict.
//
// The conditional close is the concurrency guard: when two admins race on the
// same entry, exactly one update matches the pending row and the loser gets
// types.ErrAlreadyReviewed. Everything through the stats increment commits or
// rolls back together, so a retried call can never replay a cascade.
func (s *DecisionService) SubmitDecision(
	ctx context.Context, req *DecisionRequest,
) (*types.DecisionRecord, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := s.authorizer.EnsureReviewer(ctx, req.AdminID); err != nil {
		return nil, err
	}

	var (
		record *types.DecisionRecord
		notice DecisionNotice
	)

	err := dbretry.Transaction(ctx, s.db, func(ctx context.Context, tx bun.Tx) error {
		entry, err := s.review.GetByIDTx(ctx, tx, req.EntryID)
		if err != nil {
			return err
		}

		if entry.AdminDecision.IsTerminal() {
			return types.ErrAlreadyReviewed
		}

		reviewedAt := time.Now()

		rows, err := s.review.CloseWithTx(ctx, tx, entry.ID, req.Decision, req.AdminID, reviewedAt)
		if err != nil {
			return err
		}

		if rows == 0 {
			// Lost the race to another admin between read and close
			return types.ErrAlreadyReviewed
		}

		image, err := s.image.GetTx(ctx, tx, entry.ImageID, entry.ImageType)
		if err != nil {
			return err
		}

		record = &types.DecisionRecord{
			UUID:                uuid.New(),
			EntryID:             entry.ID,
			ImageID:             entry.ImageID,
			ImageType:           entry.ImageType,
			OldDecision:         entry.AdminDecision,
			NewDecision:         req.Decision,
			Reasoning:           utils.CompressAllWhitespace(req.Reasoning),
			AdminFeedback:       utils.CompressAllWhitespace(req.Notes),
			PerformedBy:         req.AdminID,
			ReviewTimeSeconds:   req.ReviewDurationSeconds,
			WasCorrectlyFlagged: req.WasCorrectlyFlagged,
			Timestamp:           reviewedAt,
		}

		if err := s.decision.AppendWithTx(ctx, tx, record); err != nil {
			return err
		}

		status := verificationStatusFor(req.Decision)
		if err := s.image.UpdateStatusWithTx(ctx, tx, entry.ImageID, entry.ImageType, status); err != nil {
			return err
		}

		if entry.ImageType == enum.ImageTypePracticeUpload {
			if err := s.cascadeToSubmission(ctx, tx, entry, req.Decision); err != nil {
				return err
			}
		}

		if req.Decision == enum.AdminDecisionFalsePositive {
			day := reviewedAt.UTC().Truncate(24 * time.Hour)
			if err := s.stats.IncrementFalsePositiveWithTx(ctx, tx, entry.Category, day); err != nil {
				return err
			}
		}

		notice = DecisionNotice{
			OwnerUserID: image.OwnerUserID,
			EntryID:     entry.ID,
			ImageID:     entry.ImageID,
			Decision:    req.Decision,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Applied review decision",
		zap.Int64("entryID", req.EntryID),
		zap.String("decision", req.Decision.String()),
		zap.Int64("adminID", req.AdminID))

	// Notification is excluded from the transaction: best effort, bounded,
	// and never a reason to fail a committed decision.
	s.notifyOwner(notice)

	return record, nil
}

// SubmitBatch applies each verdict as an independent transaction and returns
// a per-item outcome list in input order.
func (s *DecisionService) SubmitBatch(ctx context.Context, items []*DecisionRequest) []BatchResult {
	results := make([]BatchResult, len(items))

	p := pool.New().WithMaxGoroutines(batchWorkers)

	for i, item := range items {
		p.Go(func() {
			_, err := s.SubmitDecision(ctx, item)
			if err != nil {
				results[i] = BatchResult{EntryID: item.EntryID, Status: "error", Error: err.Error()}
				return
			}

			results[i] = BatchResult{EntryID: item.EntryID, Status: "success"}
		})
	}

	p.Wait()

	return results
}

// History returns the chronological audit trail for one image.
func (s *DecisionService) History(
	ctx context.Context, adminID, imageID int64, imageType enum.ImageType,
) ([]*types.DecisionRecord, error) {
	if err := s.authorizer.EnsureReviewer(ctx, adminID); err != nil {
		return nil, err
	}

	return s.decision.History(ctx, imageID, imageType)
}

// cascadeToSubmission updates the owning practice submission and, on a
// passing verdict, the tutorial progress record. A practice upload without a
// submission row is logged and skipped rather than failing the decision.
func (s *DecisionService) cascadeToSubmission(
	ctx context.Context, tx bun.Tx, entry *types.ReviewEntry, decision enum.AdminDecision,
) error {
	submission, err := s.submission.GetByImageTx(ctx, tx, entry.ImageID)
	if err != nil {
		if errors.Is(err, types.ErrSubmissionNotFound) {
			s.logger.Warn("Practice upload has no owning submission",
				zap.Int64("imageID", entry.ImageID),
				zap.Int64("entryID", entry.ID))

			return nil
		}

		return err
	}

	status := submissionStatusFor(decision)
	if err := s.submission.UpdateStatusWithTx(ctx, tx, submission.ID, status); err != nil {
		return err
	}

	if decision == enum.AdminDecisionApproved || decision == enum.AdminDecisionFalsePositive {
		if err := s.submission.MarkPracticeCompleteWithTx(ctx, tx, submission.UserID, submission.TutorialID); err != nil {
			return err
		}
	}

	return nil
}

// notifyOwner fires the owner notification in the background with a bounded
// timeout. Failures are logged and swallowed.
func (s *DecisionService) notifyOwner(notice DecisionNotice) {
	if s.notifier == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := s.notifier.NotifyDecision(ctx, notice); err != nil {
			s.logger.Warn("Failed to notify owner of decision",
				zap.Int64("ownerUserID", notice.OwnerUserID),
				zap.Int64("entryID", notice.EntryID),
				zap.Error(err))
		}
	}()
}

// verificationStatusFor maps a verdict onto the image's verification status.
func verificationStatusFor(decision enum.AdminDecision) enum.VerificationStatus {
	switch decision {
	case enum.AdminDecisionApproved, enum.AdminDecisionFalsePositive:
		return enum.VerificationStatusVerified
	case enum.AdminDecisionRejected:
		return enum.VerificationStatusRejected
	case enum.AdminDecisionRequestReupload:
		return enum.VerificationStatusPendingReupload
	default:
		return enum.VerificationStatusPending
	}
}

// submissionStatusFor maps a verdict onto the owning submission's status.
func submissionStatusFor(decision enum.AdminDecision) enum.SubmissionStatus {
	switch decision {
	case enum.AdminDecisionApproved, enum.AdminDecisionFalsePositive:
		return enum.SubmissionStatusApproved
	case enum.AdminDecisionRejected:
		return enum.SubmissionStatusRejected
	case enum.AdminDecisionRequestReupload:
		return enum.SubmissionStatusReuploadRequested
	default:
		return enum.SubmissionStatusPendingReview
	}
}

package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/giftcraft/authentiq/internal/database/types"
	"github.com/giftcraft/authentiq/internal/database/types/enum"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// SubmissionModel handles database operations for practice submissions and
// tutorial progress, the records a review verdict cascades to.
type SubmissionModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewSubmission creates a SubmissionModel.
func NewSubmission(db *bun.DB, logger *zap.Logger) *SubmissionModel {
	return &SubmissionModel{
		db:     db,
		logger: logger.Named("db_submission"),
	}
}

// GetByImageTx finds the submission that owns a practice upload.
func (r *SubmissionModel) GetByImageTx(
	ctx context.Context, tx bun.Tx, imageID int64,
) (*types.PracticeSubmission, error) {
	submission := new(types.PracticeSubmission)

	err := tx.NewSelect().
		Model(submission).
		Where("image_id = ?", imageID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrSubmissionNotFound
		}

		return nil, fmt.Errorf("failed to get submission by image: %w", err)
	}

	return submission, nil
}

// UpdateStatusWithTx moves the submission to the status a verdict dictates.
func (r *SubmissionModel) UpdateStatusWithTx(
	ctx context.Context, tx bun.Tx, submissionID int64, status enum.SubmissionStatus,
) error {
	_, err := tx.NewUpdate().
		Model((*types.PracticeSubmission)(nil)).
		Set("status = ?", status).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", submissionID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update submission status: %w", err)
	}

	return nil
}

// MarkPracticeCompleteWithTx records tutorial progress when a practice upload
// passes review. Upsert keeps the operation idempotent for first-time users.
func (r *SubmissionModel) MarkPracticeCompleteWithTx(
	ctx context.Context, tx bun.Tx, userID, tutorialID int64,
) error {
	progress := &types.TutorialProgress{
		UserID:            userID,
		TutorialID:        tutorialID,
		PracticeCompleted: true,
		UpdatedAt:         time.Now(),
	}

	_, err := tx.NewInsert().
		Model(progress).
		On("CONFLICT (user_id, tutorial_id) DO UPDATE").
		Set("practice_completed = true").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark practice complete: %w", err)
	}

	return nil
}

package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/giftcraft/authentiq/internal/database/dbretry"
	"github.com/giftcraft/authentiq/internal/database/types"
	"github.com/giftcraft/authentiq/internal/database/types/enum"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// ImageModel handles database operations for candidate image records.
type ImageModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewImage creates an ImageModel.
func NewImage(db *bun.DB, logger *zap.Logger) *ImageModel {
	return &ImageModel{
		db:     db,
		logger: logger.Named("db_image"),
	}
}

// UpsertWithTx creates the candidate image row or refreshes its classifier
// fields when the image was seen before. Verification status is only set on
// insert; review outcomes own it afterwards.
func (r *ImageModel) UpsertWithTx(ctx context.Context, tx bun.Tx, image *types.CandidateImage) error {
	now := time.Now()
	image.CreatedAt = now
	image.UpdatedAt = now

	_, err := tx.NewInsert().
		Model(image).
		On("CONFLICT (image_id, image_type) DO UPDATE").
		Set("authenticity_score = EXCLUDED.authenticity_score").
		Set("risk_level = EXCLUDED.risk_level").
		Set("perceptual_hash = EXCLUDED.perceptual_hash").
		Set("similarity_matches = EXCLUDED.similarity_matches").
		Set("storage_path = EXCLUDED.storage_path").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert candidate image: %w", err)
	}

	return nil
}

// Get retrieves a candidate image by its identity pair.
func (r *ImageModel) Get(
	ctx context.Context, imageID int64, imageType enum.ImageType,
) (*types.CandidateImage, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.CandidateImage, error) {
		image := new(types.CandidateImage)

		err := r.db.NewSelect().
			Model(image).
			Where("image_id = ?", imageID).
			Where("image_type = ?", imageType).
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, types.ErrImageNotFound
			}

			return nil, fmt.Errorf("failed to get candidate image: %w", err)
		}

		return image, nil
	})
}

// GetTx retrieves a candidate image inside an open transaction.
func (r *ImageModel) GetTx(
	ctx context.Context, tx bun.Tx, imageID int64, imageType enum.ImageType,
) (*types.CandidateImage, error) {
	image := new(types.CandidateImage)

	err := tx.NewSelect().
		Model(image).
		Where("image_id = ?", imageID).
		Where("image_type = ?", imageType).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrImageNotFound
		}

		return nil, fmt.Errorf("failed to get candidate image: %w", err)
	}

	return image, nil
}

// UpdateStatusWithTx sets the verification status produced by a review verdict.
func (r *ImageModel) UpdateStatusWithTx(
	ctx context.Context, tx bun.Tx, imageID int64, imageType enum.ImageType, status enum.VerificationStatus,
) error {
	_, err := tx.NewUpdate().
		Model((*types.CandidateImage)(nil)).
		Set("verification_status = ?", status).
		Set("updated_at = ?", time.Now()).
		Where("image_id = ?", imageID).
		Where("image_type = ?", imageType).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update verification status: %w", err)
	}

	return nil
}

package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/giftcraft/authentiq/internal/database/dbretry"
	"github.com/giftcraft/authentiq/internal/database/types"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// SettingModel handles database operations for pipeline settings.
//
// Settings are deliberately read fresh on every call. Threshold and access
// edits must take effect on the next ingestion or review, so there is no
// process-wide cache here.
type SettingModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewSetting creates a SettingModel.
func NewSetting(db *bun.DB, logger *zap.Logger) *SettingModel {
	return &SettingModel{
		db:     db,
		logger: logger.Named("db_setting"),
	}
}

// GetReviewThresholds loads the current review thresholds, falling back to
// defaults when no row exists yet.
func (r *SettingModel) GetReviewThresholds(ctx context.Context) (*types.ReviewThresholds, error) {
	thresholds := types.DefaultReviewThresholds()
	if err := r.get(ctx, types.SettingKeyReviewThresholds, thresholds); err != nil {
		if errors.Is(err, types.ErrSettingNotFound) {
			return types.DefaultReviewThresholds(), nil
		}

		return nil, err
	}

	return thresholds, nil
}

// SaveReviewThresholds persists edited thresholds.
func (r *SettingModel) SaveReviewThresholds(ctx context.Context, thresholds *types.ReviewThresholds) error {
	return r.set(ctx, types.SettingKeyReviewThresholds, thresholds)
}

// GetReviewAccess loads the admin access list. An absent row means nobody is
// authorized yet.
func (r *SettingModel) GetReviewAccess(ctx context.Context) (*types.ReviewAccess, error) {
	access := new(types.ReviewAccess)
	if err := r.get(ctx, types.SettingKeyReviewAccess, access); err != nil {
		if errors.Is(err, types.ErrSettingNotFound) {
			return &types.ReviewAccess{}, nil
		}

		return nil, err
	}

	return access, nil
}

// SaveReviewAccess persists the admin access list.
func (r *SettingModel) SaveReviewAccess(ctx context.Context, access *types.ReviewAccess) error {
	return r.set(ctx, types.SettingKeyReviewAccess, access)
}

func (r *SettingModel) get(ctx context.Context, key string, out any) error {
	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		setting := new(types.Setting)

		err := r.db.NewSelect().
			Model(setting).
			Where("key = ?", key).
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return types.ErrSettingNotFound
			}

			return fmt.Errorf("failed to get setting %s: %w", key, err)
		}

		if err := sonic.Unmarshal(setting.Value, out); err != nil {
			return fmt.Errorf("failed to decode setting %s: %w", key, err)
		}

		return nil
	})
}

func (r *SettingModel) set(ctx context.Context, key string, value any) error {
	payload, err := sonic.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode setting %s: %w", key, err)
	}

	setting := &types.Setting{
		Key:       key,
		Value:     payload,
		UpdatedAt: time.Now(),
	}

	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		_, err := r.db.NewInsert().
			Model(setting).
			On("CONFLICT (key) DO UPDATE").
			Set("value = EXCLUDED.value").
			Set("updated_at = EXCLUDED.updated_at").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to save setting %s: %w", key, err)
		}

		return nil
	})
}

package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/giftcraft/authentiq/internal/database/dbretry"
	"github.com/giftcraft/authentiq/internal/database/types"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// CategoryStatsModel handles database operations for per-category daily counters.
type CategoryStatsModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewCategoryStats creates a CategoryStatsModel.
func NewCategoryStats(db *bun.DB, logger *zap.Logger) *CategoryStatsModel {
	return &CategoryStatsModel{
		db:     db,
		logger: logger.Named("db_category_stats"),
	}
}

// RecordFlaggedWithTx bumps the day's flag counter and folds the new score
// into the rolling average, inside the ingestion transaction.
func (r *CategoryStatsModel) RecordFlaggedWithTx(
	ctx context.Context, tx bun.Tx, category string, day time.Time, score float64,
) error {
	stat := &types.CategoryStat{
		Category:     category,
		Date:         day,
		TotalFlagged: 1,
		AverageScore: score,
	}

	_, err := tx.NewInsert().
		Model(stat).
		On("CONFLICT (category, date) DO UPDATE").
		Set("average_score = (category_stat.average_score * category_stat.total_flagged + EXCLUDED.average_score)" +
			" / (category_stat.total_flagged + 1)").
		Set("total_flagged = category_stat.total_flagged + 1").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to record flagged stat: %w", err)
	}

	return nil
}

// IncrementFalsePositiveWithTx bumps the day's false positive counter by
// exactly one. Runs only inside a decision transaction that closed the entry,
// so a retried decision can never double count.
func (r *CategoryStatsModel) IncrementFalsePositiveWithTx(
	ctx context.Context, tx bun.Tx, category string, day time.Time,
) error {
	stat := &types.CategoryStat{
		Category:           category,
		Date:               day,
		FalsePositiveCount: 1,
	}

	_, err := tx.NewInsert().
		Model(stat).
		On("CONFLICT (category, date) DO UPDATE").
		Set("false_positive_count = category_stat.false_positive_count + 1").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to increment false positive count: %w", err)
	}

	return nil
}

// Get retrieves one (category, day) bucket. Missing buckets come back zeroed.
func (r *CategoryStatsModel) Get(
	ctx context.Context, category string, day time.Time,
) (*types.CategoryStat, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.CategoryStat, error) {
		stat := &types.CategoryStat{
			Category: category,
			Date:     day,
		}

		err := r.db.NewSelect().
			Model(stat).
			WherePK().
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return &types.CategoryStat{Category: category, Date: day}, nil
			}

			return nil, fmt.Errorf("failed to get category stat: %w", err)
		}

		return stat, nil
	})
}

// GetRange returns all buckets in [since, until] ordered by day then category.
func (r *CategoryStatsModel) GetRange(
	ctx context.Context, since, until time.Time,
) ([]*types.CategoryStat, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.CategoryStat, error) {
		var stats []*types.CategoryStat

		err := r.db.NewSelect().
			Model(&stats).
			Where("date BETWEEN ? AND ?", since, until).
			Order("date ASC", "category ASC").
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get category stats range: %w", err)
		}

		return stats, nil
	})
}

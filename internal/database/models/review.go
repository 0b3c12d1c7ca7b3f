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

// priorityExpr mirrors types.ReviewEntry.PriorityAt so the database can order
// and paginate the queue without persisting scores. Keep the two in sync.
const priorityExpr = `(CASE risk_level WHEN ? THEN 50 WHEN ? THEN 30 WHEN ? THEN 10 ELSE 0 END) ` +
	`+ (100 - authenticity_score) * 0.3 ` +
	`+ similarity_match_count * 10 ` +
	`+ LEAST(GREATEST(EXTRACT(EPOCH FROM (now() - flagged_at)) / 3600.0, 0) * 2, 50)`

// ReviewModel handles database operations for review queue entries.
type ReviewModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewReview creates a ReviewModel.
func NewReview(db *bun.DB, logger *zap.Logger) *ReviewModel {
	return &ReviewModel{
		db:     db,
		logger: logger.Named("db_review"),
	}
}

// CreateWithTx inserts a new pending entry. The partial unique index on
// (image_id, image_type) WHERE admin_decision = pending rejects a second
// pending entry for the same image.
func (r *ReviewModel) CreateWithTx(ctx context.Context, tx bun.Tx, entry *types.ReviewEntry) error {
	_, err := tx.NewInsert().
		Model(entry).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create review entry: %w", err)
	}

	return nil
}

// GetPendingByImageTx finds the open entry for an image, if any. Returns nil
// without error when no pending entry exists. FOR UPDATE so concurrent
// ingestions for the same image serialize on the row.
func (r *ReviewModel) GetPendingByImageTx(
	ctx context.Context, tx bun.Tx, imageID int64, imageType enum.ImageType,
) (*types.ReviewEntry, error) {
	entry := new(types.ReviewEntry)

	err := tx.NewSelect().
		Model(entry).
		Where("image_id = ?", imageID).
		Where("image_type = ?", imageType).
		Where("admin_decision = ?", enum.AdminDecisionPending).
		For("UPDATE").
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get pending entry: %w", err)
	}

	return entry, nil
}

// MergeFlagsWithTx refreshes a pending entry with newly ingested classifier
// output. Reasons are already merged by the caller; snapshots move to the
// latest classifier values.
func (r *ReviewModel) MergeFlagsWithTx(ctx context.Context, tx bun.Tx, entry *types.ReviewEntry) error {
	_, err := tx.NewUpdate().
		Model(entry).
		Column("flagged_reasons", "evaluation_details", "risk_level",
			"authenticity_score", "similarity_match_count").
		Where("id = ?", entry.ID).
		Where("admin_decision = ?", enum.AdminDecisionPending).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to merge flags into entry: %w", err)
	}

	return nil
}

// GetByID retrieves a single entry.
func (r *ReviewModel) GetByID(ctx context.Context, entryID int64) (*types.ReviewEntry, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.ReviewEntry, error) {
		entry := new(types.ReviewEntry)

		err := r.db.NewSelect().
			Model(entry).
			Where("id = ?", entryID).
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, types.ErrEntryNotFound
			}

			return nil, fmt.Errorf("failed to get review entry: %w", err)
		}

		return entry, nil
	})
}

// GetByIDTx retrieves a single entry inside an open transaction.
func (r *ReviewModel) GetByIDTx(ctx context.Context, tx bun.Tx, entryID int64) (*types.ReviewEntry, error) {
	entry := new(types.ReviewEntry)

	err := tx.NewSelect().
		Model(entry).
		Where("id = ?", entryID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrEntryNotFound
		}

		return nil, fmt.Errorf("failed to get review entry: %w", err)
	}

	return entry, nil
}

// CloseWithTx performs the conditional close that guarantees exactly-once
// processing: the WHERE clause only matches while the entry is still pending,
// so of two racing reviewers exactly one sees rows == 1.
func (r *ReviewModel) CloseWithTx(
	ctx context.Context, tx bun.Tx, entryID int64, decision enum.AdminDecision, adminID int64, reviewedAt time.Time,
) (int64, error) {
	res, err := tx.NewUpdate().
		Model((*types.ReviewEntry)(nil)).
		Set("admin_decision = ?", decision).
		Set("reviewed_by = ?", adminID).
		Set("reviewed_at = ?", reviewedAt).
		Where("id = ?", entryID).
		Where("admin_decision = ?", enum.AdminDecisionPending).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to close review entry: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return rows, nil
}

// List returns one page of entries matching the filter plus the total match
// count. The composite index on (admin_decision, category, risk_level) serves
// the combinable filters without a full scan.
func (r *ReviewModel) List(
	ctx context.Context, filter types.ReviewQueueFilter, sortBy enum.QueueSortBy, page, limit int,
) ([]*types.ReviewEntry, int, error) {
	type listResult struct {
		entries []*types.ReviewEntry
		total   int
	}

	result, err := dbretry.Operation(ctx, func(ctx context.Context) (listResult, error) {
		var entries []*types.ReviewEntry

		query := r.db.NewSelect().Model(&entries)

		if filter.Decision != nil {
			query = query.Where("admin_decision = ?", *filter.Decision)
		}

		if filter.Category != "" {
			query = query.Where("category = ?", filter.Category)
		}

		if filter.RiskLevel != nil {
			query = query.Where("risk_level = ?", *filter.RiskLevel)
		}

		switch sortBy {
		case enum.QueueSortByNewest:
			query = query.Order("flagged_at DESC")
		case enum.QueueSortByOldest:
			query = query.Order("flagged_at ASC")
		case enum.QueueSortByScore:
			query = query.Order("authenticity_score ASC").Order("flagged_at ASC")
		case enum.QueueSortByPriority:
			fallthrough
		default:
			// Priority is derived at read time; ties go to the oldest flag
			query = query.
				OrderExpr(priorityExpr+" DESC",
					enum.RiskLevelHighlySuspicious, enum.RiskLevelSuspicious, enum.RiskLevelLowConcern).
				Order("flagged_at ASC")
		}

		total, err := query.
			Limit(limit).
			Offset((page - 1) * limit).
			ScanAndCount(ctx)
		if err != nil {
			return listResult{}, fmt.Errorf("failed to list review entries: %w", err)
		}

		return listResult{entries: entries, total: total}, nil
	})
	if err != nil {
		return nil, 0, err
	}

	return result.entries, result.total, nil
}

// CountByDecision aggregates entries per decision state.
func (r *ReviewModel) CountByDecision(ctx context.Context) ([]types.DecisionCount, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]types.DecisionCount, error) {
		var counts []types.DecisionCount

		err := r.db.NewSelect().
			Model((*types.ReviewEntry)(nil)).
			ColumnExpr("admin_decision AS decision").
			ColumnExpr("count(*) AS count").
			Group("admin_decision").
			Order("admin_decision ASC").
			Scan(ctx, &counts)
		if err != nil {
			return nil, fmt.Errorf("failed to count by decision: %w", err)
		}

		return counts, nil
	})
}

// CountByCategory aggregates entries per category.
func (r *ReviewModel) CountByCategory(ctx context.Context) ([]types.CategoryCount, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]types.CategoryCount, error) {
		var counts []types.CategoryCount

		err := r.db.NewSelect().
			Model((*types.ReviewEntry)(nil)).
			ColumnExpr("category").
			ColumnExpr("count(*) AS count").
			Group("category").
			Order("count DESC").
			Scan(ctx, &counts)
		if err != nil {
			return nil, fmt.Errorf("failed to count by category: %w", err)
		}

		return counts, nil
	})
}

// CountByRiskLevel aggregates entries per risk level.
func (r *ReviewModel) CountByRiskLevel(ctx context.Context) ([]types.RiskLevelCount, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]types.RiskLevelCount, error) {
		var counts []types.RiskLevelCount

		err := r.db.NewSelect().
			Model((*types.ReviewEntry)(nil)).
			ColumnExpr("risk_level").
			ColumnExpr("count(*) AS count").
			Group("risk_level").
			Order("risk_level ASC").
			Scan(ctx, &counts)
		if err != nil {
			return nil, fmt.Errorf("failed to count by risk level: %w", err)
		}

		return counts, nil
	})
}

// DailyFlagCounts returns per-day flag volume for the trailing timeframe.
func (r *ReviewModel) DailyFlagCounts(ctx context.Context, since time.Time) (map[time.Time]int64, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (map[time.Time]int64, error) {
		var rows []struct {
			Day   time.Time `bun:"day"`
			Count int64     `bun:"count"`
		}

		err := r.db.NewSelect().
			Model((*types.ReviewEntry)(nil)).
			ColumnExpr("date_trunc('day', flagged_at) AS day").
			ColumnExpr("count(*) AS count").
			Where("flagged_at >= ?", since).
			Group("day").
			Scan(ctx, &rows)
		if err != nil {
			return nil, fmt.Errorf("failed to get daily flag counts: %w", err)
		}

		counts := make(map[time.Time]int64, len(rows))
		for _, row := range rows {
			counts[row.Day.UTC()] = row.Count
		}

		return counts, nil
	})
}

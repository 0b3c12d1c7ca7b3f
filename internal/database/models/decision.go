package models

import (
	"context"
	"fmt"
	"time"

	"github.com/giftcraft/authentiq/internal/database/dbretry"
	"github.com/giftcraft/authentiq/internal/database/types"
	"github.com/giftcraft/authentiq/internal/database/types/enum"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// DecisionModel handles database operations for the append-only audit trail.
// There are deliberately no update or delete methods on this model.
type DecisionModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewDecision creates a DecisionModel.
func NewDecision(db *bun.DB, logger *zap.Logger) *DecisionModel {
	return &DecisionModel{
		db:     db,
		logger: logger.Named("db_decision"),
	}
}

// AppendWithTx writes one immutable decision record as part of the decision
// transaction.
func (r *DecisionModel) AppendWithTx(ctx context.Context, tx bun.Tx, record *types.DecisionRecord) error {
	_, err := tx.NewInsert().
		Model(record).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to append decision record: %w", err)
	}

	return nil
}

// History returns all decision records for an image in chronological order.
func (r *DecisionModel) History(
	ctx context.Context, imageID int64, imageType enum.ImageType,
) ([]*types.DecisionRecord, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.DecisionRecord, error) {
		var records []*types.DecisionRecord

		err := r.db.NewSelect().
			Model(&records).
			Where("image_id = ?", imageID).
			Where("image_type = ?", imageType).
			Order("timestamp ASC", "id ASC").
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get decision history: %w", err)
		}

		return records, nil
	})
}

// CountByEntry returns the number of audit records for one entry. A closed
// entry always has exactly one.
func (r *DecisionModel) CountByEntry(ctx context.Context, entryID int64) (int, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (int, error) {
		count, err := r.db.NewSelect().
			Model((*types.DecisionRecord)(nil)).
			Where("entry_id = ?", entryID).
			Count(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to count decision records: %w", err)
		}

		return count, nil
	})
}

// DailyDecisionCounts returns per-day reviewed and false-positive volume for
// the trailing timeframe.
func (r *DecisionModel) DailyDecisionCounts(
	ctx context.Context, since time.Time,
) (map[time.Time]*types.DailyTrendPoint, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (map[time.Time]*types.DailyTrendPoint, error) {
		var rows []struct {
			Day      time.Time `bun:"day"`
			Reviewed int64     `bun:"reviewed"`
			FalsePos int64     `bun:"false_pos"`
		}

		err := r.db.NewSelect().
			Model((*types.DecisionRecord)(nil)).
			ColumnExpr("date_trunc('day', timestamp) AS day").
			ColumnExpr("count(*) AS reviewed").
			ColumnExpr("count(*) FILTER (WHERE new_decision = ?) AS false_pos", enum.AdminDecisionFalsePositive).
			Where("timestamp >= ?", since).
			Group("day").
			Scan(ctx, &rows)
		if err != nil {
			return nil, fmt.Errorf("failed to get daily decision counts: %w", err)
		}

		points := make(map[time.Time]*types.DailyTrendPoint, len(rows))
		for _, row := range rows {
			points[row.Day.UTC()] = &types.DailyTrendPoint{
				Date:     row.Day.UTC(),
				Reviewed: row.Reviewed,
				FalsePos: row.FalsePos,
			}
		}

		return points, nil
	})
}

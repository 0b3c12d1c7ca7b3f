package migrations

import (
	"context"
	"fmt"

	"github.com/giftcraft/authentiq/internal/database/types/enum"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewRaw(`
			-- One open entry per image; merge instead of duplicate
			CREATE UNIQUE INDEX IF NOT EXISTS idx_review_entries_pending_image
			ON review_entries (image_id, image_type)
			WHERE admin_decision = ?;

			-- Serves the combinable queue filters
			CREATE INDEX IF NOT EXISTS idx_review_entries_filters
			ON review_entries (admin_decision, category, risk_level);

			CREATE INDEX IF NOT EXISTS idx_review_entries_flagged_at
			ON review_entries (flagged_at);

			-- Audit trail lookups per image in chronological order
			CREATE INDEX IF NOT EXISTS idx_decision_records_image_time
			ON decision_records (image_id, image_type, timestamp);

			CREATE INDEX IF NOT EXISTS idx_decision_records_entry
			ON decision_records (entry_id);

			CREATE INDEX IF NOT EXISTS idx_practice_submissions_image
			ON practice_submissions (image_id);
		`, enum.AdminDecisionPending).Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create indexes: %w", err)
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewRaw(`
			DROP INDEX IF EXISTS idx_practice_submissions_image;
			DROP INDEX IF EXISTS idx_decision_records_entry;
			DROP INDEX IF EXISTS idx_decision_records_image_time;
			DROP INDEX IF EXISTS idx_review_entries_flagged_at;
			DROP INDEX IF EXISTS idx_review_entries_filters;
			DROP INDEX IF EXISTS idx_review_entries_pending_image;
		`).Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to drop indexes: %w", err)
		}

		return nil
	})
}

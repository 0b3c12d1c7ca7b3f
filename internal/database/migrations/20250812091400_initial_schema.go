package migrations

import (
	"context"
	"fmt"

	"github.com/giftcraft/authentiq/internal/database/types"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		models := []any{
			(*types.CandidateImage)(nil),
			(*types.ReviewEntry)(nil),
			(*types.DecisionRecord)(nil),
			(*types.CategoryStat)(nil),
			(*types.PracticeSubmission)(nil),
			(*types.TutorialProgress)(nil),
			(*types.Setting)(nil),
		}

		for _, model := range models {
			_, err := db.NewCreateTable().
				Model(model).
				IfNotExists().
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to create table for %T: %w", model, err)
			}
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewRaw(`
			DROP TABLE IF EXISTS
				settings,
				tutorial_progresses,
				practice_submissions,
				category_stats,
				decision_records,
				review_entries,
				candidate_images
			CASCADE
		`).Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to drop tables: %w", err)
		}

		return nil
	})
}

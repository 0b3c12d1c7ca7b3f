package service_test

import (
	"context"
	"database/sql"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/giftcraft/authentiq/internal/database/migrations"
	"github.com/giftcraft/authentiq/internal/database/models"
	"github.com/giftcraft/authentiq/internal/database/service"
	"github.com/giftcraft/authentiq/internal/database/types"
	"github.com/giftcraft/authentiq/internal/database/types/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"
	"go.uber.org/zap"
)

// testAdminID is seeded into the review access list for every test.
const testAdminID = int64(900)

type testEnv struct {
	db       *bun.DB
	ingest   *service.IngestService
	decision *service.DecisionService
	queue    *service.QueueService
	stats    *service.StatsService
	setting  *models.SettingModel
	statsMdl *models.CategoryStatsModel
	review   *models.ReviewModel
	decMdl   *models.DecisionModel
}

// newTestEnv connects to the database named by AUTHENTIQ_TEST_DSN, applies
// migrations, and wipes all pipeline tables. Tests are skipped when the
// variable is unset.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := os.Getenv("AUTHENTIQ_TEST_DSN")
	if dsn == "" {
		t.Skip("AUTHENTIQ_TEST_DSN not set; skipping database integration tests")
	}

	ctx := context.Background()

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())
	t.Cleanup(func() { db.Close() })

	migrator := migrate.NewMigrator(db, migrations.Migrations)
	require.NoError(t, migrator.Init(ctx))

	_, err := migrator.Migrate(ctx)
	require.NoError(t, err)

	tables := []string{
		"decision_records", "review_entries", "candidate_images",
		"category_stats", "practice_submissions", "tutorial_progresses", "settings",
	}
	for _, table := range tables {
		_, err := db.NewTruncateTable().Table(table).Exec(ctx)
		require.NoError(t, err)
	}

	logger := zap.NewNop()

	imageModel := models.NewImage(db, logger)
	reviewModel := models.NewReview(db, logger)
	decisionModel := models.NewDecision(db, logger)
	statsModel := models.NewCategoryStats(db, logger)
	submissionModel := models.NewSubmission(db, logger)
	settingModel := models.NewSetting(db, logger)

	authorizer := service.NewSettingsAuthorizer(settingModel, logger)
	policy := service.NewThresholdPolicy(settingModel)

	require.NoError(t, settingModel.SaveReviewAccess(ctx, &types.ReviewAccess{
		AdminIDs: []int64{testAdminID},
	}))

	return &testEnv{
		db: db,
		ingest: service.NewIngest(db, imageModel, reviewModel, statsModel, policy,
			service.NewKeywordCategoryResolver(nil), logger),
		decision: service.NewDecision(db, reviewModel, decisionModel, imageModel,
			submissionModel, statsModel, authorizer, nil, logger),
		queue:    service.NewQueue(reviewModel, authorizer, logger),
		stats:    service.NewStats(reviewModel, decisionModel, statsModel, logger),
		setting:  settingModel,
		statsMdl: statsModel,
		review:   reviewModel,
		decMdl:   decisionModel,
	}
}

func suspiciousFlag(imageID int64) *service.FlagRequest {
	return &service.FlagRequest{
		ImageID:           imageID,
		ImageType:         enum.ImageTypeOther,
		OwnerUserID:       42,
		StoragePath:       "images/test.jpg",
		AuthenticityScore: 30,
		RiskLevel:         enum.RiskLevelSuspicious,
		FlaggedReasons: types.FlagReasons{
			enum.FlagReasonTypeLowAuthenticityScore: {
				Message:    "Score below review threshold",
				Confidence: 0.8,
			},
		},
		Title: "watercolor landscape",
	}
}

func TestIngestCreatesThenMerges(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first, err := env.ingest.Ingest(ctx, suspiciousFlag(1001))
	require.NoError(t, err)
	require.True(t, first.Created)
	require.NotNil(t, first.Entry)
	assert.Equal(t, "painting", first.Entry.Category)

	// Same image again with an extra reason merges instead of duplicating
	again := suspiciousFlag(1001)
	again.FlaggedReasons[enum.FlagReasonTypeManualReport] = &types.FlagReason{
		Message:    "User reported plagiarism",
		Confidence: 0.6,
	}

	second, err := env.ingest.Ingest(ctx, again)
	require.NoError(t, err)
	assert.False(t, second.Created)
	require.NotNil(t, second.Entry)
	assert.Equal(t, first.Entry.ID, second.Entry.ID)
	assert.Len(t, second.Entry.FlaggedReasons, 2)

	count, err := env.db.NewSelect().
		Model((*types.ReviewEntry)(nil)).
		Where("image_id = ?", 1001).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// The flagged counter accrues once per entry, not per flag
	entry, err := env.review.GetByID(ctx, first.Entry.ID)
	require.NoError(t, err)

	day := entry.FlaggedAt.UTC().Truncate(24 * time.Hour)

	stat, err := env.statsMdl.Get(ctx, "painting", day)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stat.TotalFlagged)
}

func TestIngestRespectsThresholdEdits(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	clean := suspiciousFlag(2001)
	clean.RiskLevel = enum.RiskLevelClean
	clean.AuthenticityScore = 90

	result, err := env.ingest.Ingest(ctx, clean)
	require.NoError(t, err)
	assert.False(t, result.Created)
	assert.Nil(t, result.Entry)

	// Raise the score threshold; the very next ingestion must see it
	require.NoError(t, env.setting.SaveReviewThresholds(ctx, &types.ReviewThresholds{
		ScoreThreshold:      95,
		ReviewRiskLevels:    []enum.RiskLevel{enum.RiskLevelHighlySuspicious},
		MatchCountThreshold: 3,
	}))

	clean.ImageID = 2002

	result, err = env.ingest.Ingest(ctx, clean)
	require.NoError(t, err)
	assert.True(t, result.Created)
}

func TestDecisionClosesExactlyOnce(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	flagged, err := env.ingest.Ingest(ctx, suspiciousFlag(3001))
	require.NoError(t, err)

	record, err := env.decision.SubmitDecision(ctx, &service.DecisionRequest{
		EntryID:  flagged.Entry.ID,
		Decision: enum.AdminDecisionApproved,
		AdminID:  testAdminID,
		Notes:    "Verified against the owner's progress photos",
	})
	require.NoError(t, err)
	assert.Equal(t, enum.AdminDecisionPending, record.OldDecision)
	assert.Equal(t, enum.AdminDecisionApproved, record.NewDecision)

	// A second verdict on the closed entry is rejected
	_, err = env.decision.SubmitDecision(ctx, &service.DecisionRequest{
		EntryID:  flagged.Entry.ID,
		Decision: enum.AdminDecisionRejected,
		AdminID:  testAdminID,
	})
	require.ErrorIs(t, err, types.ErrAlreadyReviewed)

	// Exactly one audit record exists
	count, err := env.decMdl.CountByEntry(ctx, flagged.Entry.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// Image verification status followed the verdict
	image := new(types.CandidateImage)
	require.NoError(t, env.db.NewSelect().Model(image).
		Where("image_id = ?", 3001).
		Where("image_type = ?", enum.ImageTypeOther).
		Scan(ctx))
	assert.Equal(t, enum.VerificationStatusVerified, image.VerificationStatus)
}

func TestConcurrentDecisionsHaveOneWinner(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	flagged, err := env.ingest.Ingest(ctx, suspiciousFlag(4001))
	require.NoError(t, err)

	var wg sync.WaitGroup

	errs := make([]error, 2)

	for i := range errs {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, errs[i] = env.decision.SubmitDecision(ctx, &service.DecisionRequest{
				EntryID:  flagged.Entry.ID,
				Decision: enum.AdminDecisionFalsePositive,
				AdminID:  testAdminID,
			})
		}()
	}

	wg.Wait()

	var successes, conflicts int

	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		default:
			require.ErrorIs(t, err, types.ErrAlreadyReviewed)

			conflicts++
		}
	}

	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, conflicts)

	// The false positive counter moved exactly once
	entry, err := env.review.GetByID(ctx, flagged.Entry.ID)
	require.NoError(t, err)

	day := entry.ReviewedAt.UTC().Truncate(24 * time.Hour)

	stat, err := env.statsMdl.Get(ctx, entry.Category, day)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stat.FalsePositiveCount)
}

func TestBatchDecisionsAreIndependent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first, err := env.ingest.Ingest(ctx, suspiciousFlag(5001))
	require.NoError(t, err)

	second, err := env.ingest.Ingest(ctx, suspiciousFlag(5002))
	require.NoError(t, err)

	results := env.decision.SubmitBatch(ctx, []*service.DecisionRequest{
		{EntryID: first.Entry.ID, Decision: enum.AdminDecisionApproved, AdminID: testAdminID},
		{EntryID: 999999, Decision: enum.AdminDecisionApproved, AdminID: testAdminID},
		{EntryID: second.Entry.ID, Decision: enum.AdminDecisionRejected, AdminID: testAdminID},
	})

	require.Len(t, results, 3)
	assert.Equal(t, "success", results[0].Status)
	assert.Equal(t, "error", results[1].Status)
	assert.NotEmpty(t, results[1].Error)
	assert.Equal(t, "success", results[2].Status)
}

func TestPracticeUploadCascade(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	submission := &types.PracticeSubmission{
		UserID:     77,
		TutorialID: 12,
		ImageID:    6001,
		Status:     enum.SubmissionStatusPendingReview,
	}

	_, err := env.db.NewInsert().Model(submission).Exec(ctx)
	require.NoError(t, err)

	flag := suspiciousFlag(6001)
	flag.ImageType = enum.ImageTypePracticeUpload
	flag.TutorialID = 12
	flag.OwnerUserID = 77

	flagged, err := env.ingest.Ingest(ctx, flag)
	require.NoError(t, err)

	_, err = env.decision.SubmitDecision(ctx, &service.DecisionRequest{
		EntryID:  flagged.Entry.ID,
		Decision: enum.AdminDecisionApproved,
		AdminID:  testAdminID,
	})
	require.NoError(t, err)

	// Submission followed the verdict
	require.NoError(t, env.db.NewSelect().Model(submission).WherePK().Scan(ctx))
	assert.Equal(t, enum.SubmissionStatusApproved, submission.Status)

	// Tutorial progress completed
	progress := &types.TutorialProgress{UserID: 77, TutorialID: 12}
	require.NoError(t, env.db.NewSelect().Model(progress).WherePK().Scan(ctx))
	assert.True(t, progress.PracticeCompleted)
}

func TestQueueOrderingAndAuthorization(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	low := suspiciousFlag(7001)
	low.AuthenticityScore = 60

	high := suspiciousFlag(7002)
	high.AuthenticityScore = 10
	high.RiskLevel = enum.RiskLevelHighlySuspicious

	_, err := env.ingest.Ingest(ctx, low)
	require.NoError(t, err)

	_, err = env.ingest.Ingest(ctx, high)
	require.NoError(t, err)

	pending := enum.AdminDecisionPending
	filter := types.ReviewQueueFilter{Decision: &pending}

	page, err := env.queue.List(ctx, testAdminID, filter, enum.QueueSortByPriority, 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Entries, 2)

	// Higher risk and lower score outranks the other entry
	assert.Equal(t, int64(7002), page.Entries[0].ImageID)
	assert.Greater(t, page.Entries[0].PriorityScore, page.Entries[1].PriorityScore)

	// Unlisted admins are rejected before any data is served
	_, err = env.queue.List(ctx, 12345, filter, enum.QueueSortByPriority, 1, 10)
	require.ErrorIs(t, err, types.ErrNotAuthorized)
}

func TestHistoryIsChronological(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// First round: flag, then request a reupload
	flagged, err := env.ingest.Ingest(ctx, suspiciousFlag(8001))
	require.NoError(t, err)

	_, err = env.decision.SubmitDecision(ctx, &service.DecisionRequest{
		EntryID:  flagged.Entry.ID,
		Decision: enum.AdminDecisionRequestReupload,
		AdminID:  testAdminID,
	})
	require.NoError(t, err)

	// Second round: the resubmission is flagged again and approved
	reflagged, err := env.ingest.Ingest(ctx, suspiciousFlag(8001))
	require.NoError(t, err)
	require.True(t, reflagged.Created)
	assert.NotEqual(t, flagged.Entry.ID, reflagged.Entry.ID)

	_, err = env.decision.SubmitDecision(ctx, &service.DecisionRequest{
		EntryID:  reflagged.Entry.ID,
		Decision: enum.AdminDecisionApproved,
		AdminID:  testAdminID,
	})
	require.NoError(t, err)

	records, err := env.decision.History(ctx, testAdminID, 8001, enum.ImageTypeOther)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, enum.AdminDecisionRequestReupload, records[0].NewDecision)
	assert.Equal(t, enum.AdminDecisionApproved, records[1].NewDecision)
	assert.False(t, records[1].Timestamp.Before(records[0].Timestamp))
}

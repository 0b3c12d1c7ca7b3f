package service

import (
	"context"
	"sort"
	"time"

	"github.com/giftcraft/authentiq/internal/database/models"
	"github.com/giftcraft/authentiq/internal/database/types"
	"go.uber.org/zap"
)

// defaultTrendDays is the trailing window for daily trends when the caller
// does not ask for one.
const defaultTrendDays = 30

// StatsService serves read-only rollups over the queue and the audit trail.
type StatsService struct {
	review   *models.ReviewModel
	decision *models.DecisionModel
	stats    *models.CategoryStatsModel
	logger   *zap.Logger
}

// NewStats creates a new stats service.
func NewStats(
	review *models.ReviewModel,
	decision *models.DecisionModel,
	stats *models.CategoryStatsModel,
	logger *zap.Logger,
) *StatsService {
	return &StatsService{
		review:   review,
		decision: decision,
		stats:    stats,
		logger:   logger.Named("stats_service"),
	}
}

// Overview builds the dashboard rollup: decision, category and risk level
// breakdowns plus the daily trend over the trailing window.
func (s *StatsService) Overview(ctx context.Context, trendDays int) (*types.ReviewStats, error) {
	decisions, err := s.review.CountByDecision(ctx)
	if err != nil {
		return nil, err
	}

	categories, err := s.review.CountByCategory(ctx)
	if err != nil {
		return nil, err
	}

	riskLevels, err := s.review.CountByRiskLevel(ctx)
	if err != nil {
		return nil, err
	}

	trend, err := s.DailyTrend(ctx, trendDays)
	if err != nil {
		return nil, err
	}

	return &types.ReviewStats{
		Decisions:  decisions,
		Categories: categories,
		RiskLevels: riskLevels,
		DailyTrend: trend,
	}, nil
}

// DailyTrend merges per-day flag volume with per-day decision volume into one
// chronological series. Days with no activity on either side are omitted.
func (s *StatsService) DailyTrend(ctx context.Context, days int) ([]types.DailyTrendPoint, error) {
	if days < 1 {
		days = defaultTrendDays
	}

	since := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, -(days - 1))

	flagged, err := s.review.DailyFlagCounts(ctx, since)
	if err != nil {
		return nil, err
	}

	decided, err := s.decision.DailyDecisionCounts(ctx, since)
	if err != nil {
		return nil, err
	}

	merged := make(map[time.Time]types.DailyTrendPoint, len(flagged)+len(decided))

	for day, count := range flagged {
		point := merged[day]
		point.Date = day
		point.Flagged = count
		merged[day] = point
	}

	for day, counts := range decided {
		point := merged[day]
		point.Date = day
		point.Reviewed = counts.Reviewed
		point.FalsePos = counts.FalsePos
		merged[day] = point
	}

	trend := make([]types.DailyTrendPoint, 0, len(merged))
	for _, point := range merged {
		trend = append(trend, point)
	}

	sort.Slice(trend, func(i, j int) bool {
		return trend[i].Date.Before(trend[j].Date)
	})

	return trend, nil
}

// CategoryStats returns the per-category daily buckets for the trailing
// window, including each bucket's false positive rate input counters.
func (s *StatsService) CategoryStats(ctx context.Context, days int) ([]*types.CategoryStat, error) {
	if days < 1 {
		days = defaultTrendDays
	}

	until := time.Now().UTC().Truncate(24 * time.Hour)
	since := until.AddDate(0, 0, -(days - 1))

	return s.stats.GetRange(ctx, since, until)
}

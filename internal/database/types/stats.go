package types

import (
	"time"

	"github.com/giftcraft/authentiq/internal/database/types/enum"
)

// CategoryStat accumulates per-category, per-day flag counters.
// total_flagged and average_score accrue when a flag is ingested;
// false_positive_count accrues inside the decision transaction and feeds the
// classifier's learning loop.
type CategoryStat struct {
	Category           string    `bun:",pk"              json:"category"`
	Date               time.Time `bun:",pk,type:date"    json:"date"`
	TotalFlagged       int64     `bun:",notnull"         json:"totalFlagged"`
	FalsePositiveCount int64     `bun:",notnull"         json:"falsePositiveCount"`
	AverageScore       float64   `bun:",notnull"         json:"averageScore"`
}

// FalsePositiveRate returns the fraction of this bucket's flags that reviewers
// marked as wrong. Zero when nothing was flagged.
func (s *CategoryStat) FalsePositiveRate() float64 {
	if s.TotalFlagged == 0 {
		return 0
	}

	return float64(s.FalsePositiveCount) / float64(s.TotalFlagged)
}

// DecisionCount is one bucket of the overall decision breakdown.
type DecisionCount struct {
	Decision enum.AdminDecision `json:"decision"`
	Count    int64              `json:"count"`
}

// CategoryCount is one bucket of the per-category breakdown.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// RiskLevelCount is one bucket of the per-risk-level breakdown.
type RiskLevelCount struct {
	RiskLevel enum.RiskLevel `json:"riskLevel"`
	Count     int64          `json:"count"`
}

// DailyTrendPoint is one day of flag and decision volume for dashboards.
type DailyTrendPoint struct {
	Date     time.Time `json:"date"`
	Flagged  int64     `json:"flagged"`
	Reviewed int64     `json:"reviewed"`
	FalsePos int64     `json:"falsePositives"`
}

// ReviewStats is the full read-only rollup served to dashboards.
type ReviewStats struct {
	Decisions  []DecisionCount   `json:"decisions"`
	Categories []CategoryCount   `json:"categories"`
	RiskLevels []RiskLevelCount  `json:"riskLevels"`
	DailyTrend []DailyTrendPoint `json:"dailyTrend"`
}

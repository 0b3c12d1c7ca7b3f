package types

import (
	"testing"

	"github.com/giftcraft/authentiq/internal/database/types/enum"
)

func TestReviewThresholds_RequiresReview(t *testing.T) {
	thresholds := DefaultReviewThresholds()

	cases := []struct {
		name       string
		risk       enum.RiskLevel
		score      float64
		matchCount int
		want       bool
	}{
		{"highly suspicious always reviews", enum.RiskLevelHighlySuspicious, 95, 0, true},
		{"suspicious always reviews", enum.RiskLevelSuspicious, 95, 0, true},
		{"clean high score skips", enum.RiskLevelClean, 90, 0, false},
		{"low score reviews", enum.RiskLevelClean, 35, 0, true},
		{"boundary score reviews", enum.RiskLevelClean, 40, 0, true},
		{"match count triggers", enum.RiskLevelClean, 90, 3, true},
		{"below match count skips", enum.RiskLevelLowConcern, 90, 2, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := thresholds.RequiresReview(c.risk, c.score, c.matchCount); got != c.want {
				t.Errorf("RequiresReview(%s, %f, %d) = %v, want %v",
					c.risk, c.score, c.matchCount, got, c.want)
			}
		})
	}
}

func TestReviewThresholds_ZeroMatchThresholdDisabled(t *testing.T) {
	thresholds := &ReviewThresholds{ScoreThreshold: 10}

	if thresholds.RequiresReview(enum.RiskLevelClean, 90, 100) {
		t.Error("Expected disabled match threshold to never trigger review")
	}
}

func TestReviewAccess_IsAdmin(t *testing.T) {
	access := &ReviewAccess{AdminIDs: []int64{11, 42}}

	if !access.IsAdmin(42) {
		t.Error("Expected 42 to be an admin")
	}

	if access.IsAdmin(7) {
		t.Error("Expected 7 to not be an admin")
	}
}

func TestCategoryStat_FalsePositiveRate(t *testing.T) {
	stat := &CategoryStat{TotalFlagged: 8, FalsePositiveCount: 2}
	if got := stat.FalsePositiveRate(); got != 0.25 {
		t.Errorf("Expected rate 0.25, got %f", got)
	}

	empty := &CategoryStat{}
	if got := empty.FalsePositiveRate(); got != 0 {
		t.Errorf("Expected zero rate for empty bucket, got %f", got)
	}
}

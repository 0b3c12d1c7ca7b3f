package types

import (
	"math"
	"testing"
	"time"

	"github.com/giftcraft/authentiq/internal/database/types/enum"
)

func TestPriorityAt_HighlySuspiciousWithMatches(t *testing.T) {
	now := time.Now()

	entry := &ReviewEntry{
		RiskLevel:            enum.RiskLevelHighlySuspicious,
		AuthenticityScore:    40,
		SimilarityMatchCount: 3,
		FlaggedAt:            now.Add(-10 * time.Hour),
	}

	// 50 + (100-40)*0.3 + 3*10 + min(10*2, 50) = 118
	got := entry.PriorityAt(now)
	if math.Abs(got-118) > 1e-9 {
		t.Errorf("Expected priority 118, got %f", got)
	}
}

func TestPriorityAt_WaitBoostCaps(t *testing.T) {
	now := time.Now()

	entry := &ReviewEntry{
		RiskLevel:         enum.RiskLevelClean,
		AuthenticityScore: 100,
		FlaggedAt:         now.Add(-100 * time.Hour),
	}

	got := entry.PriorityAt(now)
	if math.Abs(got-50) > 1e-9 {
		t.Errorf("Expected wait boost capped at 50, got %f", got)
	}
}

func TestPriorityAt_FutureFlagTimeDoesNotReduce(t *testing.T) {
	now := time.Now()

	entry := &ReviewEntry{
		RiskLevel:         enum.RiskLevelSuspicious,
		AuthenticityScore: 80,
		FlaggedAt:         now.Add(time.Hour), // clock skew
	}

	got := entry.PriorityAt(now)
	want := 30 + 20*0.3

	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected priority %f with zero wait boost, got %f", want, got)
	}
}

func TestPriorityAt_MonotonicInMatchCount(t *testing.T) {
	now := time.Now()
	prev := -1.0

	for count := range 20 {
		entry := &ReviewEntry{
			RiskLevel:            enum.RiskLevelSuspicious,
			AuthenticityScore:    55,
			SimilarityMatchCount: count,
			FlaggedAt:            now.Add(-2 * time.Hour),
		}

		got := entry.PriorityAt(now)
		if got < prev {
			t.Fatalf("Priority decreased from %f to %f at match count %d", prev, got, count)
		}

		prev = got
	}
}

func TestPriorityAt_MonotonicInWaitTime(t *testing.T) {
	now := time.Now()
	prev := -1.0

	for hours := range 72 {
		entry := &ReviewEntry{
			RiskLevel:            enum.RiskLevelLowConcern,
			AuthenticityScore:    70,
			SimilarityMatchCount: 1,
			FlaggedAt:            now.Add(-time.Duration(hours) * time.Hour),
		}

		got := entry.PriorityAt(now)
		if got < prev {
			t.Fatalf("Priority decreased from %f to %f at %d hours waited", prev, got, hours)
		}

		prev = got
	}
}

func TestRiskWeight(t *testing.T) {
	cases := []struct {
		level enum.RiskLevel
		want  float64
	}{
		{enum.RiskLevelHighlySuspicious, 50},
		{enum.RiskLevelSuspicious, 30},
		{enum.RiskLevelLowConcern, 10},
		{enum.RiskLevelClean, 0},
	}

	for _, c := range cases {
		if got := RiskWeight(c.level); got != c.want {
			t.Errorf("RiskWeight(%s) = %f, want %f", c.level, got, c.want)
		}
	}
}

func TestFlagReasonsMerge_NewReason(t *testing.T) {
	reasons := make(FlagReasons)

	reasons.Merge(enum.FlagReasonTypeSimilarityMatch, &FlagReason{
		Message:    "Close perceptual match against catalog image",
		Confidence: 0.8,
		Evidence:   []string{"image:4021"},
	})

	if len(reasons) != 1 {
		t.Fatalf("Expected 1 reason, got %d", len(reasons))
	}

	if reasons[enum.FlagReasonTypeSimilarityMatch].Confidence != 0.8 {
		t.Errorf("Expected confidence 0.8, got %f", reasons[enum.FlagReasonTypeSimilarityMatch].Confidence)
	}
}

func TestFlagReasonsMerge_Idempotent(t *testing.T) {
	reasons := make(FlagReasons)

	flag := func() {
		reasons.Merge(enum.FlagReasonTypeDuplicateHash, &FlagReason{
			Message:    "Identical perceptual hash",
			Confidence: 0.95,
			Evidence:   []string{"hash:afc3", "image:77"},
		})
	}

	flag()
	flag()
	flag()

	if len(reasons) != 1 {
		t.Fatalf("Expected 1 reason after repeated merge, got %d", len(reasons))
	}

	got := reasons[enum.FlagReasonTypeDuplicateHash]
	if len(got.Evidence) != 2 {
		t.Errorf("Expected 2 evidence items after repeated merge, got %d", len(got.Evidence))
	}
}

func TestFlagReasonsMerge_KeepsHigherConfidence(t *testing.T) {
	reasons := make(FlagReasons)

	reasons.Merge(enum.FlagReasonTypeSimilarityMatch, &FlagReason{
		Message:    "Weak match",
		Confidence: 0.5,
		Evidence:   []string{"image:1"},
	})
	reasons.Merge(enum.FlagReasonTypeSimilarityMatch, &FlagReason{
		Message:    "Strong match",
		Confidence: 0.9,
		Evidence:   []string{"image:2"},
	})
	reasons.Merge(enum.FlagReasonTypeSimilarityMatch, &FlagReason{
		Message:    "Weaker follow-up",
		Confidence: 0.4,
		Evidence:   []string{"image:3"},
	})

	got := reasons[enum.FlagReasonTypeSimilarityMatch]
	if got.Message != "Strong match" {
		t.Errorf("Expected strongest message kept, got %q", got.Message)
	}

	if got.Confidence != 0.9 {
		t.Errorf("Expected confidence 0.9, got %f", got.Confidence)
	}

	if len(got.Evidence) != 3 {
		t.Errorf("Expected evidence union of 3, got %d", len(got.Evidence))
	}
}

func TestFlagReasonsValidate(t *testing.T) {
	empty := make(FlagReasons)
	if err := empty.Validate(); err == nil {
		t.Error("Expected empty reasons to fail validation")
	}

	bad := FlagReasons{
		enum.FlagReasonTypeManualReport: {Message: "reported", Confidence: 1.5},
	}
	if err := bad.Validate(); err == nil {
		t.Error("Expected out-of-range confidence to fail validation")
	}

	good := FlagReasons{
		enum.FlagReasonTypeManualReport: {Message: "reported", Confidence: 1.0},
	}
	if err := good.Validate(); err != nil {
		t.Errorf("Expected valid reasons to pass, got %v", err)
	}
}

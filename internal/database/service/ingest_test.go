package service

import (
	"context"
	"errors"
	"testing"

	"github.com/giftcraft/authentiq/internal/database/types"
	"github.com/giftcraft/authentiq/internal/database/types/enum"
	"go.uber.org/zap"
)

func validFlagRequest() *FlagRequest {
	return &FlagRequest{
		ImageID:           1001,
		ImageType:         enum.ImageTypeOther,
		OwnerUserID:       42,
		StoragePath:       "images/1001.jpg",
		AuthenticityScore: 35,
		RiskLevel:         enum.RiskLevelSuspicious,
		FlaggedReasons: types.FlagReasons{
			enum.FlagReasonTypeLowAuthenticityScore: {
				Message:    "Score below review threshold",
				Confidence: 0.8,
			},
		},
	}
}

// Validation failures must reject the flag before any write, so an ingest
// service with no database behind it is enough to exercise them.
func TestIngestRejectsInvalidFlags(t *testing.T) {
	svc := NewIngest(nil, nil, nil, nil, nil, NewKeywordCategoryResolver(nil), zap.NewNop())

	tests := []struct {
		name   string
		mutate func(*FlagRequest)
	}{
		{"zero image ID", func(r *FlagRequest) { r.ImageID = 0 }},
		{"unknown image type", func(r *FlagRequest) { r.ImageType = enum.ImageType(99) }},
		{"zero owner", func(r *FlagRequest) { r.OwnerUserID = 0 }},
		{"missing storage path", func(r *FlagRequest) { r.StoragePath = "" }},
		{"score above range", func(r *FlagRequest) { r.AuthenticityScore = 101 }},
		{"score below range", func(r *FlagRequest) { r.AuthenticityScore = -1 }},
		{"unknown risk level", func(r *FlagRequest) { r.RiskLevel = enum.RiskLevel(99) }},
		{"no reasons", func(r *FlagRequest) { r.FlaggedReasons = types.FlagReasons{} }},
		{"reason without message", func(r *FlagRequest) {
			r.FlaggedReasons = types.FlagReasons{
				enum.FlagReasonTypeManualReport: {Confidence: 0.5},
			}
		}},
		{"reason confidence out of range", func(r *FlagRequest) {
			r.FlaggedReasons = types.FlagReasons{
				enum.FlagReasonTypeManualReport: {Message: "reported", Confidence: 1.5},
			}
		}},
		{"bad similarity match", func(r *FlagRequest) {
			r.SimilarityMatches = []types.SimilarityMatch{{TargetImageID: 0, Score: 50, Method: enum.MatchMethodExactHash}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validFlagRequest()
			tt.mutate(req)

			_, err := svc.Ingest(context.Background(), req)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}

			if !errors.Is(err, types.ErrInvalidFlag) {
				t.Errorf("expected ErrInvalidFlag, got %v", err)
			}
		})
	}
}

package service

import (
	"errors"
	"testing"

	"github.com/giftcraft/authentiq/internal/database/types"
	"github.com/giftcraft/authentiq/internal/database/types/enum"
)

func TestDecisionRequestValidate(t *testing.T) {
	valid := func() *DecisionRequest {
		return &DecisionRequest{
			EntryID:  1,
			Decision: enum.AdminDecisionApproved,
			AdminID:  10,
		}
	}

	if err := valid().Validate(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*DecisionRequest)
	}{
		{"zero entry ID", func(r *DecisionRequest) { r.EntryID = 0 }},
		{"negative entry ID", func(r *DecisionRequest) { r.EntryID = -5 }},
		{"pending is not a verdict", func(r *DecisionRequest) { r.Decision = enum.AdminDecisionPending }},
		{"unknown decision", func(r *DecisionRequest) { r.Decision = enum.AdminDecision(99) }},
		{"zero admin ID", func(r *DecisionRequest) { r.AdminID = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(req)

			err := req.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}

			if !errors.Is(err, types.ErrInvalidFlag) {
				t.Errorf("expected ErrInvalidFlag, got %v", err)
			}
		})
	}
}

func TestVerificationStatusFor(t *testing.T) {
	tests := []struct {
		decision enum.AdminDecision
		want     enum.VerificationStatus
	}{
		{enum.AdminDecisionApproved, enum.VerificationStatusVerified},
		{enum.AdminDecisionFalsePositive, enum.VerificationStatusVerified},
		{enum.AdminDecisionRejected, enum.VerificationStatusRejected},
		{enum.AdminDecisionRequestReupload, enum.VerificationStatusPendingReupload},
		{enum.AdminDecisionPending, enum.VerificationStatusPending},
	}

	for _, tt := range tests {
		if got := verificationStatusFor(tt.decision); got != tt.want {
			t.Errorf("verificationStatusFor(%s) = %s, want %s", tt.decision, got, tt.want)
		}
	}
}

func TestSubmissionStatusFor(t *testing.T) {
	tests := []struct {
		decision enum.AdminDecision
		want     enum.SubmissionStatus
	}{
		{enum.AdminDecisionApproved, enum.SubmissionStatusApproved},
		{enum.AdminDecisionFalsePositive, enum.SubmissionStatusApproved},
		{enum.AdminDecisionRejected, enum.SubmissionStatusRejected},
		{enum.AdminDecisionRequestReupload, enum.SubmissionStatusReuploadRequested},
		{enum.AdminDecisionPending, enum.SubmissionStatusPendingReview},
	}

	for _, tt := range tests {
		if got := submissionStatusFor(tt.decision); got != tt.want {
			t.Errorf("submissionStatusFor(%s) = %s, want %s", tt.decision, got, tt.want)
		}
	}
}

package enum

// SubmissionStatus represents the state of a practice submission owning an image.
//
//go:generate go tool enumer -type=SubmissionStatus -trimprefix=SubmissionStatus
type SubmissionStatus int

const (
	// SubmissionStatusPendingReview indicates the submission is waiting on image review.
	SubmissionStatusPendingReview SubmissionStatus = iota
	// SubmissionStatusApproved indicates the submission passed review.
	SubmissionStatusApproved
	// SubmissionStatusRejected indicates the submission failed review.
	SubmissionStatusRejected
	// SubmissionStatusReuploadRequested indicates a replacement image was requested.
	SubmissionStatusReuploadRequested
)

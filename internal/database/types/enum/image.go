package enum

// ImageType represents the kind of submission an image belongs to.
//
//go:generate go tool enumer -type=ImageType -trimprefix=ImageType
type ImageType int

const (
	// ImageTypePracticeUpload indicates an image uploaded as tutorial practice work.
	ImageTypePracticeUpload ImageType = iota
	// ImageTypeOther indicates an image outside the learning-submission flow.
	ImageTypeOther
)

// VerificationStatus represents the review outcome recorded on a candidate image.
//
//go:generate go tool enumer -type=VerificationStatus -trimprefix=VerificationStatus
type VerificationStatus int

const (
	// VerificationStatusPending indicates the image has not been reviewed yet.
	VerificationStatusPending VerificationStatus = iota
	// VerificationStatusVerified indicates the image was reviewed and accepted as authentic.
	VerificationStatusVerified
	// VerificationStatusRejected indicates the image was reviewed and rejected.
	VerificationStatusRejected
	// VerificationStatusPendingReupload indicates the owner was asked to submit a new image.
	VerificationStatusPendingReupload
)

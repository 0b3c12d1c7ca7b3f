package enum

// FlagReasonType represents the category of signal that caused an image to be flagged.
//
//go:generate go tool enumer -type=FlagReasonType -trimprefix=FlagReasonType
type FlagReasonType int

const (
	// FlagReasonTypeLowAuthenticityScore indicates the overall score fell below threshold.
	FlagReasonTypeLowAuthenticityScore FlagReasonType = iota
	// FlagReasonTypeSimilarityMatch indicates the image closely matches another image.
	FlagReasonTypeSimilarityMatch
	// FlagReasonTypeDuplicateHash indicates an exact perceptual hash collision.
	FlagReasonTypeDuplicateHash
	// FlagReasonTypeMetadataAnomaly indicates inconsistent or stripped capture metadata.
	FlagReasonTypeMetadataAnomaly
	// FlagReasonTypeCategoryMismatch indicates content that does not match its tutorial category.
	FlagReasonTypeCategoryMismatch
	// FlagReasonTypeManualReport indicates a user-submitted plagiarism report.
	FlagReasonTypeManualReport
)

// MatchMethod represents how a similarity match was computed by the classifier.
//
//go:generate go tool enumer -type=MatchMethod -trimprefix=MatchMethod
type MatchMethod int

const (
	// MatchMethodPerceptualHash indicates a perceptual hash distance match.
	MatchMethodPerceptualHash MatchMethod = iota
	// MatchMethodExactHash indicates a byte-identical content hash.
	MatchMethodExactHash
	// MatchMethodFeatureEmbedding indicates an embedding-space nearest neighbor.
	MatchMethodFeatureEmbedding
)

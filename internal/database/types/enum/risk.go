package enum

// RiskLevel represents the classifier's coarse authenticity verdict for an image.
//
//go:generate go tool enumer -type=RiskLevel -trimprefix=RiskLevel
type RiskLevel int

const (
	// RiskLevelClean indicates no authenticity concerns were detected.
	RiskLevelClean RiskLevel = iota
	// RiskLevelLowConcern indicates weak signals that rarely need review.
	RiskLevelLowConcern
	// RiskLevelSuspicious indicates signals strong enough to queue for review.
	RiskLevelSuspicious
	// RiskLevelHighlySuspicious indicates strong plagiarism signals.
	RiskLevelHighlySuspicious
)

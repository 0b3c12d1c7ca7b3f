package enum

// AdminDecision represents the state of a review entry.
// Pending is the only non-terminal state; every other value closes the entry.
//
//go:generate go tool enumer -type=AdminDecision -trimprefix=AdminDecision
type AdminDecision int

const (
	// AdminDecisionPending indicates the entry is waiting for a reviewer.
	AdminDecisionPending AdminDecision = iota
	// AdminDecisionApproved indicates the image was accepted as authentic.
	AdminDecisionApproved
	// AdminDecisionRejected indicates the image was rejected as inauthentic.
	AdminDecisionRejected
	// AdminDecisionRequestReupload indicates the owner must submit a new image.
	AdminDecisionRequestReupload
	// AdminDecisionFalsePositive indicates the classifier flag itself was wrong.
	AdminDecisionFalsePositive
)

// IsTerminal reports whether the decision closes a review entry.
func (i AdminDecision) IsTerminal() bool {
	return i != AdminDecisionPending
}

// QueueSortBy represents the server-side ordering of the review queue.
//
//go:generate go tool enumer -type=QueueSortBy -trimprefix=QueueSortBy
type QueueSortBy int

const (
	// QueueSortByPriority orders by derived priority score, highest first.
	QueueSortByPriority QueueSortBy = iota
	// QueueSortByNewest orders by flag time, newest first.
	QueueSortByNewest
	// QueueSortByOldest orders by flag time, oldest first.
	QueueSortByOldest
	// QueueSortByScore orders by authenticity score, lowest first.
	QueueSortByScore
)

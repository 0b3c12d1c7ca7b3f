package types

import (
	"errors"
	"time"

	"github.com/giftcraft/authentiq/internal/database/types/enum"
)

var ErrSubmissionNotFound = errors.New("practice submission not found")

// PracticeSubmission is the learning-flow record that owns a practice upload.
// Its status follows the review verdict on the image.
type PracticeSubmission struct {
	ID         int64                 `bun:",pk,autoincrement" json:"id"`
	UserID     int64                 `bun:",notnull"          json:"userId"`
	TutorialID int64                 `bun:",notnull"          json:"tutorialId"`
	ImageID    int64                 `bun:",notnull"          json:"imageId"`
	Status     enum.SubmissionStatus `bun:",notnull"          json:"status"`
	CreatedAt  time.Time             `bun:",notnull"          json:"createdAt"`
	UpdatedAt  time.Time             `bun:",notnull"          json:"updatedAt"`
}

// TutorialProgress tracks a user's progress through a tutorial. The practice
// step completes when the submission's image is approved or the flag turns out
// to be a false positive.
type TutorialProgress struct {
	UserID            int64     `bun:",pk"                    json:"userId"`
	TutorialID        int64     `bun:",pk"                    json:"tutorialId"`
	PracticeCompleted bool      `bun:",notnull,default:false" json:"practiceCompleted"`
	UpdatedAt         time.Time `bun:",notnull"               json:"updatedAt"`
}

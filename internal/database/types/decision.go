package types

import (
	"time"

	"github.com/giftcraft/authentiq/internal/database/types/enum"
	"github.com/google/uuid"
)

// DecisionRecord is one immutable audit entry for an admin verdict.
// Records are append-only; no update or delete path exists anywhere.
type DecisionRecord struct {
	ID                  int64              `bun:",pk,autoincrement" json:"id"`
	UUID                uuid.UUID          `bun:",notnull,unique"   json:"uuid"`
	EntryID             int64              `bun:",notnull"          json:"entryId"`
	ImageID             int64              `bun:",notnull"          json:"imageId"`
	ImageType           enum.ImageType     `bun:",notnull"          json:"imageType"`
	OldDecision         enum.AdminDecision `bun:",notnull"          json:"oldDecision"`
	NewDecision         enum.AdminDecision `bun:",notnull"          json:"newDecision"`
	Reasoning           string             `bun:",notnull"          json:"reasoning"`
	AdminFeedback       string             `bun:",notnull,default:''" json:"adminFeedback"`
	PerformedBy         int64              `bun:",notnull"          json:"performedBy"`
	ReviewTimeSeconds   int64              `bun:",notnull"          json:"reviewTimeSeconds"`
	WasCorrectlyFlagged *bool              `bun:",nullzero"         json:"wasCorrectlyFlagged,omitempty"`
	Timestamp           time.Time          `bun:",notnull"          json:"timestamp"`
}

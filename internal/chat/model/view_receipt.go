package model

import (
	"time"

	"github.com/google/uuid"
)

// ViewReceipt is one entry of a message's viewedBy set. Rows are only ever
// added, never updated or removed, so the set grows monotonically.
type ViewReceipt struct {
	MessageID uuid.UUID `bun:",pk,type:uuid"`
	UserID    string    `bun:",pk"`

	ViewedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

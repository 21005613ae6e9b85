package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	AttachmentMedia = "media"
	AttachmentDoc   = "doc"
	AttachmentLink  = "link"
)

// Attachment is a derived index row: it points a group's media/docs/links
// listing back at the message that carried the payload. Rows are written
// in the same transaction as the message append and removed when the
// reaper evicts the message.
type Attachment struct {
	GroupID   uuid.UUID `bun:",notnull,type:uuid"`
	MessageID uuid.UUID `bun:",pk,type:uuid"`

	Kind string `bun:",notnull"`
	URL  string `bun:",notnull"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

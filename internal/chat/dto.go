package chat

import (
	"time"

	"github.com/google/uuid"
)

// Pagination defaults, applied only when the caller omitted the value.
const (
	DefaultPage     = 1
	DefaultPageSize = 8
)

// Input commands
type SendCommand struct {
	GroupID  uuid.UUID
	SenderID string
	Body     string
	ReplyTo  []uuid.UUID
}

// Output DTOs
type MessageDTO struct {
	ID        uuid.UUID   `json:"id"`
	GroupID   uuid.UUID   `json:"group_id"`
	SenderID  string      `json:"sender_id"`
	Body      string      `json:"message_body"`
	Pos       int64       `json:"pos"`
	CreatedAt time.Time   `json:"created_at"`
	ReplyTo   []uuid.UUID `json:"reply_to,omitempty"`

	// Populated on single-message reads
	Reactions map[string]string `json:"reactions,omitempty"`
	ViewedBy  []string          `json:"viewed_by,omitempty"`
}

type AttachmentDTO struct {
	MessageID uuid.UUID `json:"message_id"`
	Kind      string    `json:"kind"`
	URL       string    `json:"url"`
}

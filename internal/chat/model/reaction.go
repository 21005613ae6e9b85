package model

import (
	"time"

	"github.com/google/uuid"
)

// Reaction holds at most one value per (message, user); a second reaction
// from the same user overwrites the first.
type Reaction struct {
	MessageID uuid.UUID `bun:",pk,type:uuid"`
	UserID    string    `bun:",pk"`

	Value string `bun:",notnull"`

	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

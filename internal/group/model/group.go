package model

import (
	"time"

	"github.com/google/uuid"

	user "github.com/amalpanikulangara/arreWhatsapp/internal/user/model"
)

type Group struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	// Basic info
	GroupName        string `bun:",unique,notnull"`
	GroupDescription string `bun:",null"`

	// Ownership & metadata
	CreatedBy string     `bun:",notnull"`
	Creator   *user.User `bun:"rel:belongs-to,join:created_by=id"`

	// Retention policy; evaluated prospectively by the reaper
	DisappearingMessages bool `bun:",default:false"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`

	// Append cursor. MessageCount is only ever advanced while holding the
	// group row lock, so positions are gap-free and unique per group.
	// LastMessageAt keeps created_at labels monotone within the group.
	MessageCount  int64      `bun:",notnull,default:0"`
	LastMessageAt *time.Time `bun:",nullzero"`
}

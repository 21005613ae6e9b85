package models

import (
	"time"
)

type User struct {
	// ID = caller-assigned userId (immutable, used as the durable key)
	ID string `bun:",pk"`

	// Username = unique handle, stored lowercase so uniqueness is
	// case-insensitive
	Username string `bun:",unique,notnull"`

	MobileNumber string `bun:",unique,notnull"`

	// PasswordHash is the only credential ever stored; plaintext is
	// hashed in the usecase before it reaches this struct.
	PasswordHash string `bun:",notnull"`

	// AdminAccess = global operator flag, unrelated to per-group roles
	AdminAccess bool `bun:",default:false"`
	IsActive    bool `bun:",default:false"`

	LastSeenAt time.Time `bun:",nullzero"`

	ProfilePicture string `bun:",null"`
	StatusMessage  string `bun:",null"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

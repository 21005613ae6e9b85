package group

import (
	"time"

	"github.com/google/uuid"
)

// Input commands
type CreateCommand struct {
	GroupName            string
	GroupDescription     string
	FounderID            string
	ParticipantIDs       []string
	DisappearingMessages bool
}

// Output DTOs
type ParticipantDTO struct {
	UserID   string    `json:"user_id"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}

type GroupDTO struct {
	ID                   uuid.UUID        `json:"id"`
	GroupName            string           `json:"group_name"`
	GroupDescription     string           `json:"group_description,omitempty"`
	CreatedBy            string           `json:"created_by"`
	DisappearingMessages bool             `json:"disappearing_messages"`
	CreatedAt            time.Time        `json:"created_at"`
	Participants         []ParticipantDTO `json:"participants,omitempty"`
}

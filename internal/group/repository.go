package group

import (
	"context"

	"github.com/google/uuid"

	models "github.com/amalpanikulangara/arreWhatsapp/internal/group/model"
)

type GroupRepository interface {
	// CreateGroup inserts the group and its initial member rows in one
	// transaction. The founder row carries the admin role.
	CreateGroup(ctx context.Context, g *models.Group, participantIDs []string) error

	GetGroupByID(ctx context.Context, id uuid.UUID) (*models.Group, error)
	GetGroupByName(ctx context.Context, name string) (*models.Group, error)
	GroupNameExists(ctx context.Context, name string) (bool, error)

	AddMember(ctx context.Context, groupID uuid.UUID, userID, role string) error
	// RemoveMember drops the participant row; an admin role disappears
	// with it. Removing a non-member is a no-op.
	RemoveMember(ctx context.Context, groupID uuid.UUID, userID string) error
	SetMemberRole(ctx context.Context, groupID uuid.UUID, userID, role string) error
	IsMember(ctx context.Context, groupID uuid.UUID, userID string) (bool, error)
	ListMembers(ctx context.Context, groupID uuid.UUID) ([]models.GroupMember, error)

	SetDisappearingMessages(ctx context.Context, groupID uuid.UUID, enabled bool) error
}

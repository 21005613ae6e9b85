package group

import (
	"context"

	"github.com/google/uuid"
)

type GroupUsecase interface {
	// Create makes a group owned by the founder. The participant set is
	// {founder} ∪ initial participants; the admin set starts as {founder}.
	Create(ctx context.Context, cmd CreateCommand) (*GroupDTO, error)

	Get(ctx context.Context, groupID uuid.UUID) (*GroupDTO, error)

	// GetByName resolves a group by its unique name.
	GetByName(ctx context.Context, name string) (*GroupDTO, error)

	// IsParticipant reports membership; the group must exist.
	IsParticipant(ctx context.Context, groupID uuid.UUID, userID string) (bool, error)

	AddParticipant(ctx context.Context, groupID uuid.UUID, userID string) error
	RemoveParticipant(ctx context.Context, groupID uuid.UUID, userID string) error

	// SetAdmin grants or revokes the per-group admin role. Granting to a
	// non-participant is a precondition failure; the registry never
	// auto-promotes a replacement admin.
	SetAdmin(ctx context.Context, groupID uuid.UUID, userID string, enabled bool) error

	SetDisappearingMessages(ctx context.Context, groupID uuid.UUID, enabled bool) error
}

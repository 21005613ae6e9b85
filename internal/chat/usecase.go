package chat

import (
	"context"

	"github.com/google/uuid"
)

type ChatUsecase interface {
	// Send appends a message to the group's log and returns it with its
	// assigned position.
	Send(ctx context.Context, cmd SendCommand) (*MessageDTO, error)

	// List returns the 1-indexed page of the group's append-ordered log.
	// Pages past the end are an empty result, not an error.
	List(ctx context.Context, groupID uuid.UUID, page, pageSize int) ([]MessageDTO, error)

	Get(ctx context.Context, messageID uuid.UUID) (*MessageDTO, error)

	// React records the user's reaction; a later value overwrites.
	React(ctx context.Context, messageID uuid.UUID, userID, value string) error

	// MarkViewed adds the user to the message's viewedBy set; idempotent.
	MarkViewed(ctx context.Context, messageID uuid.UUID, userID string) error

	ListAttachments(ctx context.Context, groupID uuid.UUID, kind string) ([]AttachmentDTO, error)
}

package chat

import (
	"context"
	"time"

	"github.com/google/uuid"

	models "github.com/amalpanikulangara/arreWhatsapp/internal/chat/model"
)

type MessageRepository interface {
	// AppendMessage runs the whole append as one transaction: it locks the
	// group row, validates sender membership and replyTo references,
	// assigns the next position, stamps a monotone created_at and writes
	// the message, its reply links and any derived attachment row.
	AppendMessage(ctx context.Context, msg *models.Message, replyTo []uuid.UUID) error

	GetMessage(ctx context.Context, id uuid.UUID) (*models.Message, error)
	// ListMessages returns the group's log slice [offset, offset+limit)
	// in append order.
	ListMessages(ctx context.Context, groupID uuid.UUID, offset, limit int) ([]models.Message, error)
	ListReplyIDs(ctx context.Context, messageIDs []uuid.UUID) (map[uuid.UUID][]uuid.UUID, error)

	UpsertReaction(ctx context.Context, messageID uuid.UUID, userID, value string) error
	ListReactions(ctx context.Context, messageID uuid.UUID) ([]models.Reaction, error)

	MarkViewed(ctx context.Context, messageID uuid.UUID, userID string, at time.Time) error
	ListViewers(ctx context.Context, messageID uuid.UUID) ([]string, error)

	ListAttachments(ctx context.Context, groupID uuid.UUID, kind string) ([]models.Attachment, error)

	// Reaper support
	DisappearingGroupIDs(ctx context.Context) ([]uuid.UUID, error)
	// DeleteExpired evicts messages of the group older than cutoff together
	// with their reply links, reactions, receipts and attachment rows. It
	// takes the same group row lock as AppendMessage.
	DeleteExpired(ctx context.Context, groupID uuid.UUID, cutoff time.Time) (int64, error)
}

package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/amalpanikulangara/arreWhatsapp/internal/chat"
	models "github.com/amalpanikulangara/arreWhatsapp/internal/chat/model"
	"github.com/amalpanikulangara/arreWhatsapp/internal/chat/repository"
	"github.com/amalpanikulangara/arreWhatsapp/pkg/errors"
	"github.com/amalpanikulangara/arreWhatsapp/pkg/logger"
)

type ChatUsecase struct {
	repo   chat.MessageRepository
	logger *logger.Logger
}

func NewChatUsecase(repo chat.MessageRepository, logger *logger.Logger) *ChatUsecase {
	return &ChatUsecase{repo: repo, logger: logger}
}

func (uc *ChatUsecase) Send(ctx context.Context, cmd chat.SendCommand) (*chat.MessageDTO, error) {
	if strings.TrimSpace(cmd.SenderID) == "" {
		return nil, errors.InvalidArg("sender is required")
	}
	if strings.TrimSpace(cmd.Body) == "" {
		return nil, errors.InvalidArg("messageBody is required")
	}

	msg := &models.Message{
		GroupID:     cmd.GroupID,
		SenderID:    cmd.SenderID,
		MessageBody: cmd.Body,
	}
	replyTo := uniqueIDs(cmd.ReplyTo)
	if err := uc.repo.AppendMessage(ctx, msg, replyTo); err != nil {
		switch {
		case errors.Is(err, repository.ErrGroupNotFound):
			return nil, errors.ErrGroupNotFound
		case errors.Is(err, repository.ErrSenderNotParticipant):
			return nil, errors.ErrSenderNotParticipant
		case errors.Is(err, repository.ErrReplyNotInGroup):
			return nil, errors.ErrReplyNotInGroup
		}
		uc.logger.Errorf("error while appending message: %v", err)
		return nil, errors.ErrSendFailed(errors.Internal("database error"))
	}

	// Echo the reply set as stored, not as sent.
	dto := toMessageDTO(msg)
	dto.ReplyTo = replyTo
	return dto, nil
}

func (uc *ChatUsecase) List(ctx context.Context, groupID uuid.UUID, page, pageSize int) ([]chat.MessageDTO, error) {
	if page < 1 {
		return nil, errors.ErrInvalidPage
	}
	if pageSize < 1 {
		return nil, errors.ErrInvalidPageSize
	}

	offset := (page - 1) * pageSize
	msgs, err := uc.repo.ListMessages(ctx, groupID, offset, pageSize)
	if err != nil {
		uc.logger.Error("failed to list messages", "group_id", groupID, "err", err)
		return nil, errors.Internal("internal server error")
	}

	ids := make([]uuid.UUID, 0, len(msgs))
	for _, m := range msgs {
		ids = append(ids, m.ID)
	}
	replies, err := uc.repo.ListReplyIDs(ctx, ids)
	if err != nil {
		uc.logger.Error("failed to load reply links", "group_id", groupID, "err", err)
		return nil, errors.Internal("internal server error")
	}

	out := make([]chat.MessageDTO, 0, len(msgs))
	for _, m := range msgs {
		dto := toMessageDTO(&m)
		dto.ReplyTo = replies[m.ID]
		out = append(out, *dto)
	}
	return out, nil
}

func (uc *ChatUsecase) Get(ctx context.Context, messageID uuid.UUID) (*chat.MessageDTO, error) {
	msg, err := uc.repo.GetMessage(ctx, messageID)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return nil, errors.ErrMessageNotFound
		}
		uc.logger.Error("failed to load message", "message_id", messageID, "err", err)
		return nil, errors.Internal("internal server error")
	}

	dto := toMessageDTO(msg)

	replies, err := uc.repo.ListReplyIDs(ctx, []uuid.UUID{messageID})
	if err != nil {
		return nil, errors.Internal("internal server error")
	}
	dto.ReplyTo = replies[messageID]

	reactions, err := uc.repo.ListReactions(ctx, messageID)
	if err != nil {
		return nil, errors.Internal("internal server error")
	}
	if len(reactions) > 0 {
		dto.Reactions = make(map[string]string, len(reactions))
		for _, reaction := range reactions {
			dto.Reactions[reaction.UserID] = reaction.Value
		}
	}

	viewers, err := uc.repo.ListViewers(ctx, messageID)
	if err != nil {
		return nil, errors.Internal("internal server error")
	}
	dto.ViewedBy = viewers

	return dto, nil
}

func (uc *ChatUsecase) React(ctx context.Context, messageID uuid.UUID, userID, value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.InvalidArg("reaction value is required")
	}

	err := uc.repo.UpsertReaction(ctx, messageID, userID, value)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return errors.ErrMessageNotFound
		}
		uc.logger.Error("failed to store reaction", "message_id", messageID, "user_id", userID, "err", err)
		return errors.Internal("error while storing reaction")
	}
	return nil
}

func (uc *ChatUsecase) MarkViewed(ctx context.Context, messageID uuid.UUID, userID string) error {
	err := uc.repo.MarkViewed(ctx, messageID, userID, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrMessageNotFound):
			return errors.ErrMessageNotFound
		case errors.Is(err, repository.ErrViewerNotParticipant):
			return errors.ErrViewerNotParticipant
		}
		uc.logger.Error("failed to store view receipt", "message_id", messageID, "user_id", userID, "err", err)
		return errors.Internal("error while storing view receipt")
	}
	return nil
}

func (uc *ChatUsecase) ListAttachments(ctx context.Context, groupID uuid.UUID, kind string) ([]chat.AttachmentDTO, error) {
	switch kind {
	case "", models.AttachmentMedia, models.AttachmentDoc, models.AttachmentLink:
	default:
		return nil, errors.InvalidArg("unknown attachment kind")
	}

	attachments, err := uc.repo.ListAttachments(ctx, groupID, kind)
	if err != nil {
		uc.logger.Error("failed to list attachments", "group_id", groupID, "err", err)
		return nil, errors.Internal("internal server error")
	}

	out := make([]chat.AttachmentDTO, 0, len(attachments))
	for _, a := range attachments {
		out = append(out, chat.AttachmentDTO{
			MessageID: a.MessageID,
			Kind:      a.Kind,
			URL:       a.URL,
		})
	}
	return out, nil
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	if len(ids) < 2 {
		return ids
	}
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func toMessageDTO(m *models.Message) *chat.MessageDTO {
	return &chat.MessageDTO{
		ID:        m.ID,
		GroupID:   m.GroupID,
		SenderID:  m.SenderID,
		Body:      m.MessageBody,
		Pos:       m.Pos,
		CreatedAt: m.CreatedAt,
	}
}

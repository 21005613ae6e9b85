package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	models "github.com/amalpanikulangara/arreWhatsapp/internal/chat/model"
	groupmodels "github.com/amalpanikulangara/arreWhatsapp/internal/group/model"
	"github.com/amalpanikulangara/arreWhatsapp/pkg/logger"
)

type MessageRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

var (
	ErrGroupNotFound        = errors.New("group not found")
	ErrMessageNotFound      = errors.New("message not found")
	ErrSenderNotParticipant = errors.New("sender is not a participant of the group")
	ErrViewerNotParticipant = errors.New("viewer is not a participant of the group")
	ErrReplyNotInGroup      = errors.New("replyTo does not reference a message in the same group")
)

func NewMessageRepository(db *bun.DB, logger *logger.Logger) *MessageRepository {
	return &MessageRepository{
		db:     db,
		logger: logger,
	}
}

func (r *MessageRepository) AppendMessage(ctx context.Context, msg *models.Message, replyTo []uuid.UUID) error {

	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		// The locked group row is the per-group serialization point:
		// concurrent appends to the same group queue here, appends to
		// other groups do not contend.
		g := new(groupmodels.Group)
		err := tx.NewSelect().
			Model(g).
			Where("id = ?", msg.GroupID).
			For("UPDATE").
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrGroupNotFound
			}
			return errors.Wrap(err, "messageRepo.AppendMessage.LockGroup: ")
		}

		isMember, err := memberExists(ctx, tx, msg.GroupID, msg.SenderID)
		if err != nil {
			return err
		}
		if !isMember {
			return ErrSenderNotParticipant
		}

		replyTo = dedupe(replyTo)
		if len(replyTo) > 0 {
			count, err := tx.NewSelect().
				Model((*models.Message)(nil)).
				Where("id IN (?)", bun.In(replyTo)).
				Where("group_id = ?", msg.GroupID).
				Count(ctx)
			if err != nil {
				return errors.Wrap(err, "messageRepo.AppendMessage.CountReplies: ")
			}
			if count != len(replyTo) {
				return ErrReplyNotInGroup
			}
		}

		msg.Pos = g.MessageCount + 1
		now := time.Now()
		if g.LastMessageAt != nil && now.Before(*g.LastMessageAt) {
			// wall clock went backwards; keep created_at monotone
			now = *g.LastMessageAt
		}
		msg.CreatedAt = now

		if _, err := tx.NewInsert().Model(msg).Returning("*").Exec(ctx); err != nil {
			return errors.Wrap(err, "messageRepo.AppendMessage.InsertMessage: ")
		}

		if len(replyTo) > 0 {
			links := make([]models.MessageReply, 0, len(replyTo))
			for _, id := range replyTo {
				links = append(links, models.MessageReply{MessageID: msg.ID, ReplyToID: id})
			}
			if _, err := tx.NewInsert().Model(&links).Exec(ctx); err != nil {
				return errors.Wrap(err, "messageRepo.AppendMessage.InsertReplies: ")
			}
		}

		// Derived index rows are written in the same transaction: there is
		// no window where the message exists but the index does not.
		if kind, url, ok := detectAttachment(msg.MessageBody); ok {
			att := &models.Attachment{
				GroupID:   msg.GroupID,
				MessageID: msg.ID,
				Kind:      kind,
				URL:       url,
				CreatedAt: now,
			}
			if _, err := tx.NewInsert().Model(att).Exec(ctx); err != nil {
				return errors.Wrap(err, "messageRepo.AppendMessage.InsertAttachment: ")
			}
		}

		if _, err := tx.NewUpdate().
			Model((*groupmodels.Group)(nil)).
			Set("message_count = ?", msg.Pos).
			Set("last_message_at = ?", now).
			Where("id = ?", msg.GroupID).
			Exec(ctx); err != nil {
			return errors.Wrap(err, "messageRepo.AppendMessage.BumpCursor: ")
		}
		return nil
	})
}

func (r *MessageRepository) GetMessage(ctx context.Context, id uuid.UUID) (*models.Message, error) {

	msg := new(models.Message)
	err := r.db.NewSelect().Model(msg).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMessageNotFound
		}
		return nil, errors.Wrap(err, "messageRepo.GetMessage.Scan: ")
	}
	return msg, nil
}

func (r *MessageRepository) ListMessages(ctx context.Context, groupID uuid.UUID, offset, limit int) ([]models.Message, error) {
	var msgs []models.Message
	err := r.db.NewSelect().
		Model(&msgs).
		Where("group_id = ?", groupID).
		Order("pos ASC").
		Offset(offset).
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "messageRepo.ListMessages.Scan: ")
	}
	return msgs, nil
}

func (r *MessageRepository) ListReplyIDs(ctx context.Context, messageIDs []uuid.UUID) (map[uuid.UUID][]uuid.UUID, error) {
	if len(messageIDs) == 0 {
		return nil, nil
	}

	var links []models.MessageReply
	err := r.db.NewSelect().
		Model(&links).
		Where("message_id IN (?)", bun.In(messageIDs)).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "messageRepo.ListReplyIDs.Scan: ")
	}

	out := make(map[uuid.UUID][]uuid.UUID, len(links))
	for _, l := range links {
		out[l.MessageID] = append(out[l.MessageID], l.ReplyToID)
	}
	return out, nil
}

func (r *MessageRepository) UpsertReaction(ctx context.Context, messageID uuid.UUID, userID, value string) error {

	exists, err := r.db.NewSelect().
		Model((*models.Message)(nil)).
		Where("id = ?", messageID).
		Exists(ctx)
	if err != nil {
		return errors.Wrap(err, "messageRepo.UpsertReaction.Exists: ")
	}
	if !exists {
		return ErrMessageNotFound
	}

	reaction := &models.Reaction{
		MessageID: messageID,
		UserID:    userID,
		Value:     value,
		UpdatedAt: time.Now(),
	}
	_, err = r.db.NewInsert().
		Model(reaction).
		On("CONFLICT (message_id, user_id) DO UPDATE").
		Set("value = EXCLUDED.value").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "messageRepo.UpsertReaction.Exec: ")
	}
	return nil
}

func (r *MessageRepository) ListReactions(ctx context.Context, messageID uuid.UUID) ([]models.Reaction, error) {
	var reactions []models.Reaction
	err := r.db.NewSelect().
		Model(&reactions).
		Where("message_id = ?", messageID).
		Order("user_id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "messageRepo.ListReactions.Scan: ")
	}
	return reactions, nil
}

func (r *MessageRepository) MarkViewed(ctx context.Context, messageID uuid.UUID, userID string, at time.Time) error {

	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		msg := new(models.Message)
		err := tx.NewSelect().Model(msg).Column("group_id").Where("id = ?", messageID).Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrMessageNotFound
			}
			return errors.Wrap(err, "messageRepo.MarkViewed.GetMessage: ")
		}

		isMember, err := memberExists(ctx, tx, msg.GroupID, userID)
		if err != nil {
			return err
		}
		if !isMember {
			return ErrViewerNotParticipant
		}

		receipt := &models.ViewReceipt{
			MessageID: messageID,
			UserID:    userID,
			ViewedAt:  at,
		}
		if _, err := tx.NewInsert().
			Model(receipt).
			On("CONFLICT (message_id, user_id) DO NOTHING").
			Exec(ctx); err != nil {
			return errors.Wrap(err, "messageRepo.MarkViewed.Insert: ")
		}
		return nil
	})
}

func (r *MessageRepository) ListViewers(ctx context.Context, messageID uuid.UUID) ([]string, error) {
	var receipts []models.ViewReceipt
	err := r.db.NewSelect().
		Model(&receipts).
		Where("message_id = ?", messageID).
		Order("viewed_at ASC", "user_id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "messageRepo.ListViewers.Scan: ")
	}

	viewers := make([]string, 0, len(receipts))
	for _, rec := range receipts {
		viewers = append(viewers, rec.UserID)
	}
	return viewers, nil
}

func (r *MessageRepository) ListAttachments(ctx context.Context, groupID uuid.UUID, kind string) ([]models.Attachment, error) {
	var attachments []models.Attachment
	q := r.db.NewSelect().
		Model(&attachments).
		Where("group_id = ?", groupID).
		Order("created_at ASC")
	if kind != "" {
		q = q.Where("kind = ?", kind)
	}

	if err := q.Scan(ctx); err != nil {
		return nil, errors.Wrap(err, "messageRepo.ListAttachments.Scan: ")
	}
	return attachments, nil
}

func (r *MessageRepository) DisappearingGroupIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.NewSelect().
		Model((*groupmodels.Group)(nil)).
		Column("id").
		Where("disappearing_messages = TRUE").
		Scan(ctx, &ids)
	if err != nil {
		return nil, errors.Wrap(err, "messageRepo.DisappearingGroupIDs.Scan: ")
	}
	return ids, nil
}

func (r *MessageRepository) DeleteExpired(ctx context.Context, groupID uuid.UUID, cutoff time.Time) (int64, error) {

	var evicted int64
	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		// Same lock as AppendMessage so eviction never interleaves with an
		// in-progress append on this group.
		g := new(groupmodels.Group)
		err := tx.NewSelect().
			Model(g).
			Where("id = ?", groupID).
			For("UPDATE").
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrGroupNotFound
			}
			return errors.Wrap(err, "messageRepo.DeleteExpired.LockGroup: ")
		}

		var ids []uuid.UUID
		err = tx.NewSelect().
			Model((*models.Message)(nil)).
			Column("id").
			Where("group_id = ?", groupID).
			Where("created_at < ?", cutoff).
			Scan(ctx, &ids)
		if err != nil {
			return errors.Wrap(err, "messageRepo.DeleteExpired.SelectExpired: ")
		}
		if len(ids) == 0 {
			return nil
		}

		if _, err := tx.NewDelete().
			Model((*models.MessageReply)(nil)).
			Where("message_id IN (?) OR reply_to_id IN (?)", bun.In(ids), bun.In(ids)).
			Exec(ctx); err != nil {
			return errors.Wrap(err, "messageRepo.DeleteExpired.DeleteReplies: ")
		}
		if _, err := tx.NewDelete().
			Model((*models.Reaction)(nil)).
			Where("message_id IN (?)", bun.In(ids)).
			Exec(ctx); err != nil {
			return errors.Wrap(err, "messageRepo.DeleteExpired.DeleteReactions: ")
		}
		if _, err := tx.NewDelete().
			Model((*models.ViewReceipt)(nil)).
			Where("message_id IN (?)", bun.In(ids)).
			Exec(ctx); err != nil {
			return errors.Wrap(err, "messageRepo.DeleteExpired.DeleteReceipts: ")
		}
		if _, err := tx.NewDelete().
			Model((*models.Attachment)(nil)).
			Where("message_id IN (?)", bun.In(ids)).
			Exec(ctx); err != nil {
			return errors.Wrap(err, "messageRepo.DeleteExpired.DeleteAttachments: ")
		}
		if _, err := tx.NewDelete().
			Model((*models.Message)(nil)).
			Where("id IN (?)", bun.In(ids)).
			Exec(ctx); err != nil {
			return errors.Wrap(err, "messageRepo.DeleteExpired.DeleteMessages: ")
		}

		evicted = int64(len(ids))
		return nil
	})
	return evicted, err
}

func memberExists(ctx context.Context, tx bun.Tx, groupID uuid.UUID, userID string) (bool, error) {
	exists, err := tx.NewSelect().
		Model((*groupmodels.GroupMember)(nil)).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Exists(ctx)
	if err != nil {
		return false, errors.Wrap(err, "messageRepo.memberExists: ")
	}
	return exists, nil
}

// dedupe never writes through the input slice; callers keep their copy.
func dedupe(ids []uuid.UUID) []uuid.UUID {
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

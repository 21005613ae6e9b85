package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amalpanikulangara/arreWhatsapp/config"
	"github.com/amalpanikulangara/arreWhatsapp/internal/chat"
	"github.com/amalpanikulangara/arreWhatsapp/internal/chat/mocks"
	models "github.com/amalpanikulangara/arreWhatsapp/internal/chat/model"
	"github.com/amalpanikulangara/arreWhatsapp/internal/chat/repository"
	appErrors "github.com/amalpanikulangara/arreWhatsapp/pkg/errors"
	"github.com/amalpanikulangara/arreWhatsapp/pkg/logger"
)

func newUsecase(t *testing.T) (*ChatUsecase, *mocks.MockMessageRepository) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockMessageRepository(ctrl)
	log, _ := logger.NewLogger(&config.Config{})
	return NewChatUsecase(mockRepo, log), mockRepo
}

func TestChatUsecase_Send(t *testing.T) {
	groupID := uuid.New()

	t.Run("happy path - message gets its assigned position back", func(t *testing.T) {
		uc, mockRepo := newUsecase(t)

		mockRepo.EXPECT().AppendMessage(gomock.Any(), gomock.Any(), nil).DoAndReturn(
			func(_ context.Context, msg *models.Message, _ []uuid.UUID) error {
				require.Equal(t, groupID, msg.GroupID)
				require.Equal(t, "u-1", msg.SenderID)
				msg.ID = uuid.New()
				msg.Pos = 4
				msg.CreatedAt = time.Now()
				return nil
			})

		dto, err := uc.Send(context.Background(), chat.SendCommand{
			GroupID:  groupID,
			SenderID: "u-1",
			Body:     "hello all",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(4), dto.Pos)
		assert.Equal(t, "hello all", dto.Body)
	})

	t.Run("happy path - replyTo carried into the DTO", func(t *testing.T) {
		uc, mockRepo := newUsecase(t)
		target := uuid.New()

		mockRepo.EXPECT().AppendMessage(gomock.Any(), gomock.Any(), []uuid.UUID{target}).Return(nil)

		dto, err := uc.Send(context.Background(), chat.SendCommand{
			GroupID:  groupID,
			SenderID: "u-1",
			Body:     "replying",
			ReplyTo:  []uuid.UUID{target},
		})
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{target}, dto.ReplyTo)
	})

	t.Run("happy path - duplicate reply targets collapse, caller slice untouched", func(t *testing.T) {
		uc, mockRepo := newUsecase(t)
		a, b := uuid.New(), uuid.New()
		sent := []uuid.UUID{a, a, b}

		mockRepo.EXPECT().AppendMessage(gomock.Any(), gomock.Any(), []uuid.UUID{a, b}).Return(nil)

		dto, err := uc.Send(context.Background(), chat.SendCommand{
			GroupID:  groupID,
			SenderID: "u-1",
			Body:     "replying twice to the same message",
			ReplyTo:  sent,
		})
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{a, b}, dto.ReplyTo, "acknowledgement must report the stored reply set")
		assert.Equal(t, []uuid.UUID{a, a, b}, sent, "the caller's slice must not be rewritten")
	})

	t.Run("sad path - empty body", func(t *testing.T) {
		uc, _ := newUsecase(t)

		_, err := uc.Send(context.Background(), chat.SendCommand{
			GroupID:  groupID,
			SenderID: "u-1",
			Body:     "   ",
		})
		assert.Equal(t, appErrors.CodeInvalidArgument, appErrors.CodeOf(err))
	})

	t.Run("sad path - unknown group", func(t *testing.T) {
		uc, mockRepo := newUsecase(t)
		mockRepo.EXPECT().AppendMessage(gomock.Any(), gomock.Any(), nil).Return(repository.ErrGroupNotFound)

		_, err := uc.Send(context.Background(), chat.SendCommand{
			GroupID:  groupID,
			SenderID: "u-1",
			Body:     "hello",
		})
		assert.ErrorIs(t, err, appErrors.ErrGroupNotFound)
	})

	t.Run("sad path - sender not a participant", func(t *testing.T) {
		uc, mockRepo := newUsecase(t)
		mockRepo.EXPECT().AppendMessage(gomock.Any(), gomock.Any(), nil).Return(repository.ErrSenderNotParticipant)

		_, err := uc.Send(context.Background(), chat.SendCommand{
			GroupID:  groupID,
			SenderID: "outsider",
			Body:     "hello",
		})
		assert.ErrorIs(t, err, appErrors.ErrSenderNotParticipant)
	})

	t.Run("sad path - reply target outside the group", func(t *testing.T) {
		uc, mockRepo := newUsecase(t)
		target := uuid.New()
		mockRepo.EXPECT().AppendMessage(gomock.Any(), gomock.Any(), []uuid.UUID{target}).Return(repository.ErrReplyNotInGroup)

		_, err := uc.Send(context.Background(), chat.SendCommand{
			GroupID:  groupID,
			SenderID: "u-1",
			Body:     "hello",
			ReplyTo:  []uuid.UUID{target},
		})
		assert.ErrorIs(t, err, appErrors.ErrReplyNotInGroup)
	})
}

func TestChatUsecase_List(t *testing.T) {
	groupID := uuid.New()

	messages := func(n int) []models.Message {
		out := make([]models.Message, n)
		for i := range out {
			out[i] = models.Message{ID: uuid.New(), GroupID: groupID, SenderID: "u-1", Pos: int64(i + 1)}
		}
		return out
	}

	t.Run("happy path - second page maps to the right offset", func(t *testing.T) {
		uc, mockRepo := newUsecase(t)
		window := messages(4)

		g := mockRepo.EXPECT()
		g.ListMessages(gomock.Any(), groupID, 4, 4).Return(window, nil)
		g.ListReplyIDs(gomock.Any(), gomock.Len(4)).Return(map[uuid.UUID][]uuid.UUID{}, nil)

		got, err := uc.List(context.Background(), groupID, 2, 4)
		require.NoError(t, err)
		require.Len(t, got, 4)
		assert.Equal(t, int64(1), got[0].Pos)
	})

	t.Run("happy path - page past the end is empty", func(t *testing.T) {
		uc, mockRepo := newUsecase(t)

		g := mockRepo.EXPECT()
		g.ListMessages(gomock.Any(), groupID, 72, 8).Return(nil, nil)
		g.ListReplyIDs(gomock.Any(), gomock.Len(0)).Return(map[uuid.UUID][]uuid.UUID{}, nil)

		got, err := uc.List(context.Background(), groupID, 10, 8)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("happy path - reply links attached per message", func(t *testing.T) {
		uc, mockRepo := newUsecase(t)
		window := messages(2)
		target := uuid.New()

		g := mockRepo.EXPECT()
		g.ListMessages(gomock.Any(), groupID, 0, 8).Return(window, nil)
		g.ListReplyIDs(gomock.Any(), []uuid.UUID{window[0].ID, window[1].ID}).Return(
			map[uuid.UUID][]uuid.UUID{window[1].ID: {target}}, nil)

		got, err := uc.List(context.Background(), groupID, 1, 8)
		require.NoError(t, err)
		assert.Empty(t, got[0].ReplyTo)
		assert.Equal(t, []uuid.UUID{target}, got[1].ReplyTo)
	})

	t.Run("sad path - zero page rejected", func(t *testing.T) {
		uc, _ := newUsecase(t)
		_, err := uc.List(context.Background(), groupID, 0, 8)
		assert.ErrorIs(t, err, appErrors.ErrInvalidPage)
	})

	t.Run("sad path - negative page size rejected", func(t *testing.T) {
		uc, _ := newUsecase(t)
		_, err := uc.List(context.Background(), groupID, 1, -3)
		assert.ErrorIs(t, err, appErrors.ErrInvalidPageSize)
	})
}

func TestChatUsecase_Get(t *testing.T) {
	messageID := uuid.New()
	groupID := uuid.New()

	t.Run("happy path - reactions and viewers populated", func(t *testing.T) {
		uc, mockRepo := newUsecase(t)

		g := mockRepo.EXPECT()
		g.GetMessage(gomock.Any(), messageID).Return(&models.Message{
			ID: messageID, GroupID: groupID, SenderID: "u-1", MessageBody: "hi", Pos: 1,
		}, nil)
		g.ListReplyIDs(gomock.Any(), []uuid.UUID{messageID}).Return(map[uuid.UUID][]uuid.UUID{}, nil)
		g.ListReactions(gomock.Any(), messageID).Return([]models.Reaction{
			{MessageID: messageID, UserID: "u-2", Value: "👍"},
		}, nil)
		g.ListViewers(gomock.Any(), messageID).Return([]string{"u-2", "u-3"}, nil)

		dto, err := uc.Get(context.Background(), messageID)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"u-2": "👍"}, dto.Reactions)
		assert.Equal(t, []string{"u-2", "u-3"}, dto.ViewedBy)
	})

	t.Run("sad path - unknown message", func(t *testing.T) {
		uc, mockRepo := newUsecase(t)
		mockRepo.EXPECT().GetMessage(gomock.Any(), messageID).Return(nil, repository.ErrMessageNotFound)

		_, err := uc.Get(context.Background(), messageID)
		assert.ErrorIs(t, err, appErrors.ErrMessageNotFound)
	})
}

func TestChatUsecase_React(t *testing.T) {
	messageID := uuid.New()

	t.Run("happy path", func(t *testing.T) {
		uc, mockRepo := newUsecase(t)
		mockRepo.EXPECT().UpsertReaction(gomock.Any(), messageID, "u-2", "❤️").Return(nil)

		err := uc.React(context.Background(), messageID, "u-2", "❤️")
		assert.NoError(t, err)
	})

	t.Run("sad path - empty value", func(t *testing.T) {
		uc, _ := newUsecase(t)
		err := uc.React(context.Background(), messageID, "u-2", "")
		assert.Equal(t, appErrors.CodeInvalidArgument, appErrors.CodeOf(err))
	})

	t.Run("sad path - unknown message", func(t *testing.T) {
		uc, mockRepo := newUsecase(t)
		mockRepo.EXPECT().UpsertReaction(gomock.Any(), messageID, "u-2", "👍").Return(repository.ErrMessageNotFound)

		err := uc.React(context.Background(), messageID, "u-2", "👍")
		assert.ErrorIs(t, err, appErrors.ErrMessageNotFound)
	})
}

func TestChatUsecase_MarkViewed(t *testing.T) {
	messageID := uuid.New()

	t.Run("happy path", func(t *testing.T) {
		uc, mockRepo := newUsecase(t)
		mockRepo.EXPECT().MarkViewed(gomock.Any(), messageID, "u-2", gomock.Any()).Return(nil)

		err := uc.MarkViewed(context.Background(), messageID, "u-2")
		assert.NoError(t, err)
	})

	t.Run("sad path - viewer not a participant", func(t *testing.T) {
		uc, mockRepo := newUsecase(t)
		mockRepo.EXPECT().MarkViewed(gomock.Any(), messageID, "outsider", gomock.Any()).Return(repository.ErrViewerNotParticipant)

		err := uc.MarkViewed(context.Background(), messageID, "outsider")
		assert.ErrorIs(t, err, appErrors.ErrViewerNotParticipant)
	})
}

func TestChatUsecase_ListAttachments(t *testing.T) {
	groupID := uuid.New()

	t.Run("happy path - filtered by kind", func(t *testing.T) {
		uc, mockRepo := newUsecase(t)
		messageID := uuid.New()

		mockRepo.EXPECT().ListAttachments(gomock.Any(), groupID, models.AttachmentMedia).Return([]models.Attachment{
			{GroupID: groupID, MessageID: messageID, Kind: models.AttachmentMedia, URL: "https://cdn.example.com/pic.png"},
		}, nil)

		got, err := uc.ListAttachments(context.Background(), groupID, models.AttachmentMedia)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "https://cdn.example.com/pic.png", got[0].URL)
	})

	t.Run("sad path - unknown kind", func(t *testing.T) {
		uc, _ := newUsecase(t)
		_, err := uc.ListAttachments(context.Background(), groupID, "stickers")
		assert.Equal(t, appErrors.CodeInvalidArgument, appErrors.CodeOf(err))
	})
}

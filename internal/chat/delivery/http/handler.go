package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/amalpanikulangara/arreWhatsapp/internal/chat"
	appErrors "github.com/amalpanikulangara/arreWhatsapp/pkg/errors"
	"github.com/amalpanikulangara/arreWhatsapp/pkg/logger"
)

type ChatHandler struct {
	uc     chat.ChatUsecase
	logger *logger.Logger
}

func NewChatHandler(uc chat.ChatUsecase, logger *logger.Logger) *ChatHandler {
	return &ChatHandler{uc: uc, logger: logger}
}

type sendRequest struct {
	GroupID  uuid.UUID   `json:"group_id" binding:"required"`
	SenderID string      `json:"sender_id" binding:"required"`
	Body     string      `json:"message_body" binding:"required"`
	ReplyTo  []uuid.UUID `json:"reply_to"`
}

type reactRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Value  string `json:"value" binding:"required"`
}

type viewRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

// List answers GET /chats. The page and max query parameters default to
// 1 and 8 only when absent; a supplied value is always applied.
func (h *ChatHandler) List(c *gin.Context) {
	groupID, err := uuid.Parse(c.Query("group"))
	if err != nil {
		respondError(c, appErrors.InvalidArg("group must be a valid group id"))
		return
	}

	page := chat.DefaultPage
	if raw := c.Query("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil {
			respondError(c, appErrors.InvalidArg("page must be a number"))
			return
		}
	}
	pageSize := chat.DefaultPageSize
	if raw := c.Query("max"); raw != "" {
		pageSize, err = strconv.Atoi(raw)
		if err != nil {
			respondError(c, appErrors.InvalidArg("max must be a number"))
			return
		}
	}

	msgs, err := h.uc.List(c.Request.Context(), groupID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}

func (h *ChatHandler) Send(c *gin.Context) {
	var req sendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, appErrors.InvalidArg(err.Error()))
		return
	}

	msg, err := h.uc.Send(c.Request.Context(), chat.SendCommand{
		GroupID:  req.GroupID,
		SenderID: req.SenderID,
		Body:     req.Body,
		ReplyTo:  req.ReplyTo,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Sent", "data": msg})
}

func (h *ChatHandler) Get(c *gin.Context) {
	messageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, appErrors.InvalidArg("message id must be a uuid"))
		return
	}

	msg, err := h.uc.Get(c.Request.Context(), messageID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, msg)
}

func (h *ChatHandler) React(c *gin.Context) {
	messageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, appErrors.InvalidArg("message id must be a uuid"))
		return
	}
	var req reactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, appErrors.InvalidArg(err.Error()))
		return
	}

	if err := h.uc.React(c.Request.Context(), messageID, req.UserID, req.Value); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ChatHandler) MarkViewed(c *gin.Context) {
	messageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, appErrors.InvalidArg("message id must be a uuid"))
		return
	}
	var req viewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, appErrors.InvalidArg(err.Error()))
		return
	}

	if err := h.uc.MarkViewed(c.Request.Context(), messageID, req.UserID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListAttachments answers GET /groups/:id/attachments, the media/docs/links
// index of a group. The kind query parameter filters to one index.
func (h *ChatHandler) ListAttachments(c *gin.Context) {
	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, appErrors.InvalidArg("group id must be a uuid"))
		return
	}

	attachments, err := h.uc.ListAttachments(c.Request.Context(), groupID, c.Query("kind"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, attachments)
}

func respondError(c *gin.Context, err error) {
	c.JSON(appErrors.HTTPStatus(err), gin.H{
		"code":  appErrors.CodeOf(err),
		"error": err.Error(),
	})
}

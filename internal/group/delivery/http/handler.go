package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/amalpanikulangara/arreWhatsapp/internal/group"
	appErrors "github.com/amalpanikulangara/arreWhatsapp/pkg/errors"
	"github.com/amalpanikulangara/arreWhatsapp/pkg/logger"
)

type GroupHandler struct {
	uc     group.GroupUsecase
	logger *logger.Logger
}

func NewGroupHandler(uc group.GroupUsecase, logger *logger.Logger) *GroupHandler {
	return &GroupHandler{uc: uc, logger: logger}
}

type createRequest struct {
	GroupName            string   `json:"group_name" binding:"required"`
	GroupDescription     string   `json:"group_description"`
	FounderID            string   `json:"founder_id" binding:"required"`
	ParticipantIDs       []string `json:"participant_ids"`
	DisappearingMessages bool     `json:"disappearing_messages"`
}

type participantRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

type adminRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

type disappearingRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

func (h *GroupHandler) Create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, appErrors.InvalidArg(err.Error()))
		return
	}

	dto, err := h.uc.Create(c.Request.Context(), group.CreateCommand{
		GroupName:            req.GroupName,
		GroupDescription:     req.GroupDescription,
		FounderID:            req.FounderID,
		ParticipantIDs:       req.ParticipantIDs,
		DisappearingMessages: req.DisappearingMessages,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto)
}

func (h *GroupHandler) Get(c *gin.Context) {
	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, appErrors.InvalidArg("group id must be a uuid"))
		return
	}

	dto, err := h.uc.Get(c.Request.Context(), groupID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto)
}

// GetByName answers GET /groups?name=..., the lookup callers use before
// they know a group's id.
func (h *GroupHandler) GetByName(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		respondError(c, appErrors.InvalidArg("name query parameter is required"))
		return
	}

	dto, err := h.uc.GetByName(c.Request.Context(), name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto)
}

func (h *GroupHandler) IsParticipant(c *gin.Context) {
	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, appErrors.InvalidArg("group id must be a uuid"))
		return
	}

	ok, err := h.uc.IsParticipant(c.Request.Context(), groupID, c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"is_participant": ok})
}

func (h *GroupHandler) AddParticipant(c *gin.Context) {
	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, appErrors.InvalidArg("group id must be a uuid"))
		return
	}
	var req participantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, appErrors.InvalidArg(err.Error()))
		return
	}

	if err := h.uc.AddParticipant(c.Request.Context(), groupID, req.UserID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *GroupHandler) RemoveParticipant(c *gin.Context) {
	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, appErrors.InvalidArg("group id must be a uuid"))
		return
	}

	if err := h.uc.RemoveParticipant(c.Request.Context(), groupID, c.Param("userId")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *GroupHandler) SetAdmin(c *gin.Context) {
	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, appErrors.InvalidArg("group id must be a uuid"))
		return
	}
	var req adminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, appErrors.InvalidArg(err.Error()))
		return
	}

	if err := h.uc.SetAdmin(c.Request.Context(), groupID, c.Param("userId"), *req.Enabled); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *GroupHandler) SetDisappearingMessages(c *gin.Context) {
	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, appErrors.InvalidArg("group id must be a uuid"))
		return
	}
	var req disappearingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, appErrors.InvalidArg(err.Error()))
		return
	}

	if err := h.uc.SetDisappearingMessages(c.Request.Context(), groupID, *req.Enabled); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func respondError(c *gin.Context, err error) {
	c.JSON(appErrors.HTTPStatus(err), gin.H{
		"code":  appErrors.CodeOf(err),
		"error": err.Error(),
	})
}

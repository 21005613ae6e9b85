package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amalpanikulangara/arreWhatsapp/internal/user"
	appErrors "github.com/amalpanikulangara/arreWhatsapp/pkg/errors"
	"github.com/amalpanikulangara/arreWhatsapp/pkg/logger"
)

type UserHandler struct {
	uc     user.UserUsecase
	logger *logger.Logger
}

func NewUserHandler(uc user.UserUsecase, logger *logger.Logger) *UserHandler {
	return &UserHandler{uc: uc, logger: logger}
}

type registerRequest struct {
	UserID         string `json:"user_id" binding:"required"`
	Username       string `json:"username" binding:"required"`
	MobileNumber   string `json:"mobile_number" binding:"required"`
	Password       string `json:"password" binding:"required"`
	AdminAccess    bool   `json:"admin_access"`
	ProfilePicture string `json:"profile_picture"`
	StatusMessage  string `json:"status_message"`
}

type loginRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type activityRequest struct {
	Active *bool `json:"active" binding:"required"`
}

func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, appErrors.InvalidArg(err.Error()))
		return
	}

	dto, err := h.uc.Register(c.Request.Context(), user.RegisterCommand{
		UserID:         req.UserID,
		Username:       req.Username,
		MobileNumber:   req.MobileNumber,
		Password:       req.Password,
		AdminAccess:    req.AdminAccess,
		ProfilePicture: req.ProfilePicture,
		StatusMessage:  req.StatusMessage,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto)
}

func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, appErrors.InvalidArg(err.Error()))
		return
	}

	resp, err := h.uc.Login(c.Request.Context(), req.UserID, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	dto, err := h.uc.GetProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto)
}

// Touch records user activity; the transport calls it on presence changes.
func (h *UserHandler) Touch(c *gin.Context) {
	var req activityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, appErrors.InvalidArg(err.Error()))
		return
	}

	if err := h.uc.Touch(c.Request.Context(), c.Param("id"), *req.Active); err != nil {
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

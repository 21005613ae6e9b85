package http

import "github.com/gin-gonic/gin"

func MapGroupRoutes(r gin.IRouter, h *GroupHandler) {
	r.POST("/groups", h.Create)
	r.GET("/groups", h.GetByName)
	r.GET("/groups/:id", h.Get)
	r.POST("/groups/:id/participants", h.AddParticipant)
	r.GET("/groups/:id/participants/:userId", h.IsParticipant)
	r.DELETE("/groups/:id/participants/:userId", h.RemoveParticipant)
	r.PUT("/groups/:id/participants/:userId/admin", h.SetAdmin)
	r.PUT("/groups/:id/disappearing", h.SetDisappearingMessages)
}

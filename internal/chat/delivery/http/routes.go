package http

import "github.com/gin-gonic/gin"

func MapChatRoutes(r gin.IRouter, h *ChatHandler) {
	r.GET("/chats", h.List)
	r.POST("/chats", h.Send)
	r.GET("/chats/:id", h.Get)
	r.POST("/chats/:id/reactions", h.React)
	r.POST("/chats/:id/views", h.MarkViewed)
	r.GET("/groups/:id/attachments", h.ListAttachments)
}

package http

import "github.com/gin-gonic/gin"

func MapUserRoutes(r gin.IRouter, h *UserHandler) {
	r.POST("/users", h.Register)
	r.POST("/users/login", h.Login)
	r.GET("/users/:id", h.GetProfile)
	r.PUT("/users/:id/activity", h.Touch)
}

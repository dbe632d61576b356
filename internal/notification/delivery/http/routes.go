package http

import (
	"alert-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	n := r.Group("/notifications", mw.Auth(), mw.AdminOnly())
	{
		n.POST("/digest", h.SendDigest)
	}
}

package http

import (
	"alert-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the alert settings routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	s := r.Group("/settings/alerts", mw.Auth())
	{
		s.GET("", h.Get)
		s.PUT("", mw.AdminOnly(), h.Update)
		s.GET("/me", h.GetMine)
		s.PUT("/me", h.UpdateMine)
	}
}

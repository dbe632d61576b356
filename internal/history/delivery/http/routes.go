package http

import (
	"alert-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the persisted alert routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	alerts := r.Group("/alerts", mw.Auth())
	{
		alerts.GET("/history", h.Get)
		alerts.GET("/statistics", h.Statistics)
		alerts.POST("", h.Create)
		alerts.GET("/:id", h.Detail)
		alerts.POST("/:id/acknowledge", h.Acknowledge)
		alerts.POST("/:id/resolve", h.Resolve)
		alerts.POST("/:id/dismiss", h.Dismiss)
	}
}

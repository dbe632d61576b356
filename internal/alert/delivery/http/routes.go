package http

import (
	"alert-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the computed alert routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	alerts := r.Group("/alerts", mw.Auth())
	{
		alerts.GET("/dashboard", h.Dashboard)
	}
}

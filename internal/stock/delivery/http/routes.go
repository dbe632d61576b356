package http

import (
	"alert-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the stock monitor routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	s := r.Group("/stock", mw.Auth())
	{
		s.POST("/monitor/run", mw.AdminOnly(), h.RunPass)
		s.GET("/alerts", h.ActiveAlerts)
		s.POST("/alerts/:id/resolve", h.ResolveAlert)
		s.PUT("/links", h.LinkProduct)
	}
}

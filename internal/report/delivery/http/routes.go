package http

import (
	"alert-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	reports := r.Group("/reports", mw.Auth())
	{
		reports.GET("/alerts", h.Assemble)
		reports.POST("/alerts/export", h.Export)
	}
}

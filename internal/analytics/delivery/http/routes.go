package http

import (
	"alert-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	g := r.Group("/analytics", mw.Auth())
	{
		g.GET("/metrics", h.Metrics)
		g.GET("/timeseries", h.TimeSeries)
		g.GET("/distribution", h.Distribution)
		g.GET("/trends", h.Trends)
		g.GET("/service-types", h.ServiceTypes)
		g.GET("/top-pianos", h.TopPianos)
		g.GET("/compare", h.Compare)
	}
}

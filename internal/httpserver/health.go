package httpserver

import (
	"net/http"

	"alert-srv/pkg/errors"
	"alert-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	serviceName    = "alert-srv"
	serviceVersion = "1.0.0"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check PostgreSQL and Redis connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is healthy"
// @Failure 503 {object} response.Resp "Dependency unavailable"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.db.PingContext(ctx); err != nil {
		srv.l.Errorf(ctx, "internal.httpserver.healthCheck.PingContext: %v", err)
		response.HttpError(c, errors.NewHTTPError(http.StatusServiceUnavailable, "PostgreSQL connection failed"))
		return
	}
	if err := srv.redis.Ping(ctx); err != nil {
		srv.l.Errorf(ctx, "internal.httpserver.healthCheck.Ping: %v", err)
		response.HttpError(c, errors.NewHTTPError(http.StatusServiceUnavailable, "Redis connection failed"))
		return
	}

	response.OK(c, gin.H{
		"status":   "healthy",
		"version":  serviceVersion,
		"service":  serviceName,
		"postgres": "connected",
		"redis":    "connected",
	})
}

// readyCheck handles readiness check requests
// @Summary Readiness Check
// @Description Check that every backing store, object storage included, is reachable
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is ready"
// @Failure 503 {object} response.Resp "Service is not ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.db.PingContext(ctx); err != nil {
		response.HttpError(c, errors.NewHTTPError(http.StatusServiceUnavailable, "PostgreSQL connection not available"))
		return
	}
	if err := srv.redis.Ping(ctx); err != nil {
		response.HttpError(c, errors.NewHTTPError(http.StatusServiceUnavailable, "Redis connection not available"))
		return
	}
	if err := srv.minio.HealthCheck(ctx); err != nil {
		response.HttpError(c, errors.NewHTTPError(http.StatusServiceUnavailable, "Object storage not available"))
		return
	}

	response.OK(c, gin.H{
		"status":   "ready",
		"version":  serviceVersion,
		"service":  serviceName,
		"postgres": "connected",
		"redis":    "connected",
		"minio":    "connected",
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": serviceVersion,
		"service": serviceName,
	})
}

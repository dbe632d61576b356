package httpserver

import (
	"database/sql"
	"errors"

	"alert-srv/config"
	"alert-srv/pkg/discord"
	"alert-srv/pkg/log"
	"alert-srv/pkg/minio"
	pkgRedis "alert-srv/pkg/redis"
	"alert-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// HTTPServer represents the HTTP server with all dependencies.
// New() only wires dependencies and validates them.
// Run() (in httpserver.go) is responsible for serving until the context ends.
type HTTPServer struct {
	// Server configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	environment string
	origins     []string

	// Auth & security
	jwtMgr    scope.Manager
	cookieCfg config.CookieConfig

	// Storage
	db    *sql.DB
	redis pkgRedis.IRedis
	minio minio.MinIO

	// Domain configuration
	monitorCfg config.MonitorConfig
	minioCfg   config.MinIOConfig

	// Monitoring & notification
	discord discord.IDiscord
}

// Config is the constructor input for HTTPServer.
type Config struct {
	// Server configuration
	Host        string
	Port        int
	Mode        string
	Environment string
	Origins     []string

	// Auth & security
	JWTManager scope.Manager
	Cookie     config.CookieConfig

	// Storage
	PostgresDB *sql.DB
	Redis      pkgRedis.IRedis
	MinIO      minio.MinIO
	MinIOCfg   config.MinIOConfig

	// Domain configuration
	Monitor config.MonitorConfig

	// Optional, nil disables Discord reporting.
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
// Note: This does NOT start any goroutines. Use (*HTTPServer).Run() to start the service.
func New(l log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		gin:         gin.New(),
		l:           l,
		host:        cfg.Host,
		port:        cfg.Port,
		environment: cfg.Environment,
		origins:     cfg.Origins,

		jwtMgr:    cfg.JWTManager,
		cookieCfg: cfg.Cookie,

		db:    cfg.PostgresDB,
		redis: cfg.Redis,
		minio: cfg.MinIO,

		monitorCfg: cfg.Monitor,
		minioCfg:   cfg.MinIOCfg,

		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate ensures all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.jwtMgr == nil {
		return errors.New("JWTManager is required")
	}
	if srv.db == nil {
		return errors.New("PostgresDB is required")
	}
	if srv.redis == nil {
		return errors.New("Redis client is required")
	}
	if srv.minio == nil {
		return errors.New("MinIO client is required")
	}

	return nil
}

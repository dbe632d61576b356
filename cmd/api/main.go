package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"alert-srv/config"
	configMinio "alert-srv/config/minio"
	"alert-srv/config/postgre"
	configRedis "alert-srv/config/redis"
	"alert-srv/internal/httpserver"
	"alert-srv/pkg/discord"
	"alert-srv/pkg/log"
	"alert-srv/pkg/scope"
)

// @title       Alert Service
// @description Alerting and auto-remediation API: computed alerts, alert history, stock monitor, analytics and reports
// @version     1.0
// @host        localhost:8080
// @schemes     http
// @BasePath    /
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Bearer token authentication. Format: "Bearer {token}"
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config:", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// Create context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Alert API...")

	// Discord webhook (optional)
	var discordClient discord.IDiscord
	if cfg.Discord.WebhookURL != "" {
		discordClient, err = discord.New(logger, cfg.Discord.WebhookURL)
		if err != nil {
			logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
			discordClient = nil
		}
	}

	db, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", err)
		return
	}
	defer postgre.Disconnect(db)
	logger.Infof(ctx, "PostgreSQL connected to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	redisClient, err := configRedis.Connect(cfg.Redis)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
		return
	}
	defer redisClient.Close()
	logger.Info(ctx, "Redis client initialized")

	minioClient, err := configMinio.ConnectWithRetry(ctx, cfg.MinIO, 0)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to MinIO: %v", err)
		return
	}
	logger.Infof(ctx, "MinIO connected to %s, bucket %s", cfg.MinIO.Endpoint, cfg.MinIO.Bucket)

	srv, err := httpserver.New(logger, httpserver.Config{
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Origins:     cfg.HTTPServer.AllowedOrigins,

		JWTManager: scope.New(cfg.JWT.SecretKey),
		Cookie:     cfg.Cookie,

		PostgresDB: db,
		Redis:      redisClient,
		MinIO:      minioClient,
		MinIOCfg:   cfg.MinIO,

		Monitor: cfg.Monitor,
		Discord: discordClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	if err := srv.Run(ctx); err != nil {
		logger.Errorf(ctx, "HTTP server error: %v", err)
		return
	}

	logger.Info(context.Background(), "Alert API stopped gracefully")
}

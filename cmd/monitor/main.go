package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"alert-srv/config"
	"alert-srv/config/postgre"
	configRedis "alert-srv/config/redis"
	alertRepo "alert-srv/internal/alert/repository/postgre"
	alertUC "alert-srv/internal/alert/usecase"
	historyRepo "alert-srv/internal/history/repository/postgre"
	historyUC "alert-srv/internal/history/usecase"
	notificationUC "alert-srv/internal/notification/usecase"
	settingsRepo "alert-srv/internal/settings/repository/postgre"
	settingsUC "alert-srv/internal/settings/usecase"
	"alert-srv/internal/stock"
	"alert-srv/internal/stock/delivery/job"
	stockRepo "alert-srv/internal/stock/repository/postgre"
	stockUC "alert-srv/internal/stock/usecase"
	"alert-srv/pkg/discord"
	"alert-srv/pkg/log"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// The monitor runs stock passes, maintenance recording and the weekly digest on a ticker.
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting alert monitor...")

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

	redisClient, err := configRedis.Connect(cfg.Redis)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
		return
	}
	defer redisClient.Close()

	historyRepository := historyRepo.New(logger, db)

	settingsUseCase := settingsUC.New(logger, settingsRepo.New(logger, db))
	notificationUseCase := notificationUC.New(logger, redisClient, discordClient, settingsUseCase, historyRepository)
	historyUseCase := historyUC.New(logger, historyRepository, notificationUseCase)
	alertUseCase := alertUC.New(logger, alertRepo.New(logger, db), settingsUseCase)
	stockUseCase := stockUC.New(logger, stockRepo.New(logger, db), historyUseCase, stock.Config{
		ItemTimeout: cfg.Monitor.ItemTimeout,
		UrgentRatio: cfg.Monitor.UrgentRatio,
	})

	monitor := job.New(logger, stockUseCase, alertUseCase, historyUseCase, notificationUseCase, settingsUseCase, job.Config{
		Interval:    cfg.Monitor.Interval,
		Concurrency: cfg.Monitor.Concurrency,
		DigestHour:  cfg.Monitor.DigestHour,
	})

	metricsSrv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Monitor.MetricsPort),
		Handler:           promhttp.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "Metrics server error: %v", err)
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = metricsSrv.Shutdown(shutdownCtx)
	}()
	logger.Infof(ctx, "Metrics listening on %s", metricsSrv.Addr)

	if err := monitor.Run(ctx); err != nil {
		logger.Errorf(ctx, "Monitor error: %v", err)
		return
	}

	logger.Info(context.Background(), "Alert monitor stopped gracefully")
}

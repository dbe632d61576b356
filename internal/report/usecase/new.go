package usecase

import (
	"time"

	"alert-srv/internal/analytics"
	"alert-srv/internal/history"
	"alert-srv/internal/report"
	"alert-srv/pkg/log"
	"alert-srv/pkg/minio"
)

type implUseCase struct {
	l         log.Logger
	analytics analytics.UseCase
	history   history.UseCase
	storage   minio.MinIO
	cfg       report.Config
	clock     func() time.Time
}

func New(l log.Logger, analyticsUC analytics.UseCase, historyUC history.UseCase, storage minio.MinIO, cfg report.Config) report.UseCase {
	if cfg.URLExpiry <= 0 {
		cfg.URLExpiry = report.DefaultURLExpiry
	}

	return &implUseCase{
		l:         l,
		analytics: analyticsUC,
		history:   historyUC,
		storage:   storage,
		cfg:       cfg,
		clock:     time.Now,
	}
}

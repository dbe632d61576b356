package usecase

import (
	"time"

	"alert-srv/internal/history"
	"alert-srv/internal/stock"
	"alert-srv/internal/stock/repository"
	"alert-srv/pkg/log"
)

type implUseCase struct {
	l       log.Logger
	repo    repository.Repository
	history history.UseCase
	cfg     stock.Config
	locks   *keyedMutex
	clock   func() time.Time
}

func New(l log.Logger, repo repository.Repository, historyUC history.UseCase, cfg stock.Config) stock.UseCase {
	if cfg.ItemTimeout <= 0 {
		cfg.ItemTimeout = stock.DefaultItemTimeout
	}
	if cfg.UrgentRatio <= 0 || cfg.UrgentRatio > 1 {
		cfg.UrgentRatio = stock.DefaultUrgentRatio
	}

	return &implUseCase{
		l:       l,
		repo:    repo,
		history: historyUC,
		cfg:     cfg,
		locks:   newKeyedMutex(),
		clock:   time.Now,
	}
}

package usecase

import (
	"time"

	"alert-srv/internal/analytics"
	"alert-srv/internal/history"
	"alert-srv/pkg/log"
)

type implUseCase struct {
	l       log.Logger
	history history.UseCase
	clock   func() time.Time
}

func New(l log.Logger, historyUC history.UseCase) analytics.UseCase {
	return &implUseCase{
		l:       l,
		history: historyUC,
		clock:   time.Now,
	}
}

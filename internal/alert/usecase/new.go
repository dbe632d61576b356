package usecase

import (
	"time"

	"alert-srv/internal/alert"
	"alert-srv/internal/alert/repository"
	"alert-srv/internal/settings"
	"alert-srv/pkg/log"
)

type implUseCase struct {
	l        log.Logger
	repo     repository.Repository
	settings settings.UseCase
	clock    func() time.Time
}

func New(l log.Logger, repo repository.Repository, settingsUC settings.UseCase) alert.UseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		settings: settingsUC,
		clock:    time.Now,
	}
}

package usecase

import (
	"time"

	"alert-srv/internal/history"
	"alert-srv/internal/history/repository"
	"alert-srv/internal/notification"
	"alert-srv/pkg/log"
)

type usecase struct {
	l        log.Logger
	repo     repository.Repository
	notifier notification.UseCase
	clock    func() time.Time
}

func New(l log.Logger, repo repository.Repository, notifier notification.UseCase) history.UseCase {
	return &usecase{
		l:        l,
		repo:     repo,
		notifier: notifier,
		clock:    time.Now,
	}
}

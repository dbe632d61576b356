package usecase

import (
	"alert-srv/internal/settings"
	"alert-srv/internal/settings/repository"
	"alert-srv/pkg/log"
)

type usecase struct {
	l    log.Logger
	repo repository.Repository
}

func New(l log.Logger, repo repository.Repository) settings.UseCase {
	return &usecase{
		l:    l,
		repo: repo,
	}
}

package usecase

import (
	"time"

	historyRepo "alert-srv/internal/history/repository"
	"alert-srv/internal/notification"
	"alert-srv/internal/settings"
	"alert-srv/pkg/discord"
	"alert-srv/pkg/log"
	pkgRedis "alert-srv/pkg/redis"
)

const digestKeyTTL = 24 * time.Hour

type implUseCase struct {
	l        log.Logger
	redis    pkgRedis.IRedis
	discord  discord.IDiscord
	settings settings.UseCase
	alerts   historyRepo.Repository
	clock    func() time.Time
}

// New reads alerts through the history repository rather than its use case,
// since the history use case publishes through this one.
func New(l log.Logger, redis pkgRedis.IRedis, d discord.IDiscord, settingsUC settings.UseCase, alerts historyRepo.Repository) notification.UseCase {
	return &implUseCase{
		l:        l,
		redis:    redis,
		discord:  d,
		settings: settingsUC,
		alerts:   alerts,
		clock:    time.Now,
	}
}

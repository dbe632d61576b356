package http

import (
	"alert-srv/internal/analytics"
	"alert-srv/pkg/discord"
	"alert-srv/pkg/log"
)

type Handler struct {
	l       log.Logger
	uc      analytics.UseCase
	discord discord.IDiscord
}

func New(l log.Logger, uc analytics.UseCase, d discord.IDiscord) *Handler {
	return &Handler{
		l:       l,
		uc:      uc,
		discord: d,
	}
}

package http

import (
	"alert-srv/internal/settings"
	"alert-srv/pkg/discord"
	"alert-srv/pkg/log"
)

type Handler struct {
	l       log.Logger
	uc      settings.UseCase
	discord discord.IDiscord
}

func New(l log.Logger, uc settings.UseCase, d discord.IDiscord) *Handler {
	return &Handler{
		l:       l,
		uc:      uc,
		discord: d,
	}
}

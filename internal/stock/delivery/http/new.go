package http

import (
	"alert-srv/internal/stock"
	"alert-srv/pkg/discord"
	"alert-srv/pkg/log"
)

type Handler struct {
	l       log.Logger
	uc      stock.UseCase
	discord discord.IDiscord
}

func New(l log.Logger, uc stock.UseCase, d discord.IDiscord) *Handler {
	return &Handler{
		l:       l,
		uc:      uc,
		discord: d,
	}
}

package discord

import "errors"

var (
	errWebhookRequired   = errors.New("discord: webhook URL is required")
	errInvalidWebhookURL = errors.New("discord: invalid webhook URL format")
	ErrMessageTooLong    = errors.New("discord: message too long")
	ErrEmbedTooLong      = errors.New("discord: embed too long")
)

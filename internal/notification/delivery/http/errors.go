package http

import (
	"net/http"

	"alert-srv/internal/notification"
	"alert-srv/pkg/errors"
)

func (h *Handler) mapError(err error) error {
	switch err {
	case notification.ErrDigestFailed:
		return errors.NewHTTPError(http.StatusBadGateway, "Weekly digest could not be delivered")
	default:
		panic(err)
	}
}

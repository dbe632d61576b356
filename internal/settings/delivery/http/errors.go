package http

import (
	"net/http"

	"alert-srv/internal/settings"
	"alert-srv/pkg/errors"
)

func (h *Handler) mapError(err error) error {
	switch err {
	case settings.ErrInvalidTuningPending,
		settings.ErrInvalidTuningUrgent,
		settings.ErrInvalidRegulationPending,
		settings.ErrInvalidRegulationUrgent,
		settings.ErrTuningOrder,
		settings.ErrRegulationOrder,
		settings.ErrInvalidDigestDay:
		return errors.NewHTTPError(http.StatusBadRequest, err.Error())
	case settings.ErrPermissionDenied:
		return errors.NewForbiddenHTTPError()
	case settings.ErrUserRequired:
		return errors.NewUnauthorizedHTTPError()
	default:
		panic(err)
	}
}

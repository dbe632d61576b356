package http

import (
	"net/http"

	"alert-srv/internal/analytics"
	"alert-srv/pkg/errors"
)

var (
	errInvalidGranularity = errors.NewHTTPError(http.StatusBadRequest, "granularity must be day, week or month")
	errInvalidPeriod      = errors.NewHTTPError(http.StatusBadRequest, "period must be month, quarter or year")
	errInvalidWindow      = errors.NewHTTPError(http.StatusBadRequest, "start_date must be before end_date, format YYYY-MM-DD or RFC3339")
)

func (h *Handler) mapError(err error) error {
	switch err {
	case analytics.ErrInvalidGranularity:
		return errInvalidGranularity
	case analytics.ErrInvalidPeriod:
		return errInvalidPeriod
	case analytics.ErrInvalidWindow:
		return errInvalidWindow
	}
	panic(err)
}

package http

import (
	"net/http"

	"alert-srv/internal/report"
	"alert-srv/pkg/errors"
)

var (
	errInvalidRequest     = errors.NewHTTPError(http.StatusBadRequest, "Invalid request")
	errInvalidWindow      = errors.NewHTTPError(http.StatusBadRequest, "start_date must be before end_date, format YYYY-MM-DD or RFC3339")
	errInvalidFormat      = errors.NewHTTPError(http.StatusBadRequest, "format must be pdf, excel or csv")
	errDetailsUnavailable = errors.NewHTTPError(http.StatusServiceUnavailable, "Alert details are temporarily unavailable")
	errExportFailed       = errors.NewHTTPError(http.StatusBadGateway, "Report export failed")
)

func (h *Handler) mapError(err error) error {
	switch err {
	case report.ErrInvalidFormat:
		return errInvalidFormat
	case report.ErrDetailsUnavailable:
		return errDetailsUnavailable
	case report.ErrExportFailed:
		return errExportFailed
	}
	panic(err)
}

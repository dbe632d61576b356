package http

import (
	"net/http"

	"alert-srv/internal/alert"
	"alert-srv/pkg/errors"
)

func (h *Handler) mapError(err error) error {
	switch err {
	case alert.ErrOrganizationRequired:
		return errors.NewHTTPError(http.StatusForbidden, "Organization scope is required")
	case alert.ErrEntitiesUnavailable:
		return errors.NewHTTPError(http.StatusServiceUnavailable, "Business data is temporarily unavailable")
	default:
		panic(err)
	}
}

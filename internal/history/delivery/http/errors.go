package http

import (
	"net/http"

	"alert-srv/internal/history"
	"alert-srv/pkg/errors"
)

func (h *Handler) mapError(err error) error {
	switch err {
	case history.ErrAlertNotFound:
		return errors.NewHTTPError(http.StatusNotFound, "Alert not found")
	case history.ErrDuplicateAlert:
		return errors.NewHTTPError(http.StatusConflict, "An open alert already exists for this item")
	case history.ErrInvalidTransition:
		return errors.NewHTTPError(http.StatusConflict, "Alert status does not allow this action")
	case history.ErrInvalidAlertType:
		return errors.NewHTTPError(http.StatusBadRequest, "Invalid alert type")
	case history.ErrInvalidPriority:
		return errors.NewHTTPError(http.StatusBadRequest, "Invalid priority")
	case history.ErrInvalidStatus:
		return errors.NewHTTPError(http.StatusBadRequest, "Invalid status")
	case history.ErrMessageRequired:
		return errors.NewHTTPError(http.StatusBadRequest, "Message is required")
	case history.ErrInventoryRequired:
		return errors.NewHTTPError(http.StatusBadRequest, "Inventory item is required")
	case history.ErrPermissionDenied:
		return errors.NewForbiddenHTTPError()
	case history.ErrStoreUnavailable:
		return errors.NewHTTPError(http.StatusServiceUnavailable, "Alert store is temporarily unavailable")
	default:
		panic(err)
	}
}

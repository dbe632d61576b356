package http

import (
	"net/http"

	"alert-srv/internal/history"
	"alert-srv/internal/stock"
	"alert-srv/pkg/errors"
)

func (h *Handler) mapError(err error) error {
	switch err {
	case stock.ErrInvalidThreshold,
		stock.ErrInvalidReorderQuantity,
		stock.ErrInventoryRequired,
		stock.ErrProductRequired:
		return errors.NewHTTPError(http.StatusBadRequest, err.Error())
	case stock.ErrInventoryNotFound:
		return errors.NewHTTPError(http.StatusNotFound, "Inventory item not found")
	case stock.ErrProductNotFound:
		return errors.NewHTTPError(http.StatusNotFound, "Catalog product not found")
	case stock.ErrAlertNotFound:
		return errors.NewHTTPError(http.StatusNotFound, "Stock alert not found")
	case stock.ErrNotStockAlert:
		return errors.NewHTTPError(http.StatusBadRequest, "Alert is not a stock alert")
	case stock.ErrAlertClosed:
		return errors.NewHTTPError(http.StatusConflict, "Stock alert is already closed")
	case stock.ErrPermissionDenied:
		return errors.NewForbiddenHTTPError()
	case history.ErrStoreUnavailable:
		return errors.NewHTTPError(http.StatusServiceUnavailable, "Alert store is temporarily unavailable")
	default:
		panic(err)
	}
}

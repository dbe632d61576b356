package stock

import "errors"

var (
	ErrInvalidThreshold       = errors.New("low stock threshold must be greater than 0")
	ErrInvalidReorderQuantity = errors.New("reorder quantity must be greater than 0")
	ErrInventoryRequired      = errors.New("inventory item is required")
	ErrProductRequired        = errors.New("product is required")
	ErrInventoryNotFound      = errors.New("inventory item not found")
	ErrProductNotFound        = errors.New("catalog product not found")
	ErrProductUnavailable     = errors.New("catalog product is not available")
	ErrAlertNotFound          = errors.New("stock alert not found")
	ErrNotStockAlert          = errors.New("alert is not a stock alert")
	ErrAlertClosed            = errors.New("stock alert is already closed")
	ErrPermissionDenied       = errors.New("permission denied")
)

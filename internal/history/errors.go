package history

import "errors"

var (
	ErrAlertNotFound     = errors.New("alert not found")
	ErrDuplicateAlert    = errors.New("an open alert already exists")
	ErrInvalidTransition = errors.New("alert status transition not allowed")
	ErrInvalidAlertType  = errors.New("invalid alert type")
	ErrInvalidPriority   = errors.New("invalid alert priority")
	ErrInvalidStatus     = errors.New("invalid alert status")
	ErrMessageRequired   = errors.New("message is required")
	ErrInventoryRequired = errors.New("inventory id is required")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrStoreUnavailable  = errors.New("alert store unavailable")
)

package report

import "errors"

var (
	ErrInvalidFormat      = errors.New("invalid report format")
	ErrDetailsUnavailable = errors.New("alert details unavailable")
	ErrExportFailed       = errors.New("report export failed")
)

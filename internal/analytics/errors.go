package analytics

import "errors"

var (
	ErrInvalidGranularity = errors.New("invalid granularity")
	ErrInvalidPeriod      = errors.New("invalid trend period")
	ErrInvalidWindow      = errors.New("invalid window")
)

package settings

import "errors"

var (
	ErrInvalidTuningPending     = errors.New("tuning pending threshold must be between 1 and 365 days")
	ErrInvalidTuningUrgent      = errors.New("tuning urgent threshold must be between 1 and 730 days")
	ErrInvalidRegulationPending = errors.New("regulation pending threshold must be between 1 and 1825 days")
	ErrInvalidRegulationUrgent  = errors.New("regulation urgent threshold must be between 1 and 3650 days")
	ErrTuningOrder              = errors.New("tuning pending threshold must be lower than urgent")
	ErrRegulationOrder          = errors.New("regulation pending threshold must be lower than urgent")
	ErrInvalidDigestDay         = errors.New("weekly digest day must be between 1 and 7")
	ErrPermissionDenied         = errors.New("permission denied")
	ErrUserRequired             = errors.New("user is required")
)

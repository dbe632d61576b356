package alert

import "errors"

var (
	ErrOrganizationRequired = errors.New("organization is required")
	ErrEntitiesUnavailable  = errors.New("entity collection unavailable")
)

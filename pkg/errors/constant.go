package errors

import "net/http"

const (
	StatusUnauthorized = http.StatusUnauthorized
	StatusForbidden    = http.StatusForbidden
)

const (
	MessageUnauthorized = "Unauthorized"
	MessageForbidden    = "Forbidden"
)

package notification

import "errors"

var (
	ErrPublishFailed = errors.New("failed to publish alert")
	ErrDigestFailed  = errors.New("failed to send weekly digest")
)

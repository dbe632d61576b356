package notification

import (
	"context"

	"alert-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// PublishAlert fans a newly created alert out to subscribers.
	PublishAlert(ctx context.Context, sc model.Scope, a model.PersistedAlert) error
	// SendWeeklyDigest posts the urgent maintenance summary when the organization's digest is due.
	SendWeeklyDigest(ctx context.Context, sc model.Scope, ip DigestInput) (DigestOutput, error)
}

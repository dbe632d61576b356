package settings

import (
	"context"

	"alert-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Get returns the organization-wide settings, or defaults when none are stored.
	Get(ctx context.Context, sc model.Scope) (model.AlertSettings, error)
	// GetMine returns the caller's own settings, falling back to the organization's.
	GetMine(ctx context.Context, sc model.Scope) (model.AlertSettings, error)
	Update(ctx context.Context, sc model.Scope, ip UpdateInput) (model.AlertSettings, error)
	UpdateMine(ctx context.Context, sc model.Scope, ip UpdateInput) (model.AlertSettings, error)
	ListDigestEnabled(ctx context.Context) ([]model.AlertSettings, error)
}

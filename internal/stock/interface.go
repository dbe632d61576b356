package stock

import (
	"context"

	"alert-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// RunPass checks every linked inventory item of the organization once.
	RunPass(ctx context.Context, sc model.Scope) (PassResult, error)
	ActiveAlerts(ctx context.Context, sc model.Scope) ([]model.PersistedAlert, error)
	ResolveAlert(ctx context.Context, sc model.Scope, ip ResolveInput) (model.PersistedAlert, error)
	LinkProduct(ctx context.Context, sc model.Scope, ip LinkInput) (model.ReorderLink, error)
}
